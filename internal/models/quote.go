package models

// Quote is a single journal entry as returned by the server.
type Quote struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Tag      string `json:"tag,omitempty"`
	IsPublic bool   `json:"isPublic"`
}

// NewQuote is the creation payload for POST /quotes.
type NewQuote struct {
	Content  string `json:"content"`
	Tag      string `json:"tag,omitempty"`
	IsPublic bool   `json:"isPublic"`
}

// AvailableTags is the fixed set of categories a quote may be tagged with.
var AvailableTags = []string{"MOTIVATION", "LIFE", "LOVE", "WISDOM", "HUMOR", "INSPIRATION"}

// IsValidTag reports whether tag is one of AvailableTags.
// The empty tag is not valid; "no tag" is expressed by omitting it.
func IsValidTag(tag string) bool {
	for _, t := range AvailableTags {
		if t == tag {
			return true
		}
	}
	return false
}
