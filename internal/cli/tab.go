package cli

import (
	"net/url"

	"github.com/dmitrijs2005/quotejournal/internal/client"
)

// Tab is one of the three quote-visibility scopes of the quotes view.
// The active tab lives in the route's "tab" query parameter so that it
// survives re-navigation and stays independently shareable.
type Tab string

const (
	TabAll     Tab = ""
	TabPublic  Tab = "public"
	TabPrivate Tab = "private"
)

// TabFromQuery maps a route's query values onto a Tab. An absent or
// unrecognized parameter means TabAll.
func TabFromQuery(query url.Values) Tab {
	switch query.Get("tab") {
	case string(TabPublic):
		return TabPublic
	case string(TabPrivate):
		return TabPrivate
	default:
		return TabAll
	}
}

// ParseTab maps user input ("all", "public", "private") onto a Tab.
func ParseTab(s string) (Tab, bool) {
	switch s {
	case "all", "":
		return TabAll, true
	case "public":
		return TabPublic, true
	case "private":
		return TabPrivate, true
	default:
		return TabAll, false
	}
}

// Query renders the tab back into route query values. TabAll contributes
// no parameter, matching its role as the default.
func (t Tab) Query() url.Values {
	q := url.Values{}
	if t != TabAll {
		q.Set("tab", string(t))
	}
	return q
}

// Scope returns the listing endpoint selector for the tab.
func (t Tab) Scope() client.QuoteScope {
	switch t {
	case TabPublic:
		return client.ScopePublic
	case TabPrivate:
		return client.ScopePrivate
	default:
		return client.ScopeAll
	}
}

// Label returns the tab's display name.
func (t Tab) Label() string {
	switch t {
	case TabPublic:
		return "PUBLIC"
	case TabPrivate:
		return "PRIVATE"
	default:
		return "ALL"
	}
}
