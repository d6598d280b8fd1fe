package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/dmitrijs2005/quotejournal/internal/client"
	"github.com/dmitrijs2005/quotejournal/internal/logging"
	"github.com/dmitrijs2005/quotejournal/internal/models"
)

// ErrContentRequired rejects quote submissions with no content.
var ErrContentRequired = errors.New("content is required")

// QuotesPage is the controller of the quotes library view.
//
// The active tab is not stored here: it arrives with every Mount from
// the route's query string, and switching tabs means navigating to a new
// query. On top of the fetched set the page applies a second, purely
// client-side filter (case-insensitive substring match on content AND
// exact tag match) that never triggers a refetch. Mutations refetch the
// current tab's endpoint after the round-trip completes; nothing is
// updated optimistically.
type QuotesPage struct {
	api    client.Client
	logger logging.Logger

	tab     Tab
	loading bool
	quotes  []models.Quote

	search    string
	tagFilter string

	form models.NewQuote
}

func NewQuotesPage(api client.Client, logger logging.Logger) *QuotesPage {
	return &QuotesPage{
		api:    api,
		logger: logger.With("page", "quotes"),
		form:   models.NewQuote{IsPublic: true},
	}
}

// Mount derives the active tab from the route query and fetches that
// tab's quote list. Load failures are logged and leave the list empty;
// they are never surfaced as view errors.
func (p *QuotesPage) Mount(ctx context.Context, query url.Values) error {
	p.tab = TabFromQuery(query)
	p.fetch(ctx)
	return nil
}

// Tab returns the tab the page was last mounted with.
func (p *QuotesPage) Tab() Tab {
	return p.tab
}

func (p *QuotesPage) fetch(ctx context.Context) {
	p.loading = true
	p.quotes = nil

	quotes, err := p.api.ListQuotes(ctx, p.tab.Scope())
	p.loading = false
	if err != nil {
		p.logger.Error(ctx, "error fetching quotes", "tab", p.tab.Label(), "error", err)
		return
	}
	p.quotes = quotes
}

// SetSearch updates the free-text filter. Local state only: no fetch.
func (p *QuotesPage) SetSearch(term string) {
	p.search = term
}

// SetTagFilter updates the tag filter. Local state only: no fetch. An
// empty tag clears the filter; an unknown tag is rejected.
func (p *QuotesPage) SetTagFilter(tag string) error {
	if tag != "" && !models.IsValidTag(tag) {
		return fmt.Errorf("unknown tag %q (available: %s)", tag, strings.Join(models.AvailableTags, ", "))
	}
	p.tagFilter = tag
	return nil
}

// Visible returns the fetched quotes narrowed by the client-side filters.
func (p *QuotesPage) Visible() []models.Quote {
	out := make([]models.Quote, 0, len(p.quotes))
	needle := strings.ToLower(p.search)
	for _, q := range p.quotes {
		if needle != "" && !strings.Contains(strings.ToLower(q.Content), needle) {
			continue
		}
		if p.tagFilter != "" && q.Tag != p.tagFilter {
			continue
		}
		out = append(out, q)
	}
	return out
}

// SetForm fills the new-quote form.
func (p *QuotesPage) SetForm(content, tag string, isPublic bool) {
	p.form = models.NewQuote{Content: content, Tag: tag, IsPublic: isPublic}
}

// Form returns the current new-quote form state.
func (p *QuotesPage) Form() models.NewQuote {
	return p.form
}

// Submit posts the form, then resets it to defaults and refetches the
// current tab once. The list only changes after the round-trip; a failed
// create leaves both the form and the list as they were.
func (p *QuotesPage) Submit(ctx context.Context) error {
	if strings.TrimSpace(p.form.Content) == "" {
		return ErrContentRequired
	}
	if err := p.api.CreateQuote(ctx, p.form); err != nil {
		return err
	}
	p.form = models.NewQuote{IsPublic: true}
	p.fetch(ctx)
	return nil
}

// Delete removes a quote after confirmation. A declined confirmation
// issues no request and changes nothing. A successful delete refetches
// the current tab once.
func (p *QuotesPage) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return nil
	}
	if err := p.api.DeleteQuote(ctx, id); err != nil {
		return err
	}
	p.fetch(ctx)
	return nil
}

// Render writes the view: tab header, filters, and the visible quotes.
func (p *QuotesPage) Render(w io.Writer) {
	fmt.Fprintf(w, "--- Quotes Library [%s] ---\n", p.tab.Label())
	if p.loading {
		fmt.Fprintln(w, "Loading...")
		return
	}
	if p.search != "" || p.tagFilter != "" {
		fmt.Fprintf(w, "filters: search=%q tag=%q\n", p.search, p.tagFilter)
	}

	visible := p.Visible()
	if len(visible) == 0 {
		fmt.Fprintln(w, "No quotes to show.")
		return
	}
	for _, q := range visible {
		visibility := "private"
		if q.IsPublic {
			visibility = "public"
		}
		if q.Tag != "" {
			fmt.Fprintf(w, "[%s] %s (%s, %s)\n", q.ID, q.Content, q.Tag, visibility)
		} else {
			fmt.Fprintf(w, "[%s] %s (%s)\n", q.ID, q.Content, visibility)
		}
	}
}
