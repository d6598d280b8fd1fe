package client

import (
	"context"

	"github.com/dmitrijs2005/quotejournal/internal/models"
)

// QuoteScope selects which quote listing endpoint is queried.
type QuoteScope string

const (
	// ScopeAll lists the caller's quotes, public and private.
	ScopeAll QuoteScope = ""
	// ScopePublic lists public quotes.
	ScopePublic QuoteScope = "public"
	// ScopePrivate lists the caller's private quotes.
	ScopePrivate QuoteScope = "private"
)

// path returns the request path for the scope, relative to the base URL.
func (s QuoteScope) path() string {
	switch s {
	case ScopePublic:
		return "/quotes/public"
	case ScopePrivate:
		return "/quotes/private"
	default:
		return "/quotes"
	}
}

// Client is the API contract against the quote journal backend.
//
// Login returns the issued token without storing it; persisting the
// token is the auth service's job. Register returns the server's
// confirmation message and never yields a token.
type Client interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password string) (string, error)
	ListQuotes(ctx context.Context, scope QuoteScope) ([]models.Quote, error)
	CreateQuote(ctx context.Context, quote models.NewQuote) error
	DeleteQuote(ctx context.Context, id string) error
	Dashboard(ctx context.Context) (*models.Dashboard, error)
	DeleteUser(ctx context.Context, id string) error
	SetUserRole(ctx context.Context, id string, role string) error
}
