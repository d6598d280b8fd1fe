package cli

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// View routes. The quotes view additionally keeps its active tab in the
// route's query string (see Tab), so a route is shareable view state,
// not component-local memory.
const (
	routeRoot      = "/"
	routeAuth      = "/auth"
	routeQuotes    = "/quotes"
	routeDashboard = "/admin/dashboard"
)

// ErrTooManyRedirects guards against guard/redirect cycles.
var ErrTooManyRedirects = errors.New("too many redirects")

// Route is the current navigation state: a path plus its query values.
type Route struct {
	Path  string
	Query url.Values
}

// String renders the route back into URL form.
func (r Route) String() string {
	if len(r.Query) == 0 {
		return r.Path
	}
	return r.Path + "?" + r.Query.Encode()
}

// routeEntry describes one destination in the route table. Entries either
// redirect elsewhere or mount a view, optionally behind a guard.
type routeEntry struct {
	redirect string
	guard    Guard
	mount    func(ctx context.Context, query url.Values) error
}

// Navigate resolves target against the route table and mounts the
// resulting view. Guards run before the view mounts; when one declines,
// navigation continues at the guard's redirect target. The chain is
// bounded so a misconfigured table cannot loop forever.
func (a *App) Navigate(ctx context.Context, target string) error {
	for hops := 0; hops < 5; hops++ {
		u, err := url.Parse(target)
		if err != nil {
			return fmt.Errorf("invalid route %q: %w", target, err)
		}

		entry, ok := a.routeTable[u.Path]
		if !ok {
			return fmt.Errorf("unknown route %q", u.Path)
		}

		if entry.redirect != "" {
			target = entry.redirect
			continue
		}

		if entry.guard != nil {
			if redirect, allowed := entry.guard(ctx); !allowed {
				a.logger.Debug(ctx, "navigation redirected", "from", target, "to", redirect)
				target = redirect
				continue
			}
		}

		a.route = Route{Path: u.Path, Query: u.Query()}
		if entry.mount != nil {
			return entry.mount(ctx, a.route.Query)
		}
		return nil
	}
	return ErrTooManyRedirects
}

// CurrentRoute returns the route of the view currently on screen.
func (a *App) CurrentRoute() Route {
	return a.route
}
