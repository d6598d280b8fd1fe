package cli

import (
	"context"

	"github.com/dmitrijs2005/quotejournal/internal/models"
	"github.com/dmitrijs2005/quotejournal/internal/services"
)

// Guard decides synchronously whether navigation to a view may proceed.
// When it may not, the guard names the route to redirect to instead.
//
// Guards consult only local state (token presence and its decoded role
// claim); no network round-trip happens here. They are a UX convenience,
// not an authorization boundary: the server re-checks every request.
type Guard func(ctx context.Context) (redirect string, allowed bool)

// RequireAuth permits navigation only when a token is stored, regardless
// of role. Anonymous users are redirected to the login route.
func RequireAuth(auth services.AuthService, loginRoute string) Guard {
	return func(ctx context.Context) (string, bool) {
		if !auth.IsAuthenticated(ctx) {
			return loginRoute, false
		}
		return "", true
	}
}

// RequireAdmin permits navigation only when a token is stored and its
// role claim is ADMIN. Anonymous users go to the login route; signed-in
// non-admins go to the fallback route.
func RequireAdmin(auth services.AuthService, loginRoute, fallbackRoute string) Guard {
	return func(ctx context.Context) (string, bool) {
		if !auth.IsAuthenticated(ctx) {
			return loginRoute, false
		}
		if role, ok := auth.Role(ctx); !ok || role != models.RoleAdmin {
			return fallbackRoute, false
		}
		return "", true
	}
}
