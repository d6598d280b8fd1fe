// Package services contains application services for the quote journal
// client. This file defines the authentication service: login, register,
// logout, and the local reads the navigation guards rely on.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/quotejournal/internal/client"
	"github.com/dmitrijs2005/quotejournal/internal/token"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a token and persist it.
//   - Register: create an account; returns the server's confirmation
//     message and never authenticates the caller.
//   - Logout: clear the stored token; no server call is made.
//   - IsAuthenticated: token presence only, no expiry check.
//   - Role: claims read over the stored token; absent on any failure.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) error
	Register(ctx context.Context, name, email string, password []byte) (string, error)
	Logout(ctx context.Context) error
	IsAuthenticated(ctx context.Context) bool
	Role(ctx context.Context) (string, bool)
}

// authService is the concrete AuthService backed by the remote API
// gateway and the local token store.
type authService struct {
	api   client.Client
	store token.Store
}

// NewAuthService constructs an AuthService bound to the given API client
// and token store.
func NewAuthService(api client.Client, store token.Store) AuthService {
	return &authService{api: api, store: store}
}

// Login exchanges credentials for a token and stores it, overwriting any
// prior token. API failures propagate untouched so the caller decides
// how to present them.
func (a *authService) Login(ctx context.Context, email string, password []byte) error {
	tok, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	if err := a.store.Set(ctx, tok); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// Register creates an account and returns the server's confirmation
// message. Registration does not authenticate: no token is stored.
func (a *authService) Register(ctx context.Context, name, email string, password []byte) (string, error) {
	return a.api.Register(ctx, name, email, string(password))
}

// Logout clears the stored token. The server is not notified; bearer
// tokens are stateless and simply stop being sent.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}

// IsAuthenticated reports whether a token is currently stored. Store
// read failures degrade to "not authenticated".
func (a *authService) IsAuthenticated(ctx context.Context) bool {
	tok, err := a.store.Get(ctx)
	return err == nil && tok != ""
}

// Role returns the role claim of the stored token, or absent when there
// is no token or it cannot be decoded.
func (a *authService) Role(ctx context.Context) (string, bool) {
	tok, err := a.store.Get(ctx)
	if err != nil || tok == "" {
		return "", false
	}
	return token.RoleOf(tok)
}
