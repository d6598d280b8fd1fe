package token

import "context"

// Store persists the single auth token between invocations.
//
// Contract:
//   - Get returns the current token, or "" when none is stored.
//   - Set overwrites any existing token.
//   - Clear removes the token and is a no-op when nothing is stored.
type Store interface {
	Get(ctx context.Context) (string, error)
	Set(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
