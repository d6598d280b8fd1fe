package token

import (
	"encoding/base64"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

// signedToken mints a real HS256 token carrying the given claims, the
// same way the backend issues them.
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	claims["exp"] = jwt.NewNumericDate(time.Now().Add(time.Hour))
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("secretKey"))
	require.NoError(t, err)
	return s
}

// rawToken builds a two-segment token with an arbitrary payload. The
// decoder must accept these: it reads claims, it does not verify.
func rawToken(t *testing.T, payload any) string {
	t.Helper()
	b, err := json.Marshal(payload)
	require.NoError(t, err)
	return "header." + base64.RawURLEncoding.EncodeToString(b)
}

func TestRoleOf_ClaimPriority(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
		want   string
	}{
		{"role field", jwt.MapClaims{"role": "ADMIN"}, "ADMIN"},
		{"roles string", jwt.MapClaims{"roles": "USER"}, "USER"},
		{"roles list", jwt.MapClaims{"roles": []string{"ADMIN", "USER"}}, "ADMIN"},
		{"authorities list", jwt.MapClaims{"authorities": []string{"USER"}}, "USER"},
		{"role wins over roles", jwt.MapClaims{"role": "ADMIN", "roles": "USER"}, "ADMIN"},
		{"roles wins over authorities", jwt.MapClaims{"roles": "USER", "authorities": []string{"ADMIN"}}, "USER"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			role, ok := RoleOf(signedToken(t, tc.claims))
			require.True(t, ok)
			require.Equal(t, tc.want, role)
		})
	}
}

func TestRoleOf_NoRoleClaim(t *testing.T) {
	tests := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"no role at all", jwt.MapClaims{"sub": "alice@example.org"}},
		{"empty role", jwt.MapClaims{"role": ""}},
		{"empty authorities", jwt.MapClaims{"authorities": []string{}}},
		{"non-string role", jwt.MapClaims{"role": 42}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			role, ok := RoleOf(signedToken(t, tc.claims))
			require.False(t, ok)
			require.Empty(t, role)
		})
	}
}

func TestRoleOf_MalformedToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no dots", "notatoken"},
		{"invalid base64", "header.!!!not-base64!!!.sig"},
		{"invalid json", "header." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig"},
		{"json scalar payload", "header." + base64.RawURLEncoding.EncodeToString([]byte(`"ADMIN"`)) + ".sig"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			role, ok := RoleOf(tc.token)
			require.False(t, ok)
			require.Empty(t, role)
		})
	}
}

// The decoder reads the payload segment only, so an unsigned two-segment
// token decodes the same as a signed three-segment one.
func TestRoleOf_TwoSegmentToken(t *testing.T) {
	role, ok := RoleOf(rawToken(t, map[string]string{"role": "ADMIN"}))
	require.True(t, ok)
	require.Equal(t, "ADMIN", role)
}

// URL-safe payloads containing '-' and '_' must decode after character
// substitution.
func TestRoleOf_URLSafeAlphabet(t *testing.T) {
	role, ok := RoleOf(rawToken(t, map[string]string{"role": "ADMIN", "sub": "a?b>c~d"}))
	require.True(t, ok)
	require.Equal(t, "ADMIN", role)
}
