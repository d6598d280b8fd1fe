package token

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

// RoleOf extracts the role claim from a token's payload segment.
//
// The token is split on '.', the middle segment is decoded as URL-safe
// base64 and parsed as JSON, and the role is resolved by checking, in
// order: a "role" field, a "roles" field (a string, or the first string
// of a list), and the first entry of an "authorities" list. Servers
// differ in which of the three they populate.
//
// This is a claims read, not a verification: the signature is ignored
// and the result must never be treated as an authorization decision.
// Any failure at any step (wrong segment count, invalid base64, invalid
// JSON, no resolvable role) yields ("", false) rather than an error.
func RoleOf(token string) (string, bool) {
	parts := strings.Split(token, ".")
	if len(parts) < 2 {
		return "", false
	}

	payload, err := decodeSegment(parts[1])
	if err != nil {
		return "", false
	}

	var claims map[string]any
	if err := json.Unmarshal(payload, &claims); err != nil {
		return "", false
	}

	if role, ok := claimString(claims["role"]); ok {
		return role, true
	}
	if role, ok := claimString(claims["roles"]); ok {
		return role, true
	}
	if list, ok := claims["authorities"].([]any); ok && len(list) > 0 {
		return claimString(list[0])
	}
	return "", false
}

// decodeSegment reverses URL-safe base64 substitutions ('-'→'+', '_'→'/')
// and decodes the segment, tolerating both padded and unpadded input.
func decodeSegment(seg string) ([]byte, error) {
	std := strings.NewReplacer("-", "+", "_", "/").Replace(seg)
	if m := len(std) % 4; m != 0 {
		std += strings.Repeat("=", 4-m)
	}
	return base64.StdEncoding.DecodeString(std)
}

// claimString coerces a decoded claim value into a role string. A plain
// string is taken as-is; a list contributes its first string element.
func claimString(v any) (string, bool) {
	switch x := v.(type) {
	case string:
		if x == "" {
			return "", false
		}
		return x, true
	case []any:
		if len(x) == 0 {
			return "", false
		}
		s, ok := x[0].(string)
		if !ok || s == "" {
			return "", false
		}
		return s, true
	default:
		return "", false
	}
}
