// Package client contains the HTTP gateway to the quote journal backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface)
//     covering the full backend surface: auth, quote listing by scope,
//     quote create/delete, and the admin dashboard operations.
//  2. A concrete net/http implementation (see HTTPClient) configured
//     with a base URL. Every outgoing request passes through a transport
//     hook that attaches the stored token as a bearer credential when one
//     is present and sends the request unmodified otherwise. There is no
//     response interception, no retry, and no token refresh: a 401/403 is
//     surfaced to the caller as-is, which is also the only client-side
//     signal that a stored token has expired.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses produce a
// *APIError carrying the HTTP status and the server-provided message
// (when the body has one); 401 and 403 additionally match
// ErrUnauthorized via errors.Is. Nothing is retried.
package client
