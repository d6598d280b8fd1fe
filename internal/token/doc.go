// Package token manages the single bearer credential the client holds.
//
// It provides:
//  1. Store: get/set/clear over one persisted token string. Presence of
//     a token means "authenticated"; absence means "anonymous". A new
//     login overwrites any prior token, logout deletes it. There is no
//     client-side expiry tracking: a stored token stays "valid" until
//     explicitly cleared, and server rejection on use is the only expiry
//     signal.
//  2. RoleOf: a non-authoritative read of the role claim embedded in a
//     token's payload segment. It never verifies the signature and never
//     returns an error; security enforcement is entirely the server's
//     job, and this read exists only so the UI can avoid rendering
//     screens the user cannot act on.
//
// RoleOf is a pure function: it never touches a Store.
package token
