// Package cli provides the interactive quote journal command-line client.
//
// It wires configuration, the token store, the API gateway, and an
// interactive REPL whose commands map onto three guarded views: the auth
// form, the quotes library, and the admin dashboard.
//
// Navigation mirrors the route model of a single-page app: each view has
// a path ("/auth", "/quotes", "/admin/dashboard"), the quotes view keeps
// its active tab in the route's query string, and guards run on every
// navigation, redirecting anonymous users to the auth view and non-admin
// users away from the dashboard. Guards are purely local checks over the
// stored token; the server independently re-checks authorization on
// every request.
//
// Key commands:
//   - register / login / logout
//   - quotes, tab <all|public|private>, search <text>, tag <TAG>
//   - add, del <id>
//   - dashboard, role <user id>, deluser <user id>
//
// The REPL is started via App.Run(ctx), which blocks until the user
// exits. See App, Navigate, and runREPL for details.
package cli
