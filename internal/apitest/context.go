package apitest

import "context"

// contextWithCaller stashes the authenticated account in the request
// context so handlers behind the auth middleware can read it.
func contextWithCaller(ctx context.Context, caller *account) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}

func callerFrom(ctx context.Context) *account {
	caller, _ := ctx.Value(callerKey).(*account)
	return caller
}
