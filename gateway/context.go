package gateway

import "context"

type contextKey int

const (
	tokenKey contextKey = iota
	unauthorizedHookKey
)

// WithToken returns a context carrying the bearer token for upstream calls.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

// TokenFrom extracts the bearer token, "" when absent.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(tokenKey).(string)
	return token
}

// WithUnauthorizedHook registers a hook the client invokes when the store API
// answers 401. The session middleware wires it to clear the auth cookies, so
// an expired token logs the customer out as a side effect of the failing call.
func WithUnauthorizedHook(ctx context.Context, hook func()) context.Context {
	return context.WithValue(ctx, unauthorizedHookKey, hook)
}

func unauthorizedHookFrom(ctx context.Context) func() {
	hook, _ := ctx.Value(unauthorizedHookKey).(func())
	return hook
}
