// Package auth resolves the current signed-in user. Having no user is a
// valid steady state, not an error.
package auth

import "context"

// Provider exposes the stable identifier of the current signed-in user.
type Provider interface {
	// UserID returns the current user's identifier, and false when no
	// user is signed in.
	UserID(ctx context.Context) (string, bool)
}

type contextKey struct{}

// WithUserID returns a context carrying the signed-in user's identifier.
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// ContextProvider reads the user id placed in the request context by
// Middleware.
type ContextProvider struct{}

// UserID implements Provider.
func (ContextProvider) UserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(contextKey{}).(string)
	return userID, ok && userID != ""
}

// Static is a Provider bound to a fixed user id, for tooling and tests.
// An empty id means no signed-in user.
type Static string

// UserID implements Provider.
func (s Static) UserID(context.Context) (string, bool) {
	return string(s), s != ""
}
