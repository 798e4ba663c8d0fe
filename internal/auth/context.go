package auth

import "context"

type contextKey struct{}

// UserContext describes the authenticated admin on a request
type UserContext struct {
	Username string
}

// WithContext stores the authenticated user on the request context
func WithContext(ctx context.Context, user *UserContext) context.Context {
	return context.WithValue(ctx, contextKey{}, user)
}

// FromContext retrieves the authenticated user, if any
func FromContext(ctx context.Context) (*UserContext, bool) {
	user, ok := ctx.Value(contextKey{}).(*UserContext)
	return user, ok
}
