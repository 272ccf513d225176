// Package identity carries the authenticated principal of a request through context.Context.
package identity

import "context"

type contextKey struct{}

// Identity is the authenticated principal attached to a request.
type Identity struct {
	UserID uint64
}

// WithContext returns a copy of ctx carrying id.
func WithContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// FromContext returns the identity stored in ctx, if any.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(contextKey{}).(Identity)

	return id, ok
}
