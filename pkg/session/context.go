package session

import (
	"context"

	"github.com/google/uuid"
)

// User is the request-scoped identity attached to the context after a token
// has been verified. Token carries the original composite token so downstream
// calls can forward it.
type User struct {
	ID       uuid.UUID
	Username string
	Token    string
}

type userContextKey struct{}

// WithUser adds an authenticated user to the context.
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext retrieves the authenticated user from the context.
func UserFromContext(ctx context.Context) (User, bool) {
	user, ok := ctx.Value(userContextKey{}).(User)
	return user, ok
}

// MustUserFromContext retrieves the authenticated user or panics. Use only
// behind RequireAuth.
func MustUserFromContext(ctx context.Context) User {
	user, ok := UserFromContext(ctx)
	if !ok {
		panic("session: user not found in context")
	}
	return user
}
