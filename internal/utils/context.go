// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes typed request context values, HTTP response writing, HTTP client
// initialization, session token generation and validation, and id
// generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-campus-blog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// userCtxKey stores the authenticated user resolved by the protect
// middleware.
var userCtxKey = contextKey("user")

// WithUser returns a copy of ctx carrying the authenticated user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userCtxKey, user)
}

// UserFromContext retrieves the authenticated user.
//
// Returns ok == false when the request did not pass through the protect
// middleware.
func UserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userCtxKey).(models.User)
	return user, ok
}

// GetUserIDFromContext retrieves only the authenticated user's id.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	user, ok := UserFromContext(ctx)
	if !ok || user.ID == "" {
		return "", false
	}
	return user.ID, true
}
