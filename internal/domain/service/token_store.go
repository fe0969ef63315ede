package service

import "context"

// TokenStore holds the bearer credential of the current session.
// Writes only come from login and logout.
type TokenStore interface {
	// Get returns the stored token, or "" when unauthenticated.
	Get(ctx context.Context) (string, error)

	// Set replaces the stored token.
	Set(ctx context.Context, token string) error

	// Clear removes the stored token.
	Clear(ctx context.Context) error
}
