// Package usecase contains the application-specific business rules.
package usecase

import "context"

// SessionUsecase is the session context injected into every operation.
type SessionUsecase interface {
	// Token returns the stored bearer token, or "" when logged out.
	Token(ctx context.Context) (string, error)

	// RequireToken returns a usable token or ErrAuthMissing. Expired tokens count as missing.
	RequireToken(ctx context.Context) (string, error)

	// Begin stores a freshly issued token.
	Begin(ctx context.Context, token string) error

	// End forgets the token.
	End(ctx context.Context) error
}
