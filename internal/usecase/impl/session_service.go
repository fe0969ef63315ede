// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "freshdeal/internal/delivery/context"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/domain/service"
	"freshdeal/internal/errors"
	"freshdeal/internal/usecase"

	"github.com/golang-jwt/jwt/v5"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tokens service.TokenStore
	logger *slog.Logger
	now    func() time.Time
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	tokens service.TokenStore,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		tokens: tokens,
		logger: logger,
		now:    time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Token returns the stored bearer token.
func (srv *sessionService) Token(ctx context.Context) (string, error) {
	token, err := srv.tokens.Get(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to read token")
	}

	return strings.TrimSpace(token), nil
}

// RequireToken returns the stored token when it is present and not expired.
// Tokens that are not JWTs are treated as opaque and accepted.
func (srv *sessionService) RequireToken(ctx context.Context) (string, error) {
	token, err := srv.Token(ctx)
	if err != nil {
		srv.log(ctx).Warn("Token store unavailable", slog.Any("error", err))

		return "", domainerrors.ErrAuthMissing.WithDetails(err.Error())
	}
	if token == "" {
		return "", domainerrors.ErrAuthMissing
	}

	if srv.expired(token) {
		srv.log(ctx).Info("Stored token has expired")

		return "", domainerrors.ErrAuthMissing.WithDetails("token expired")
	}

	return token, nil
}

// expired inspects the exp claim without verifying the signature; the server
// stays the authority on validity.
func (srv *sessionService) expired(token string) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}

	return !srv.now().Before(claims.ExpiresAt.Time)
}

// Begin stores a token issued by login.
func (srv *sessionService) Begin(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrAuthMissing.WithDetails("empty token issued")
	}
	if err := srv.tokens.Set(ctx, token); err != nil {
		return errors.Wrap(err, "failed to store token")
	}
	srv.log(ctx).Debug("Session started")

	return nil
}

// End clears the stored token.
func (srv *sessionService) End(ctx context.Context) error {
	if err := srv.tokens.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear token")
	}
	srv.log(ctx).Debug("Session ended")

	return nil
}
