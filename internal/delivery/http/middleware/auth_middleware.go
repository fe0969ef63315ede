// Package middleware holds the echo middleware of the development backend.
package middleware

import (
	"strings"

	deliverycontext "freshdeal/internal/delivery/context"
	"freshdeal/internal/delivery/http/response"
	"freshdeal/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware checks bearer tokens issued by the backend.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and records its account on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header == "" {
			return response.Unauthorized(c, "Authorization header is missing")
		}

		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			return response.Unauthorized(c, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(token))
		if err != nil {
			return response.Unauthorized(c, "Invalid or expired token")
		}

		deliverycontext.SetUser(c, claims.UserID, claims.Role)

		return next(c)
	}
}

// RequireRole rejects accounts without role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if deliverycontext.GetUserRole(c) != role {
				return response.Forbidden(c, "Permission denied: require '"+role+"' role")
			}

			return next(c)
		}
	}
}
