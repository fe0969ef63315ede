package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "freshdeal/internal/delivery/context"
	"freshdeal/internal/delivery/http/response"
	"freshdeal/internal/domain/repository"
	"freshdeal/internal/domain/service"
	"freshdeal/internal/errors"
	"freshdeal/internal/infra/api/dto"
	"freshdeal/internal/infra/persistence/stubdb"

	"github.com/labstack/echo/v4"
)

// AuthHandler issues tokens and creates accounts.
type AuthHandler struct {
	backend *stubdb.Backend
	tokens  service.TokenService
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(backend *stubdb.Backend, tokens service.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{backend: backend, tokens: tokens, logger: logger}
}

// Login exchanges email or phone credentials for a bearer token.
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.backend.Authenticate(c.Request().Context(), repository.Credentials{
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	token, err := h.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return errors.Wrap(err, "failed to issue token")
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Info("User logged in", slog.Int64("user_id", user.ID), slog.String("login_type", req.LoginType))

	return response.OK(c, dto.LoginResponse{Token: token})
}

// Register creates a customer or restaurant account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.backend.Register(c.Request().Context(), repository.Registration{
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
		Role:        req.Role,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "User registered successfully")
}
