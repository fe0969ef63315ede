package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "freshdeal/internal/delivery/context"
	"freshdeal/internal/delivery/http/response"
	domainerrors "freshdeal/internal/domain/errors"
	"freshdeal/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware turns handler errors into error bodies.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		code := appErr.HTTPCode()
		if code == 0 {
			code = http.StatusBadGateway
		}
		message := appErr.Message()
		if appErr.Kind() == domainerrors.KindValidationFailure && appErr.Details() != "" {
			message += ": " + appErr.Details()
		}
		_ = response.Error(c, code, appErr.ErrorCode(), message)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message)

		return
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
	_ = response.InternalServerError(c)
}
