// Package response writes the JSON bodies of the development backend. Success
// bodies are bare payloads; failures always carry a message.
package response

import (
	"net/http"

	domainerrors "freshdeal/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// OK writes body with status 200.
func OK(c echo.Context, body any) error {
	return c.JSON(http.StatusOK, body)
}

// Created writes body with status 201.
func Created(c echo.Context, body any) error {
	return c.JSON(http.StatusCreated, body)
}

// Message acknowledges an action that has nothing else to return.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, domainerrors.MessageBody{Success: true, Message: message})
}

// Error writes the failure body the client reads the message from.
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.ErrorBody{Message: message, Code: errorCode})
}

// BindingError reports a body or parameter that could not be decoded.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message)
}

func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, "UNAUTHORIZED", message)
}

func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, "FORBIDDEN", message)
}

func InternalServerError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error, please try again later")
}
