package errors

import (
	"net/http"

	"freshdeal/internal/errors"
)

// Kind classifies every failure an operation can surface.
type Kind string

const (
	// KindAuthMissing means no usable token was present before a call requiring one.
	KindAuthMissing Kind = "AUTH_MISSING"
	// KindNetworkFailure covers transport errors and timeouts.
	KindNetworkFailure Kind = "NETWORK_FAILURE"
	// KindServerRejection is a non-2xx response from the backend.
	KindServerRejection Kind = "SERVER_REJECTION"
	// KindValidationFailure is a local precondition that failed before any I/O.
	KindValidationFailure Kind = "VALIDATION_FAILURE"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Failure class
	HTTPCode() int     // HTTP status code, 0 when no response was received
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches predefined errors by kind and code so derived copies still match.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.kind == t.kind && e.errorCode == t.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Kind returns the failure class
func (e *BaseError) Kind() Kind {
	return e.kind
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	cloned := *e
	cloned.details = details

	return &cloned
}

// WithMessage replaces the user-facing message, e.g. with the one the server sent.
func (e *BaseError) WithMessage(message string) *BaseError {
	cloned := *e
	if message != "" {
		cloned.message = message
	}

	return &cloned
}

// WithHTTPCode records the status the server answered with.
func (e *BaseError) WithHTTPCode(code int) *BaseError {
	cloned := *e
	cloned.httpCode = code

	return &cloned
}

// Predefined error types
var (
	ErrAuthMissing = NewBaseError(
		KindAuthMissing,
		http.StatusUnauthorized,
		"AUTH_MISSING",
		"Authentication token is missing",
		"",
	)

	ErrNetworkFailure = NewBaseError(
		KindNetworkFailure,
		0,
		"NETWORK_FAILURE",
		"Network error, please check your connection and try again",
		"",
	)

	ErrRequestTimeout = NewBaseError(
		KindNetworkFailure,
		0,
		"REQUEST_TIMEOUT",
		"The request timed out, please try again",
		"",
	)

	ErrServerRejection = NewBaseError(
		KindServerRejection,
		http.StatusInternalServerError,
		"SERVER_REJECTION",
		"Something went wrong, please try again",
		"",
	)

	ErrValidationFailed = NewBaseError(
		KindValidationFailure,
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Please check the entered information",
		"",
	)

	ErrStockExceeded = NewBaseError(
		KindValidationFailure,
		http.StatusBadRequest,
		"STOCK_EXCEEDED",
		"Maximum quantity reached for this item",
		"",
	)

	ErrCartRestaurantConflict = NewBaseError(
		KindValidationFailure,
		http.StatusConflict,
		"CART_RESTAURANT_CONFLICT",
		"You can only add items from the same restaurant to your cart.",
		"",
	)

	ErrCartItemNotFound = NewBaseError(
		KindValidationFailure,
		http.StatusNotFound,
		"CART_ITEM_NOT_FOUND",
		"This item is not in your cart",
		"",
	)

	ErrSelectedAddressMissing = NewBaseError(
		KindValidationFailure,
		http.StatusBadRequest,
		"SELECTED_ADDRESS_MISSING",
		"Delivery address is required for delivery orders",
		"",
	)

	ErrAddressNotFound = NewBaseError(
		KindValidationFailure,
		http.StatusNotFound,
		"ADDRESS_NOT_FOUND",
		"Address not found",
		"",
	)

	ErrOrderNotFound = NewBaseError(
		KindValidationFailure,
		http.StatusNotFound,
		"ORDER_NOT_FOUND",
		"Order not found",
		"",
	)

	ErrPickupCodeUnavailable = NewBaseError(
		KindValidationFailure,
		http.StatusConflict,
		"PICKUP_CODE_UNAVAILABLE",
		"Pickup codes are only available for accepted pickup orders",
		"",
	)
)

// KindOf returns the failure class of err, or "" when err carries none.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return ""
}

// MessageOf returns the human-readable message carried by err, or fallback.
func MessageOf(err error, fallback string) string {
	var appErr AppError
	if errors.As(err, &appErr) && appErr.Message() != "" {
		return appErr.Message()
	}

	return fallback
}
