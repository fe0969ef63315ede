// Package handler contains the HTTP handlers of the development backend.
package handler

import (
	"net/http"

	deliverycontext "freshdeal/internal/delivery/context"
	"freshdeal/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}

// currentUser returns the account set by the auth middleware.
func currentUser(c echo.Context) (int64, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return 0, echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	return userID, nil
}

// pathID reads a numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64(name, &id).BindError(); err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}

	return id, nil
}

// bindAndValidate decodes the body into req and checks its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	return c.Validate(req)
}
