// Package validator plugs the shared struct validator into echo.
package validator

import (
	"freshdeal/internal/util"

	"github.com/labstack/echo/v4"
)

type structValidator struct{}

// New returns an echo.Validator that reports failures as validation errors.
func New() echo.Validator {
	return structValidator{}
}

func (structValidator) Validate(i any) error {
	return util.ValidateStruct(i)
}
