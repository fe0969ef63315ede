package util

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	domainerrors "freshdeal/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}

		return tag
	})

	return v
}

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	return validate
}

// ValidateStruct checks the validate tags of v and returns ErrValidationFailed
// listing every failing field.
func ValidateStruct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !asValidationErrors(err, &fieldErrs) {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, fe.Field()+" "+validationMessage(fe))
	}
	sort.Strings(details)

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = fieldErrs
	}

	return ok
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_without", "required_if":
		return "is required"
	case "min", "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max", "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "email":
		return "must be a valid email"
	case "latitude", "longitude":
		return "must be a valid " + fe.Tag()
	case "nefield":
		return "must differ from " + fe.Param()
	}

	return "is invalid"
}
