// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"fmt"
	"strings"

	"editorradar/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// RequestValidator validates bound request structs using `validate` tags.
type RequestValidator struct {
	validate *validator.Validate
}

// New returns a validator with the project's custom tags registered.
func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Registration only fails for an empty tag or nil func.
	_ = v.RegisterValidation("visibility_level", func(fl validator.FieldLevel) bool {
		return entity.VisibilityLevel(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("sort_by", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()

		return value == "" || entity.SortBy(value).IsValid()
	})

	return &RequestValidator{validate: v}
}

// Validate implements echo.Validator.
func (rv *RequestValidator) Validate(i any) error {
	if err := rv.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return errors.New(describe(fieldErrs))
		}

		return errors.WithStack(err)
	}

	return nil
}

// describe renders "field: rule" pairs without echoing submitted values.
func describe(errs validator.ValidationErrors) string {
	parts := make([]string, 0, len(errs))
	for _, fe := range errs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))

			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}

	return strings.Join(parts, "; ")
}
