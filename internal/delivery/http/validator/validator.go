// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CustomValidator wraps go-playground/validator for Echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a new CustomValidator instance.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(),
	}
}

// Validate validates the given struct against its validate tags.
func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return nil
}
