package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator plugs go-playground/validator into echo's c.Validate.
type Validator struct {
	v *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{v: validator.New()}
}

func (vd *Validator) Validate(i any) error {
	if err := vd.v.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, map[string]any{"detail": err.Error()})
	}
	return nil
}
