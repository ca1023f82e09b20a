package utils

import (
	"github.com/go-playground/validator/v10"

	apperrors "document-system/pkg/errors"
)

// Validator — адаптер go-playground/validator под echo.Validator.
type Validator struct {
	validate *validator.Validate
}

func NewValidator(v *validator.Validate) *Validator {
	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperrors.NewInvalidInputError("ошибка валидации: %v", err)
	}
	return nil
}
