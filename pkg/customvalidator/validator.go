// Файл: pkg/customvalidator/validator.go

package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"document-system/pkg/constants"
)

// RegisterCustomValidations регистрирует правила для словарных полей
// документа в переданном экземпляре валидатора.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("doc_channel", isValidChannel); err != nil {
		return err
	}
	if err := v.RegisterValidation("doc_request_type", isValidRequestType); err != nil {
		return err
	}
	if err := v.RegisterValidation("doc_status", isValidStatus); err != nil {
		return err
	}
	return nil
}

func isValidChannel(fl validator.FieldLevel) bool {
	return constants.IsValidChannel(fl.Field().String())
}

func isValidRequestType(fl validator.FieldLevel) bool {
	return constants.IsValidRequestType(fl.Field().String())
}

func isValidStatus(fl validator.FieldLevel) bool {
	return constants.IsValidStatus(fl.Field().String())
}
