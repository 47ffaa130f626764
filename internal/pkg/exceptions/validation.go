package exceptions

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors flattens validator errors into "field tag" pairs for the start-up log.
func FormatValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	messages := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		message := fmt.Sprintf("%s failed on %s", fieldErr.Namespace(), fieldErr.Tag())
		if fieldErr.Param() != "" {
			message = fmt.Sprintf("%s=%s", message, fieldErr.Param())
		}
		messages = append(messages, message)
	}
	return strings.Join(messages, ", ")
}
