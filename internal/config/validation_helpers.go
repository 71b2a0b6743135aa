package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	buildifyerrors "github.com/alexisbeaulieu97/buildify/pkg/errors"
)

// ValidateStruct runs the shared validator over value and normalizes the
// result into a ValidationError.
func ValidateStruct(value any) error {
	return convertValidationError(validatorInstance().Struct(value))
}

// convertValidationError normalizes validator errors into buildify validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return buildifyerrors.NewValidationError(field, msg, err)
	}

	return buildifyerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
