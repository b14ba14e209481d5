package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/focuskit/pkg/errors"
)

// convertValidationError normalizes validator errors into focuskit
// validation errors. Grid navigation without columns surfaces as a
// MisconfigurationError in the chain so callers handle it like the one
// NewNavigator returns.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if field == "navigation.columns" && ve.Tag() == "required_if" {
			cause := apperrors.NewMisconfigurationError("navigator", "columns",
				"grid navigation requires a positive column count")
			return apperrors.NewValidationError(field, cause.Error(), cause)
		}
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

// yamlFieldName drops the root struct name from the namespace; the
// remaining segments are yaml keys because the validator is configured with
// a yaml tag name function.
func yamlFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}
