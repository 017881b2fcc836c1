// AngelaMos | 2026
// validate.go

package core

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

func NewValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// ValidateStruct runs struct tag validation and reports failures as
// ErrInvalidInput.
func ValidateStruct(v *validator.Validate, s any) error {
	if err := v.Struct(s); err != nil {
		return fmt.Errorf("%s: %w", FormatValidationError(err), ErrInvalidInput)
	}
	return nil
}

func FormValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

func FormInt(r *http.Request, key string) int {
	n, err := strconv.Atoi(FormValue(r, key))
	if err != nil {
		return 0
	}
	return n
}

func FormBool(r *http.Request, key string) bool {
	return FormValue(r, key) == "true"
}

// OptionalString trims s and maps the empty string to nil so optional
// columns are stored as NULL.
func OptionalString(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func StringPtr(s string) *string {
	return &s
}
