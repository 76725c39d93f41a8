package profile

import (
	"fmt"
	"strings"
)

// ValidationError lists the profile fields that failed validation.
type ValidationError struct {
	Fields []FieldError
}

// FieldError is one failed field.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s %s", f.Field, f.Message))
	}
	return fmt.Sprintf("invalid profile: %s", strings.Join(parts, "; "))
}
