package validator

import (
	"strings"

	apperrors "github.com/xyz-asif/memtodo/pkg/errors"
)

// FieldError is one rejected input.
type FieldError struct {
	Field   string `json:"field" example:"title"`
	Message string `json:"message" example:"Title is required"`
}

// FieldErrors collects every rule a request broke, in the order checked.
type FieldErrors []FieldError

func (e *FieldErrors) Add(field, message string) {
	*e = append(*e, FieldError{Field: field, Message: message})
}

// Err returns nil when nothing was collected, so callers can return it directly.
func (e FieldErrors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

func (e FieldErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e FieldErrors) Unwrap() error {
	return apperrors.ErrValidation
}
