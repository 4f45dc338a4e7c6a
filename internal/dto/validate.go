package dto

import "strings"

// FieldError is a single validation failure tied to an input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the result of validating an input struct. A nil/empty
// slice means the input is acceptable; validation never touches the store.
type FieldErrors []FieldError

func (e FieldErrors) Ok() bool {
	return len(e) == 0
}

func (e *FieldErrors) require(field, value, message string) {
	if strings.TrimSpace(value) == "" {
		*e = append(*e, FieldError{Field: field, Message: message})
	}
}
