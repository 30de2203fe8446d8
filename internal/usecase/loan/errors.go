package loan

import "strings"

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError is the modeled bad-input outcome of Create and
// ApplyPayment. It keeps per-field detail so the boundary can render a
// structured 400 body.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

func newFieldError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
