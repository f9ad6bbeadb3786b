package domain

import "errors"

// ErrValidation is wrapped by every ValidationError.
var ErrValidation = errors.New("validation error")

// ValidationError reports a single violated field rule. Error returns the
// rule's message verbatim so front ends can show it to the user unchanged.
//
// Use errors.Is(err, ErrValidation) for simple checks, errors.Is(err, rule)
// to identify which rule failed, or errors.As(err, &verr) to read Field.
type ValidationError struct {
	Field   string
	Message string
	Rule    error
}

// NewValidationError builds a ValidationError for field that wraps rule.
func NewValidationError(field string, rule error, msg string) *ValidationError {
	return &ValidationError{Field: field, Message: msg, Rule: rule}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap exposes both ErrValidation and the field rule to errors.Is.
func (e *ValidationError) Unwrap() []error {
	if e.Rule == nil {
		return []error{ErrValidation}
	}
	return []error{ErrValidation, e.Rule}
}

