package validator

import (
	"fmt"
	"strings"
)

// ValidationError represents a single field validation failure.
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any error exists for the given field.
func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns all messages recorded for the given field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

// IsEmpty reports whether no validation errors were recorded.
func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// ToMap flattens the errors into a field→message map keeping the first
// message per field. Rule order therefore decides which message a field
// surfaces when several rules fail for it.
func (ve ValidationErrors) ToMap() map[string]string {
	if len(ve) == 0 {
		return nil
	}
	m := make(map[string]string, len(ve))
	for _, err := range ve {
		if _, exists := m[err.Field]; !exists {
			m[err.Field] = err.Message
		}
	}
	return m
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// WithMessage overrides the rule's default error message. Use where the
// surface (an API response, a form) promises an exact wording.
func (r Rule) WithMessage(message string) Rule {
	r.Error.Message = message
	return r
}

// Apply executes all rules and collects every failure. Rules never
// short-circuit: a submission with five invalid fields yields five
// errors in one pass.
func Apply(rules ...Rule) ValidationErrors {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}
	return errs
}
