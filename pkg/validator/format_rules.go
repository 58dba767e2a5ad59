package validator

import (
	"regexp"
	"strings"
)

var (
	// emailRegex is deliberately simple: one local part, one domain with a
	// dot, no whitespace. Full RFC 5322 parsing rejects addresses that real
	// providers accept, so the check stays permissive.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// phoneRegex matches permissive international numbers after formatting
	// characters have been stripped: optional +, no leading zero, up to 16 digits.
	phoneRegex = regexp.MustCompile(`^[+]?[1-9]\d{0,15}$`)

	// phoneFormattingChars are cosmetic characters users type into phone fields.
	phoneFormattingChars = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
)

// ValidEmail validates that a string looks like an email address.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid email address",
		},
	}
}

// OptionalPhone validates an optional phone number. An empty value passes;
// a non-empty value must look like an international phone number once
// spaces, hyphens and parentheses are stripped.
func OptionalPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			trimmed := strings.TrimSpace(value)
			if trimmed == "" {
				return true
			}
			return phoneRegex.MatchString(phoneFormattingChars.Replace(trimmed))
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be a valid phone number",
		},
	}
}
