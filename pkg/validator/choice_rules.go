package validator

// OneOfString validates that a string is one of the allowed values.
// An empty value fails: use this for required enum fields.
func OneOfString(field, value string, allowed []string) Rule {
	return Rule{
		Check: func() bool {
			for _, v := range allowed {
				if value == v {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be one of the allowed values",
		},
	}
}

// True validates that a boolean is set. Use for consent checkboxes and
// other must-be-accepted flags.
func True(field string, value bool) Rule {
	return Rule{
		Check: func() bool {
			return value
		},
		Error: ValidationError{
			Field:   field,
			Message: "must be accepted",
		},
	}
}
