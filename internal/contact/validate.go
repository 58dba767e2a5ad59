package contact

import "github.com/bpolitiadis/leadwave/pkg/validator"

// Field error messages. The browser form renders these verbatim next to
// each input, so the wording is part of the HTTP contract.
const (
	msgNameTooShort    = "Name must be at least 2 characters long"
	msgEmailRequired   = "Email is required"
	msgEmailInvalid    = "Please enter a valid email address"
	msgPhoneInvalid    = "Please enter a valid phone number"
	msgSubjectRequired = "Please select a subject"
	msgMessageTooShort = "Message must be at least 10 characters long"
	msgConsentRequired = "You must agree to the terms and conditions"
)

// Validate checks every field rule and returns all failures at once.
// It is pure and stateless: the same Submission always yields the same
// errors. Rules never short-circuit because the form renders one error
// per field simultaneously.
func Validate(s Submission) validator.ValidationErrors {
	return validator.Apply(
		validator.MinTrimmedLen("name", s.Name, 2).WithMessage(msgNameTooShort),
		validator.RequiredString("email", s.Email).WithMessage(msgEmailRequired),
		validator.ValidEmail("email", s.Email).WithMessage(msgEmailInvalid),
		validator.OptionalPhone("phone", s.Phone).WithMessage(msgPhoneInvalid),
		validator.OneOfString("subject", s.Subject, Subjects()).WithMessage(msgSubjectRequired),
		validator.MinTrimmedLen("message", s.Message, 10).WithMessage(msgMessageTooShort),
		validator.True("consent", s.Consent).WithMessage(msgConsentRequired),
	)
}
