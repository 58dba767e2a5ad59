// Package validator provides a small rule-based validation engine.
//
// Each rule pairs a check closure with the error to record when the check
// fails. Apply runs every rule and collects every failure, so callers get
// all invalid fields in one pass instead of stopping at the first:
//
//	errs := validator.Apply(
//		validator.MinTrimmedLen("name", req.Name, 2),
//		validator.ValidEmail("email", req.Email),
//		validator.True("consent", req.Consent),
//	)
//	if !errs.IsEmpty() {
//		return errs.ToMap() // field → message
//	}
//
// Rules carry generic default messages; surfaces that promise exact
// wording override them with WithMessage.
package validator
