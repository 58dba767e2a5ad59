package formclient

import "errors"

var (
	// ErrSubmissionInFlight is returned when Submit is called while a
	// previous submission has not completed. No HTTP request is made.
	ErrSubmissionInFlight = errors.New("formclient: submission already in flight")

	// ErrEncodeForm is returned when the multipart body cannot be built.
	ErrEncodeForm = errors.New("formclient: failed to encode form")

	// ErrBadResponse is returned when the endpoint's response is not valid JSON.
	ErrBadResponse = errors.New("formclient: malformed response body")
)
