// Package formclient drives a contact form against the submission
// endpoint, mirroring the browser form controller's state machine:
//
//	Idle → Submitting → {success: fields reset | field errors or
//	server failure: fields preserved} → Idle
//
// A submission in flight blocks further submits (the double-click guard);
// the live message counter reports UTF-16 code units so it always matches
// a browser's String.length for the same text.
//
// End-to-end style tests use this package where the original project
// would use a Playwright page object.
package formclient
