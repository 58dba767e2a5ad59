// Package contact implements the contact-form submission pipeline:
// multipart parsing, exhaustive field and attachment validation, and
// notification email dispatch.
//
// A Submission lives for exactly one request. Validation always runs
// before dispatch and reports every failing field in one response, never
// one at a time. Dispatch and unexpected failures are terminal for the
// request: there is no automatic retry, and provider error detail is
// logged but never returned to the client.
package contact
