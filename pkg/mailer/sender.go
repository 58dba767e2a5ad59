package mailer

import "context"

// Sender defines the minimal interface that email providers must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message. The Email must have To, Subject,
	// and HTML already set. On success it returns the provider-assigned
	// message ID; on failure the error carries the provider detail.
	Send(ctx context.Context, email *Email) (string, error)
}
