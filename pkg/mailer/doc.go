// Package mailer provides templated transactional email sending.
//
// Templates are markdown files with YAML frontmatter rendered through
// goldmark into an HTML layout. The Sender interface abstracts the email
// provider; the resend subpackage implements it against the Resend API.
//
//	renderer := mailer.NewRendererWithConfig(templatesFS, mailer.RendererConfig{
//		TemplateDir: "emails",
//		LayoutDir:   "layouts",
//	})
//	m := mailer.New(resend.New(cfg), renderer, mailer.Config{})
//
//	id, err := m.Send(ctx, mailer.SendParams{
//		To:       "inbox@example.com",
//		Template: "contact.md",
//		Data:     payload,
//	})
//
// Send returns the provider-assigned message ID on success. Errors carry
// the provider detail; callers that face end users must map them to
// generic messages instead of exposing them.
package mailer
