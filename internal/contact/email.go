package contact

import (
	"embed"
	"fmt"

	"github.com/bpolitiadis/leadwave/pkg/mailer"
	"github.com/bpolitiadis/leadwave/pkg/sanitizer"
)

//go:embed templates
var templatesFS embed.FS

// NewRenderer builds the mailer renderer backed by the embedded
// notification templates.
func NewRenderer() *mailer.Renderer {
	return mailer.NewRendererWithConfig(templatesFS, mailer.RendererConfig{
		TemplateDir: "templates",
		LayoutDir:   "templates/layouts",
	})
}

// notificationTemplate is the markdown template rendered into the
// notification email body.
const notificationTemplate = "contact.md"

// emailData is the payload handed to the notification template. All
// user-supplied values are stripped of HTML before they get here.
type emailData struct {
	Name           string
	Email          string
	Phone          string
	SubjectLabel   string
	Message        string
	AttachmentName string
	AttachmentSize string
}

// newEmailData builds template data from a valid submission. Markup in
// user input is stripped so a message like "<script>…" cannot inject into
// the rendered email.
func newEmailData(s Submission) emailData {
	data := emailData{
		Name:         sanitizer.StripHTML(s.Name),
		Email:        sanitizer.StripHTML(s.Email),
		Phone:        sanitizer.StripHTML(s.Phone),
		SubjectLabel: SubjectLabel(s.Subject),
		Message:      sanitizer.StripHTML(s.Message),
	}
	if s.Attachment != nil {
		data.AttachmentName = sanitizer.StripHTML(s.Attachment.Filename)
		data.AttachmentSize = formatSize(s.Attachment.Size)
	}
	return data
}

// formatSize renders a byte count the way the form's copy does (KB/MB).
func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
