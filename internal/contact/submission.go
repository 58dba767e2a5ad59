package contact

import "mime/multipart"

// Submission is the data carried by one contact-form submit attempt.
// It is constructed from a single HTTP request body, validated
// synchronously, and discarded after the response is sent.
type Submission struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Phone   string `form:"phone"`
	Subject string `form:"subject"`
	Message string `form:"message"`
	Consent bool   `form:"consent"`

	// Website is a honeypot: the rendered form hides it, so any value
	// here was filled in by a bot.
	Website string `form:"website"`

	Attachment *multipart.FileHeader `file:"attachment"`
}

// subjectLabels maps subject categories to the display labels used in the
// notification email's subject line. The key set doubles as the allowed
// enum for validation.
var subjectLabels = map[string]string{
	"general":     "General Inquiry",
	"support":     "Technical Support",
	"partnership": "Partnership Opportunity",
	"feedback":    "Feedback",
	"other":       "Other",
}

// Subjects returns the allowed subject categories.
func Subjects() []string {
	return []string{"general", "support", "partnership", "feedback", "other"}
}

// SubjectLabel returns the display label for a subject category.
// Unknown categories fall back to the raw value.
func SubjectLabel(subject string) string {
	if label, ok := subjectLabels[subject]; ok {
		return label
	}
	return subject
}
