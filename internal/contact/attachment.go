package contact

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"

	"github.com/bpolitiadis/leadwave/pkg/mailer"
)

// MaxAttachmentSize is the upload limit for the optional attachment (5 MB).
const MaxAttachmentSize = 5 << 20

// Attachment error messages, part of the HTTP contract like the field
// messages in validate.go.
const (
	msgFileTooLarge  = "File size must be less than 5MB"
	msgFileBadType   = "File type not allowed. Please upload PDF, DOC, DOCX, TXT, JPG, JPEG, PNG, or GIF files"
	fallbackMIMEType = "application/octet-stream"
	attachmentErrKey = "attachment"
)

// allowedAttachmentTypes is the MIME whitelist for uploads.
var allowedAttachmentTypes = map[string]struct{}{
	"application/pdf":    {},
	"application/msword": {},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {},
	"text/plain": {},
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
}

// ValidateAttachment checks an optional uploaded file against the size
// limit and MIME whitelist. A nil file is valid (the field is optional).
// Size is checked before type, so an oversized file of a disallowed type
// reports the size message. The returned string is empty when the file
// is acceptable.
func ValidateAttachment(fh *multipart.FileHeader) string {
	if fh == nil {
		return ""
	}

	if fh.Size > MaxAttachmentSize {
		return msgFileTooLarge
	}

	if _, ok := allowedAttachmentTypes[attachmentMIMEType(fh)]; !ok {
		return msgFileBadType
	}
	return ""
}

// attachmentMIMEType normalizes the declared content type of an upload,
// dropping parameters like charset.
func attachmentMIMEType(fh *multipart.FileHeader) string {
	declared := fh.Header.Get("Content-Type")
	if declared == "" {
		return fallbackMIMEType
	}
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil {
		return fallbackMIMEType
	}
	return mediaType
}

// readAttachment reads an uploaded file fully into memory as an email
// attachment. Attachments are relayed to the email provider and never
// persisted, so the 5 MB cap keeps this safe.
func readAttachment(fh *multipart.FileHeader) (mailer.Attachment, error) {
	f, err := fh.Open()
	if err != nil {
		return mailer.Attachment{}, fmt.Errorf("open attachment: %w", err)
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return mailer.Attachment{}, fmt.Errorf("read attachment: %w", err)
	}

	return mailer.Attachment{
		Filename:    fh.Filename,
		ContentType: attachmentMIMEType(fh),
		Content:     content,
	}, nil
}
