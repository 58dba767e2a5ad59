package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpolitiadis/leadwave/pkg/logger"
	"github.com/bpolitiadis/leadwave/pkg/mailer"
)

// stubDispatcher records calls and returns a canned result.
type stubDispatcher struct {
	calls []mailer.SendParams
	id    string
	err   error
}

func (d *stubDispatcher) Send(_ context.Context, params mailer.SendParams) (string, error) {
	d.calls = append(d.calls, params)
	if d.err != nil {
		return "", d.err
	}
	return d.id, nil
}

func newTestHandler(d Dispatcher) http.Handler {
	h := NewHandler(d, logger.NewNope(), Config{ToEmail: "inbox@example.com"})
	r := chi.NewRouter()
	h.Routes(r)
	return r
}

type formFile struct {
	fieldName   string
	fileName    string
	contentType string
	content     []byte
}

func formRequest(t *testing.T, fields map[string]string, file *formFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreatePart(textproto.MIMEHeader{
			"Content-Disposition": {`form-data; name="` + file.fieldName + `"; filename="` + file.fileName + `"`},
			"Content-Type":        {file.contentType},
		})
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/contact", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func validFields() map[string]string {
	return map[string]string{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"subject": "general",
		"message": "This is a long enough message.",
		"consent": "true",
	}
}

func TestSubmit_Accepted(t *testing.T) {
	t.Parallel()

	dispatcher := &stubDispatcher{id: "msg_1"}
	rec := httptest.NewRecorder()
	newTestHandler(dispatcher).ServeHTTP(rec, formRequest(t, validFields(), nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Email sent successfully"}`, rec.Body.String())

	require.Len(t, dispatcher.calls, 1)
	call := dispatcher.calls[0]
	assert.Equal(t, "inbox@example.com", call.To)
	assert.Equal(t, "jane@example.com", call.ReplyTo)
	assert.Equal(t, "contact.md", call.Template)
	assert.Empty(t, call.Attachments)
}

func TestSubmit_Rejected_AllFieldsReported(t *testing.T) {
	t.Parallel()

	dispatcher := &stubDispatcher{id: "msg_1"}
	rec := httptest.NewRecorder()
	// Consent must be present for binding, but false still fails the rule.
	newTestHandler(dispatcher).ServeHTTP(rec, formRequest(t, map[string]string{"consent": "false"}, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Success bool              `json:"success"`
		Errors  map[string]string `json:"errors"`
		Data    map[string]any    `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.False(t, resp.Success)
	require.Len(t, resp.Errors, 5)
	assert.Equal(t, "Name must be at least 2 characters long", resp.Errors["name"])
	assert.Equal(t, "Email is required", resp.Errors["email"])
	assert.Equal(t, "Please select a subject", resp.Errors["subject"])
	assert.Equal(t, "Message must be at least 10 characters long", resp.Errors["message"])
	assert.Equal(t, "You must agree to the terms and conditions", resp.Errors["consent"])

	assert.Empty(t, dispatcher.calls, "dispatch must not happen when validation fails")
}

func TestSubmit_Rejected_EchoesSubmittedData(t *testing.T) {
	t.Parallel()

	fields := validFields()
	fields["email"] = "invalid-email"

	dispatcher := &stubDispatcher{}
	rec := httptest.NewRecorder()
	newTestHandler(dispatcher).ServeHTTP(rec, formRequest(t, fields, nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
		Data   struct {
			Name    string `json:"name"`
			Email   string `json:"email"`
			Message string `json:"message"`
			Consent bool   `json:"consent"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Please enter a valid email address", resp.Errors["email"])
	assert.Equal(t, "Jane Doe", resp.Data.Name)
	assert.Equal(t, "invalid-email", resp.Data.Email)
	assert.Equal(t, "This is a long enough message.", resp.Data.Message)
	assert.True(t, resp.Data.Consent)
}

func TestSubmit_AttachmentErrorIndependentOfFields(t *testing.T) {
	t.Parallel()

	// Valid fields with a disallowed file type still produce exactly one
	// attachment error.
	bad := &formFile{
		fieldName:   "attachment",
		fileName:    "virus.exe",
		contentType: "application/x-msdownload",
		content:     []byte("MZ"),
	}

	dispatcher := &stubDispatcher{}
	rec := httptest.NewRecorder()
	newTestHandler(dispatcher).ServeHTTP(rec, formRequest(t, validFields(), bad))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t,
		"File type not allowed. Please upload PDF, DOC, DOCX, TXT, JPG, JPEG, PNG, or GIF files",
		resp.Errors["attachment"])
	assert.Empty(t, dispatcher.calls)
}

func TestSubmit_AttachmentForwardedToDispatcher(t *testing.T) {
	t.Parallel()

	file := &formFile{
		fieldName:   "attachment",
		fileName:    "notes.txt",
		contentType: "text/plain",
		content:     []byte("some notes"),
	}

	dispatcher := &stubDispatcher{id: "msg_2"}
	rec := httptest.NewRecorder()
	newTestHandler(dispatcher).ServeHTTP(rec, formRequest(t, validFields(), file))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, dispatcher.calls, 1)
	require.Len(t, dispatcher.calls[0].Attachments, 1)

	att := dispatcher.calls[0].Attachments[0]
	assert.Equal(t, "notes.txt", att.Filename)
	assert.Equal(t, "text/plain", att.ContentType)
	assert.Equal(t, []byte("some notes"), att.Content)
}

func TestSubmit_DispatchFailure(t *testing.T) {
	t.Parallel()

	dispatcher := &stubDispatcher{err: errors.New("resend: api key revoked")}
	rec := httptest.NewRecorder()
	newTestHandler(dispatcher).ServeHTTP(rec, formRequest(t, validFields(), nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"Failed to send email. Please try again later."}`, rec.Body.String())
	// The provider error must never reach the client.
	assert.NotContains(t, rec.Body.String(), "api key")
}

func TestSubmit_ParseFailure(t *testing.T) {
	t.Parallel()

	dispatcher := &stubDispatcher{}
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	newTestHandler(dispatcher).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":"An unexpected error occurred. Please try again later."}`, rec.Body.String())
	assert.Empty(t, dispatcher.calls)
}

func TestSubmit_HoneypotSkipsDispatch(t *testing.T) {
	t.Parallel()

	fields := validFields()
	fields["website"] = "https://spam.example"

	dispatcher := &stubDispatcher{}
	rec := httptest.NewRecorder()
	newTestHandler(dispatcher).ServeHTTP(rec, formRequest(t, fields, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"message":"Email sent successfully"}`, rec.Body.String())
	assert.Empty(t, dispatcher.calls, "honeypot submissions must not send email")
}
