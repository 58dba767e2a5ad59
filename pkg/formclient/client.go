package formclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"sync"
)

// State is the controller's lifecycle state.
type State int

const (
	// StateIdle means the form accepts input and submission.
	StateIdle State = iota
	// StateSubmitting means a request is in flight; further submits are rejected.
	StateSubmitting
)

// Outcome describes how the last submission ended.
type Outcome int

const (
	// OutcomeNone means no submission has completed yet.
	OutcomeNone Outcome = iota
	// OutcomeSuccess means the server accepted the submission; fields were reset.
	OutcomeSuccess
	// OutcomeFieldErrors means the server rejected one or more fields; input preserved.
	OutcomeFieldErrors
	// OutcomeServerError means dispatch failed or the request never completed; input preserved.
	OutcomeServerError
)

// Attachment is a file chosen for upload.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Fields holds the form's current input values.
type Fields struct {
	Name       string
	Email      string
	Phone      string
	Subject    string
	Message    string
	Consent    bool
	Attachment *Attachment
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for submissions.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTransitionHook registers a callback invoked on every state change.
func WithTransitionHook(hook func(State)) Option {
	return func(c *Client) {
		c.onTransition = hook
	}
}

// Client drives a contact form against the submission endpoint. It mirrors
// the browser form's behavior: a guard against concurrent submissions,
// field preservation on any error path, and a reset only on success.
//
// All methods are safe for concurrent use; the HTTP call is the only
// point where the internal lock is released.
type Client struct {
	endpoint     string
	httpClient   *http.Client
	onTransition func(State)

	mu          sync.Mutex
	state       State
	fields      Fields
	fieldErrors map[string]string
	status      string
	outcome     Outcome
}

// New creates a form client targeting the given submission endpoint
// (e.g. "https://example.com/api/contact").
func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   endpoint,
		httpClient: http.DefaultClient,
		state:      StateIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetFields replaces the form's input values.
func (c *Client) SetFields(f Fields) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields = f
}

// Fields returns a copy of the current input values.
func (c *Client) Fields() Fields {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fields
}

// TypeMessage replaces the message field and returns the live character
// count, exactly as a keystroke handler would.
func (c *Client) TypeMessage(message string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fields.Message = message
	return messageLength(c.fields.Message)
}

// MessageLength returns the live character counter value for the current
// message field.
func (c *Client) MessageLength() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return messageLength(c.fields.Message)
}

// State returns the current lifecycle state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Outcome returns how the last completed submission ended.
func (c *Client) Outcome() Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outcome
}

// FieldErrors returns the per-field messages from the last rejection,
// or nil if the last submission did not end in field errors.
func (c *Client) FieldErrors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fieldErrors
}

// StatusMessage returns the success or failure message to display in the
// form's status region.
func (c *Client) StatusMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Submit sends the current fields as multipart form data. While a
// submission is in flight, further calls return ErrSubmissionInFlight
// without performing a second HTTP request.
//
// On success the fields are cleared (consent unchecked, attachment
// dropped); on field errors or server/network failure the entered values
// are preserved.
func (c *Client) Submit(ctx context.Context) (Outcome, error) {
	c.mu.Lock()
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return OutcomeNone, ErrSubmissionInFlight
	}
	c.setStateLocked(StateSubmitting)
	fields := c.fields
	c.mu.Unlock()

	outcome, fieldErrors, status, err := c.post(ctx, fields)

	c.mu.Lock()
	c.outcome = outcome
	c.fieldErrors = fieldErrors
	c.status = status
	if outcome == OutcomeSuccess {
		c.fields = Fields{}
	}
	c.setStateLocked(StateIdle)
	c.mu.Unlock()

	return outcome, err
}

// setStateLocked transitions the state and fires the hook. Callers hold c.mu.
func (c *Client) setStateLocked(s State) {
	c.state = s
	if c.onTransition != nil {
		c.onTransition(s)
	}
}

// responseBody is the submission endpoint's JSON response shape.
type responseBody struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Errors  map[string]string `json:"errors"`
}

func (c *Client) post(ctx context.Context, fields Fields) (Outcome, map[string]string, string, error) {
	body, contentType, err := encodeForm(fields)
	if err != nil {
		return OutcomeServerError, nil, genericFailureMessage, fmt.Errorf("%w: %v", ErrEncodeForm, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return OutcomeServerError, nil, genericFailureMessage, err
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Network failure looks like any server failure to the user.
		return OutcomeServerError, nil, genericFailureMessage, err
	}
	defer resp.Body.Close()

	var parsed responseBody
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return OutcomeServerError, nil, genericFailureMessage, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK && parsed.Success:
		return OutcomeSuccess, nil, parsed.Message, nil
	case resp.StatusCode == http.StatusBadRequest && len(parsed.Errors) > 0:
		return OutcomeFieldErrors, parsed.Errors, "", nil
	default:
		status := parsed.Error
		if status == "" {
			status = genericFailureMessage
		}
		return OutcomeServerError, nil, status, nil
	}
}

// genericFailureMessage is shown when the request never produced a usable
// response (network failure, malformed body).
const genericFailureMessage = "Something went wrong. Please try again later."

func encodeForm(fields Fields) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	values := map[string]string{
		"name":    fields.Name,
		"email":   fields.Email,
		"phone":   fields.Phone,
		"subject": fields.Subject,
		"message": fields.Message,
		"consent": strconv.FormatBool(fields.Consent),
	}
	for k, v := range values {
		if err := w.WriteField(k, v); err != nil {
			return nil, "", err
		}
	}

	if fields.Attachment != nil {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="attachment"; filename=%q`, fields.Attachment.Filename))
		header.Set("Content-Type", fields.Attachment.ContentType)

		fw, err := w.CreatePart(header)
		if err != nil {
			return nil, "", err
		}
		if _, err := fw.Write(fields.Attachment.Content); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}
