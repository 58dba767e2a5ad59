package contact

import (
	"encoding/json"
	"net/http"
)

// Client-facing response messages. Dispatch and unexpected failures show
// fixed generic wording; the real error detail goes to the logs only.
const (
	msgEmailSent      = "Email sent successfully"
	msgDispatchFailed = "Failed to send email. Please try again later."
	msgUnexpected     = "An unexpected error occurred. Please try again later."
)

// successResponse is the 200 body for an accepted submission.
type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// validationResponse is the 400 body for a rejected submission: every
// failing field's message, plus the submitted values so the client can
// re-render the form without losing input.
type validationResponse struct {
	Success bool              `json:"success"`
	Errors  map[string]string `json:"errors"`
	Data    submittedData     `json:"data"`
}

// submittedData echoes the submitted field values (never the attachment
// bytes) back in a rejection response.
type submittedData struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Consent bool   `json:"consent"`
}

// failureResponse is the 500 body for dispatch and unexpected failures.
type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeAccepted(w http.ResponseWriter) {
	writeJSON(w, http.StatusOK, successResponse{Success: true, Message: msgEmailSent})
}

func writeRejected(w http.ResponseWriter, errs map[string]string, s Submission) {
	writeJSON(w, http.StatusBadRequest, validationResponse{
		Success: false,
		Errors:  errs,
		Data: submittedData{
			Name:    s.Name,
			Email:   s.Email,
			Phone:   s.Phone,
			Subject: s.Subject,
			Message: s.Message,
			Consent: s.Consent,
		},
	})
}

func writeDispatchFailed(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, failureResponse{Success: false, Error: msgDispatchFailed})
}

func writeUnexpected(w http.ResponseWriter) {
	writeJSON(w, http.StatusInternalServerError, failureResponse{Success: false, Error: msgUnexpected})
}
