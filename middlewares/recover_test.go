package middlewares_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpolitiadis/leadwave/middlewares"
	"github.com/bpolitiadis/leadwave/pkg/logger"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("panic becomes generic 500", func(t *testing.T) {
		t.Parallel()

		handler := middlewares.Recover(logger.NewNope())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, "An unexpected error occurred. Please try again later.", body.Error)
		// Panic detail must never leak to the client.
		assert.NotContains(t, rec.Body.String(), "boom")
	})

	t.Run("passes through without panic", func(t *testing.T) {
		t.Parallel()

		handler := middlewares.Recover(logger.NewNope())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestLogging_CapturesStatus(t *testing.T) {
	t.Parallel()

	handler := middlewares.Logging(logger.NewNope())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("nope"))
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/contact", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "nope", rec.Body.String())
}
