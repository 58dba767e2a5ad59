package mailer

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSender is a mock implementation of the Sender interface.
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, email *Email) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"layouts/base.html": &fstest.MapFile{
			Data: []byte(`<html><body>{{.Content}}</body></html>`),
		},
		"contact.md": &fstest.MapFile{
			Data: []byte(`---
Subject: New message from {{.Name}}
---
**{{.Name}}** wrote: {{.Message}}
`),
		},
	}
}

func TestMailer_Send_Success(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	renderer := NewRendererWithConfig(testFS(), RendererConfig{LayoutDir: "layouts"})
	m := New(mockSender, renderer, Config{
		DefaultLayout:   "base.html",
		FallbackSubject: "Notification",
	})

	mockSender.On("Send", mock.Anything, mock.MatchedBy(func(email *Email) bool {
		return email.To[0] == "inbox@example.com" &&
			email.Subject == "New message from Alice" &&
			len(email.HTML) > 0 &&
			len(email.Text) > 0
	})).Return("msg_123", nil)

	id, err := m.Send(context.Background(), SendParams{
		To:       "inbox@example.com",
		Template: "contact.md",
		Data:     map[string]string{"Name": "Alice", "Message": "Hello"},
	})

	require.NoError(t, err)
	require.Equal(t, "msg_123", id)
	mockSender.AssertExpectations(t)
}

func TestMailer_Send_NoRecipient(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	m := New(mockSender, NewRenderer(fstest.MapFS{}), Config{})

	_, err := m.Send(context.Background(), SendParams{Template: "contact.md"})
	require.ErrorIs(t, err, ErrNoRecipient)
	mockSender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_TemplateNotFound(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	renderer := NewRendererWithConfig(testFS(), RendererConfig{LayoutDir: "layouts"})
	m := New(mockSender, renderer, Config{DefaultLayout: "base.html"})

	_, err := m.Send(context.Background(), SendParams{
		To:       "inbox@example.com",
		Template: "missing.md",
	})
	require.ErrorIs(t, err, ErrRenderFailed)
	mockSender.AssertNotCalled(t, "Send")
}

func TestMailer_Send_ProviderFailure(t *testing.T) {
	t.Parallel()

	mockSender := &MockSender{}
	renderer := NewRendererWithConfig(testFS(), RendererConfig{LayoutDir: "layouts"})
	m := New(mockSender, renderer, Config{DefaultLayout: "base.html"})

	providerErr := errors.New("api key revoked")
	mockSender.On("Send", mock.Anything, mock.Anything).Return("", providerErr)

	_, err := m.Send(context.Background(), SendParams{
		To:       "inbox@example.com",
		Template: "contact.md",
		Data:     map[string]string{"Name": "Bob", "Message": "Hi"},
	})
	require.ErrorIs(t, err, ErrSendFailed)
	require.ErrorIs(t, err, providerErr)
}

func TestMailer_SendRaw(t *testing.T) {
	t.Parallel()

	t.Run("missing fields", func(t *testing.T) {
		t.Parallel()

		m := New(&MockSender{}, NewRenderer(fstest.MapFS{}), Config{})

		_, err := m.SendRaw(context.Background(), &Email{Subject: "s", HTML: "<p>x</p>"})
		require.ErrorIs(t, err, ErrNoRecipient)

		_, err = m.SendRaw(context.Background(), &Email{To: []string{"a@b.com"}, HTML: "<p>x</p>"})
		require.ErrorIs(t, err, ErrNoSubject)

		_, err = m.SendRaw(context.Background(), &Email{To: []string{"a@b.com"}, Subject: "s"})
		require.ErrorIs(t, err, ErrNoContent)
	})

	t.Run("delivers prepared email", func(t *testing.T) {
		t.Parallel()

		mockSender := &MockSender{}
		m := New(mockSender, NewRenderer(fstest.MapFS{}), Config{})
		mockSender.On("Send", mock.Anything, mock.Anything).Return("msg_raw", nil)

		id, err := m.SendRaw(context.Background(), &Email{
			To:      []string{"a@b.com"},
			Subject: "s",
			HTML:    "<p>x</p>",
		})
		require.NoError(t, err)
		require.Equal(t, "msg_raw", id)
	})
}
