package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplate(t *testing.T) {
	t.Parallel()

	t.Run("frontmatter and body", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\nSubject: Hello {{.Name}}\n---\nBody **text**\n"))
		require.NoError(t, err)
		assert.Equal(t, "Hello {{.Name}}", tmpl.Metadata["Subject"])
		assert.Equal(t, "Body **text**\n", tmpl.Body)
	})

	t.Run("no frontmatter", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("Just a body"))
		require.NoError(t, err)
		assert.Empty(t, tmpl.Metadata)
		assert.Equal(t, "Just a body", tmpl.Body)
	})

	t.Run("windows line endings", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\r\nSubject: Hi\r\n---\r\nBody"))
		require.NoError(t, err)
		assert.Equal(t, "Hi", tmpl.Metadata["Subject"])
		assert.Equal(t, "Body", tmpl.Body)
	})

	t.Run("unterminated frontmatter", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTemplate([]byte("---\nSubject: Hi\nBody"))
		assert.ErrorIs(t, err, ErrInvalidFrontmatter)
	})

	t.Run("empty frontmatter", func(t *testing.T) {
		t.Parallel()

		tmpl, err := ParseTemplate([]byte("---\n---\nBody"))
		require.NoError(t, err)
		assert.Empty(t, tmpl.Metadata)
		assert.Equal(t, "Body", tmpl.Body)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := ParseTemplate([]byte("---\n: bad: [\n---\nBody"))
		assert.ErrorIs(t, err, ErrInvalidFrontmatter)
	})
}

func TestRenderer_Render(t *testing.T) {
	t.Parallel()

	renderer := NewRendererWithConfig(testFS(), RendererConfig{LayoutDir: "layouts"})

	result, err := renderer.Render("base.html", "contact.md", map[string]string{
		"Name":    "Alice",
		"Message": "Hello there",
	})
	require.NoError(t, err)

	assert.Contains(t, result.HTML, "<html><body>")
	assert.Contains(t, result.HTML, "<strong>Alice</strong>")
	assert.Contains(t, result.Text, "**Alice** wrote: Hello there")
	assert.Equal(t, "New message from {{.Name}}", result.Metadata["Subject"])
}

func TestRenderer_MissingLayout(t *testing.T) {
	t.Parallel()

	renderer := NewRendererWithConfig(testFS(), RendererConfig{LayoutDir: "layouts"})
	_, err := renderer.Render("missing.html", "contact.md", nil)
	assert.ErrorIs(t, err, ErrLayoutNotFound)
}

func TestRecipient(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Alice <a@b.com>", Recipient("Alice", "a@b.com"))
	assert.Equal(t, "a@b.com", Recipient("", "a@b.com"))
}
