package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRenderer(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	for _, name := range []string{"signup", "verify", "onboarding"} {
		_, ok := r.views[name]
		assert.True(t, ok, "missing view %s", name)
	}
}

func TestRenderVerify(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "verify", map[string]interface{}{
		"Email":  "user@example.com",
		"Code":   "123456",
		"Errors": map[string]string{"code": "Invalid code"},
	}, nil)
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `value="user@example.com"`)
	assert.Contains(t, html, `value="123456"`)
	assert.Contains(t, html, "Invalid code")
}

func TestRenderUnknownView(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "nope", nil, nil)
	assert.Error(t, err)
}

func TestRenderEscapesUserInput(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = r.Render(&buf, "verify", map[string]interface{}{
		"Email":  `"><script>alert(1)</script>`,
		"Code":   "",
		"Errors": map[string]string{},
	}, nil)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}
