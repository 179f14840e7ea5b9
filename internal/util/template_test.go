package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTemplate(t *testing.T) {
	out, err := RenderTemplate("{{.Name}} is the {{.Characteristic}} of all", map[string]string{
		"Name":           "Snow White",
		"Characteristic": "prettiest",
	})
	require.NoError(t, err)
	assert.Equal(t, "Snow White is the prettiest of all", out)
}

func TestRenderTemplate_NoEscaping(t *testing.T) {
	out, err := RenderTemplate("{{.}} said hi", "Scarlett O'Hara")
	require.NoError(t, err)
	assert.Equal(t, "Scarlett O'Hara said hi", out)
}

func TestRenderTemplate_FastPath(t *testing.T) {
	out, err := RenderTemplate("Goodbye!", nil)
	require.NoError(t, err)
	assert.Equal(t, "Goodbye!", out)
}

func TestRenderTemplate_MissingKeyIsEmpty(t *testing.T) {
	out, err := RenderTemplate("{{.Name}}!", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, "!", out)
}

func TestRenderTemplate_ParseError(t *testing.T) {
	_, err := RenderTemplate("{{.Name", nil)
	assert.Error(t, err)
}
