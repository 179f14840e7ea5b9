package util

import (
	"bytes"
	"strings"
	"text/template"
)

// RenderTemplate renders a speech template with Go's text/template package.
// text/template is used instead of html/template so names like "O'Hara" are
// not entity escaped in spoken output.
func RenderTemplate(text string, data any) (string, error) {
	if !strings.Contains(text, "{{") { // fast path: no template markers
		return text, nil
	}

	tmpl, err := template.New("speech").Option("missingkey=zero").Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
