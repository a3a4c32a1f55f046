// Package render turns message body sources into sendable HTML.
package render

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/yuin/goldmark"
)

// Markdown converts a CommonMark document to HTML.
func Markdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return buf.String(), nil
}

// Template expands a Go template with the given context. Missing keys are an
// error rather than rendering as "<no value>".
func Template(tmpl string, ctx map[string]any) (string, error) {
	t, err := template.New("body").Option("missingkey=error").Parse(tmpl)
	if err != nil {
		return "", fmt.Errorf("invalid template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx); err != nil {
		return "", fmt.Errorf("failed to render template: %w", err)
	}
	return buf.String(), nil
}
