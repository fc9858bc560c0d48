// Package normalize converts raw model output into the contracts consumers
// expect: rendered HTML for free-text modes, a repaired QualityInsight for
// the structured mode.
package normalize

import (
	"bytes"
	"html"
	"strings"

	"github.com/yuin/goldmark"
)

// RenderMarkdown converts markdown text to HTML. If conversion fails it
// degrades to escaped text with newline breaks; it never fails outright.
// Empty input renders to empty output.
func RenderMarkdown(text string) string {
	if text == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(text), &buf); err != nil {
		return strings.ReplaceAll(html.EscapeString(text), "\n", "<br>\n")
	}
	return buf.String()
}
