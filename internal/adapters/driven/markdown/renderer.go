// Package markdown renders markdown cell source to HTML and inspects the
// result: hyperlink extraction and markup stripping for the static
// analyzer's link and spelling checks.
package markdown

import (
	"bytes"

	"github.com/yuin/goldmark"

	"github.com/notebook-ci/nbcheck/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.MarkdownRenderer = (*Renderer)(nil)

// Renderer converts markdown text to HTML using goldmark.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a CommonMark renderer.
func NewRenderer() *Renderer {
	return &Renderer{md: goldmark.New()}
}

// Render converts markdown text to an HTML fragment.
func (r *Renderer) Render(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(source), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
