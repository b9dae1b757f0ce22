// Package render turns normalized markdown into styled terminal output
// via glamour. Rendering is best-effort: any renderer failure, including a
// panic inside glamour, degrades to the plain markdown text.
package render

import (
	"github.com/charmbracelet/glamour"
)

// Renderer renders markdown for the terminal.
type Renderer struct {
	tr *glamour.TermRenderer
}

// New creates a renderer for the given theme and wrap width.
// wordWrap <= 0 means glamour's default width.
func New(theme string, wordWrap int) (*Renderer, error) {
	opts := []glamour.TermRendererOption{}

	switch theme {
	case "dark":
		opts = append(opts, glamour.WithStandardStyle("dark"))
	case "light":
		opts = append(opts, glamour.WithStandardStyle("light"))
	default:
		opts = append(opts, glamour.WithAutoStyle())
	}
	if wordWrap > 0 {
		opts = append(opts, glamour.WithWordWrap(wordWrap))
	}

	tr, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{tr: tr}, nil
}

// Render renders markdown with panic recovery. On any failure the input
// is returned unstyled so the reply is never lost.
func (r *Renderer) Render(markdown string) (result string) {
	defer func() {
		if rec := recover(); rec != nil {
			result = markdown
		}
	}()

	if r == nil || r.tr == nil || markdown == "" {
		return markdown
	}

	rendered, err := r.tr.Render(markdown)
	if err != nil {
		return markdown
	}
	return rendered
}
