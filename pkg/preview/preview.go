// Package preview renders read-only artifacts from a document snapshot.
//
// The renderer recomputes stacking groups from the snapshot it is
// given and never touches editor state, so a preview can be produced
// concurrently with editing from an exported copy.
package preview

import (
	"github.com/mountfort/gridstack/pkg/document"
	"github.com/mountfort/gridstack/pkg/errors"
)

// Format selects the artifact type.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatMarkdown, FormatJSON:
		return Format(s), nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "unknown preview format %q", s)
	}
}

// ContentType returns the MIME type for serving the artifact.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the artifact width in character cells.
func WithWidth(w int) Option {
	return func(r *Renderer) {
		if w >= minWidth {
			r.width = w
		}
	}
}

// minWidth keeps two columns renderable with borders intact.
const minWidth = 20

// Renderer produces preview artifacts.
type Renderer struct {
	width int
}

// New creates a renderer with the default 80-cell width.
func New(opts ...Option) *Renderer {
	r := &Renderer{width: 80}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Width returns the configured artifact width.
func (r *Renderer) Width() int { return r.width }

// Render produces the artifact for a document in the given format.
func (r *Renderer) Render(d document.Document, format Format) ([]byte, error) {
	switch format {
	case FormatText:
		return r.renderText(d), nil
	case FormatMarkdown:
		return r.renderMarkdown(d), nil
	case FormatJSON:
		return document.Marshal(d)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown preview format %q", format)
	}
}
