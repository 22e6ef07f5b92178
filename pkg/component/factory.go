package component

import (
	"time"

	"github.com/google/uuid"

	"github.com/mountfort/gridstack/pkg/grid"
)

// Default attribute values for new components.
const (
	DefaultTextContent = "Edit this text"
	DefaultTextAlign   = "left"
	DefaultTextColor   = "#000000"
	DefaultImageAlt    = "Image"
	DefaultImageFit    = "cover"
	DefaultImagePos    = "center"
)

// DefaultSize returns the type-correct default footprint for a kind:
// text blocks start at a single half-width row, image blocks at two rows
// to leave room for the picture. Unknown kinds get the text default; New
// rejects them during validation.
func DefaultSize(kind Kind) grid.Size {
	if kind == KindImage {
		return grid.Size{Width: grid.Half, Height: 2}
	}
	return grid.Size{Width: grid.Half, Height: 1}
}

// DefaultTextAttrs returns the attributes of a freshly created text block.
func DefaultTextAttrs() TextAttrs {
	return TextAttrs{
		Content: DefaultTextContent,
		Align:   DefaultTextAlign,
		Color:   DefaultTextColor,
	}
}

// DefaultImageAttrs returns the attributes of a freshly created image
// block: no source yet, a generic alt text, cover fit, no rounding.
func DefaultImageAttrs() ImageAttrs {
	return ImageAttrs{
		Source:   "",
		Alt:      DefaultImageAlt,
		Fit:      DefaultImageFit,
		Position: DefaultImagePos,
	}
}

// DefaultStyle returns the cosmetic defaults for a new component.
func DefaultStyle() Style {
	return Style{
		Background: "",
		Border:     Border{Width: 0, Style: "none", Color: ""},
		Shadow:     "none",
		Opacity:    1,
	}
}

// Option customizes a component under construction. Options are applied
// on top of the kind defaults before validation.
type Option func(*Component)

// WithSize overrides the default footprint.
func WithSize(size grid.Size) Option {
	return func(c *Component) { c.Size = size }
}

// WithText overrides the default text attributes. Ignored for non-text kinds.
func WithText(attrs TextAttrs) Option {
	return func(c *Component) {
		if c.Kind == KindText {
			c.Text = &attrs
		}
	}
}

// WithImage overrides the default image attributes. Ignored for non-image kinds.
func WithImage(attrs ImageAttrs) Option {
	return func(c *Component) {
		if c.Kind == KindImage {
			c.Image = &attrs
		}
	}
}

// WithStyle overrides the default style.
func WithStyle(style Style) Option {
	return func(c *Component) { c.Style = style }
}

// New constructs a component of the given kind anchored at pos, merging
// any option overrides onto the kind defaults. A fresh unique ID and both
// timestamps are assigned. The result is validated before it is returned;
// an invalid construction yields a zero Component and an error, never a
// half-formed value.
func New(kind Kind, pos grid.Position, opts ...Option) (Component, error) {
	now := time.Now()
	c := Component{
		ID:        uuid.NewString(),
		Kind:      kind,
		Pos:       pos,
		Size:      DefaultSize(kind),
		Style:     DefaultStyle(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch kind {
	case KindText:
		attrs := DefaultTextAttrs()
		c.Text = &attrs
	case KindImage:
		attrs := DefaultImageAttrs()
		c.Image = &attrs
	}

	for _, opt := range opts {
		opt(&c)
	}

	if err := Validate(c); err != nil {
		return Component{}, err
	}
	return c, nil
}
