// Package component defines the content block model for the canvas: the
// Component type, its kind-specific attributes, and the factory and
// validator that gate every component entering the editor store.
//
// A component's kind is a closed set (text, image) resolved by the Kind
// field: exactly one of the Text/Image attribute structs is non-nil, and
// it must agree with Kind. This replaces any structural guessing with an
// explicit tagged variant.
//
// Components are treated as values. Mutation helpers (WithPosition,
// WithSize, ApplyPatch) return an updated copy with a refreshed UpdatedAt
// rather than modifying in place.
package component

import (
	"time"

	"github.com/mountfort/gridstack/pkg/grid"
)

// Kind identifies the content variant of a component.
type Kind string

// Component kinds.
const (
	KindText  Kind = "text"
	KindImage Kind = "image"
)

// Valid reports whether the kind is a known value.
func (k Kind) Valid() bool { return k == KindText || k == KindImage }

// TextAttrs holds the attributes of a text component.
type TextAttrs struct {
	Content string `json:"content"`
	Align   string `json:"align"`
	Color   string `json:"color"`
}

// ImageAttrs holds the attributes of an image component.
type ImageAttrs struct {
	Source       string `json:"source"`
	Alt          string `json:"alt"`
	Fit          string `json:"fit"`
	Position     string `json:"position"`
	CornerRadius int    `json:"corner_radius"`
}

// Border describes a component's border styling.
type Border struct {
	Width int    `json:"width"`
	Style string `json:"style"`
	Color string `json:"color"`
}

// Padding describes per-side inner padding in pixels.
type Padding struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Style holds the purely cosmetic properties of a component. Style never
// affects placement.
type Style struct {
	Background string  `json:"background"`
	Border     Border  `json:"border"`
	Padding    Padding `json:"padding"`
	Shadow     string  `json:"shadow"`
	Opacity    float64 `json:"opacity"`
}

// Component is the unit of placement on the canvas.
//
// Exactly one of Text or Image is non-nil, matching Kind. The ID is
// immutable after creation; CreatedAt and UpdatedAt provide deterministic
// ordering and freshness.
type Component struct {
	ID        string        `json:"id"`
	Kind      Kind          `json:"kind"`
	Pos       grid.Position `json:"position"`
	Size      grid.Size     `json:"size"`
	Text      *TextAttrs    `json:"text,omitempty"`
	Image     *ImageAttrs   `json:"image,omitempty"`
	Style     Style         `json:"style"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Box returns the placement footprint used by the grid math library.
func (c Component) Box() grid.Box {
	return grid.Box{ID: c.ID, Pos: c.Pos, Size: c.Size}
}

// Clone returns a deep copy. The attribute pointers are duplicated so a
// snapshot cannot be mutated through the original and vice versa.
func (c Component) Clone() Component {
	if c.Text != nil {
		t := *c.Text
		c.Text = &t
	}
	if c.Image != nil {
		img := *c.Image
		c.Image = &img
	}
	return c
}

// WithPosition returns a copy anchored at pos with UpdatedAt refreshed.
func (c Component) WithPosition(pos grid.Position) Component {
	out := c.Clone()
	out.Pos = pos
	out.UpdatedAt = time.Now()
	return out
}

// WithSize returns a copy resized to size with UpdatedAt refreshed.
// Becoming full-width forces the column to 0.
func (c Component) WithSize(size grid.Size) Component {
	out := c.Clone()
	out.Size = size
	if size.Width == grid.Full {
		out.Pos.Col = 0
	}
	out.UpdatedAt = time.Now()
	return out
}

// Clones returns deep copies of all components in order. Used for
// snapshot hand-off to the preview collaborator.
func Clones(comps []Component) []Component {
	out := make([]Component, len(comps))
	for i, c := range comps {
		out[i] = c.Clone()
	}
	return out
}

// Boxes extracts the placement footprint of each component in order.
func Boxes(comps []Component) []grid.Box {
	out := make([]grid.Box, len(comps))
	for i, c := range comps {
		out[i] = c.Box()
	}
	return out
}
