package component

import (
	"time"

	"github.com/mountfort/gridstack/pkg/grid"
)

// Patch is a partial component update. Nil fields are left untouched;
// attribute patches replace the whole attribute struct for their kind.
type Patch struct {
	Pos   *grid.Position
	Size  *grid.Size
	Text  *TextAttrs
	Image *ImageAttrs
	Style *Style
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Pos == nil && p.Size == nil && p.Text == nil && p.Image == nil && p.Style == nil
}

// ApplyPatch returns a copy of the component with the patch applied and
// UpdatedAt refreshed. The result is validated; on failure the error is
// returned and the original component is unchanged (it was never mutated).
// Applying a text patch to an image component (or vice versa) fails
// validation rather than silently converting the kind.
func (c Component) ApplyPatch(p Patch) (Component, error) {
	out := c.Clone()

	if p.Pos != nil {
		out.Pos = *p.Pos
	}
	if p.Size != nil {
		out.Size = *p.Size
		if out.Size.Width == grid.Full {
			out.Pos.Col = 0
		}
	}
	if p.Text != nil {
		attrs := *p.Text
		out.Text = &attrs
	}
	if p.Image != nil {
		attrs := *p.Image
		out.Image = &attrs
	}
	if p.Style != nil {
		out.Style = *p.Style
	}
	out.UpdatedAt = time.Now()

	if err := Validate(out); err != nil {
		return Component{}, err
	}
	return out, nil
}
