package component

import (
	"github.com/mountfort/gridstack/pkg/errors"
	"github.com/mountfort/gridstack/pkg/grid"
)

// Validate performs the structural check every component must pass before
// entering the store. It verifies required fields, position and size
// legality per width class, and kind-specific attribute agreement.
//
// Validate never inspects other components; collision checking against
// the collection is the store's job.
func Validate(c Component) error {
	if c.ID == "" {
		return errors.New(errors.ErrCodeInvalidComponent, "component ID must not be empty")
	}
	if !c.Kind.Valid() {
		return errors.New(errors.ErrCodeInvalidKind, "unknown component kind: %q", c.Kind)
	}

	if !c.Size.Width.Valid() {
		return errors.New(errors.ErrCodeInvalidSize, "unknown width class: %d", c.Size.Width)
	}
	if c.Size.Height < 1 {
		return errors.New(errors.ErrCodeInvalidSize, "height must be at least 1, got %d", c.Size.Height)
	}
	if !grid.Legal(c.Pos, c.Size) {
		return errors.New(errors.ErrCodeInvalidPosition,
			"illegal position (%d,%d) for %s width", c.Pos.Col, c.Pos.Row, c.Size.Width)
	}

	if err := validateAttrs(c); err != nil {
		return err
	}

	if err := errors.ValidateOpacity(c.Style.Opacity); err != nil {
		return err
	}
	if err := errors.ValidateColor(c.Style.Background); err != nil {
		return err
	}
	if err := errors.ValidateColor(c.Style.Border.Color); err != nil {
		return err
	}
	return nil
}

func validateAttrs(c Component) error {
	switch c.Kind {
	case KindText:
		if c.Text == nil || c.Image != nil {
			return errors.New(errors.ErrCodeInvalidComponent, "text component must carry exactly text attributes")
		}
		if err := errors.ValidateAlignment(c.Text.Align); err != nil {
			return err
		}
		if err := errors.ValidateColor(c.Text.Color); err != nil {
			return err
		}
	case KindImage:
		if c.Image == nil || c.Text != nil {
			return errors.New(errors.ErrCodeInvalidComponent, "image component must carry exactly image attributes")
		}
		if err := errors.ValidateImageSource(c.Image.Source); err != nil {
			return err
		}
		if err := errors.ValidateObjectFit(c.Image.Fit); err != nil {
			return err
		}
		if c.Image.CornerRadius < 0 {
			return errors.New(errors.ErrCodeInvalidInput, "corner radius must not be negative")
		}
	}
	return nil
}
