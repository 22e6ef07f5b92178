package editor

import (
	"context"
	"math"

	"github.com/mountfort/gridstack/pkg/component"
	"github.com/mountfort/gridstack/pkg/grid"
	"github.com/mountfort/gridstack/pkg/observability"
)

// fullWidthThreshold is the fraction of the container width the pointer
// must cross for a horizontal resize to snap to full width.
const fullWidthThreshold = 0.75

// StartResize opens a resize session locked to the given axis. The
// original size is recorded so a rejected or cancelled resize restores
// it. An active drag or resize session is cancelled first. An unknown ID
// is a silent no-op.
func (s *State) StartResize(id string, axis Axis) {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("resize start on unknown component", "id", id)
		return
	}
	if s.resize.Active {
		s.CancelResize()
	}
	if s.drag.Active {
		s.CancelDrag()
	}

	c := s.components[i]
	s.resize = ResizeState{
		Active:    true,
		ID:        id,
		Original:  c.Size,
		Candidate: c.Size,
		Axis:      axis,
		Valid:     true,
	}
	s.logger.Debug("resize started", "id", id, "axis", axis)
}

// UpdateResize recomputes the candidate size from the pointer position.
// On the horizontal axis the width class toggles between half and full
// when the pointer crosses a threshold fraction of the container width;
// on the vertical axis the height is the pointer's offset from the top of
// the component in row units, never below one. The validity flag reflects
// the strict collision rule so the UI can show whether releasing here
// would commit. Nothing is committed.
func (s *State) UpdateResize(x, y float64) {
	if !s.resize.Active {
		return
	}
	i := s.index(s.resize.ID)
	if i < 0 {
		s.resize = ResizeState{}
		return
	}

	c := s.components[i]
	candidate := s.resize.Candidate

	if s.resize.Axis == Horizontal || s.resize.Axis == Both {
		candidate.Width = grid.Half
		if x-s.settings.Canvas.X >= fullWidthThreshold*s.settings.Canvas.W {
			candidate.Width = grid.Full
		}
	}

	if s.resize.Axis == Vertical || s.resize.Axis == Both {
		box := grid.CellRect(c.Pos, c.Size, s.settings.Canvas, s.settings.Metrics)
		units := int(math.Round((y - box.Y) / s.settings.Metrics.RowUnitHeight))
		if units < 1 {
			units = 1
		}
		candidate.Height = units
	}

	pos := c.Pos
	if candidate.Width == grid.Full {
		pos.Col = 0
	}

	s.resize.Candidate = candidate
	s.resize.Valid = !grid.HasCollision(pos, candidate, s.boxes(), c.ID)
}

// EndResize commits the candidate size and closes the session. The
// commit applies the strict collision rule: a resize must never silently
// overlap another component, so an invalid candidate restores the
// original size and returns a typed error. The session returns to idle
// either way.
func (s *State) EndResize() error {
	if !s.resize.Active {
		return nil
	}
	resize := s.resize
	s.resize = ResizeState{}

	i := s.index(resize.ID)
	if i < 0 {
		s.logger.Debug("resize target vanished before commit", "id", resize.ID)
		return nil
	}

	if resize.Candidate == resize.Original {
		return nil
	}

	// UpdateComponent re-runs both the structural validator and the
	// strict collision check against current state.
	err := s.UpdateComponent(resize.ID, component.Patch{Size: &resize.Candidate})
	if err != nil {
		s.logger.Debug("resize rejected", "id", resize.ID, "err", err)
		return err
	}

	s.logger.Debug("resize committed", "id", resize.ID,
		"width", resize.Candidate.Width, "height", resize.Candidate.Height)
	observability.Editor().OnComponentResized(context.Background(), resize.ID,
		resize.Candidate.Width.String(), resize.Candidate.Height)
	return nil
}

// CancelResize abandons the session, leaving the component at its
// original size.
func (s *State) CancelResize() {
	if s.resize.Active {
		s.logger.Debug("resize cancelled", "id", s.resize.ID)
	}
	s.resize = ResizeState{}
}
