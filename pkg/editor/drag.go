package editor

import (
	"context"

	"github.com/mountfort/gridstack/pkg/component"
	"github.com/mountfort/gridstack/pkg/grid"
	"github.com/mountfort/gridstack/pkg/observability"
)

// StartDrag opens a drag session for the component. Drop zones are
// computed once at start from the component's current footprint. If
// another drag is already active it is cancelled first; an active resize
// session also blocks entry and is cancelled. An unknown ID is a silent
// no-op.
func (s *State) StartDrag(id string) {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("drag start on unknown component", "id", id)
		return
	}
	if s.drag.Active {
		s.CancelDrag()
	}
	if s.resize.Active {
		s.CancelResize()
	}

	c := s.components[i]
	s.drag = DragState{
		Active:    true,
		ID:        id,
		DropZones: grid.ComputeDropZones(c.Box(), s.boxes(), s.settings.MaxRows),
		Target:    c.Pos,
		ValidDrop: true,
	}
	s.logger.Debug("drag started", "id", id, "zones", len(s.drag.DropZones))
}

// UpdateDrag re-derives the pointer's grid cell and refreshes the
// validity flag for visual feedback. Nothing is committed. If the dragged
// component disappeared mid-gesture (deleted by another action), the
// session is cancelled.
func (s *State) UpdateDrag(x, y float64) {
	if !s.drag.Active {
		return
	}
	i := s.index(s.drag.ID)
	if i < 0 {
		s.drag = DragState{}
		return
	}

	c := s.components[i]
	target := grid.PixelToGrid(x, y, s.settings.Canvas, s.settings.Metrics, c.Size.Width)
	target = grid.SnapToGrid(target, c.Size)

	s.drag.Target = target
	s.drag.ValidDrop = !grid.HasCollisionForDrag(target, c.Size)
}

// EndDrag commits the current target cell and closes the session. The
// commit applies the drag-permissive rule: boundary and column-class
// legality are enforced, but overlap with other components is allowed —
// dropping onto occupied cells is the deliberate way to form a stack.
// Whatever the outcome, the session returns to idle.
func (s *State) EndDrag() error {
	if !s.drag.Active {
		return nil
	}
	drag := s.drag
	s.drag = DragState{}

	// Validation re-reads current state: the component may have been
	// deleted mid-gesture, which makes the commit a silent no-op.
	i := s.index(drag.ID)
	if i < 0 {
		s.logger.Debug("drag target vanished before commit", "id", drag.ID)
		return nil
	}

	if !drag.ValidDrop {
		s.logger.Debug("drag ended on illegal cell", "id", drag.ID, "col", drag.Target.Col, "row", drag.Target.Row)
		return nil
	}

	c := s.components[i]
	updated, err := c.ApplyPatch(component.Patch{Pos: &drag.Target})
	if err != nil {
		return err
	}
	s.components[i] = updated

	s.logger.Debug("drag committed", "id", drag.ID, "col", drag.Target.Col, "row", drag.Target.Row)
	observability.Editor().OnComponentMoved(context.Background(), drag.ID, drag.Target.Col, drag.Target.Row)
	return nil
}

// CancelDrag abandons the session without touching the component.
func (s *State) CancelDrag() {
	if s.drag.Active {
		s.logger.Debug("drag cancelled", "id", s.drag.ID)
	}
	s.drag = DragState{}
}
