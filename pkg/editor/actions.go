package editor

import (
	"context"

	"github.com/mountfort/gridstack/pkg/component"
	"github.com/mountfort/gridstack/pkg/errors"
	"github.com/mountfort/gridstack/pkg/grid"
	"github.com/mountfort/gridstack/pkg/observability"
)

// AddComponent creates a component of the given kind and inserts it into
// the collection. When pos is nil the component is auto-placed at the
// next free position; an explicit position is checked for strict
// collision. Factory options apply before placement, so an overridden
// size participates in the search.
//
// On success the new component is auto-selected, the properties panel
// opens, and the add panel closes. On failure the collection, selection,
// and panels are untouched and the returned ID is empty.
func (s *State) AddComponent(kind component.Kind, pos *grid.Position, opts ...component.Option) (string, error) {
	anchor := grid.Position{}
	if pos != nil {
		anchor = *pos
	}

	c, err := component.New(kind, anchor, opts...)
	if err != nil {
		return "", err
	}

	if pos == nil {
		free, ok := grid.FindNextFreePosition(c.Size, s.boxes(), s.settings.MaxRows)
		if !ok {
			return "", errors.New(errors.ErrCodeNoCapacity,
				"no free position for %s %s component", c.Size.Width, kind)
		}
		c.Pos = free
	} else if grid.HasCollision(c.Pos, c.Size, s.boxes(), "") {
		return "", errors.New(errors.ErrCodeCollision,
			"position (%d,%d) is occupied", c.Pos.Col, c.Pos.Row)
	}

	s.components = append(s.components, c)
	s.setSelected(c.ID)
	s.panels.PropertiesOpen = true
	s.panels.AddOpen = false

	s.logger.Debug("component added", "id", c.ID, "kind", kind, "col", c.Pos.Col, "row", c.Pos.Row)
	observability.Editor().OnComponentAdded(context.Background(), string(kind), c.Pos.Col, c.Pos.Row)
	return c.ID, nil
}

// UpdateComponent applies a partial patch to a component. Patches that
// touch position or size are checked for strict collision against the
// rest of the collection. A rejected patch is a no-op returning a typed
// error; an unknown ID is a silent no-op.
func (s *State) UpdateComponent(id string, patch component.Patch) error {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("update on unknown component", "id", id)
		return nil
	}

	updated, err := s.components[i].ApplyPatch(patch)
	if err != nil {
		return err
	}

	if patch.Pos != nil || patch.Size != nil {
		if grid.HasCollision(updated.Pos, updated.Size, s.boxes(), id) {
			return errors.New(errors.ErrCodeCollision,
				"update would overlap another component at (%d,%d)", updated.Pos.Col, updated.Pos.Row)
		}
	}

	s.components[i] = updated
	return nil
}

// DeleteComponent removes a component from the collection, clears it from
// the selection and history, and cancels any gesture session targeting
// it. Deleting the last component closes the properties panel. An
// unknown ID is a silent no-op.
func (s *State) DeleteComponent(id string) {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("delete on unknown component", "id", id)
		return
	}

	s.components = append(s.components[:i], s.components[i+1:]...)

	if s.selected == id {
		s.selected = ""
	}
	history := s.history[:0]
	for _, h := range s.history {
		if h != id {
			history = append(history, h)
		}
	}
	s.history = history

	if s.drag.Active && s.drag.ID == id {
		s.drag = DragState{}
	}
	if s.resize.Active && s.resize.ID == id {
		s.resize = ResizeState{}
	}

	if len(s.components) == 0 {
		s.panels.PropertiesOpen = false
	}

	s.logger.Debug("component deleted", "id", id)
	observability.Editor().OnComponentDeleted(context.Background(), id)
}

// ToggleComponentWidth flips a component between half and full width.
// Becoming full-width forces the column to 0. The new footprint is
// checked for strict collision; a rejected toggle is a no-op returning a
// typed error.
func (s *State) ToggleComponentWidth(id string) error {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("width toggle on unknown component", "id", id)
		return nil
	}

	size := s.components[i].Size
	if size.Width == grid.Full {
		size.Width = grid.Half
	} else {
		size.Width = grid.Full
	}

	return s.UpdateComponent(id, component.Patch{Size: &size})
}

// =============================================================================
// Selection
// =============================================================================

// SelectComponent makes the component the active selection and opens the
// properties panel. Selecting the already-selected component is a no-op;
// switching from another component pushes the old ID onto the bounded
// history. An unknown ID is a silent no-op.
func (s *State) SelectComponent(id string) {
	if s.index(id) < 0 {
		s.logger.Debug("select on unknown component", "id", id)
		return
	}
	if s.selected == id {
		return
	}
	s.setSelected(id)
	s.panels.PropertiesOpen = true
}

// Deselect clears the selection. Already-empty selection is a no-op.
func (s *State) Deselect() {
	s.selected = ""
}

// setSelected switches the selection, recording the previous ID.
func (s *State) setSelected(id string) {
	if s.selected != "" && s.selected != id {
		s.history = append(s.history, s.selected)
		if len(s.history) > selectionHistoryLimit {
			s.history = s.history[len(s.history)-selectionHistoryLimit:]
		}
	}
	s.selected = id
}

// =============================================================================
// Panels & Settings
// =============================================================================

// ToggleAddPanel flips the add-component panel.
func (s *State) ToggleAddPanel() { s.panels.AddOpen = !s.panels.AddOpen }

// OpenPropertiesPanel shows the properties panel.
func (s *State) OpenPropertiesPanel() { s.panels.PropertiesOpen = true }

// ClosePropertiesPanel hides the properties panel.
func (s *State) ClosePropertiesPanel() { s.panels.PropertiesOpen = false }

// Restore replaces the collection with the given components, clearing
// selection, history, and any active gesture. Ids must be unique and
// each component is run through the structural validator; collisions
// are not checked because
// overlap in a restored collection represents stacks built earlier. On
// error the state is unchanged.
func (s *State) Restore(comps []component.Component) error {
	seen := make(map[string]struct{}, len(comps))
	for _, c := range comps {
		if _, dup := seen[c.ID]; dup {
			return errors.New(errors.ErrCodeInvalidComponent, "duplicate component id %s", c.ID)
		}
		seen[c.ID] = struct{}{}
		if err := component.Validate(c); err != nil {
			return err
		}
	}

	s.components = component.Clones(comps)
	s.selected = ""
	s.history = nil
	s.drag = DragState{}
	s.resize = ResizeState{}
	s.panels = Panels{}

	s.logger.Debug("collection restored", "components", len(comps))
	return nil
}

// UpdateSettings replaces the grid configuration. Invalid values are
// rejected with the state unchanged.
func (s *State) UpdateSettings(settings Settings) error {
	if settings.Metrics.RowUnitHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "row unit height must be positive")
	}
	if settings.MaxRows < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "max rows must be at least 1")
	}
	s.settings = settings
	return nil
}
