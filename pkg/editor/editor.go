// Package editor implements the mutable source of truth for the layout
// editor: the component collection, selection, drag and resize sessions,
// and panel visibility, exposed through an action API that is the sole
// legal mutation path.
//
// The State is an explicit object owned by the caller; there is no
// package-level singleton. Presentation layers read through accessor
// methods (which return copies) and write exclusively through actions.
// All transitions are synchronous and happen on the caller's event loop;
// the State is not safe for concurrent use from multiple goroutines.
//
// Error handling follows three rules: validation rejections return a
// typed error and leave the state unchanged, operations on unknown
// component IDs are silent no-ops (logged at debug), and nothing in this
// package panics across the action boundary.
package editor

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/mountfort/gridstack/pkg/component"
	"github.com/mountfort/gridstack/pkg/grid"
)

// selectionHistoryLimit caps the selection history, most recent last.
const selectionHistoryLimit = 10

// DefaultMaxRows bounds the free-slot search for auto-placement.
const DefaultMaxRows = 12

// Axis locks a resize session to a direction.
type Axis int

const (
	// Horizontal toggles the width class between half and full.
	Horizontal Axis = iota
	// Vertical adjusts the height in row units.
	Vertical
	// Both adjusts width class and height together.
	Both
)

// String returns a short label for logging.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "both"
	}
}

// Settings holds the grid configuration the store needs to translate
// pointer coordinates and bound placement searches.
type Settings struct {
	Metrics grid.Metrics
	Canvas  grid.Rect
	MaxRows int
}

// DefaultSettings returns the standard editor configuration for an
// 800x600 canvas.
func DefaultSettings() Settings {
	return Settings{
		Metrics: grid.DefaultMetrics(),
		Canvas:  grid.Rect{X: 0, Y: 0, W: 800, H: 600},
		MaxRows: DefaultMaxRows,
	}
}

// Panels tracks sidebar visibility. Pure UI state, never persisted.
type Panels struct {
	AddOpen        bool
	PropertiesOpen bool
}

// DragState describes an in-progress drag session.
type DragState struct {
	Active    bool
	ID        string
	DropZones []grid.Position // computed once at drag start
	Target    grid.Position   // current candidate cell
	ValidDrop bool            // drag-permissive legality of Target
}

// ResizeState describes an in-progress resize session.
type ResizeState struct {
	Active    bool
	ID        string
	Original  grid.Size
	Candidate grid.Size
	Axis      Axis
	Valid     bool // strict-collision legality of Candidate
}

// State is the editor store. Create with New and mutate only through
// action methods.
type State struct {
	logger *log.Logger

	settings   Settings
	components []component.Component

	selected string
	history  []string

	drag   DragState
	resize ResizeState
	panels Panels
}

// New creates an empty editor state. A nil logger silences diagnostics.
func New(settings Settings, logger *log.Logger) *State {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if settings.MaxRows <= 0 {
		settings.MaxRows = DefaultMaxRows
	}
	return &State{
		logger:   logger,
		settings: settings,
	}
}

// =============================================================================
// Read Accessors
// =============================================================================

// Components returns a deep copy of the collection in creation order.
func (s *State) Components() []component.Component {
	return component.Clones(s.components)
}

// ComponentByID returns a copy of the component with the given ID.
func (s *State) ComponentByID(id string) (component.Component, bool) {
	for _, c := range s.components {
		if c.ID == id {
			return c.Clone(), true
		}
	}
	return component.Component{}, false
}

// ComponentsInRow returns copies of all components whose row range covers
// the given row.
func (s *State) ComponentsInRow(row int) []component.Component {
	var out []component.Component
	for _, c := range s.components {
		start, end := grid.RowRange(c.Pos, c.Size)
		if row >= start && row <= end {
			out = append(out, c.Clone())
		}
	}
	return out
}

// ExportComponents returns a snapshot copy of the full collection for
// hand-off to the preview collaborator. The snapshot shares nothing with
// the live collection.
func (s *State) ExportComponents() []component.Component {
	return component.Clones(s.components)
}

// Len returns the number of components.
func (s *State) Len() int { return len(s.components) }

// Selection returns the selected component ID, or "" if none.
func (s *State) Selection() string { return s.selected }

// SelectionHistory returns the bounded history of previously selected
// IDs, most recent last.
func (s *State) SelectionHistory() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Drag returns a copy of the drag session state.
func (s *State) Drag() DragState {
	d := s.drag
	d.DropZones = append([]grid.Position(nil), s.drag.DropZones...)
	return d
}

// Resize returns a copy of the resize session state.
func (s *State) Resize() ResizeState { return s.resize }

// Panels returns the sidebar visibility state.
func (s *State) Panels() Panels { return s.panels }

// Settings returns the grid configuration.
func (s *State) Settings() Settings { return s.settings }

// =============================================================================
// Internal Helpers
// =============================================================================

// index returns the position of a component in the collection, or -1.
func (s *State) index(id string) int {
	for i, c := range s.components {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// boxes returns the placement footprints of the live collection.
func (s *State) boxes() []grid.Box {
	return component.Boxes(s.components)
}
