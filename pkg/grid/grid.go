// Package grid implements the coordinate and collision arithmetic for the
// two-column block canvas.
//
// All functions are pure: they take placements as values and return results
// without touching any shared state. The package distinguishes two collision
// regimes:
//
//   - HasCollision is the strict test used when creating or resizing a
//     component. Overlap is never allowed on these paths.
//   - HasCollisionForDrag validates only boundary and column-class legality.
//     Overlap during a drag is a first-class feature (stacking), so the
//     drag test deliberately ignores other components.
//
// Positions are discrete: a column in {0, 1} and a non-negative row counted
// in fixed-height row units. Full-width placements always anchor at column 0.
package grid

import "fmt"

// Columns is the number of columns on the canvas. The layout model is
// built around a fixed two-column grid.
const Columns = 2

// searchMargin extends the free-slot search past the bottom of existing
// content so a full canvas still offers placements below it.
const searchMargin = 2

// WidthClass describes how many columns a component spans.
type WidthClass int

const (
	// Half spans a single column.
	Half WidthClass = iota
	// Full spans both columns and must anchor at column 0.
	Full
)

// String returns "half" or "full".
func (w WidthClass) String() string {
	if w == Full {
		return "full"
	}
	return "half"
}

// Valid reports whether the width class is a known value.
func (w WidthClass) Valid() bool { return w == Half || w == Full }

// MarshalJSON encodes the width class as "half" or "full".
func (w WidthClass) MarshalJSON() ([]byte, error) {
	return []byte(`"` + w.String() + `"`), nil
}

// UnmarshalJSON accepts "half" or "full".
func (w *WidthClass) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"half"`:
		*w = Half
	case `"full"`:
		*w = Full
	default:
		return fmt.Errorf("unknown width class %s", data)
	}
	return nil
}

// Position is a discrete grid coordinate.
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Size is a placement footprint: a width class and a height in row units.
type Size struct {
	Width  WidthClass `json:"width"`
	Height int        `json:"height"`
}

// Cell is a single unit cell of the grid.
type Cell struct {
	Col int
	Row int
}

// Box is the placement footprint of a component, decoupled from the
// component model so this package stays free of model dependencies.
type Box struct {
	ID   string
	Pos  Position
	Size Size
}

// Legal reports whether pos is a legal anchor for the given size:
// column within the grid, column 0 for full-width, non-negative row,
// and a height of at least one row unit.
func Legal(pos Position, size Size) bool {
	if size.Height < 1 || !size.Width.Valid() {
		return false
	}
	if pos.Row < 0 {
		return false
	}
	if size.Width == Full {
		return pos.Col == 0
	}
	return pos.Col >= 0 && pos.Col < Columns
}

// CellsOccupied enumerates every unit cell covered by a placement.
// A full-width placement covers both columns for each of its rows.
func CellsOccupied(pos Position, size Size) []Cell {
	cols := 1
	if size.Width == Full {
		cols = Columns
	}
	cells := make([]Cell, 0, cols*size.Height)
	for r := 0; r < size.Height; r++ {
		for c := 0; c < cols; c++ {
			cells = append(cells, Cell{Col: pos.Col + c, Row: pos.Row + r})
		}
	}
	return cells
}

// HasCollision reports whether a placement overlaps any other box.
// The box with ID excludeID is skipped, so a component can be tested
// against a collection it is already part of. This is the strict test
// used for creation and resize validation.
func HasCollision(pos Position, size Size, others []Box, excludeID string) bool {
	occupied := make(map[Cell]struct{})
	for _, c := range CellsOccupied(pos, size) {
		occupied[c] = struct{}{}
	}
	for _, b := range others {
		if b.ID == excludeID {
			continue
		}
		for _, c := range CellsOccupied(b.Pos, b.Size) {
			if _, hit := occupied[c]; hit {
				return true
			}
		}
	}
	return false
}

// HasCollisionForDrag reports whether a placement is illegal for an
// in-progress drag. Only boundary and column-class legality are checked;
// overlap with other components is allowed because a drag may deliberately
// drop onto occupied cells to form a stack.
func HasCollisionForDrag(pos Position, size Size) bool {
	return !Legal(pos, size)
}

// FindNextFreePosition raster-scans rows top to bottom, trying column 0
// then column 1 (only column 0 for full-width), and returns the first
// position with no strict collision. The search bound is maxRows, extended
// to cover existing content plus a small margin. Returns false when no
// row within the bound fits.
func FindNextFreePosition(size Size, others []Box, maxRows int) (Position, bool) {
	bound := maxRows
	for _, b := range others {
		if end := b.Pos.Row + b.Size.Height + searchMargin; end > bound {
			bound = end
		}
	}

	cols := []int{0, 1}
	if size.Width == Full {
		cols = []int{0}
	}

	for row := 0; row <= bound-size.Height; row++ {
		for _, col := range cols {
			pos := Position{Col: col, Row: row}
			if !HasCollision(pos, size, others, "") {
				return pos, true
			}
		}
	}
	return Position{}, false
}

// SnapToGrid clamps a position to the legal range for the given size:
// column forced to 0 for full-width, otherwise clamped to the grid,
// and row clamped to be non-negative.
func SnapToGrid(pos Position, size Size) Position {
	if size.Width == Full {
		pos.Col = 0
	} else {
		if pos.Col < 0 {
			pos.Col = 0
		}
		if pos.Col >= Columns {
			pos.Col = Columns - 1
		}
	}
	if pos.Row < 0 {
		pos.Row = 0
	}
	return pos
}

// ComputeDropZones enumerates every drag-legal candidate cell for the
// dragged box across the searched row range. The zones are used for visual
// drop-zone highlighting while a drag is in progress; because the drag test
// permits overlap, zones cover occupied cells too.
func ComputeDropZones(box Box, others []Box, maxRows int) []Position {
	bound := maxRows
	for _, b := range others {
		if b.ID == box.ID {
			continue
		}
		if end := b.Pos.Row + b.Size.Height + searchMargin; end > bound {
			bound = end
		}
	}

	cols := []int{0, 1}
	if box.Size.Width == Full {
		cols = []int{0}
	}

	var zones []Position
	for row := 0; row <= bound-box.Size.Height; row++ {
		for _, col := range cols {
			pos := Position{Col: col, Row: row}
			if !HasCollisionForDrag(pos, box.Size) {
				zones = append(zones, pos)
			}
		}
	}
	return zones
}

// RowRange returns the closed interval of rows covered by a placement.
func RowRange(pos Position, size Size) (start, end int) {
	return pos.Row, pos.Row + size.Height - 1
}

// RowsOverlap reports whether two closed row intervals intersect.
func RowsOverlap(start1, end1, start2, end2 int) bool {
	return start1 <= end2 && start2 <= end1
}
