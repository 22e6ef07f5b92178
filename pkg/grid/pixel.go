package grid

import "math"

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Metrics holds the parameters for converting between pixel space and
// grid cells. Columns is always 2 for this layout model; it is carried
// here so presentation layers can read the full grid configuration from
// one place.
type Metrics struct {
	Columns       int     // fixed at 2
	RowUnitHeight float64 // height of one row unit in pixels
	Padding       float64 // inset applied to the container on all sides
}

// DefaultMetrics returns the standard grid configuration.
func DefaultMetrics() Metrics {
	return Metrics{Columns: Columns, RowUnitHeight: 80, Padding: 16}
}

// content returns the container rectangle inset by the configured padding.
func (m Metrics) content(rect Rect) Rect {
	return Rect{
		X: rect.X + m.Padding,
		Y: rect.Y + m.Padding,
		W: rect.W - 2*m.Padding,
		H: rect.H - 2*m.Padding,
	}
}

// PixelToGrid converts a pointer coordinate into the grid cell it points
// at. The column is 0 when the pointer is left of the container midline
// and 1 otherwise; full-width drag subjects are forced to column 0. The
// row is the pointer's offset in row units, rounded to the nearest unit
// and clamped to be non-negative.
func PixelToGrid(x, y float64, rect Rect, m Metrics, width WidthClass) Position {
	content := m.content(rect)

	col := 0
	if width != Full && x >= content.X+content.W/2 {
		col = 1
	}

	row := 0
	if m.RowUnitHeight > 0 {
		row = int(math.Round((y - content.Y) / m.RowUnitHeight))
	}
	if row < 0 {
		row = 0
	}

	return Position{Col: col, Row: row}
}

// CellRect returns the pixel rectangle covered by a placement. This is the
// inverse of PixelToGrid and is used for hit testing and rendering.
func CellRect(pos Position, size Size, rect Rect, m Metrics) Rect {
	content := m.content(rect)
	colWidth := content.W / float64(Columns)

	w := colWidth
	if size.Width == Full {
		w = content.W
	}

	return Rect{
		X: content.X + float64(pos.Col)*colWidth,
		Y: content.Y + float64(pos.Row)*m.RowUnitHeight,
		W: w,
		H: float64(size.Height) * m.RowUnitHeight,
	}
}

// HitTest returns the ID of the box under the pointer, if any. When boxes
// overlap (a stack), the last match in slice order wins, so callers should
// pass boxes ordered bottom to top.
func HitTest(x, y float64, rect Rect, m Metrics, boxes []Box) (string, bool) {
	id := ""
	found := false
	for _, b := range boxes {
		if CellRect(b.Pos, b.Size, rect, m).Contains(x, y) {
			id = b.ID
			found = true
		}
	}
	return id, found
}
