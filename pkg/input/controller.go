package input

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/mountfort/gridstack/pkg/editor"
	"github.com/mountfort/gridstack/pkg/grid"
)

// handleSize is the thickness in pixels of the resize handle band along
// a component's right and bottom edges.
const handleSize = 10.0

// zone classifies where inside a component's rendered box a pointer-down
// landed.
type zone int

const (
	zoneBody zone = iota
	zoneRight
	zoneBottom
	zoneCorner
)

// Controller routes pointer and keyboard events to editor actions. It
// holds no placement logic of its own: hit testing and coordinate
// translation are delegated to the grid package, and every mutation goes
// through the store.
type Controller struct {
	state  *editor.State
	logger *log.Logger
}

// NewController wires a controller to a store. A nil logger discards.
func NewController(state *editor.State, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{state: state, logger: logger}
}

// Pointer handles one pointer event. Down events resolve a hit target
// and open the matching gesture session; move and up events feed
// whichever session is active. The resulting error is the commit error
// of an ended gesture, if any.
func (c *Controller) Pointer(ev PointerEvent) error {
	switch ev.Type {
	case PointerDown:
		c.pointerDown(ev)
		return nil
	case PointerMove:
		if c.state.Drag().Active {
			c.state.UpdateDrag(ev.X, ev.Y)
		} else if c.state.Resize().Active {
			c.state.UpdateResize(ev.X, ev.Y)
		}
		return nil
	case PointerUp:
		if c.state.Drag().Active {
			return c.state.EndDrag()
		}
		if c.state.Resize().Active {
			return c.state.EndResize()
		}
		return nil
	}
	return nil
}

func (c *Controller) pointerDown(ev PointerEvent) {
	if ev.Shift {
		// Multi-select is not supported; swallowing the click keeps the
		// current selection intact.
		c.logger.Warn("shift-click ignored", "x", ev.X, "y", ev.Y)
		return
	}

	id, z, ok := c.hit(ev.X, ev.Y)
	if !ok {
		c.state.Deselect()
		return
	}

	c.state.SelectComponent(id)
	switch z {
	case zoneRight:
		c.state.StartResize(id, editor.Horizontal)
	case zoneBottom:
		c.state.StartResize(id, editor.Vertical)
	case zoneCorner:
		c.state.StartResize(id, editor.Both)
	default:
		c.state.StartDrag(id)
	}
}

// hit finds the topmost component under the pointer and the zone the
// pointer landed in. Components are scanned in collection order with
// the last match winning, so later-created members of a stack sit on
// top.
func (c *Controller) hit(x, y float64) (string, zone, bool) {
	settings := c.state.Settings()

	var (
		id  string
		z   zone
		got bool
	)
	for _, comp := range c.state.Components() {
		box := grid.CellRect(comp.Pos, comp.Size, settings.Canvas, settings.Metrics)
		if !box.Contains(x, y) {
			continue
		}
		id, got = comp.ID, true

		// On small boxes the band shrinks so the body stays reachable.
		hband := min(handleSize, box.W/3)
		vband := min(handleSize, box.H/3)
		right := x >= box.X+box.W-hband
		bottom := y >= box.Y+box.H-vband
		switch {
		case right && bottom:
			z = zoneCorner
		case right:
			z = zoneRight
		case bottom:
			z = zoneBottom
		default:
			z = zoneBody
		}
	}
	return id, z, got
}

// Keyboard handles one key event. Arrows cycle the selection through the
// collection in creation order with wrapping; Alt+Left/Right instead
// toggles the selected component's width class.
func (c *Controller) Keyboard(ev KeyEvent) error {
	switch ev.Key {
	case KeyLeft, KeyRight:
		if ev.Alt {
			if id := c.state.Selection(); id != "" {
				return c.state.ToggleComponentWidth(id)
			}
			return nil
		}
		c.cycle(ev.Key == KeyRight)
		return nil
	case KeyUp, KeyDown:
		c.cycle(ev.Key == KeyDown)
		return nil
	case KeyEscape:
		c.state.CancelDrag()
		c.state.CancelResize()
		c.state.Deselect()
		return nil
	case KeyEnter, KeySpace:
		if c.state.Selection() != "" {
			c.state.OpenPropertiesPanel()
		}
		return nil
	case KeyDelete, KeyBackspace:
		if id := c.state.Selection(); id != "" {
			c.state.DeleteComponent(id)
		}
		return nil
	}
	return nil
}

// cycle moves the selection to the next or previous component in
// collection order, wrapping at both ends. With nothing selected the
// first component is selected regardless of direction.
func (c *Controller) cycle(forward bool) {
	comps := c.state.Components()
	if len(comps) == 0 {
		return
	}

	cur := -1
	for i, comp := range comps {
		if comp.ID == c.state.Selection() {
			cur = i
			break
		}
	}
	if cur < 0 {
		c.state.SelectComponent(comps[0].ID)
		return
	}

	next := cur + 1
	if !forward {
		next = cur - 1
	}
	next = (next + len(comps)) % len(comps)
	c.state.SelectComponent(comps[next].ID)
}
