// Package input adapts raw pointer and keyboard events into editor
// actions. The event types are deliberately free of any UI toolkit so
// the routing logic can be driven directly in tests; the terminal
// frontend translates its own messages into these events before handing
// them over.
package input

// PointerType discriminates the phases of a pointer gesture.
type PointerType int

const (
	PointerDown PointerType = iota
	PointerMove
	PointerUp
)

// PointerEvent is one pointer sample in canvas coordinates.
type PointerEvent struct {
	Type  PointerType
	X, Y  float64
	Shift bool
	Alt   bool
}

// Key identifies a keyboard action the editor responds to. Frontends
// map their own key encodings onto these names.
type Key string

const (
	KeyUp        Key = "up"
	KeyDown      Key = "down"
	KeyLeft      Key = "left"
	KeyRight     Key = "right"
	KeyEscape    Key = "esc"
	KeyEnter     Key = "enter"
	KeySpace     Key = "space"
	KeyDelete    Key = "delete"
	KeyBackspace Key = "backspace"
)

// KeyEvent is one keyboard action.
type KeyEvent struct {
	Key Key
	Alt bool
}
