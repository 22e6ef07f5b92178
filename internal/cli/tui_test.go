package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mountfort/gridstack/pkg/editor"
	"github.com/mountfort/gridstack/pkg/grid"
)

func testModel(t *testing.T) EditorModel {
	t.Helper()
	state := editor.New(editor.DefaultSettings(), nil)
	m := NewEditorModel(state, nil, nil)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(EditorModel)
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// Mouse event constructors shaped the way the terminal parser delivers
// them: a drag motion keeps reporting the held button.
func mousePress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, Type: tea.MouseLeft}
}

func mouseDrag(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft, Type: tea.MouseLeft}
}

func mouseRelease(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone, Type: tea.MouseRelease}
}

func TestEditorModelResizeSyncsCanvas(t *testing.T) {
	m := testModel(t)
	settings := m.state.Settings()
	if settings.Canvas.W != float64(120-sidebarWidth) {
		t.Errorf("canvas width = %v, want %v", settings.Canvas.W, 120-sidebarWidth)
	}
	if settings.Metrics.RowUnitHeight != rowCellHeight {
		t.Errorf("row unit = %v, want %v", settings.Metrics.RowUnitHeight, rowCellHeight)
	}
}

func TestEditorModelAddKeys(t *testing.T) {
	m := testModel(t)

	updated, _ := m.Update(keyRune('t'))
	m = updated.(EditorModel)
	if m.state.Len() != 1 {
		t.Fatalf("blocks = %d, want 1 after 't'", m.state.Len())
	}

	updated, _ = m.Update(keyRune('i'))
	m = updated.(EditorModel)
	if m.state.Len() != 2 {
		t.Fatalf("blocks = %d, want 2 after 'i'", m.state.Len())
	}
}

func TestEditorModelMouseDrag(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(keyRune('t'))
	m = updated.(EditorModel)

	comps := m.state.Components()
	id := comps[0].ID
	settings := m.state.Settings()
	box := grid.CellRect(comps[0].Pos, comps[0].Size, settings.Canvas, settings.Metrics)

	updated, _ = m.Update(mousePress(int(box.X)+3, int(box.Y)+1))
	m = updated.(EditorModel)
	if d := m.state.Drag(); !d.Active || d.ID != id {
		t.Fatalf("drag = %+v, want active for %s", d, id)
	}

	// Drag into the second row of the right column.
	targetX := int(settings.Canvas.X + settings.Canvas.W*3/4)
	targetY := int(settings.Canvas.Y) + rowCellHeight + 1
	updated, _ = m.Update(mouseDrag(targetX, targetY))
	m = updated.(EditorModel)
	updated, _ = m.Update(mouseRelease(targetX, targetY))
	m = updated.(EditorModel)

	got, _ := m.state.ComponentByID(id)
	if got.Pos != (grid.Position{Col: 1, Row: 1}) {
		t.Errorf("pos = %v, want (1,1)", got.Pos)
	}
}

// A held-button motion still carries the press button in its legacy
// Type field, so it must not be mistaken for a fresh press: the drag
// session has to survive every intermediate motion event.
func TestEditorModelDragSurvivesHeldButtonMotion(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(keyRune('t'))
	m = updated.(EditorModel)

	comps := m.state.Components()
	id := comps[0].ID
	settings := m.state.Settings()
	box := grid.CellRect(comps[0].Pos, comps[0].Size, settings.Canvas, settings.Metrics)

	updated, _ = m.Update(mousePress(int(box.X)+3, int(box.Y)+1))
	m = updated.(EditorModel)

	// Sweep across empty canvas in several steps; a misrouted motion
	// would restart the gesture (or deselect) on each one.
	targetX := int(settings.Canvas.X + settings.Canvas.W*3/4)
	targetY := int(settings.Canvas.Y) + rowCellHeight + 1
	for _, x := range []int{int(box.X) + 20, int(box.X) + 50, targetX} {
		updated, _ = m.Update(mouseDrag(x, targetY))
		m = updated.(EditorModel)
		if d := m.state.Drag(); !d.Active || d.ID != id {
			t.Fatalf("drag lost at x=%d: %+v", x, d)
		}
	}
	if d := m.state.Drag(); d.Target != (grid.Position{Col: 1, Row: 1}) {
		t.Fatalf("drag target = %v, want (1,1)", m.state.Drag().Target)
	}

	updated, _ = m.Update(mouseRelease(targetX, targetY))
	m = updated.(EditorModel)

	got, _ := m.state.ComponentByID(id)
	if got.Pos != (grid.Position{Col: 1, Row: 1}) {
		t.Errorf("pos after drag = %v, want (1,1)", got.Pos)
	}
	if m.state.Selection() != id {
		t.Errorf("selection = %q, want %q", m.state.Selection(), id)
	}
}

func TestEditorModelViewShowsBlocks(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(keyRune('t'))
	m = updated.(EditorModel)

	view := m.View()
	if !strings.Contains(view, "gridstack") {
		t.Error("view missing title")
	}
	if !strings.Contains(view, "Edit this text") {
		t.Error("view missing block label")
	}
	if !strings.Contains(view, "Properties") {
		t.Error("view missing properties panel for the auto-selected block")
	}
}

func TestEditorModelDeleteKey(t *testing.T) {
	m := testModel(t)
	updated, _ := m.Update(keyRune('t'))
	m = updated.(EditorModel)

	updated, _ = m.Update(keyRune('x'))
	m = updated.(EditorModel)
	if m.state.Len() != 0 {
		t.Errorf("blocks = %d, want 0 after delete", m.state.Len())
	}
}

func TestEditorModelQuitSaves(t *testing.T) {
	saved := false
	state := editor.New(editor.DefaultSettings(), nil)
	m := NewEditorModel(state, nil, func(*editor.State) error {
		saved = true
		return nil
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = updated.(EditorModel)

	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if !saved {
		t.Error("quit did not invoke save")
	}
}
