package cli

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/mountfort/gridstack/pkg/component"
	"github.com/mountfort/gridstack/pkg/editor"
	"github.com/mountfort/gridstack/pkg/grid"
	"github.com/mountfort/gridstack/pkg/input"
)

// Canvas geometry in terminal cells. One grid row unit is rowCellHeight
// terminal rows; the canvas starts below the title line.
const (
	rowCellHeight = 4
	sidebarWidth  = 34
	canvasTop     = 1
	statusHeight  = 1
)

// Editor view styles.
var (
	styleCanvasFrame = lipgloss.NewStyle().Foreground(colorGray)
	styleSelected    = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleSidebar     = lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, false, false, true).
				BorderForeground(colorDim).
				PaddingLeft(1)
	styleStatusOK  = lipgloss.NewStyle().Foreground(colorGreen)
	styleStatusErr = lipgloss.NewStyle().Foreground(colorRed)
)

// =============================================================================
// EditorModel - Interactive layout editing
// =============================================================================

// EditorModel is the bubbletea model for the layout editor. All
// mutations flow through the store via the input controller; the model
// itself only translates terminal events and renders.
type EditorModel struct {
	state      *editor.State
	controller *input.Controller
	logger     *log.Logger

	width  int
	height int

	status  string
	statusE bool

	save func(*editor.State) error
	done bool
}

// NewEditorModel creates an editor model around an existing store. The
// save callback is invoked by the save key and before quitting.
func NewEditorModel(state *editor.State, logger *log.Logger, save func(*editor.State) error) EditorModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return EditorModel{
		state:      state,
		controller: input.NewController(state, logger),
		logger:     logger,
		save:       save,
	}
}

func (m EditorModel) Init() tea.Cmd {
	return nil
}

func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.applyCanvasSize()
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// applyCanvasSize keeps the store's canvas rect in sync with the
// terminal so pointer coordinates resolve to the drawn cells.
func (m *EditorModel) applyCanvasSize() {
	if m.width == 0 || m.height == 0 {
		return
	}
	settings := m.state.Settings()
	settings.Canvas = grid.Rect{
		X: 0,
		Y: canvasTop,
		W: float64(m.width - sidebarWidth),
		H: float64(m.height - canvasTop - statusHeight),
	}
	settings.Metrics.RowUnitHeight = rowCellHeight
	settings.Metrics.Padding = 0
	if err := m.state.UpdateSettings(settings); err != nil {
		m.logger.Warn("canvas resize rejected", "err", err)
	}
}

func (m EditorModel) handleMouse(msg tea.MouseMsg) EditorModel {
	ev := input.PointerEvent{
		X:     float64(msg.X),
		Y:     float64(msg.Y),
		Shift: msg.Shift,
		Alt:   msg.Alt,
	}
	// Motion with the button held still reports the press button, so
	// routing keys on Action rather than the legacy Type field.
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		ev.Type = input.PointerDown
	case tea.MouseActionMotion:
		ev.Type = input.PointerMove
	case tea.MouseActionRelease:
		ev.Type = input.PointerUp
	default:
		return m
	}

	if err := m.controller.Pointer(ev); err != nil {
		m.setStatus(err.Error(), true)
	} else if ev.Type == input.PointerUp {
		m.setStatus("", false)
	}
	return m
}

func (m EditorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if err := m.saveNow(); err != nil {
			m.setStatus("save failed: "+err.Error(), true)
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case "s":
		if err := m.saveNow(); err != nil {
			m.setStatus("save failed: "+err.Error(), true)
		} else {
			m.setStatus("saved", false)
		}
		return m, nil

	case "t":
		return m.addComponent(component.KindText), nil
	case "i":
		return m.addComponent(component.KindImage), nil
	case "a":
		m.state.ToggleAddPanel()
		return m, nil
	case "w":
		if id := m.state.Selection(); id != "" {
			if err := m.state.ToggleComponentWidth(id); err != nil {
				m.setStatus(err.Error(), true)
			}
		}
		return m, nil
	}

	if ev, ok := keyEvent(msg); ok {
		if err := m.controller.Keyboard(ev); err != nil {
			m.setStatus(err.Error(), true)
		}
	}
	return m, nil
}

// keyEvent maps a terminal key to the controller's vocabulary.
func keyEvent(msg tea.KeyMsg) (input.KeyEvent, bool) {
	switch msg.String() {
	case "up", "k":
		return input.KeyEvent{Key: input.KeyUp}, true
	case "down", "j":
		return input.KeyEvent{Key: input.KeyDown}, true
	case "left", "h":
		return input.KeyEvent{Key: input.KeyLeft}, true
	case "right", "l":
		return input.KeyEvent{Key: input.KeyRight}, true
	case "alt+left":
		return input.KeyEvent{Key: input.KeyLeft, Alt: true}, true
	case "alt+right":
		return input.KeyEvent{Key: input.KeyRight, Alt: true}, true
	case "esc":
		return input.KeyEvent{Key: input.KeyEscape}, true
	case "enter":
		return input.KeyEvent{Key: input.KeyEnter}, true
	case " ":
		return input.KeyEvent{Key: input.KeySpace}, true
	case "delete", "x":
		return input.KeyEvent{Key: input.KeyDelete}, true
	case "backspace":
		return input.KeyEvent{Key: input.KeyBackspace}, true
	}
	return input.KeyEvent{}, false
}

func (m EditorModel) addComponent(kind component.Kind) EditorModel {
	id, err := m.state.AddComponent(kind, nil)
	if err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	m.setStatus(fmt.Sprintf("added %s %s", kind, shortID(id)), false)
	return m
}

func (m *EditorModel) saveNow() error {
	if m.save == nil {
		return nil
	}
	return m.save(m.state)
}

func (m *EditorModel) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusE = isErr
}

// =============================================================================
// View
// =============================================================================

func (m EditorModel) View() string {
	if m.done || m.width == 0 {
		return ""
	}

	title := StyleTitle.Render(" gridstack ") +
		StyleDim.Render(fmt.Sprintf(" %d blocks", m.state.Len()))

	canvas := m.viewCanvas()
	sidebar := m.viewSidebar()
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, sidebar)

	status := m.viewStatus()

	return title + "\n" + body + "\n" + status
}

// viewCanvas draws the grid onto a rune buffer so drawn boxes line up
// exactly with the cells the pointer math resolves.
func (m EditorModel) viewCanvas() string {
	settings := m.state.Settings()
	w := int(settings.Canvas.W)
	h := int(settings.Canvas.H)
	if w < 10 || h < rowCellHeight {
		return ""
	}

	buf := make([][]rune, h)
	for i := range buf {
		buf[i] = []rune(strings.Repeat(" ", w))
	}

	selected := m.state.Selection()
	drag := m.state.Drag()

	for _, c := range m.state.Components() {
		r := grid.CellRect(c.Pos, c.Size, settings.Canvas, settings.Metrics)
		drawBox(buf, r, settings.Canvas, c.ID == selected)
		drawLabel(buf, r, settings.Canvas, blockLabel(c))
	}

	if drag.Active {
		if c, ok := m.state.ComponentByID(drag.ID); ok {
			r := grid.CellRect(drag.Target, c.Size, settings.Canvas, settings.Metrics)
			drawGhost(buf, r, settings.Canvas, drag.ValidDrop)
		}
	}

	lines := make([]string, h)
	for i, row := range buf {
		lines[i] = string(row)
	}
	return styleCanvasFrame.Render(strings.Join(lines, "\n"))
}

// blockLabel is a block's one-line canvas caption.
func blockLabel(c component.Component) string {
	switch c.Kind {
	case component.KindImage:
		alt := ""
		if c.Image != nil {
			alt = c.Image.Alt
		}
		return "img: " + alt
	default:
		if c.Text != nil {
			return c.Text.Content
		}
		return "text"
	}
}

// boxRunes are the frame characters for normal and selected blocks.
var boxRunes = map[bool][6]rune{
	false: {'┌', '┐', '└', '┘', '─', '│'},
	true:  {'╔', '╗', '╚', '╝', '═', '║'},
}

// drawBox outlines r on the buffer. Canvas-relative clipping keeps a
// partially off-screen block from panicking during resize.
func drawBox(buf [][]rune, r, canvas grid.Rect, selected bool) {
	x0, y0 := int(r.X-canvas.X), int(r.Y-canvas.Y)
	x1, y1 := x0+int(r.W)-1, y0+int(r.H)-1
	runes := boxRunes[selected]

	for x := x0; x <= x1; x++ {
		put(buf, x, y0, runes[4])
		put(buf, x, y1, runes[4])
	}
	for y := y0; y <= y1; y++ {
		put(buf, x0, y, runes[5])
		put(buf, x1, y, runes[5])
	}
	put(buf, x0, y0, runes[0])
	put(buf, x1, y0, runes[1])
	put(buf, x0, y1, runes[2])
	put(buf, x1, y1, runes[3])
}

// drawGhost marks the drag target cell outline.
func drawGhost(buf [][]rune, r, canvas grid.Rect, valid bool) {
	mark := '·'
	if !valid {
		mark = '×'
	}
	x0, y0 := int(r.X-canvas.X), int(r.Y-canvas.Y)
	x1, y1 := x0+int(r.W)-1, y0+int(r.H)-1
	for x := x0; x <= x1; x += 2 {
		put(buf, x, y0, mark)
		put(buf, x, y1, mark)
	}
	for y := y0; y <= y1; y++ {
		put(buf, x0, y, mark)
		put(buf, x1, y, mark)
	}
}

// drawLabel writes a caption inside the box, clipped to its width.
func drawLabel(buf [][]rune, r, canvas grid.Rect, label string) {
	x, y := int(r.X-canvas.X)+2, int(r.Y-canvas.Y)+1
	maxLen := int(r.W) - 4
	if maxLen <= 0 {
		return
	}
	runes := []rune(label)
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}
	for i, ch := range runes {
		put(buf, x+i, y, ch)
	}
}

func put(buf [][]rune, x, y int, ch rune) {
	if y < 0 || y >= len(buf) || x < 0 || x >= len(buf[y]) {
		return
	}
	buf[y][x] = ch
}

func (m EditorModel) viewSidebar() string {
	var b strings.Builder

	panels := m.state.Panels()

	if panels.AddOpen {
		b.WriteString(StyleTitle.Render("Add block") + "\n")
		b.WriteString(StyleValue.Render("t") + StyleDim.Render("  text block") + "\n")
		b.WriteString(StyleValue.Render("i") + StyleDim.Render("  image block") + "\n\n")
	}

	if id := m.state.Selection(); id != "" && panels.PropertiesOpen {
		if c, ok := m.state.ComponentByID(id); ok {
			b.WriteString(StyleTitle.Render("Properties") + "\n")
			b.WriteString(propLine("id", shortID(c.ID)))
			b.WriteString(propLine("kind", string(c.Kind)))
			b.WriteString(propLine("cell", fmt.Sprintf("(%d,%d)", c.Pos.Col, c.Pos.Row)))
			b.WriteString(propLine("size", fmt.Sprintf("%s x%d", c.Size.Width, c.Size.Height)))
			switch c.Kind {
			case component.KindText:
				if c.Text != nil {
					b.WriteString(propLine("text", c.Text.Content))
					b.WriteString(propLine("align", c.Text.Align))
					b.WriteString(propLine("color", c.Text.Color))
				}
			case component.KindImage:
				if c.Image != nil {
					b.WriteString(propLine("src", c.Image.Source))
					b.WriteString(propLine("fit", c.Image.Fit))
				}
			}
			b.WriteString("\n")
		}
	}

	b.WriteString(StyleDim.Render("t/i add  w width  x delete") + "\n")
	b.WriteString(StyleDim.Render("arrows select  esc clear") + "\n")
	b.WriteString(StyleDim.Render("drag body / edges resize") + "\n")
	b.WriteString(StyleDim.Render("s save  q quit") + "\n")

	height := m.height - canvasTop - statusHeight
	return styleSidebar.Width(sidebarWidth - 2).Height(height).Render(b.String())
}

func propLine(key, value string) string {
	return StyleDim.Render(fmt.Sprintf("%-6s", key)) + StyleValue.Render(value) + "\n"
}

func (m EditorModel) viewStatus() string {
	if m.status == "" {
		return StyleDim.Render(" ready")
	}
	if m.statusE {
		return styleStatusErr.Render(" " + m.status)
	}
	return styleStatusOK.Render(" " + m.status)
}

// shortID abbreviates a component id for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
