package preview

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mountfort/gridstack/pkg/component"
	"github.com/mountfort/gridstack/pkg/document"
	"github.com/mountfort/gridstack/pkg/grid"
	"github.com/mountfort/gridstack/pkg/stack"
)

var (
	colorFrame = lipgloss.Color("245")
	colorStack = lipgloss.Color("36")
	colorMeta  = lipgloss.Color("240")

	styleBlock = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorFrame).
			Padding(0, 1)

	styleStack = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorStack).
			Padding(0, 1)

	styleMeta = lipgloss.NewStyle().Foreground(colorMeta)
)

// item is one renderable unit: a lone component or a whole stack group.
type item struct {
	pos   grid.Position
	width grid.WidthClass
	body  string
}

// renderText draws the document as a framed character canvas mirroring
// the grid: half-width blocks share a band, full-width blocks span it,
// stacks are framed together with their members in stacking order.
func (r *Renderer) renderText(d document.Document) []byte {
	groups, individuals := stack.Compute(d.Components)

	half := r.width/2 - 2
	full := r.width - 2

	items := make([]item, 0, len(groups)+len(individuals))
	for _, c := range individuals {
		items = append(items, item{
			pos:   c.Pos,
			width: c.Size.Width,
			body:  r.block(c, contentWidth(c.Size.Width, half, full)),
		})
	}
	for _, g := range groups {
		items = append(items, item{
			pos:   g.Anchor,
			width: g.Width,
			body:  r.stackBlock(g, contentWidth(g.Width, half, full)),
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].pos.Row != items[j].pos.Row {
			return items[i].pos.Row < items[j].pos.Row
		}
		return items[i].pos.Col < items[j].pos.Col
	})

	var bands []string
	for i := 0; i < len(items); {
		row := items[i].pos.Row
		j := i
		for j < len(items) && items[j].pos.Row == row {
			j++
		}
		bands = append(bands, r.band(items[i:j], half))
		i = j
	}

	return []byte(strings.Join(bands, "\n") + "\n")
}

func contentWidth(w grid.WidthClass, half, full int) int {
	if w == grid.Full {
		return full
	}
	return half
}

// band lays out the items anchored in one row. Two halves sit side by
// side; a lone right-column half gets a blank spacer on its left.
func (r *Renderer) band(items []item, half int) string {
	if len(items) == 1 {
		it := items[0]
		if it.width == grid.Half && it.pos.Col == 1 {
			spacer := lipgloss.NewStyle().Width(half + 4).Render("")
			return lipgloss.JoinHorizontal(lipgloss.Top, spacer, it.body)
		}
		return it.body
	}

	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.body
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// block renders one component's framed body.
func (r *Renderer) block(c component.Component, width int) string {
	return styleBlock.Width(width).Render(r.content(c, width))
}

// stackBlock renders a group: members in stacking order inside one
// shared frame, bottom of the stack first.
func (r *Renderer) stackBlock(g stack.Group, width int) string {
	members := g.SortedMembers()
	parts := make([]string, 0, len(members)+1)
	parts = append(parts, styleMeta.Render(fmt.Sprintf("stack of %d", len(members))))
	for _, m := range members {
		parts = append(parts, styleBlock.Width(width-4).Render(r.content(m, width-4)))
	}
	return styleStack.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// content produces a component's inner text.
func (r *Renderer) content(c component.Component, width int) string {
	switch c.Kind {
	case component.KindImage:
		alt := ""
		src := ""
		if c.Image != nil {
			alt = c.Image.Alt
			src = c.Image.Source
		}
		if src == "" {
			return fmt.Sprintf("[%s]", alt)
		}
		return fmt.Sprintf("[%s]\n%s", alt, styleMeta.Render(src))
	default:
		body := ""
		align := lipgloss.Left
		if c.Text != nil {
			body = c.Text.Content
			switch c.Text.Align {
			case "center":
				align = lipgloss.Center
			case "right":
				align = lipgloss.Right
			}
		}
		return lipgloss.NewStyle().Width(width).Align(align).Render(body)
	}
}
