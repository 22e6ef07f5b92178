package preview

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/mountfort/gridstack/pkg/component"
	"github.com/mountfort/gridstack/pkg/document"
	"github.com/mountfort/gridstack/pkg/stack"
)

// renderMarkdown emits the document's blocks in reading order: top to
// bottom, left to right, with stacked components in stacking order.
// Layout geometry is dropped; markdown is a linear medium.
func (r *Renderer) renderMarkdown(d document.Document) []byte {
	groups, individuals := stack.Compute(d.Components)

	type entry struct {
		row, col int
		comps    []component.Component
	}
	entries := make([]entry, 0, len(groups)+len(individuals))
	for _, c := range individuals {
		entries = append(entries, entry{c.Pos.Row, c.Pos.Col, []component.Component{c}})
	}
	for _, g := range groups {
		entries = append(entries, entry{g.Anchor.Row, g.Anchor.Col, g.SortedMembers()})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].row != entries[j].row {
			return entries[i].row < entries[j].row
		}
		return entries[i].col < entries[j].col
	})

	var buf bytes.Buffer
	for _, e := range entries {
		for _, c := range e.comps {
			writeMarkdownBlock(&buf, c)
		}
	}
	return buf.Bytes()
}

func writeMarkdownBlock(buf *bytes.Buffer, c component.Component) {
	switch c.Kind {
	case component.KindImage:
		alt, src := "", ""
		if c.Image != nil {
			alt, src = c.Image.Alt, c.Image.Source
		}
		fmt.Fprintf(buf, "![%s](%s)\n\n", alt, src)
	default:
		if c.Text != nil && c.Text.Content != "" {
			fmt.Fprintf(buf, "%s\n\n", c.Text.Content)
		}
	}
}
