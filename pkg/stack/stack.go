// Package stack post-processes a component collection into renderable
// stack groups: components sharing a column whose row ranges overlap are
// grouped for layered rendering, everything else stays individual.
//
// Grouping is derived, never stored. It is recomputed from the collection
// whenever a render pass needs it, and it is deterministic: components are
// seeded in (CreatedAt, ID) order, so recomputing from the same input
// always yields the same groups with the same anchors.
package stack

import (
	"slices"

	"github.com/mountfort/gridstack/pkg/component"
	"github.com/mountfort/gridstack/pkg/grid"
)

// Group is a transient grouping of two or more components that share a
// column and occupy overlapping row ranges.
type Group struct {
	// Members in seed order. Use SortedMembers for the stacking order.
	Members []component.Component

	// Anchor is the group position: the shared column and the minimum
	// row among members.
	Anchor grid.Position

	// Width is Full if any member is full-width, else Half.
	Width grid.WidthClass

	// Height is the aggregate row extent: max end row - min row + 1.
	Height int
}

// Offset returns a member's position relative to the group anchor in
// column and row units. Used for relative positioning during rendering.
func (g Group) Offset(c component.Component) (dc, dr int) {
	return c.Pos.Col - g.Anchor.Col, c.Pos.Row - g.Anchor.Row
}

// SortedMembers returns the members in stacking order, oldest first.
// Creation time is the tie-break that layers overlapping components.
func (g Group) SortedMembers() []component.Component {
	out := slices.Clone(g.Members)
	sortComponents(out)
	return out
}

// Compute partitions the collection into stack groups and individual
// components. A component with no overlapping partner never enters a
// group. The input is not modified.
func Compute(comps []component.Component) (groups []Group, individuals []component.Component) {
	ordered := slices.Clone(comps)
	sortComponents(ordered)

	assigned := make(map[string]bool, len(ordered))

	for i, seed := range ordered {
		if assigned[seed.ID] {
			continue
		}

		members := []component.Component{seed}
		seedStart, seedEnd := grid.RowRange(seed.Pos, seed.Size)

		for _, other := range ordered[i+1:] {
			if assigned[other.ID] || other.Pos.Col != seed.Pos.Col {
				continue
			}
			start, end := grid.RowRange(other.Pos, other.Size)
			if grid.RowsOverlap(seedStart, seedEnd, start, end) {
				members = append(members, other)
			}
		}

		if len(members) < 2 {
			individuals = append(individuals, seed)
			continue
		}

		for _, m := range members {
			assigned[m.ID] = true
		}
		groups = append(groups, build(members))
	}

	return groups, individuals
}

// build derives the group geometry from its members.
func build(members []component.Component) Group {
	minRow := members[0].Pos.Row
	maxEnd := minRow
	width := grid.Half

	for _, m := range members {
		start, end := grid.RowRange(m.Pos, m.Size)
		if start < minRow {
			minRow = start
		}
		if end > maxEnd {
			maxEnd = end
		}
		if m.Size.Width == grid.Full {
			width = grid.Full
		}
	}

	return Group{
		Members: members,
		Anchor:  grid.Position{Col: members[0].Pos.Col, Row: minRow},
		Width:   width,
		Height:  maxEnd - minRow + 1,
	}
}

// sortComponents orders by creation time, then ID, for deterministic
// seeding and stacking.
func sortComponents(comps []component.Component) {
	slices.SortFunc(comps, func(a, b component.Component) int {
		if a.CreatedAt.Before(b.CreatedAt) {
			return -1
		}
		if a.CreatedAt.After(b.CreatedAt) {
			return 1
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
}
