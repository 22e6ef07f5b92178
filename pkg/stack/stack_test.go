package stack

import (
	"testing"
	"time"

	"github.com/mountfort/gridstack/pkg/component"
	"github.com/mountfort/gridstack/pkg/grid"
)

// comp builds a test component with a fixed creation time so stacking
// order is deterministic across runs.
func comp(id string, col, row int, width grid.WidthClass, height int, createdOffset time.Duration) component.Component {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	attrs := component.DefaultTextAttrs()
	return component.Component{
		ID:        id,
		Kind:      component.KindText,
		Pos:       grid.Position{Col: col, Row: row},
		Size:      grid.Size{Width: width, Height: height},
		Text:      &attrs,
		Style:     component.DefaultStyle(),
		CreatedAt: base.Add(createdOffset),
		UpdatedAt: base.Add(createdOffset),
	}
}

func TestComputeNoOverlap(t *testing.T) {
	comps := []component.Component{
		comp("a", 0, 0, grid.Half, 1, 0),
		comp("b", 1, 0, grid.Half, 1, time.Second),
		comp("c", 0, 1, grid.Half, 1, 2*time.Second),
	}

	groups, individuals := Compute(comps)
	if len(groups) != 0 {
		t.Fatalf("groups = %d, want 0", len(groups))
	}
	if len(individuals) != 3 {
		t.Fatalf("individuals = %d, want 3", len(individuals))
	}
}

func TestComputeSimpleStack(t *testing.T) {
	comps := []component.Component{
		comp("a", 0, 0, grid.Half, 1, 0),
		comp("b", 0, 0, grid.Half, 1, time.Second),
	}

	groups, individuals := Compute(comps)
	if len(groups) != 1 || len(individuals) != 0 {
		t.Fatalf("groups = %d individuals = %d, want 1/0", len(groups), len(individuals))
	}

	g := groups[0]
	if g.Anchor != (grid.Position{Col: 0, Row: 0}) {
		t.Errorf("anchor = %v, want (0,0)", g.Anchor)
	}
	if g.Height != 1 {
		t.Errorf("height = %d, want 1", g.Height)
	}
	if g.Width != grid.Half {
		t.Errorf("width = %v, want half", g.Width)
	}
	if len(g.Members) != 2 {
		t.Errorf("members = %d, want 2", len(g.Members))
	}
}

func TestComputeGeometry(t *testing.T) {
	// b starts one row below a and extends past it; the group must span
	// both extents and take the full width of the widest member.
	comps := []component.Component{
		comp("a", 0, 1, grid.Full, 2, 0),
		comp("b", 0, 2, grid.Half, 3, time.Second),
	}

	groups, _ := Compute(comps)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}

	g := groups[0]
	if g.Anchor != (grid.Position{Col: 0, Row: 1}) {
		t.Errorf("anchor = %v, want (0,1)", g.Anchor)
	}
	if g.Height != 4 {
		t.Errorf("height = %d, want 4 (rows 1..4)", g.Height)
	}
	if g.Width != grid.Full {
		t.Errorf("width = %v, want full", g.Width)
	}
}

func TestComputeDifferentColumnsNeverGroup(t *testing.T) {
	comps := []component.Component{
		comp("a", 0, 0, grid.Half, 2, 0),
		comp("b", 1, 0, grid.Half, 2, time.Second),
	}

	groups, individuals := Compute(comps)
	if len(groups) != 0 || len(individuals) != 2 {
		t.Fatalf("groups = %d individuals = %d, want 0/2", len(groups), len(individuals))
	}
}

func TestComputeSeedGathersAllOverlaps(t *testing.T) {
	// c overlaps the seed a but not b; both join a's group because the
	// seed's range is what partners are tested against.
	comps := []component.Component{
		comp("a", 0, 0, grid.Half, 3, 0),
		comp("b", 0, 0, grid.Half, 1, time.Second),
		comp("c", 0, 2, grid.Half, 1, 2*time.Second),
	}

	groups, individuals := Compute(comps)
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	if len(groups[0].Members) != 3 {
		t.Errorf("members = %d, want 3", len(groups[0].Members))
	}
	if len(individuals) != 0 {
		t.Errorf("individuals = %d, want 0", len(individuals))
	}
}

func TestComputeIdempotent(t *testing.T) {
	comps := []component.Component{
		comp("d", 0, 0, grid.Half, 2, 3*time.Second),
		comp("a", 0, 1, grid.Half, 2, 0),
		comp("b", 1, 0, grid.Half, 1, time.Second),
		comp("c", 0, 4, grid.Full, 1, 2*time.Second),
	}

	g1, i1 := Compute(comps)
	g2, i2 := Compute(comps)

	if len(g1) != len(g2) || len(i1) != len(i2) {
		t.Fatalf("recompute changed shape: %d/%d vs %d/%d", len(g1), len(i1), len(g2), len(i2))
	}
	for i := range g1 {
		if g1[i].Anchor != g2[i].Anchor || g1[i].Height != g2[i].Height || g1[i].Width != g2[i].Width {
			t.Errorf("group %d differs between runs", i)
		}
		if len(g1[i].Members) != len(g2[i].Members) {
			t.Fatalf("group %d membership differs", i)
		}
		for j := range g1[i].Members {
			if g1[i].Members[j].ID != g2[i].Members[j].ID {
				t.Errorf("group %d member %d: %s vs %s", i, j, g1[i].Members[j].ID, g2[i].Members[j].ID)
			}
		}
	}
}

func TestComputeInputOrderIndependent(t *testing.T) {
	a := comp("a", 0, 0, grid.Half, 1, 0)
	b := comp("b", 0, 0, grid.Half, 1, time.Second)
	c := comp("c", 1, 2, grid.Half, 1, 2*time.Second)

	g1, _ := Compute([]component.Component{a, b, c})
	g2, _ := Compute([]component.Component{c, b, a})

	if len(g1) != 1 || len(g2) != 1 {
		t.Fatalf("groups = %d/%d, want 1/1", len(g1), len(g2))
	}
	if g1[0].Anchor != g2[0].Anchor {
		t.Errorf("anchors differ: %v vs %v", g1[0].Anchor, g2[0].Anchor)
	}
}

func TestOffset(t *testing.T) {
	a := comp("a", 0, 1, grid.Half, 2, 0)
	b := comp("b", 0, 2, grid.Half, 1, time.Second)

	groups, _ := Compute([]component.Component{a, b})
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}
	g := groups[0]

	dc, dr := g.Offset(a)
	if dc != 0 || dr != 0 {
		t.Errorf("offset(a) = (%d,%d), want (0,0)", dc, dr)
	}
	dc, dr = g.Offset(b)
	if dc != 0 || dr != 1 {
		t.Errorf("offset(b) = (%d,%d), want (0,1)", dc, dr)
	}
}

func TestSortedMembersByCreation(t *testing.T) {
	newer := comp("newer", 0, 0, grid.Half, 1, time.Minute)
	older := comp("older", 0, 0, grid.Half, 1, 0)

	groups, _ := Compute([]component.Component{newer, older})
	if len(groups) != 1 {
		t.Fatalf("groups = %d, want 1", len(groups))
	}

	members := groups[0].SortedMembers()
	if members[0].ID != "older" || members[1].ID != "newer" {
		t.Errorf("stacking order = [%s %s], want [older newer]", members[0].ID, members[1].ID)
	}
}
