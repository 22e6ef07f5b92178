package editor

import (
	"testing"

	"github.com/mountfort/gridstack/pkg/component"
	"github.com/mountfort/gridstack/pkg/errors"
	"github.com/mountfort/gridstack/pkg/grid"
)

func TestStartResize(t *testing.T) {
	s := testState()
	id := mustAdd(t, s, component.KindText, pos(0, 0))

	s.StartResize(id, Horizontal)

	r := s.Resize()
	if !r.Active || r.ID != id || r.Axis != Horizontal {
		t.Fatalf("resize = %+v, want active horizontal for %s", r, id)
	}
	if r.Original != (grid.Size{Width: grid.Half, Height: 1}) {
		t.Errorf("original = %v, want default text size", r.Original)
	}
}

func TestStartResizeUnknownID(t *testing.T) {
	s := testState()
	s.StartResize("ghost", Vertical)
	if s.Resize().Active {
		t.Error("resize started for unknown component")
	}
}

func TestStartResizeCancelsDrag(t *testing.T) {
	s := testState()
	id := mustAdd(t, s, component.KindText, pos(0, 0))

	s.StartDrag(id)
	s.StartResize(id, Vertical)

	if s.Drag().Active {
		t.Error("drag survived resize start")
	}
	if !s.Resize().Active {
		t.Error("resize not active")
	}
}

func TestUpdateResizeHorizontalThreshold(t *testing.T) {
	s := testState() // canvas 800 wide, threshold at x=600
	id := mustAdd(t, s, component.KindText, pos(0, 0))

	tests := []struct {
		name string
		x    float64
		want grid.WidthClass
	}{
		{"WellShort", 300, grid.Half},
		{"JustShort", 599, grid.Half},
		{"AtThreshold", 600, grid.Full},
		{"Beyond", 780, grid.Full},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.StartResize(id, Horizontal)
			s.UpdateResize(tt.x, 50)
			r := s.Resize()
			if r.Candidate.Width != tt.want {
				t.Errorf("width = %v, want %v", r.Candidate.Width, tt.want)
			}
			if r.Candidate.Height != 1 {
				t.Errorf("horizontal resize changed height to %d", r.Candidate.Height)
			}
			s.CancelResize()
		})
	}
}

func TestUpdateResizeVerticalHeight(t *testing.T) {
	s := testState() // row unit 100px
	id := mustAdd(t, s, component.KindText, pos(0, 0))

	tests := []struct {
		name string
		y    float64
		want int
	}{
		{"OneUnit", 90, 1},
		{"TwoUnits", 210, 2},
		{"FourUnits", 380, 4},
		{"AboveTopClampsToOne", -40, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.StartResize(id, Vertical)
			s.UpdateResize(50, tt.y)
			r := s.Resize()
			if r.Candidate.Height != tt.want {
				t.Errorf("height = %d, want %d", r.Candidate.Height, tt.want)
			}
			if r.Candidate.Width != grid.Half {
				t.Errorf("vertical resize changed width to %v", r.Candidate.Width)
			}
			s.CancelResize()
		})
	}
}

func TestUpdateResizeValidityReflectsCollision(t *testing.T) {
	s := testState()
	a := mustAdd(t, s, component.KindText, pos(0, 0))
	mustAdd(t, s, component.KindText, pos(1, 0))

	// Growing a to full width would overlap the right-column neighbor.
	s.StartResize(a, Horizontal)
	s.UpdateResize(700, 50)

	r := s.Resize()
	if r.Candidate.Width != grid.Full {
		t.Fatalf("width = %v, want Full", r.Candidate.Width)
	}
	if r.Valid {
		t.Error("colliding candidate flagged valid")
	}
}

// Growing a half component to full width while the other column is
// occupied in the same rows must be rejected, leaving the component at
// its original size.
func TestEndResizeStrictRejection(t *testing.T) {
	s := testState()
	a := mustAdd(t, s, component.KindText, pos(0, 0))
	mustAdd(t, s, component.KindText, pos(1, 0))

	s.StartResize(a, Horizontal)
	s.UpdateResize(700, 50)
	err := s.EndResize()
	if !errors.Is(err, errors.ErrCodeCollision) {
		t.Fatalf("err = %v, want COLLISION", err)
	}

	c, _ := s.ComponentByID(a)
	if c.Size != (grid.Size{Width: grid.Half, Height: 1}) {
		t.Errorf("size = %v, want original half size", c.Size)
	}
	if s.Resize().Active {
		t.Error("resize still active after rejection")
	}
	checkInvariants(t, s, false)
}

func TestEndResizeCommits(t *testing.T) {
	s := testState()
	id := mustAdd(t, s, component.KindText, pos(0, 0))

	s.StartResize(id, Vertical)
	s.UpdateResize(50, 280)
	if err := s.EndResize(); err != nil {
		t.Fatalf("EndResize: %v", err)
	}

	c, _ := s.ComponentByID(id)
	if c.Size.Height != 3 {
		t.Errorf("height = %d, want 3", c.Size.Height)
	}
	checkInvariants(t, s, false)
}

func TestEndResizeFullWidthMovesToColumnZero(t *testing.T) {
	s := testState()
	id := mustAdd(t, s, component.KindText, pos(1, 0))

	s.StartResize(id, Horizontal)
	s.UpdateResize(700, 50)
	if err := s.EndResize(); err != nil {
		t.Fatalf("EndResize: %v", err)
	}

	c, _ := s.ComponentByID(id)
	if c.Size.Width != grid.Full || c.Pos.Col != 0 {
		t.Errorf("got %v at col %d, want Full at col 0", c.Size.Width, c.Pos.Col)
	}
}

func TestEndResizeUnchangedCandidateIsNoOp(t *testing.T) {
	s := testState()
	id := mustAdd(t, s, component.KindText, pos(0, 0))
	before, _ := s.ComponentByID(id)

	s.StartResize(id, Vertical)
	s.UpdateResize(50, 60) // still one unit
	if err := s.EndResize(); err != nil {
		t.Fatalf("EndResize: %v", err)
	}

	after, _ := s.ComponentByID(id)
	if !after.UpdatedAt.Equal(before.UpdatedAt) {
		t.Error("no-op resize touched UpdatedAt")
	}
}

func TestEndResizeAfterMidGestureDelete(t *testing.T) {
	s := testState()
	id := mustAdd(t, s, component.KindText, pos(0, 0))

	s.StartResize(id, Vertical)
	s.DeleteComponent(id)

	if s.Resize().Active {
		t.Error("delete should cancel the resize session for its target")
	}
	if err := s.EndResize(); err != nil {
		t.Errorf("EndResize after delete should be a no-op, got %v", err)
	}
}

func TestCancelResize(t *testing.T) {
	s := testState()
	id := mustAdd(t, s, component.KindText, pos(0, 0))

	s.StartResize(id, Vertical)
	s.UpdateResize(50, 380)
	s.CancelResize()

	if s.Resize().Active {
		t.Error("resize still active after cancel")
	}
	c, _ := s.ComponentByID(id)
	if c.Size.Height != 1 {
		t.Error("cancel changed the size")
	}
}
