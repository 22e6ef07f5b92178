package document

import (
	"bytes"
	"strings"
	"testing"

	"github.com/mountfort/gridstack/pkg/component"
	"github.com/mountfort/gridstack/pkg/editor"
	"github.com/mountfort/gridstack/pkg/errors"
	"github.com/mountfort/gridstack/pkg/grid"
)

func buildState(t *testing.T) *editor.State {
	t.Helper()
	s := editor.New(editor.DefaultSettings(), nil)
	if _, err := s.AddComponent(component.KindText, &grid.Position{Col: 0, Row: 0},
		component.WithText(component.TextAttrs{Content: "hello", Align: "center", Color: "#336699"})); err != nil {
		t.Fatalf("add text: %v", err)
	}
	if _, err := s.AddComponent(component.KindImage, &grid.Position{Col: 1, Row: 0},
		component.WithImage(component.ImageAttrs{Source: "https://example.com/a.png", Alt: "a", Fit: "contain", Position: "center"})); err != nil {
		t.Fatalf("add image: %v", err)
	}
	return s
}

func TestRoundTrip(t *testing.T) {
	s := buildState(t)
	doc := FromState(s)

	data, err := Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if back.Version != Version {
		t.Errorf("version = %d, want %d", back.Version, Version)
	}
	if len(back.Components) != len(doc.Components) {
		t.Fatalf("components = %d, want %d", len(back.Components), len(doc.Components))
	}
	for i, want := range doc.Components {
		got := back.Components[i]
		if got.ID != want.ID || got.Kind != want.Kind || got.Pos != want.Pos || got.Size != want.Size {
			t.Errorf("component %d: got %+v, want %+v", i, got, want)
		}
	}
	if back.Components[0].Text == nil || back.Components[0].Text.Content != "hello" {
		t.Error("text attributes lost in round trip")
	}
	if back.Components[1].Image == nil || back.Components[1].Image.Fit != "contain" {
		t.Error("image attributes lost in round trip")
	}
}

func TestWidthClassSerializesAsString(t *testing.T) {
	s := editor.New(editor.DefaultSettings(), nil)
	if _, err := s.AddComponent(component.KindText, &grid.Position{Col: 0, Row: 0},
		component.WithSize(grid.Size{Width: grid.Full, Height: 2})); err != nil {
		t.Fatalf("add: %v", err)
	}

	data, err := Marshal(FromState(s))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"width": "full"`) {
		t.Errorf("document does not spell out the width class:\n%s", data)
	}
}

func TestWriteRead(t *testing.T) {
	doc := FromState(buildState(t))

	var buf bytes.Buffer
	if err := Write(doc, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	back, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(back.Components) != 2 {
		t.Errorf("components = %d, want 2", len(back.Components))
	}
}

func TestUnmarshalRejections(t *testing.T) {
	valid := FromState(buildState(t))

	tests := []struct {
		name   string
		mutate func(*Document)
		code   errors.Code
	}{
		{"BadVersion", func(d *Document) { d.Version = 99 }, errors.ErrCodeInvalidDocument},
		{"DuplicateID", func(d *Document) {
			d.Components = append(d.Components, d.Components[0])
		}, errors.ErrCodeInvalidDocument},
		{"IllegalComponent", func(d *Document) {
			d.Components[0].Pos.Col = 5
		}, errors.ErrCodeInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := valid
			doc.Components = append([]component.Component(nil), valid.Components...)
			tt.mutate(&doc)

			data, err := Marshal(doc)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if _, err := Unmarshal(data); !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestUnmarshalMalformedJSON(t *testing.T) {
	if _, err := Unmarshal([]byte("{nope")); !errors.Is(err, errors.ErrCodeInvalidDocument) {
		t.Errorf("err = %v, want INVALID_DOCUMENT", err)
	}
}

func TestEditorSettingsFallback(t *testing.T) {
	var d Document // hand-written documents may omit settings entirely
	got := d.EditorSettings()
	want := editor.DefaultSettings()
	if got.Metrics.RowUnitHeight != want.Metrics.RowUnitHeight || got.MaxRows != want.MaxRows {
		t.Errorf("settings = %+v, want defaults %+v", got, want)
	}
}

func TestLoadRestoresState(t *testing.T) {
	s := buildState(t)
	ids := make([]string, 0, 2)
	for _, c := range s.Components() {
		ids = append(ids, c.ID)
	}

	restored, err := Load(FromState(s))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if restored.Len() != 2 {
		t.Fatalf("restored %d components, want 2", restored.Len())
	}
	for _, id := range ids {
		if _, ok := restored.ComponentByID(id); !ok {
			t.Errorf("component %s missing after load", id)
		}
	}
	if restored.Selection() != "" {
		t.Error("restored state carries a selection")
	}
}

func TestLoadPreservesStacks(t *testing.T) {
	s := buildState(t)
	comps := s.Components()

	// Drag the second component onto the first so the saved document
	// contains a stack.
	s.StartDrag(comps[1].ID)
	s.UpdateDrag(10, 10)
	if err := s.EndDrag(); err != nil {
		t.Fatalf("EndDrag: %v", err)
	}

	restored, err := Load(FromState(s))
	if err != nil {
		t.Fatalf("Load rejected a document with a stack: %v", err)
	}
	got, _ := restored.ComponentByID(comps[1].ID)
	if got.Pos != (grid.Position{Col: 0, Row: 0}) {
		t.Errorf("pos = %v, want the stacked position (0,0)", got.Pos)
	}
}

func TestExportFileImportFile(t *testing.T) {
	doc := FromState(buildState(t))
	path := t.TempDir() + "/layout.json"

	if err := ExportFile(doc, path); err != nil {
		t.Fatalf("ExportFile: %v", err)
	}
	back, err := ImportFile(path)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if len(back.Components) != 2 {
		t.Errorf("components = %d, want 2", len(back.Components))
	}
}

func TestImportFileMissing(t *testing.T) {
	_, err := ImportFile(t.TempDir() + "/absent.json")
	if !errors.Is(err, errors.ErrCodeDocumentNotFound) {
		t.Errorf("err = %v, want DOCUMENT_NOT_FOUND", err)
	}
}
