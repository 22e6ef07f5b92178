// Package document implements the JSON document format and a local
// file store for named layouts.
//
// A document is a self-contained snapshot: grid settings plus the full
// component collection. Exporting and re-importing a document
// reproduces every component's id, position, size, and attributes, so
// the format can round-trip through files, the preview server, and the
// clipboard without loss.
package document

import (
	"encoding/json"
	"io"
	"os"

	"github.com/mountfort/gridstack/pkg/component"
	"github.com/mountfort/gridstack/pkg/editor"
	"github.com/mountfort/gridstack/pkg/errors"
)

// Version is the current document format version.
const Version = 1

// Settings is the serialized grid configuration of a document.
type Settings struct {
	RowUnitHeight float64 `json:"row_unit_height"`
	Padding       float64 `json:"padding"`
	CanvasWidth   float64 `json:"canvas_width"`
	CanvasHeight  float64 `json:"canvas_height"`
	MaxRows       int     `json:"max_rows"`
}

// Document is the serialized form of a layout.
type Document struct {
	Version    int                   `json:"version"`
	Settings   Settings              `json:"settings"`
	Components []component.Component `json:"components"`
}

// FromState snapshots an editor store into a document.
func FromState(s *editor.State) Document {
	settings := s.Settings()
	return Document{
		Version: Version,
		Settings: Settings{
			RowUnitHeight: settings.Metrics.RowUnitHeight,
			Padding:       settings.Metrics.Padding,
			CanvasWidth:   settings.Canvas.W,
			CanvasHeight:  settings.Canvas.H,
			MaxRows:       settings.MaxRows,
		},
		Components: s.ExportComponents(),
	}
}

// EditorSettings converts the document's settings back into the store's
// form. Zero values fall back to the defaults so documents written by
// hand stay loadable.
func (d Document) EditorSettings() editor.Settings {
	out := editor.DefaultSettings()
	if d.Settings.RowUnitHeight > 0 {
		out.Metrics.RowUnitHeight = d.Settings.RowUnitHeight
	}
	if d.Settings.Padding > 0 {
		out.Metrics.Padding = d.Settings.Padding
	}
	if d.Settings.CanvasWidth > 0 {
		out.Canvas.W = d.Settings.CanvasWidth
	}
	if d.Settings.CanvasHeight > 0 {
		out.Canvas.H = d.Settings.CanvasHeight
	}
	if d.Settings.MaxRows > 0 {
		out.MaxRows = d.Settings.MaxRows
	}
	return out
}

// Validate checks the document's structural integrity: a supported
// version, unique component ids, and every component passing the same
// validator the editor applies on mutation.
func (d Document) Validate() error {
	if d.Version != Version {
		return errors.New(errors.ErrCodeInvalidDocument, "unsupported document version %d", d.Version)
	}
	seen := make(map[string]struct{}, len(d.Components))
	for _, c := range d.Components {
		if _, dup := seen[c.ID]; dup {
			return errors.New(errors.ErrCodeInvalidDocument, "duplicate component id %s", c.ID)
		}
		seen[c.ID] = struct{}{}
		if err := component.Validate(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidDocument, err, "component %s", c.ID)
		}
	}
	return nil
}

// Marshal encodes the document as indented JSON.
func Marshal(d Document) ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "marshal document")
	}
	return data, nil
}

// Unmarshal decodes and validates a document.
func Unmarshal(data []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "parse document")
	}
	if err := d.Validate(); err != nil {
		return Document{}, err
	}
	return d, nil
}

// Write encodes a document to w.
func Write(d Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode document")
	}
	return nil
}

// Read decodes and validates a document from r. Read does not close r.
func Read(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "read document")
	}
	return Unmarshal(data)
}

// ImportFile loads a document from a JSON file at path.
func ImportFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.New(errors.ErrCodeDocumentNotFound, "no document at %s", path)
		}
		return Document{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "open %s", path)
	}
	defer f.Close()
	return Read(f)
}

// ExportFile writes a document to a JSON file at path.
func ExportFile(d Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return Write(d, f)
}

// Load restores a document into a fresh editor store. Components are
// inserted directly: collision checking is skipped because overlap in a
// saved document represents stacks the user built deliberately.
func Load(d Document) (*editor.State, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	s := editor.New(d.EditorSettings(), nil)
	if err := s.Restore(d.Components); err != nil {
		return nil, err
	}
	return s, nil
}
