// Package pkg provides the core libraries for the Gridstack layout editor.
//
// # Overview
//
// Gridstack is a grid-constrained page layout editor: content blocks snap
// to a two-column grid, overlap resolves into deliberate stacks, and a
// finished layout renders to text, markdown, or JSON previews. The pkg
// directory is organized into four main areas:
//
//  1. [grid] - Pure placement math (cells, collision, pixel mapping)
//  2. [component] / [stack] - The content block model and stack grouping
//  3. [editor] / [input] - The mutation store and event routing
//  4. [document] / [preview] / [cache] - Persistence and rendering
//
// # Architecture
//
// The typical data flow through Gridstack:
//
//	Pointer/Keyboard events
//	         ↓
//	    [input] package (hit testing, gesture routing)
//	         ↓
//	    [editor] package (single mutation store, drag/resize sessions)
//	         ↓
//	    [document] package (JSON snapshot, file store)
//	         ↓
//	    [preview] package (text / markdown / JSON rendering)
//
// # Quick Start
//
// Build a layout and render a preview:
//
//	import (
//	    "github.com/mountfort/gridstack/pkg/editor"
//	    "github.com/mountfort/gridstack/pkg/component"
//	    "github.com/mountfort/gridstack/pkg/document"
//	    "github.com/mountfort/gridstack/pkg/preview"
//	)
//
//	// 1. Create a store and add blocks
//	s := editor.New(editor.DefaultSettings(), nil)
//	s.AddComponent(component.KindText, nil)
//	s.AddComponent(component.KindImage, nil)
//
//	// 2. Snapshot into a document
//	d := document.FromState(s)
//
//	// 3. Render
//	out, _ := preview.New(preview.WithWidth(100)).Render(d, preview.FormatText)
//
// # Main Packages
//
// ## Placement
//
// [grid] - The placement vocabulary: positions, width classes (half, full),
// cell geometry, pixel-to-grid mapping, and the two collision regimes
// (strict for structural edits, boundary-only for drag commits).
//
// [component] - The content block model. A tagged variant over text and
// image kinds with a factory, a structural validator, and value-style
// mutation helpers.
//
// [stack] - Derivation of stack groups from overlapping blocks. Grouping
// is a pure function of the collection, recomputed rather than stored.
//
// ## Editing
//
// [editor] - The single mutation store. Every change to the collection
// flows through it: add, update, delete, width toggle, selection with
// history, and the drag and resize gesture sessions.
//
// [input] - Pointer and keyboard routing. Hit testing resolves a pointer
// to a block and zone (body, right edge, bottom edge, corner) and opens
// the matching gesture on the store.
//
// ## Persistence and Rendering
//
// [document] - The versioned JSON document format plus a named local
// file store. A document round-trips the full collection losslessly.
//
// [preview] - Read-only renderers for text (lipgloss framed), markdown
// (reading order), and JSON output.
//
// [cache] - Byte-oriented artifact cache keyed by document content hash,
// with file-backed and null implementations.
//
// ## Ambient
//
// [config] - TOML configuration with validated defaults.
//
// [errors] - Coded errors and the shared input validators (colors,
// alignments, document names, image sources).
//
// [observability] - Optional hooks for editor, render, and cache events.
//
// [buildinfo] - Version metadata injected at build time.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/editor/...   # Specific package
//
// [grid]: https://pkg.go.dev/github.com/mountfort/gridstack/pkg/grid
// [component]: https://pkg.go.dev/github.com/mountfort/gridstack/pkg/component
// [stack]: https://pkg.go.dev/github.com/mountfort/gridstack/pkg/stack
// [editor]: https://pkg.go.dev/github.com/mountfort/gridstack/pkg/editor
// [input]: https://pkg.go.dev/github.com/mountfort/gridstack/pkg/input
// [document]: https://pkg.go.dev/github.com/mountfort/gridstack/pkg/document
// [preview]: https://pkg.go.dev/github.com/mountfort/gridstack/pkg/preview
// [cache]: https://pkg.go.dev/github.com/mountfort/gridstack/pkg/cache
// [config]: https://pkg.go.dev/github.com/mountfort/gridstack/pkg/config
// [errors]: https://pkg.go.dev/github.com/mountfort/gridstack/pkg/errors
// [observability]: https://pkg.go.dev/github.com/mountfort/gridstack/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/mountfort/gridstack/pkg/buildinfo
package pkg
