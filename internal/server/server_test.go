package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mountfort/gridstack/pkg/cache"
	"github.com/mountfort/gridstack/pkg/component"
	"github.com/mountfort/gridstack/pkg/document"
	"github.com/mountfort/gridstack/pkg/grid"
)

func testDocument(t *testing.T) document.Document {
	t.Helper()
	text, err := component.New(component.KindText, grid.Position{Col: 0, Row: 0},
		component.WithText(component.TextAttrs{Content: "served", Align: "left", Color: "#000000"}))
	if err != nil {
		t.Fatalf("New text: %v", err)
	}
	img, err := component.New(component.KindImage, grid.Position{Col: 1, Row: 0},
		component.WithImage(component.ImageAttrs{Source: "https://example.com/a.png", Alt: "pic", Fit: "cover", Position: "center"}))
	if err != nil {
		t.Fatalf("New image: %v", err)
	}
	return document.Document{Version: document.Version, Components: []component.Component{text, img}}
}

func testServer(t *testing.T, opts ...Option) *httptest.Server {
	t.Helper()
	s, err := New(testDocument(t), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ts := httptest.NewServer(s.Router())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, string(body)
}

func TestHealthz(t *testing.T) {
	ts := testServer(t)
	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if body != "ok\n" {
		t.Errorf("body = %q, want ok", body)
	}
}

func TestDocumentEndpoint(t *testing.T) {
	ts := testServer(t)
	resp, body := get(t, ts.URL+"/document")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("content type = %q", ct)
	}

	var back document.Document
	if err := json.Unmarshal([]byte(body), &back); err != nil {
		t.Fatalf("response is not a document: %v", err)
	}
	if len(back.Components) != 2 {
		t.Errorf("components = %d, want 2", len(back.Components))
	}
}

func TestPreviewText(t *testing.T) {
	ts := testServer(t)
	resp, body := get(t, ts.URL+"/preview.txt")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, "served") {
		t.Error("text preview missing document content")
	}
}

func TestPreviewMarkdown(t *testing.T) {
	ts := testServer(t)
	resp, body := get(t, ts.URL+"/preview.md")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/markdown") {
		t.Errorf("content type = %q", ct)
	}
	if !strings.Contains(body, "![pic](https://example.com/a.png)") {
		t.Errorf("markdown preview missing image link:\n%s", body)
	}
}

func TestPreviewCacheHit(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	ts := testServer(t, WithCache(fc))

	resp, _ := get(t, ts.URL+"/preview.txt")
	if got := resp.Header.Get("X-Cache"); got != "miss" {
		t.Errorf("first request X-Cache = %q, want miss", got)
	}

	resp, body := get(t, ts.URL+"/preview.txt")
	if got := resp.Header.Get("X-Cache"); got != "hit" {
		t.Errorf("second request X-Cache = %q, want hit", got)
	}
	if !strings.Contains(body, "served") {
		t.Error("cached artifact lost document content")
	}
}

func TestNoMutatingRoutes(t *testing.T) {
	ts := testServer(t)
	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		req, err := http.NewRequest(method, ts.URL+"/document", nil)
		if err != nil {
			t.Fatalf("NewRequest: %v", err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			t.Fatalf("%s /document: %v", method, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusMethodNotAllowed {
			t.Errorf("%s /document status = %d, want 405", method, resp.StatusCode)
		}
	}
}

func TestNewRejectsInvalidDocument(t *testing.T) {
	var d document.Document // version 0
	if _, err := New(d); err == nil {
		t.Error("invalid document accepted")
	}
}
