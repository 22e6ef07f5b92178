// Package server exposes a document and its rendered previews over
// HTTP. The surface is read only: a running server never mutates the
// document it was given.
package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/mountfort/gridstack/pkg/cache"
	"github.com/mountfort/gridstack/pkg/document"
	"github.com/mountfort/gridstack/pkg/errors"
	"github.com/mountfort/gridstack/pkg/observability"
	"github.com/mountfort/gridstack/pkg/preview"
)

// artifactTTL bounds how long a rendered preview stays cached. The
// document is fixed for the server's lifetime, so this mostly limits
// disk growth across restarts.
const artifactTTL = 24 * time.Hour

// Option configures a Server.
type Option func(*Server)

// WithCache sets the artifact cache. Defaults to NullCache.
func WithCache(c cache.Cache) Option {
	return func(s *Server) { s.cache = c }
}

// WithRenderer sets the preview renderer.
func WithRenderer(r *preview.Renderer) Option {
	return func(s *Server) { s.renderer = r }
}

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Server) { s.logger = l }
}

// WithKeyer sets the cache key scheme, letting several served documents
// share one cache directory under distinct namespaces.
func WithKeyer(k cache.Keyer) Option {
	return func(s *Server) { s.keyer = k }
}

// Server serves one document read-only.
type Server struct {
	doc      document.Document
	docJSON  []byte
	docHash  string
	renderer *preview.Renderer
	cache    cache.Cache
	keyer    cache.Keyer
	logger   *log.Logger
}

// New creates a server for the document. The document is validated and
// serialized once up front; its hash keys every cached artifact.
func New(d document.Document, opts ...Option) (*Server, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	data, err := document.Marshal(d)
	if err != nil {
		return nil, err
	}

	s := &Server{
		doc:      d,
		docJSON:  data,
		docHash:  cache.Hash(data),
		renderer: preview.New(),
		cache:    cache.NewNullCache(),
		keyer:    cache.NewDefaultKeyer(),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/document", s.handleDocument)
	r.Get("/preview.txt", s.handlePreview(preview.FormatText))
	r.Get("/preview.md", s.handlePreview(preview.FormatMarkdown))

	return r
}

// Serve runs the server at addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	s.logger.Info("serving document", "addr", addr, "components", len(s.doc.Components))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok\n"))
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Write(s.docJSON)
}

// handlePreview serves a rendered artifact, consulting the cache first.
// A render failure is an internal error; cache failures only lose the
// speedup, never the response.
func (s *Server) handlePreview(format preview.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := s.keyer.ArtifactKey(s.docHash, cache.ArtifactKeyOpts{
			Format: string(format),
			Width:  s.renderer.Width(),
		})

		if data, hit, err := s.cache.Get(ctx, key); err == nil && hit {
			w.Header().Set("Content-Type", format.ContentType())
			w.Header().Set("X-Cache", "hit")
			w.Write(data)
			return
		}

		observability.Render().OnRenderStart(ctx, string(format), len(s.doc.Components))
		start := time.Now()
		data, err := s.renderer.Render(s.doc, format)
		observability.Render().OnRenderComplete(ctx, string(format), time.Since(start), err)
		if err != nil {
			s.writeError(w, err)
			return
		}
		if err := s.cache.Set(ctx, key, data, artifactTTL); err != nil {
			s.logger.Warn("artifact cache write failed", "err", err)
		}

		w.Header().Set("Content-Type", format.ContentType())
		w.Header().Set("X-Cache", "miss")
		w.Write(data)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidInput:
		status = http.StatusBadRequest
	case errors.ErrCodeDocumentNotFound, errors.ErrCodeComponentNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	}

	s.logger.Error("request failed", "code", code, "err", err)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"code":  string(code),
		"error": errors.UserMessage(err),
	})
}
