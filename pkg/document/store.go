package document

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mountfort/gridstack/pkg/errors"
)

// FileStore keeps named documents as JSON files in a local directory.
// It serves the docs subcommands and the editor's save/load; it is not
// a server-side persistence layer.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

// Info describes a stored document.
type Info struct {
	Name       string
	Path       string
	Size       int64
	ModifiedAt time.Time
}

// NewFileStore creates a document store rooted at baseDir. If baseDir is
// empty, defaults to ~/.local/share/gridstack/documents/.
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "get home dir")
		}
		baseDir = filepath.Join(home, ".local", "share", "gridstack", "documents")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create document dir")
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) documentPath(name string) string {
	return filepath.Join(s.baseDir, name+".json")
}

// Save validates and writes a document under the given name, replacing
// any previous version.
func (s *FileStore) Save(ctx context.Context, name string, d Document) error {
	if err := errors.ValidateDocumentName(name); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := Marshal(d)
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.documentPath(name), data, 0600); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write document %s", name)
	}
	return nil
}

// Load reads a named document. A missing name is DOCUMENT_NOT_FOUND.
func (s *FileStore) Load(ctx context.Context, name string) (Document, error) {
	if err := errors.ValidateDocumentName(name); err != nil {
		return Document{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.documentPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return Document{}, errors.New(errors.ErrCodeDocumentNotFound, "no document named %s", name)
		}
		return Document{}, errors.Wrap(errors.ErrCodeInternal, err, "read document %s", name)
	}
	return Unmarshal(data)
}

// List returns the stored documents sorted by name.
func (s *FileStore) List(ctx context.Context) ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read document dir")
	}

	var out []Info
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		fi, err := entry.Info()
		if err != nil {
			continue
		}
		out = append(out, Info{
			Name:       strings.TrimSuffix(entry.Name(), ".json"),
			Path:       filepath.Join(s.baseDir, entry.Name()),
			Size:       fi.Size(),
			ModifiedAt: fi.ModTime(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Delete removes a named document. Deleting a missing name is a no-op.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := errors.ValidateDocumentName(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.documentPath(name)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeInternal, err, "remove document %s", name)
	}
	return nil
}
