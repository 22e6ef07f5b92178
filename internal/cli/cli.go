// Package cli implements the gridstack command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mountfort/gridstack/pkg/buildinfo"
	"github.com/mountfort/gridstack/pkg/cache"
	"github.com/mountfort/gridstack/pkg/config"
	"github.com/mountfort/gridstack/pkg/document"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "gridstack"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Gridstack is a grid-based layout editor for the terminal",
		Long:         `Gridstack edits two-column block layouts: place, move, resize, and stack text and image blocks on a fixed grid, then render read-only previews as text, markdown, or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/gridstack/config.toml)")

	root.AddCommand(c.editCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.docsCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Shared Helpers
// =============================================================================

// loadConfig resolves the effective configuration: the --config path if
// given, else the default location, else built-in defaults.
func (c *CLI) loadConfig() (config.Config, error) {
	path := c.configPath
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// loadDocument reads a document from a file path, or returns an empty
// document when no path was given.
func loadDocument(path string) (document.Document, error) {
	if path == "" {
		return document.Document{Version: document.Version}, nil
	}
	return document.ImportFile(path)
}

// documentStore opens the named-document store.
func documentStore() (*document.FileStore, error) {
	return document.NewFileStore("")
}

// newCache builds the artifact cache, honoring --no-cache.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/gridstack/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
