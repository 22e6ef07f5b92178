package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mountfort/gridstack/internal/server"
	"github.com/mountfort/gridstack/pkg/cache"
	"github.com/mountfort/gridstack/pkg/document"
	"github.com/mountfort/gridstack/pkg/preview"
)

// serveCommand creates the serve command exposing a document over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		width   int
		name    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve [file.json]",
		Short: "Serve a layout's previews over HTTP",
		Long: `Serve a layout document over HTTP.

The server is read only: it exposes the document as JSON plus rendered
text and markdown previews, and never mutates the layout.

Endpoints:
  GET /healthz      liveness check
  GET /document     the document as JSON
  GET /preview.txt  text preview
  GET /preview.md   markdown preview`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Server.Addr
			}
			if width == 0 {
				width = cfg.Preview.Width
			}

			var d document.Document
			switch {
			case len(args) == 1:
				if d, err = document.ImportFile(args[0]); err != nil {
					return err
				}
			case name != "":
				store, err := documentStore()
				if err != nil {
					return err
				}
				if d, err = store.Load(cmd.Context(), name); err != nil {
					return err
				}
			default:
				return fmt.Errorf("a document file or --name is required")
			}

			artifactCache, err := newCache(noCache)
			if err != nil {
				return err
			}
			defer artifactCache.Close()

			srv, err := server.New(d,
				server.WithCache(artifactCache),
				server.WithKeyer(cache.NewScopedKeyer(nil, "serve:")),
				server.WithRenderer(preview.New(preview.WithWidth(width))),
				server.WithLogger(c.Logger),
			)
			if err != nil {
				return err
			}

			printInfo("listening on %s", addr)
			return srv.Serve(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default from config)")
	cmd.Flags().IntVarP(&width, "width", "w", 0, "preview width (default from config)")
	cmd.Flags().StringVarP(&name, "name", "n", "", "serve from the document store instead of a file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")

	return cmd
}
