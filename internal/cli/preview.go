package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mountfort/gridstack/pkg/cache"
	"github.com/mountfort/gridstack/pkg/document"
	"github.com/mountfort/gridstack/pkg/preview"
)

// previewCommand creates the preview command for rendering artifacts.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		format  string
		width   int
		output  string
		name    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "preview [file.json]",
		Short: "Render a read-only preview of a layout",
		Long: `Render a read-only preview of a layout document.

The preview recomputes stacking from the saved positions: blocks that
overlap in a column are framed together as a stack. Formats: text
(framed character canvas), markdown (blocks in reading order), json
(the document itself).

Rendered artifacts are cached by document content, so unchanged
documents render instantly on repeat runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := preview.ParseFormat(format)
			if err != nil {
				return err
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

			return c.runPreview(cmd, d, f, width, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, markdown, json")
	cmd.Flags().IntVarP(&width, "width", "w", 80, "artifact width in character cells")
	cmd.Flags().StringVarP(&output, "out", "o", "", "write the artifact to a file instead of stdout")
	cmd.Flags().StringVarP(&name, "name", "n", "", "load from the document store instead of a file")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable artifact caching")

	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, d document.Document, format preview.Format, width int, output string, noCache bool) error {
	ctx := cmd.Context()
	prog := newProgress(c.Logger)

	artifactCache, err := newCache(noCache)
	if err != nil {
		return err
	}
	defer artifactCache.Close()

	renderer := preview.New(preview.WithWidth(width))

	data, err := document.Marshal(d)
	if err != nil {
		return err
	}
	keyer := cache.NewDefaultKeyer()
	key := keyer.ArtifactKey(cache.Hash(data), cache.ArtifactKeyOpts{
		Format: string(format),
		Width:  renderer.Width(),
	})

	artifact, hit, err := artifactCache.Get(ctx, key)
	if err != nil || !hit {
		if artifact, err = renderer.Render(d, format); err != nil {
			return err
		}
		if err := artifactCache.Set(ctx, key, artifact, 0); err != nil {
			c.Logger.Warn("artifact cache write failed", "err", err)
		}
		prog.done(fmt.Sprintf("Rendered %s preview", format))
	} else {
		prog.done(fmt.Sprintf("Loaded cached %s preview", format))
	}

	if output != "" {
		if err := os.WriteFile(output, artifact, 0644); err != nil {
			return err
		}
		printSuccess("wrote %s", output)
		return nil
	}

	_, err = os.Stdout.Write(artifact)
	return err
}
