package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mountfort/gridstack/pkg/config"
	"github.com/mountfort/gridstack/pkg/document"
	"github.com/mountfort/gridstack/pkg/editor"
)

// editCommand creates the edit command, the interactive layout editor.
func (c *CLI) editCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "edit [file.json]",
		Short: "Edit a layout interactively",
		Long: `Edit a layout in an interactive terminal editor.

Blocks are placed on a fixed two-column grid. Click a block's body to
drag it; dropping onto an occupied cell stacks the blocks. Drag the
right or bottom edge to resize. A full-width block always occupies the
left column.

With a file argument the document is loaded from and saved back to that
file. With --name the document is kept in the local document store
instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			return c.runEdit(cmd, file, name)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "save to the document store under this name")

	return cmd
}

func (c *CLI) runEdit(cmd *cobra.Command, file, name string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	d, err := loadDocument(file)
	if err != nil {
		return err
	}

	state, err := document.Load(d)
	if err != nil {
		return err
	}
	if err := applyConfig(state, cfg); err != nil {
		return err
	}

	save := c.saveFunc(cmd, file, name)

	model := NewEditorModel(state, c.Logger, save)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return err
	}

	if save != nil {
		printSuccess("layout saved")
	}
	return nil
}

// applyConfig overlays config geometry onto a freshly loaded store.
func applyConfig(state *editor.State, cfg config.Config) error {
	settings := state.Settings()
	settings.Metrics.RowUnitHeight = cfg.Grid.RowUnitHeight
	settings.Metrics.Padding = cfg.Grid.Padding
	settings.Canvas.W = cfg.Grid.ContainerWidth
	settings.MaxRows = cfg.Grid.MaxRows
	return state.UpdateSettings(settings)
}

// saveFunc resolves where the editor persists: an explicit file, a named
// store entry, or nowhere.
func (c *CLI) saveFunc(cmd *cobra.Command, file, name string) func(*editor.State) error {
	switch {
	case file != "":
		return func(s *editor.State) error {
			return document.ExportFile(document.FromState(s), file)
		}
	case name != "":
		return func(s *editor.State) error {
			store, err := documentStore()
			if err != nil {
				return err
			}
			return store.Save(cmd.Context(), name, document.FromState(s))
		}
	default:
		return nil
	}
}
