package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// docsCommand creates the docs command group for the local document store.
func (c *CLI) docsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Manage the local document store",
		Long: `Manage layouts saved in the local document store
(~/.local/share/gridstack/documents).`,
	}

	cmd.AddCommand(c.docsListCommand())
	cmd.AddCommand(c.docsShowCommand())
	cmd.AddCommand(c.docsDeleteCommand())

	return cmd
}

func (c *CLI) docsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := documentStore()
			if err != nil {
				return err
			}
			infos, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(infos) == 0 {
				printInfo("no saved documents")
				return nil
			}
			for _, info := range infos {
				fmt.Println(StyleValue.Render(info.Name) + "  " +
					StyleDim.Render(fmt.Sprintf("%d bytes, %s", info.Size, info.ModifiedAt.Format("2006-01-02 15:04"))))
			}
			return nil
		},
	}
}

func (c *CLI) docsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a saved document's summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := documentStore()
			if err != nil {
				return err
			}
			d, err := store.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render(args[0]))
			printDetail("version %d, %d blocks", d.Version, len(d.Components))
			for _, comp := range d.Components {
				printDetail("%s %s at (%d,%d) %s x%d",
					comp.Kind, shortID(comp.ID),
					comp.Pos.Col, comp.Pos.Row,
					comp.Size.Width, comp.Size.Height)
			}
			return nil
		},
	}
}

func (c *CLI) docsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := documentStore()
			if err != nil {
				return err
			}
			if err := store.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			printSuccess("deleted %s", args[0])
			return nil
		},
	}
}
