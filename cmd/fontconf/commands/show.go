package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newShowCmd() *cobra.Command {
	var listFonts bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the active font configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.app.Init(cmd.Context()); err != nil {
				return err
			}

			view := newConfigView(c.app.Current(), c.app.Version(), listFonts)
			out := cmd.OutOrStdout()
			if c.jsonOutput {
				return writeJSON(out, view)
			}
			_, err := fmt.Fprintln(out, renderConfig(view))
			return err
		},
	}

	cmd.Flags().BoolVarP(&listFonts, "fonts", "f", false, "List every font in the database")

	return cmd
}
