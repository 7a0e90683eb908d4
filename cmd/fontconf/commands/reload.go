package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/fontconf/internal/engine/lifecycle"
	"go.trai.ch/fontconf/internal/ui/output"
	"go.trai.ch/fontconf/internal/ui/style"
)

func (c *CLI) newReloadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload",
		Short: "Reload the configuration and rebuild the font database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := c.app.Init(ctx); err != nil {
				return err
			}
			if err := c.app.Reinitialize(ctx); err != nil {
				return err
			}

			view := stateView{State: lifecycle.StateStale.String(), ID: c.app.Current().ID}
			if c.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), view)
			}

			out := output.New(cmd.OutOrStdout())
			_, err := fmt.Fprintln(out, output.Paint(out, style.Check, string(style.Green))+" reloaded configuration "+view.ID)
			return err
		},
	}
}
