package commands

import (
	"fmt"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"go.trai.ch/fontconf/internal/engine/lifecycle"
	"go.trai.ch/fontconf/internal/ui/output"
	"go.trai.ch/fontconf/internal/ui/style"
)

type stateView struct {
	State string `json:"state"`
	ID    string `json:"id"`
}

func (c *CLI) newRescanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rescan",
		Short: "Reload the configuration if its files or font directories changed",
		Long: `Probe the configuration files and font directories now, ignoring the
rescan interval, and reload the configuration when any of them changed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := c.app.Check(cmd.Context())
			if err != nil {
				return err
			}

			view := stateView{State: state.String(), ID: c.app.Current().ID}
			if c.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), view)
			}

			out := output.New(cmd.OutOrStdout())
			_, err = fmt.Fprintln(out, stateLine(out, state)+" "+view.ID)
			return err
		},
	}
}

// stateLine renders the icon and name of a rescan outcome.
func stateLine(out *termenv.Output, state lifecycle.State) string {
	icon, color := style.Circle, style.Slate
	switch state {
	case lifecycle.StateFresh:
		icon, color = style.Check, style.Green
	case lifecycle.StateStale:
		icon, color = style.Dot, style.Yellow
	}
	return output.Paint(out, icon+" "+state.String(), string(color))
}
