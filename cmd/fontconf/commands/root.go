// Package commands implements the CLI commands for fontconf.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/fontconf/internal/adapters/telemetry"
	"go.trai.ch/fontconf/internal/build"
	"go.trai.ch/fontconf/internal/core/domain"
	"go.trai.ch/fontconf/internal/core/ports"
	"go.trai.ch/fontconf/internal/engine/lifecycle"
)

// CLI represents the command line interface for fontconf.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command

	jsonOutput bool
	trace      bool
	recorder   *telemetry.Recorder
	shutdown   func(context.Context) error
}

// Application represents the application logic interface.
type Application interface {
	Init(ctx context.Context) error
	Reinitialize(ctx context.Context) error
	Check(ctx context.Context) (lifecycle.State, error)
	Current() *domain.Config
	Watch(ctx context.Context) error
	Version() int
}

// jsonSwitch is implemented by loggers that can emit JSON.
type jsonSwitch interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. logger receives the
// --json setting when it supports it.
func New(a Application, logger ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "fontconf",
		Short:         "Load and keep the font configuration up to date",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		logger:  logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().BoolVar(&c.jsonOutput, "json", false, "Emit logs and results as JSON")
	rootCmd.PersistentFlags().BoolVar(&c.trace, "trace", false, "Print a timing summary of traced operations")
	rootCmd.PersistentPreRun = c.before
	rootCmd.PersistentPostRunE = c.after

	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newRescanCmd())
	rootCmd.AddCommand(c.newReloadCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) before(_ *cobra.Command, _ []string) {
	if s, ok := c.logger.(jsonSwitch); ok {
		s.SetJSON(c.jsonOutput)
	}
	if c.trace {
		c.recorder = telemetry.NewRecorder()
		c.shutdown = telemetry.Install(c.recorder)
	}
}

func (c *CLI) after(cmd *cobra.Command, _ []string) error {
	if c.recorder == nil {
		return nil
	}
	if err := c.shutdown(cmd.Context()); err != nil {
		return err
	}
	_, err := fmt.Fprintln(cmd.ErrOrStderr(), renderTimings(c.recorder.Timings()))
	return err
}
