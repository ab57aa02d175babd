package cli

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

// NewRootCommand creates the brickpath command with all subcommands. Log
// output goes to logw.
func NewRootCommand(logw io.Writer) *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:          "brickpath",
		Short:        "brickpath lays bricks along a curve",
		Long:         `brickpath computes a staggered, coursed brick wall along a smooth curve through a few points, thins it out towards an anchor, and exports the result as meshes, plans and schedules.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			setTraceLevel(verbose)
			cmd.SetContext(withLogger(cmd.Context(), newLogger(logw, level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.AddCommand(newPlaceCmd())
	root.AddCommand(newInspectCmd())
	root.AddCommand(newDefaultsCmd())
	return root
}

// Execute runs the brickpath CLI.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}
