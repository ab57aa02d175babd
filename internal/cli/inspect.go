package cli

import (
	"fmt"

	"github.com/npillmayer/brickpath/config"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <design.toml>",
		Short: "Log the courses of a design row by row",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			result, err := compute(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			for _, row := range result.Rows {
				logger.Info("course",
					"row", row.Row,
					"nominal", row.Nominal,
					"kept", row.Kept,
					"fraction", fmt.Sprintf("%.3f", row.Fraction()))
			}
			ground := result.Outline(0)
			logger.Info("ground plan", "contours", len(ground.Contours()),
				"area", fmt.Sprintf("%.3f", ground.Area()))
			return nil
		},
	}
}

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print the default design as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Default().Encode(cmd.OutOrStdout())
		},
	}
}
