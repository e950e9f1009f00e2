// Package cli wires the application together behind a small command
// tree: serve the HTTP API, or run one-shot trips from the terminal.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stridelabs/albumwalk/internal/config"
)

var (
	verbose bool
	cfg     config.Config
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "albumwalk",
	Short:         "Turn an album's running time into a walking route",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return err
		}

		cfg = config.Load()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}
