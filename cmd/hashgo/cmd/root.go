package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hupe1980/hashgo"
)

var (
	verbose bool
	logger  = hashgo.NoopLogger()
)

var rootCmd = &cobra.Command{
	Use:          "hashgo",
	Short:        "Portable structural hashing from the command line",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logger = hashgo.NewTextLogger(slog.LevelDebug)
		}
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
