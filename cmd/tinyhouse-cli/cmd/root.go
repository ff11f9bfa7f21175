package cmd

import (
	"context"
	"os"

	"github.com/nfrund/tinyhouse/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tinyhouse-cli",
	Short: "TinyHouse CLI tool",
	Long: `TinyHouse CLI runs and maintains the TinyHouse web application.

Available commands:
  serve     Start the HTTP server
  seed      Insert demo users, listings and bookings
  version   Print the version number

Use "tinyhouse-cli [command] --help" for more information about a specific command.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.New()
	},
	SilenceUsage: true,
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
