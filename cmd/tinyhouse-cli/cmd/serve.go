package cmd

import (
	"github.com/nfrund/tinyhouse/internal/config"
	"github.com/nfrund/tinyhouse/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		addr := cfg.GetServerAddr()
		if serveAddr != "" {
			addr = serveAddr
		}

		s, err := server.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		return s.Start(cmd.Context(), addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides SERVER_ADDR)")
	rootCmd.AddCommand(serveCmd)
}
