package cmd

import (
	"fmt"

	"github.com/nfrund/tinyhouse/internal/config"
	"github.com/nfrund/tinyhouse/internal/database"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo users, listings and bookings into SurrealDB",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		conn := database.NewConnection(cfg)
		if err := conn.Connect(ctx); err != nil {
			return err
		}
		defer conn.Close(ctx)

		if err := database.Seed(ctx, conn, cfg, database.DefaultSeed); err != nil {
			return err
		}
		for _, u := range database.DefaultSeed {
			fmt.Fprintf(cmd.OutOrStdout(), "seeded /user/%s (%d listings)\n", u.Key, len(u.Listings))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
