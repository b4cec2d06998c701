package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skopia/astrodaily/internal/app"
	"github.com/skopia/astrodaily/internal/domain"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <date>",
	Short: "Show the entry for a specific date (YYYY-MM-DD)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := domain.ParseDate(args[0])
		if err != nil {
			return err
		}

		application, err := app.NewApp(viper.GetString("log_level"))
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		entry, err := application.Fetch(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("fetch failed: %w", err)
		}

		printEntry(entry)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}
