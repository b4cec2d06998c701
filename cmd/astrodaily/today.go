package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skopia/astrodaily/internal/app"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show the most recent picture of the day",
	Long: `Today shows the most recent published entry. The publication day is
computed in NASA's timezone (Eastern) with a safety margin; when the
expected day has no entry yet the lookup steps back one day at a time,
up to five attempts, and reports the date that actually produced it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		notify, _ := cmd.Flags().GetBool("notify")

		application, err := app.NewApp(viper.GetString("log_level"))
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		entry, actualDate, err := application.Today(cmd.Context(), notify)
		if err != nil {
			return fmt.Errorf("today failed: %w", err)
		}

		printEntry(entry)
		fmt.Printf("\n(published %s)\n", actualDate)
		return nil
	},
}

func init() {
	todayCmd.Flags().Bool("notify", false, "announce the entry on the configured Discord webhook")
	rootCmd.AddCommand(todayCmd)
}
