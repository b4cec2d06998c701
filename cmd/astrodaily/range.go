package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skopia/astrodaily/internal/app"
	"github.com/skopia/astrodaily/internal/domain"
)

var rangeCmd = &cobra.Command{
	Use:   "range <start> <end>",
	Short: "List the entries between two dates (YYYY-MM-DD), newest first",
	Long: `Range lists every published entry between start and end inclusive.
Days without a published entry are skipped silently.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := domain.ParseDate(args[0])
		if err != nil {
			return err
		}
		end, err := domain.ParseDate(args[1])
		if err != nil {
			return err
		}

		application, err := app.NewApp(viper.GetString("log_level"))
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		entries, err := application.Range(cmd.Context(), start, end)
		if err != nil {
			return fmt.Errorf("range failed: %w", err)
		}

		for _, entry := range entries {
			printEntryLine(entry)
		}
		fmt.Printf("\n%d entries\n", len(entries))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rangeCmd)
}
