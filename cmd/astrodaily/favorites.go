package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skopia/astrodaily/internal/app"
	"github.com/skopia/astrodaily/internal/domain"
)

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Aliases: []string{"fav"},
	Short:   "Manage the local favorites collection",
}

var favoritesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List favorites, most recently saved first",
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := app.NewApp(viper.GetString("log_level"))
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		entries, err := application.Favorites().All(cmd.Context())
		if err != nil {
			return fmt.Errorf("list failed: %w", err)
		}

		for _, entry := range entries {
			printEntryLine(entry)
		}
		fmt.Printf("\n%d favorites\n", len(entries))
		return nil
	},
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <date>",
	Short: "Favorite the entry for a date",
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

		entry, err := application.AddFavoriteByDate(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("add failed: %w", err)
		}

		fmt.Printf("Favorited %s  %s\n", entry.Date, entry.Title)
		return nil
	},
}

var favoritesRemoveCmd = &cobra.Command{
	Use:   "remove <date>",
	Short: "Remove a favorite by date",
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

		if err := application.Favorites().Remove(cmd.Context(), date); err != nil {
			return fmt.Errorf("remove failed: %w", err)
		}

		fmt.Printf("Removed %s\n", date)
		return nil
	},
}

var favoritesToggleCmd = &cobra.Command{
	Use:   "toggle <date>",
	Short: "Toggle the favorite state of a date",
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

		entry, favorited, err := application.ToggleFavoriteByDate(cmd.Context(), date)
		if err != nil {
			return fmt.Errorf("toggle failed: %w", err)
		}

		if favorited {
			fmt.Printf("Favorited %s  %s\n", entry.Date, entry.Title)
		} else {
			fmt.Printf("Unfavorited %s  %s\n", entry.Date, entry.Title)
		}
		return nil
	},
}

var favoritesExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export favorites to a JSON or YAML file",
	Long: `Export writes the favorites collection to a file. The format follows
the extension: .yaml/.yml produce YAML, anything else JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		application, err := app.NewApp(viper.GetString("log_level"))
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}
		defer application.Close()

		if err := application.Favorites().Export(cmd.Context(), out); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		fmt.Printf("Exported favorites to %s\n", out)
		return nil
	},
}

func init() {
	favoritesExportCmd.Flags().String("out", "favorites.json", "output file path")

	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesCmd.AddCommand(favoritesAddCmd)
	favoritesCmd.AddCommand(favoritesRemoveCmd)
	favoritesCmd.AddCommand(favoritesToggleCmd)
	favoritesCmd.AddCommand(favoritesExportCmd)
	rootCmd.AddCommand(favoritesCmd)
}
