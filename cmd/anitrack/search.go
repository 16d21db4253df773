package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/kerbaras/anitrack/pkg/api"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search anime by title",
	Long:  "Search the AnimeTracker catalog and display results in a table",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		query := strings.Join(args, " ")

		results, err := a.Client().ListAnime(context.Background(), api.AnimeFilter{Search: query})
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}

		if len(results) == 0 {
			fmt.Println("No anime found.")
			return nil
		}

		var (
			purple = lipgloss.Color("99")

			headerStyle = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
			cellStyle   = lipgloss.NewStyle().Padding(0, 1)
		)

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(purple)).
			StyleFunc(func(row, col int) lipgloss.Style {
				switch {
				case row == table.HeaderRow:
					return headerStyle
				default:
					return cellStyle
				}
			}).
			Headers("ID", "Title", "Status", "Episodes")

		for _, anime := range results {
			episodes := "?"
			if anime.EpisodesTotal > 0 {
				episodes = fmt.Sprintf("%d", anime.EpisodesTotal)
			}
			t.Row(fmt.Sprintf("%d", anime.ID), truncateString(anime.Title, 48), anime.Status, episodes)
		}

		fmt.Println(t)
		return nil
	},
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
