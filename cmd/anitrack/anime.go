package cmd

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/kerbaras/anitrack/pkg/api"
)

var animeCmd = &cobra.Command{
	Use:   "anime",
	Short: "List the anime collection",
	Long:  "Display the anime collection in a formatted table, optionally filtered by genre or status",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}

		genre, _ := cmd.Flags().GetString("genre")
		status, _ := cmd.Flags().GetString("status")

		filter := api.AnimeFilter{GenreName: genre, Status: status}
		animeList, err := a.Client().ListAnime(context.Background(), filter)
		if err != nil {
			return err
		}

		if len(animeList) == 0 {
			fmt.Println("No anime found matching your criteria.")
			return nil
		}

		columns := []table.Column{
			{Title: "ID", Width: 6},
			{Title: "Title", Width: 40},
			{Title: "Status", Width: 16},
			{Title: "Type", Width: 8},
			{Title: "Episodes", Width: 10},
		}

		rows := []table.Row{}
		for _, anime := range animeList {
			episodes := "?"
			if anime.EpisodesTotal > 0 {
				episodes = fmt.Sprintf("%d", anime.EpisodesTotal)
			}
			rows = append(rows, table.Row{
				fmt.Sprintf("%d", anime.ID),
				truncateString(anime.Title, 38),
				anime.Status,
				anime.Type,
				episodes,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		t.SetStyles(s)

		fmt.Printf("\n📺 Anime (%d)\n\n", len(animeList))
		fmt.Println(t.View())
		return nil
	},
}

func init() {
	animeCmd.Flags().StringP("genre", "g", "", "Filter by genre name")
	animeCmd.Flags().StringP("status", "s", "", "Filter by airing status")

	rootCmd.AddCommand(animeCmd)
}
