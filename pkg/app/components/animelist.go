package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/app/styles"
)

// AnimeList renders anime records as selectable cards. It holds no
// network or session state; callers hand it data and read the selection.
type AnimeList struct {
	Items         []api.Anime
	SelectedIndex int
	Width         int
	Height        int
	EmptyMessage  string
}

func NewAnimeList() *AnimeList {
	return &AnimeList{
		Width:        80,
		Height:       20,
		EmptyMessage: "No anime found matching your criteria.",
	}
}

func (l *AnimeList) SetItems(items []api.Anime) {
	l.Items = items
	if l.SelectedIndex >= len(items) {
		l.SelectedIndex = 0
	}
}

func (l *AnimeList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex = (l.SelectedIndex + 1) % len(l.Items)
}

func (l *AnimeList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *AnimeList) Selected() *api.Anime {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

func (l *AnimeList) View() string {
	if len(l.Items) == 0 {
		empty := styles.MutedStyle.Render(l.EmptyMessage)
		return lipgloss.Place(l.Width, 3, lipgloss.Center, lipgloss.Center, empty)
	}

	var b strings.Builder
	// Window the cards around the selection so long lists stay on screen.
	start, end := window(l.SelectedIndex, len(l.Items), visibleCards(l.Height))

	for i := start; i < end; i++ {
		anime := l.Items[i]

		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := styles.TitleStyle.Render(anime.Title)

		episodes := "Episodes: ?"
		if anime.EpisodesTotal > 0 {
			episodes = fmt.Sprintf("Episodes: %d", anime.EpisodesTotal)
		}

		status := anime.Status
		if status == "" {
			status = "Unknown"
		}

		meta := lipgloss.JoinHorizontal(
			lipgloss.Top,
			styles.AiringStatusStyle(anime.Status).Render(status),
			styles.MutedStyle.Render("  •  "+episodes),
		)

		card := cardStyle.Width(l.Width - 4).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, meta),
		)
		b.WriteString(card)
		b.WriteString("\n")
	}

	if end-start < len(l.Items) {
		b.WriteString(styles.MutedStyle.Render(
			fmt.Sprintf("Showing %d-%d of %d", start+1, end, len(l.Items)),
		))
		b.WriteString("\n")
	}

	return b.String()
}

func visibleCards(height int) int {
	n := height / 4
	if n < 3 {
		n = 3
	}
	return n
}

func window(selected, total, size int) (int, int) {
	if total <= size {
		return 0, total
	}
	start := selected - size/2
	if start < 0 {
		start = 0
	}
	end := start + size
	if end > total {
		end = total
		start = end - size
	}
	return start, end
}
