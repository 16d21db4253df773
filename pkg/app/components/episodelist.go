package components

import (
	"fmt"
	"strings"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/app/styles"
)

// EpisodeList renders an anime's episode roster with a watched marker up
// to the viewer's progress. Pure rendering, no state of its own.
type EpisodeList struct {
	Episodes        []api.Episode
	EpisodesWatched int
	Width           int
}

func NewEpisodeList() *EpisodeList {
	return &EpisodeList{Width: 80}
}

func (l *EpisodeList) View() string {
	if len(l.Episodes) == 0 {
		return styles.MutedStyle.Render("No episodes available")
	}

	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Episodes (%d total):", len(l.Episodes))))
	b.WriteString("\n\n")

	for _, ep := range l.Episodes {
		line := fmt.Sprintf("Ep. %d", ep.EpisodeNumber)
		if ep.Title != "" {
			line = fmt.Sprintf("%s: %s", line, ep.Title)
		}
		if ep.DurationMinutes > 0 {
			line = fmt.Sprintf("%s (%d min)", line, ep.DurationMinutes)
		}
		if ep.AirDate != "" {
			line = fmt.Sprintf("%s, aired %s", line, ep.AirDate)
		}

		marker := "○"
		style := styles.TextStyle
		if ep.EpisodeNumber <= l.EpisodesWatched {
			marker = "●"
			style = styles.SuccessStyle
		}

		b.WriteString(style.Render(fmt.Sprintf("%s %s", marker, line)))
		b.WriteString("\n")
	}

	return b.String()
}
