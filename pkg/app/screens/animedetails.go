package screens

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/app/components"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/query"
	"github.com/kerbaras/anitrack/pkg/session"
)

var watchStatuses = []string{
	api.StatusPlanToWatch,
	api.StatusWatching,
	api.StatusCompleted,
	api.StatusOnHold,
	api.StatusDropped,
}

// AnimeDetailsScreen shows one anime with its episode roster and, for a
// signed-in user, an editable progress record. The three reads are
// independent and may resolve in any order; each lands in its own query.
type AnimeDetailsScreen struct {
	store   *session.Store
	client  *api.Client
	animeID int

	animeQ    query.Query[*api.Anime]
	episodesQ query.Query[[]api.Episode]
	progressQ query.Query[*api.Progress]

	episodeList *components.EpisodeList

	// Editable fields. They keep the user's last input when a save
	// fails, so the form can be resubmitted as-is.
	episodesWatched int
	statusIdx       int
	score           *int

	saving  bool
	saveErr string
	savedOK bool

	width  int
	height int
}

type progressSavedMsg struct {
	saved *api.Progress
	err   error
}

func NewAnimeDetailsScreen(store *session.Store, client *api.Client, animeID int) *AnimeDetailsScreen {
	return &AnimeDetailsScreen{
		store:       store,
		client:      client,
		animeID:     animeID,
		episodeList: components.NewEpisodeList(),
	}
}

func (s *AnimeDetailsScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{
		s.animeQ.FetchIfChanged(fmt.Sprintf("/anime/%d", s.animeID), func() (*api.Anime, error) {
			return s.client.GetAnime(context.Background(), s.animeID)
		}),
		s.episodesQ.FetchIfChanged(fmt.Sprintf("/episodes/anime/%d", s.animeID), func() ([]api.Episode, error) {
			return s.client.ListEpisodes(context.Background(), s.animeID)
		}),
	}
	if user := s.store.User(); user != nil {
		userID := user.ID
		locator := fmt.Sprintf("/anime/%d/progress/%d", s.animeID, userID)
		cmds = append(cmds, s.progressQ.FetchIfChanged(locator, func() (*api.Progress, error) {
			return s.client.GetProgress(context.Background(), s.animeID, userID)
		}))
	}
	return tea.Batch(cmds...)
}

// refresh re-issues every read for the current anime unconditionally.
// The locators have not changed since Init, so the edge-triggered fetch
// would skip them; a forced fetch lets a failed load be retried in place.
func (s *AnimeDetailsScreen) refresh() tea.Cmd {
	cmds := []tea.Cmd{
		s.animeQ.Fetch(fmt.Sprintf("/anime/%d", s.animeID), func() (*api.Anime, error) {
			return s.client.GetAnime(context.Background(), s.animeID)
		}),
		s.episodesQ.Fetch(fmt.Sprintf("/episodes/anime/%d", s.animeID), func() ([]api.Episode, error) {
			return s.client.ListEpisodes(context.Background(), s.animeID)
		}),
	}
	if user := s.store.User(); user != nil {
		userID := user.ID
		locator := fmt.Sprintf("/anime/%d/progress/%d", s.animeID, userID)
		cmds = append(cmds, s.progressQ.Fetch(locator, func() (*api.Progress, error) {
			return s.client.GetProgress(context.Background(), s.animeID, userID)
		}))
	}
	return tea.Batch(cmds...)
}

func (s *AnimeDetailsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.episodeList.Width = msg.Width - 4

	case tea.KeyMsg:
		if s.saving {
			return s, nil
		}
		return s.handleKey(msg)

	case query.Result[*api.Anime]:
		s.animeQ.Apply(msg)

	case query.Result[[]api.Episode]:
		s.episodesQ.Apply(msg)
		s.episodeList.Episodes = s.episodesQ.Data()

	case query.Result[*api.Progress]:
		s.progressQ.Apply(msg)
		s.resetEditor(s.progressQ.Data())

	case progressSavedMsg:
		s.saving = false
		if msg.err != nil {
			// Keep the form as typed; only surface the message.
			s.saveErr = msg.err.Error()
			return s, nil
		}
		s.savedOK = true
		s.resetEditor(msg.saved)
	}

	return s, nil
}

func (s *AnimeDetailsScreen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		return s, Navigate(RouteAnimeList)
	case "r":
		return s, s.refresh()
	}

	if !s.store.IsAuthenticated() {
		return s, nil
	}

	switch msg.String() {
	case "+", "=":
		max := 9999
		if anime := s.animeQ.Data(); anime != nil && anime.EpisodesTotal > 0 {
			max = anime.EpisodesTotal
		}
		if s.episodesWatched < max {
			s.episodesWatched++
		}
	case "-":
		if s.episodesWatched > 0 {
			s.episodesWatched--
		}
	case "w":
		s.statusIdx = (s.statusIdx + 1) % len(watchStatuses)
	case "]":
		next := 1
		if s.score != nil && *s.score < 10 {
			next = *s.score + 1
		} else if s.score != nil {
			next = *s.score
		}
		s.score = &next
	case "[":
		if s.score != nil {
			if *s.score <= 1 {
				s.score = nil
			} else {
				prev := *s.score - 1
				s.score = &prev
			}
		}
	case "x":
		s.score = nil
	case "enter":
		return s, s.submitProgress()
	}
	return s, nil
}

// resetEditor loads the editable fields from a stored record, or from
// zero values when the user has no record for this anime yet.
func (s *AnimeDetailsScreen) resetEditor(progress *api.Progress) {
	if progress == nil {
		s.episodesWatched = 0
		s.statusIdx = 0
		s.score = nil
		s.episodeList.EpisodesWatched = 0
		return
	}
	s.episodesWatched = progress.EpisodesWatched
	s.statusIdx = 0
	for i, status := range watchStatuses {
		if status == progress.Status {
			s.statusIdx = i
			break
		}
	}
	s.score = progress.Score
	s.episodeList.EpisodesWatched = progress.EpisodesWatched
}

func (s *AnimeDetailsScreen) submitProgress() tea.Cmd {
	user := s.store.User()
	if user == nil {
		return nil
	}
	payload := api.Progress{
		UserID:          user.ID,
		AnimeID:         s.animeID,
		EpisodesWatched: s.episodesWatched,
		Status:          watchStatuses[s.statusIdx],
		Score:           s.score,
	}
	s.saving = true
	s.saveErr = ""
	s.savedOK = false
	return func() tea.Msg {
		saved, err := s.client.SaveProgress(context.Background(), payload)
		return progressSavedMsg{saved: saved, err: err}
	}
}

func (s *AnimeDetailsScreen) View() string {
	switch {
	case s.animeQ.Loading():
		return styles.LoadingStyle.Render("Loading...")
	case s.animeQ.Err() != "":
		return styles.ErrorStyle.Render(s.animeQ.Err())
	case s.animeQ.Data() == nil:
		return styles.MutedStyle.Render("Anime not found.")
	}

	anime := s.animeQ.Data()

	header := styles.TitleStyle.Render(anime.Title)
	if anime.JapaneseTitle != "" {
		header += "\n" + styles.SubtitleStyle.Render(anime.JapaneseTitle)
	}

	sections := []string{header, s.renderInfo(anime)}

	if s.store.IsAuthenticated() {
		sections = append(sections, s.renderProgressEditor())
	}

	if s.episodesQ.Err() != "" {
		sections = append(sections, styles.ErrorStyle.Render(s.episodesQ.Err()))
	} else {
		sections = append(sections, s.episodeList.View())
	}

	help := "esc: back • r: refresh"
	if s.store.IsAuthenticated() {
		help = "+/-: episodes • w: status • ]/[: score • x: clear score • enter: save • " + help
	}
	sections = append(sections, styles.HelpStyle.Render(help))

	return strings.Join(sections, "\n")
}

func (s *AnimeDetailsScreen) renderInfo(anime *api.Anime) string {
	orDash := func(v string) string {
		if v == "" {
			return "N/A"
		}
		return v
	}

	episodes := "N/A"
	if anime.EpisodesTotal > 0 {
		episodes = fmt.Sprintf("%d", anime.EpisodesTotal)
	}
	studio := "N/A"
	if anime.Studio != nil {
		studio = anime.Studio.Name
	}
	var genreNames []string
	for _, genre := range anime.Genres {
		genreNames = append(genreNames, genre.Name)
	}
	genres := "N/A"
	if len(genreNames) > 0 {
		genres = strings.Join(genreNames, ", ")
	}

	row := func(label, value string) string {
		return styles.LabelStyle.Render(label+": ") + styles.TextStyle.Render(value)
	}

	info := lipgloss.JoinVertical(
		lipgloss.Left,
		row("Status", orDash(anime.Status)),
		row("Type", orDash(anime.Type)),
		row("Episodes", episodes),
		row("Release Date", orDash(anime.ReleaseDate)),
		row("Studio", studio),
		row("Genres", genres),
		"",
		styles.TextStyle.Render(components.Truncate(anime.Synopsis, 400)),
	)

	width := s.width - 4
	if width < 20 {
		width = 76
	}
	return styles.CardStyle.Width(width).Render(info)
}

func (s *AnimeDetailsScreen) renderProgressEditor() string {
	score := "N/A"
	if s.score != nil {
		score = fmt.Sprintf("%d", *s.score)
	}

	fields := lipgloss.JoinHorizontal(
		lipgloss.Top,
		styles.LabelStyle.Render("Episodes Watched: ")+styles.TextStyle.Render(fmt.Sprintf("%d", s.episodesWatched)),
		styles.MutedStyle.Render("   "),
		styles.LabelStyle.Render("Status: ")+styles.WatchStatusStyle(watchStatuses[s.statusIdx]).Render(watchStatuses[s.statusIdx]),
		styles.MutedStyle.Render("   "),
		styles.LabelStyle.Render("Score: ")+styles.TextStyle.Render(score),
	)

	var status string
	switch {
	case s.saving:
		status = styles.LoadingStyle.Render("Saving...")
	case s.saveErr != "":
		status = styles.ErrorStyle.Render(s.saveErr)
	case s.savedOK:
		status = styles.SuccessStyle.Render("Progress updated successfully!")
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.SubtitleStyle.Render("Your Progress"),
		fields,
		status,
	)

	width := s.width - 4
	if width < 20 {
		width = 76
	}
	return styles.CardStyle.Width(width).Render(body)
}
