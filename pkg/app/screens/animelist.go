package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/app/components"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/query"
)

// airing statuses offered by the filter, "" meaning all.
var animeStatuses = []string{"", "Airing", "Finished Airing", "Not yet aired"}

// AnimeListScreen shows the anime collection with genre/status filters
// and a title search. Any filter change re-issues the collection read;
// the genre list is fetched once per mount.
type AnimeListScreen struct {
	client *api.Client

	animeQ  query.Query[[]api.Anime]
	genresQ query.Query[[]api.Genre]

	list      *components.AnimeList
	search    textinput.Model
	genreIdx  int // index into genresQ data, -1 = all
	statusIdx int
	term      string

	width  int
	height int
}

func NewAnimeListScreen(client *api.Client) *AnimeListScreen {
	search := textinput.New()
	search.Placeholder = "Search by title..."
	search.CharLimit = 100
	search.Width = 40

	return &AnimeListScreen{
		client:   client,
		list:     components.NewAnimeList(),
		search:   search,
		genreIdx: -1,
	}
}

func (s *AnimeListScreen) filter() api.AnimeFilter {
	f := api.AnimeFilter{Status: animeStatuses[s.statusIdx], Search: s.term}
	if genres := s.genresQ.Data(); s.genreIdx >= 0 && s.genreIdx < len(genres) {
		f.GenreName = genres[s.genreIdx].Name
	}
	return f
}

func (s *AnimeListScreen) locator() string {
	f := s.filter()
	return fmt.Sprintf("/anime?genre_name=%s&status=%s&search=%s", f.GenreName, f.Status, f.Search)
}

func (s *AnimeListScreen) fetchAnime() tea.Cmd {
	filter := s.filter()
	return s.animeQ.FetchIfChanged(s.locator(), func() ([]api.Anime, error) {
		return s.client.ListAnime(context.Background(), filter)
	})
}

func (s *AnimeListScreen) fetchGenres() tea.Cmd {
	return s.genresQ.FetchIfChanged("/genres", func() ([]api.Genre, error) {
		return s.client.ListGenres(context.Background())
	})
}

func (s *AnimeListScreen) Init() tea.Cmd {
	return tea.Batch(s.fetchAnime(), s.fetchGenres())
}

func (s *AnimeListScreen) CapturingInput() bool {
	return s.search.Focused()
}

func (s *AnimeListScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width - 4
		s.list.Height = msg.Height - 12

	case tea.KeyMsg:
		if s.search.Focused() {
			switch msg.String() {
			case "enter":
				s.search.Blur()
				s.term = s.search.Value()
				return s, s.fetchAnime()
			case "esc":
				s.search.Blur()
				return s, nil
			}
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			return s, cmd
		}

		switch msg.String() {
		case "/":
			s.search.Focus()
			return s, textinput.Blink
		case "g":
			s.genreIdx++
			if s.genreIdx >= len(s.genresQ.Data()) {
				s.genreIdx = -1
			}
			return s, s.fetchAnime()
		case "s":
			s.statusIdx = (s.statusIdx + 1) % len(animeStatuses)
			return s, s.fetchAnime()
		case "r":
			return s, s.animeQ.Fetch(s.locator(), func() ([]api.Anime, error) {
				return s.client.ListAnime(context.Background(), s.filter())
			})
		case "up", "k":
			s.list.Prev()
		case "down", "j":
			s.list.Next()
		case "enter":
			if anime := s.list.Selected(); anime != nil {
				id := anime.ID
				return s, func() tea.Msg {
					return NavigateMsg{Route: RouteAnimeDetails, ID: id}
				}
			}
		}

	case query.Result[[]api.Anime]:
		s.animeQ.Apply(msg)
		s.list.SetItems(s.animeQ.Data())

	case query.Result[[]api.Genre]:
		s.genresQ.Apply(msg)
	}

	return s, nil
}

func (s *AnimeListScreen) View() string {
	title := styles.TitleStyle.Render("Anime List")
	filters := s.renderFilters()

	var body string
	switch {
	case s.animeQ.Loading():
		body = styles.LoadingStyle.Render("Loading...")
	case s.animeQ.Err() != "":
		body = styles.ErrorStyle.Render(s.animeQ.Err())
	default:
		body = s.list.View()
	}

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • enter: details • /: search • g: genre • s: status • r: refresh",
	)

	return fmt.Sprintf("%s\n%s\n\n%s\n%s", title, filters, body, help)
}

func (s *AnimeListScreen) renderFilters() string {
	genre := "All Genres"
	if genres := s.genresQ.Data(); s.genreIdx >= 0 && s.genreIdx < len(genres) {
		genre = genres[s.genreIdx].Name
	}
	status := "All Statuses"
	if animeStatuses[s.statusIdx] != "" {
		status = animeStatuses[s.statusIdx]
	}

	searchStyle := styles.InputStyle
	if s.search.Focused() {
		searchStyle = styles.FocusedInputStyle
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Center,
		styles.LabelStyle.Render("Genre: ")+styles.TextStyle.Render(genre),
		styles.MutedStyle.Render("   "),
		styles.LabelStyle.Render("Status: ")+styles.TextStyle.Render(status),
		styles.MutedStyle.Render("   "),
		searchStyle.Render(s.search.View()),
	)
}
