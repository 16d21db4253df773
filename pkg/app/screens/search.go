package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/app/components"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/query"
)

// SearchScreen queries anime and characters with one term. The two reads
// are issued together on submit and resolve independently.
type SearchScreen struct {
	client *api.Client

	input       textinput.Model
	animeQ      query.Query[[]api.Anime]
	charactersQ query.Query[[]api.Character]

	animeList     *components.AnimeList
	characterList *components.CharacterList
	inCharacters  bool
	searched      bool

	width  int
	height int
}

func NewSearchScreen(client *api.Client) *SearchScreen {
	input := textinput.New()
	input.Placeholder = "Search for anime or characters..."
	input.CharLimit = 100
	input.Width = 50
	input.Focus()

	animeList := components.NewAnimeList()
	animeList.EmptyMessage = "No anime found."

	characterList := components.NewCharacterList()
	characterList.EmptyMessage = "No characters found."

	return &SearchScreen{
		client:        client,
		input:         input,
		animeList:     animeList,
		characterList: characterList,
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *SearchScreen) CapturingInput() bool {
	return s.input.Focused()
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.animeList.Width = msg.Width - 4
		s.animeList.Height = (msg.Height - 14) / 2
		s.characterList.Width = msg.Width - 4

	case tea.KeyMsg:
		if s.input.Focused() {
			switch msg.String() {
			case "enter":
				term := s.input.Value()
				if term == "" {
					return s, nil
				}
				s.input.Blur()
				s.searched = true
				return s, tea.Batch(s.searchAnime(term), s.searchCharacters(term))
			case "esc":
				s.input.Blur()
				return s, nil
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}

		switch msg.String() {
		case "/":
			s.input.Focus()
			return s, textinput.Blink
		case "tab":
			s.inCharacters = !s.inCharacters
		case "up", "k":
			if s.inCharacters {
				s.characterList.Prev()
			} else {
				s.animeList.Prev()
			}
		case "down", "j":
			if s.inCharacters {
				s.characterList.Next()
			} else {
				s.animeList.Next()
			}
		case "enter":
			if s.inCharacters {
				if character := s.characterList.Selected(); character != nil {
					id := character.ID
					return s, func() tea.Msg {
						return NavigateMsg{Route: RouteCharacter, ID: id}
					}
				}
			} else if anime := s.animeList.Selected(); anime != nil {
				id := anime.ID
				return s, func() tea.Msg {
					return NavigateMsg{Route: RouteAnimeDetails, ID: id}
				}
			}
		}

	case query.Result[[]api.Anime]:
		s.animeQ.Apply(msg)
		s.animeList.SetItems(s.animeQ.Data())

	case query.Result[[]api.Character]:
		s.charactersQ.Apply(msg)
		s.characterList.SetItems(s.charactersQ.Data())
	}

	return s, nil
}

func (s *SearchScreen) searchAnime(term string) tea.Cmd {
	return s.animeQ.Fetch("/anime?search="+term, func() ([]api.Anime, error) {
		return s.client.ListAnime(context.Background(), api.AnimeFilter{Search: term})
	})
}

func (s *SearchScreen) searchCharacters(term string) tea.Cmd {
	return s.charactersQ.Fetch("/characters?search="+term, func() ([]api.Character, error) {
		return s.client.SearchCharacters(context.Background(), term)
	})
}

func (s *SearchScreen) View() string {
	title := styles.TitleStyle.Render("Search")

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	input := inputStyle.Render(s.input.View())

	if !s.searched {
		return fmt.Sprintf("%s\n%s\n\n%s", title, input,
			styles.HelpStyle.Render("enter: search"))
	}

	renderSection := func(header string, q interface {
		Loading() bool
		Err() string
	}, list string) string {
		switch {
		case q.Loading():
			return header + "\n" + styles.LoadingStyle.Render("Searching...")
		case q.Err() != "":
			return header + "\n" + styles.ErrorStyle.Render(q.Err())
		default:
			return header + "\n" + list
		}
	}

	animeSection := renderSection(
		styles.SubtitleStyle.Render("Anime Results"), &s.animeQ, s.animeList.View())
	characterSection := renderSection(
		styles.SubtitleStyle.Render("Character Results"), &s.charactersQ, s.characterList.View())

	help := styles.HelpStyle.Render(
		"/: edit query • tab: switch section • ↑/↓: navigate • enter: details")

	return fmt.Sprintf("%s\n%s\n\n%s\n\n%s\n%s", title, input, animeSection, characterSection, help)
}
