package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/app/components"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/query"
	"github.com/kerbaras/anitrack/pkg/session"
)

// FavoritesScreen lists the signed-in user's bookmarked anime and
// characters. The route guard keeps anonymous sessions out, so a missing
// user here only happens if the session decayed mid-view.
type FavoritesScreen struct {
	store  *session.Store
	client *api.Client

	favoritesQ query.Query[[]api.Favorite]

	animeList     *components.AnimeList
	characterList *components.CharacterList
	inCharacters  bool

	width  int
	height int
}

func NewFavoritesScreen(store *session.Store, client *api.Client) *FavoritesScreen {
	animeList := components.NewAnimeList()
	animeList.EmptyMessage = "No favorite anime yet."

	characterList := components.NewCharacterList()
	characterList.EmptyMessage = "No favorite characters yet."

	return &FavoritesScreen{
		store:         store,
		client:        client,
		animeList:     animeList,
		characterList: characterList,
	}
}

func (s *FavoritesScreen) Init() tea.Cmd {
	user := s.store.User()
	if user == nil {
		return nil
	}
	userID := user.ID
	locator := fmt.Sprintf("/users/%d/favorites", userID)
	return s.favoritesQ.FetchIfChanged(locator, func() ([]api.Favorite, error) {
		return s.client.ListFavorites(context.Background(), userID)
	})
}

// refresh re-reads the favorites unconditionally. The locator is stable
// for a mounted screen, so the edge-triggered fetch would return nil and
// the key would do nothing.
func (s *FavoritesScreen) refresh() tea.Cmd {
	user := s.store.User()
	if user == nil {
		return nil
	}
	userID := user.ID
	locator := fmt.Sprintf("/users/%d/favorites", userID)
	return s.favoritesQ.Fetch(locator, func() ([]api.Favorite, error) {
		return s.client.ListFavorites(context.Background(), userID)
	})
}

func (s *FavoritesScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.animeList.Width = msg.Width - 4
		s.animeList.Height = (msg.Height - 10) / 2
		s.characterList.Width = msg.Width - 4

	case tea.KeyMsg:
		switch msg.String() {
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
		case "r":
			return s, s.refresh()
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

	case query.Result[[]api.Favorite]:
		s.favoritesQ.Apply(msg)
		s.splitFavorites(s.favoritesQ.Data())
	}

	return s, nil
}

// splitFavorites fans a favorites response out into the two card lists.
// An item bookmarks either an anime or a character, never both.
func (s *FavoritesScreen) splitFavorites(favorites []api.Favorite) {
	var anime []api.Anime
	var characters []api.Character
	for _, favorite := range favorites {
		switch {
		case favorite.Anime != nil:
			anime = append(anime, *favorite.Anime)
		case favorite.Character != nil:
			characters = append(characters, *favorite.Character)
		}
	}
	s.animeList.SetItems(anime)
	s.characterList.SetItems(characters)
}

func (s *FavoritesScreen) View() string {
	title := styles.TitleStyle.Render("Your Favorites")

	switch {
	case s.favoritesQ.Loading():
		return fmt.Sprintf("%s\n%s", title, styles.LoadingStyle.Render("Loading..."))
	case s.favoritesQ.Err() != "":
		return fmt.Sprintf("%s\n%s", title, styles.ErrorStyle.Render(s.favoritesQ.Err()))
	}

	if len(s.favoritesQ.Data()) == 0 {
		return fmt.Sprintf("%s\n%s", title,
			styles.MutedStyle.Render("You haven't added any favorites yet."))
	}

	animeHeader := styles.SubtitleStyle.Render("Anime")
	characterHeader := styles.SubtitleStyle.Render("Characters")
	if s.inCharacters {
		characterHeader = styles.TitleStyle.Render("Characters")
	} else {
		animeHeader = styles.TitleStyle.Render("Anime")
	}

	help := styles.HelpStyle.Render("tab: switch section • ↑/↓: navigate • enter: details • r: refresh")

	return fmt.Sprintf("%s\n%s\n%s\n%s\n%s\n%s",
		title,
		animeHeader,
		s.animeList.View(),
		characterHeader,
		s.characterList.View(),
		help,
	)
}
