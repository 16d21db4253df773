package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/query"
)

// CharacterScreen shows one character's detail record.
type CharacterScreen struct {
	client      *api.Client
	characterID int

	characterQ query.Query[*api.Character]
	width      int
}

func NewCharacterScreen(client *api.Client, characterID int) *CharacterScreen {
	return &CharacterScreen{client: client, characterID: characterID}
}

func (s *CharacterScreen) Init() tea.Cmd {
	locator := fmt.Sprintf("/characters/%d", s.characterID)
	return s.characterQ.FetchIfChanged(locator, func() (*api.Character, error) {
		return s.client.GetCharacter(context.Background(), s.characterID)
	})
}

func (s *CharacterScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace":
			return s, Navigate(RouteAnimeList)
		case "r":
			return s, s.characterQ.Fetch(s.characterQ.Locator(), func() (*api.Character, error) {
				return s.client.GetCharacter(context.Background(), s.characterID)
			})
		}

	case query.Result[*api.Character]:
		s.characterQ.Apply(msg)
	}

	return s, nil
}

func (s *CharacterScreen) View() string {
	switch {
	case s.characterQ.Loading():
		return styles.LoadingStyle.Render("Loading...")
	case s.characterQ.Err() != "":
		return styles.ErrorStyle.Render(s.characterQ.Err())
	case s.characterQ.Data() == nil:
		return styles.MutedStyle.Render("Character not found.")
	}

	character := s.characterQ.Data()

	sections := []string{styles.TitleStyle.Render(character.Name)}
	if character.Description != "" {
		sections = append(sections, styles.TextStyle.Render(character.Description))
	}
	if character.ImageURL != "" {
		sections = append(sections, styles.MutedStyle.Render("Image: "+character.ImageURL))
	}
	sections = append(sections, styles.HelpStyle.Render("esc: back • r: refresh"))

	width := s.width - 4
	if width < 20 {
		width = 76
	}
	return styles.CardStyle.Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...),
	)
}
