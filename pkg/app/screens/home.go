package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/session"
)

// HomeScreen is the landing page. No data fetches; it only reads the
// session to decide which call to action to show.
type HomeScreen struct {
	store  *session.Store
	width  int
	height int
}

func NewHomeScreen(store *session.Store) *HomeScreen {
	return &HomeScreen{store: store}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
	case tea.KeyMsg:
		if msg.String() == "enter" {
			return s, Navigate(RouteAnimeList)
		}
	}
	return s, nil
}

func (s *HomeScreen) View() string {
	title := styles.TitleStyle.Render("Welcome to AnimeTracker!")
	tagline := styles.TextStyle.Render(
		"Your ultimate companion for tracking, discovering, and managing your anime collection.",
	)

	action := "enter: explore anime"
	if user := s.store.User(); user != nil {
		tagline = styles.TextStyle.Render(fmt.Sprintf("Welcome back, %s.", user.Username))
	} else {
		action += " • L: login • shortcuts in the navbar"
	}
	help := styles.HelpStyle.Render(action)

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", tagline, "", help)
	if s.width > 0 {
		return lipgloss.Place(s.width, s.height-4, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
