package screens

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/query"
	"github.com/kerbaras/anitrack/pkg/session"
)

// ProfileScreen shows the signed-in user's public profile, fetched fresh
// rather than reusing the session's identity record.
type ProfileScreen struct {
	store  *session.Store
	client *api.Client

	profileQ query.Query[*api.User]
	width    int
}

func NewProfileScreen(store *session.Store, client *api.Client) *ProfileScreen {
	return &ProfileScreen{store: store, client: client}
}

func (s *ProfileScreen) Init() tea.Cmd {
	user := s.store.User()
	if user == nil {
		return nil
	}
	userID := user.ID
	return s.profileQ.FetchIfChanged(fmt.Sprintf("/users/%d", userID), func() (*api.User, error) {
		return s.client.GetUser(context.Background(), userID)
	})
}

// refresh re-reads the profile unconditionally, so a failed load can be
// retried even though the locator has not changed.
func (s *ProfileScreen) refresh() tea.Cmd {
	user := s.store.User()
	if user == nil {
		return nil
	}
	userID := user.ID
	return s.profileQ.Fetch(fmt.Sprintf("/users/%d", userID), func() (*api.User, error) {
		return s.client.GetUser(context.Background(), userID)
	})
}

func (s *ProfileScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width

	case tea.KeyMsg:
		if msg.String() == "r" {
			return s, s.refresh()
		}

	case query.Result[*api.User]:
		s.profileQ.Apply(msg)
	}

	return s, nil
}

func (s *ProfileScreen) View() string {
	title := styles.TitleStyle.Render("User Profile")

	switch {
	case s.profileQ.Loading():
		return fmt.Sprintf("%s\n%s", title, styles.LoadingStyle.Render("Loading..."))
	case s.profileQ.Err() != "":
		return fmt.Sprintf("%s\n%s", title, styles.ErrorStyle.Render(s.profileQ.Err()))
	case s.profileQ.Data() == nil:
		return fmt.Sprintf("%s\n%s", title, styles.MutedStyle.Render("No profile data available."))
	}

	profile := s.profileQ.Data()

	memberSince := profile.CreatedAt
	if parsed, err := time.Parse(time.RFC3339, profile.CreatedAt); err == nil {
		memberSince = parsed.Format("January 2, 2006")
	}

	row := func(label, value string) string {
		return styles.LabelStyle.Render(label+": ") + styles.TextStyle.Render(value)
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		row("Username", profile.Username),
		row("Email", profile.Email),
		row("Member Since", memberSince),
	)

	width := s.width - 4
	if width < 20 {
		width = 60
	}
	card := styles.CardStyle.Width(width).Render(body)

	return fmt.Sprintf("%s\n%s\n%s", title, card, styles.HelpStyle.Render("r: refresh"))
}
