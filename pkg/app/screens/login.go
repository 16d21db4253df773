package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/session"
)

// LoginScreen exchanges credentials for a token and hands it to the
// session store, which resolves the identity behind it.
type LoginScreen struct {
	store  *session.Store
	client *api.Client

	username textinput.Model
	password textinput.Model
	focused  int
	busy     bool
	errMsg   string
	width    int
}

type loginResultMsg struct {
	err error
}

func NewLoginScreen(store *session.Store, client *api.Client) *LoginScreen {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 50
	username.Width = 40
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 100
	password.Width = 40
	password.EchoMode = textinput.EchoPassword

	return &LoginScreen{store: store, client: client, username: username, password: password}
}

func (s *LoginScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *LoginScreen) CapturingInput() bool {
	return s.username.Focused() || s.password.Focused()
}

func (s *LoginScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		return s, nil

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "esc":
			// Release the form so navbar shortcuts work again.
			s.username.Blur()
			s.password.Blur()
			return s, nil
		case "tab", "shift+tab", "down", "up":
			s.toggleFocus()
			return s, textinput.Blink
		case "enter":
			if s.username.Value() == "" || s.password.Value() == "" {
				s.errMsg = "username and password are required"
				return s, nil
			}
			s.busy = true
			s.errMsg = ""
			return s, s.submit(s.username.Value(), s.password.Value())
		}

	case loginResultMsg:
		s.busy = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		return s, Navigate(RouteHome)
	}

	var cmd tea.Cmd
	if input := s.focusedInput(); input != nil {
		*input, cmd = input.Update(msg)
	}
	return s, cmd
}

func (s *LoginScreen) toggleFocus() {
	if s.username.Focused() {
		s.username.Blur()
		s.password.Focus()
		s.focused = 1
	} else {
		s.password.Blur()
		s.username.Focus()
		s.focused = 0
	}
}

func (s *LoginScreen) focusedInput() *textinput.Model {
	if s.password.Focused() {
		return &s.password
	}
	if s.username.Focused() {
		return &s.username
	}
	return nil
}

func (s *LoginScreen) submit(username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		token, err := s.client.Login(ctx, username, password)
		if err != nil {
			return loginResultMsg{err: err}
		}
		if err := s.store.Login(ctx, token.AccessToken); err != nil {
			return loginResultMsg{err: err}
		}
		return loginResultMsg{}
	}
}

func (s *LoginScreen) View() string {
	title := styles.TitleStyle.Render("Sign In")

	field := func(input textinput.Model) string {
		style := styles.InputStyle
		if input.Focused() {
			style = styles.FocusedInputStyle
		}
		return style.Render(input.View())
	}

	var status string
	switch {
	case s.busy:
		status = styles.LoadingStyle.Render("Signing in...")
	case s.errMsg != "":
		status = styles.ErrorStyle.Render(s.errMsg)
	}

	help := styles.HelpStyle.Render("tab: next field • enter: sign in • esc: release form (then N for signup)")

	return fmt.Sprintf("%s\n%s\n%s\n\n%s\n%s",
		title,
		field(s.username),
		field(s.password),
		status,
		lipgloss.JoinVertical(lipgloss.Left, help),
	)
}
