package screens

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/app/styles"
	"github.com/kerbaras/anitrack/pkg/session"
)

// SignupScreen creates an account through the session store. Success does
// not authenticate: the new user is sent to the login page. A backend
// rejection (duplicate username/email, validation failure) is shown
// verbatim and the session stays anonymous.
type SignupScreen struct {
	store *session.Store

	inputs  []textinput.Model
	focused int
	busy    bool
	errMsg  string
	created *api.User
}

type signupResultMsg struct {
	user *api.User
	err  error
}

func NewSignupScreen(store *session.Store) *SignupScreen {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 50
	username.Width = 40
	username.Focus()

	email := textinput.New()
	email.Placeholder = "Email"
	email.CharLimit = 100
	email.Width = 40

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 100
	password.Width = 40
	password.EchoMode = textinput.EchoPassword

	return &SignupScreen{store: store, inputs: []textinput.Model{username, email, password}}
}

func (s *SignupScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *SignupScreen) CapturingInput() bool {
	for i := range s.inputs {
		if s.inputs[i].Focused() {
			return true
		}
	}
	return false
}

func (s *SignupScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		if s.created != nil {
			if msg.String() == "enter" {
				return s, Navigate(RouteLogin)
			}
			return s, nil
		}
		switch msg.String() {
		case "esc":
			for i := range s.inputs {
				s.inputs[i].Blur()
			}
			return s, nil
		case "tab", "down":
			s.focus(s.focused + 1)
			return s, textinput.Blink
		case "shift+tab", "up":
			s.focus(s.focused - 1)
			return s, textinput.Blink
		case "enter":
			s.busy = true
			s.errMsg = ""
			return s, s.submit(s.inputs[0].Value(), s.inputs[1].Value(), s.inputs[2].Value())
		}

	case signupResultMsg:
		s.busy = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.created = msg.user
		return s, nil
	}

	var cmd tea.Cmd
	for i := range s.inputs {
		if s.inputs[i].Focused() {
			s.inputs[i], cmd = s.inputs[i].Update(msg)
			break
		}
	}
	return s, cmd
}

func (s *SignupScreen) focus(index int) {
	n := len(s.inputs)
	s.focused = ((index % n) + n) % n
	for i := range s.inputs {
		if i == s.focused {
			s.inputs[i].Focus()
		} else {
			s.inputs[i].Blur()
		}
	}
}

func (s *SignupScreen) submit(username, email, password string) tea.Cmd {
	return func() tea.Msg {
		user, err := s.store.Register(context.Background(), username, email, password)
		return signupResultMsg{user: user, err: err}
	}
}

func (s *SignupScreen) View() string {
	title := styles.TitleStyle.Render("Create Account")

	if s.created != nil {
		return fmt.Sprintf("%s\n%s\n\n%s",
			title,
			styles.SuccessStyle.Render(fmt.Sprintf("Account %q created.", s.created.Username)),
			styles.HelpStyle.Render("enter: go to sign in"),
		)
	}

	var fields string
	for i := range s.inputs {
		style := styles.InputStyle
		if s.inputs[i].Focused() {
			style = styles.FocusedInputStyle
		}
		fields += style.Render(s.inputs[i].View()) + "\n"
	}

	var status string
	switch {
	case s.busy:
		status = styles.LoadingStyle.Render("Creating account...")
	case s.errMsg != "":
		status = styles.ErrorStyle.Render(s.errMsg)
	}

	help := styles.HelpStyle.Render("tab: next field • enter: create account")

	return fmt.Sprintf("%s\n%s\n%s\n%s", title, fields, status, help)
}
