package screens

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/anitrack/pkg/api"
)

func fillSignup(s *SignupScreen, username, email, password string) {
	s.inputs[0].SetValue(username)
	s.inputs[1].SetValue(email)
	s.inputs[2].SetValue(password)
}

func TestSignupSuccessSendsUserToLogin(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		var payload map[string]string
		json.NewDecoder(r.Body).Decode(&payload)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.User{ID: 3, Username: payload["username"], Email: payload["email"]})
	})
	store, _ := testDeps(t, mux)

	s := NewSignupScreen(store)
	fillSignup(s, "newbie", "newbie@example.com", "hunter22")
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s.Update(cmd())

	if store.IsAuthenticated() {
		t.Error("Expected registration to leave the session anonymous")
	}
	if !strings.Contains(s.View(), `Account "newbie" created.`) {
		t.Error("Expected confirmation in view")
	}

	_, cmd = s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Expected a navigate command after confirmation")
	}
	if nav, ok := cmd().(NavigateMsg); !ok || nav.Route != RouteLogin {
		t.Errorf("Expected navigation to login, got %+v", nav)
	}
}

func TestSignupShowsBackendRejectionVerbatim(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Email already registered"})
	})
	store, _ := testDeps(t, mux)

	s := NewSignupScreen(store)
	fillSignup(s, "newbie", "taken@example.com", "hunter22")
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s.Update(cmd())

	if !strings.Contains(s.View(), "Email already registered") {
		t.Error("Expected backend detail verbatim in view")
	}
	if store.IsAuthenticated() {
		t.Error("Expected session to stay anonymous after rejection")
	}
	if s.inputs[1].Value() != "taken@example.com" {
		t.Error("Expected form values kept for correction")
	}
}

func TestSignupRejectsInvalidEmailLocally(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/register", func(w http.ResponseWriter, r *http.Request) {
		requests++
	})
	store, _ := testDeps(t, mux)

	s := NewSignupScreen(store)
	fillSignup(s, "newbie", "not-an-email", "hunter22")
	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s.Update(cmd())

	if requests != 0 {
		t.Errorf("Expected no request for an invalid form, got %d", requests)
	}
	if s.errMsg == "" {
		t.Error("Expected a validation message")
	}
}
