package screens

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kerbaras/anitrack/pkg/api"
)

func TestLoginResolvesIdentityAndGoesHome(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		if r.FormValue("username") != "alice" || r.FormValue("password") != "secret" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect username or password"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.Token{AccessToken: "tok-1", TokenType: "bearer"})
	})
	mux.HandleFunc("GET /auth/me/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.User{ID: 7, Username: "alice"})
	})
	store, client := testDeps(t, mux)

	s := NewLoginScreen(store, client)
	s.username.SetValue("alice")
	s.password.SetValue("secret")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, next := s.Update(cmd())
	s = model.(*LoginScreen)

	if !store.IsAuthenticated() {
		t.Fatal("Expected authenticated session after login")
	}
	if user := store.User(); user == nil || user.Username != "alice" {
		t.Errorf("Expected resolved user alice, got %+v", user)
	}
	if next == nil {
		t.Fatal("Expected a navigate command after login")
	}
	if nav, ok := next().(NavigateMsg); !ok || nav.Route != RouteHome {
		t.Errorf("Expected navigation home, got %+v", nav)
	}
}

func TestLoginShowsCredentialErrorVerbatim(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"detail": "Incorrect username or password"})
	})
	store, client := testDeps(t, mux)

	s := NewLoginScreen(store, client)
	s.username.SetValue("alice")
	s.password.SetValue("wrong")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s.Update(cmd())

	if store.IsAuthenticated() {
		t.Error("Expected session to stay anonymous after a failed login")
	}
	if !strings.Contains(s.View(), "Incorrect username or password") {
		t.Error("Expected backend detail verbatim in view")
	}
}

func TestLoginRequiresBothFields(t *testing.T) {
	store, client := testDeps(t, http.NewServeMux())

	s := NewLoginScreen(store, client)
	s.username.SetValue("alice")

	_, cmd := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Expected no request with an empty password")
	}
	if !strings.Contains(s.View(), "username and password are required") {
		t.Error("Expected local validation message")
	}
}
