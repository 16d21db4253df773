package screens

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/kerbaras/anitrack/pkg/api"
)

func TestProfileRefreshReissuesRead(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/7", func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(api.User{ID: 7, Username: "alice", Email: "a@b.c"})
	})
	store, client := authedDeps(t, mux)

	s := NewProfileScreen(store, client)
	if cmd := s.Init(); cmd != nil {
		s.Update(cmd())
	}
	if requests != 1 {
		t.Fatalf("Expected one read on mount, got %d", requests)
	}

	_, cmd := s.Update(keyRune('r'))
	if cmd == nil {
		t.Fatal("Expected refresh to re-issue the read")
	}
	s.Update(cmd())

	if requests != 2 {
		t.Errorf("Expected a second read after refresh, got %d", requests)
	}
	if !strings.Contains(s.View(), "alice") {
		t.Error("Expected the profile data in view")
	}
}
