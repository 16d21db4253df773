package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/anitrack/pkg/api"
)

func TestEpisodeListViewEmpty(t *testing.T) {
	list := NewEpisodeList()

	if !strings.Contains(list.View(), "No episodes available") {
		t.Error("Expected empty message")
	}
}

func TestEpisodeListViewMarksWatched(t *testing.T) {
	list := NewEpisodeList()
	list.Episodes = []api.Episode{
		{ID: 1, AnimeID: 42, EpisodeNumber: 1, Title: "Asteroid Blues", DurationMinutes: 24},
		{ID: 2, AnimeID: 42, EpisodeNumber: 2, Title: "Stray Dog Strut"},
	}
	list.EpisodesWatched = 1

	view := list.View()

	if !strings.Contains(view, "Episodes (2 total):") {
		t.Error("Expected episode count header")
	}
	if !strings.Contains(view, "● Ep. 1: Asteroid Blues (24 min)") {
		t.Errorf("Expected watched marker on episode 1, got:\n%s", view)
	}
	if !strings.Contains(view, "○ Ep. 2: Stray Dog Strut") {
		t.Errorf("Expected unwatched marker on episode 2, got:\n%s", view)
	}
}

func TestCharacterListView(t *testing.T) {
	list := NewCharacterList()
	list.Width = 80

	if !strings.Contains(list.View(), "No characters found.") {
		t.Error("Expected empty message")
	}

	list.SetItems([]api.Character{{ID: 9, Name: "Spike Spiegel", Description: "A bounty hunter."}})
	view := list.View()
	if !strings.Contains(view, "Spike Spiegel") {
		t.Error("Expected character name in view")
	}
	if !strings.Contains(view, "A bounty hunter.") {
		t.Error("Expected character description in view")
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Expected unchanged string, got %q", got)
	}
	if got := Truncate("a very long description indeed", 10); got != "a very ..." {
		t.Errorf("Expected truncated string with ellipsis, got %q", got)
	}
}

func TestTruncateTinyLimits(t *testing.T) {
	if got := Truncate("abcdef", 3); got != "abc" {
		t.Errorf("Expected plain cut at 3, got %q", got)
	}
	if got := Truncate("abcdef", 1); got != "a" {
		t.Errorf("Expected plain cut at 1, got %q", got)
	}
	if got := Truncate("abcdef", 0); got != "" {
		t.Errorf("Expected empty string at 0, got %q", got)
	}
	if got := Truncate("abcdef", -1); got != "" {
		t.Errorf("Expected empty string for negative limit, got %q", got)
	}
}
