package components

import (
	"strings"
	"testing"

	"github.com/kerbaras/anitrack/pkg/api"
)

func TestNewAnimeList(t *testing.T) {
	list := NewAnimeList()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex 0, got %d", list.SelectedIndex)
	}
	if len(list.Items) != 0 {
		t.Errorf("Expected 0 items, got %d", len(list.Items))
	}
}

func TestAnimeListSetItemsResetsSelection(t *testing.T) {
	list := NewAnimeList()
	list.SetItems([]api.Anime{
		{ID: 1, Title: "Anime 1"},
		{ID: 2, Title: "Anime 2"},
		{ID: 3, Title: "Anime 3"},
	})
	list.SelectedIndex = 2

	list.SetItems([]api.Anime{{ID: 1, Title: "Anime 1"}})

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to be reset to 0, got %d", list.SelectedIndex)
	}
}

func TestAnimeListNavigationWraps(t *testing.T) {
	list := NewAnimeList()
	list.SetItems([]api.Anime{
		{ID: 1, Title: "Anime 1"},
		{ID: 2, Title: "Anime 2"},
		{ID: 3, Title: "Anime 3"},
	})

	list.Next()
	list.Next()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex 2, got %d", list.SelectedIndex)
	}

	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to wrap to 0, got %d", list.SelectedIndex)
	}

	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected SelectedIndex to wrap to 2, got %d", list.SelectedIndex)
	}
}

func TestAnimeListNavigationEmptyList(t *testing.T) {
	list := NewAnimeList()

	// Should not panic with empty list
	list.Next()
	list.Prev()

	if list.SelectedIndex != 0 {
		t.Errorf("Expected SelectedIndex to remain 0, got %d", list.SelectedIndex)
	}
	if list.Selected() != nil {
		t.Error("Expected nil selection for empty list")
	}
}

func TestAnimeListSelected(t *testing.T) {
	list := NewAnimeList()
	list.SetItems([]api.Anime{
		{ID: 1, Title: "Anime 1"},
		{ID: 2, Title: "Anime 2"},
	})

	selected := list.Selected()
	if selected == nil {
		t.Fatal("Expected selected item")
	}
	if selected.ID != 1 {
		t.Errorf("Expected selected anime ID 1, got %d", selected.ID)
	}

	list.Next()
	if list.Selected().ID != 2 {
		t.Errorf("Expected selected anime ID 2, got %d", list.Selected().ID)
	}
}

func TestAnimeListViewEmpty(t *testing.T) {
	list := NewAnimeList()
	list.Width = 80
	list.Height = 20

	view := list.View()

	if !strings.Contains(view, "No anime found") {
		t.Error("Expected 'No anime found' message")
	}
}

func TestAnimeListViewWithItems(t *testing.T) {
	list := NewAnimeList()
	list.Width = 80
	list.Height = 20
	list.SetItems([]api.Anime{
		{ID: 1, Title: "Cowboy Bebop", Status: "Finished Airing", EpisodesTotal: 26},
	})

	view := list.View()

	if !strings.Contains(view, "Cowboy Bebop") {
		t.Error("Expected anime title in view")
	}
	if !strings.Contains(view, "Episodes: 26") {
		t.Error("Expected episode count in view")
	}
	if !strings.Contains(view, "Finished Airing") {
		t.Error("Expected airing status in view")
	}
}

func TestAnimeListViewCustomEmptyMessage(t *testing.T) {
	list := NewAnimeList()
	list.Width = 80
	list.EmptyMessage = "No favorite anime yet."

	if !strings.Contains(list.View(), "No favorite anime yet.") {
		t.Error("Expected custom empty message")
	}
}
