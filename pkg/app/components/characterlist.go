package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/app/styles"
)

// CharacterList renders character records as selectable cards.
type CharacterList struct {
	Items         []api.Character
	SelectedIndex int
	Width         int
	EmptyMessage  string
}

func NewCharacterList() *CharacterList {
	return &CharacterList{
		Width:        80,
		EmptyMessage: "No characters found.",
	}
}

func (l *CharacterList) SetItems(items []api.Character) {
	l.Items = items
	if l.SelectedIndex >= len(items) {
		l.SelectedIndex = 0
	}
}

func (l *CharacterList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex = (l.SelectedIndex + 1) % len(l.Items)
}

func (l *CharacterList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *CharacterList) Selected() *api.Character {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

func (l *CharacterList) View() string {
	if len(l.Items) == 0 {
		return styles.MutedStyle.Render(l.EmptyMessage)
	}

	var b strings.Builder
	for i, character := range l.Items {
		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		name := styles.TitleStyle.Render(character.Name)
		description := styles.TextStyle.Render(Truncate(character.Description, 100))

		card := cardStyle.Width(l.Width - 4).Render(
			lipgloss.JoinVertical(lipgloss.Left, name, description),
		)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}

// Truncate shortens s to max runes with an ellipsis. For max of 3 or
// less there is no room for the ellipsis, so s is cut plainly.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		if max < 0 {
			max = 0
		}
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
