package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#7C6FF0")
	Secondary  = lipgloss.Color("#56B6C2")
	Success    = lipgloss.Color("#98C379")
	Warning    = lipgloss.Color("#E5C07B")
	Error      = lipgloss.Color("#E06C75")
	Info       = lipgloss.Color("#61AFEF")
	Muted      = lipgloss.Color("#5C6370")
	Foreground = lipgloss.Color("#ABB2BF")

	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	// Card style for list entries
	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 2).
			MarginBottom(1)

	ActiveCardStyle = lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(Primary).
			Padding(0, 2).
			MarginBottom(1)

	// Navbar tabs
	ActiveNavStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(lipgloss.Color("#2C313A")).
			Padding(0, 2).
			Bold(true)

	InactiveNavStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	// Input fields
	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)

	// Field labels in detail views and forms
	LabelStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)
)

// WatchStatusStyle colors a per-anime watch status.
func WatchStatusStyle(status string) lipgloss.Style {
	switch status {
	case "Watching":
		return LoadingStyle
	case "Completed":
		return SuccessStyle
	case "Dropped":
		return ErrorStyle
	case "On Hold":
		return lipgloss.NewStyle().Foreground(Warning).Bold(true)
	default:
		return MutedStyle
	}
}

// AiringStatusStyle colors an anime's airing status.
func AiringStatusStyle(status string) lipgloss.Style {
	switch status {
	case "Airing":
		return SuccessStyle
	case "Finished Airing":
		return MutedStyle
	case "Not yet aired":
		return lipgloss.NewStyle().Foreground(Warning)
	default:
		return MutedStyle
	}
}
