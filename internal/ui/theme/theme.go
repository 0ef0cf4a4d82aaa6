package theme

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codevoice/internal/catalog"
)

// Color palette, dark editor look
var (
	Primary   = lipgloss.Color("#3B82F6") // Blue
	Secondary = lipgloss.Color("#9333EA") // Purple (AI actions)
	Accent    = lipgloss.Color("#FACC15") // Yellow
	Success   = lipgloss.Color("#4ADE80") // Green
	Error     = lipgloss.Color("#F87171") // Red
	Text      = lipgloss.Color("#E5E7EB") // Near white
	TextDim   = lipgloss.Color("#9CA3AF") // Gray
	BgDark    = lipgloss.Color("#1E1E1E") // Editor background
	BgCard    = lipgloss.Color("#252526") // Panels
	Border    = lipgloss.Color("#3F3F46") // Zinc
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	SectionLabel = lipgloss.NewStyle().
			Foreground(TextDim).
			Bold(true)
)

// Panels
var (
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border)

	FocusedPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary)

	Console = lipgloss.NewStyle().
		Foreground(Text)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Text).
			Background(lipgloss.Color("#37373D")).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Buttons
var (
	RunButton = lipgloss.NewStyle().
			Background(lipgloss.Color("#16A34A")).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	HintButton = lipgloss.NewStyle().
			Background(Secondary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	BusyButton = lipgloss.NewStyle().
			Background(Border).
			Foreground(TextDim).
			Padding(0, 2)
)

// DifficultyStyle colours a difficulty label: green for Easy, yellow
// for everything else.
func DifficultyStyle(d catalog.Difficulty) lipgloss.Style {
	if d == catalog.DifficultyEasy {
		return lipgloss.NewStyle().Foreground(Success)
	}
	return lipgloss.NewStyle().Foreground(Accent)
}
