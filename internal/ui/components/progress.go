package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/codevoice/internal/ui/theme"
)

// RatioBar displays a horizontal bar for a part/total ratio, such as the
// share of successful requests to an endpoint.
type RatioBar struct {
	Label string
	Part  int
	Total int
	Width int
	Fill  color.Color
}

// NewRatioBar creates a ratio bar filled in the success colour.
func NewRatioBar(label string, part, total, width int) RatioBar {
	return RatioBar{
		Label: label,
		Part:  part,
		Total: total,
		Width: width,
		Fill:  theme.Success,
	}
}

// Percent returns Part/Total clamped to [0, 1]. An empty total is 0.
func (r RatioBar) Percent() float64 {
	if r.Total <= 0 {
		return 0
	}
	p := float64(r.Part) / float64(r.Total)
	return max(0, min(p, 1))
}

// View renders the bar.
func (r RatioBar) View() string {
	var result string

	if r.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(r.Label) + "  "
	}

	count := fmt.Sprintf("  %d/%d", r.Part, r.Total)
	barWidth := r.Width - lipgloss.Width(result) - len(count)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * r.Percent())
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(r.Fill).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	return result + lipgloss.NewStyle().Foreground(theme.TextDim).Render(count)
}
