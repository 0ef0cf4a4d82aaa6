package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codevoice/internal/ui/theme"
)

// Button is a styled action button. While Busy it shows BusyLabel and
// ignores presses.
type Button struct {
	Label     string
	BusyLabel string
	Busy      bool
	Focused   bool
	Style     lipgloss.Style
	OnPress   func() tea.Cmd
}

// NewButton creates a new button.
func NewButton(label, busyLabel string, style lipgloss.Style, onPress func() tea.Cmd) Button {
	return Button{
		Label:     label,
		BusyLabel: busyLabel,
		Style:     style,
		OnPress:   onPress,
	}
}

// Update handles key events.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if b.Busy || !b.Focused {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "space":
			if b.OnPress != nil {
				return b, b.OnPress()
			}
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	if b.Busy {
		return theme.BusyButton.Render(b.BusyLabel)
	}
	style := b.Style
	if b.Focused {
		style = style.Underline(true)
	}
	return style.Render(b.Label)
}
