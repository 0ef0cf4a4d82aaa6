package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codevoice/internal/ui/layout"
	"github.com/abhisek/codevoice/internal/ui/theme"
)

// MenuItem represents a single row in a selectable list.
type MenuItem struct {
	Label string
	// Detail is rendered right-aligned, e.g. a difficulty.
	Detail      string
	DetailStyle lipgloss.Style
	Action      func() tea.Cmd
	Disabled    bool
}

// Menu is a vertical, scrollable list.
type Menu struct {
	Items    []MenuItem
	Selected int
	offset   int
}

// NewMenu creates a new menu with the given items.
func NewMenu(items []MenuItem) Menu {
	selected := 0
	for i, item := range items {
		if !item.Disabled {
			selected = i
			break
		}
	}
	return Menu{
		Items:    items,
		Selected: selected,
	}
}

// Init returns nil (no initial command).
func (m Menu) Init() tea.Cmd {
	return nil
}

// Select moves the cursor to index i if it is in range.
func (m *Menu) Select(i int) {
	if i >= 0 && i < len(m.Items) {
		m.Selected = i
	}
}

// Update handles keyboard navigation.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	switch kmsg.String() {
	case "up", "k":
		for i := m.Selected - 1; i >= 0; i-- {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "down", "j":
		for i := m.Selected + 1; i < len(m.Items); i++ {
			if !m.Items[i].Disabled {
				m.Selected = i
				break
			}
		}
	case "home", "g":
		m.Selected = 0
	case "end", "G":
		if len(m.Items) > 0 {
			m.Selected = len(m.Items) - 1
		}
	case "enter":
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			item := m.Items[m.Selected]
			if item.Action != nil && !item.Disabled {
				return m, item.Action()
			}
		}
	}

	return m, nil
}

// View renders at most height rows of the menu, keeping the cursor visible.
func (m *Menu) View(width, height int, focused bool) string {
	if len(m.Items) == 0 {
		return ""
	}
	if height <= 0 {
		height = len(m.Items)
	}

	if m.Selected < m.offset {
		m.offset = m.Selected
	}
	if m.Selected >= m.offset+height {
		m.offset = m.Selected - height + 1
	}
	end := min(m.offset+height, len(m.Items))

	cursorStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if focused {
		cursorStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	}

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		item := m.Items[i]
		prefix := "  "
		style := theme.Unselected
		if i == m.Selected {
			prefix = cursorStyle.Render("▸ ")
			style = theme.Selected
		}
		if item.Disabled {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}

		detail := ""
		if item.Detail != "" {
			detail = " " + item.DetailStyle.Render(item.Detail)
		}
		labelWidth := width - 2 - lipgloss.Width(detail)
		label := style.Render(layout.Truncate(item.Label, labelWidth))
		gap := max(labelWidth-lipgloss.Width(label), 0)

		b.WriteString(prefix + label + strings.Repeat(" ", gap) + detail)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
