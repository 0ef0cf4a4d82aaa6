package workspace

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/codevoice/internal/ui/layout"
	"github.com/abhisek/codevoice/internal/ui/theme"
)

const (
	descriptionLines = 5
	consoleLines     = 6
)

func (s *WorkspaceScreen) View(width, height int) string {
	sidebarWidth := layout.SidebarWidth
	if layout.IsCompactWidth(width) {
		sidebarWidth = layout.SidebarWidth - 6
	}
	mainWidth := width - sidebarWidth

	sidebar := s.renderSidebar(sidebarWidth, height)

	// Panel borders take two rows each; the button row takes one.
	editorHeight := height - (descriptionLines + 2) - (consoleLines + 2) - 1 - 2
	if editorHeight < 3 {
		editorHeight = 3
	}

	main := lipgloss.JoinVertical(lipgloss.Left,
		s.renderDescription(mainWidth),
		s.renderToolbar(mainWidth),
		s.renderEditor(mainWidth, editorHeight),
		s.renderConsole(mainWidth),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
}

func panelStyle(focused bool) lipgloss.Style {
	if focused {
		return theme.FocusedPanel
	}
	return theme.Panel
}

func (s *WorkspaceScreen) renderSidebar(width, height int) string {
	inner := width - 2
	rows := height - 2 - 2

	var body string
	switch {
	case !s.state.CatalogLoaded() && s.state.CatalogErr() == nil:
		body = theme.Hint.Render("Loading problems...")
	case len(s.state.Problems()) == 0:
		body = theme.Hint.Render("No problems")
	default:
		body = s.list.View(inner, rows, s.focus == focusList)
	}

	content := theme.SectionLabel.Render("PROBLEMS") + "\n\n" + body
	return panelStyle(s.focus == focusList).
		Width(width).
		Height(height).
		Render(content)
}

func (s *WorkspaceScreen) renderDescription(width int) string {
	inner := width - 4

	p, ok := s.state.Active()
	var content string
	if !ok {
		content = theme.Hint.Render("Select a problem")
	} else {
		title := theme.Title.Render(p.Title) + "  " +
			theme.DifficultyStyle(p.Difficulty).Render(string(p.Difficulty))
		desc := lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Render(p.Description)
		lines := strings.Split(desc, "\n")
		if len(lines) > descriptionLines-1 {
			lines = append(lines[:descriptionLines-2], theme.Hint.Render("… ctrl+o for the full description"))
		}
		content = title + "\n" + strings.Join(lines, "\n")
	}

	return theme.Panel.
		Width(width).
		Height(descriptionLines+2).
		Padding(0, 1).
		Render(content)
}

func (s *WorkspaceScreen) renderToolbar(width int) string {
	lang := theme.Subtitle.Render(" " + s.state.Language())
	buttons := s.runBtn.View() + " " + s.hintBtn.View()
	gap := width - lipgloss.Width(lang) - lipgloss.Width(buttons) - 1
	if gap < 1 {
		gap = 1
	}
	return lang + strings.Repeat(" ", gap) + buttons
}

func (s *WorkspaceScreen) renderEditor(width, height int) string {
	s.editor.SetSize(width-2, height)
	return panelStyle(s.focus == focusEditor).
		Width(width).
		Render(s.editor.View())
}

func (s *WorkspaceScreen) renderConsole(width int) string {
	out := s.state.Output()
	if out == "" {
		out = theme.Hint.Render("Run your code to see output here.")
	} else {
		wrapped := lipgloss.NewStyle().Width(width - 4).Render(out)
		out = theme.Console.Render(layout.TailLines(wrapped, consoleLines-1))
	}

	return theme.Panel.
		Width(width).
		Height(consoleLines+2).
		Padding(0, 1).
		Render(theme.SectionLabel.Render("CONSOLE OUTPUT") + "\n" + out)
}
