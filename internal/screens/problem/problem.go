package problem

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/glamour"

	"github.com/abhisek/codevoice/internal/catalog"
	"github.com/abhisek/codevoice/internal/router"
	"github.com/abhisek/codevoice/internal/screen"
	"github.com/abhisek/codevoice/internal/ui/layout"
	"github.com/abhisek/codevoice/internal/ui/theme"
)

// ProblemScreen shows one problem's full description and starter code.
type ProblemScreen struct {
	problem  catalog.Problem
	language string
	vp       viewport.Model
	width    int
}

var _ screen.Screen = (*ProblemScreen)(nil)
var _ screen.KeyHintProvider = (*ProblemScreen)(nil)

// New creates a ProblemScreen for p. language selects the highlighter
// for the starter code.
func New(p catalog.Problem, language string) *ProblemScreen {
	return &ProblemScreen{
		problem:  p,
		language: language,
		vp:       viewport.New(),
	}
}

func (s *ProblemScreen) Init() tea.Cmd {
	return nil
}

func (s *ProblemScreen) Title() string {
	return s.problem.Label()
}

func (s *ProblemScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProblemScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc", "q", "ctrl+o":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	var cmd tea.Cmd
	s.vp, cmd = s.vp.Update(msg)
	return s, cmd
}

func (s *ProblemScreen) View(width, height int) string {
	if width != s.width {
		s.width = width
		s.vp.SetContent(Render(s.problem, s.language, width-4))
	}
	s.vp.SetWidth(width - 2)
	s.vp.SetHeight(height - 2)

	return theme.FocusedPanel.
		Width(width).
		Render(s.vp.View())
}

// Render formats p as a markdown description followed by its highlighted
// starter code, wrapped to width.
func Render(p catalog.Problem, language string, width int) string {
	var b strings.Builder
	b.WriteString(renderMarkdown(describe(p), width))

	if p.Template != "" || p.TestCase != "" {
		b.WriteString(theme.SectionLabel.Render("  STARTER CODE"))
		b.WriteString("\n\n")
		b.WriteString(highlight(p.StarterCode(), language))
		b.WriteString("\n")
	}
	return b.String()
}

func describe(p catalog.Problem) string {
	var md strings.Builder
	fmt.Fprintf(&md, "# %s\n\n", p.Label())
	if p.Difficulty != "" {
		fmt.Fprintf(&md, "**Difficulty:** %s\n\n", p.Difficulty)
	}
	if p.Description != "" {
		md.WriteString(p.Description)
		md.WriteString("\n")
	}
	return md.String()
}

func renderMarkdown(md string, width int) string {
	if width < 20 {
		width = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(md)
	}
	out, err := r.Render(md)
	if err != nil {
		return lipgloss.NewStyle().Width(width).Render(md)
	}
	return out
}

func highlight(code, language string) string {
	var b strings.Builder
	if err := quick.Highlight(&b, code, language, "terminal256", "monokai"); err != nil {
		return code
	}
	return b.String()
}
