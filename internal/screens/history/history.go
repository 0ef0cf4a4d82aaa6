package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/codevoice/internal/router"
	"github.com/abhisek/codevoice/internal/screen"
	"github.com/abhisek/codevoice/internal/store"
	"github.com/abhisek/codevoice/internal/ui/components"
	"github.com/abhisek/codevoice/internal/ui/layout"
	"github.com/abhisek/codevoice/internal/ui/theme"
)

// Limit is the number of journal entries the screen loads.
const Limit = 50

type historyLoadedMsg struct {
	Activity []store.Activity
	Stats    []store.RequestStats
	Err      error
}

// HistoryScreen displays recent runs and hints and per-endpoint request
// health from the journal.
type HistoryScreen struct {
	ctx       context.Context
	eventRepo store.EventRepo
	activity  []store.Activity
	stats     []store.RequestStats
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(ctx context.Context, eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		ctx:       ctx,
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo := s.eventRepo
	ctx := s.ctx
	return func() tea.Msg {
		activity, err := repo.RecentActivity(ctx, store.QueryOpts{Limit: Limit})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}

		// Stats are secondary; show the activity even if they fail.
		stats, err := repo.RequestStats(ctx)
		if err != nil {
			return historyLoadedMsg{Activity: activity}
		}
		return historyLoadedMsg{Activity: activity, Stats: stats}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.activity = msg.Activity
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc", "ctrl+l":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.activity)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.activity) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing yet. Run some code!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if len(s.stats) > 0 {
		b.WriteString(theme.SectionLabel.Render("  REQUESTS"))
		b.WriteString("\n")
		for _, st := range s.stats {
			label := fmt.Sprintf("  %-10s %6.0fms", st.Endpoint, st.AvgLatencyMs)
			bar := components.NewRatioBar(label, st.Total-st.Failed, st.Total, min(width-4, 70))
			b.WriteString(bar.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(theme.SectionLabel.Render("  ACTIVITY"))
	b.WriteString("\n")

	for i, a := range s.activity {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !a.Success {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}

		line := fmt.Sprintf("%s%s  %-4s  problem %-4d  %s",
			prefix, a.Timestamp.Local().Format("Jan 02 15:04:05"), a.Kind, a.ProblemID,
			layout.Truncate(firstLine(a.Detail), max(width-50, 10)))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line) + " " + mark)
		b.WriteString("\n")

		if s.expanded[i] {
			detail := a.Detail
			if detail == "" {
				detail = "(no output)"
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(width - 6).
				MarginLeft(6).
				Render(detail))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
