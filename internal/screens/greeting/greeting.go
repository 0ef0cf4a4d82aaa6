package greeting

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/codevoice/internal/api"
	"github.com/abhisek/codevoice/internal/router"
	"github.com/abhisek/codevoice/internal/screen"
	"github.com/abhisek/codevoice/internal/ui/layout"
	"github.com/abhisek/codevoice/internal/ui/theme"
)

// UnreachableMessage is shown when GET / fails.
const UnreachableMessage = "Backend not reachable"

type greetingLoadedMsg struct {
	Greeting *api.Greeting
	Err      error
}

// GreetingScreen is the minimal front-end: it shows the backend's
// greeting and status.
type GreetingScreen struct {
	ctx      context.Context
	backend  api.Backend
	next     func() screen.Screen
	greeting *api.Greeting
	err      error
	loaded   bool
}

var _ screen.Screen = (*GreetingScreen)(nil)
var _ screen.KeyHintProvider = (*GreetingScreen)(nil)

// New creates a GreetingScreen. If next is non-nil, enter replaces this
// screen with the one it returns.
func New(ctx context.Context, backend api.Backend, next func() screen.Screen) *GreetingScreen {
	return &GreetingScreen{ctx: ctx, backend: backend, next: next}
}

func (s *GreetingScreen) Init() tea.Cmd {
	backend := s.backend
	ctx := s.ctx
	return func() tea.Msg {
		g, err := backend.Greeting(ctx)
		return greetingLoadedMsg{Greeting: g, Err: err}
	}
}

func (s *GreetingScreen) Title() string {
	return "Welcome"
}

func (s *GreetingScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "R", Description: "Refresh"}}
	if s.next != nil {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Start coding"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *GreetingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case greetingLoadedMsg:
		s.greeting = msg.Greeting
		s.err = msg.Err
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "r":
			s.loaded = false
			return s, s.Init()
		case "enter":
			if s.next == nil {
				return s, nil
			}
			next := s.next()
			return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}
	return s, nil
}

func (s *GreetingScreen) View(width, height int) string {
	var body string
	switch {
	case !s.loaded:
		body = theme.Hint.Render("Connecting...")
	case s.err != nil || s.greeting == nil:
		body = lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(UnreachableMessage)
	default:
		body = lipgloss.JoinVertical(lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(s.greeting.Message),
			"",
			theme.Subtitle.Render("Status: ")+
				lipgloss.NewStyle().Foreground(theme.Success).Render(s.greeting.Status),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Center, RenderBanner(width), "", "", body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
