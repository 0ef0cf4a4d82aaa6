package workspace

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/codevoice/internal/api"
	"github.com/abhisek/codevoice/internal/audio"
	"github.com/abhisek/codevoice/internal/config"
	"github.com/abhisek/codevoice/internal/logging"
	"github.com/abhisek/codevoice/internal/router"
	"github.com/abhisek/codevoice/internal/screen"
	"github.com/abhisek/codevoice/internal/screens/history"
	"github.com/abhisek/codevoice/internal/screens/problem"
	"github.com/abhisek/codevoice/internal/store"
	"github.com/abhisek/codevoice/internal/ui/components"
	"github.com/abhisek/codevoice/internal/ui/layout"
	"github.com/abhisek/codevoice/internal/ui/theme"
	ws "github.com/abhisek/codevoice/internal/workspace"
)

type focusArea int

const (
	focusList focusArea = iota
	focusEditor
	focusRun
	focusHint
	focusCount
)

// Deps are the collaborators of the workspace screen.
type Deps struct {
	Backend   api.Backend
	Player    audio.Player
	Journal   *ws.Journal
	EventRepo store.EventRepo
	Logger    *logging.Logger
	Policy    config.CatalogErrorPolicy
	Language  string
}

// WorkspaceScreen is the main coding screen: problem list, description,
// editor and console.
type WorkspaceScreen struct {
	ctx   context.Context
	deps  Deps
	state *ws.State

	focus   focusArea
	list    components.Menu
	editor  components.Editor
	runBtn  components.Button
	hintBtn components.Button
}

var _ screen.Screen = (*WorkspaceScreen)(nil)
var _ screen.KeyHintProvider = (*WorkspaceScreen)(nil)

// New creates the workspace screen. ctx bounds every backend request it
// issues.
func New(ctx context.Context, deps Deps) *WorkspaceScreen {
	if deps.Player == nil {
		deps.Player = audio.NopPlayer{}
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}

	s := &WorkspaceScreen{
		ctx:    ctx,
		deps:   deps,
		state:  ws.NewState(deps.Policy, deps.Language),
		focus:  focusEditor,
		editor: components.NewEditor(),
	}
	s.runBtn = components.NewButton("▶ Run Code", "Running...", theme.RunButton, func() tea.Cmd {
		return func() tea.Msg { return runPressedMsg{} }
	})
	s.hintBtn = components.NewButton("🎤 Ask AI Hint", "Thinking...", theme.HintButton, func() tea.Cmd {
		return func() tea.Msg { return hintPressedMsg{} }
	})
	return s
}

// State exposes the session state.
func (s *WorkspaceScreen) State() *ws.State {
	return s.state
}

func (s *WorkspaceScreen) Init() tea.Cmd {
	return tea.Batch(s.loadCatalog(), s.editor.Init())
}

func (s *WorkspaceScreen) Title() string {
	if p, ok := s.state.Active(); ok {
		return p.Label()
	}
	return "Workspace"
}

func (s *WorkspaceScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Focus"},
		{Key: "Ctrl+R", Description: "Run"},
		{Key: "Ctrl+G", Description: "Hint"},
		{Key: "Ctrl+O", Description: "Problem"},
	}
	if s.deps.EventRepo != nil {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+L", Description: "History"})
	}
	return append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
}

func (s *WorkspaceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case catalogLoadedMsg:
		s.handleCatalog(msg)

	case problemChosenMsg:
		s.handleChosen(msg)
		cmd = s.setFocus(focusEditor)

	case runPressedMsg:
		cmd = s.startRun()

	case hintPressedMsg:
		cmd = s.startHint()

	case runFinishedMsg:
		cmd = s.handleRunFinished(msg)

	case hintFinishedMsg:
		cmd = s.handleHintFinished(msg)

	case tea.KeyPressMsg:
		cmd = s.handleKey(msg)

	default:
		var changed bool
		s.editor, cmd, changed = s.editor.Update(msg)
		if changed {
			s.state.SetCode(s.editor.Value())
		}
	}

	s.syncButtons()
	return s, cmd
}

func (s *WorkspaceScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+r":
		return s.startRun()
	case "ctrl+g":
		return s.startHint()
	case "ctrl+o":
		p, ok := s.state.Active()
		if !ok {
			return nil
		}
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: problem.New(p, s.state.Language())}
		}
	case "ctrl+l":
		if s.deps.EventRepo == nil {
			return nil
		}
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: history.New(s.ctx, s.deps.EventRepo)}
		}
	case "tab":
		return s.setFocus((s.focus + 1) % focusCount)
	case "shift+tab":
		return s.setFocus((s.focus + focusCount - 1) % focusCount)
	}

	var cmd tea.Cmd
	switch s.focus {
	case focusList:
		s.list, cmd = s.list.Update(msg)
	case focusEditor:
		var changed bool
		s.editor, cmd, changed = s.editor.Update(msg)
		if changed {
			s.state.SetCode(s.editor.Value())
		}
	case focusRun:
		s.runBtn, cmd = s.runBtn.Update(msg)
	case focusHint:
		s.hintBtn, cmd = s.hintBtn.Update(msg)
	}
	return cmd
}

func (s *WorkspaceScreen) setFocus(f focusArea) tea.Cmd {
	s.focus = f
	s.runBtn.Focused = f == focusRun
	s.hintBtn.Focused = f == focusHint
	if f == focusEditor {
		return s.editor.Focus()
	}
	s.editor.Blur()
	return nil
}

func (s *WorkspaceScreen) syncButtons() {
	s.runBtn.Busy = s.state.IsRunning()
	s.hintBtn.Busy = s.state.IsAIThinking()
}

func (s *WorkspaceScreen) loadCatalog() tea.Cmd {
	backend := s.deps.Backend
	ctx := s.ctx
	return func() tea.Msg {
		problems, err := backend.ListProblems(ctx)
		return catalogLoadedMsg{Problems: problems, Err: err}
	}
}

func (s *WorkspaceScreen) handleCatalog(msg catalogLoadedMsg) {
	if msg.Err != nil {
		s.deps.Logger.Warn("catalog fetch failed", "err", msg.Err)
	} else {
		s.deps.Logger.Info("catalog loaded", "problems", len(msg.Problems))
	}
	s.state.ApplyCatalog(msg.Problems, msg.Err)

	problems := s.state.Problems()
	items := make([]components.MenuItem, len(problems))
	for i, p := range problems {
		index := i
		items[i] = components.MenuItem{
			Label:       p.Label(),
			Detail:      string(p.Difficulty),
			DetailStyle: theme.DifficultyStyle(p.Difficulty),
			Action: func() tea.Cmd {
				return func() tea.Msg { return problemChosenMsg{Index: index} }
			},
		}
	}
	s.list = components.NewMenu(items)
	s.list.Select(s.state.ActiveIndex())
	s.editor.SetValue(s.state.Code())
}

func (s *WorkspaceScreen) handleChosen(msg problemChosenMsg) {
	if err := s.state.SelectProblemAt(msg.Index); err != nil {
		s.deps.Logger.Warn("select failed", "index", msg.Index, "err", err)
		return
	}
	s.list.Select(s.state.ActiveIndex())
	s.editor.SetValue(s.state.Code())
}

func (s *WorkspaceScreen) startRun() tea.Cmd {
	req, ok := s.state.BeginRun()
	if !ok {
		return nil
	}
	problemID := 0
	if p, ok := s.state.Active(); ok {
		problemID = p.ID
	}
	s.deps.Logger.Debug("run started", "problem", problemID, "bytes", len(req.Code))

	backend := s.deps.Backend
	ctx := s.ctx
	return func() tea.Msg {
		resp, err := backend.Execute(ctx, req)
		return runFinishedMsg{ProblemID: problemID, Request: req, Response: resp, Err: err}
	}
}

func (s *WorkspaceScreen) handleRunFinished(msg runFinishedMsg) tea.Cmd {
	if msg.Err != nil {
		s.deps.Logger.Warn("run failed", "problem", msg.ProblemID, "err", msg.Err)
	}
	s.state.FinishRun(msg.Response, msg.Err)

	journal := s.deps.Journal
	if journal == nil {
		return nil
	}
	ctx := s.ctx
	output := s.state.Output()
	return func() tea.Msg {
		journal.RecordRun(ctx, msg.ProblemID, msg.Request, output, msg.Err)
		return nil
	}
}

func (s *WorkspaceScreen) startHint() tea.Cmd {
	req, ok := s.state.BeginHint()
	if !ok {
		return nil
	}
	s.deps.Logger.Debug("hint requested", "problem", req.ProblemID)

	backend := s.deps.Backend
	player := s.deps.Player
	ctx := s.ctx
	return func() tea.Msg {
		a, err := ws.RequestHint(ctx, backend, player, req)
		return hintFinishedMsg{Request: req, Audio: a, Err: err}
	}
}

func (s *WorkspaceScreen) handleHintFinished(msg hintFinishedMsg) tea.Cmd {
	if msg.Err != nil {
		s.deps.Logger.Warn("hint failed", "problem", msg.Request.ProblemID, "err", msg.Err)
	}
	s.state.FinishHint(msg.Err)

	journal := s.deps.Journal
	if journal == nil {
		return nil
	}
	ctx := s.ctx
	return func() tea.Msg {
		journal.RecordHint(ctx, msg.Request, msg.Audio, msg.Err)
		return nil
	}
}
