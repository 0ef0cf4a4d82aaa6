package workspace

import (
	"context"

	"github.com/abhisek/codevoice/internal/api"
	"github.com/abhisek/codevoice/internal/audio"
	"github.com/abhisek/codevoice/internal/config"
	"github.com/abhisek/codevoice/internal/logging"
)

// Options holds the optional Controller dependencies.
type Options struct {
	Policy   config.CatalogErrorPolicy
	Language string
	Journal  *Journal
	Logger   *logging.Logger
}

// Controller drives a State synchronously: each operation performs its
// network call inline between the Begin and Finish steps. It backs the
// headless commands and, like State, is meant for a single goroutine.
type Controller struct {
	state   *State
	backend api.Backend
	player  audio.Player
	journal *Journal
	logger  *logging.Logger
	lastErr error
}

// NewController creates a Controller with an empty state.
func NewController(backend api.Backend, player audio.Player, opts Options) *Controller {
	if player == nil {
		player = audio.NopPlayer{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Controller{
		state:   NewState(opts.Policy, opts.Language),
		backend: backend,
		player:  player,
		journal: opts.Journal,
		logger:  opts.Logger,
	}
}

// State exposes the controller's session state.
func (c *Controller) State() *State {
	return c.state
}

// LastErr returns the error of the most recent run or hint, or nil if it
// succeeded. The session state only carries the flattened console text.
func (c *Controller) LastErr() error {
	return c.lastErr
}

// LoadCatalog fetches the problem catalog and selects the first entry.
// Failures are recorded on the state; the returned error is informational.
func (c *Controller) LoadCatalog(ctx context.Context) error {
	problems, err := c.backend.ListProblems(ctx)
	if err != nil {
		c.logger.Warn("catalog fetch failed", "err", err)
	} else {
		c.logger.Info("catalog loaded", "problems", len(problems))
	}
	c.state.ApplyCatalog(problems, err)
	return err
}

// RunCode sends the current code for execution. It reports whether a
// request was sent.
func (c *Controller) RunCode(ctx context.Context) bool {
	req, ok := c.state.BeginRun()
	if !ok {
		return false
	}

	resp, err := c.backend.Execute(ctx, req)
	c.lastErr = err
	if err != nil {
		c.logger.Warn("run failed", "err", err)
	}
	c.state.FinishRun(resp, err)

	problemID := 0
	if p, ok := c.state.Active(); ok {
		problemID = p.ID
	}
	c.journal.RecordRun(ctx, problemID, req, c.state.Output(), err)
	return true
}

// AskAIHint requests a spoken hint for the active problem and starts
// playback. It reports whether a request was sent.
func (c *Controller) AskAIHint(ctx context.Context) bool {
	req, ok := c.state.BeginHint()
	if !ok {
		return false
	}

	a, err := RequestHint(ctx, c.backend, c.player, req)
	c.lastErr = err
	if err != nil {
		c.logger.Warn("hint failed", "problem", req.ProblemID, "err", err)
	}
	c.state.FinishHint(err)
	c.journal.RecordHint(ctx, req, a, err)
	return true
}

// Greet calls the backend root.
func (c *Controller) Greet(ctx context.Context) (*api.Greeting, error) {
	return c.backend.Greeting(ctx)
}
