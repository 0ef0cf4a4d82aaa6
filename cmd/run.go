package cmd

import (
	"errors"
	"fmt"
	"io"
	"net/url"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/codevoice/internal/api"
	"github.com/abhisek/codevoice/internal/app"
	"github.com/abhisek/codevoice/internal/audio"
	"github.com/abhisek/codevoice/internal/config"
	"github.com/abhisek/codevoice/internal/logging"
	"github.com/abhisek/codevoice/internal/screens/workspace"
	"github.com/abhisek/codevoice/internal/store"
	ws "github.com/abhisek/codevoice/internal/workspace"
)

// runtime bundles the dependencies shared by the TUI and the headless
// commands. Close releases them in reverse order.
type runtime struct {
	cfg       config.Config
	logger    *logging.Logger
	client    *api.Client
	store     *store.Store
	journal   *ws.Journal
	sessionID string
	closers   []func() error
}

// newRuntime loads configuration and opens the logger, the journal (when
// enabled) and the backend client.
func newRuntime(cmd *cobra.Command) (*runtime, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, sessionID: uuid.NewString()}

	logger, closeLog, err := logging.Open(cfg.LogPath)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	rt.logger = logger
	rt.closers = append(rt.closers, closeLog)

	clientOpts := []api.Option{
		api.WithUserAgent("codevoice/" + version),
		api.WithTimeout(cfg.Timeout),
		api.WithObserver(api.LogObserver(logger)),
	}

	if cfg.Journal.Enabled {
		dbPath, err := resolveDBPath(cfg)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("open store: %w", err)
		}
		rt.store = st
		rt.closers = append(rt.closers, st.Close)
		rt.journal = ws.NewJournal(st.EventRepo(), rt.sessionID, logger)
		clientOpts = append(clientOpts, api.WithObserver(api.JournalObserver(st.EventRepo(), rt.sessionID, logger)))
	}

	rt.client = api.NewClient(cfg.BaseURL, clientOpts...)
	logger.Info("session started", "session", rt.sessionID, "backend", cfg.BaseURL, "journal", cfg.Journal.Enabled)
	return rt, nil
}

// Close releases everything newRuntime opened.
func (rt *runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil && rt.logger != nil {
			rt.logger.Warn("close failed", "err", err)
		}
	}
	rt.closers = nil
}

// eventRepo returns the journal repository, or nil when the journal is
// disabled.
func (rt *runtime) eventRepo() store.EventRepo {
	if rt.store == nil {
		return nil
	}
	return rt.store.EventRepo()
}

// newPlayer builds the hint player. Without a usable player hints are
// still requested and journaled but not heard; a warning goes to warn.
// The returned wait blocks until started playback has finished.
func (rt *runtime) newPlayer(warn io.Writer) (audio.Player, func()) {
	var (
		p    audio.Player
		wait = func() {}
	)

	ep, err := audio.NewExecPlayer(rt.cfg.Audio.Player, rt.logger)
	switch {
	case err == nil:
		p = ep
		wait = ep.Wait
	case errors.Is(err, audio.ErrNoPlayer):
		fmt.Fprintln(warn, "No audio player found:", err)
		fmt.Fprintln(warn, "Hints will be requested but not played. Set --player or CODEVOICE_PLAYER.")
		p = audio.NopPlayer{}
	default:
		fmt.Fprintln(warn, "Audio player unavailable:", err)
		p = audio.NopPlayer{}
	}

	if rt.cfg.Audio.SaveDir != "" {
		p = audio.WithArchive(p, rt.cfg.Audio.SaveDir, rt.logger)
	}
	return p, wait
}

// newController builds a headless controller over the runtime.
func (rt *runtime) newController(player audio.Player) *ws.Controller {
	return ws.NewController(rt.client, player, ws.Options{
		Policy:   rt.cfg.CatalogErrors,
		Language: rt.cfg.Language,
		Journal:  rt.journal,
		Logger:   rt.logger,
	})
}

// backendHost is the header status text for the TUI.
func backendHost(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return baseURL
	}
	return u.Host
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command, variant app.Variant) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.Close()

	player, _ := rt.newPlayer(cmd.ErrOrStderr())

	opts := app.Options{
		Variant: variant,
		Status:  backendHost(rt.cfg.BaseURL),
		Workspace: workspace.Deps{
			Backend:   rt.client,
			Player:    player,
			Journal:   rt.journal,
			EventRepo: rt.eventRepo(),
			Logger:    rt.logger,
			Policy:    rt.cfg.CatalogErrors,
			Language:  rt.cfg.Language,
		},
	}
	return app.Run(cmd.Context(), opts)
}
