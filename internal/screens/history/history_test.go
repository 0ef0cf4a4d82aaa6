package history

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/codevoice/internal/router"
	"github.com/abhisek/codevoice/internal/store"
)

type fakeRepo struct {
	activity    []store.Activity
	stats       []store.RequestStats
	activityErr error
	statsErr    error
	gotOpts     store.QueryOpts
}

func (f *fakeRepo) AppendRequestEvent(context.Context, store.RequestEventData) error { return nil }
func (f *fakeRepo) AppendRunEvent(context.Context, store.RunEventData) error         { return nil }
func (f *fakeRepo) AppendHintEvent(context.Context, store.HintEventData) error       { return nil }

func (f *fakeRepo) RecentActivity(_ context.Context, opts store.QueryOpts) ([]store.Activity, error) {
	f.gotOpts = opts
	return f.activity, f.activityErr
}

func (f *fakeRepo) RequestStats(context.Context) ([]store.RequestStats, error) {
	return f.stats, f.statsErr
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	require.NotNil(t, cmd)
	s.Update(cmd())
}

func TestLoadsActivityAndStats(t *testing.T) {
	repo := &fakeRepo{
		activity: []store.Activity{
			{Sequence: 2, Timestamp: time.Now(), Kind: store.ActivityHint, ProblemID: 1, Detail: "audio/mpeg", Success: true},
			{Sequence: 1, Timestamp: time.Now(), Kind: store.ActivityRun, ProblemID: 1, Detail: "[0, 1]\nmore", Success: true},
		},
		stats: []store.RequestStats{{Endpoint: "/execute", Total: 4, Failed: 1, AvgLatencyMs: 120}},
	}
	s := New(context.Background(), repo)
	load(t, s)

	assert.Equal(t, Limit, repo.gotOpts.Limit)
	view := s.View(120, 40)
	assert.Contains(t, view, "REQUESTS")
	assert.Contains(t, view, "/execute")
	assert.Contains(t, view, "3/4")
	assert.Contains(t, view, "audio/mpeg")
	assert.Contains(t, view, "[0, 1]")
	assert.NotContains(t, view, "more")
}

func TestStatsFailureStillShowsActivity(t *testing.T) {
	repo := &fakeRepo{
		activity: []store.Activity{{Timestamp: time.Now(), Kind: store.ActivityRun, ProblemID: 3, Detail: "ok", Success: true}},
		statsErr: errors.New("boom"),
	}
	s := New(context.Background(), repo)
	load(t, s)

	view := s.View(120, 40)
	assert.NotContains(t, view, "REQUESTS")
	assert.Contains(t, view, "ACTIVITY")
}

func TestActivityError(t *testing.T) {
	s := New(context.Background(), &fakeRepo{activityErr: errors.New("disk gone")})
	load(t, s)
	assert.Contains(t, s.View(100, 30), "disk gone")
}

func TestEmptyHistory(t *testing.T) {
	s := New(context.Background(), &fakeRepo{})
	assert.Contains(t, s.View(100, 30), "Loading")
	load(t, s)
	assert.Contains(t, s.View(100, 30), "Nothing yet")
}

func TestNavigationAndExpand(t *testing.T) {
	repo := &fakeRepo{activity: []store.Activity{
		{Kind: store.ActivityRun, Detail: "first"},
		{Kind: store.ActivityRun, Detail: "line1\nsecond-detail"},
	}}
	s := New(context.Background(), repo)
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 1, s.selected)

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Contains(t, s.View(100, 30), "second-detail")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	assert.Equal(t, router.PopScreenMsg{}, cmd())
}
