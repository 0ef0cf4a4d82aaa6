package workspace

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/codevoice/internal/api"
	"github.com/abhisek/codevoice/internal/audio"
	"github.com/abhisek/codevoice/internal/catalog"
	"github.com/abhisek/codevoice/internal/config"
	"github.com/abhisek/codevoice/internal/store"
)

// fakeBackend implements api.Backend with canned responses.
type fakeBackend struct {
	problems    []catalog.Problem
	problemsErr error
	execResp    *api.ExecuteResponse
	execErr     error
	audio       *api.Audio
	hintErr     error
	greeting    *api.Greeting

	execCalls []api.ExecuteRequest
	hintCalls []api.HintRequest
}

func (f *fakeBackend) ListProblems(context.Context) ([]catalog.Problem, error) {
	return f.problems, f.problemsErr
}

func (f *fakeBackend) Execute(_ context.Context, req api.ExecuteRequest) (*api.ExecuteResponse, error) {
	f.execCalls = append(f.execCalls, req)
	return f.execResp, f.execErr
}

func (f *fakeBackend) AskAI(_ context.Context, req api.HintRequest) (*api.Audio, error) {
	f.hintCalls = append(f.hintCalls, req)
	return f.audio, f.hintErr
}

func (f *fakeBackend) Greeting(context.Context) (*api.Greeting, error) {
	if f.greeting == nil {
		return nil, &api.ErrUnavailable{Endpoint: "/", Err: errors.New("refused")}
	}
	return f.greeting, nil
}

type recordingPlayer struct {
	clips []audio.Clip
	err   error
}

func (r *recordingPlayer) Play(c audio.Clip) error {
	r.clips = append(r.clips, c)
	return r.err
}

func newTestController(backend *fakeBackend, player audio.Player) *Controller {
	return NewController(backend, player, Options{Policy: config.CatalogErrorsSilent, Language: "python"})
}

func TestControllerLoadCatalog(t *testing.T) {
	backend := &fakeBackend{problems: testProblems()}
	c := newTestController(backend, nil)

	require.NoError(t, c.LoadCatalog(context.Background()))
	p, ok := c.State().Active()
	require.True(t, ok)
	assert.Equal(t, 1, p.ID)
}

func TestControllerLoadCatalogFailure(t *testing.T) {
	backend := &fakeBackend{problemsErr: errors.New("refused")}
	c := NewController(backend, nil, Options{Policy: config.CatalogErrorsMessage})

	require.Error(t, c.LoadCatalog(context.Background()))
	assert.Empty(t, c.State().Problems())
	assert.Equal(t, BackendUnreachableNotice, c.State().Output())
}

func TestControllerRunCode(t *testing.T) {
	backend := &fakeBackend{
		problems: testProblems(),
		execResp: &api.ExecuteResponse{Run: &api.RunResult{Stdout: "5"}},
	}
	c := newTestController(backend, nil)
	require.NoError(t, c.LoadCatalog(context.Background()))
	c.State().SetCode("print(5)")

	assert.True(t, c.RunCode(context.Background()))

	require.Len(t, backend.execCalls, 1)
	assert.Equal(t, api.ExecuteRequest{Code: "print(5)", Language: "python"}, backend.execCalls[0])
	assert.Equal(t, "5", c.State().Output())
	assert.False(t, c.State().IsRunning())
}

func TestControllerRunCodeFailure(t *testing.T) {
	backend := &fakeBackend{problems: testProblems(), execErr: &api.ErrStatus{Endpoint: "/execute", StatusCode: 500}}
	c := newTestController(backend, nil)
	require.NoError(t, c.LoadCatalog(context.Background()))

	assert.True(t, c.RunCode(context.Background()))
	assert.Equal(t, ExecutionErrorMessage, c.State().Output())
	assert.False(t, c.State().IsRunning())

	var statusErr *api.ErrStatus
	require.ErrorAs(t, c.LastErr(), &statusErr)
	assert.Equal(t, 500, statusErr.StatusCode)
}

func TestControllerRunCodeWhileBusySendsNothing(t *testing.T) {
	backend := &fakeBackend{problems: testProblems(), execResp: &api.ExecuteResponse{}}
	c := newTestController(backend, nil)
	require.NoError(t, c.LoadCatalog(context.Background()))

	_, ok := c.State().BeginRun()
	require.True(t, ok)

	assert.False(t, c.RunCode(context.Background()))
	assert.Empty(t, backend.execCalls)
}

func TestControllerAskAIHint(t *testing.T) {
	backend := &fakeBackend{
		problems: testProblems(),
		execResp: &api.ExecuteResponse{Run: &api.RunResult{Stdout: "5"}},
		audio:    &api.Audio{Data: []byte("ID3"), ContentType: "audio/mpeg"},
	}
	player := &recordingPlayer{}
	c := newTestController(backend, player)
	require.NoError(t, c.LoadCatalog(context.Background()))
	require.True(t, c.RunCode(context.Background()))

	assert.True(t, c.AskAIHint(context.Background()))

	require.Len(t, backend.hintCalls, 1)
	assert.Equal(t, 1, backend.hintCalls[0].ProblemID)
	require.Len(t, player.clips, 1)
	assert.Equal(t, audio.Clip{Data: []byte("ID3"), ContentType: "audio/mpeg", Name: "problem-1"}, player.clips[0])
	assert.Equal(t, "5"+MentorSpeakingNotice, c.State().Output())
	assert.False(t, c.State().IsAIThinking())
}

func TestControllerAskAIHintFailures(t *testing.T) {
	tests := []struct {
		name    string
		hintErr error
		playErr error
	}{
		{"backend error", &api.ErrStatus{Endpoint: "/ask-ai", StatusCode: 502}, nil},
		{"player error", nil, audio.ErrNoPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &fakeBackend{
				problems: testProblems(),
				audio:    &api.Audio{Data: []byte("ID3"), ContentType: "audio/mpeg"},
				hintErr:  tt.hintErr,
			}
			c := newTestController(backend, &recordingPlayer{err: tt.playErr})
			require.NoError(t, c.LoadCatalog(context.Background()))

			assert.True(t, c.AskAIHint(context.Background()))
			assert.Equal(t, HintErrorNotice, c.State().Output())
			assert.False(t, c.State().IsAIThinking())
		})
	}
}

func TestControllerAskAIHintWithoutProblem(t *testing.T) {
	backend := &fakeBackend{problems: []catalog.Problem{}}
	c := newTestController(backend, &recordingPlayer{})
	require.NoError(t, c.LoadCatalog(context.Background()))

	assert.False(t, c.AskAIHint(context.Background()))
	assert.Empty(t, backend.hintCalls)
}

func TestControllerGreet(t *testing.T) {
	c := newTestController(&fakeBackend{greeting: &api.Greeting{Message: "hi", Status: "ok"}}, nil)
	g, err := c.Greet(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", g.Status)
}

func TestControllerJournalsRunsAndHints(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	backend := &fakeBackend{
		problems: testProblems(),
		execResp: &api.ExecuteResponse{Run: &api.RunResult{Stderr: "Traceback"}},
		hintErr:  errors.New("tts down"),
	}
	c := NewController(backend, &recordingPlayer{}, Options{
		Language: "python",
		Journal:  NewJournal(st.EventRepo(), "sess-42", nil),
	})
	ctx := context.Background()
	require.NoError(t, c.LoadCatalog(ctx))
	require.True(t, c.RunCode(ctx))
	require.True(t, c.AskAIHint(ctx))

	got, err := st.EventRepo().RecentActivity(ctx, store.QueryOpts{SessionID: "sess-42"})
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, store.ActivityHint, got[0].Kind)
	assert.False(t, got[0].Success)
	assert.Equal(t, "tts down", got[0].Detail)

	assert.Equal(t, store.ActivityRun, got[1].Kind)
	assert.Equal(t, 1, got[1].ProblemID)
	assert.Equal(t, "Traceback", got[1].Detail)
	assert.True(t, got[1].Success)
}

func TestNilJournalIsNoop(t *testing.T) {
	var j *Journal
	j.RecordRun(context.Background(), 1, api.ExecuteRequest{}, "", nil)
	j.RecordHint(context.Background(), api.HintRequest{}, nil, nil)
}
