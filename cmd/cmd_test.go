package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/codevoice/internal/config"
)

// isolate clears CODEVOICE_* variables and points XDG_DATA_HOME at a temp
// directory so tests never touch the user's journal.
func isolate(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CODEVOICE_BASE_URL", "CODEVOICE_LANGUAGE", "CODEVOICE_CATALOG_ERRORS",
		"CODEVOICE_TIMEOUT", "CODEVOICE_PLAYER", "CODEVOICE_AUDIO_DIR",
		"CODEVOICE_JOURNAL", "CODEVOICE_DB", "CODEVOICE_LOG",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_DATA_HOME", t.TempDir())
}

func resetFlags(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// execute runs the root command with args, resetting flag state left by
// earlier runs.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd.PersistentFlags())
	for _, c := range rootCmd.Commands() {
		resetFlags(c.Flags())
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func fakeBackend(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /problems", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "title": "Two Sum", "difficulty": "Easy", "description": "d", "template": "def f():\n    pass", "test_case": "print(f())"},
			{"id": 2, "title": "Reverse", "difficulty": "Medium", "description": "d", "template": "", "test_case": ""},
			{"id": 0, "title": "Warmup", "difficulty": "Easy", "description": "d", "template": "print('zero')", "test_case": ""},
		})
	})
	mux.HandleFunc("POST /execute", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Code     string `json:"code"`
			Language string `json:"language"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"run": map[string]string{"stdout": "ran " + req.Language + ": " + req.Code, "stderr": ""},
		})
	})
	mux.HandleFunc("POST /ask-ai", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3fake"))
	})
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Hello from CodeVoice", "status": "ok"})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoadConfigPrecedence(t *testing.T) {
	isolate(t)
	t.Setenv("CODEVOICE_BASE_URL", "http://env.example:9000/")
	t.Setenv("CODEVOICE_LANGUAGE", "javascript")

	c := &cobra.Command{}
	addConfigFlags(c.Flags())
	require.NoError(t, c.Flags().Parse([]string{"--language", "go", "--timeout", "5s", "--catalog-errors", "message"}))

	cfg, err := loadConfig(c)
	require.NoError(t, err)
	assert.Equal(t, "http://env.example:9000", cfg.BaseURL)
	assert.Equal(t, "go", cfg.Language)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, config.CatalogErrorsMessage, cfg.CatalogErrors)
}

func TestLoadConfigRejectsBadPolicy(t *testing.T) {
	isolate(t)
	c := &cobra.Command{}
	addConfigFlags(c.Flags())
	require.NoError(t, c.Flags().Parse([]string{"--catalog-errors", "loud"}))

	_, err := loadConfig(c)
	assert.Error(t, err)
}

func TestProblemsCommand(t *testing.T) {
	isolate(t)
	srv := fakeBackend(t)

	out, err := execute(t, "problems", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Two Sum")
	assert.Contains(t, out, "Medium")
}

func TestProblemsCommandUnreachable(t *testing.T) {
	isolate(t)
	srv := fakeBackend(t)
	url := srv.URL
	srv.Close()

	_, err := execute(t, "problems", "--base-url", url)
	assert.Error(t, err)
}

func TestRunCommandWithProblem(t *testing.T) {
	isolate(t)
	srv := fakeBackend(t)

	out, err := execute(t, "run", "--base-url", srv.URL, "--problem", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "ran python: def f():")
	assert.Contains(t, out, "# Test Case")
}

func TestRunCommandWithProblemZero(t *testing.T) {
	isolate(t)
	srv := fakeBackend(t)

	out, err := execute(t, "run", "--base-url", srv.URL, "--problem", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "ran python: print('zero')")
}

func TestRunCommandWithFile(t *testing.T) {
	isolate(t)
	srv := fakeBackend(t)
	file := filepath.Join(t.TempDir(), "main.py")
	require.NoError(t, os.WriteFile(file, []byte("print(42)"), 0o644))

	out, err := execute(t, "run", "--base-url", srv.URL, "--language", "python3", file)
	require.NoError(t, err)
	assert.Contains(t, out, "ran python3: print(42)")
}

func TestRunCommandUnknownProblem(t *testing.T) {
	isolate(t)
	srv := fakeBackend(t)

	_, err := execute(t, "run", "--base-url", srv.URL, "--problem", "99")
	assert.Error(t, err)
}

func TestRunCommandNeedsInput(t *testing.T) {
	isolate(t)
	_, err := execute(t, "run")
	assert.ErrorContains(t, err, "nothing to run")
}

func TestRunCommandBackendDown(t *testing.T) {
	isolate(t)
	srv := fakeBackend(t)
	url := srv.URL
	srv.Close()
	file := filepath.Join(t.TempDir(), "main.py")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	out, err := execute(t, "run", "--base-url", url, file)
	assert.Error(t, err)
	assert.Contains(t, out, "Error connecting to execution engine.")
}

func TestHintCommandArchivesAudio(t *testing.T) {
	isolate(t)
	srv := fakeBackend(t)
	dir := t.TempDir()

	out, err := execute(t, "hint", "--base-url", srv.URL, "--problem", "1", "--player", "true", "--save-audio", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "[AI Mentor is speaking...]")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".mp3", filepath.Ext(entries[0].Name()))
}

func TestHintCommandRequiresProblem(t *testing.T) {
	isolate(t)
	_, err := execute(t, "hint")
	assert.ErrorContains(t, err, "--problem")
}

func TestPingCommand(t *testing.T) {
	isolate(t)
	srv := fakeBackend(t)

	out, err := execute(t, "ping", "--base-url", srv.URL)
	require.NoError(t, err)
	assert.Contains(t, out, "Hello from CodeVoice (status: ok)")
}

func TestJournalRoundTrip(t *testing.T) {
	isolate(t)
	srv := fakeBackend(t)
	db := filepath.Join(t.TempDir(), "journal.db")

	_, err := execute(t, "run", "--base-url", srv.URL, "--problem", "1", "--journal", "--db", db)
	require.NoError(t, err)

	out, err := execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "run")
	assert.Contains(t, out, "ran python")

	out, err = execute(t, "stats", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "/problems")
	assert.Contains(t, out, "/execute")

	_, err = execute(t, "reset", "--db", db)
	assert.Error(t, err)

	out, err = execute(t, "reset", "--db", db, "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Journal cleared.")

	out, err = execute(t, "history", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "Journal is empty.")
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "codevoice")
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "a b", summarize("a\n  b", 10))
	assert.Equal(t, "abcd…", summarize("abcdefgh", 5))
}

func TestBackendHost(t *testing.T) {
	assert.Equal(t, "localhost:8000", backendHost("http://localhost:8000"))
	assert.Equal(t, "::bad", backendHost("::bad"))
}
