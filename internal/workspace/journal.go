package workspace

import (
	"context"

	"github.com/abhisek/codevoice/internal/api"
	"github.com/abhisek/codevoice/internal/logging"
	"github.com/abhisek/codevoice/internal/store"
)

// Journal records finished runs and hints. A nil *Journal records nothing.
type Journal struct {
	repo      store.EventRepo
	sessionID string
	logger    *logging.Logger
}

// NewJournal creates a Journal writing to repo under sessionID.
func NewJournal(repo store.EventRepo, sessionID string, logger *logging.Logger) *Journal {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Journal{repo: repo, sessionID: sessionID, logger: logger}
}

// RecordRun stores one finished run. output is the console text shown
// for it.
func (j *Journal) RecordRun(ctx context.Context, problemID int, req api.ExecuteRequest, output string, runErr error) {
	if j == nil {
		return
	}
	err := j.repo.AppendRunEvent(ctx, store.RunEventData{
		SessionID: j.sessionID,
		ProblemID: problemID,
		Language:  req.Language,
		Code:      req.Code,
		Output:    output,
		Success:   runErr == nil,
	})
	if err != nil {
		j.logger.Warn("failed to journal run", "err", err)
	}
}

// RecordHint stores one finished hint request.
func (j *Journal) RecordHint(ctx context.Context, req api.HintRequest, a *api.Audio, hintErr error) {
	if j == nil {
		return
	}
	data := store.HintEventData{
		SessionID: j.sessionID,
		ProblemID: req.ProblemID,
		Success:   hintErr == nil,
	}
	if a != nil {
		data.AudioBytes = len(a.Data)
		data.ContentType = a.ContentType
	}
	if hintErr != nil {
		data.ErrorMessage = hintErr.Error()
	}
	if err := j.repo.AppendHintEvent(ctx, data); err != nil {
		j.logger.Warn("failed to journal hint", "err", err)
	}
}
