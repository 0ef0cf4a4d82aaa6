package api

import (
	"context"

	"github.com/abhisek/codevoice/internal/logging"
	"github.com/abhisek/codevoice/internal/store"
)

// LogObserver logs every request at debug level and failures at warn level.
func LogObserver(logger *logging.Logger) Observer {
	return func(info RequestInfo) {
		kv := []any{
			"method", info.Method,
			"endpoint", info.Endpoint,
			"status", info.StatusCode,
			"latency", info.Latency,
			"request_id", info.RequestID,
		}
		if info.Err != nil {
			logger.Warn("backend request failed", append(kv, "err", info.Err)...)
			return
		}
		logger.Debug("backend request", kv...)
	}
}

// JournalObserver records every request as a journal event. Journal
// failures are logged and never affect the request.
func JournalObserver(repo store.EventRepo, sessionID string, logger *logging.Logger) Observer {
	return func(info RequestInfo) {
		data := store.RequestEventData{
			SessionID:  sessionID,
			RequestID:  info.RequestID,
			Method:     info.Method,
			Endpoint:   info.Endpoint,
			StatusCode: info.StatusCode,
			LatencyMs:  info.Latency.Milliseconds(),
			Success:    info.Err == nil,
		}
		if info.Err != nil {
			data.ErrorMessage = info.Err.Error()
		}
		if err := repo.AppendRequestEvent(context.Background(), data); err != nil {
			logger.Warn("failed to journal request event", "err", err)
		}
	}
}
