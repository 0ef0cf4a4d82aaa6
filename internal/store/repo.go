package store

import (
	"context"
	"time"
)

// QueryOpts configures journal queries.
type QueryOpts struct {
	Limit     int    // max results (0 = unlimited)
	SessionID string // restrict to one session when set
}

// RequestEventData captures one HTTP call to the backend.
type RequestEventData struct {
	SessionID    string
	RequestID    string
	Method       string
	Endpoint     string
	StatusCode   int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// RunEventData captures one code execution.
type RunEventData struct {
	SessionID string
	ProblemID int
	Language  string
	Code      string
	Output    string
	Success   bool
}

// HintEventData captures one hint request.
type HintEventData struct {
	SessionID    string
	ProblemID    int
	AudioBytes   int
	ContentType  string
	Success      bool
	ErrorMessage string
}

// ActivityKind distinguishes entries returned by RecentActivity.
type ActivityKind string

const (
	ActivityRun  ActivityKind = "run"
	ActivityHint ActivityKind = "hint"
)

// Activity is one run or hint entry as listed by the history views.
type Activity struct {
	Sequence  int64
	Timestamp time.Time
	SessionID string
	Kind      ActivityKind
	ProblemID int
	Detail    string // run output, or the hint's content type / error
	Success   bool
}

// RequestStats aggregates request events per endpoint.
type RequestStats struct {
	Endpoint     string
	Total        int
	Failed       int
	AvgLatencyMs float64
}

// EventRepo provides append and query access to the journal.
type EventRepo interface {
	// AppendRequestEvent records a backend HTTP call.
	AppendRequestEvent(ctx context.Context, data RequestEventData) error

	// AppendRunEvent records a completed run.
	AppendRunEvent(ctx context.Context, data RunEventData) error

	// AppendHintEvent records a completed hint request.
	AppendHintEvent(ctx context.Context, data HintEventData) error

	// RecentActivity returns runs and hints, newest first.
	RecentActivity(ctx context.Context, opts QueryOpts) ([]Activity, error)

	// RequestStats summarizes request events by endpoint.
	RequestStats(ctx context.Context) ([]RequestStats, error)
}
