package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type eventRepo struct {
	store *Store
}

var _ EventRepo = (*eventRepo)(nil)

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (r *eventRepo) AppendRequestEvent(ctx context.Context, data RequestEventData) error {
	_, err := r.store.db.ExecContext(ctx, `INSERT INTO request_events
		(sequence, timestamp, session_id, request_id, method, endpoint, status_code, latency_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.store.nextSequence(), now(), data.SessionID, data.RequestID, data.Method, data.Endpoint,
		data.StatusCode, data.LatencyMs, boolInt(data.Success), data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendRunEvent(ctx context.Context, data RunEventData) error {
	_, err := r.store.db.ExecContext(ctx, `INSERT INTO run_events
		(sequence, timestamp, session_id, problem_id, language, code, output, success)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.store.nextSequence(), now(), data.SessionID, data.ProblemID, data.Language,
		data.Code, data.Output, boolInt(data.Success),
	)
	if err != nil {
		return fmt.Errorf("save run event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendHintEvent(ctx context.Context, data HintEventData) error {
	_, err := r.store.db.ExecContext(ctx, `INSERT INTO hint_events
		(sequence, timestamp, session_id, problem_id, audio_bytes, content_type, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.store.nextSequence(), now(), data.SessionID, data.ProblemID, data.AudioBytes,
		data.ContentType, boolInt(data.Success), data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("save hint event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentActivity(ctx context.Context, opts QueryOpts) ([]Activity, error) {
	var b strings.Builder
	var args []any

	b.WriteString(`SELECT sequence, timestamp, session_id, kind, problem_id, detail, success FROM (
		SELECT sequence, timestamp, session_id, 'run' AS kind, problem_id, output AS detail, success FROM run_events
		UNION ALL
		SELECT sequence, timestamp, session_id, 'hint' AS kind, problem_id,
			CASE WHEN success = 1 THEN content_type ELSE error_message END AS detail, success FROM hint_events
	)`)
	if opts.SessionID != "" {
		b.WriteString(" WHERE session_id = ?")
		args = append(args, opts.SessionID)
	}
	b.WriteString(" ORDER BY sequence DESC")
	if opts.Limit > 0 {
		b.WriteString(" LIMIT ?")
		args = append(args, opts.Limit)
	}

	rows, err := r.store.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var (
			a       Activity
			ts      string
			kind    string
			success int
		)
		if err := rows.Scan(&a.Sequence, &ts, &a.SessionID, &kind, &a.ProblemID, &a.Detail, &success); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		a.Kind = ActivityKind(kind)
		a.Success = success == 1
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *eventRepo) RequestStats(ctx context.Context) ([]RequestStats, error) {
	rows, err := r.store.db.QueryContext(ctx, `SELECT endpoint, COUNT(*),
		SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), AVG(latency_ms)
		FROM request_events GROUP BY endpoint ORDER BY endpoint`)
	if err != nil {
		return nil, fmt.Errorf("query request stats: %w", err)
	}
	defer rows.Close()

	var out []RequestStats
	for rows.Next() {
		var s RequestStats
		if err := rows.Scan(&s.Endpoint, &s.Total, &s.Failed, &s.AvgLatencyMs); err != nil {
			return nil, fmt.Errorf("scan request stats: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
