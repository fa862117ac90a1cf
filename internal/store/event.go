package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"
)

// sequenceCounter manages the global monotonic sequence number shared
// across all event types. Decisions and completions live in separate
// tables, so per-table auto-increment IDs can't establish cross-type
// ordering. The shared counter assigns a single increasing sequence to
// every event regardless of type, which keeps the log replayable in
// exact occurrence order.
//
// The mutex serializes within the process; the RETURNING clause makes
// the increment atomic at the database level.
type sequenceCounter struct {
	mu sync.Mutex
	db *sql.DB
}

// newSequenceCounter creates a counter and ensures the tracking table exists.
func newSequenceCounter(db *sql.DB) (*sequenceCounter, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return nil, fmt.Errorf("create sequence table: %w", err)
	}

	_, err = db.Exec(`INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`)
	if err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}

	return &sequenceCounter{db: db}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	var seq int64
	err := sc.db.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// eventRepo implements EventRepo on the raw connection.
type eventRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *eventRepo) AppendDecision(ctx context.Context, data DecisionEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO decision_events
			(sequence, timestamp, attempt_id, scenario_id, step_id, action, action_type, was_optimal, score_delta, mood_after)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, time.Now().UTC(), data.AttemptID, data.ScenarioID, data.StepID,
		data.Action, data.ActionType, data.WasOptimal, data.ScoreDelta, data.MoodAfter,
	)
	if err != nil {
		return fmt.Errorf("append decision event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListDecisions(ctx context.Context, attemptID string) ([]DecisionEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT sequence, timestamp, attempt_id, scenario_id, step_id, action, action_type, was_optimal, score_delta, mood_after
		 FROM decision_events WHERE attempt_id = ? ORDER BY sequence`, attemptID)
	if err != nil {
		return nil, fmt.Errorf("list decision events: %w", err)
	}
	defer rows.Close()

	var events []DecisionEvent
	for rows.Next() {
		var e DecisionEvent
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.AttemptID, &e.ScenarioID, &e.StepID,
			&e.Action, &e.ActionType, &e.WasOptimal, &e.ScoreDelta, &e.MoodAfter); err != nil {
			return nil, fmt.Errorf("scan decision event: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepo) AppendCompletion(ctx context.Context, data CompletionEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	badges, err := json.Marshal(data.BadgeIDs)
	if err != nil {
		return fmt.Errorf("marshal badge ids: %w", err)
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO completion_events
			(sequence, timestamp, attempt_id, scenario_id, final_score, time_minutes, satisfaction, badges)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, time.Now().UTC(), data.AttemptID, data.ScenarioID,
		data.FinalScore, data.TimeMinutes, data.Satisfaction, string(badges),
	)
	if err != nil {
		return fmt.Errorf("append completion event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO llm_events
			(sequence, timestamp, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		seq, time.Now().UTC(), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
		data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("append llm event: %w", err)
	}
	return nil
}

func (r *eventRepo) ListCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEvent, error) {
	query := `SELECT sequence, timestamp, attempt_id, scenario_id, final_score, time_minutes, satisfaction, badges
		FROM completion_events WHERE sequence > ?`
	args := []any{opts.After}
	if opts.ScenarioID != "" {
		query += ` AND scenario_id = ?`
		args = append(args, opts.ScenarioID)
	}
	query += ` ORDER BY sequence`
	if opts.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list completion events: %w", err)
	}
	defer rows.Close()

	var events []CompletionEvent
	for rows.Next() {
		var e CompletionEvent
		var badges string
		if err := rows.Scan(&e.Sequence, &e.Timestamp, &e.AttemptID, &e.ScenarioID,
			&e.FinalScore, &e.TimeMinutes, &e.Satisfaction, &badges); err != nil {
			return nil, fmt.Errorf("scan completion event: %w", err)
		}
		if err := json.Unmarshal([]byte(badges), &e.BadgeIDs); err != nil {
			return nil, fmt.Errorf("unmarshal badge ids: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
