package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit      int    // max results (0 = unlimited)
	After      int64  // sequence > After
	ScenarioID string // filter by scenario
}

// DecisionEventData captures one processed learner action.
type DecisionEventData struct {
	AttemptID  string
	ScenarioID string
	StepID     string
	Action     string
	ActionType string
	WasOptimal bool
	ScoreDelta int
	MoodAfter  string
}

// DecisionEvent is a stored decision with its assigned ordering.
type DecisionEvent struct {
	Sequence  int64
	Timestamp time.Time
	DecisionEventData
}

// CompletionEventData captures one finished attempt.
type CompletionEventData struct {
	AttemptID    string
	ScenarioID   string
	FinalScore   int
	TimeMinutes  float64
	Satisfaction float64
	BadgeIDs     []string
}

// CompletionEvent is a stored completion with its assigned ordering.
type CompletionEvent struct {
	Sequence  int64
	Timestamp time.Time
	CompletionEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventRepo provides append and query access to attempt events. Events
// are append-only; the shared sequence counter gives every event a
// single increasing position regardless of type.
type EventRepo interface {
	AppendDecision(ctx context.Context, data DecisionEventData) error
	ListDecisions(ctx context.Context, attemptID string) ([]DecisionEvent, error)
	AppendCompletion(ctx context.Context, data CompletionEventData) error
	ListCompletions(ctx context.Context, opts QueryOpts) ([]CompletionEvent, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// LLM event inspection, used by the llm subcommands.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// SaveRepo manages versioned save slots. A slot holds one JSON
// document; loading a slot written by an incompatible version discards
// it rather than risking a bad restore.
type SaveRepo interface {
	Save(ctx context.Context, slot string, v any) error
	Load(ctx context.Context, slot string, v any) (bool, error)
	Clear(ctx context.Context, slot string) error
}

// Well-known save slots.
const (
	SlotProfile = "profile"
	SlotSession = "session"
)
