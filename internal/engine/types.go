package engine

import (
	"time"

	"supportsim/internal/mood"
	"supportsim/internal/scenario"
)

// MistakeKind classifies a detected learner error. The taxonomy is open:
// only wrong_order and missed_step are produced by the decision engine
// itself, the rest are available to future detectors.
type MistakeKind string

const (
	MistakeWrongOrder    MistakeKind = "wrong_order"
	MistakeMissedStep    MistakeKind = "missed_step"
	MistakeBadEscalation MistakeKind = "inappropriate_escalation"
	MistakePoorComms     MistakeKind = "poor_communication"
	MistakeToolMisuse    MistakeKind = "tool_misuse"
)

// Mistake is one detected error. Mistakes are data, not failures: they
// ride along with a successful result and the session keeps going.
type Mistake struct {
	Kind        MistakeKind `json:"type"`
	Description string      `json:"description"`
	Timestamp   time.Time   `json:"timestamp"`
	Penalty     int         `json:"scoreImpact"`
	Consequence string      `json:"consequence"`
}

// MoodChange records one transition in the client's mood.
type MoodChange struct {
	From      mood.Mood `json:"from"`
	To        mood.Mood `json:"to"`
	Reason    string    `json:"reason"`
	Trigger   string    `json:"trigger"`
	Timestamp time.Time `json:"timestamp"`
}

// Decision is one processed learner action, optimal or not.
type Decision struct {
	Timestamp    time.Time   `json:"timestamp"`
	StepID       string      `json:"stepId"`
	Action       string      `json:"action"`
	WasOptimal   bool        `json:"wasOptimal"`
	ScoreDelta   int         `json:"scoreImpact"`
	MoodImpact   mood.Impact `json:"moodImpact"`
	Consequences []string    `json:"consequences,omitempty"`
}

// Breakdown decomposes the total score into six diagnostic dimensions.
// Each action type feeds fixed fractions of its score delta into a
// subset of dimensions, so the dimensions do not sum to the total.
type Breakdown struct {
	Efficiency         float64 `json:"efficiency"`
	Accuracy           float64 `json:"accuracy"`
	ClientSatisfaction float64 `json:"clientSatisfaction"`
	ToolUtilization    float64 `json:"toolUtilization"`
	EscalationTiming   float64 `json:"escalationTiming"`
	BestPractices      float64 `json:"bestPractices"`
}

// Score is the session's mutable scoring aggregate. Total is unclamped
// during play and clamped to >= 0 only at completion.
type Score struct {
	Total              int       `json:"total"`
	Breakdown          Breakdown `json:"breakdown"`
	TimeToResolution   float64   `json:"timeToResolution"`
	OptimalPathPct     float64   `json:"optimalPathPercentage"`
	SatisfactionRating float64   `json:"clientSatisfactionRating"`
}

// ToolUsage tracks per-tool first-access state and the diagnostic
// commands run, in order, duplicates allowed.
type ToolUsage struct {
	MonitoringChecked bool      `json:"monitoringChecked"`
	MonitoringAt      time.Time `json:"monitoringTimestamp,omitzero"`
	TerminalChecked   bool      `json:"terminalChecked"`
	TerminalAt        time.Time `json:"terminalTimestamp,omitzero"`
	DiagnosticsRun    []string  `json:"diagnosticsRun"`
}

// ResolutionStatus is a narrative signal, not a scoring input.
type ResolutionStatus string

const (
	ResolutionInvestigating ResolutionStatus = "investigating"
	ResolutionIdentified    ResolutionStatus = "identified"
	ResolutionResolving     ResolutionStatus = "resolving"
	ResolutionResolved      ResolutionStatus = "resolved"
)

// EscalationStatus tracks whether and how far the learner escalated.
type EscalationStatus string

const (
	EscalationNone      EscalationStatus = "none"
	EscalationRequested EscalationStatus = "requested"
	EscalationCompleted EscalationStatus = "completed"
)

// Feedback is the qualitative completion report.
type Feedback struct {
	Summary             string   `json:"summary"`
	Strengths           []string `json:"strengths"`
	Improvements        []string `json:"improvements"`
	RecommendedTraining []string `json:"recommendedTraining"`
	NextScenarios       []string `json:"nextScenarios"`
}

// CompletionStatus is populated exactly once, when the session is
// finalized.
type CompletionStatus struct {
	IsCompleted    bool                       `json:"isCompleted"`
	CompletionTime time.Time                  `json:"completionTime,omitzero"`
	FinalScore     int                        `json:"finalScore"`
	BadgesEarned   []scenario.CompletionBadge `json:"badgesEarned"`
	Feedback       Feedback                   `json:"feedback"`
}

// SessionState is the mutable heart of one scenario attempt. It is
// owned by exactly one Engine and mutated only through the engine's
// entry points; Snapshot returns deep copies for readers.
type SessionState struct {
	ScenarioID       string           `json:"scenarioId"`
	CurrentStep      int              `json:"currentStep"`
	ClientMood       mood.Mood        `json:"clientMood"`
	MoodHistory      []MoodChange     `json:"moodHistory"`
	Tools            ToolUsage        `json:"toolsAccessed"`
	Resolution       ResolutionStatus `json:"resolutionStatus"`
	Escalation       EscalationStatus `json:"escalationStatus"`
	DecisionHistory  []Decision       `json:"decisionHistory"`
	Mistakes         []Mistake        `json:"mistakesMade"`
	Score            Score            `json:"score"`
	StartTime        time.Time        `json:"startTime"`
	LastActivity     time.Time        `json:"lastActivity"`
	CompletionStatus CompletionStatus `json:"completionStatus"`
}

// ActionResult is the per-action output returned to the driving layer.
type ActionResult struct {
	Mood         mood.Mood `json:"moodChange"`
	ScoreDelta   int       `json:"scoreChange"`
	Mistakes     []Mistake `json:"mistakes"`
	Feedback     string    `json:"feedback"`
	AdvancedPath bool      `json:"nextStepEnabled"`
}
