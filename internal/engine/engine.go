// Package engine implements the scenario progression and scoring core:
// an order-enforcing decision engine that validates each learner action
// against the scenario's optimal path one step at a time, tracks client
// mood and a multi-dimensional score, and finalizes the session into a
// completion report with badges and qualitative feedback.
package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"supportsim/internal/mood"
	"supportsim/internal/scenario"
)

// ErrAlreadyCompleted is returned by Complete when the session has
// already been finalized.
var ErrAlreadyCompleted = errors.New("engine: session already completed")

// Engine drives one learner's attempt at one scenario. It exclusively
// owns its SessionState; callers read state only through Snapshot and
// the result values. Not safe for concurrent use: one engine per
// learner flow, called serially.
type Engine struct {
	scn   *scenario.Scenario
	state SessionState
}

// New creates an engine for a fresh attempt at scn. The scenario is
// shared and read-only; the engine never mutates it.
func New(scn *scenario.Scenario) *Engine {
	now := time.Now()
	return &Engine{
		scn: scn,
		state: SessionState{
			ScenarioID:   scn.ID,
			ClientMood:   scn.StartMood,
			Resolution:   ResolutionInvestigating,
			Escalation:   EscalationNone,
			StartTime:    now,
			LastActivity: now,
			Score: Score{
				SatisfactionRating: mood.SatisfactionRating(scn.StartMood),
			},
			Tools: ToolUsage{DiagnosticsRun: []string{}},
		},
	}
}

// ProcessAction validates one learner action against the next required
// step and updates mood, score, and history. Every action produces a
// result; mistakes are returned as data, never as errors.
func (e *Engine) ProcessAction(action string, actionType scenario.ActionType) ActionResult {
	now := time.Now()
	next := e.scn.StepByOrder(e.state.CurrentStep + 1)

	var (
		isOptimal   bool
		scoreDelta  int
		newMood     = e.state.ClientMood
		mistakes    []Mistake
		feedbackMsg string
	)

	switch {
	case next != nil && next.Type == actionType && e.prerequisitesMet(next):
		isOptimal = true
		scoreDelta = next.ScoreImpact
		newMood = mood.Apply(e.state.ClientMood, next.MoodImpact.Direction, next.MoodImpact.Severity)
		feedbackMsg = fmt.Sprintf("Great! %s", next.MoodImpact.Reason)
		e.state.CurrentStep++
		if actionType == scenario.ActionEscalation {
			e.state.Escalation = EscalationRequested
		}

	case next != nil && next.Type == actionType:
		missing := e.missingPrerequisites(next)
		mistakes = append(mistakes, Mistake{
			Kind:        MistakeWrongOrder,
			Description: fmt.Sprintf("%s attempted without completing: %s", action, strings.Join(missing, ", ")),
			Timestamp:   now,
			Penalty:     -10,
			Consequence: "Client becomes more frustrated due to incomplete investigation",
		})
		scoreDelta = -10
		newMood = mood.WorsenStep(e.state.ClientMood)
		feedbackMsg = fmt.Sprintf("You should complete other diagnostic steps first. Missing: %s", strings.Join(missing, ", "))

	default:
		expected := "different action"
		if next != nil {
			expected = next.Action
		}
		mistakes = append(mistakes, Mistake{
			Kind:        MistakeMissedStep,
			Description: fmt.Sprintf("Expected %s but got %s", expected, action),
			Timestamp:   now,
			Penalty:     -5,
			Consequence: "Deviating from optimal troubleshooting methodology",
		})
		scoreDelta = -5
		if e.state.ClientMood != mood.Panicked {
			newMood = mood.Frustrated
		}
		feedbackMsg = "Consider following a more systematic troubleshooting approach."
	}

	stepID := fmt.Sprintf("step_%d", e.state.CurrentStep)
	if next != nil {
		stepID = next.ID
	}
	consequences := make([]string, 0, len(mistakes))
	for _, m := range mistakes {
		consequences = append(consequences, m.Consequence)
	}
	e.state.DecisionHistory = append(e.state.DecisionHistory, Decision{
		Timestamp:    now,
		StepID:       stepID,
		Action:       action,
		WasOptimal:   isOptimal,
		ScoreDelta:   scoreDelta,
		MoodImpact:   describeMoodShift(e.state.ClientMood, newMood, scoreDelta, feedbackMsg),
		Consequences: consequences,
	})
	e.state.Mistakes = append(e.state.Mistakes, mistakes...)
	e.recordMood(newMood, action, now)
	e.applyScore(scoreDelta, actionType)
	e.state.LastActivity = now

	return ActionResult{
		Mood:         newMood,
		ScoreDelta:   scoreDelta,
		Mistakes:     mistakes,
		Feedback:     feedbackMsg,
		AdvancedPath: isOptimal,
	}
}

// AccessTool records a tool visit and routes it through ProcessAction.
// The first visit to a tool kind is a full tool_access decision and
// stamps the first-access time exactly once. Revisits are downgraded:
// the monitoring dashboard becomes a repeat tool_access, the terminal
// becomes a diagnosis since the learner is now running more commands.
func (e *Engine) AccessTool(kind scenario.ToolKind, diagnostics ...string) ActionResult {
	now := time.Now()
	e.state.LastActivity = now

	switch kind {
	case scenario.ToolMonitoring:
		if !e.state.Tools.MonitoringChecked {
			e.state.Tools.MonitoringChecked = true
			e.state.Tools.MonitoringAt = now
			return e.ProcessAction("Check network monitoring dashboard", scenario.ActionToolAccess)
		}
		return e.ProcessAction("Review monitoring data again", scenario.ActionToolAccess)

	case scenario.ToolTerminal:
		e.state.Tools.DiagnosticsRun = append(e.state.Tools.DiagnosticsRun, diagnostics...)
		if !e.state.Tools.TerminalChecked {
			e.state.Tools.TerminalChecked = true
			e.state.Tools.TerminalAt = now
			return e.ProcessAction("Open remote terminal session for diagnostics", scenario.ActionToolAccess)
		}
		return e.ProcessAction("Run additional diagnostic commands", scenario.ActionDiagnosis)
	}

	return ActionResult{Mood: e.state.ClientMood, Feedback: "Tool accessed"}
}

// Progress returns the percentage of the optimal path completed.
func (e *Engine) Progress() float64 {
	return float64(e.state.CurrentStep) / float64(len(e.scn.OptimalPath)) * 100
}

// NextOptimalStep returns the next required step, or nil once the path
// is complete. Used for hint support.
func (e *Engine) NextOptimalStep() *scenario.DecisionStep {
	return e.scn.StepByOrder(e.state.CurrentStep + 1)
}

// CanAccessTool reports whether the presentation layer should enable
// the given tool. Tools unlock once the scenario is under way or when
// the next required step is itself a tool access.
func (e *Engine) CanAccessTool(kind scenario.ToolKind) bool {
	next := e.NextOptimalStep()
	if next == nil {
		return true
	}
	return next.Type == scenario.ActionToolAccess || e.state.CurrentStep > 0
}

// SetResolutionStatus updates the narrative resolution signal.
func (e *Engine) SetResolutionStatus(s ResolutionStatus) {
	e.state.Resolution = s
}

// Snapshot returns a deep copy of the session state. Two snapshots
// taken with no intervening action are equal.
func (e *Engine) Snapshot() SessionState {
	s := e.state
	s.MoodHistory = append([]MoodChange(nil), e.state.MoodHistory...)
	s.DecisionHistory = make([]Decision, len(e.state.DecisionHistory))
	for i, d := range e.state.DecisionHistory {
		d.Consequences = append([]string(nil), d.Consequences...)
		s.DecisionHistory[i] = d
	}
	s.Mistakes = append([]Mistake(nil), e.state.Mistakes...)
	s.Tools.DiagnosticsRun = append([]string(nil), e.state.Tools.DiagnosticsRun...)
	s.CompletionStatus.BadgesEarned = append([]scenario.CompletionBadge(nil), e.state.CompletionStatus.BadgesEarned...)
	s.CompletionStatus.Feedback = copyFeedback(e.state.CompletionStatus.Feedback)
	return s
}

// Restore replaces the session state with a previously snapshotted one.
// Used by the persistence layer to resume an attempt.
func (e *Engine) Restore(s SessionState) {
	e.state = s
}

// Complete finalizes the session: computes time to resolution, clamps
// the final score to >= 0, evaluates badges, and synthesizes feedback.
// Calling it a second time is a caller bug and returns
// ErrAlreadyCompleted.
func (e *Engine) Complete() (CompletionStatus, error) {
	if e.state.CompletionStatus.IsCompleted {
		return CompletionStatus{}, ErrAlreadyCompleted
	}

	endTime := time.Now()
	e.state.Score.TimeToResolution = endTime.Sub(e.state.StartTime).Minutes()

	final := e.state.Score.Total
	if final < 0 {
		final = 0
	}

	e.state.CompletionStatus = CompletionStatus{
		IsCompleted:    true,
		CompletionTime: endTime,
		FinalScore:     final,
		BadgesEarned:   e.evaluateBadges(),
		Feedback:       e.buildFeedback(),
	}
	if e.state.Escalation == EscalationRequested {
		e.state.Escalation = EscalationCompleted
	}
	e.state.Resolution = ResolutionResolved
	return e.state.CompletionStatus, nil
}

func (e *Engine) prerequisitesMet(step *scenario.DecisionStep) bool {
	return len(e.missingPrerequisites(step)) == 0
}

func (e *Engine) missingPrerequisites(step *scenario.DecisionStep) []string {
	var missing []string
	for _, pre := range step.ExpectedBefore {
		if !e.hasDecision(pre) {
			missing = append(missing, pre)
		}
	}
	return missing
}

func (e *Engine) hasDecision(stepID string) bool {
	for _, d := range e.state.DecisionHistory {
		if d.StepID == stepID {
			return true
		}
	}
	return false
}

// recordMood appends to the mood history only when the value actually
// changed.
func (e *Engine) recordMood(newMood mood.Mood, trigger string, now time.Time) {
	if newMood == e.state.ClientMood {
		return
	}
	e.state.MoodHistory = append(e.state.MoodHistory, MoodChange{
		From:      e.state.ClientMood,
		To:        newMood,
		Reason:    fmt.Sprintf("Action: %s", trigger),
		Trigger:   trigger,
		Timestamp: now,
	})
	e.state.ClientMood = newMood
}

// applyScore adds the delta to the total and distributes the fixed
// per-type fractions into the breakdown. The fractions do not sum to 1,
// so the breakdown is a diagnostic lens rather than a partition.
func (e *Engine) applyScore(delta int, actionType scenario.ActionType) {
	e.state.Score.Total += delta

	d := float64(delta)
	switch actionType {
	case scenario.ActionToolAccess:
		e.state.Score.Breakdown.ToolUtilization += d * 0.4
		e.state.Score.Breakdown.Efficiency += d * 0.3
	case scenario.ActionDiagnosis:
		e.state.Score.Breakdown.Accuracy += d * 0.5
		e.state.Score.Breakdown.BestPractices += d * 0.3
	case scenario.ActionEscalation:
		e.state.Score.Breakdown.EscalationTiming += d * 0.6
		e.state.Score.Breakdown.Efficiency += d * 0.2
	case scenario.ActionResponse:
		e.state.Score.Breakdown.ClientSatisfaction += d * 0.5
	}

	e.state.Score.SatisfactionRating = mood.SatisfactionRating(e.state.ClientMood)

	optimal := 0
	for _, d := range e.state.DecisionHistory {
		if d.WasOptimal {
			optimal++
		}
	}
	e.state.Score.OptimalPathPct = float64(optimal) / float64(len(e.scn.OptimalPath)) * 100
}

// describeMoodShift derives the mood-impact descriptor recorded on a
// decision from the observed before/after pair.
func describeMoodShift(before, after mood.Mood, scoreDelta int, reason string) mood.Impact {
	dir := mood.Maintain
	switch {
	case after < before:
		dir = mood.Improve
	case after > before:
		dir = mood.Worsen
	}
	sev := mood.Minor
	if scoreDelta > 15 || scoreDelta < -15 {
		sev = mood.Major
	}
	return mood.Impact{Direction: dir, Severity: sev, Reason: reason}
}

func copyFeedback(f Feedback) Feedback {
	f.Strengths = append([]string(nil), f.Strengths...)
	f.Improvements = append([]string(nil), f.Improvements...)
	f.RecommendedTraining = append([]string(nil), f.RecommendedTraining...)
	f.NextScenarios = append([]string(nil), f.NextScenarios...)
	return f
}
