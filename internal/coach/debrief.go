// Package coach produces an optional LLM-written narrative debrief for
// a completed scenario attempt. The debrief is advisory prose only; it
// never feeds back into scores, badges, or the learner profile.
package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"supportsim/internal/engine"
	"supportsim/internal/llm"
	"supportsim/internal/scenario"
)

// Config holds configuration for the debrief coach.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.5,
	}
}

// Coach generates debriefs through an LLM provider.
type Coach struct {
	provider llm.Provider
	cfg      Config
}

// New creates a debrief coach.
func New(provider llm.Provider, cfg Config) *Coach {
	return &Coach{provider: provider, cfg: cfg}
}

// Debrief is the parsed LLM output.
type Debrief struct {
	Summary        string   `json:"summary"`
	MoodNarrative  string   `json:"mood_narrative"`
	CoachingPoints []string `json:"coaching_points"`
}

// debriefInput is the template context for the user message.
type debriefInput struct {
	Title        string
	Category     scenario.Category
	Difficulty   scenario.Difficulty
	FinalScore   int
	PathPct      float64
	Satisfaction float64
	TimeMinutes  float64
	FinalMood    string
	Decisions    []engine.Decision
	Mistakes     []engine.Mistake
}

// Generate asks the LLM for a narrative debrief of a finished attempt.
// The session must already be completed.
func (c *Coach) Generate(ctx context.Context, scn *scenario.Scenario, state engine.SessionState) (*Debrief, error) {
	if !state.CompletionStatus.IsCompleted {
		return nil, fmt.Errorf("debrief requires a completed session")
	}

	ctx = llm.WithPurpose(ctx, "session-debrief")

	userMsg, err := buildDebriefMessage(scn, state)
	if err != nil {
		return nil, fmt.Errorf("build debrief prompt: %w", err)
	}

	resp, err := c.provider.Generate(ctx, llm.Request{
		System: debriefSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      DebriefSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM debrief failed: %w", err)
	}

	var d Debrief
	if err := json.Unmarshal(resp.Content, &d); err != nil {
		return nil, fmt.Errorf("failed to parse debrief response: %w", err)
	}
	return &d, nil
}

const debriefSystemPrompt = `You are an experienced IT support team lead reviewing a trainee's performance in a simulated incident. You are given the full decision log of their attempt.

Instructions:
- Be specific: reference the actual decisions and mistakes in the log, not generalities.
- Be encouraging but honest. Name what went wrong plainly.
- Coaching points must be actions the trainee can take next attempt, not platitudes.
- Keep the summary to two or three sentences.`

var debriefUserTemplate = template.Must(template.New("debrief").Parse(`Scenario: {{.Title}} ({{.Category}}, {{.Difficulty}})
Final score: {{.FinalScore}}
Optimal path coverage: {{printf "%.0f" .PathPct}}%
Client satisfaction: {{printf "%.1f" .Satisfaction}}/5.0
Time to resolution: {{printf "%.1f" .TimeMinutes}} minutes
Client mood at close: {{.FinalMood}}

Decision log:
{{range .Decisions}}- [{{if .WasOptimal}}optimal{{else}}off-path{{end}}] {{.Action}} ({{if ge .ScoreDelta 0}}+{{end}}{{.ScoreDelta}})
{{end}}
{{- if .Mistakes}}
Mistakes:
{{range .Mistakes}}- {{.Kind}}: {{.Description}}
{{end}}
{{- else}}
No mistakes were made.
{{end}}`))

func buildDebriefMessage(scn *scenario.Scenario, state engine.SessionState) (string, error) {
	input := debriefInput{
		Title:        scn.Title,
		Category:     scn.Category,
		Difficulty:   scn.Difficulty,
		FinalScore:   state.CompletionStatus.FinalScore,
		PathPct:      state.Score.OptimalPathPct,
		Satisfaction: state.Score.SatisfactionRating,
		TimeMinutes:  state.Score.TimeToResolution,
		FinalMood:    state.ClientMood.String(),
		Decisions:    state.DecisionHistory,
		Mistakes:     state.Mistakes,
	}
	var buf bytes.Buffer
	if err := debriefUserTemplate.Execute(&buf, input); err != nil {
		return "", err
	}
	return buf.String(), nil
}
