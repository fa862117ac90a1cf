package coach

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"supportsim/internal/engine"
	"supportsim/internal/llm"
	"supportsim/internal/mood"
	"supportsim/internal/scenario"
)

func completedSession() (*scenario.Scenario, engine.SessionState) {
	scn := &scenario.Scenario{
		ID:         "network-outage",
		Title:      "Network Outage",
		Category:   scenario.CategoryNetwork,
		Difficulty: scenario.DifficultyBeginner,
	}
	state := engine.SessionState{
		ScenarioID: "network-outage",
		ClientMood: mood.Satisfied,
		Score: engine.Score{
			Total:              70,
			OptimalPathPct:     100,
			SatisfactionRating: 4.0,
			TimeToResolution:   12.5,
		},
		DecisionHistory: []engine.Decision{
			{StepID: "assess_scope", Action: "Acknowledge the outage", WasOptimal: true, ScoreDelta: 10},
			{StepID: "check_monitoring", Action: "Check the dashboard", WasOptimal: true, ScoreDelta: 15},
		},
		CompletionStatus: engine.CompletionStatus{
			IsCompleted: true,
			FinalScore:  70,
		},
	}
	return scn, state
}

func TestCoachGenerate(t *testing.T) {
	resp := json.RawMessage(`{"summary":"Solid methodical run.","mood_narrative":"The client calmed down steadily.","coaching_points":["Escalate sooner on emergencies"]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	c := New(mock, DefaultConfig())

	scn, state := completedSession()
	d, err := c.Generate(context.Background(), scn, state)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if d.Summary != "Solid methodical run." {
		t.Errorf("summary = %q", d.Summary)
	}
	if len(d.CoachingPoints) != 1 {
		t.Errorf("coaching points = %v, want one entry", d.CoachingPoints)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("provider called %d times, want 1", mock.CallCount())
	}
	req := mock.Calls[0]
	if req.Schema != DebriefSchema {
		t.Error("request did not carry the debrief schema")
	}
	prompt := req.Messages[0].Content
	for _, want := range []string{"Network Outage", "Final score: 70", "Acknowledge the outage", "No mistakes were made."} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestCoachRequiresCompletedSession(t *testing.T) {
	mock := llm.NewMockProvider()
	c := New(mock, DefaultConfig())

	scn, state := completedSession()
	state.CompletionStatus.IsCompleted = false

	if _, err := c.Generate(context.Background(), scn, state); err == nil {
		t.Fatal("expected error for incomplete session")
	}
	if mock.CallCount() != 0 {
		t.Error("provider should not be called for incomplete sessions")
	}
}

func TestCoachPromptListsMistakes(t *testing.T) {
	resp := json.RawMessage(`{"summary":"s","mood_narrative":"m","coaching_points":["p"]}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	c := New(mock, DefaultConfig())

	scn, state := completedSession()
	state.Mistakes = []engine.Mistake{
		{Kind: engine.MistakeWrongOrder, Description: "Escalated before diagnostics"},
	}

	if _, err := c.Generate(context.Background(), scn, state); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	prompt := mock.Calls[0].Messages[0].Content
	if !strings.Contains(prompt, "wrong_order: Escalated before diagnostics") {
		t.Errorf("prompt missing mistake line:\n%s", prompt)
	}
	if strings.Contains(prompt, "No mistakes were made.") {
		t.Error("prompt claims no mistakes despite one recorded")
	}
}
