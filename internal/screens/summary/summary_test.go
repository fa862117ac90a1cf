package summary

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"supportsim/internal/coach"
	"supportsim/internal/engine"
	"supportsim/internal/mood"
	"supportsim/internal/scenario"
)

// completedState plays a 2-step scenario to completion and returns the
// final session state.
func completedState(t *testing.T) (*scenario.Scenario, engine.SessionState) {
	t.Helper()
	scn := &scenario.Scenario{
		ID:        "vpn-down",
		Title:     "VPN Down",
		Category:  scenario.CategoryNetwork,
		StartMood: mood.Frustrated,
		OptimalPath: []scenario.DecisionStep{
			{
				ID: "greet", Type: scenario.ActionResponse,
				Action:      "Acknowledge and gather details",
				MoodImpact:  mood.Impact{Direction: mood.Improve, Severity: mood.Minor, Reason: "Heard"},
				ScoreImpact: 40, Required: true, Order: 1,
			},
			{
				ID: "fix", Type: scenario.ActionDiagnosis,
				Action:      "Restart the VPN concentrator",
				MoodImpact:  mood.Impact{Direction: mood.Improve, Severity: mood.Major, Reason: "Fixed"},
				ScoreImpact: 45, Required: true, Order: 2,
			},
		},
		Badges: []scenario.CompletionBadge{
			{ID: "clean", Name: "Clean Sweep", Description: "No mistakes", Icon: "✦",
				Criteria: scenario.BadgeCriteria{NoMistakes: true}, Rarity: scenario.RarityEpic},
		},
	}

	e := engine.New(scn)
	for _, step := range scn.OptimalPath {
		res := e.ProcessAction(step.Action, step.Type)
		if !res.AdvancedPath {
			t.Fatalf("fixture step %q did not advance", step.ID)
		}
	}
	if _, err := e.Complete(); err != nil {
		t.Fatalf("complete: %v", err)
	}
	return scn, e.Snapshot()
}

func TestSummaryView(t *testing.T) {
	scn, state := completedState(t)
	s := New(scn, state, nil)

	view := s.View(90, 40)
	if !strings.Contains(view, "Incident resolved — 85 points") {
		t.Errorf("view should show the final score, got:\n%s", view)
	}
	if !strings.Contains(view, "Breakdown") {
		t.Error("view should include the score breakdown")
	}
	if !strings.Contains(view, "Clean Sweep") {
		t.Error("view should list earned badges")
	}
	if strings.Contains(view, "writing up the debrief") {
		t.Error("no debrief banner expected without a coach")
	}
}

func TestSummaryWaitsForDebrief(t *testing.T) {
	scn, state := completedState(t)
	c := coach.New(nil, coach.DefaultConfig())
	s := New(scn, state, c)

	view := s.View(90, 40)
	if !strings.Contains(view, "writing up the debrief") {
		t.Error("pending banner expected while the debrief generates")
	}

	s.Update(debriefReadyMsg{Debrief: &coach.Debrief{
		Summary:        "Fast, clean resolution.",
		MoodNarrative:  "The client calmed down quickly.",
		CoachingPoints: []string{"Keep confirming impact early."},
	}})

	view = s.View(90, 40)
	if strings.Contains(view, "writing up the debrief") {
		t.Error("pending banner should clear once the debrief arrives")
	}
	if !strings.Contains(view, "Fast, clean resolution.") {
		t.Error("debrief summary should be rendered")
	}
	if !strings.Contains(view, "Keep confirming impact early.") {
		t.Error("coaching points should be rendered")
	}
}

func TestSummaryDebriefErrorFallsBack(t *testing.T) {
	scn, state := completedState(t)
	c := coach.New(nil, coach.DefaultConfig())
	s := New(scn, state, c)

	s.Update(debriefReadyMsg{Err: errFake})

	view := s.View(90, 40)
	if strings.Contains(view, "writing up the debrief") {
		t.Error("pending banner should clear on error")
	}
	if strings.Contains(view, "Team lead debrief") {
		t.Error("no debrief section expected on error")
	}
}

func TestSummaryEnterPopsHome(t *testing.T) {
	scn, state := completedState(t)
	s := New(scn, state, nil)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("enter should navigate back home")
	}
}

type fakeErr string

func (e fakeErr) Error() string { return string(e) }

const errFake = fakeErr("debrief failed")
