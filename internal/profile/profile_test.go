package profile

import (
	"reflect"
	"testing"

	"supportsim/internal/engine"
	"supportsim/internal/scenario"
)

func completedState(total int, timeMinutes, satisfaction float64, badges ...scenario.CompletionBadge) engine.SessionState {
	return engine.SessionState{
		Score: engine.Score{
			Total:              total,
			TimeToResolution:   timeMinutes,
			SatisfactionRating: satisfaction,
			Breakdown: engine.Breakdown{
				BestPractices:    float64(total) * 0.1,
				EscalationTiming: float64(total) * 0.2,
			},
		},
		CompletionStatus: engine.CompletionStatus{
			IsCompleted:  true,
			FinalScore:   max(0, total),
			BadgesEarned: badges,
		},
	}
}

func TestFoldTwoCategoriesIndependently(t *testing.T) {
	network := &scenario.Scenario{ID: "net-1", Category: scenario.CategoryNetwork}
	telephony := &scenario.Scenario{ID: "tel-1", Category: scenario.CategoryTelephony}

	p := New()
	p = FoldCompletion(p, network, completedState(70, 20, 4.0))
	p = FoldCompletion(p, telephony, completedState(90, 30, 3.5))

	if got := p.SkillLevels[scenario.CategoryNetwork]; got != 7 {
		t.Errorf("network skill = %d, want 7", got)
	}
	if got := p.SkillLevels[scenario.CategoryTelephony]; got != 9 {
		t.Errorf("telephony skill = %d, want 9", got)
	}
	if got := p.SkillLevels[scenario.CategorySecurity]; got != 0 {
		t.Errorf("untouched category moved to %d", got)
	}
	if p.TotalScore != 160 {
		t.Errorf("total score = %d, want 160", p.TotalScore)
	}
	if len(p.CompletedScenarios) != 2 {
		t.Errorf("completed = %v, want two entries", p.CompletedScenarios)
	}
}

func TestSkillLevelClampsAt100(t *testing.T) {
	scn := &scenario.Scenario{ID: "net-big", Category: scenario.CategoryNetwork}
	p := New()
	for i := 0; i < 30; i++ {
		p = FoldCompletion(p, scn, completedState(95, 10, 4.0))
	}
	if got := p.SkillLevels[scenario.CategoryNetwork]; got != 100 {
		t.Errorf("skill = %d, want clamp at 100", got)
	}
}

func TestMinimumSkillGain(t *testing.T) {
	scn := &scenario.Scenario{ID: "rough", Category: scenario.CategoryHardware}
	p := FoldCompletion(New(), scn, completedState(-20, 15, 1.5))

	if got := p.SkillLevels[scenario.CategoryHardware]; got != 1 {
		t.Errorf("skill = %d, want minimum gain of 1", got)
	}
	if p.TotalScore != 0 {
		t.Errorf("total score = %d, negative attempt must not subtract", p.TotalScore)
	}
}

func TestCompletedSetDeduplicatesScenarioIDs(t *testing.T) {
	scn := &scenario.Scenario{ID: "net-1", Category: scenario.CategoryNetwork}
	p := New()
	p = FoldCompletion(p, scn, completedState(50, 10, 3.0))
	p = FoldCompletion(p, scn, completedState(60, 10, 3.0))

	if got := p.CompletedScenarios; !reflect.DeepEqual(got, []string{"net-1"}) {
		t.Errorf("completed = %v, want single net-1 entry", got)
	}
	// Score and skill still accumulate on replays.
	if p.TotalScore != 110 {
		t.Errorf("total score = %d, want 110", p.TotalScore)
	}
}

func TestBadgesAccumulateWithoutDedup(t *testing.T) {
	badge := scenario.CompletionBadge{ID: "expert", Name: "Expert"}
	net := &scenario.Scenario{ID: "net-1", Category: scenario.CategoryNetwork}
	tel := &scenario.Scenario{ID: "tel-1", Category: scenario.CategoryTelephony}

	p := New()
	p = FoldCompletion(p, net, completedState(80, 10, 4.0, badge))
	p = FoldCompletion(p, tel, completedState(85, 10, 4.0, badge))

	if len(p.Achievements) != 2 {
		t.Errorf("achievements = %d entries, want 2 (same badge id kept twice)", len(p.Achievements))
	}
}

func TestRunningAverages(t *testing.T) {
	net := &scenario.Scenario{ID: "net-1", Category: scenario.CategoryNetwork}
	tel := &scenario.Scenario{ID: "tel-1", Category: scenario.CategoryTelephony}

	p := New()
	p = FoldCompletion(p, net, completedState(70, 20, 4.0))
	if p.AvgResolutionTime != 20 {
		t.Errorf("avg resolution = %v, want 20", p.AvgResolutionTime)
	}
	if p.SatisfactionAvg != 4.0 {
		t.Errorf("satisfaction avg = %v, want 4.0", p.SatisfactionAvg)
	}

	p = FoldCompletion(p, tel, completedState(90, 40, 3.0))
	if p.TotalTimeSpent != 60 {
		t.Errorf("total time = %v, want 60", p.TotalTimeSpent)
	}
	if p.AvgResolutionTime != 30 {
		t.Errorf("avg resolution = %v, want 30", p.AvgResolutionTime)
	}
	if p.SatisfactionAvg != 3.5 {
		t.Errorf("satisfaction avg = %v, want 3.5", p.SatisfactionAvg)
	}
}

func TestFoldIsPure(t *testing.T) {
	scn := &scenario.Scenario{ID: "net-1", Category: scenario.CategoryNetwork}
	before := New()
	snapshot := New()

	FoldCompletion(before, scn, completedState(70, 20, 4.0))

	if !reflect.DeepEqual(before, snapshot) {
		t.Fatal("FoldCompletion mutated its input profile")
	}
}
