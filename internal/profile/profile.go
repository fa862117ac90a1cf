// Package profile folds completed scenario attempts into a learner's
// cross-scenario progress record.
package profile

import (
	"math"

	"supportsim/internal/engine"
	"supportsim/internal/scenario"
)

// LearnerProfile is one learner's cumulative progress across scenarios.
// Mutated only through FoldCompletion, once per completed attempt.
type LearnerProfile struct {
	CompletedScenarios []string                   `json:"completedScenarios"`
	TotalScore         int                        `json:"totalScore"`
	SkillLevels        map[scenario.Category]int  `json:"skillLevels"`
	Achievements       []scenario.CompletionBadge `json:"achievements"`
	TotalTimeSpent     float64                    `json:"totalTimeSpent"`
	AvgResolutionTime  float64                    `json:"averageResolutionTime"`
	SatisfactionAvg    float64                    `json:"clientSatisfactionAverage"`
	BestPractices      float64                    `json:"bestPracticesScore"`
	EscalationAccuracy float64                    `json:"escalationAccuracy"`
}

// New returns an empty profile with every skill category at zero.
func New() LearnerProfile {
	levels := make(map[scenario.Category]int, len(scenario.AllCategories()))
	for _, c := range scenario.AllCategories() {
		levels[c] = 0
	}
	return LearnerProfile{
		CompletedScenarios: []string{},
		SkillLevels:        levels,
		Achievements:       []scenario.CompletionBadge{},
	}
}

// FoldCompletion returns p updated with one finished attempt. Pure: the
// input profile is not modified.
//
// The best-practices and escalation-accuracy figures are a two-point
// blend of the previous value with the new attempt's breakdown, not a
// true running mean over all attempts. Product has not confirmed
// whether a full mean is intended, so the blend is kept as is. Repeated
// badge ids across attempts are likewise kept without deduplication.
func FoldCompletion(p LearnerProfile, scn *scenario.Scenario, state engine.SessionState) LearnerProfile {
	out := p
	out.CompletedScenarios = append([]string(nil), p.CompletedScenarios...)
	out.Achievements = append([]scenario.CompletionBadge(nil), p.Achievements...)
	out.SkillLevels = make(map[scenario.Category]int, len(p.SkillLevels))
	for c, lvl := range p.SkillLevels {
		out.SkillLevels[c] = lvl
	}

	if !contains(out.CompletedScenarios, scn.ID) {
		out.CompletedScenarios = append(out.CompletedScenarios, scn.ID)
	}

	total := state.Score.Total
	if total > 0 {
		out.TotalScore += total
	}

	gain := total / 10
	if gain < 1 {
		gain = 1
	}
	lvl := out.SkillLevels[scn.Category] + gain
	if lvl > 100 {
		lvl = 100
	}
	out.SkillLevels[scn.Category] = lvl

	out.Achievements = append(out.Achievements, state.CompletionStatus.BadgesEarned...)

	out.TotalTimeSpent += state.Score.TimeToResolution
	completed := float64(len(out.CompletedScenarios))
	out.AvgResolutionTime = out.TotalTimeSpent / completed

	prevSatisfaction := p.SatisfactionAvg * (completed - 1)
	out.SatisfactionAvg = (prevSatisfaction + state.Score.SatisfactionRating) / completed

	out.BestPractices = (p.BestPractices + state.Score.Breakdown.BestPractices) / 2
	out.EscalationAccuracy = (p.EscalationAccuracy + math.Max(0, state.Score.Breakdown.EscalationTiming)) / 2

	return out
}

func contains(ids []string, id string) bool {
	for _, s := range ids {
		if s == id {
			return true
		}
	}
	return false
}
