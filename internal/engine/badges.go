package engine

import "supportsim/internal/scenario"

// evaluateBadges returns every scenario badge whose criteria the
// session satisfies. Criteria are AND-combined; absent criteria are
// vacuously satisfied.
func (e *Engine) evaluateBadges() []scenario.CompletionBadge {
	earned := []scenario.CompletionBadge{}
	for _, b := range e.scn.Badges {
		if e.meetsCriteria(b.Criteria) {
			earned = append(earned, b)
		}
	}
	return earned
}

// meetsCriteria checks one badge's criteria against session state.
// MinScore compares against the raw running total, not the clamped
// final score: a negative total can never earn a score-gated badge.
func (e *Engine) meetsCriteria(c scenario.BadgeCriteria) bool {
	if c.MinScore != 0 && e.state.Score.Total < c.MinScore {
		return false
	}
	if c.MaxTimeMinutes != 0 && e.state.Score.TimeToResolution > c.MaxTimeMinutes {
		return false
	}
	if c.PerfectPath && e.state.Score.OptimalPathPct < 100 {
		return false
	}
	if c.ClientSatisfaction != 0 && e.state.Score.SatisfactionRating < c.ClientSatisfaction {
		return false
	}
	if c.NoMistakes && len(e.state.Mistakes) > 0 {
		return false
	}
	for _, id := range c.SpecificActions {
		if !e.hasDecision(id) {
			return false
		}
	}
	return true
}
