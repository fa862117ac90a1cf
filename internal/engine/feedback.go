package engine

import "fmt"

// OverallRating buckets the final performance for display.
type OverallRating string

const (
	RatingExcellent        OverallRating = "excellent"
	RatingGood             OverallRating = "good"
	RatingSatisfactory     OverallRating = "satisfactory"
	RatingNeedsImprovement OverallRating = "needs_improvement"
	RatingPoor             OverallRating = "poor"
)

// Rate buckets a score by fixed thresholds.
func Rate(score int) OverallRating {
	switch {
	case score >= 90:
		return RatingExcellent
	case score >= 75:
		return RatingGood
	case score >= 60:
		return RatingSatisfactory
	case score >= 40:
		return RatingNeedsImprovement
	default:
		return RatingPoor
	}
}

var ratingSummaries = map[OverallRating]string{
	RatingExcellent:        "Outstanding performance! You demonstrated expert-level troubleshooting skills and maintained excellent client communication throughout the scenario.",
	RatingGood:             "Good performance overall. You successfully resolved the issue with solid technical skills and reasonable client interaction.",
	RatingSatisfactory:     "Adequate performance. The issue was resolved but there is room for improvement in methodology and client communication.",
	RatingNeedsImprovement: "The issue was eventually worked through, but the approach needs attention. Review the optimal path and where your decisions diverged from it.",
	RatingPoor:             "Performance needs improvement. Consider reviewing troubleshooting best practices and client communication techniques.",
}

// buildFeedback synthesizes the qualitative completion report from the
// score breakdown, mistake log, and scenario metadata.
func (e *Engine) buildFeedback() Feedback {
	score := e.state.Score.Total
	bd := e.state.Score.Breakdown

	fb := Feedback{
		Summary:             ratingSummaries[Rate(score)],
		Strengths:           []string{},
		Improvements:        []string{},
		RecommendedTraining: []string{},
		NextScenarios:       []string{},
	}

	if bd.ToolUtilization > 15 {
		fb.Strengths = append(fb.Strengths, "Effective use of diagnostic tools")
	}
	if bd.ClientSatisfaction > 10 {
		fb.Strengths = append(fb.Strengths, "Strong client communication skills")
	}
	if bd.EscalationTiming > 15 {
		fb.Strengths = append(fb.Strengths, "Appropriate escalation timing")
	}
	if len(e.state.Mistakes) == 0 {
		fb.Strengths = append(fb.Strengths, "Error-free troubleshooting approach")
	}

	if bd.Efficiency < 10 {
		fb.Improvements = append(fb.Improvements, "Work on troubleshooting efficiency")
		fb.RecommendedTraining = append(fb.RecommendedTraining, "Time management in IT support")
	}
	if bd.Accuracy < 10 {
		fb.Improvements = append(fb.Improvements, "Focus on diagnostic accuracy")
		fb.RecommendedTraining = append(fb.RecommendedTraining, "Advanced diagnostic techniques")
	}
	if e.state.Score.SatisfactionRating < 3.0 {
		fb.Improvements = append(fb.Improvements, "Enhance client communication skills")
		fb.RecommendedTraining = append(fb.RecommendedTraining, "Customer service excellence")
	}

	category := e.scn.Category
	switch {
	case score >= 80:
		fb.NextScenarios = append(fb.NextScenarios,
			fmt.Sprintf("Advanced %s scenarios", category), "Multi-system failure scenarios")
	case score >= 60:
		fb.NextScenarios = append(fb.NextScenarios,
			fmt.Sprintf("Intermediate %s scenarios", category), "Cross-departmental issues")
	default:
		fb.NextScenarios = append(fb.NextScenarios,
			fmt.Sprintf("Basic %s scenarios", category), "Fundamental troubleshooting")
	}

	return fb
}
