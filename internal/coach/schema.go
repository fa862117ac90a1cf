package coach

import "supportsim/internal/llm"

// DebriefSchema defines the JSON schema for LLM debrief responses.
var DebriefSchema = &llm.Schema{
	Name:        "session-debrief",
	Description: "Narrative coaching debrief for a completed support scenario attempt",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Two to three sentence narrative of how the attempt went",
			},
			"mood_narrative": map[string]any{
				"type":        "string",
				"description": "One sentence describing the client's emotional arc during the attempt",
			},
			"coaching_points": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    1,
				"maxItems":    5,
				"description": "Specific, actionable coaching advice for the learner",
			},
		},
		"required":             []any{"summary", "mood_narrative", "coaching_points"},
		"additionalProperties": false,
	},
}
