package scenario

// catalogSchema is the JSON Schema every embedded scenario file must
// satisfy before structural validation runs.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":            map[string]any{"type": "string", "minLength": 1},
		"title":         map[string]any{"type": "string", "minLength": 1},
		"description":   map[string]any{"type": "string"},
		"difficulty":    map[string]any{"type": "string", "enum": []any{"beginner", "intermediate", "advanced"}},
		"severity":      map[string]any{"type": "string", "enum": []any{"low", "medium", "high", "critical", "emergency"}},
		"category":      map[string]any{"type": "string", "enum": []any{"network", "security", "hardware", "software", "telephony", "infrastructure"}},
		"estimatedTime": map[string]any{"type": "string"},
		"usersAffected": map[string]any{"type": "string"},
		"rootCause":     map[string]any{"type": "string"},
		"startMood":     map[string]any{"type": "string", "enum": []any{"grateful", "satisfied", "cooperative", "neutral", "frustrated", "angry", "panicked"}},
		"objectives":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"solutionPath":  map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"requiredTools": map[string]any{"type": "array", "items": map[string]any{"type": "string", "enum": []any{"monitoring", "terminal", "both"}}},
		"optimalPath": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":             map[string]any{"type": "string", "minLength": 1},
					"type":           map[string]any{"type": "string", "enum": []any{"tool_access", "diagnosis", "response", "escalation"}},
					"action":         map[string]any{"type": "string", "minLength": 1},
					"expectedBefore": map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
					"moodImpact": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"change":   map[string]any{"type": "string", "enum": []any{"improve", "worsen", "maintain"}},
							"severity": map[string]any{"type": "string", "enum": []any{"minor", "moderate", "major"}},
							"reason":   map[string]any{"type": "string"},
						},
						"required":             []any{"change", "severity", "reason"},
						"additionalProperties": false,
					},
					"scoreImpact": map[string]any{"type": "integer"},
					"required":    map[string]any{"type": "boolean"},
					"order":       map[string]any{"type": "integer", "minimum": 1},
				},
				"required":             []any{"id", "type", "action", "moodImpact", "scoreImpact", "required", "order"},
				"additionalProperties": false,
			},
		},
		"completionBadges": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"name":        map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
					"icon":        map[string]any{"type": "string"},
					"rarity":      map[string]any{"type": "string", "enum": []any{"common", "uncommon", "rare", "epic", "legendary"}},
					"criteria": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"minScore":           map[string]any{"type": "integer"},
							"maxTime":            map[string]any{"type": "number"},
							"perfectPath":        map[string]any{"type": "boolean"},
							"clientSatisfaction": map[string]any{"type": "number"},
							"noMistakes":         map[string]any{"type": "boolean"},
							"specificActions":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
						},
						"additionalProperties": false,
					},
				},
				"required":             []any{"id", "name", "criteria", "rarity"},
				"additionalProperties": false,
			},
		},
		"conversation": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":                 map[string]any{"type": "integer"},
					"description":        map[string]any{"type": "string"},
					"expectedUserAction": map[string]any{"type": "string"},
					"clientResponse":     map[string]any{"type": "string"},
					"toolSuggestion":     map[string]any{"type": "string", "enum": []any{"monitoring", "terminal", "both", "none"}},
					"scoreWeight":        map[string]any{"type": "integer"},
				},
				"required":             []any{"id", "clientResponse"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "title", "difficulty", "severity", "category", "startMood", "optimalPath", "completionBadges"},
	"additionalProperties": false,
}
