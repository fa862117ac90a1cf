package scenario

import "supportsim/internal/mood"

// ActionType classifies a learner action within an incident.
type ActionType string

const (
	ActionToolAccess ActionType = "tool_access"
	ActionDiagnosis  ActionType = "diagnosis"
	ActionResponse   ActionType = "response"
	ActionEscalation ActionType = "escalation"
)

// AllActionTypes returns the action types in display order.
func AllActionTypes() []ActionType {
	return []ActionType{ActionResponse, ActionToolAccess, ActionDiagnosis, ActionEscalation}
}

// DisplayName returns a human-readable label for the action type.
func (t ActionType) DisplayName() string {
	switch t {
	case ActionToolAccess:
		return "Tool access"
	case ActionDiagnosis:
		return "Diagnosis"
	case ActionResponse:
		return "Client response"
	case ActionEscalation:
		return "Escalation"
	default:
		return string(t)
	}
}

// ToolKind identifies a diagnostic tool surface.
type ToolKind string

const (
	// ToolMonitoring is the network monitoring dashboard.
	ToolMonitoring ToolKind = "monitoring"
	// ToolTerminal is the remote terminal used to run diagnostic commands.
	ToolTerminal ToolKind = "terminal"
)

// Difficulty grades a scenario for the learner.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Severity grades the simulated incident's business impact.
type Severity string

const (
	SeverityLow       Severity = "low"
	SeverityMedium    Severity = "medium"
	SeverityHigh      Severity = "high"
	SeverityCritical  Severity = "critical"
	SeverityEmergency Severity = "emergency"
)

// Category is the incident's skill category, used for profile skill levels.
type Category string

const (
	CategoryNetwork        Category = "network"
	CategorySecurity       Category = "security"
	CategoryHardware       Category = "hardware"
	CategorySoftware       Category = "software"
	CategoryTelephony      Category = "telephony"
	CategoryInfrastructure Category = "infrastructure"
)

// AllCategories returns the skill categories in display order.
func AllCategories() []Category {
	return []Category{
		CategoryNetwork,
		CategorySecurity,
		CategoryHardware,
		CategorySoftware,
		CategoryTelephony,
		CategoryInfrastructure,
	}
}

// DecisionStep is one authored node on a scenario's optimal path.
// Created at authoring time, read-only thereafter.
type DecisionStep struct {
	ID     string      `json:"id"`
	Type   ActionType  `json:"type"`
	Action string      `json:"action"`
	// ExpectedBefore lists step IDs that must appear in the decision
	// history before this step is accepted.
	ExpectedBefore []string    `json:"expectedBefore,omitempty"`
	MoodImpact     mood.Impact `json:"moodImpact"`
	ScoreImpact    int         `json:"scoreImpact"`
	Required       bool        `json:"required"`
	Order          int         `json:"order"`
}

// BadgeCriteria is the AND-combined award conditions for a badge.
// Zero-valued fields are absent and vacuously satisfied.
type BadgeCriteria struct {
	MinScore           int      `json:"minScore,omitempty"`
	MaxTimeMinutes     float64  `json:"maxTime,omitempty"`
	PerfectPath        bool     `json:"perfectPath,omitempty"`
	ClientSatisfaction float64  `json:"clientSatisfaction,omitempty"`
	NoMistakes         bool     `json:"noMistakes,omitempty"`
	SpecificActions    []string `json:"specificActions,omitempty"`
}

// BadgeRarity grades how hard a badge is to earn.
type BadgeRarity string

const (
	RarityCommon    BadgeRarity = "common"
	RarityUncommon  BadgeRarity = "uncommon"
	RarityRare      BadgeRarity = "rare"
	RarityEpic      BadgeRarity = "epic"
	RarityLegendary BadgeRarity = "legendary"
)

// CompletionBadge is an authored award evaluated at scenario completion.
type CompletionBadge struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Icon        string        `json:"icon"`
	Criteria    BadgeCriteria `json:"criteria"`
	Rarity      BadgeRarity   `json:"rarity"`
}

// ConversationStep is one scripted beat of the client conversation,
// consumed by the presentation layer.
type ConversationStep struct {
	ID             int    `json:"id"`
	Description    string `json:"description"`
	ExpectedAction string `json:"expectedUserAction"`
	ClientLine     string `json:"clientResponse"`
	ToolSuggestion string `json:"toolSuggestion,omitempty"`
	ScoreWeight    int    `json:"scoreWeight"`
}

// Scenario is a complete authored incident definition. Shared, read-only,
// long-lived: loaded once and referenced by many sessions.
type Scenario struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description"`
	Difficulty    Difficulty         `json:"difficulty"`
	Severity      Severity           `json:"severity"`
	Category      Category           `json:"category"`
	EstimatedTime string             `json:"estimatedTime"`
	UsersAffected string             `json:"usersAffected"`
	RootCause     string             `json:"rootCause"`
	Objectives    []string           `json:"objectives"`
	SolutionPath  []string           `json:"solutionPath"`
	RequiredTools []string           `json:"requiredTools"`
	StartMood     mood.Mood          `json:"startMood"`
	OptimalPath   []DecisionStep     `json:"optimalPath"`
	Badges        []CompletionBadge  `json:"completionBadges"`
	Conversation  []ConversationStep `json:"conversation,omitempty"`
}

// StepByOrder returns the optimal-path step with the given order index,
// or nil if none exists.
func (s *Scenario) StepByOrder(order int) *DecisionStep {
	for i := range s.OptimalPath {
		if s.OptimalPath[i].Order == order {
			return &s.OptimalPath[i]
		}
	}
	return nil
}

// StepByID returns the optimal-path step with the given ID, or nil.
func (s *Scenario) StepByID(id string) *DecisionStep {
	for i := range s.OptimalPath {
		if s.OptimalPath[i].ID == id {
			return &s.OptimalPath[i]
		}
	}
	return nil
}
