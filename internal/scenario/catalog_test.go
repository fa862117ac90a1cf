package scenario

import (
	"strings"
	"testing"
	"testing/fstest"

	"supportsim/internal/mood"
)

func TestLoadCatalogEmbedded(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	if len(c.All()) < 4 {
		t.Fatalf("expected at least 4 scenarios, got %d", len(c.All()))
	}

	s, err := c.ByID("network-outage")
	if err != nil {
		t.Fatalf("ByID(network-outage): %v", err)
	}
	if s.Category != CategoryNetwork {
		t.Errorf("category = %q, want %q", s.Category, CategoryNetwork)
	}
	if s.StartMood != mood.Frustrated {
		t.Errorf("start mood = %v, want %v", s.StartMood, mood.Frustrated)
	}
	if len(s.OptimalPath) != 4 {
		t.Errorf("optimal path length = %d, want 4", len(s.OptimalPath))
	}

	crisis, err := c.ByID("cascading-failure")
	if err != nil {
		t.Fatalf("ByID(cascading-failure): %v", err)
	}
	if crisis.StartMood != mood.Panicked {
		t.Errorf("crisis start mood = %v, want %v", crisis.StartMood, mood.Panicked)
	}
	if crisis.Severity != SeverityEmergency {
		t.Errorf("crisis severity = %q, want %q", crisis.Severity, SeverityEmergency)
	}
}

func TestCatalogOrdersAndLookups(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	for _, s := range c.All() {
		for i, step := range s.OptimalPath {
			if step.Order != i+1 {
				t.Errorf("%s: step %q order = %d, want %d", s.ID, step.ID, step.Order, i+1)
			}
			if got := s.StepByOrder(step.Order); got == nil || got.ID != step.ID {
				t.Errorf("%s: StepByOrder(%d) did not return %q", s.ID, step.Order, step.ID)
			}
			if got := s.StepByID(step.ID); got == nil || got.Order != step.Order {
				t.Errorf("%s: StepByID(%q) did not return order %d", s.ID, step.ID, step.Order)
			}
		}
		if s.StepByOrder(len(s.OptimalPath)+1) != nil {
			t.Errorf("%s: StepByOrder past end should be nil", s.ID)
		}
		if s.StepByID("no-such-step") != nil {
			t.Errorf("%s: StepByID(no-such-step) should be nil", s.ID)
		}
	}
}

func TestByIDUnknown(t *testing.T) {
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog() error: %v", err)
	}
	if _, err := c.ByID("does-not-exist"); err == nil {
		t.Fatal("expected error for unknown scenario id")
	}
}

const minimalScenario = `{
  "id": "t1",
  "title": "Test",
  "difficulty": "beginner",
  "severity": "low",
  "category": "network",
  "startMood": "neutral",
  "optimalPath": [
    {
      "id": "step_one",
      "type": "response",
      "action": "Acknowledge the issue",
      "moodImpact": {"change": "improve", "severity": "minor", "reason": "ok"},
      "scoreImpact": 10,
      "required": true,
      "order": 1
    },
    {
      "id": "step_two",
      "type": "escalation",
      "action": "Escalate",
      "expectedBefore": ["step_one"],
      "moodImpact": {"change": "improve", "severity": "major", "reason": "done"},
      "scoreImpact": 20,
      "required": true,
      "order": 2
    }
  ],
  "completionBadges": []
}`

func TestLoadFromValid(t *testing.T) {
	fsys := fstest.MapFS{
		"content/t1.json": {Data: []byte(minimalScenario)},
	}
	c, err := loadFrom(fsys, "content")
	if err != nil {
		t.Fatalf("loadFrom() error: %v", err)
	}
	if len(c.All()) != 1 {
		t.Fatalf("got %d scenarios, want 1", len(c.All()))
	}
}

func TestLoadFromRejectsBadContent(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{
			name:    "unknown prerequisite",
			mutate:  func(s string) string { return strings.Replace(s, `["step_one"]`, `["ghost_step"]`, 1) },
			wantErr: "unknown prerequisite",
		},
		{
			name:    "duplicate step id",
			mutate:  func(s string) string { return strings.Replace(s, `"step_two"`, `"step_one"`, 1) },
			wantErr: "duplicate step id",
		},
		{
			name:    "non-sequential order",
			mutate:  func(s string) string { return strings.Replace(s, `"order": 2`, `"order": 5`, 1) },
			wantErr: "order",
		},
		{
			name:    "invalid action type",
			mutate:  func(s string) string { return strings.Replace(s, `"type": "escalation"`, `"type": "guessing"`, 1) },
			wantErr: "schema validation",
		},
		{
			name:    "invalid start mood",
			mutate:  func(s string) string { return strings.Replace(s, `"startMood": "neutral"`, `"startMood": "ecstatic"`, 1) },
			wantErr: "schema validation",
		},
		{
			name:    "missing required field",
			mutate:  func(s string) string { return strings.Replace(s, `"title": "Test",`, ``, 1) },
			wantErr: "schema validation",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{
				"content/t1.json": {Data: []byte(tt.mutate(minimalScenario))},
			}
			if _, err := loadFrom(fsys, "content"); err == nil {
				t.Fatal("expected error, got nil")
			} else if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromRejectsDuplicateScenarioID(t *testing.T) {
	fsys := fstest.MapFS{
		"content/a.json": {Data: []byte(minimalScenario)},
		"content/b.json": {Data: []byte(minimalScenario)},
	}
	if _, err := loadFrom(fsys, "content"); err == nil || !strings.Contains(err.Error(), "duplicate scenario id") {
		t.Fatalf("expected duplicate scenario id error, got %v", err)
	}
}

func TestBadgeCriteriaUnknownActionRejected(t *testing.T) {
	bad := strings.Replace(minimalScenario, `"completionBadges": []`,
		`"completionBadges": [{"id": "b1", "name": "B", "criteria": {"specificActions": ["ghost"]}, "rarity": "common"}]`, 1)
	fsys := fstest.MapFS{
		"content/t1.json": {Data: []byte(bad)},
	}
	if _, err := loadFrom(fsys, "content"); err == nil || !strings.Contains(err.Error(), "unknown step id") {
		t.Fatalf("expected unknown step id error, got %v", err)
	}
}
