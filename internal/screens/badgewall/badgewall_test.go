package badgewall

import (
	"strings"
	"testing"

	"supportsim/internal/profile"
	"supportsim/internal/scenario"
)

func wallCatalog() []scenario.Scenario {
	return []scenario.Scenario{
		{
			ID:    "vpn-down",
			Title: "VPN Down",
			Badges: []scenario.CompletionBadge{
				{ID: "clean-sweep", Name: "Clean Sweep", Description: "No mistakes", Icon: "★", Rarity: scenario.RarityEpic},
				{ID: "calm-hands", Name: "Calm Hands", Description: "Client never angry", Icon: "✋", Rarity: scenario.RarityRare},
			},
		},
	}
}

func TestEntriesCountEarnedBadges(t *testing.T) {
	s := New(nil, wallCatalog())
	s.prof = profile.LearnerProfile{
		Achievements: []scenario.CompletionBadge{
			{ID: "clean-sweep", Name: "Clean Sweep"},
			{ID: "clean-sweep", Name: "Clean Sweep"},
		},
	}

	entries := s.entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].badge.ID != "clean-sweep" || entries[0].earned != 2 {
		t.Errorf("clean-sweep earned = %d, want 2", entries[0].earned)
	}
	if entries[1].badge.ID != "calm-hands" || entries[1].earned != 0 {
		t.Errorf("calm-hands earned = %d, want 0", entries[1].earned)
	}
}

func TestViewShowsEarnedTotals(t *testing.T) {
	s := New(nil, wallCatalog())
	s.loaded = true
	s.prof = profile.LearnerProfile{
		Achievements: []scenario.CompletionBadge{
			{ID: "clean-sweep", Name: "Clean Sweep"},
			{ID: "clean-sweep", Name: "Clean Sweep"},
		},
	}

	view := s.View(100, 30)
	if !strings.Contains(view, "Badges earned: 1 / 2") {
		t.Errorf("expected earned total header, got:\n%s", view)
	}
	if !strings.Contains(view, "×2") {
		t.Errorf("expected repeat-earn count marker, got:\n%s", view)
	}
}
