// Package skills renders the learner profile: per-category skill
// levels and the aggregate stats folded from completed scenarios.
package skills

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"supportsim/internal/profile"
	"supportsim/internal/router"
	"supportsim/internal/scenario"
	"supportsim/internal/screen"
	"supportsim/internal/store"
	"supportsim/internal/ui/components"
	"supportsim/internal/ui/layout"
	"supportsim/internal/ui/theme"
)

type profileLoadedMsg struct {
	Profile profile.LearnerProfile
	Err     error
}

// SkillsScreen displays the learner profile.
type SkillsScreen struct {
	saves  store.SaveRepo
	prof   profile.LearnerProfile
	loaded bool
	errMsg string
}

var _ screen.Screen = (*SkillsScreen)(nil)
var _ screen.KeyHintProvider = (*SkillsScreen)(nil)

// New creates a new SkillsScreen.
func New(saves store.SaveRepo) *SkillsScreen {
	return &SkillsScreen{saves: saves}
}

func (s *SkillsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		var p profile.LearnerProfile
		found, err := s.saves.Load(context.Background(), store.SlotProfile, &p)
		if err != nil {
			return profileLoadedMsg{Err: err}
		}
		if !found {
			p = profile.New()
		}
		return profileLoadedMsg{Profile: p}
	}
}

func (s *SkillsScreen) Title() string {
	return "Skill Profile"
}

func (s *SkillsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SkillsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.prof = msg.Profile
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SkillsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading profile...")
	}

	p := s.prof

	var b strings.Builder
	b.WriteString("\n")

	statsLine := fmt.Sprintf("Calls resolved: %d        Total score: %d        Badges: %d",
		len(p.CompletedScenarios), p.TotalScore, len(p.Achievements))
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).Bold(true).
		Render(statsLine))
	b.WriteString("\n")

	avgLine := fmt.Sprintf("Avg resolution: %.1f min        Satisfaction: %.1f/5.0        Escalation accuracy: %.0f%%",
		p.AvgResolutionTime, p.SatisfactionAvg, p.EscalationAccuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(avgLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skill levels")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	barWidth := min(width-20, 48)
	for _, cat := range scenario.AllCategories() {
		level := p.SkillLevels[cat]
		bar := components.NewProgressBar(fmt.Sprintf("%-16s", string(cat)), float64(level)/100, false, barWidth)
		line := bar.View() + lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %3d", level))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if len(p.CompletedScenarios) == 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Complete a call to start building your profile."))
	}

	return b.String()
}
