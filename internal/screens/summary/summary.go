package summary

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"supportsim/internal/coach"
	"supportsim/internal/engine"
	"supportsim/internal/router"
	"supportsim/internal/scenario"
	"supportsim/internal/screen"
	"supportsim/internal/ui/components"
	"supportsim/internal/ui/layout"
	"supportsim/internal/ui/theme"
)

// debriefReadyMsg carries the AI debrief once generated.
type debriefReadyMsg struct {
	Debrief *coach.Debrief
	Err     error
}

// SummaryScreen displays the completion summary for one attempt.
type SummaryScreen struct {
	scn          *scenario.Scenario
	state        engine.SessionState
	debriefCoach *coach.Coach

	debrief        *coach.Debrief
	debriefPending bool
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for a completed session.
func New(scn *scenario.Scenario, state engine.SessionState, debriefCoach *coach.Coach) *SummaryScreen {
	return &SummaryScreen{
		scn:            scn,
		state:          state,
		debriefCoach:   debriefCoach,
		debriefPending: debriefCoach != nil,
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	if s.debriefCoach == nil {
		return nil
	}
	scn, state := s.scn, s.state
	c := s.debriefCoach
	return func() tea.Msg {
		d, err := c.Generate(context.Background(), scn, state)
		return debriefReadyMsg{Debrief: d, Err: err}
	}
}

func (s *SummaryScreen) Title() string {
	return "Debrief"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case debriefReadyMsg:
		s.debriefPending = false
		if msg.Err == nil {
			s.debrief = msg.Debrief
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			// Pop both summary and session screens to get back home.
			return s, tea.Batch(
				func() tea.Msg { return router.PopScreenMsg{} },
				func() tea.Msg { return router.PopScreenMsg{} },
			)
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	status := s.state.CompletionStatus
	score := s.state.Score

	var b strings.Builder

	rating := engine.Rate(status.FinalScore)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("Incident resolved — %d points (%s)", status.FinalScore, rating)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Time: %.1f min        Path: %.0f%%        Satisfaction: %.1f/5.0",
		score.TimeToResolution, score.OptimalPathPct, score.SatisfactionRating)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	// Score breakdown bars.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Breakdown")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	barWidth := min(width-20, 48)
	for _, row := range breakdownRows(score.Breakdown) {
		bar := components.NewProgressBar(fmt.Sprintf("%-22s", row.label), row.value/100, false, barWidth)
		line := bar.View() + lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("  %.0f", row.value))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	// Badges.
	if len(status.BadgesEarned) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Badges earned")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, badge := range status.BadgesEarned {
			line := fmt.Sprintf("  %s %s — %s", badge.Icon, badge.Name, badge.Description)
			style := lipgloss.NewStyle().Foreground(rarityColor(badge.Rarity))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
			b.WriteString("\n")
		}
	}

	// Coaching feedback.
	fb := status.Feedback
	if len(fb.Strengths) > 0 || len(fb.Improvements) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Coaching")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, st := range fb.Strengths {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Success).Render("  + "+st)))
			b.WriteString("\n")
		}
		for _, imp := range fb.Improvements {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Warning).Render("  ~ "+imp)))
			b.WriteString("\n")
		}
	}

	// AI debrief.
	if s.debriefPending {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("Your team lead is writing up the debrief..."))
		b.WriteString("\n")
	} else if s.debrief != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Team lead debrief")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		text := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(s.debrief.Summary + "\n\n" + s.debrief.MoodNarrative)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
		b.WriteString("\n\n")
		for _, p := range s.debrief.CoachingPoints {
			point := lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.Secondary).
				Render("  › " + p)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, point))
			b.WriteString("\n")
		}
	}

	return b.String()
}

type breakdownRow struct {
	label string
	value float64
}

func breakdownRows(bd engine.Breakdown) []breakdownRow {
	return []breakdownRow{
		{"Diagnostic accuracy", bd.Accuracy},
		{"Efficiency", bd.Efficiency},
		{"Client satisfaction", bd.ClientSatisfaction},
		{"Best practices", bd.BestPractices},
		{"Tool utilization", bd.ToolUtilization},
		{"Escalation timing", bd.EscalationTiming},
	}
}

// rarityColor returns the theme color for a badge rarity level.
func rarityColor(r scenario.BadgeRarity) color.Color {
	switch r {
	case scenario.RarityCommon, scenario.RarityUncommon:
		return theme.Text
	case scenario.RarityRare:
		return theme.Secondary
	case scenario.RarityEpic:
		return theme.Primary
	case scenario.RarityLegendary:
		return theme.Accent
	default:
		return theme.Text
	}
}
