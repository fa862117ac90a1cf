package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"supportsim/internal/engine"
	"supportsim/internal/router"
	"supportsim/internal/screen"
	"supportsim/internal/store"
	"supportsim/internal/ui/layout"
	"supportsim/internal/ui/theme"
)

type historyLoadedMsg struct {
	Completions []store.CompletionEvent
	Err         error
}

type decisionsLoadedMsg struct {
	AttemptID string
	Decisions []store.DecisionEvent
}

// HistoryScreen displays past scenario attempts.
type HistoryScreen struct {
	events      store.EventRepo
	completions []store.CompletionEvent
	decisions   map[string][]store.DecisionEvent // attemptID → decisions
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(events store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		events:    events,
		expanded:  make(map[int]bool),
		decisions: make(map[string][]store.DecisionEvent),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		completions, err := s.events.ListCompletions(context.Background(), store.QueryOpts{Limit: 50})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Completions: completions}
	}
}

func (s *HistoryScreen) Title() string {
	return "Call History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.completions = msg.Completions
		}
		s.loaded = true
		return s, nil

	case decisionsLoadedMsg:
		s.decisions[msg.AttemptID] = msg.Decisions
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.completions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			if s.expanded[s.selected] && s.selected < len(s.completions) {
				attemptID := s.completions[s.selected].AttemptID
				if _, ok := s.decisions[attemptID]; !ok {
					return s, s.loadDecisions(attemptID)
				}
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) loadDecisions(attemptID string) tea.Cmd {
	return func() tea.Msg {
		decisions, err := s.events.ListDecisions(context.Background(), attemptID)
		if err != nil {
			return decisionsLoadedMsg{AttemptID: attemptID}
		}
		return decisionsLoadedMsg{AttemptID: attemptID, Decisions: decisions}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.completions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No completed calls yet. Take one from the queue!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, c := range s.completions {
		dateStr := c.Timestamp.Format("Jan 02, 2006")
		rating := engine.Rate(c.FinalScore)

		badgeStr := ""
		if n := len(c.BadgeIDs); n > 0 {
			badgeStr = fmt.Sprintf("  %d badge", n)
			if n > 1 {
				badgeStr += "s"
			}
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-24s %3d pts  %s  %.1f min%s",
			prefix, dateStr, c.ScenarioID, c.FinalScore, rating, c.TimeMinutes, badgeStr)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			decisions, ok := s.decisions[c.AttemptID]
			if !ok {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    Loading decisions...")))
				b.WriteString("\n")
			} else if len(decisions) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true).
						Render("    No recorded decisions")))
				b.WriteString("\n")
			} else {
				for _, d := range decisions {
					marker := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
					if !d.WasOptimal {
						marker = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
					}
					detail := fmt.Sprintf("    %s %-44s %+d  %s", marker, d.Action, d.ScoreDelta, d.MoodAfter)
					b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
						lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
					b.WriteString("\n")
				}
			}
		}
	}

	return b.String()
}
