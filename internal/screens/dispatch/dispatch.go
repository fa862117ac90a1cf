// Package dispatch is the incoming-call queue: the learner picks which
// incident to take next.
package dispatch

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"supportsim/internal/coach"
	"supportsim/internal/router"
	"supportsim/internal/scenario"
	"supportsim/internal/screen"
	sessionscreen "supportsim/internal/screens/session"
	"supportsim/internal/store"
	"supportsim/internal/ui/layout"
	"supportsim/internal/ui/theme"
)

// DispatchScreen lists the scenario catalog.
type DispatchScreen struct {
	scenarios    []scenario.Scenario
	events       store.EventRepo
	saves        store.SaveRepo
	debriefCoach *coach.Coach
	selected     int
}

var _ screen.Screen = (*DispatchScreen)(nil)
var _ screen.KeyHintProvider = (*DispatchScreen)(nil)

// New creates a new DispatchScreen over the catalog.
func New(scenarios []scenario.Scenario, events store.EventRepo, saves store.SaveRepo, debriefCoach *coach.Coach) *DispatchScreen {
	return &DispatchScreen{
		scenarios:    scenarios,
		events:       events,
		saves:        saves,
		debriefCoach: debriefCoach,
	}
}

func (d *DispatchScreen) Init() tea.Cmd {
	return nil
}

func (d *DispatchScreen) Title() string {
	return "Call Queue"
}

func (d *DispatchScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Take call"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DispatchScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}

	switch kmsg.String() {
	case "esc":
		return d, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if d.selected > 0 {
			d.selected--
		}
	case "down", "j":
		if d.selected < len(d.scenarios)-1 {
			d.selected++
		}
	case "enter":
		if d.selected >= 0 && d.selected < len(d.scenarios) {
			scn := &d.scenarios[d.selected]
			return d, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: sessionscreen.New(scn, d.events, d.saves, d.debriefCoach),
				}
			}
		}
	}
	return d, nil
}

func (d *DispatchScreen) View(width, height int) string {
	if len(d.scenarios) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  The queue is empty. Quiet day on the helpdesk.")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, scn := range d.scenarios {
		prefix := "  "
		if i == d.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%-28s %-12s %-10s %s",
			prefix, scn.Title, scn.Category, scn.Difficulty, severityTag(scn.Severity))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == d.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if i == d.selected {
			desc := lipgloss.NewStyle().
				Width(min(width-12, 64)).
				Foreground(theme.TextDim).
				Render(scn.Description)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func severityTag(s scenario.Severity) string {
	style := lipgloss.NewStyle()
	switch s {
	case scenario.SeverityLow:
		style = style.Foreground(theme.Success)
	case scenario.SeverityMedium:
		style = style.Foreground(theme.Secondary)
	case scenario.SeverityHigh:
		style = style.Foreground(theme.Accent)
	case scenario.SeverityCritical:
		style = style.Foreground(theme.Warning)
	default:
		style = style.Foreground(theme.Error).Bold(true)
	}
	return style.Render(string(s))
}
