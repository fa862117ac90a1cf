// Package badgewall displays the learner's earned completion badges,
// grouped against everything the catalog has to offer.
package badgewall

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"supportsim/internal/profile"
	"supportsim/internal/router"
	"supportsim/internal/scenario"
	"supportsim/internal/screen"
	"supportsim/internal/store"
	"supportsim/internal/ui/layout"
	"supportsim/internal/ui/theme"
)

type profileLoadedMsg struct {
	Profile profile.LearnerProfile
	Err     error
}

// badgeEntry pairs a catalog badge with the scenario it belongs to.
type badgeEntry struct {
	source string
	badge  scenario.CompletionBadge
	earned int
}

// BadgeWallScreen displays the badge collection.
type BadgeWallScreen struct {
	saves        store.SaveRepo
	catalog      []scenario.Scenario
	prof         profile.LearnerProfile
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*BadgeWallScreen)(nil)
var _ screen.KeyHintProvider = (*BadgeWallScreen)(nil)

// New creates a new BadgeWallScreen.
func New(saves store.SaveRepo, catalog []scenario.Scenario) *BadgeWallScreen {
	return &BadgeWallScreen{
		saves:   saves,
		catalog: catalog,
	}
}

func (s *BadgeWallScreen) Init() tea.Cmd {
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

func (s *BadgeWallScreen) Title() string {
	return "Badge Wall"
}

func (s *BadgeWallScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgeWallScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
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
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
			return s, nil
		case "down", "j":
			if s.scrollOffset < len(s.entries())-1 {
				s.scrollOffset++
			}
			return s, nil
		}
	}
	return s, nil
}

// entries builds the full badge list with earned counts.
func (s *BadgeWallScreen) entries() []badgeEntry {
	earned := make(map[string]int)
	for _, a := range s.prof.Achievements {
		earned[a.ID]++
	}

	var out []badgeEntry
	for _, scn := range s.catalog {
		for _, b := range scn.Badges {
			out = append(out, badgeEntry{
				source: scn.Title,
				badge:  b,
				earned: earned[b.ID],
			})
		}
	}
	return out
}

func (s *BadgeWallScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading badges...")
	}

	entries := s.entries()
	earnedTotal := 0
	for _, e := range entries {
		if e.earned > 0 {
			earnedTotal++
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Primary).Bold(true).
		Render(fmt.Sprintf("Badges earned: %d / %d", earnedTotal, len(entries))))
	b.WriteString("\n\n")

	visible := height - 6
	if visible < 3 {
		visible = 3
	}
	start := s.scrollOffset
	if start > len(entries) {
		start = len(entries)
	}
	end := start + visible
	if end > len(entries) {
		end = len(entries)
	}

	for _, e := range entries[start:end] {
		style := lipgloss.NewStyle().Foreground(rarityColor(e.badge.Rarity))
		count := ""
		if e.earned > 1 {
			count = fmt.Sprintf(" ×%d", e.earned)
		}
		marker := e.badge.Icon
		if e.earned == 0 {
			style = lipgloss.NewStyle().Foreground(theme.TextDim).Faint(true)
			marker = "·"
		}
		line := fmt.Sprintf("  %s %-22s%s  %s  (%s, %s)",
			marker, e.badge.Name, count, e.badge.Description, e.source, e.badge.Rarity)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

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
