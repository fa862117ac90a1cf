package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"supportsim/internal/ui/components"
	"supportsim/internal/ui/theme"
)

const titleArt = `▄▀▀ █ █ █▀▄ █▀▄ ▄▀▄ █▀▄ ▀█▀ ▄▀▀ █ █▄ ▄█
▀▄▄ █ █ █▀  █▀  █ █ █▀▄  █  ▀▄▄ █ █ ▀ █
▄▄▀ ▀▄▀ █   █   ▀▄▀ █ █  █  ▄▄▀ █ █   █`

const titleCompact = "S·U·P·P·O·R·T·S·I·M"

const buttonWidth = 24

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	compact := height < 26 || width < 46

	var b strings.Builder
	b.WriteString(h.renderTitle(cw, compact))
	b.WriteString("\n")
	b.WriteString(h.renderStatsBar(cw))
	b.WriteString("\n\n")
	b.WriteString(h.renderMenu(cw, compact))
	if h.llmMissing && !compact {
		b.WriteString("\n")
		b.WriteString(h.renderLLMBanner(cw))
	}
	if h.updateNote != "" {
		b.WriteString("\n")
		b.WriteString(h.renderUpdateNote(cw))
	}

	content := b.String()
	if !compact {
		content = components.ConsoleFrame(content, cw+6, height)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
}

func (h *HomeScreen) renderTitle(cw int, compact bool) string {
	if compact || cw < 44 {
		return lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Width(cw).
			Align(lipgloss.Center).
			Render(titleCompact) + "\n" +
			lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Width(cw).
				Align(lipgloss.Center).
				Render("incident response trainer")
	}
	art := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(titleArt)
	art = lipgloss.PlaceHorizontal(cw, lipgloss.Center, art)
	tag := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render("· incident response trainer ·")
	return art + "\n" + tag
}

func (h *HomeScreen) renderStatsBar(cw int) string {
	held := "line clear"
	heldStyle := theme.Hint
	if h.held != nil {
		held = "call on hold"
		heldStyle = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}
	stats := fmt.Sprintf("✓ %d resolved   ◆ %d pts   ", len(h.prof.CompletedScenarios), h.prof.TotalScore)
	bar := lipgloss.NewStyle().Foreground(theme.Text).Render(stats) + heldStyle.Render("☎ "+held)
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(bar)
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, box)
}

func (h *HomeScreen) renderMenu(cw int, compact bool) string {
	if compact {
		return h.renderMenuCompact(cw)
	}
	mascot := RenderDeskbot(h.mascotVariant())
	var rows []string
	for i, item := range h.items {
		rows = append(rows, components.ConsoleButton(item.label, i == h.selected, buttonWidth))
	}
	menu := lipgloss.JoinVertical(lipgloss.Center, rows...)
	joined := lipgloss.JoinHorizontal(lipgloss.Center, mascot, "  ", menu)
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, joined)
}

func (h *HomeScreen) renderMenuCompact(cw int) string {
	var b strings.Builder
	for i, item := range h.items {
		line := "  " + item.label
		if i == h.selected {
			line = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("▸ " + item.label)
		} else {
			line = theme.Unselected.Render(line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(cw, lipgloss.Center, line))
		if i < len(h.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (h *HomeScreen) mascotVariant() DeskbotVariant {
	switch {
	case h.held != nil:
		return DeskbotAlert
	case len(h.prof.Achievements) > 0:
		return DeskbotCelebrating
	default:
		return DeskbotIdle
	}
}

func (h *HomeScreen) renderLLMBanner(cw int) string {
	msg := "⚠ no AI key set, debriefs are offline"
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Warning).Render(msg))
}

func (h *HomeScreen) renderUpdateNote(cw int) string {
	msg := fmt.Sprintf("↑ version %s is available, run: supportsim update", h.updateNote)
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, theme.Hint.Render(msg))
}
