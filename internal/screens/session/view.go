package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"supportsim/internal/terminal"
	"supportsim/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch s.phase {
	case phaseBriefing:
		return s.renderBriefing(width)
	case phaseQuitConfirm:
		return renderQuitConfirm(width)
	case phaseTool:
		return s.renderToolView(width, height)
	case phaseTerminal:
		return s.renderTerminal(width, height)
	case phaseFeedback:
		return s.renderFeedback(width, height)
	default:
		return s.renderChoosing(width, height)
	}
}

// renderBriefing shows the incident ticket before the call starts.
func (s *SessionScreen) renderBriefing(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(s.scn.Title))
	b.WriteString("\n\n")

	meta := fmt.Sprintf("%s  ·  %s severity  ·  %s  ·  est. %s",
		s.scn.Difficulty, s.scn.Severity, s.scn.Category, s.scn.EstimatedTime)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(meta))
	b.WriteString("\n\n")

	desc := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Foreground(theme.Text).
		Render(s.scn.Description)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, desc))
	b.WriteString("\n\n")

	if s.scn.UsersAffected != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render("Affected: " + s.scn.UsersAffected))
		b.WriteString("\n\n")
	}

	if len(s.scn.Objectives) > 0 {
		var obj strings.Builder
		obj.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("Objectives") + "\n")
		for _, o := range s.scn.Objectives {
			obj.WriteString("  • " + o + "\n")
		}
		block := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(obj.String())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("\nPress Enter to answer the call."))

	return b.String()
}

// renderChoosing shows the transcript and the action selector.
func (s *SessionScreen) renderChoosing(width, height int) string {
	var b strings.Builder

	transcriptLines := height - 10
	if transcriptLines < 4 {
		transcriptLines = 4
	}
	b.WriteString(s.renderTranscript(width, transcriptLines))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))

	return b.String()
}

// renderTranscript renders the last lines of the call transcript.
func (s *SessionScreen) renderTranscript(width, maxLines int) string {
	entries := s.transcript
	if len(entries) > maxLines {
		entries = entries[len(entries)-maxLines:]
	}

	clientStyle := lipgloss.NewStyle().Foreground(theme.Accent)
	youStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	systemStyle := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)

	var b strings.Builder
	for _, e := range entries {
		var line string
		switch e.speaker {
		case "client":
			line = clientStyle.Render("  Client: ") + e.text
		case "you":
			line = youStyle.Render("  You: ") + e.text
		default:
			line = systemStyle.Render("  » " + e.text)
		}
		b.WriteString(lipgloss.NewStyle().Width(width - 2).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// renderFeedback shows the outcome of the last action.
func (s *SessionScreen) renderFeedback(width, height int) string {
	res := s.lastResult

	var b strings.Builder
	b.WriteString("\n\n")

	if res.ScoreDelta >= 0 && res.AdvancedPath {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("Good call!  +%d points", res.ScoreDelta)))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(fmt.Sprintf("Off the path  %d points", res.ScoreDelta)))
	}
	b.WriteString("\n\n")

	if res.Feedback != "" {
		fb := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(res.Feedback)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fb))
		b.WriteString("\n\n")
	}

	moodLabel := res.Mood.String()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.MoodColor(moodLabel)).
		Render(fmt.Sprintf("Client is %s %s", moodLabel, res.Mood.Icon())))
	b.WriteString("\n\n")

	for _, m := range res.Mistakes {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render("⚠ " + m.Description))
		b.WriteString("\n")
	}

	prompt := "Press any key to continue..."
	if s.pathDone {
		prompt = "Incident resolved. Press any key for your debrief..."
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n" + prompt))

	return b.String()
}

// renderToolView shows monitoring or terminal output.
func (s *SessionScreen) renderToolView(width, height int) string {
	var b strings.Builder
	b.WriteString(s.toolView)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))
	return b.String()
}

// renderTerminal shows the simulated remote terminal.
func (s *SessionScreen) renderTerminal(width, height int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Remote terminal — " + s.scn.Title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 1))))
	b.WriteString("\n\n")

	if s.toolView != "" {
		b.WriteString(s.toolView)
		b.WriteString("\n")
	}

	b.WriteString("  C:\\> " + s.termInput.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("  Try ping, ipconfig, nslookup, netstat, tracert..."))

	return b.String()
}

// renderQuitConfirm renders the hang-up confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Put the call on hold?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress will be saved and you can resume later."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, save and hang up"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderDiagnostics formats the monitoring dashboard report.
func renderDiagnostics(results []terminal.DiagnosticResult) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  Network monitoring dashboard"))
	b.WriteString("\n\n")

	for _, r := range results {
		var badge string
		switch r.Status {
		case terminal.StatusPass:
			badge = lipgloss.NewStyle().Foreground(theme.Success).Render("[ OK ]")
		case terminal.StatusWarning:
			badge = lipgloss.NewStyle().Foreground(theme.Warning).Render("[WARN]")
		default:
			badge = lipgloss.NewStyle().Foreground(theme.Error).Render("[FAIL]")
		}
		b.WriteString(fmt.Sprintf("  %s  %-28s %s\n", badge, r.Test, r.Details))
		for _, d := range r.TechnicalDetails {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("            " + d))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// renderTerminalOutput formats a simulated command result.
func renderTerminalOutput(out terminal.Output) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render("  C:\\> " + out.Command))
	b.WriteString("\n")
	for _, line := range out.Lines {
		b.WriteString("  " + line + "\n")
	}
	for _, w := range out.Warnings {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Render("  " + w))
		b.WriteString("\n")
	}
	for _, e := range out.Errors {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + e))
		b.WriteString("\n")
	}

	return b.String()
}
