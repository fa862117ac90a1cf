package home

import (
	"charm.land/lipgloss/v2"

	"supportsim/internal/ui/theme"
)

// DeskbotVariant selects the pose of the helpdesk bot on the home screen.
type DeskbotVariant int

const (
	DeskbotIdle DeskbotVariant = iota
	DeskbotCelebrating
	DeskbotAlert
)

const deskbotIdle = ` ╭─────╮
≡│ ◉ ◉ │≡
 │  ‿  │
 ╰─┬─┬─╯`

const deskbotCelebrating = ` ╭─────╮
≡│ ★ ★ │≡
 │  ▽  │
 ╰─┬─┬─╯`

const deskbotAlert = ` ╭─────╮
≡│ ◉ ◉ │!
 │  ○  │
 ╰─┬─┬─╯`

// RenderDeskbot draws the bot with its headset, tinted per variant.
func RenderDeskbot(v DeskbotVariant) string {
	art := deskbotIdle
	color := theme.Secondary
	switch v {
	case DeskbotCelebrating:
		art = deskbotCelebrating
		color = theme.Accent
	case DeskbotAlert:
		art = deskbotAlert
		color = theme.Warning
	}
	return lipgloss.NewStyle().Foreground(color).Render(art)
}
