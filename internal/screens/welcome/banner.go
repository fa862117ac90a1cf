package welcome

import (
	"charm.land/lipgloss/v2"

	"supportsim/internal/ui/theme"
)

const bannerArt = `
 ███████╗██╗   ██╗██████╗ ██████╗  ██████╗ ██████╗ ████████╗
 ██╔════╝██║   ██║██╔══██╗██╔══██╗██╔═══██╗██╔══██╗╚══██╔══╝
 ███████╗██║   ██║██████╔╝██████╔╝██║   ██║██████╔╝   ██║
 ╚════██║██║   ██║██╔═══╝ ██╔═══╝ ██║   ██║██╔══██╗   ██║
 ███████║╚██████╔╝██║     ██║     ╚██████╔╝██║  ██║   ██║
 ╚══════╝ ╚═════╝ ╚═╝     ╚═╝      ╚═════╝ ╚═╝  ╚═╝   ╚═╝
                      ███████╗██╗███╗   ███╗
                      ██╔════╝██║████╗ ████║
                      ███████╗██║██╔████╔██║
                      ╚════██║██║██║╚██╔╝██║
                      ███████║██║██║ ╚═╝ ██║
                      ╚══════╝╚═╝╚═╝     ╚═╝`

const bannerCompact = "S U P P O R T S I M"

// RenderBanner returns the SUPPORTSIM banner styled in the primary
// color. Uses a compact fallback for terminals narrower than 64 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 64 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
