package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitalz/internal/ui/theme"
)

const bannerArt = `
  ██████╗ █████╗ ██████╗ ██╗████████╗ █████╗ ██╗     ███████╗
 ██╔════╝██╔══██╗██╔══██╗██║╚══██╔══╝██╔══██╗██║     ╚══███╔╝
 ██║     ███████║██████╔╝██║   ██║   ███████║██║       ███╔╝
 ██║     ██╔══██║██╔═══╝ ██║   ██║   ██╔══██║██║      ███╔╝
 ╚██████╗██║  ██║██║     ██║   ██║   ██║  ██║███████╗███████╗
  ╚═════╝╚═╝  ╚═╝╚═╝     ╚═╝   ╚═╝   ╚═╝  ╚═╝╚══════╝╚══════╝`

const bannerCompact = "C · A · P · I · T · A · L · Z"

// bannerWidth is the column count of bannerArt.
const bannerWidth = 62

// RenderBanner returns the CAPITALZ banner in the given color, falling
// back to a single line when width cannot fit the block letters.
func RenderBanner(width int, fg lipgloss.Style) string {
	style := fg.Bold(true)
	if width < bannerWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}

// PrimaryBanner renders the banner in the primary color.
func PrimaryBanner(width int) string {
	return RenderBanner(width, lipgloss.NewStyle().Foreground(theme.Primary))
}
