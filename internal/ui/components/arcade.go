package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitalz/internal/ui/theme"
)

// ContentWidth is the shared inner width of the sections inside a cabinet
// frame: the frame minus border and padding, between 20 and 64 columns.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// CabinetFrame draws the double border around a whole screen and centers
// content inside it.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width-2).
		Height(height-2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Scoreboard boxes a single line of numbers at content width.
func Scoreboard(line string, accent color.Color, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(accent).
		Width(cw-2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// ArcadeButton renders a bordered menu button. A non-empty hotkey is shown
// after the label.
func ArcadeButton(label, hotkey string, selected bool, width int) string {
	text := label
	if hotkey != "" {
		text += " [" + hotkey + "]"
	}

	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if selected {
		return style.
			Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + text)
	}
	return style.
		Foreground(theme.Text).
		BorderForeground(theme.Border).
		Render(text)
}
