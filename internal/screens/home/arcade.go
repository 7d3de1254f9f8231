package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitalz/internal/stats"
	"github.com/abhisek/capitalz/internal/ui/components"
	"github.com/abhisek/capitalz/internal/ui/theme"
)

// renderTitle returns the banner or its one-line fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().Foreground(theme.ArcadeYellow)
	width := cw
	if compact {
		width = 0
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.RenderBanner(width, style))
}

// renderStatsBar renders the quiz-type numbers in a bordered box matching content width.
func renderStatsBar(o stats.Overview, cw int, compact bool) string {
	accStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	streakStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	bestStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	var line string
	switch {
	case o.Answered == 0:
		line = dimStyle.Render("NO ANSWERS YET")
	case compact:
		line = fmt.Sprintf("%s %s %s",
			accStyle.Render(fmt.Sprintf("✓%d%%", percent(o.Accuracy))),
			streakStyle.Render(fmt.Sprintf("★%d", o.CurrentStreak)),
			bestStyle.Render(fmt.Sprintf("▲%d", o.LongestStreak)),
		)
	default:
		line = fmt.Sprintf("%s  %s  %s",
			accStyle.Render(fmt.Sprintf("✓ %d%% ACCURACY", percent(o.Accuracy))),
			streakStyle.Render(fmt.Sprintf("★ %d STREAK", o.CurrentStreak)),
			bestStyle.Render(fmt.Sprintf("▲ %d BEST", o.LongestStreak)),
		)
	}

	return components.Scoreboard(line, theme.ArcadeCyan, cw)
}

func percent(f float64) int {
	return int(f*100 + 0.5)
}

// renderPickers renders the quiz settings, one cycler per line.
func renderPickers(pickers []components.Cycler, focused int, cw int) string {
	lines := make([]string, len(pickers))
	for i, p := range pickers {
		lines[i] = p.View(i == focused)
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []components.MenuItem, selected int, cw int) string {
	var buttons []string
	for i, it := range items {
		buttons = append(buttons, components.ArcadeButton(it.Label, strings.ToUpper(it.Hotkey), i == selected, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderNotice renders a one-line message below the menu.
func renderNotice(msg string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Error).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ " + msg)
}
