package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitalz/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	msg := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
	return msg
}

// HeaderStats is the quiz-type summary shown on the right of the header.
type HeaderStats struct {
	Answered      int
	Accuracy      float64
	CurrentStreak int
}

var barStyle = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// RenderHeader renders the bar with the app name, the screen title in the
// middle and the quiz-type numbers on the right. The streak is dropped on
// compact widths.
func RenderHeader(title string, hs HeaderStats, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Capitalz")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	accuracy := "--"
	if hs.Answered > 0 {
		accuracy = fmt.Sprintf("%d%%", int(hs.Accuracy*100+0.5))
	}
	right := lipgloss.NewStyle().Foreground(theme.Secondary).Render("✓ " + accuracy)
	if !IsCompactWidth(width) {
		right += "   " + lipgloss.NewStyle().Foreground(theme.Accent).
			Render(fmt.Sprintf("★ %d streak", hs.CurrentStreak))
	}

	return barStyle.Width(width).Render(spread(left, center, right, max(width-4, 0)))
}

// spread lays out left, center and right on one line of inner width,
// keeping center centered when there is room.
func spread(left, center, right string, inner int) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)
	leftGap := max((inner-cw)/2-lw, 1)
	rightGap := max(inner-lw-leftGap-cw-rw, 1)
	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}

// RenderFooter renders key hints. When they do not fit, hints are dropped
// from the middle so the first and the last (quit) stay visible.
func RenderFooter(hints []KeyHint, width int) string {
	const sep = "   "
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key) +
			" " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(h.Description)
	}

	inner := width - 6
	for len(parts) > 2 && lipgloss.Width(strings.Join(parts, sep)) > inner {
		parts = append(parts[:len(parts)-2], parts[len(parts)-1])
	}

	return barStyle.Width(width).Render("  " + strings.Join(parts, sep))
}

// RenderFrame stacks header, content and footer, padding content so the
// frame fills height.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return header + "\n" + body + "\n" + footer
}
