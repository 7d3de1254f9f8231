package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitalz/internal/ui/theme"
)

// ProgressBar displays a horizontal progress bar.
type ProgressBar struct {
	Label   string
	Percent float64
	// Counter replaces the percentage with "done/total" when Total > 0.
	Done, Total int
	ShowPercent bool
	Width       int
}

// NewProgressBar creates a new progress bar.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
	}
}

// NewCounterBar creates a progress bar labelled with done/total.
func NewCounterBar(label string, done, total, width int) ProgressBar {
	p := ProgressBar{Label: label, Done: done, Total: total, Width: width}
	if total > 0 {
		p.Percent = float64(done) / float64(total)
	}
	return p
}

func (p ProgressBar) suffix() string {
	switch {
	case p.Total > 0:
		return fmt.Sprintf("  %d/%d", p.Done, p.Total)
	case p.ShowPercent:
		return fmt.Sprintf("  %d%%", int(p.Percent*100))
	}
	return ""
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	suffix := p.suffix()
	barWidth := p.Width - lipgloss.Width(result) - lipgloss.Width(suffix)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	filled = max(0, min(filled, barWidth))
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if suffix != "" {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(suffix)
	}

	return result
}
