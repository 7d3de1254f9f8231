package stats

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/table"
	"charm.land/lipgloss/v2"

	qstats "github.com/abhisek/capitalz/internal/stats"
	"github.com/abhisek/capitalz/internal/ui/components"
	"github.com/abhisek/capitalz/internal/ui/theme"
)

const labelWidth = 16

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		Foreground(theme.Secondary).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true)
	s.Selected = s.Selected.Foreground(theme.BgDark).Background(theme.ArcadeYellow)
	s.Cell = s.Cell.Foreground(theme.Text)
	return s
}

func (s *StatsScreen) View(width, height int) string {
	if s.confirmReset {
		return s.renderResetConfirm(width)
	}

	var b strings.Builder
	b.WriteString(s.renderTabs(width))
	b.WriteString("\n\n")

	if s.tab == tabItems {
		b.WriteString(s.renderItems(width, height-3))
	} else {
		b.WriteString(s.renderOverview(width))
	}
	return b.String()
}

func (s *StatsScreen) renderTabs(width int) string {
	active := lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Primary).Bold(true).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(theme.TextDim).Padding(0, 1)

	overview, items := inactive.Render("Overview"), inactive.Render("Items")
	if s.tab == tabItems {
		items = active.Render("Items")
	} else {
		overview = active.Render("Overview")
	}

	left := "  " + overview + " " + items
	right := theme.Label.Render(string(s.quizType)) + "  "
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (s *StatsScreen) renderOverview(width int) string {
	d := s.data
	var b strings.Builder

	if d.TotalQuestions == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No answers yet. Play a quiz to see your statistics!"))
		return b.String()
	}

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	summary := strings.Join([]string{
		dim.Render("Answered ") + val.Render(fmt.Sprint(d.TotalQuestions)),
		dim.Render("Correct ") + val.Render(fmt.Sprint(d.TotalCorrect)),
		dim.Render("Accuracy ") + theme.AccuracyStyle(d.Accuracy()).Render(fmt.Sprintf("%.0f%%", d.Accuracy()*100)),
		dim.Render("Streak ") + val.Render(fmt.Sprint(d.CurrentStreak)),
		dim.Render("Best ") + val.Render(fmt.Sprint(d.LongestStreak)),
	}, "   ")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(summary)))
	b.WriteString("\n\n")

	barWidth := min(width-8, 64)
	b.WriteString(sectionTitle(s.categoryLabel(), width))
	for _, name := range s.catalogs.Categories(s.quizType) {
		cs, ok := d.CategoryStats[name]
		label := fmt.Sprintf("%-*s", labelWidth, truncate(name, labelWidth))
		var line string
		if !ok || cs.QuestionsAnswered == 0 {
			line = lipgloss.NewStyle().Foreground(theme.TextDim).Render(label+"  not played") +
				strings.Repeat(" ", max(barWidth-labelWidth-12, 0))
		} else {
			line = components.NewProgressBar(label, cs.Accuracy(), true, barWidth).View()
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(sectionTitle("Recent quizzes", width))
	recent := recentHistory(d.History, recentSessions)
	if len(recent) == 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Italic(true).Render("No completed quizzes yet")))
		return b.String()
	}
	for _, e := range recent {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, historyLine(e, barWidth)))
		b.WriteString("\n")
	}
	return b.String()
}

// recentHistory returns up to n entries, newest first.
func recentHistory(h []qstats.HistoryEntry, n int) []qstats.HistoryEntry {
	out := make([]qstats.HistoryEntry, 0, n)
	for i := len(h) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, h[i])
	}
	return out
}

func historyLine(e qstats.HistoryEntry, width int) string {
	secs := int(e.DurationSeconds)
	scope := "All"
	if e.CategoryFilter != nil {
		scope = *e.CategoryFilter
	}
	line := fmt.Sprintf("%s  %2d/%-2d  %s  %d:%02d  %s",
		e.Timestamp.Local().Format("Jan 02 15:04"),
		e.CorrectCount, e.QuestionsCount,
		theme.AccuracyStyle(e.Accuracy()).Render(fmt.Sprintf("%3.0f%%", e.Accuracy()*100)),
		secs/60, secs%60,
		scope)
	return lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(line)
}

func sectionTitle(title string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(title)) + "\n"
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func (s *StatsScreen) renderItems(width, height int) string {
	s.resize(width-4, max(height-2, 3))

	sortLabel := lipgloss.NewStyle().Foreground(theme.TextDim).Render("sort: ") +
		lipgloss.NewStyle().Foreground(theme.Accent).Render(s.sortBy.String())
	count := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d items", len(s.rows)))

	left := "  " + s.search.View()
	right := sortLabel + "   " + count + "  "
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	var b strings.Builder
	b.WriteString(left + strings.Repeat(" ", gap) + right)
	b.WriteString("\n\n")
	if len(s.rows) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No items match your search"))
		return b.String()
	}
	b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(s.table.View()))
	return b.String()
}

func (s *StatsScreen) renderResetConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("Reset all %s statistics?", s.quizType)))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("This cannot be undone."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Render("[Y] Yes, reset"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep them"))
	return b.String()
}
