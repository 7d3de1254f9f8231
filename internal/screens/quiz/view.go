package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitalz/internal/question"
	"github.com/abhisek/capitalz/internal/ui/components"
	"github.com/abhisek/capitalz/internal/ui/theme"
)

func (q *QuizScreen) View(width, height int) string {
	if q.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	return q.renderQuestionView(width)
}

// shownQuestion returns the question on screen: the answered one while
// feedback is showing, otherwise the current one.
func (q *QuizScreen) shownQuestion() (question.Question, bool) {
	if q.showingFeedback || q.done {
		i := q.sess.CurrentIndex - 1
		if i >= 0 && i < len(q.sess.Questions) {
			return q.sess.Questions[i], true
		}
		return question.Question{}, false
	}
	return q.sess.Current()
}

func formatElapsed(secs int) string {
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func (q *QuizScreen) renderQuestionView(width int) string {
	var b strings.Builder

	scope := string(q.sess.QuizType)
	if q.sess.CategoryFilter != nil {
		scope += " · " + *q.sess.CategoryFilter
	}
	progress := q.sess.Progress()

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + scope)

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d  %s %s",
			progress.Number(),
			progress.Total,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			progress.Correct,
			lipgloss.NewStyle().Foreground(theme.Accent).Render("⏱"),
			formatElapsed(int(q.elapsed.Seconds())),
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")

	bar := components.NewCounterBar("", progress.Answered, progress.Total, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	cur, ok := q.shownQuestion()
	if !ok {
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(cur.Prompt()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, q.mc.View()))
	b.WriteString("\n")

	if q.showingFeedback {
		b.WriteString(q.renderFeedback(width, cur))
	}

	return b.String()
}

// renderFeedback renders the verdict under the options.
func (q *QuizScreen) renderFeedback(width int, cur question.Question) string {
	var b strings.Builder
	if q.lastCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", cur.CorrectAnswer)))
	}
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))
	return b.String()
}

// renderQuitConfirm renders the quit confirmation dialog.
func renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Foreground(theme.Text).Bold(true).Render("Quit this quiz?"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.TextDim).Render("Answers from this quiz will not be saved."))
	b.WriteString("\n\n")
	b.WriteString(center.Foreground(theme.Error).Render("[Y] Yes, quit"))
	b.WriteString("\n")
	b.WriteString(center.Foreground(theme.Primary).Render("[N] No, keep going"))
	return b.String()
}
