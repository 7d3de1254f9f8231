package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/router"
	"github.com/abhisek/capitalz/internal/screen"
	"github.com/abhisek/capitalz/internal/session"
	"github.com/abhisek/capitalz/internal/ui/layout"
	"github.com/abhisek/capitalz/internal/ui/theme"
)

// Ender releases the finished session.
type Ender interface {
	EndSession()
}

// ResultScreen displays the summary of a finished or cancelled quiz.
type ResultScreen struct {
	ender    Ender
	summary  *session.Summary
	quizType catalog.QuizType
	closed   bool
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.EscapeHandler = (*ResultScreen)(nil)
var _ screen.QuizTyper = (*ResultScreen)(nil)

// New creates a new ResultScreen.
func New(ender Ender, summary *session.Summary, qt catalog.QuizType) *ResultScreen {
	return &ResultScreen{ender: ender, summary: summary, quizType: qt}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	if s.summary != nil && s.summary.Cancelled {
		return "Quiz Canceled"
	}
	return "Results"
}

func (s *ResultScreen) QuizType() catalog.QuizType {
	return s.quizType
}

func (s *ResultScreen) HandlesEscape() bool {
	return true
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, s.close()
		}
	}
	return s, nil
}

// close ends the session and returns to the home screen.
func (s *ResultScreen) close() tea.Cmd {
	if s.closed {
		return nil
	}
	s.closed = true
	s.ender.EndSession()
	return func() tea.Msg { return router.PopToRootMsg{} }
}

func (s *ResultScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n")

	if sum.Cancelled {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), "Quiz canceled"))
		b.WriteString("\n\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), sum.Message))
		b.WriteString("\n\n")
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text),
			fmt.Sprintf("Answered %d of %d before quitting", sum.Answered, sum.Total)))
		return b.String()
	}

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true), "Quiz complete!"))
	b.WriteString("\n\n")
	b.WriteString(center(theme.AccuracyStyle(sum.Accuracy),
		fmt.Sprintf("%d / %d  ·  %.0f%%", sum.Correct, sum.Total, sum.Accuracy*100)))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), sum.Message))
	b.WriteString("\n\n")

	secs := int(sum.Duration.Seconds())
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim),
		fmt.Sprintf("Time: %d:%02d", secs/60, secs%60)))
	b.WriteString("\n\n")

	if len(sum.Missed) == 0 {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Success), "No misses. Perfect round!"))
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Review")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n")

	// 10 lines above the review list
	room := max(height-11, 1)
	for i, m := range sum.Missed {
		if i == room-1 && len(sum.Missed) > room {
			more := fmt.Sprintf("… and %d more", len(sum.Missed)-i)
			b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), more))
			break
		}
		line := fmt.Sprintf("%s  %s  %s",
			m.Prompt,
			theme.Correct.Render(m.Correct),
			lipgloss.NewStyle().Foreground(theme.Error).Strikethrough(true).Render(m.Chosen))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}
