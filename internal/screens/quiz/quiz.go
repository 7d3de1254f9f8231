package quiz

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/router"
	"github.com/abhisek/capitalz/internal/screen"
	"github.com/abhisek/capitalz/internal/screens/result"
	"github.com/abhisek/capitalz/internal/session"
	"github.com/abhisek/capitalz/internal/ui/components"
	"github.com/abhisek/capitalz/internal/ui/layout"
)

// feedbackDelay is how long a correct answer stays on screen before the
// next question. Wrong answers wait for a key so the correction can be read.
const feedbackDelay = 900 * time.Millisecond

// Runner is the part of the session orchestrator the quiz screen drives.
type Runner interface {
	Session() *session.Session
	SubmitAnswer(value string) bool
	Quit() bool
	EndSession()
}

// QuizScreen implements screen.Screen for an active session.
type QuizScreen struct {
	runner  Runner
	sess    *session.Session
	mc      components.MultiChoice
	elapsed time.Duration
	now     func() time.Time

	showingFeedback    bool
	showingQuitConfirm bool
	lastCorrect        bool
	answered           int
	done               bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscapeHandler = (*QuizScreen)(nil)
var _ screen.QuizTyper = (*QuizScreen)(nil)

// New creates a QuizScreen for the session the runner has just started.
func New(runner Runner, s *session.Session) *QuizScreen {
	q := &QuizScreen{
		runner: runner,
		sess:   s,
		now:    time.Now,
	}
	q.loadQuestion()
	return q
}

func (q *QuizScreen) Init() tea.Cmd {
	return tickCmd()
}

func (q *QuizScreen) Title() string {
	return "Quiz"
}

func (q *QuizScreen) QuizType() catalog.QuizType {
	return q.sess.QuizType
}

func (q *QuizScreen) HandlesEscape() bool {
	return true
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	if q.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Quit quiz"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if q.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: fmt.Sprintf("1-%d", len(q.mc.Options)), Description: "Answer"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (q *QuizScreen) loadQuestion() {
	cur, ok := q.sess.Current()
	if !ok {
		return
	}
	q.mc = components.NewMultiChoice("", cur.Options, cur.CorrectIndex())
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case timerTickMsg:
		return q.handleTimerTick()

	case feedbackDoneMsg:
		if msg.index != q.answered || !q.showingFeedback {
			return q, nil
		}
		return q.handleFeedbackDone()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

func (q *QuizScreen) handleTimerTick() (screen.Screen, tea.Cmd) {
	if q.done {
		return q, nil
	}
	q.elapsed = max(q.now().Sub(q.sess.StartTime), 0)
	return q, tickCmd()
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.done {
		return q, nil
	}
	key := msg.String()

	if q.showingQuitConfirm {
		switch key {
		case "y", "Y":
			q.showingQuitConfirm = false
			return q.quit()
		case "n", "N", "esc":
			q.showingQuitConfirm = false
		}
		return q, nil
	}

	if q.showingFeedback {
		return q.handleFeedbackDone()
	}

	if key == "esc" {
		q.showingQuitConfirm = true
		return q, nil
	}

	q.mc, _ = q.mc.Update(msg)
	if chosen, ok := q.mc.Chosen(); ok {
		return q.submit(chosen)
	}
	return q, nil
}

// submit answers the current question and shows feedback.
func (q *QuizScreen) submit(chosen string) (screen.Screen, tea.Cmd) {
	q.lastCorrect = q.runner.SubmitAnswer(chosen)
	q.syncSession()
	q.answered++
	q.showingFeedback = true

	if !q.lastCorrect {
		return q, nil
	}
	index := q.answered
	return q, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{index: index}
	})
}

func (q *QuizScreen) handleFeedbackDone() (screen.Screen, tea.Cmd) {
	q.showingFeedback = false
	if q.sess.IsComplete() {
		return q.finish()
	}
	q.loadQuestion()
	return q, nil
}

func (q *QuizScreen) quit() (screen.Screen, tea.Cmd) {
	q.runner.Quit()
	q.syncSession()
	return q.finish()
}

func (q *QuizScreen) syncSession() {
	if s := q.runner.Session(); s != nil {
		q.sess = s
	}
}

// finish swaps the quiz for its result so Esc on the result does not
// return to a finished quiz.
func (q *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	q.done = true
	if q.sess.EndTime != nil {
		q.elapsed = q.sess.Duration()
	}
	res := result.New(q.runner, session.BuildSummary(q.sess), q.sess.QuizType)
	return q, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: res}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
