package quiz

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/router"
	"github.com/abhisek/capitalz/internal/screens/result"
	"github.com/abhisek/capitalz/internal/session"
	"github.com/abhisek/capitalz/internal/stats"
	"github.com/abhisek/capitalz/internal/store"
)

var testItems = []catalog.Item{
	{ID: "France", DisplayName: "France", Answer: "Paris", Category: "Europe"},
	{ID: "Spain", DisplayName: "Spain", Answer: "Madrid", Category: "Europe"},
	{ID: "Italy", DisplayName: "Italy", Answer: "Rome", Category: "Europe"},
	{ID: "Japan", DisplayName: "Japan", Answer: "Tokyo", Category: "Asia"},
	{ID: "Peru", DisplayName: "Peru", Answer: "Lima", Category: "South America"},
	{ID: "Chile", DisplayName: "Chile", Answer: "Santiago", Category: "South America"},
}

type fixture struct {
	stats *stats.Store
	orch  *session.Orchestrator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	reg, err := catalog.NewRegistry(catalog.Definition{
		Type:           catalog.CountryCapitals,
		PromptTemplate: "What is the capital of %s?",
		Items:          testItems,
	})
	require.NoError(t, err)
	st := stats.New(store.NewMemory(), reg)
	orch := session.NewOrchestrator(reg, st, session.WithRand(rand.New(rand.NewPCG(7, 11))))
	return &fixture{stats: st, orch: orch}
}

func (f *fixture) start(t *testing.T, count int) *QuizScreen {
	t.Helper()
	s, err := f.orch.StartSession(catalog.CountryCapitals, count, "")
	require.NoError(t, err)
	return New(f.orch, s)
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// answer presses the number key of the correct option, or of a wrong one.
func answer(t *testing.T, q *QuizScreen, correct bool) tea.Cmd {
	t.Helper()
	cur, ok := q.sess.Current()
	require.True(t, ok)
	idx := cur.CorrectIndex()
	if !correct {
		idx = (idx + 1) % len(cur.Options)
	}
	_, cmd := q.Update(keyPress(rune('1' + idx)))
	return cmd
}

func TestQuizScreen_ShowsPromptAndProgress(t *testing.T) {
	q := newFixture(t).start(t, 5)
	view := q.View(100, 30)

	cur, _ := q.sess.Current()
	assert.Contains(t, view, cur.Prompt())
	assert.Contains(t, view, "Q 1/5")
	for _, opt := range cur.Options {
		assert.Contains(t, view, opt)
	}
}

func TestQuizScreen_CorrectAnswerAutoAdvances(t *testing.T) {
	q := newFixture(t).start(t, 5)

	cmd := answer(t, q, true)
	assert.True(t, q.showingFeedback)
	assert.True(t, q.lastCorrect)
	require.NotNil(t, cmd, "correct answers schedule the next question")
	assert.Contains(t, q.View(100, 30), "Correct!")

	q.Update(feedbackDoneMsg{index: 1})
	assert.False(t, q.showingFeedback)
	assert.Equal(t, 1, q.sess.CurrentIndex)
	assert.Contains(t, q.View(100, 30), "Q 2/5")
}

func TestQuizScreen_WrongAnswerWaitsForKey(t *testing.T) {
	q := newFixture(t).start(t, 5)
	cur, _ := q.sess.Current()

	cmd := answer(t, q, false)
	assert.Nil(t, cmd)
	assert.True(t, q.showingFeedback)
	view := q.View(100, 30)
	assert.Contains(t, view, "Not quite")
	assert.Contains(t, view, "Correct answer: "+cur.CorrectAnswer)

	q.Update(keyPress(' '))
	assert.False(t, q.showingFeedback)
}

func TestQuizScreen_StaleFeedbackTimerIgnored(t *testing.T) {
	q := newFixture(t).start(t, 5)

	answer(t, q, true)
	q.Update(keyPress(' ')) // dismissed early
	answer(t, q, false)

	q.Update(feedbackDoneMsg{index: 1})
	assert.True(t, q.showingFeedback, "timer from the first answer must not dismiss the second")
}

func TestQuizScreen_ArrowsAndEnter(t *testing.T) {
	q := newFixture(t).start(t, 5)

	q.Update(specialKey(tea.KeyDown))
	assert.Equal(t, 1, q.mc.Selected)
	q.Update(specialKey(tea.KeyUp))
	assert.Equal(t, 0, q.mc.Selected)

	q.Update(specialKey(tea.KeyEnter))
	assert.True(t, q.showingFeedback)
	assert.Equal(t, 1, q.sess.CurrentIndex)
}

func TestQuizScreen_CompleteRecordsAndShowsResult(t *testing.T) {
	f := newFixture(t)
	q := f.start(t, 5)

	var cmd tea.Cmd
	for i := 0; i < 5; i++ {
		answer(t, q, i%2 == 0)
		_, cmd = q.Update(keyPress(' '))
	}

	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok, "expected ReplaceScreenMsg")
	res, ok := msg.Screen.(*result.ResultScreen)
	require.True(t, ok)
	assert.Equal(t, "Results", res.Title())

	o := f.stats.Overview(catalog.CountryCapitals)
	assert.Equal(t, 5, o.Answered)
	assert.Equal(t, 3, o.Correct)
	assert.Equal(t, 1, o.Sessions)
}

func TestQuizScreen_QuitConfirmation(t *testing.T) {
	f := newFixture(t)
	q := f.start(t, 5)
	answer(t, q, true)
	q.Update(keyPress(' '))

	q.Update(specialKey(tea.KeyEscape))
	assert.True(t, q.showingQuitConfirm)
	assert.Contains(t, q.View(100, 30), "Quit this quiz?")

	q.Update(keyPress('n'))
	assert.False(t, q.showingQuitConfirm)
	assert.True(t, f.orch.Active())

	q.Update(specialKey(tea.KeyEscape))
	_, cmd := q.Update(keyPress('y'))
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.Equal(t, "Quiz Canceled", msg.Screen.Title())

	assert.False(t, f.orch.Active())
	assert.Equal(t, 0, f.stats.Overview(catalog.CountryCapitals).Answered, "quit discards answers")
}

func TestQuizScreen_TimerTick(t *testing.T) {
	q := newFixture(t).start(t, 5)
	q.now = func() time.Time { return q.sess.StartTime.Add(75 * time.Second) }

	_, cmd := q.Update(timerTickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Contains(t, q.View(100, 30), "1:15")
}

func TestQuizScreen_KeyHints(t *testing.T) {
	q := newFixture(t).start(t, 5)
	hints := q.KeyHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "1-"+strconv.Itoa(len(q.mc.Options)), hints[0].Key)

	q.Update(specialKey(tea.KeyEscape))
	hints = q.KeyHints()
	assert.True(t, strings.EqualFold(hints[0].Key, "y"))
}
