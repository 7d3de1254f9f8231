package home

import (
	"math/rand/v2"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/router"
	"github.com/abhisek/capitalz/internal/session"
	"github.com/abhisek/capitalz/internal/stats"
	"github.com/abhisek/capitalz/internal/store"
)

func newHome(t *testing.T) (*HomeScreen, Deps) {
	t.Helper()
	reg := catalog.Builtin()
	st := stats.New(store.NewMemory(), reg)
	deps := Deps{
		Catalogs:     reg,
		Stats:        st,
		Orchestrator: session.NewOrchestrator(reg, st, session.WithRand(rand.New(rand.NewPCG(3, 4)))),
		QuizType:     catalog.CountryCapitals,
		Questions:    10,
	}
	return New(deps), deps
}

func press(h *HomeScreen, code rune) tea.Cmd {
	_, cmd := h.Update(tea.KeyPressMsg{Code: code})
	return cmd
}

func pushed(t *testing.T, cmd tea.Cmd) router.PushScreenMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok, "expected a push")
	return msg
}

func TestNew_Defaults(t *testing.T) {
	h, _ := newHome(t)
	assert.Equal(t, rowStart, h.menu.Selected)
	assert.Equal(t, catalog.CountryCapitals, h.QuizType())
	assert.Equal(t, "", h.Category())
	assert.Equal(t, 10, h.Count())
	assert.Equal(t, "Continent", h.pickers[rowCategory].Label)
}

func TestCountOptions_IncludesConfiguredDefault(t *testing.T) {
	assert.Equal(t, []string{"5", "7", "10", "15", "20", "25"}, countOptions(7))
	assert.Equal(t, []string{"5", "10", "15", "20", "25"}, countOptions(10))
}

func TestQuizTypeOptions_ListsCustom(t *testing.T) {
	opts := quizTypeOptions(catalog.Builtin())
	assert.Equal(t, []string{
		string(catalog.CountryCapitals),
		string(catalog.USStateCapitals),
		string(catalog.CountryFlags),
		string(catalog.Custom),
	}, opts)
}

func TestPickers_CycleAndResetCategory(t *testing.T) {
	h, _ := newHome(t)

	press(h, tea.KeyUp) // questions
	press(h, tea.KeyRight)
	assert.Equal(t, 15, h.Count())

	press(h, tea.KeyUp) // category
	press(h, tea.KeyRight)
	assert.NotEmpty(t, h.Category())

	press(h, tea.KeyUp) // quiz type
	press(h, tea.KeyRight)
	assert.Equal(t, catalog.USStateCapitals, h.QuizType())
	assert.Equal(t, "", h.Category(), "category resets with the quiz type")
	assert.Equal(t, "Region", h.pickers[rowCategory].Label)

	press(h, tea.KeyLeft)
	assert.Equal(t, catalog.CountryCapitals, h.QuizType())
}

func TestStart_PushesQuiz(t *testing.T) {
	h, deps := newHome(t)

	msg := pushed(t, press(h, tea.KeyEnter))
	assert.Equal(t, "Quiz", msg.Screen.Title())
	assert.True(t, deps.Orchestrator.Active())
	assert.Len(t, deps.Orchestrator.Session().Questions, 10)
}

func TestStart_ShortcutKey(t *testing.T) {
	h, deps := newHome(t)
	h.menu.Selected = rowStats

	_, cmd := h.Update(tea.KeyPressMsg{Code: 's', Text: "s"})
	msg := pushed(t, cmd)
	assert.Equal(t, "Quiz", msg.Screen.Title())
	assert.True(t, deps.Orchestrator.Active())
}

func TestStart_CustomWithoutCatalog(t *testing.T) {
	h, deps := newHome(t)
	for h.QuizType() != catalog.Custom {
		h.pickers[rowType].Next()
	}

	msg := pushed(t, h.start())
	assert.Equal(t, string(catalog.Custom), msg.Screen.Title())
	assert.False(t, deps.Orchestrator.Active())
}

func TestOpenStats(t *testing.T) {
	h, _ := newHome(t)
	press(h, tea.KeyDown)
	msg := pushed(t, press(h, tea.KeyEnter))
	assert.Equal(t, "Statistics", msg.Screen.Title())
}

func TestStatsChangeRefreshesOverview(t *testing.T) {
	h, deps := newHome(t)
	fr := catalog.Item{ID: "France", DisplayName: "France", Answer: "Paris", Category: "Europe"}
	deps.Stats.RecordAnswer(fr, true, catalog.CountryCapitals, "Europe")
	assert.Equal(t, 0, h.overview.Answered)

	h.Update(stats.Change{Kind: stats.ChangeAnswer, QuizType: catalog.CountryCapitals})
	assert.Equal(t, 1, h.overview.Answered)
	assert.Equal(t, 1, h.overview.CurrentStreak)
}

func TestView(t *testing.T) {
	h, _ := newHome(t)
	v := h.View(100, 30)
	assert.Contains(t, v, "START QUIZ")
	assert.Contains(t, v, "STATISTICS")
	assert.Contains(t, v, "Country Capitals")
}
