package home

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/router"
	"github.com/abhisek/capitalz/internal/screen"
	"github.com/abhisek/capitalz/internal/screens/placeholder"
	"github.com/abhisek/capitalz/internal/screens/quiz"
	statsscreen "github.com/abhisek/capitalz/internal/screens/stats"
	"github.com/abhisek/capitalz/internal/session"
	"github.com/abhisek/capitalz/internal/stats"
	"github.com/abhisek/capitalz/internal/ui/components"
	"github.com/abhisek/capitalz/internal/ui/layout"
)

// AllCategories is the category picker entry for an unfiltered session.
const AllCategories = "All"

var countChoices = []int{5, 10, 15, 20, 25}

// Deps are the services the home screen starts quizzes with.
type Deps struct {
	Catalogs     *catalog.Registry
	Stats        *stats.Store
	Orchestrator *session.Orchestrator
	QuizType     catalog.QuizType
	Questions    int
}

// Rows of the home menu. The first three are pickers.
const (
	rowType = iota
	rowCategory
	rowCount
	rowStart
	rowStats
	rowExit
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps     Deps
	menu     components.Menu
	pickers  []components.Cycler
	overview stats.Overview
	notice   string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)
var _ screen.QuizTyper = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.QuizType == "" {
		deps.QuizType = catalog.DefaultQuizType
	}
	if deps.Questions <= 0 {
		deps.Questions = session.DefaultQuestionCount
	}

	h := &HomeScreen{deps: deps}

	types := quizTypeOptions(deps.Catalogs)
	h.pickers = []components.Cycler{
		components.NewCycler("Quiz", types, string(deps.QuizType)),
		{},
		components.NewCycler("Questions", countOptions(deps.Questions), strconv.Itoa(deps.Questions)),
	}
	h.resetCategories()

	items := []components.MenuItem{
		{Label: "QUIZ"},
		{Label: "CATEGORY"},
		{Label: "QUESTIONS"},
		{Label: "START QUIZ", Hotkey: "s", Action: h.start},
		{Label: "STATISTICS", Action: h.openStats},
		{Label: "EXIT", Hotkey: "q", Action: func() tea.Cmd { return tea.Quit }},
	}
	h.menu = components.NewMenu(items)
	h.menu.Selected = rowStart
	h.refresh()
	return h
}

// quizTypeOptions lists the registered types, plus Custom so users can
// discover catalog import.
func quizTypeOptions(reg *catalog.Registry) []string {
	var out []string
	for _, qt := range reg.Types() {
		out = append(out, string(qt))
	}
	if !reg.Has(catalog.Custom) {
		out = append(out, string(catalog.Custom))
	}
	return out
}

func countOptions(def int) []string {
	counts := slices.Clone(countChoices)
	if !slices.Contains(counts, def) {
		counts = append(counts, def)
		slices.Sort(counts)
	}
	out := make([]string, len(counts))
	for i, n := range counts {
		out[i] = strconv.Itoa(n)
	}
	return out
}

// QuizType returns the selected quiz type.
func (h *HomeScreen) QuizType() catalog.QuizType {
	return catalog.QuizType(h.pickers[rowType].Value())
}

// Category returns the selected category, "" for all.
func (h *HomeScreen) Category() string {
	c := h.pickers[rowCategory].Value()
	if c == AllCategories {
		return ""
	}
	return c
}

// Count returns the selected number of questions.
func (h *HomeScreen) Count() int {
	n, err := strconv.Atoi(h.pickers[rowCount].Value())
	if err != nil {
		return h.deps.Questions
	}
	return n
}

func (h *HomeScreen) resetCategories() {
	qt := h.QuizType()
	label := "Category"
	if c, err := h.deps.Catalogs.Get(qt); err == nil && c.Definition().CategoryLabel != "" {
		label = c.Definition().CategoryLabel
	}
	options := append([]string{AllCategories}, h.deps.Catalogs.Categories(qt)...)
	h.pickers[rowCategory] = components.NewCycler(label, options, AllCategories)
}

func (h *HomeScreen) refresh() {
	h.overview = h.deps.Stats.Overview(h.QuizType())
}

func (h *HomeScreen) start() tea.Cmd {
	qt := h.QuizType()
	if !h.deps.Catalogs.Has(qt) {
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: placeholder.New(
				string(qt),
				"No custom catalog loaded.\n\nImport one with\ncapitalz --catalog countries.xlsx",
			)}
		}
	}

	s, err := h.deps.Orchestrator.StartSession(qt, h.Count(), h.Category())
	if err != nil {
		h.notice = errorNotice(err)
		return nil
	}
	h.notice = ""
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: quiz.New(h.deps.Orchestrator, s)}
	}
}

func errorNotice(err error) string {
	if errors.Is(err, catalog.ErrUnknownQuizType) {
		return "That quiz type is not available"
	}
	return err.Error()
}

func (h *HomeScreen) openStats() tea.Cmd {
	st := statsscreen.New(h.deps.Stats, h.deps.Catalogs, h.QuizType())
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: st}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

// Resume refreshes the numbers after a quiz or a reset.
func (h *HomeScreen) Resume() tea.Cmd {
	h.refresh()
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stats.Change:
		h.refresh()
		return h, nil

	case tea.KeyMsg:
		if h.menu.Selected <= rowCount {
			switch msg.String() {
			case "left", "h":
				h.cycle(false)
				return h, nil
			case "right", "l", "enter":
				h.cycle(true)
				return h, nil
			}
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) cycle(forward bool) {
	row := h.menu.Selected
	if forward {
		h.pickers[row].Next()
	} else {
		h.pickers[row].Prev()
	}
	if row == rowType {
		h.resetCategories()
		h.refresh()
	}
	h.notice = ""
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "↑↓", Description: "Navigate"}}
	if h.menu.Selected <= rowCount {
		hints = append(hints, layout.KeyHint{Key: "←→", Description: "Change"})
	} else {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: "Select"})
	}
	return append(hints,
		layout.KeyHint{Key: "S", Description: "Start"},
		layout.KeyHint{Key: "Q", Description: "Quit"},
	)
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(h.overview), cw))
	}

	sections = append(sections, renderStatsBar(h.overview, cw, compact))

	focused := -1
	if h.menu.Selected <= rowCount {
		focused = h.menu.Selected
	}
	sections = append(sections, renderPickers(h.pickers, focused, cw))

	selected := h.menu.Selected - rowStart
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Labels(rowStart), selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Items[rowStart:], selected, cw))
	}

	if h.notice != "" {
		sections = append(sections, renderNotice(h.notice, cw))
	}

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
