package stats

import (
	"fmt"
	"strconv"

	"charm.land/bubbles/v2/table"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/screen"
	qstats "github.com/abhisek/capitalz/internal/stats"
	"github.com/abhisek/capitalz/internal/ui/components"
	"github.com/abhisek/capitalz/internal/ui/layout"
)

type tab int

const (
	tabOverview tab = iota
	tabItems
)

// recentSessions is the number of history entries on the overview.
const recentSessions = 5

// StatsScreen shows the statistics of one quiz type.
type StatsScreen struct {
	store    *qstats.Store
	catalogs *catalog.Registry
	quizType catalog.QuizType

	tab          tab
	sortBy       qstats.SortBy
	search       components.TextInput
	table        table.Model
	confirmReset bool

	data *qstats.QuizTypeStats
	rows []qstats.ItemRow

	tableWidth, tableHeight int
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)
var _ screen.EscapeHandler = (*StatsScreen)(nil)
var _ screen.QuizTyper = (*StatsScreen)(nil)

// New creates a StatsScreen for qt.
func New(store *qstats.Store, catalogs *catalog.Registry, qt catalog.QuizType) *StatsScreen {
	s := &StatsScreen{
		store:    store,
		catalogs: catalogs,
		quizType: qt,
		search:   components.NewTextInput("Search", "name or answer", 24),
		table: table.New(
			table.WithFocused(true),
			table.WithStyles(tableStyles()),
		),
	}
	s.reload()
	return s
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}

func (s *StatsScreen) QuizType() catalog.QuizType {
	return s.quizType
}

// HandlesEscape keeps Esc inside the screen while a prompt is open.
func (s *StatsScreen) HandlesEscape() bool {
	return s.confirmReset || s.search.Focused()
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.confirmReset:
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset"},
			{Key: "N", Description: "Cancel"},
		}
	case s.search.Focused():
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
			{Key: "Esc", Description: "Clear"},
		}
	case s.tab == tabItems:
		return []layout.KeyHint{
			{Key: "Tab", Description: "Overview"},
			{Key: "/", Description: "Search"},
			{Key: "S", Description: "Sort: " + s.sortBy.String()},
			{Key: "T", Description: "Quiz type"},
			{Key: "R", Description: "Reset"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Tab", Description: "Items"},
		{Key: "T", Description: "Quiz type"},
		{Key: "R", Description: "Reset"},
		{Key: "Esc", Description: "Back"},
	}
}

// reload re-reads the statistics and rebuilds the item table.
func (s *StatsScreen) reload() {
	s.data = s.store.Stats(s.quizType)
	s.rows = s.store.ItemRows(s.quizType, s.sortBy, s.search.Value())
	s.table.SetColumns(columns(s.tableWidth, s.categoryLabel()))
	s.table.SetRows(tableRows(s.rows))
	s.table.SetCursor(0)
}

func (s *StatsScreen) categoryLabel() string {
	if c, err := s.catalogs.Get(s.quizType); err == nil && c.Definition().CategoryLabel != "" {
		return c.Definition().CategoryLabel
	}
	return "Category"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case qstats.Change:
		if msg.QuizType == "" || msg.QuizType == s.quizType {
			s.reload()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *StatsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.confirmReset {
		switch key {
		case "y", "Y":
			s.confirmReset = false
			s.store.Reset(s.quizType)
			s.reload()
		case "n", "N", "esc":
			s.confirmReset = false
		}
		return s, nil
	}

	if s.search.Focused() {
		switch key {
		case "enter":
			s.search.Blur()
			return s, nil
		case "esc":
			s.search.Reset()
			s.search.Blur()
			s.reload()
			return s, nil
		}
		var cmd tea.Cmd
		before := s.search.Value()
		s.search, cmd = s.search.Update(msg)
		if s.search.Value() != before {
			s.reload()
		}
		return s, cmd
	}

	switch key {
	case "tab":
		if s.tab == tabOverview {
			s.tab = tabItems
		} else {
			s.tab = tabOverview
		}
		return s, nil
	case "t":
		s.nextQuizType()
		return s, nil
	case "r":
		s.confirmReset = true
		return s, nil
	}

	if s.tab != tabItems {
		return s, nil
	}

	switch key {
	case "/":
		return s, s.search.Focus()
	case "s":
		s.sortBy = s.sortBy.Next()
		s.reload()
		return s, nil
	}

	var cmd tea.Cmd
	s.table, cmd = s.table.Update(msg)
	return s, cmd
}

func (s *StatsScreen) nextQuizType() {
	types := s.catalogs.Types()
	if len(types) == 0 {
		return
	}
	next := types[0]
	for i, qt := range types {
		if qt == s.quizType {
			next = types[(i+1)%len(types)]
			break
		}
	}
	s.quizType = next
	s.reload()
}

func (s *StatsScreen) resize(width, height int) {
	if width == s.tableWidth && height == s.tableHeight {
		return
	}
	s.tableWidth, s.tableHeight = width, height
	s.table.SetColumns(columns(width, s.categoryLabel()))
	s.table.SetWidth(width)
	s.table.SetHeight(height)
}

func columns(width int, categoryLabel string) []table.Column {
	const fixed = 14 + 6 + 6 + 10
	const padding = 2 * 6
	free := max(width-fixed-padding, 24)
	return []table.Column{
		{Title: "Item", Width: free / 2},
		{Title: "Answer", Width: free - free/2},
		{Title: categoryLabel, Width: 14},
		{Title: "Asked", Width: 6},
		{Title: "Acc", Width: 6},
		{Title: "Last", Width: 10},
	}
}

func tableRows(rows []qstats.ItemRow) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		asked, acc, last := "-", "-", "never"
		if r.Stat != nil && r.Stat.TimesAsked > 0 {
			asked = strconv.Itoa(r.Stat.TimesAsked)
			acc = fmt.Sprintf("%.0f%%", r.Stat.Accuracy()*100)
			if r.Stat.LastAsked != nil {
				last = r.Stat.LastAsked.Local().Format("Jan 02")
			}
		}
		out = append(out, table.Row{r.Item.ID, r.Item.Answer, r.Item.Category, asked, acc, last})
	}
	return out
}
