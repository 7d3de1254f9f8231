package app

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/router"
	"github.com/abhisek/capitalz/internal/screen"
	"github.com/abhisek/capitalz/internal/screens/home"
	"github.com/abhisek/capitalz/internal/screens/quiz"
	"github.com/abhisek/capitalz/internal/screens/welcome"
	"github.com/abhisek/capitalz/internal/session"
	"github.com/abhisek/capitalz/internal/stats"
	"github.com/abhisek/capitalz/internal/ui/layout"
)

// Options holds the services and settings the UI runs with.
type Options struct {
	Catalogs     *catalog.Registry
	Stats        *stats.Store
	Orchestrator *session.Orchestrator
	QuizType     catalog.QuizType
	Questions    int
	Logger       *slog.Logger

	// StartCategory, when StartQuiz is set, skips the welcome and home
	// screens and opens a quiz directly.
	StartQuiz     bool
	StartCategory string

	// SkipWelcome opens the home screen without the splash animation.
	SkipWelcome bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	stats  *stats.Store
	width  int
	height int
}

// newAppModel creates a new AppModel with the welcome or home screen, and
// a quiz on top when one was requested.
func newAppModel(opts Options) (AppModel, error) {
	deps := home.Deps{
		Catalogs:     opts.Catalogs,
		Stats:        opts.Stats,
		Orchestrator: opts.Orchestrator,
		QuizType:     opts.QuizType,
		Questions:    opts.Questions,
	}
	homeFactory := func() screen.Screen { return home.New(deps) }

	m := AppModel{stats: opts.Stats}
	switch {
	case opts.StartQuiz:
		m.router = router.New(homeFactory())
		s, err := opts.Orchestrator.StartSession(opts.QuizType, opts.Questions, opts.StartCategory)
		if err != nil {
			return AppModel{}, fmt.Errorf("start quiz: %w", err)
		}
		m.router.Push(quiz.New(opts.Orchestrator, s))
	case opts.SkipWelcome:
		m.router = router.New(homeFactory())
	default:
		m.router = router.New(welcome.New(homeFactory, teasers(opts.Catalogs, teaserCount)...))
	}
	return m, nil
}

const teaserCount = 6

// teasers picks n sample prompts spread evenly over the registered catalogs.
func teasers(reg *catalog.Registry, n int) []string {
	var out []string
	types := reg.Types()
	for i := 0; i < n && len(types) > 0; i++ {
		qt := types[i%len(types)]
		cat, err := reg.Get(qt)
		if err != nil || cat.Len() == 0 {
			continue
		}
		items := cat.Items()
		step := max(len(items)/(n+1), 1)
		item := items[((i/len(types))+1)*step%len(items)]
		out = append(out, cat.Definition().Prompt(item))
	}
	return out
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.EscapeHandler); ok && h.HandlesEscape() {
				break
			}
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) headerStats() layout.HeaderStats {
	qt, ok := m.router.Active().(screen.QuizTyper)
	if !ok || m.stats == nil {
		return layout.HeaderStats{}
	}
	o := m.stats.Overview(qt.QuizType())
	return layout.HeaderStats{
		Answered:      o.Answered,
		Accuracy:      o.Accuracy,
		CurrentStreak: o.CurrentStreak,
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	v.WindowTitle = "Capitalz"
	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerStats(), m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	model, err := newAppModel(opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model)

	// Store changes happen inside Update; Send must not block the loop.
	unsubscribe := opts.Stats.Subscribe(func(c stats.Change) {
		go p.Send(c)
	})
	defer unsubscribe()

	logger.Debug("ui starting", "quiz_type", opts.QuizType, "start_quiz", opts.StartQuiz)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	if opts.Orchestrator.Active() {
		opts.Orchestrator.Quit()
		logger.Info("ui exited during a quiz; session discarded")
	}
	return nil
}
