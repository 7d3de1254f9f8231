package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitalz/internal/router"
	"github.com/abhisek/capitalz/internal/screen"
	"github.com/abhisek/capitalz/internal/ui/components"
	"github.com/abhisek/capitalz/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	twinkleAt    = 500 * time.Millisecond
	bannerAt     = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond

	ticksPerSpin   = 3  // globe frame advance
	ticksPerTeaser = 10 // sample question rotation
)

// globeFrames spin the land masses around the globe outline.
var globeFrames = []string{
	`    .-'''''-.
  .'  .-.    '.
 /   (   )  _  \
|  _  '-'  ( )  |
 \ ( )    .-.  /
  '.    (   ).'
    '-.....-'`,
	`    .-'''''-.
  .'    .-.  '.
 / _   (   )   \
|( )   '-'  _   |
 \   .-.   ( ) /
  '.(   )    .'
    '-.....-'`,
	`    .-'''''-.
  .' _     .-.'.
 / ( )    (   )\
|      _   '-'  |
 \ .-.( )      /
  '(   )     .'
    '-.....-'`,
}

var twinkleFrames = []string{"✦", "✧"}

type tickMsg time.Time

// WelcomeScreen spins a globe, then shows the banner and a rotating
// sample question until a key is pressed.
type WelcomeScreen struct {
	homeFactory  func() screen.Screen
	teasers      []string
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that replaces itself with the screen built by
// homeFactory. teasers are sample questions shown under the banner.
func New(homeFactory func() screen.Screen, teasers ...string) *WelcomeScreen {
	return &WelcomeScreen{
		homeFactory: homeFactory,
		teasers:     teasers,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		w.elapsed = min(w.elapsed+tickInterval, totalDur)
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) globe() string {
	frame := globeFrames[(w.tickCount/ticksPerSpin)%len(globeFrames)]
	rendered := lipgloss.NewStyle().Foreground(theme.Secondary).Render(frame)
	if w.elapsed < twinkleAt {
		return rendered
	}

	i := w.tickCount % len(twinkleFrames)
	a := lipgloss.NewStyle().Foreground(theme.Accent).Render(twinkleFrames[i])
	b := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Render(twinkleFrames[1-i])
	lines := strings.Split(rendered, "\n")
	lines[1] = a + "  " + lines[1] + "  " + b
	lines[5] = b + "  " + lines[5] + "  " + a
	return strings.Join(lines, "\n")
}

// teaser returns the sample question for the current tick, "" when none.
func (w *WelcomeScreen) teaser() string {
	if len(w.teasers) == 0 {
		return ""
	}
	return w.teasers[(w.tickCount/ticksPerTeaser)%len(w.teasers)]
}

func (w *WelcomeScreen) View(width, height int) string {
	sections := []string{w.globe()}

	if w.elapsed >= bannerAt {
		sections = append(sections, "", components.PrimaryBanner(width), "")
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true).
			Render("How well do you know the world?"))

		if q := w.teaser(); q != "" {
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.ArcadeYellow).
				Render(q))
		}

		sections = append(sections, "", lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Italic(true).
			Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}
