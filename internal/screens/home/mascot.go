package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitalz/internal/stats"
	"github.com/abhisek/capitalz/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota
	MascotCelebrating               // hot streak
	MascotAlert                     // accuracy slipping
)

const (
	celebrateStreak = 5
	alertAccuracy   = 0.5
	alertMinAnswers = 20
)

const mascotIdle = ` .-"""-.
/ ◉   ◉ \
|   ‿   |
\ ~~~~~ /
 '-...-'`

const mascotCelebrating = ` .-"""-.
/ ★   ★ \
|   ▽   |
\ ~~~~~ /
 '-...-'
  \\ //`

const mascotAlert = ` .-"""-.
/ ◉   ◉ \ !
|   o   |
\ ~~~~~ /
 '-...-'`

// mascotFor picks the variant for the current numbers.
func mascotFor(o stats.Overview) MascotVariant {
	switch {
	case o.CurrentStreak >= celebrateStreak:
		return MascotCelebrating
	case o.Answered >= alertMinAnswers && o.Accuracy < alertAccuracy:
		return MascotAlert
	default:
		return MascotIdle
	}
}

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Secondary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
