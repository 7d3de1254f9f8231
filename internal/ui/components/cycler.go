package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/capitalz/internal/ui/theme"
)

// Cycler is a single-line picker that steps through a fixed list of
// values with left and right.
type Cycler struct {
	Label   string
	Options []string
	Index   int
}

// NewCycler creates a cycler positioned on the first option equal to
// initial, or on the first option.
func NewCycler(label string, options []string, initial string) Cycler {
	c := Cycler{Label: label, Options: options}
	for i, o := range options {
		if o == initial {
			c.Index = i
			break
		}
	}
	return c
}

// Next moves to the following option, wrapping around.
func (c *Cycler) Next() {
	if len(c.Options) == 0 {
		return
	}
	c.Index = (c.Index + 1) % len(c.Options)
}

// Prev moves to the preceding option, wrapping around.
func (c *Cycler) Prev() {
	if len(c.Options) == 0 {
		return
	}
	c.Index = (c.Index - 1 + len(c.Options)) % len(c.Options)
}

// Value returns the current option, or "" when there are none.
func (c Cycler) Value() string {
	if c.Index < 0 || c.Index >= len(c.Options) {
		return ""
	}
	return c.Options[c.Index]
}

// View renders "Label  ◂ value ▸".
func (c Cycler) View(focused bool) string {
	value := c.Value()
	if len(c.Options) > 1 {
		value = "◂ " + value + " ▸"
	}
	valueStyle := lipgloss.NewStyle().Foreground(theme.Text)
	if focused {
		valueStyle = lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Label+"  ") +
		valueStyle.Render(value)
}
