package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
)

// MenuItem is one row of a Menu. Rows without an Action are settings rows
// the owning screen handles itself.
type MenuItem struct {
	Label  string
	Hotkey string // optional single key that selects and runs the item
	Action func() tea.Cmd
}

// Menu is a vertical list with a wrapping cursor.
type Menu struct {
	Items    []MenuItem
	Selected int
}

func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Current returns the item under the cursor.
func (m Menu) Current() (MenuItem, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Selected], true
}

// Labels returns the labels of the items from index from on.
func (m Menu) Labels(from int) []string {
	if from < 0 || from > len(m.Items) {
		return nil
	}
	out := make([]string, 0, len(m.Items)-from)
	for _, it := range m.Items[from:] {
		out = append(out, it.Label)
	}
	return out
}

// Update moves the cursor, runs the current item on Enter and runs any
// item whose hotkey was pressed.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
		return m, nil
	case "down", "j":
		m.Selected = (m.Selected + 1) % len(m.Items)
		return m, nil
	case "home", "g":
		m.Selected = 0
		return m, nil
	case "end", "G":
		m.Selected = len(m.Items) - 1
		return m, nil
	case "enter":
		return m, m.run()
	}

	for i, it := range m.Items {
		if it.Hotkey != "" && strings.EqualFold(it.Hotkey, key) {
			m.Selected = i
			return m, m.run()
		}
	}
	return m, nil
}

func (m Menu) run() tea.Cmd {
	it, ok := m.Current()
	if !ok || it.Action == nil {
		return nil
	}
	return it.Action()
}
