package session

import "github.com/abhisek/capitalz/internal/catalog"

// Source records why an item was selected for a session.
type Source string

const (
	SourceWeak       Source = "weak"
	SourceNeverAsked Source = "never-asked"
	SourceRandom     Source = "random"
)

// PlanSlot is one selected item and the group it was drawn from.
type PlanSlot struct {
	Item   catalog.Item
	Source Source
}

// Plan is the shuffled item list for a new session.
type Plan struct {
	Slots []PlanSlot
}

// Items returns the planned items in session order.
func (p *Plan) Items() []catalog.Item {
	out := make([]catalog.Item, len(p.Slots))
	for i, s := range p.Slots {
		out[i] = s.Item
	}
	return out
}

// Count returns the number of slots drawn from src.
func (p *Plan) Count(src Source) int {
	n := 0
	for _, s := range p.Slots {
		if s.Source == src {
			n++
		}
	}
	return n
}

// MinPoolSize is the smallest category pool used for sizing a session.
// Smaller pools size against the full catalog.
const MinPoolSize = 5

// DefaultQuestionCount is the session length used when none is configured.
const DefaultQuestionCount = 10

// Selection mix as fractions of the requested count.
const (
	weakShareNum       = 1
	weakShareDen       = 2
	neverAskedShareNum = 3
	neverAskedShareDen = 10
)
