package session

import (
	"math/rand/v2"
	"slices"

	"github.com/abhisek/capitalz/internal/catalog"
)

// History is the slice of the statistics store the selector consults.
type History interface {
	// Weakest returns asked items, weakest first. limit <= 0 means all.
	Weakest(qt catalog.QuizType, limit int) []catalog.Item
	// NeverAsked returns items without any recorded answer.
	NeverAsked(qt catalog.QuizType) []catalog.Item
}

// Selector picks session items biased toward weak and unseen items.
type Selector struct {
	rng *rand.Rand
}

// NewSelector returns a Selector drawing randomness from rng.
func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Plan selects up to count items from pool: half from the weakest asked
// items, three tenths from never-asked items and the rest at random. Each
// share is floored and clipped to what pool can supply. The result holds no
// duplicate IDs and is shuffled.
func (s *Selector) Plan(qt catalog.QuizType, count int, pool []catalog.Item, hist History) *Plan {
	plan := &Plan{}
	if count <= 0 || len(pool) == 0 {
		return plan
	}

	inPool := make(map[string]bool, len(pool))
	for _, it := range pool {
		inPool[it.ID] = true
	}
	chosen := make(map[string]bool, count)
	take := func(items []catalog.Item, n int, src Source) {
		for _, it := range items {
			if n == 0 {
				return
			}
			if !inPool[it.ID] || chosen[it.ID] {
				continue
			}
			chosen[it.ID] = true
			plan.Slots = append(plan.Slots, PlanSlot{Item: it, Source: src})
			n--
		}
	}

	// Weakest keep their ranking so the weakest in the pool win.
	weakCount := count * weakShareNum / weakShareDen
	take(hist.Weakest(qt, 0), weakCount, SourceWeak)

	never := slices.Clone(hist.NeverAsked(qt))
	s.shuffle(never)
	neverCount := count * neverAskedShareNum / neverAskedShareDen
	take(never, neverCount, SourceNeverAsked)

	rest := make([]catalog.Item, 0, len(pool))
	for _, it := range pool {
		if !chosen[it.ID] {
			rest = append(rest, it)
		}
	}
	s.shuffle(rest)
	take(rest, count-len(plan.Slots), SourceRandom)

	s.rng.Shuffle(len(plan.Slots), func(i, j int) {
		plan.Slots[i], plan.Slots[j] = plan.Slots[j], plan.Slots[i]
	})
	return plan
}

// Select returns the items of Plan.
func (s *Selector) Select(qt catalog.QuizType, count int, pool []catalog.Item, hist History) []catalog.Item {
	return s.Plan(qt, count, pool, hist).Items()
}

func (s *Selector) shuffle(items []catalog.Item) {
	s.rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
}
