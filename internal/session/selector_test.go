package session

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/abhisek/capitalz/internal/catalog"
)

// fakeHistory serves fixed weak and never-asked lists.
type fakeHistory struct {
	weak  []catalog.Item
	never []catalog.Item
}

func (f *fakeHistory) Weakest(_ catalog.QuizType, limit int) []catalog.Item {
	if limit > 0 && limit < len(f.weak) {
		return append([]catalog.Item(nil), f.weak[:limit]...)
	}
	return append([]catalog.Item(nil), f.weak...)
}

func (f *fakeHistory) NeverAsked(catalog.QuizType) []catalog.Item {
	return append([]catalog.Item(nil), f.never...)
}

func makeItems(prefix string, n int, category string) []catalog.Item {
	items := make([]catalog.Item, n)
	for i := range items {
		id := fmt.Sprintf("%s%02d", prefix, i)
		items[i] = catalog.Item{ID: id, DisplayName: id, Answer: "ans-" + id, Category: category}
	}
	return items
}

func testRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed*31+7))
}

func assertNoDuplicates(t *testing.T, plan *Plan) {
	t.Helper()
	seen := make(map[string]bool)
	for _, s := range plan.Slots {
		if seen[s.Item.ID] {
			t.Fatalf("duplicate item %q in plan", s.Item.ID)
		}
		seen[s.Item.ID] = true
	}
}

func TestSelector_Proportions(t *testing.T) {
	weak := makeItems("w", 6, "x")
	never := makeItems("n", 4, "x")
	pool := append(append([]catalog.Item{}, weak...), never...)
	hist := &fakeHistory{weak: weak, never: never}

	for seed := uint64(0); seed < 20; seed++ {
		plan := NewSelector(testRand(seed)).Plan(catalog.CountryCapitals, 10, pool, hist)

		if len(plan.Slots) != 10 {
			t.Fatalf("seed %d: got %d slots, want 10", seed, len(plan.Slots))
		}
		if got := plan.Count(SourceWeak); got != 5 {
			t.Errorf("seed %d: weak = %d, want 5", seed, got)
		}
		if got := plan.Count(SourceNeverAsked); got != 3 {
			t.Errorf("seed %d: never asked = %d, want 3", seed, got)
		}
		if got := plan.Count(SourceRandom); got != 2 {
			t.Errorf("seed %d: random = %d, want 2", seed, got)
		}
		assertNoDuplicates(t, plan)
	}
}

func TestSelector_WeakestInRankOrder(t *testing.T) {
	weak := makeItems("w", 6, "x")
	hist := &fakeHistory{weak: weak}
	plan := NewSelector(testRand(1)).Plan(catalog.CountryCapitals, 10, weak, hist)

	picked := map[string]bool{}
	for _, s := range plan.Slots {
		if s.Source == SourceWeak {
			picked[s.Item.ID] = true
		}
	}
	for _, it := range weak[:5] {
		if !picked[it.ID] {
			t.Errorf("expected %s among the five weakest", it.ID)
		}
	}
	if picked["w05"] {
		t.Error("sixth weakest should not be weak-sourced")
	}
}

func TestSelector_CountFiveBoundary(t *testing.T) {
	weak := makeItems("w", 6, "x")
	never := makeItems("n", 4, "x")
	pool := append(append([]catalog.Item{}, weak...), never...)
	plan := NewSelector(testRand(3)).Plan(catalog.CountryCapitals, 5, pool, &fakeHistory{weak: weak, never: never})

	// floor(5/2) = 2, floor(15/10) = 1, remainder 2.
	if got := plan.Count(SourceWeak); got != 2 {
		t.Errorf("weak = %d, want 2", got)
	}
	if got := plan.Count(SourceNeverAsked); got != 1 {
		t.Errorf("never asked = %d, want 1", got)
	}
	if got := plan.Count(SourceRandom); got != 2 {
		t.Errorf("random = %d, want 2", got)
	}
}

func TestSelector_ClipsToSupply(t *testing.T) {
	weak := makeItems("w", 1, "x")
	other := makeItems("o", 20, "x")
	pool := append(append([]catalog.Item{}, weak...), other...)
	plan := NewSelector(testRand(4)).Plan(catalog.CountryCapitals, 10, pool, &fakeHistory{weak: weak})

	if got := plan.Count(SourceWeak); got != 1 {
		t.Errorf("weak = %d, want 1", got)
	}
	if got := plan.Count(SourceNeverAsked); got != 0 {
		t.Errorf("never asked = %d, want 0", got)
	}
	if got := plan.Count(SourceRandom); got != 9 {
		t.Errorf("random = %d, want 9", got)
	}
	assertNoDuplicates(t, plan)
}

func TestSelector_RestrictedToPool(t *testing.T) {
	europe := makeItems("eu", 6, "Europe")
	asia := makeItems("as", 6, "Asia")
	hist := &fakeHistory{
		weak:  append(append([]catalog.Item{}, asia[:3]...), europe[:1]...),
		never: append(append([]catalog.Item{}, asia[3:]...), europe[4:]...),
	}

	plan := NewSelector(testRand(5)).Plan(catalog.CountryCapitals, 6, europe, hist)
	if len(plan.Slots) != 6 {
		t.Fatalf("got %d slots, want 6", len(plan.Slots))
	}
	for _, s := range plan.Slots {
		if s.Item.Category != "Europe" {
			t.Errorf("item %s from outside pool", s.Item.ID)
		}
	}
	if got := plan.Count(SourceWeak); got != 1 {
		t.Errorf("weak = %d, want 1 (only one weak item in pool)", got)
	}
	assertNoDuplicates(t, plan)
}

func TestSelector_PoolSmallerThanCount(t *testing.T) {
	pool := makeItems("p", 3, "x")
	items := NewSelector(testRand(6)).Select(catalog.CountryCapitals, 10, pool, &fakeHistory{never: pool})
	if len(items) != 3 {
		t.Errorf("got %d items, want 3", len(items))
	}
}

func TestSelector_Empty(t *testing.T) {
	sel := NewSelector(testRand(7))
	if got := sel.Select(catalog.CountryCapitals, 0, makeItems("p", 3, "x"), &fakeHistory{}); len(got) != 0 {
		t.Errorf("count 0: got %d items", len(got))
	}
	if got := sel.Select(catalog.CountryCapitals, 5, nil, &fakeHistory{}); len(got) != 0 {
		t.Errorf("empty pool: got %d items", len(got))
	}
}

func TestSelector_NoPositionalBias(t *testing.T) {
	weak := makeItems("w", 6, "x")
	never := makeItems("n", 4, "x")
	pool := append(append([]catalog.Item{}, weak...), never...)
	hist := &fakeHistory{weak: weak, never: never}
	sel := NewSelector(testRand(8))

	firstWeak := 0
	const runs = 400
	for i := 0; i < runs; i++ {
		if sel.Plan(catalog.CountryCapitals, 10, pool, hist).Slots[0].Source == SourceWeak {
			firstWeak++
		}
	}
	// Half the slots are weak-sourced, so the first slot should be weak about half the time.
	if firstWeak < runs/4 || firstWeak > runs*3/4 {
		t.Errorf("first slot weak-sourced %d/%d times", firstWeak, runs)
	}
}
