package stats

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/store"
)

var testItems = []catalog.Item{
	{ID: "France", DisplayName: "France", Answer: "Paris", Category: "Europe"},
	{ID: "Spain", DisplayName: "Spain", Answer: "Madrid", Category: "Europe"},
	{ID: "Japan", DisplayName: "Japan", Answer: "Tokyo", Category: "Asia"},
	{ID: "Peru", DisplayName: "Peru", Answer: "Lima", Category: "South America"},
	{ID: "Chile", DisplayName: "Chile", Answer: "Santiago", Category: "South America"},
}

func testRegistry(t *testing.T) *catalog.Registry {
	t.Helper()
	r, err := catalog.NewRegistry(catalog.Definition{Type: catalog.CountryCapitals, Items: testItems})
	require.NoError(t, err)
	return r
}

// stepClock returns a clock advancing one second per call.
func stepClock() func() time.Time {
	t := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestStore(t *testing.T, blobs store.BlobStore) *Store {
	t.Helper()
	return New(blobs, testRegistry(t), WithClock(stepClock()))
}

func item(t *testing.T, id string) catalog.Item {
	t.Helper()
	for _, it := range testItems {
		if it.ID == id {
			return it
		}
	}
	t.Fatalf("no test item %q", id)
	return catalog.Item{}
}

func TestRecordAnswer_CorrectThenIncorrect(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	fr := item(t, "France")

	s.RecordAnswer(fr, true, catalog.CountryCapitals, fr.Category)
	s.RecordAnswer(fr, false, catalog.CountryCapitals, fr.Category)

	qs := s.Stats(catalog.CountryCapitals)
	st := qs.ItemStats["France"]
	assert.Equal(t, 2, st.TimesAsked)
	assert.Equal(t, 1, st.TimesCorrect)
	assert.Equal(t, "France", st.ItemName)
	require.NotNil(t, st.LastAsked)
	assert.Equal(t, 0, qs.CurrentStreak)
	assert.Equal(t, 1, qs.LongestStreak)
	assert.Equal(t, 2, qs.TotalQuestions)
	assert.Equal(t, 1, qs.TotalCorrect)
	assert.Equal(t, CategoryStat{CategoryName: "Europe", QuestionsAnswered: 2, CorrectAnswers: 1}, qs.CategoryStats["Europe"])
	assert.InDelta(t, 0.5, qs.Accuracy(), 1e-9)
}

func TestRecordAnswer_StreakInvariant(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	rng := rand.New(rand.NewPCG(7, 11))

	for i := 0; i < 500; i++ {
		it := testItems[rng.IntN(len(testItems))]
		s.RecordAnswer(it, rng.IntN(3) > 0, catalog.CountryCapitals, it.Category)

		qs := s.Stats(catalog.CountryCapitals)
		require.GreaterOrEqual(t, qs.LongestStreak, qs.CurrentStreak, "step %d", i)
		require.LessOrEqual(t, qs.TotalCorrect, qs.TotalQuestions, "step %d", i)
		for id, st := range qs.ItemStats {
			require.LessOrEqual(t, st.TimesCorrect, st.TimesAsked, "item %s", id)
		}
	}
}

func TestRecordAnswer_QuizTypesIndependent(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	fr := item(t, "France")

	s.RecordAnswer(fr, true, catalog.CountryCapitals, fr.Category)
	s.RecordAnswer(fr, false, catalog.CountryFlags, fr.Category)

	assert.Equal(t, 1, s.Stats(catalog.CountryCapitals).CurrentStreak)
	assert.Equal(t, 0, s.Stats(catalog.CountryFlags).CurrentStreak)
	assert.Equal(t, []catalog.QuizType{catalog.CountryCapitals, catalog.CountryFlags}, s.QuizTypes())
}

func TestRecordSession(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	start := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(95 * time.Second)
	europe := "Europe"

	s.RecordSession(Outcome{
		SessionID:      "s1",
		QuizType:       catalog.CountryCapitals,
		StartTime:      start,
		EndTime:        &end,
		QuestionsCount: 10,
		CorrectCount:   7,
		CategoryFilter: &europe,
	})
	s.RecordSession(Outcome{QuizType: catalog.CountryCapitals, StartTime: start, QuestionsCount: 5})

	h := s.Stats(catalog.CountryCapitals).History
	require.Len(t, h, 2)
	assert.Equal(t, 95.0, h[0].DurationSeconds)
	assert.Equal(t, "s1", h[0].SessionID)
	require.NotNil(t, h[0].CategoryFilter)
	assert.Equal(t, "Europe", *h[0].CategoryFilter)
	assert.InDelta(t, 0.7, h[0].Accuracy(), 1e-9)
	assert.Equal(t, 0.0, h[1].DurationSeconds, "missing end time means zero duration")
	assert.Nil(t, h[1].CategoryFilter)
}

func TestRecordSession_CancelledIsNoop(t *testing.T) {
	blobs := store.NewMemory()
	s := newTestStore(t, blobs)
	fr := item(t, "France")
	s.RecordAnswer(fr, true, catalog.CountryCapitals, fr.Category)

	before, _, _ := blobs.Get(context.Background(), Key)
	var notified int
	s.Subscribe(func(Change) { notified++ })

	s.RecordSession(Outcome{QuizType: catalog.CountryCapitals, StartTime: time.Now(), QuestionsCount: 3, Cancelled: true})

	after, _, _ := blobs.Get(context.Background(), Key)
	assert.Equal(t, before, after)
	assert.Empty(t, s.Stats(catalog.CountryCapitals).History)
	assert.Zero(t, notified)
}

func TestRecordSession_HistoryCap(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < MaxHistory; i++ {
		s.RecordSession(Outcome{QuizType: catalog.CountryCapitals, StartTime: base.Add(time.Duration(i) * time.Minute), QuestionsCount: i + 1})
	}
	h := s.Stats(catalog.CountryCapitals).History
	require.Len(t, h, MaxHistory)

	s.RecordSession(Outcome{QuizType: catalog.CountryCapitals, StartTime: base.Add(time.Hour * 10), QuestionsCount: 999})

	h = s.Stats(catalog.CountryCapitals).History
	require.Len(t, h, MaxHistory)
	assert.Equal(t, 2, h[0].QuestionsCount, "oldest entry evicted")
	for i := 0; i < MaxHistory-1; i++ {
		assert.Equal(t, i+2, h[i].QuestionsCount)
	}
	assert.Equal(t, 999, h[MaxHistory-1].QuestionsCount)
}

func TestWeakest(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	qt := catalog.CountryCapitals
	record := func(id string, results ...bool) {
		it := item(t, id)
		for _, r := range results {
			s.RecordAnswer(it, r, qt, it.Category)
		}
	}

	record("France", true, true)              // 1.0
	record("Spain", false, true)              // 0.5, 2 asked
	record("Japan", false, true, false, true) // 0.5, 4 asked
	record("Peru", false)                     // 0.0

	got := s.Weakest(qt, 0)
	ids := make([]string, len(got))
	for i, it := range got {
		ids[i] = it.ID
	}
	assert.Equal(t, []string{"Peru", "Japan", "Spain", "France"}, ids)

	assert.Len(t, s.Weakest(qt, 2), 2)
	assert.Nil(t, s.Weakest(catalog.USStateCapitals, 5))
}

func TestWeakest_OnlyCatalogItems(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	ghost := catalog.Item{ID: "Atlantis", DisplayName: "Atlantis", Answer: "Poseidonis", Category: "Ocean"}
	s.RecordAnswer(ghost, false, catalog.CountryCapitals, ghost.Category)

	assert.Empty(t, s.Weakest(catalog.CountryCapitals, 10))
}

func TestNeverAsked(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	assert.Len(t, s.NeverAsked(catalog.CountryCapitals), len(testItems))

	s.RecordAnswer(item(t, "Japan"), true, catalog.CountryCapitals, "Asia")
	s.RecordAnswer(item(t, "Peru"), false, catalog.CountryCapitals, "South America")

	got := s.NeverAsked(catalog.CountryCapitals)
	var ids []string
	for _, it := range got {
		ids = append(ids, it.ID)
	}
	assert.Equal(t, []string{"France", "Spain", "Chile"}, ids)
}

func TestReset(t *testing.T) {
	blobs := store.NewMemory()
	s := newTestStore(t, blobs)
	fr := item(t, "France")
	s.RecordAnswer(fr, true, catalog.CountryCapitals, fr.Category)
	s.RecordAnswer(fr, true, catalog.CountryFlags, fr.Category)

	s.Reset(catalog.CountryCapitals)
	assert.Zero(t, s.Stats(catalog.CountryCapitals).TotalQuestions)
	assert.Equal(t, 1, s.Stats(catalog.CountryFlags).TotalQuestions)

	reloaded := newTestStore(t, blobs)
	assert.Zero(t, reloaded.Stats(catalog.CountryCapitals).TotalQuestions)
	assert.Equal(t, 1, reloaded.Stats(catalog.CountryFlags).TotalQuestions)

	s.ResetAll()
	assert.Empty(t, s.QuizTypes())
	assert.Empty(t, newTestStore(t, blobs).QuizTypes())
}

func TestStats_ReturnsCopy(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	fr := item(t, "France")
	s.RecordAnswer(fr, true, catalog.CountryCapitals, fr.Category)

	snap := s.Stats(catalog.CountryCapitals)
	*snap.ItemStats["France"].LastAsked = time.Time{}
	snap.ItemStats["France"] = ItemStat{TimesAsked: 99}

	fresh := s.Stats(catalog.CountryCapitals).ItemStats["France"]
	assert.Equal(t, 1, fresh.TimesAsked)
	assert.False(t, fresh.LastAsked.IsZero())
}

func TestQuizTypeStats_RoundTrip(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	for _, it := range testItems {
		s.RecordAnswer(it, it.ID != "Peru", catalog.CountryCapitals, it.Category)
	}
	end := time.Date(2025, 1, 1, 9, 5, 0, 0, time.UTC)
	asia := "Asia"
	s.RecordSession(Outcome{
		SessionID: "abc", QuizType: catalog.CountryCapitals,
		StartTime: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC), EndTime: &end,
		QuestionsCount: 5, CorrectCount: 4, CategoryFilter: &asia,
	})

	orig := s.Stats(catalog.CountryCapitals)
	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var decoded QuizTypeStats
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, orig, &decoded)
}

func TestPersistAndReload(t *testing.T) {
	blobs := store.NewMemory()
	s := newTestStore(t, blobs)
	for _, it := range testItems[:3] {
		s.RecordAnswer(it, true, catalog.CountryCapitals, it.Category)
	}
	s.RecordSession(Outcome{QuizType: catalog.CountryCapitals, StartTime: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), QuestionsCount: 3, CorrectCount: 3})

	reloaded := newTestStore(t, blobs)
	assert.Equal(t, s.Stats(catalog.CountryCapitals), reloaded.Stats(catalog.CountryCapitals))
}

func TestPersistsToSQLite(t *testing.T) {
	db, err := store.Open(t.TempDir() + "/stats.db")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := newTestStore(t, db)
	s.RecordAnswer(item(t, "Chile"), false, catalog.CountryCapitals, "South America")

	reloaded := newTestStore(t, db)
	assert.Equal(t, 1, reloaded.Stats(catalog.CountryCapitals).ItemStats["Chile"].TimesAsked)
}

func TestLoad_CorruptBlobStartsEmpty(t *testing.T) {
	blobs := store.NewMemory()
	require.NoError(t, blobs.Set(context.Background(), Key, []byte("{not json")))
	require.NoError(t, blobs.Set(context.Background(), LegacyTotalQuestionsKey, []byte("12")))

	s := newTestStore(t, blobs)
	assert.Empty(t, s.QuizTypes(), "corrupt current blob must not fall back to legacy data")
	assert.Len(t, s.NeverAsked(catalog.CountryCapitals), len(testItems))
}

type failingBlobs struct{ getErr, setErr error }

func (f failingBlobs) Get(context.Context, string) ([]byte, bool, error) { return nil, false, f.getErr }
func (f failingBlobs) Set(context.Context, string, []byte) error         { return f.setErr }

func TestBlobErrorsAreNotFatal(t *testing.T) {
	blobs := failingBlobs{getErr: errors.New("disk gone"), setErr: errors.New("read-only")}
	s := newTestStore(t, blobs)

	fr := item(t, "France")
	s.RecordAnswer(fr, true, catalog.CountryCapitals, fr.Category)
	assert.Equal(t, 1, s.Stats(catalog.CountryCapitals).TotalQuestions)
}

func TestSubscribe(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	var got []Change
	unsub := s.Subscribe(func(c Change) { got = append(got, c) })
	var other int
	s.Subscribe(func(Change) { other++ })

	fr := item(t, "France")
	s.RecordAnswer(fr, true, catalog.CountryCapitals, fr.Category)
	s.RecordSession(Outcome{QuizType: catalog.CountryCapitals, StartTime: time.Now()})
	s.Reset(catalog.CountryCapitals)
	unsub()
	s.ResetAll()

	assert.Equal(t, []Change{
		{Kind: ChangeAnswer, QuizType: catalog.CountryCapitals},
		{Kind: ChangeSession, QuizType: catalog.CountryCapitals},
		{Kind: ChangeReset, QuizType: catalog.CountryCapitals},
	}, got)
	assert.Equal(t, 4, other)
}

func TestOverview(t *testing.T) {
	s := newTestStore(t, store.NewMemory())
	assert.Equal(t, Overview{QuizType: catalog.USStateCapitals}, s.Overview(catalog.USStateCapitals))

	s.RecordAnswer(item(t, "France"), true, catalog.CountryCapitals, "Europe")
	s.RecordAnswer(item(t, "Japan"), true, catalog.CountryCapitals, "Asia")
	s.RecordAnswer(item(t, "Peru"), false, catalog.CountryCapitals, "South America")

	o := s.Overview(catalog.CountryCapitals)
	assert.Equal(t, 3, o.Answered)
	assert.Equal(t, 2, o.Correct)
	assert.InDelta(t, 2.0/3.0, o.Accuracy, 1e-9)
	assert.Equal(t, 0, o.CurrentStreak)
	assert.Equal(t, 2, o.LongestStreak)
	assert.Equal(t, 3, o.ItemsSeen)
	assert.Equal(t, 0, o.Sessions)
}
