package stats

import (
	"cmp"
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"time"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/store"
)

// Key is the blob key holding the current-format statistics.
const Key = "quizTypeStats"

// formatVersion is written into every saved envelope.
const formatVersion = 2

// envelope is the persisted shape of all statistics.
type envelope struct {
	Version   int                                 `json:"version"`
	QuizTypes map[catalog.QuizType]*QuizTypeStats `json:"quizTypes"`
}

// CatalogSource provides the items of a quiz type.
type CatalogSource interface {
	Items(qt catalog.QuizType) []catalog.Item
}

// Store owns per-quiz-type statistics and persists them after every
// mutation. It is not safe for concurrent use.
type Store struct {
	blobs   store.BlobStore
	catalog CatalogSource
	logger  *slog.Logger
	now     func() time.Time

	stats map[catalog.QuizType]*QuizTypeStats
	subs  []subscriber
	next  int
}

// Option configures a Store.
type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store and loads persisted statistics from blobs.
func New(blobs store.BlobStore, cat CatalogSource, opts ...Option) *Store {
	s := &Store{
		blobs:   blobs,
		catalog: cat,
		logger:  slog.New(slog.DiscardHandler),
		now:     time.Now,
		stats:   make(map[catalog.QuizType]*QuizTypeStats),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Load()
	return s
}

// Load replaces in-memory state with what is persisted. A missing
// current-format blob triggers migration from the legacy format; any
// decode failure leaves the store empty.
func (s *Store) Load() {
	ctx := context.Background()
	s.stats = make(map[catalog.QuizType]*QuizTypeStats)

	data, ok, err := s.blobs.Get(ctx, Key)
	switch {
	case err != nil:
		s.logger.Warn("stats load failed", "key", Key, "error", err)
	case ok:
		s.decode(data)
	default:
		if migrated, found := migrateLegacy(ctx, s.blobs, s.logger); found {
			s.stats[catalog.DefaultQuizType] = migrated
			s.logger.Info("migrated legacy stats",
				"quiz_type", catalog.DefaultQuizType,
				"items", len(migrated.ItemStats),
				"history", len(migrated.History))
			s.save()
		}
	}
	s.notify(Change{Kind: ChangeLoad})
}

func (s *Store) decode(data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		s.logger.Warn("stats decode failed, starting empty", "key", Key, "error", err)
		return
	}
	for qt, qs := range env.QuizTypes {
		if qs == nil {
			continue
		}
		qs.normalize(qt)
		s.stats[qt] = qs
	}
}

func (s *Store) save() {
	env := envelope{Version: formatVersion, QuizTypes: s.stats}
	data, err := json.Marshal(env)
	if err != nil {
		s.logger.Warn("stats encode failed", "error", err)
		return
	}
	if err := s.blobs.Set(context.Background(), Key, data); err != nil {
		s.logger.Warn("stats save failed", "key", Key, "error", err)
	}
}

func (s *Store) ensure(qt catalog.QuizType) *QuizTypeStats {
	qs, ok := s.stats[qt]
	if !ok {
		qs = NewQuizTypeStats(qt)
		s.stats[qt] = qs
	}
	return qs
}

// RecordAnswer folds one answer into the item, category and aggregate
// counters of qt and persists.
func (s *Store) RecordAnswer(item catalog.Item, correct bool, qt catalog.QuizType, category string) {
	qs := s.ensure(qt)
	now := s.now().UTC()

	is, ok := qs.ItemStats[item.ID]
	if !ok {
		is = ItemStat{ItemID: item.ID, ItemName: item.DisplayName}
	}
	is.TimesAsked++
	if correct {
		is.TimesCorrect++
	}
	is.LastAsked = &now
	qs.ItemStats[item.ID] = is

	cs, ok := qs.CategoryStats[category]
	if !ok {
		cs = CategoryStat{CategoryName: category}
	}
	cs.QuestionsAnswered++
	if correct {
		cs.CorrectAnswers++
	}
	qs.CategoryStats[category] = cs

	qs.TotalQuestions++
	if correct {
		qs.TotalCorrect++
		qs.CurrentStreak++
		if qs.CurrentStreak > qs.LongestStreak {
			qs.LongestStreak = qs.CurrentStreak
		}
	} else {
		qs.CurrentStreak = 0
	}

	s.save()
	s.notify(Change{Kind: ChangeAnswer, QuizType: qt})
}

// RecordSession appends a history entry for a finished session. Cancelled
// sessions are ignored.
func (s *Store) RecordSession(o Outcome) {
	if o.Cancelled {
		return
	}
	qs := s.ensure(o.QuizType)

	var dur float64
	if o.EndTime != nil {
		dur = max(o.EndTime.Sub(o.StartTime).Seconds(), 0)
	}
	entry := HistoryEntry{
		Timestamp:       o.StartTime.UTC(),
		QuestionsCount:  o.QuestionsCount,
		CorrectCount:    o.CorrectCount,
		DurationSeconds: dur,
		QuizType:        o.QuizType,
		SessionID:       o.SessionID,
	}
	if o.CategoryFilter != nil {
		f := *o.CategoryFilter
		entry.CategoryFilter = &f
	}
	qs.History = appendCapped(qs.History, entry, MaxHistory)

	s.save()
	s.notify(Change{Kind: ChangeSession, QuizType: o.QuizType})
}

// appendCapped appends e and evicts the oldest entries beyond limit.
func appendCapped(h []HistoryEntry, e HistoryEntry, limit int) []HistoryEntry {
	h = append(h, e)
	if over := len(h) - limit; over > 0 {
		h = slices.Clone(h[over:])
	}
	return h
}

// Weakest returns up to limit catalog items of qt that have been asked,
// weakest first: lower accuracy, then more attempts. limit <= 0 means no
// limit.
func (s *Store) Weakest(qt catalog.QuizType, limit int) []catalog.Item {
	qs, ok := s.stats[qt]
	if !ok {
		return nil
	}

	type ranked struct {
		item catalog.Item
		stat ItemStat
	}
	var asked []ranked
	for _, it := range s.catalog.Items(qt) {
		st, ok := qs.ItemStats[it.ID]
		if !ok || st.TimesAsked == 0 {
			continue
		}
		asked = append(asked, ranked{it, st})
	}
	slices.SortStableFunc(asked, func(a, b ranked) int {
		if c := cmp.Compare(a.stat.Accuracy(), b.stat.Accuracy()); c != 0 {
			return c
		}
		if c := cmp.Compare(b.stat.TimesAsked, a.stat.TimesAsked); c != 0 {
			return c
		}
		return cmp.Compare(a.item.ID, b.item.ID)
	})

	if limit > 0 && len(asked) > limit {
		asked = asked[:limit]
	}
	out := make([]catalog.Item, len(asked))
	for i, r := range asked {
		out[i] = r.item
	}
	return out
}

// NeverAsked returns catalog items of qt without any recorded stat, in
// catalog order.
func (s *Store) NeverAsked(qt catalog.QuizType) []catalog.Item {
	qs := s.stats[qt]
	var out []catalog.Item
	for _, it := range s.catalog.Items(qt) {
		if qs != nil {
			if _, ok := qs.ItemStats[it.ID]; ok {
				continue
			}
		}
		out = append(out, it)
	}
	return out
}

// Reset replaces the statistics of qt with a zeroed record.
func (s *Store) Reset(qt catalog.QuizType) {
	s.stats[qt] = NewQuizTypeStats(qt)
	s.save()
	s.notify(Change{Kind: ChangeReset, QuizType: qt})
}

// ResetAll clears the statistics of every quiz type.
func (s *Store) ResetAll() {
	s.stats = make(map[catalog.QuizType]*QuizTypeStats)
	s.save()
	s.notify(Change{Kind: ChangeReset})
}

// Stats returns a copy of the statistics of qt, zeroed if none exist.
func (s *Store) Stats(qt catalog.QuizType) *QuizTypeStats {
	qs, ok := s.stats[qt]
	if !ok {
		return NewQuizTypeStats(qt)
	}
	return qs.Clone()
}

// QuizTypes returns the quiz types that have a record, sorted by name.
func (s *Store) QuizTypes() []catalog.QuizType {
	out := make([]catalog.QuizType, 0, len(s.stats))
	for qt := range s.stats {
		out = append(out, qt)
	}
	slices.Sort(out)
	return out
}

// Overview is the headline numbers of a quiz type.
type Overview struct {
	QuizType      catalog.QuizType
	Answered      int
	Correct       int
	Accuracy      float64
	CurrentStreak int
	LongestStreak int
	Sessions      int
	ItemsSeen     int
}

// Overview returns the headline numbers of qt without copying its records.
func (s *Store) Overview(qt catalog.QuizType) Overview {
	qs, ok := s.stats[qt]
	if !ok {
		return Overview{QuizType: qt}
	}
	return Overview{
		QuizType:      qt,
		Answered:      qs.TotalQuestions,
		Correct:       qs.TotalCorrect,
		Accuracy:      qs.Accuracy(),
		CurrentStreak: qs.CurrentStreak,
		LongestStreak: qs.LongestStreak,
		Sessions:      len(qs.History),
		ItemsSeen:     len(qs.ItemStats),
	}
}
