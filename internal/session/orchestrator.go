package session

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/question"
	"github.com/abhisek/capitalz/internal/stats"
)

// StatsStore is the statistics store as seen by the orchestrator.
type StatsStore interface {
	History
	RecordAnswer(item catalog.Item, correct bool, qt catalog.QuizType, category string)
	RecordSession(o stats.Outcome)
}

// Catalogs resolves quiz types to catalogs.
type Catalogs interface {
	Get(qt catalog.QuizType) (*catalog.Catalog, error)
}

// Orchestrator runs one session at a time and commits its results to the
// statistics store only when the session completes.
type Orchestrator struct {
	catalogs    Catalogs
	stats       StatsStore
	selector    *Selector
	builder     *question.Builder
	distractors int
	now         func() time.Time
	logger      *slog.Logger

	current *Session
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithRand sets the randomness used for selection and option order.
func WithRand(rng *rand.Rand) Option {
	return func(o *Orchestrator) {
		o.selector = NewSelector(rng)
		o.builder = question.NewBuilder(rng)
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Orchestrator) { o.logger = l }
}

// WithDistractors sets the number of wrong options per question.
func WithDistractors(n int) Option {
	return func(o *Orchestrator) { o.distractors = n }
}

// NewOrchestrator creates an idle Orchestrator.
func NewOrchestrator(catalogs Catalogs, st StatsStore, opts ...Option) *Orchestrator {
	seed := uint64(time.Now().UnixNano())
	o := &Orchestrator{
		catalogs:    catalogs,
		stats:       st,
		distractors: question.DefaultDistractors,
		now:         time.Now,
		logger:      slog.New(slog.DiscardHandler),
	}
	WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))(o)
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// StartSession begins a session of count questions of qt, restricted to
// category when it is non-empty. count is clipped to [MinPoolSize, pool
// size], where a category with fewer than MinPoolSize items is sized
// against the full catalog. Items are always drawn from the category.
// Any session in progress is discarded without being recorded.
func (o *Orchestrator) StartSession(qt catalog.QuizType, count int, category string) (*Session, error) {
	cat, err := o.catalogs.Get(qt)
	if err != nil {
		return nil, err
	}

	pool := cat.Filter(category)
	if len(pool) == 0 {
		return nil, fmt.Errorf("%s: no items in category %q", qt, category)
	}
	sizing := pool
	if len(sizing) < MinPoolSize {
		sizing = cat.Items()
	}
	count = min(max(count, MinPoolSize), len(sizing))

	plan := o.selector.Plan(qt, count, pool, o.stats)
	def := cat.Definition()
	questions := o.builder.BuildAll(plan.Items(), sizing, o.distractors, def.PromptTemplate)

	var filter *string
	if category != "" {
		filter = &category
	}
	o.current = New(qt, questions, filter, o.now())

	o.logger.Debug("session started",
		"session_id", o.current.ID,
		"quiz_type", qt,
		"category", category,
		"questions", len(questions),
		"weak", plan.Count(SourceWeak),
		"never_asked", plan.Count(SourceNeverAsked),
		"random", plan.Count(SourceRandom))
	return o.current.Clone(), nil
}

// Session returns a copy of the current session, or nil when idle.
func (o *Orchestrator) Session() *Session {
	if o.current == nil {
		return nil
	}
	return o.current.Clone()
}

// Active reports whether a session is in progress.
func (o *Orchestrator) Active() bool {
	return o.current != nil && o.current.State() == StateActive
}

// SubmitAnswer answers the current question and reports whether it was
// correct. When the answer completes the session, every answer and the
// session itself are committed to the statistics store.
func (o *Orchestrator) SubmitAnswer(value string) bool {
	s := o.current
	if s == nil {
		return false
	}
	if _, ok := s.Current(); !ok {
		return false
	}
	correct := s.SubmitAnswer(value, o.now())
	if s.State() == StateComplete {
		o.commit(s)
	}
	return correct
}

func (o *Orchestrator) commit(s *Session) {
	for _, q := range s.Questions {
		o.stats.RecordAnswer(q.Item, s.Answers[q.Item.Key()], s.QuizType, q.Item.Category)
	}
	o.stats.RecordSession(s.Outcome())
	o.logger.Info("session completed",
		"session_id", s.ID,
		"quiz_type", s.QuizType,
		"correct", s.CorrectCount(),
		"total", len(s.Questions),
		"duration", s.Duration())
}

// Quit cancels the current session. Nothing is recorded, including answers
// already given.
func (o *Orchestrator) Quit() bool {
	if o.current == nil {
		return false
	}
	ok := o.current.Quit(o.now())
	if ok {
		o.logger.Info("session cancelled",
			"session_id", o.current.ID,
			"answered", o.current.CurrentIndex)
	}
	return ok
}

// EndSession discards the current session.
func (o *Orchestrator) EndSession() {
	o.current = nil
}
