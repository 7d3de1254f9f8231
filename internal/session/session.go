package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/question"
	"github.com/abhisek/capitalz/internal/stats"
)

// State is the lifecycle state of a session.
type State int

const (
	StateActive State = iota
	StateComplete
	StateCancelled
)

func (s State) String() string {
	switch s {
	case StateComplete:
		return "complete"
	case StateCancelled:
		return "cancelled"
	default:
		return "active"
	}
}

// Session is one quiz run. Complete and Cancelled are terminal and mutually
// exclusive.
type Session struct {
	ID             string
	QuizType       catalog.QuizType
	StartTime      time.Time
	EndTime        *time.Time
	Questions      []question.Question
	CurrentIndex   int
	Answers        map[string]bool   // item key -> answered correctly
	Choices        map[string]string // item key -> chosen option
	CategoryFilter *string
	Cancelled      bool
}

// New creates an active session over questions.
func New(qt catalog.QuizType, questions []question.Question, categoryFilter *string, now time.Time) *Session {
	var filter *string
	if categoryFilter != nil {
		f := *categoryFilter
		filter = &f
	}
	return &Session{
		ID:             uuid.NewString(),
		QuizType:       qt,
		StartTime:      now,
		Questions:      questions,
		Answers:        make(map[string]bool, len(questions)),
		Choices:        make(map[string]string, len(questions)),
		CategoryFilter: filter,
	}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	switch {
	case s.Cancelled:
		return StateCancelled
	case s.CurrentIndex >= len(s.Questions):
		return StateComplete
	default:
		return StateActive
	}
}

// IsComplete reports whether the session has ended, by completion or quit.
func (s *Session) IsComplete() bool {
	return s.State() != StateActive
}

// Current returns the question awaiting an answer.
func (s *Session) Current() (question.Question, bool) {
	if s.State() != StateActive {
		return question.Question{}, false
	}
	return s.Questions[s.CurrentIndex], true
}

// SubmitAnswer records value for the current question and advances. It
// returns whether the answer was correct, or false when there is no current
// question.
func (s *Session) SubmitAnswer(value string, now time.Time) bool {
	q, ok := s.Current()
	if !ok {
		return false
	}
	correct := q.IsCorrect(value)
	key := q.Item.Key()
	s.Answers[key] = correct
	s.Choices[key] = value
	s.CurrentIndex++
	if s.CurrentIndex >= len(s.Questions) {
		s.EndTime = &now
	}
	return correct
}

// Quit cancels an active session. It returns false if the session had
// already ended.
func (s *Session) Quit(now time.Time) bool {
	if s.State() != StateActive {
		return false
	}
	s.Cancelled = true
	s.EndTime = &now
	return true
}

// CorrectCount returns the number of correct answers recorded.
func (s *Session) CorrectCount() int {
	n := 0
	for _, ok := range s.Answers {
		if ok {
			n++
		}
	}
	return n
}

// Duration returns EndTime - StartTime, or 0 if the session has not ended.
func (s *Session) Duration() time.Duration {
	if s.EndTime == nil {
		return 0
	}
	return max(s.EndTime.Sub(s.StartTime), 0)
}

// Outcome projects the session onto what the statistics store records.
func (s *Session) Outcome() stats.Outcome {
	o := stats.Outcome{
		SessionID:      s.ID,
		QuizType:       s.QuizType,
		StartTime:      s.StartTime,
		QuestionsCount: len(s.Questions),
		CorrectCount:   s.CorrectCount(),
		Cancelled:      s.Cancelled,
	}
	if s.EndTime != nil {
		t := *s.EndTime
		o.EndTime = &t
	}
	if s.CategoryFilter != nil {
		f := *s.CategoryFilter
		o.CategoryFilter = &f
	}
	return o
}

// Clone returns a copy that shares no mutable state with s.
func (s *Session) Clone() *Session {
	c := *s
	c.Questions = append([]question.Question(nil), s.Questions...)
	c.Answers = make(map[string]bool, len(s.Answers))
	for k, v := range s.Answers {
		c.Answers[k] = v
	}
	c.Choices = make(map[string]string, len(s.Choices))
	for k, v := range s.Choices {
		c.Choices[k] = v
	}
	if s.EndTime != nil {
		t := *s.EndTime
		c.EndTime = &t
	}
	if s.CategoryFilter != nil {
		f := *s.CategoryFilter
		c.CategoryFilter = &f
	}
	return &c
}
