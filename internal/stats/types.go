package stats

import (
	"time"

	"github.com/abhisek/capitalz/internal/catalog"
)

// MaxHistory is the number of history entries retained per quiz type.
const MaxHistory = 100

// ItemStat tracks how one item has been answered.
type ItemStat struct {
	ItemID       string     `json:"itemId"`
	ItemName     string     `json:"itemName"`
	TimesAsked   int        `json:"timesAsked"`
	TimesCorrect int        `json:"timesCorrect"`
	LastAsked    *time.Time `json:"lastAsked"`
}

// Accuracy returns the fraction answered correctly, 0 when never asked.
func (s ItemStat) Accuracy() float64 {
	return ratio(s.TimesCorrect, s.TimesAsked)
}

// CategoryStat aggregates all answers for items sharing a category.
type CategoryStat struct {
	CategoryName      string `json:"categoryName"`
	QuestionsAnswered int    `json:"questionsAnswered"`
	CorrectAnswers    int    `json:"correctAnswers"`
}

func (s CategoryStat) Accuracy() float64 {
	return ratio(s.CorrectAnswers, s.QuestionsAnswered)
}

// HistoryEntry summarizes one completed session.
type HistoryEntry struct {
	Timestamp       time.Time        `json:"timestamp"`
	QuestionsCount  int              `json:"questionsCount"`
	CorrectCount    int              `json:"correctCount"`
	DurationSeconds float64          `json:"durationSeconds"`
	CategoryFilter  *string          `json:"categoryFilter"`
	QuizType        catalog.QuizType `json:"quizType"`
	SessionID       string           `json:"sessionId,omitempty"`
}

func (e HistoryEntry) Accuracy() float64 {
	return ratio(e.CorrectCount, e.QuestionsCount)
}

// Duration returns the session length.
func (e HistoryEntry) Duration() time.Duration {
	return time.Duration(e.DurationSeconds * float64(time.Second))
}

// QuizTypeStats is the aggregate record of one quiz type.
type QuizTypeStats struct {
	QuizType       catalog.QuizType        `json:"quizType"`
	TotalQuestions int                     `json:"totalQuestions"`
	TotalCorrect   int                     `json:"totalCorrect"`
	CurrentStreak  int                     `json:"currentStreak"`
	LongestStreak  int                     `json:"longestStreak"`
	ItemStats      map[string]ItemStat     `json:"itemStats"`
	CategoryStats  map[string]CategoryStat `json:"categoryStats"`
	History        []HistoryEntry          `json:"history"`
}

// NewQuizTypeStats returns a zeroed record.
func NewQuizTypeStats(qt catalog.QuizType) *QuizTypeStats {
	return &QuizTypeStats{
		QuizType:      qt,
		ItemStats:     make(map[string]ItemStat),
		CategoryStats: make(map[string]CategoryStat),
		History:       []HistoryEntry{},
	}
}

func (s *QuizTypeStats) Accuracy() float64 {
	return ratio(s.TotalCorrect, s.TotalQuestions)
}

// Clone returns a deep copy.
func (s *QuizTypeStats) Clone() *QuizTypeStats {
	c := *s
	c.ItemStats = make(map[string]ItemStat, len(s.ItemStats))
	for k, v := range s.ItemStats {
		if v.LastAsked != nil {
			t := *v.LastAsked
			v.LastAsked = &t
		}
		c.ItemStats[k] = v
	}
	c.CategoryStats = make(map[string]CategoryStat, len(s.CategoryStats))
	for k, v := range s.CategoryStats {
		c.CategoryStats[k] = v
	}
	c.History = make([]HistoryEntry, len(s.History))
	for i, e := range s.History {
		if e.CategoryFilter != nil {
			f := *e.CategoryFilter
			e.CategoryFilter = &f
		}
		c.History[i] = e
	}
	return &c
}

// normalize replaces nil collections left by decoding.
func (s *QuizTypeStats) normalize(qt catalog.QuizType) {
	if s.QuizType == "" {
		s.QuizType = qt
	}
	if s.ItemStats == nil {
		s.ItemStats = make(map[string]ItemStat)
	}
	if s.CategoryStats == nil {
		s.CategoryStats = make(map[string]CategoryStat)
	}
	if s.History == nil {
		s.History = []HistoryEntry{}
	}
}

// Outcome is the part of a finished session that is folded into the store.
type Outcome struct {
	SessionID      string
	QuizType       catalog.QuizType
	StartTime      time.Time
	EndTime        *time.Time
	QuestionsCount int
	CorrectCount   int
	CategoryFilter *string
	Cancelled      bool
}

func ratio(n, d int) float64 {
	if d <= 0 {
		return 0
	}
	return float64(n) / float64(d)
}
