package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/abhisek/capitalz/internal/catalog"
	"github.com/abhisek/capitalz/internal/store"
)

// Keys of the legacy single-quiz format, one blob per field.
const (
	LegacyItemStatsKey      = "countryStats"
	LegacyCategoryStatsKey  = "continentStats"
	LegacyTotalQuestionsKey = "totalQuestions"
	LegacyTotalCorrectKey   = "totalCorrect"
	LegacyCurrentStreakKey  = "currentStreak"
	LegacyLongestStreakKey  = "longestStreak"
	LegacyHistoryKey        = "quizHistory"
)

var legacyKeys = []string{
	LegacyItemStatsKey, LegacyCategoryStatsKey,
	LegacyTotalQuestionsKey, LegacyTotalCorrectKey,
	LegacyCurrentStreakKey, LegacyLongestStreakKey,
	LegacyHistoryKey,
}

// referenceDate is the epoch of numeric legacy timestamps.
var referenceDate = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

// legacyTime decodes either seconds since referenceDate or an RFC 3339 string.
type legacyTime struct {
	time.Time
	Valid bool
}

func (t *legacyTime) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return err
		}
		t.Time, t.Valid = parsed.UTC(), true
		return nil
	}
	var secs float64
	if err := json.Unmarshal(b, &secs); err != nil {
		return fmt.Errorf("legacy date: %w", err)
	}
	t.Time = referenceDate.Add(time.Duration(secs * float64(time.Second)))
	t.Valid = true
	return nil
}

type legacyItemStat struct {
	CountryName  string      `json:"countryName"`
	TimesAsked   int         `json:"timesAsked"`
	TimesCorrect int         `json:"timesCorrect"`
	LastAsked    *legacyTime `json:"lastAsked"`
}

type legacyCategoryStat struct {
	ContinentName     string `json:"continentName"`
	Continent         string `json:"continent"`
	QuestionsAnswered int    `json:"questionsAnswered"`
	CorrectAnswers    int    `json:"correctAnswers"`
}

type legacyHistoryEntry struct {
	Date           legacyTime `json:"date"`
	QuestionsCount int        `json:"questionsCount"`
	CorrectCount   int        `json:"correctCount"`
	Duration       float64    `json:"duration"`
	Continent      *string    `json:"continent"`
}

// migrateLegacy builds the default quiz type's record from legacy blobs.
// found is false when no legacy key exists. Keys that fail to decode are
// skipped.
func migrateLegacy(ctx context.Context, blobs store.BlobStore, logger *slog.Logger) (*QuizTypeStats, bool) {
	raw := make(map[string][]byte)
	for _, k := range legacyKeys {
		data, ok, err := blobs.Get(ctx, k)
		if err != nil {
			logger.Warn("legacy stats read failed", "key", k, "error", err)
			continue
		}
		if ok {
			raw[k] = data
		}
	}
	if len(raw) == 0 {
		return nil, false
	}
	return MigrateLegacy(raw, logger), true
}

// MigrateLegacy converts legacy blobs, keyed by their legacy key, into a
// record for catalog.DefaultQuizType. Items never asked are dropped.
func MigrateLegacy(raw map[string][]byte, logger *slog.Logger) *QuizTypeStats {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	qs := NewQuizTypeStats(catalog.DefaultQuizType)

	if data, ok := raw[LegacyItemStatsKey]; ok {
		var items map[string]legacyItemStat
		if err := json.Unmarshal(data, &items); err != nil {
			logger.Warn("legacy item stats undecodable", "key", LegacyItemStatsKey, "error", err)
			items = nil
		}
		for id, it := range items {
			if it.TimesAsked <= 0 {
				continue
			}
			name := it.CountryName
			if name == "" {
				name = id
			}
			st := ItemStat{
				ItemID:       id,
				ItemName:     name,
				TimesAsked:   it.TimesAsked,
				TimesCorrect: min(max(it.TimesCorrect, 0), it.TimesAsked),
			}
			if it.LastAsked != nil && it.LastAsked.Valid {
				t := it.LastAsked.Time
				st.LastAsked = &t
			}
			qs.ItemStats[id] = st
		}
	}

	if data, ok := raw[LegacyCategoryStatsKey]; ok {
		var cats map[string]legacyCategoryStat
		if err := json.Unmarshal(data, &cats); err != nil {
			logger.Warn("legacy category stats undecodable", "key", LegacyCategoryStatsKey, "error", err)
			cats = nil
		}
		for key, c := range cats {
			name := c.ContinentName
			if name == "" {
				name = c.Continent
			}
			if name == "" {
				name = key
			}
			qs.CategoryStats[name] = CategoryStat{
				CategoryName:      name,
				QuestionsAnswered: max(c.QuestionsAnswered, 0),
				CorrectAnswers:    min(max(c.CorrectAnswers, 0), max(c.QuestionsAnswered, 0)),
			}
		}
	}

	qs.TotalQuestions = legacyInt(raw, LegacyTotalQuestionsKey, logger)
	qs.TotalCorrect = min(legacyInt(raw, LegacyTotalCorrectKey, logger), qs.TotalQuestions)
	qs.CurrentStreak = legacyInt(raw, LegacyCurrentStreakKey, logger)
	qs.LongestStreak = max(legacyInt(raw, LegacyLongestStreakKey, logger), qs.CurrentStreak)

	if data, ok := raw[LegacyHistoryKey]; ok {
		var hist []legacyHistoryEntry
		if err := json.Unmarshal(data, &hist); err != nil {
			logger.Warn("legacy history undecodable", "key", LegacyHistoryKey, "error", err)
			hist = nil
		}
		for _, h := range hist {
			e := HistoryEntry{
				Timestamp:       h.Date.Time,
				QuestionsCount:  h.QuestionsCount,
				CorrectCount:    h.CorrectCount,
				DurationSeconds: max(h.Duration, 0),
				QuizType:        catalog.DefaultQuizType,
			}
			if h.Continent != nil {
				c := *h.Continent
				e.CategoryFilter = &c
			}
			qs.History = appendCapped(qs.History, e, MaxHistory)
		}
	}
	return qs
}

// legacyInt reads a counter stored either as a JSON number or plain text.
func legacyInt(raw map[string][]byte, key string, logger *slog.Logger) int {
	data, ok := raw[key]
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(string(bytes.TrimSpace(data)))
	if err != nil {
		var f float64
		if jerr := json.Unmarshal(data, &f); jerr != nil {
			logger.Warn("legacy counter undecodable", "key", key, "error", err)
			return 0
		}
		n = int(f)
	}
	return max(n, 0)
}
