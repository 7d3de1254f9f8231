package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/capitalz/internal/catalog"
)

func TestBuildSummary(t *testing.T) {
	s := New(catalog.CountryCapitals, makeQuestions(4), nil, t0)
	s.SubmitAnswer("ans-q00", t0)
	s.SubmitAnswer("wrong", t0)
	s.SubmitAnswer("ans-q02", t0)
	s.SubmitAnswer("ans-q03", t0.Add(2*time.Minute))

	sum := BuildSummary(s)
	assert.Equal(t, 4, sum.Total)
	assert.Equal(t, 3, sum.Correct)
	assert.InDelta(t, 0.75, sum.Accuracy, 1e-9)
	assert.Equal(t, 2*time.Minute, sum.Duration)
	assert.Equal(t, "Great job!", sum.Message)
	assert.False(t, sum.Cancelled)
	require.Len(t, sum.Missed, 1)
	assert.Equal(t, MissedQuestion{Prompt: "Capital of q01?", Correct: "ans-q01", Chosen: "wrong"}, sum.Missed[0])
}

func TestBuildSummary_Cancelled(t *testing.T) {
	s := New(catalog.CountryCapitals, makeQuestions(5), nil, t0)
	s.SubmitAnswer("wrong", t0)
	s.Quit(t0.Add(time.Second))

	sum := BuildSummary(s)
	assert.True(t, sum.Cancelled)
	assert.Equal(t, CancelledMessage, sum.Message)
	assert.Equal(t, 1, sum.Answered)
	assert.Len(t, sum.Missed, 1, "only answered questions are reviewed")
}

func TestMessage(t *testing.T) {
	tests := []struct {
		acc  float64
		want string
	}{
		{1, "Outstanding!"},
		{0.9, "Outstanding!"},
		{0.89, "Great job!"},
		{0.7, "Great job!"},
		{0.5, "Good effort!"},
		{0.49, "Keep practicing!"},
		{0, "Keep practicing!"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Message(tt.acc), "accuracy %v", tt.acc)
	}
}
