package session

import "time"

// CancelledMessage is shown for quit sessions.
const CancelledMessage = "Quiz canceled. Your progress was not saved."

// MissedQuestion is a wrongly answered question for review.
type MissedQuestion struct {
	Prompt  string
	Correct string
	Chosen  string
}

// Summary holds the data displayed on the result screen.
type Summary struct {
	Total     int
	Answered  int
	Correct   int
	Accuracy  float64
	Duration  time.Duration
	Cancelled bool
	Message   string
	Missed    []MissedQuestion
}

// BuildSummary creates a Summary from a finished or cancelled session.
func BuildSummary(s *Session) *Summary {
	sum := &Summary{
		Total:     len(s.Questions),
		Answered:  min(s.CurrentIndex, len(s.Questions)),
		Correct:   s.CorrectCount(),
		Duration:  s.Duration(),
		Cancelled: s.Cancelled,
	}
	if sum.Total > 0 {
		sum.Accuracy = float64(sum.Correct) / float64(sum.Total)
	}

	if s.Cancelled {
		sum.Message = CancelledMessage
	} else {
		sum.Message = Message(sum.Accuracy)
	}

	for _, q := range s.Questions {
		key := q.Item.Key()
		ok, answered := s.Answers[key]
		if !answered || ok {
			continue
		}
		sum.Missed = append(sum.Missed, MissedQuestion{
			Prompt:  q.Prompt(),
			Correct: q.CorrectAnswer,
			Chosen:  s.Choices[key],
		})
	}
	return sum
}

// Message returns the encouragement shown for an accuracy in [0, 1].
func Message(accuracy float64) string {
	switch {
	case accuracy >= 0.9:
		return "Outstanding!"
	case accuracy >= 0.7:
		return "Great job!"
	case accuracy >= 0.5:
		return "Good effort!"
	default:
		return "Keep practicing!"
	}
}
