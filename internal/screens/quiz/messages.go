package quiz

import "time"

// timerTickMsg is sent every second to update the elapsed time.
type timerTickMsg time.Time

// feedbackDoneMsg ends the feedback display for the answer at index.
type feedbackDoneMsg struct {
	index int
}
