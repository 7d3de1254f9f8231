package session

// Progress is the position within a session for progress displays.
type Progress struct {
	Answered int
	Total    int
	Correct  int
}

// Fraction returns the answered share in [0, 1].
func (p Progress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Answered) / float64(p.Total)
}

// Number returns the 1-based number of the current question, capped at Total.
func (p Progress) Number() int {
	return min(p.Answered+1, p.Total)
}

// Progress reports how far the session has advanced.
func (s *Session) Progress() Progress {
	return Progress{
		Answered: min(s.CurrentIndex, len(s.Questions)),
		Total:    len(s.Questions),
		Correct:  s.CorrectCount(),
	}
}
