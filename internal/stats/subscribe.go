package stats

import "github.com/abhisek/capitalz/internal/catalog"

// ChangeKind identifies what mutated the store.
type ChangeKind string

const (
	ChangeAnswer  ChangeKind = "answer"
	ChangeSession ChangeKind = "session"
	ChangeReset   ChangeKind = "reset"
	ChangeLoad    ChangeKind = "load"
)

// Change is delivered to subscribers after a mutation has been persisted.
// QuizType is empty when every quiz type is affected.
type Change struct {
	Kind     ChangeKind
	QuizType catalog.QuizType
}

type subscriber struct {
	id int
	fn func(Change)
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Change)) (unsubscribe func()) {
	s.next++
	id := s.next
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

func (s *Store) notify(c Change) {
	for _, sub := range s.subs {
		sub.fn(c)
	}
}
