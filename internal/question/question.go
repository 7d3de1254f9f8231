package question

import (
	"math/rand/v2"
	"time"

	"github.com/abhisek/capitalz/internal/catalog"
)

// DefaultDistractors is the number of wrong options offered per question.
const DefaultDistractors = 3

// Question is a multiple-choice question about one item.
type Question struct {
	// Item is the subject of the question.
	Item catalog.Item

	// CorrectAnswer equals Item.Answer and appears exactly once in Options.
	CorrectAnswer string

	// Options holds the correct answer and its distractors in display order.
	Options []string

	// PromptTemplate is rendered with the item's display name.
	PromptTemplate string
}

// Prompt returns the question text.
func (q Question) Prompt() string {
	return catalog.Prompt(q.PromptTemplate, q.Item)
}

// IsCorrect reports whether value is the correct answer.
func (q Question) IsCorrect(value string) bool {
	return value == q.CorrectAnswer
}

// CorrectIndex returns the position of the correct answer in Options.
func (q Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

// Builder turns items into questions.
type Builder struct {
	rng *rand.Rand
}

// NewBuilder returns a Builder drawing randomness from rng. A nil rng is
// seeded from the clock.
func NewBuilder(rng *rand.Rand) *Builder {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Builder{rng: rng}
}

// Build creates a question for item with up to distractorCount wrong options
// drawn from the distinct answers in pool. Fewer distractors are used when
// the pool does not have enough distinct wrong answers.
func (b *Builder) Build(item catalog.Item, pool []catalog.Item, distractorCount int, promptTemplate string) Question {
	seen := make(map[string]bool, len(pool))
	var wrong []string
	for _, it := range pool {
		if seen[it.Answer] {
			continue
		}
		seen[it.Answer] = true
		if it.Answer != item.Answer {
			wrong = append(wrong, it.Answer)
		}
	}

	b.rng.Shuffle(len(wrong), func(i, j int) { wrong[i], wrong[j] = wrong[j], wrong[i] })
	n := min(max(distractorCount, 0), len(wrong))

	options := make([]string, 0, n+1)
	options = append(options, wrong[:n]...)
	options = append(options, item.Answer)
	b.rng.Shuffle(len(options), func(i, j int) { options[i], options[j] = options[j], options[i] })

	return Question{
		Item:           item,
		CorrectAnswer:  item.Answer,
		Options:        options,
		PromptTemplate: promptTemplate,
	}
}

// BuildAll builds one question per item, drawing distractors from pool.
func (b *Builder) BuildAll(items, pool []catalog.Item, distractorCount int, promptTemplate string) []Question {
	out := make([]Question, len(items))
	for i, it := range items {
		out[i] = b.Build(it, pool, distractorCount, promptTemplate)
	}
	return out
}
