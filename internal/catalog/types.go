package catalog

import (
	"errors"
	"fmt"
)

// QuizType names a quiz variant. Statistics are tracked independently per type.
type QuizType string

const (
	CountryCapitals QuizType = "Country Capitals"
	USStateCapitals QuizType = "US State Capitals"
	CountryFlags    QuizType = "Country Flags"
	Custom          QuizType = "Custom"
)

// DefaultQuizType is the quiz type legacy single-quiz data belongs to.
const DefaultQuizType = CountryCapitals

var (
	ErrUnknownQuizType = errors.New("unknown quiz type")
	ErrEmptyCatalog    = errors.New("catalog has no items")
)

// Item is one quizzable fact, e.g. a country and its capital.
type Item struct {
	// ID is unique and stable within a quiz type.
	ID string `json:"id"`

	// DisplayName is what the prompt asks about ("France", or a flag emoji).
	DisplayName string `json:"displayName"`

	// Answer is the correct option text. Several items may share an answer.
	Answer string `json:"answer"`

	// Category groups items for filtered sessions and stratified stats.
	Category string `json:"category"`
}

// Key returns the identity used for answer bookkeeping within a session.
func (i Item) Key() string {
	return i.ID
}

// Definition describes a quiz type and carries its items.
type Definition struct {
	Type           QuizType
	Title          string
	Subtitle       string
	PromptTemplate string // fmt template with a single %s for the display name
	CategoryLabel  string
	Items          []Item
}

// Prompt renders the question prompt for an item.
func (d Definition) Prompt(item Item) string {
	return Prompt(d.PromptTemplate, item)
}

// Prompt renders template with the item's display name.
func Prompt(template string, item Item) string {
	if template == "" {
		return item.DisplayName
	}
	return fmt.Sprintf(template, item.DisplayName)
}
