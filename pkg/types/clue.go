package types

import "strings"

// Category classifies a clue for the person/place alternation heuristic.
type Category string

// Valid categories. CategoryOther covers untyped and unrecognized values.
const (
	CategoryPerson Category = "person"
	CategoryPlace  Category = "place"
	CategoryOther  Category = "other"
)

// ParseCategory maps a raw sheet value to a Category. Matching is
// case-insensitive and ignores surrounding whitespace; anything that is
// not a person or place reads as CategoryOther.
func ParseCategory(raw string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryPerson:
		return CategoryPerson
	case CategoryPlace:
		return CategoryPlace
	default:
		return CategoryOther
	}
}

// Clue is one entry in the clue pool: a riddle, the answer naming where
// (or with whom) the next clue hides, and an optional category.
type Clue struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Category Category `json:"category"`
}

// Typed reports whether the clue carries a person or place category.
func (c Clue) Typed() bool {
	return c.Category == CategoryPerson || c.Category == CategoryPlace
}
