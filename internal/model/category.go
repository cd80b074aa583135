package model

import "strings"

// Category is the sin classification a confession resolves to.
type Category string

const (
	// CategoryLies covers lying, concealing and deceiving.
	CategoryLies Category = "lies"
	// CategoryMoney covers greed, spending and debt.
	CategoryMoney Category = "money"
	// CategoryFood covers gluttony.
	CategoryFood Category = "food"
	// CategoryLaziness covers sloth and procrastination.
	CategoryLaziness Category = "laziness"
	// CategoryEnvy covers envy and resentment.
	CategoryEnvy Category = "envy"
	// CategoryStandard is the fallback when no keyword matches.
	CategoryStandard Category = "standard"
)

// Categories lists every category in matching order, with the fallback last.
var Categories = []Category{
	CategoryLies,
	CategoryMoney,
	CategoryFood,
	CategoryLaziness,
	CategoryEnvy,
	CategoryStandard,
}

// legacyLabels maps the labels written by the original desktop program.
var legacyLabels = map[string]Category{
	"lügen":    CategoryLies,
	"luegen":   CategoryLies,
	"geld":     CategoryMoney,
	"essen":    CategoryFood,
	"faul":     CategoryLaziness,
	"neid":     CategoryEnvy,
	"standard": CategoryStandard,
}

// ParseCategory resolves a stored label to a Category.
// Unknown labels resolve to CategoryStandard.
func ParseCategory(label string) Category {
	normalized := strings.ToLower(strings.TrimSpace(label))
	if c := Category(normalized); c.Valid() {
		return c
	}
	if c, ok := legacyLabels[normalized]; ok {
		return c
	}
	return CategoryStandard
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryLies, CategoryMoney, CategoryFood, CategoryLaziness, CategoryEnvy, CategoryStandard:
		return true
	default:
		return false
	}
}

// Normalize returns c when valid and CategoryStandard otherwise.
func (c Category) Normalize() Category {
	if c.Valid() {
		return c
	}
	return CategoryStandard
}

// Title returns a display name for the category.
func (c Category) Title() string {
	switch c.Normalize() {
	case CategoryLies:
		return "Lügen"
	case CategoryMoney:
		return "Geld"
	case CategoryFood:
		return "Essen"
	case CategoryLaziness:
		return "Faulheit"
	case CategoryEnvy:
		return "Neid"
	default:
		return "Standard"
	}
}

func (c Category) String() string {
	return string(c)
}
