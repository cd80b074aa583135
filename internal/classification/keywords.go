package classification

import (
	"github.com/Veraticus/sarcastic-confessional/internal/model"
)

// Keywords returns the lower-case keyword substrings for a category.
// CategoryStandard has none; it is only reached when nothing else matches.
func Keywords(c model.Category) []string {
	switch c {
	case model.CategoryLies:
		return []string{"lüg", "log", "gelogen", "verschweig", "betrog", "täusch", "schwindel"}
	case model.CategoryMoney:
		return []string{"geld", "euro", "gekauft", "teuer", "billig", "spar", "geizig", "verschuldet"}
	case model.CategoryFood:
		return []string{"gegessen", "geschlemmt", "völlerei", "schokolade", "pizza", "burger", "süß"}
	case model.CategoryLaziness:
		return []string{"faul", "netflix", "nichts getan", "prokrastination", "aufgeschoben", "rumgelegen"}
	case model.CategoryEnvy:
		return []string{"neidisch", "beneid", "gönne nicht", "unfair", "warum haben die"}
	case model.CategoryStandard:
		return nil
	default:
		return nil
	}
}

// Categorize resolves text to the first category, in model.Categories
// order, with a keyword occurring anywhere in the text. Matching is
// case-insensitive substring containment, so "gelogen" also matches "log".
func Categorize(text string) model.Category {
	lowered := Lower(text)

	for _, c := range model.Categories {
		if ContainsAny(lowered, Keywords(c)) {
			return c
		}
	}

	return model.CategoryStandard
}
