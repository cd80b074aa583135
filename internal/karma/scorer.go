// Package karma computes the karma debt a confession adds to the ledger.
package karma

import (
	"github.com/Veraticus/sarcastic-confessional/internal/classification"
	"github.com/Veraticus/sarcastic-confessional/internal/model"
)

// Bonus values and thresholds.
const (
	LongConfessionBonus     = 5
	LongConfessionThreshold = 100
	PenaltyWordBonus        = 10
	ShoutingBonus           = 3
	ShoutingMinLength       = 10
)

// PenaltyWords raise the debt of any confession containing one of them.
// The bonus applies once no matter how many occur.
var PenaltyWords = []string{"betrogen", "gestohlen", "verletzt", "absichtlich"}

// BaseScore returns the fixed debt for a category. Unknown categories
// score like CategoryStandard.
func BaseScore(c model.Category) int {
	switch c {
	case model.CategoryLies:
		return 15
	case model.CategoryMoney:
		return 12
	case model.CategoryFood:
		return 8
	case model.CategoryLaziness:
		return 5
	case model.CategoryEnvy:
		return 10
	case model.CategoryStandard:
		return 7
	default:
		return 7
	}
}

// Breakdown itemises how a score was reached.
type Breakdown struct {
	Category       model.Category `json:"category" yaml:"category"`
	Base           int            `json:"base" yaml:"base"`
	LongConfession int            `json:"long_confession" yaml:"long_confession"`
	PenaltyWord    int            `json:"penalty_word" yaml:"penalty_word"`
	Shouting       int            `json:"shouting" yaml:"shouting"`
}

// Total sums the breakdown.
func (b Breakdown) Total() int {
	return b.Base + b.LongConfession + b.PenaltyWord + b.Shouting
}

// Explain scores text against category and reports every component.
func Explain(c model.Category, text string) Breakdown {
	b := Breakdown{
		Category: c,
		Base:     BaseScore(c),
	}

	length := classification.Length(text)

	if length > LongConfessionThreshold {
		b.LongConfession = LongConfessionBonus
	}

	if classification.ContainsAny(classification.Lower(text), PenaltyWords) {
		b.PenaltyWord = PenaltyWordBonus
	}

	if length > ShoutingMinLength && classification.IsShouting(text) {
		b.Shouting = ShoutingBonus
	}

	return b
}

// Score returns the karma debt for a confession resolved to category c.
func Score(c model.Category, text string) int {
	return Explain(c, text).Total()
}
