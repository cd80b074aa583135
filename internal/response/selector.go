// Package response picks the monk's sarcastic reply and facial expression.
package response

import (
	"math/rand/v2"
	"time"

	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/Veraticus/sarcastic-confessional/internal/service"
)

// Fixed replies outside the per-category pools.
const (
	EmptyConfession = "Du musst schon was beichten, Faulpelz!"
	ResetMessage    = "Du bist rein gewaschen... vorerst."
)

var standardPhrases = []string{
	"Das ist ja fast schon kreativ böse.",
	"Ich hoffe, du hast wenigstens ein schlechtes Gewissen.",
	"Du brauchst mehr als Vergebung – vielleicht einen Therapeuten.",
	"Wow. Einfach wow.",
	"Ich bin beeindruckt. Negativ beeindruckt, aber trotzdem.",
	"Dafür gibt es einen besonderen Platz... du weißt schon wo.",
	"Innovation im Sündigen? Respekt!",
	"Das war's? Ich hatte mehr erwartet.",
}

// Phrases returns the reply pool for a category. Unknown categories get
// the standard pool.
func Phrases(c model.Category) []string {
	switch c {
	case model.CategoryLies:
		return []string{
			"Lügen ist das täglich Brot der Schwachen.",
			"Pinocchio wäre stolz auf dich.",
			"Die Wahrheit ist wohl zu schwer für dich?",
			"Schon wieder gelogen? Du sammelst wohl Punkte.",
		}
	case model.CategoryMoney:
		return []string{
			"Geld regiert die Welt - und offenbar auch dich.",
			"Gier ist eine Todsünde. Glückwunsch!",
			"Kapitalismus hat dich gut erzogen.",
			"Mammon lächelt zufrieden.",
		}
	case model.CategoryFood:
		return []string{
			"Völlerei - wie originell.",
			"Der Kühlschrank wird dich vermissen.",
			"Dein Magen ist wohl wichtiger als dein Gewissen?",
			"Gluttony Level: Erreicht.",
		}
	case model.CategoryLaziness:
		return []string{
			"Faulheit ist die Mutter aller Laster.",
			"Netflix dankt dir für deine Treue.",
			"Produktivität ist überbewertet, oder?",
			"Dein Sofa vermisst dich schon.",
		}
	case model.CategoryEnvy:
		return []string{
			"Grün steht dir nicht.",
			"Neid ist der Dieb der Freude - und deiner Würde.",
			"Andere haben's besser? Shocking!",
			"Missgönnen ist auch eine Kunst.",
		}
	case model.CategoryStandard:
		return standardPhrases
	default:
		return standardPhrases
	}
}

// Selector picks replies uniformly at random.
type Selector struct {
	rng service.Rand
}

// NewSelector creates a selector drawing from rng. A nil rng is replaced
// by a clock-seeded source.
func NewSelector(rng service.Rand) *Selector {
	if rng == nil {
		return NewSeeded(0)
	}
	return &Selector{rng: rng}
}

// NewSeeded creates a selector with a deterministic PCG source.
// A zero seed is replaced by the current time.
func NewSeeded(seed uint64) *Selector {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return NewSelector(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Pick returns one phrase from the pool of category c.
func (s *Selector) Pick(c model.Category) string {
	pool := Phrases(c)
	return pool[s.rng.IntN(len(pool))]
}
