package classification

import "github.com/Veraticus/sarcastic-confessional/internal/model"

// LongConfessionThreshold is the character count above which a confession
// triggers the wall-of-text easter egg.
const LongConfessionThreshold = 200

// EasterEgg is an override for the response and emotion of a submission.
type EasterEgg struct {
	Name     string
	Response string
	Emotion  model.Emotion
}

type easterEggRule struct {
	match func(text, lowered string) bool
	egg   EasterEgg
}

var (
	animalWords = []string{"katze", "hund", "tier"}
	familyWords = []string{"mutter", "mama"}
)

// easterEggRules are checked in order; the first match wins.
var easterEggRules = []easterEggRule{
	{
		egg: EasterEgg{
			Name:     "animal",
			Response: "Tiere sind unschuldig! Du hingegen... NICHT",
			Emotion:  model.EmotionShocked,
		},
		match: func(_, lowered string) bool {
			return ContainsAny(lowered, animalWords)
		},
	},
	{
		egg: EasterEgg{
			Name:     "family",
			Response: "Deine Mutter ist enttäuscht. Sehr enttäuscht.",
			Emotion:  model.EmotionJudging,
		},
		match: func(_, lowered string) bool {
			return ContainsAny(lowered, familyWords)
		},
	},
	{
		egg: EasterEgg{
			Name:     "wall_of_text",
			Response: "SO viel Text für SO wenig Moral? Beeindruckend!",
			Emotion:  model.EmotionLaughing,
		},
		match: func(text, _ string) bool {
			return Length(text) > LongConfessionThreshold
		},
	},
}

// MatchEasterEgg returns the first easter egg whose rule matches text.
func MatchEasterEgg(text string) (EasterEgg, bool) {
	lowered := Lower(text)

	for _, rule := range easterEggRules {
		if rule.match(text, lowered) {
			return rule.egg, true
		}
	}

	return EasterEgg{}, false
}
