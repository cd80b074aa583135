package model

// Emotion is the expression the monk shows in reaction to a confession.
type Emotion string

const (
	// EmotionNeutral is the resting expression.
	EmotionNeutral Emotion = "neutral"
	// EmotionJudging is a disapproving stare.
	EmotionJudging Emotion = "judging"
	// EmotionAnnoyed is an eye roll.
	EmotionAnnoyed Emotion = "annoyed"
	// EmotionLaughing is open mockery.
	EmotionLaughing Emotion = "laughing"
	// EmotionShocked is wide-eyed disbelief.
	EmotionShocked Emotion = "shocked"
)

// Emotions lists every emotion label.
var Emotions = []Emotion{
	EmotionNeutral,
	EmotionJudging,
	EmotionAnnoyed,
	EmotionLaughing,
	EmotionShocked,
}

func (e Emotion) String() string {
	return string(e)
}
