package response

import "github.com/Veraticus/sarcastic-confessional/internal/model"

// EmotionFor maps a category to the monk's expression.
func EmotionFor(c model.Category) model.Emotion {
	switch c {
	case model.CategoryLies:
		return model.EmotionJudging
	case model.CategoryMoney, model.CategoryLaziness:
		return model.EmotionAnnoyed
	case model.CategoryFood:
		return model.EmotionLaughing
	case model.CategoryEnvy:
		return model.EmotionShocked
	case model.CategoryStandard:
		return model.EmotionNeutral
	default:
		return model.EmotionNeutral
	}
}
