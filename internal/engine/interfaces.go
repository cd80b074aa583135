package engine

import "github.com/Veraticus/sarcastic-confessional/internal/model"

// Responder picks the reply for a resolved category.
type Responder interface {
	Pick(category model.Category) string
}
