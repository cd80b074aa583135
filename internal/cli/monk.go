package cli

import (
	"strings"

	"github.com/Veraticus/sarcastic-confessional/internal/model"
)

// MonkFace returns a small drawing of the monk wearing the expression
// for emotion. Unknown emotions get the neutral face.
func MonkFace(emotion model.Emotion) string {
	var eyes, mouth string
	switch emotion {
	case model.EmotionJudging:
		eyes, mouth = "ಠ   ಠ", " ___ "
	case model.EmotionAnnoyed:
		eyes, mouth = "¬   ¬", " ~~~ "
	case model.EmotionLaughing:
		eyes, mouth = "^   ^", " \\_/ "
	case model.EmotionShocked:
		eyes, mouth = "O   O", "  o  "
	case model.EmotionNeutral:
		eyes, mouth = "•   •", " --- "
	default:
		eyes, mouth = "•   •", " --- "
	}

	lines := []string{
		"   _______   ",
		"  /       \\  ",
		" |  " + eyes + "  | ",
		" |  " + mouth + "  | ",
		"  \\_______/  ",
		"  /|  †  |\\  ",
		" / |_____| \\ ",
	}
	return MonkStyle.Render(strings.Join(lines, "\n"))
}
