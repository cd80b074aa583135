package cli

import (
	"strings"
	"testing"

	"github.com/Veraticus/sarcastic-confessional/internal/karma"
	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"short", "kurz", 10, "kurz"},
		{"exact", "genau", 5, "genau"},
		{"long", "abcdefghij", 4, "abcd..."},
		{"umlauts count as one", "äöüäöü", 3, "äöü..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.text, tt.limit))
		})
	}
}

func TestFormatResult(t *testing.T) {
	t.Run("accepted", func(t *testing.T) {
		out := FormatResult(model.Result{
			Response:  "Lügen haben kurze Beine!",
			Emotion:   model.EmotionJudging,
			Category:  model.CategoryLies,
			Karma:     15,
			Accepted:  true,
			Persisted: true,
		})

		assert.Contains(t, out, "Lügen haben kurze Beine!")
		assert.Contains(t, out, "+15 Karma-Schulden!")
		assert.Contains(t, out, model.CategoryLies.Title())
		assert.NotContains(t, out, "gespeichert")
	})

	t.Run("not persisted", func(t *testing.T) {
		out := FormatResult(model.Result{
			Response: "x",
			Emotion:  model.EmotionNeutral,
			Category: model.CategoryStandard,
			Karma:    7,
			Accepted: true,
		})

		assert.Contains(t, out, "Konnte nicht gespeichert werden")
	})

	t.Run("rejected", func(t *testing.T) {
		out := FormatResult(model.Result{
			Response: "Du musst schon was beichten, Faulpelz!",
			Emotion:  model.EmotionAnnoyed,
		})

		assert.Contains(t, out, "Faulpelz")
		assert.NotContains(t, out, "Karma-Schulden")
		assert.NotContains(t, out, "gespeichert")
	})
}

func TestFormatBreakdown(t *testing.T) {
	out := FormatBreakdown(karma.Breakdown{
		Category:    model.CategoryLies,
		Base:        15,
		PenaltyWord: 10,
		Shouting:    3,
	})

	assert.Contains(t, out, "Basis")
	assert.Contains(t, out, "+10")
	assert.Contains(t, out, "+3")
	assert.NotContains(t, out, "Lange Beichte")
	assert.Contains(t, out, "28")
}

func TestFormatStatistics(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := FormatStatistics(model.Statistics{Categories: []model.CategoryShare{}})
		assert.Contains(t, out, "Noch keine Beichten vorhanden!")
	})

	t.Run("populated", func(t *testing.T) {
		long := strings.Repeat("a", 80)
		out := FormatStatistics(model.Statistics{
			KarmaTotal:      43,
			HistoryCount:    4,
			AveragePerEntry: 10,
			Categories: []model.CategoryShare{
				{Category: model.CategoryLies, Count: 2, Percent: 50},
				{Category: model.CategoryFood, Count: 1, Percent: 25},
			},
			MostRecent: &model.ConfessionRecord{Text: long, Category: model.CategoryStandard, Karma: 7},
		})

		assert.Contains(t, out, "43")
		assert.Contains(t, out, "Anzahl Beichten: 4")
		assert.Contains(t, out, "Durchschnitt pro Beichte: 10")
		assert.Contains(t, out, "50.0%")
		assert.Contains(t, out, "25.0%")
		assert.Contains(t, out, strings.Repeat("a", PreviewLength)+"...")
		assert.NotContains(t, out, strings.Repeat("a", PreviewLength+1))
	})
}

func TestFormatHistory(t *testing.T) {
	assert.Contains(t, FormatHistory(nil), "Noch keine Beichten vorhanden!")

	out := FormatHistory([]model.ConfessionRecord{
		{Text: "Ich habe gelogen", Category: model.CategoryLies, Karma: 15},
		{Text: "Ich war faul", Category: model.CategoryLaziness, Karma: 5},
	})

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Ich habe gelogen")
	assert.Contains(t, lines[2], "Ich war faul")
}

func TestMonkFace_EveryEmotion(t *testing.T) {
	neutral := MonkFace(model.EmotionNeutral)
	for _, e := range model.Emotions {
		face := MonkFace(e)
		assert.NotEmpty(t, face)
		if e != model.EmotionNeutral {
			assert.NotEqual(t, neutral, face, "emotion %s", e)
		}
	}
	assert.Equal(t, neutral, MonkFace(model.Emotion("verwirrt")))
}
