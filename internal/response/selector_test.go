package response

import (
	"testing"

	"github.com/Veraticus/sarcastic-confessional/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceRand returns the queued values in order, wrapping around.
type sequenceRand struct {
	values []int
	calls  []int
	next   int
}

func (r *sequenceRand) IntN(n int) int {
	r.calls = append(r.calls, n)
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func TestPhrases_EveryCategoryHasAPool(t *testing.T) {
	for _, c := range model.Categories {
		pool := Phrases(c)
		require.NotEmpty(t, pool, c)
		for _, phrase := range pool {
			assert.NotEmpty(t, phrase)
		}
	}

	assert.Len(t, Phrases(model.CategoryStandard), 8)
	assert.Len(t, Phrases(model.CategoryLies), 4)
}

func TestPhrases_UnknownFallsBackToStandard(t *testing.T) {
	assert.Equal(t, Phrases(model.CategoryStandard), Phrases(model.Category("unknown")))
	assert.Equal(t, Phrases(model.CategoryStandard), Phrases(model.Category("")))
}

func TestSelector_PickUsesInjectedRand(t *testing.T) {
	rng := &sequenceRand{values: []int{0, 3, 1}}
	s := NewSelector(rng)

	pool := Phrases(model.CategoryMoney)
	assert.Equal(t, pool[0], s.Pick(model.CategoryMoney))
	assert.Equal(t, pool[3], s.Pick(model.CategoryMoney))
	assert.Equal(t, pool[1], s.Pick(model.CategoryMoney))
	assert.Equal(t, []int{4, 4, 4}, rng.calls)
}

func TestSelector_PickUnknownCategory(t *testing.T) {
	rng := &sequenceRand{values: []int{7}}
	s := NewSelector(rng)

	assert.Equal(t, Phrases(model.CategoryStandard)[7], s.Pick(model.Category("wrath")))
	assert.Equal(t, []int{8}, rng.calls)
}

func TestNewSelector_NilRandFallsBackToClock(t *testing.T) {
	s := NewSelector(nil)
	require.NotNil(t, s)

	for _, c := range model.Categories {
		assert.NotPanics(t, func() {
			assert.Contains(t, Phrases(c), s.Pick(c))
		})
	}
}

func TestNewSeeded_Deterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)

	for i := 0; i < 20; i++ {
		for _, c := range model.Categories {
			assert.Equal(t, a.Pick(c), b.Pick(c))
		}
	}
}

func TestNewSeeded_PicksFromPool(t *testing.T) {
	s := NewSeeded(0)
	for i := 0; i < 100; i++ {
		for _, c := range model.Categories {
			assert.Contains(t, Phrases(c), s.Pick(c))
		}
	}
}

func TestNewSeeded_CoversPool(t *testing.T) {
	s := NewSeeded(7)
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		seen[s.Pick(model.CategoryStandard)] = true
	}
	assert.Len(t, seen, len(Phrases(model.CategoryStandard)))
}

func TestEmotionFor(t *testing.T) {
	tests := []struct {
		category model.Category
		want     model.Emotion
	}{
		{category: model.CategoryLies, want: model.EmotionJudging},
		{category: model.CategoryMoney, want: model.EmotionAnnoyed},
		{category: model.CategoryFood, want: model.EmotionLaughing},
		{category: model.CategoryLaziness, want: model.EmotionAnnoyed},
		{category: model.CategoryEnvy, want: model.EmotionShocked},
		{category: model.CategoryStandard, want: model.EmotionNeutral},
		{category: model.Category("unknown"), want: model.EmotionNeutral},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			assert.Equal(t, tt.want, EmotionFor(tt.category))
		})
	}
}
