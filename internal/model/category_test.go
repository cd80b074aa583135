package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		label string
		want  Category
	}{
		{label: "lies", want: CategoryLies},
		{label: "  MONEY ", want: CategoryMoney},
		{label: "food", want: CategoryFood},
		{label: "laziness", want: CategoryLaziness},
		{label: "envy", want: CategoryEnvy},
		{label: "standard", want: CategoryStandard},
		{label: "lügen", want: CategoryLies},
		{label: "Geld", want: CategoryMoney},
		{label: "essen", want: CategoryFood},
		{label: "faul", want: CategoryLaziness},
		{label: "neid", want: CategoryEnvy},
		{label: "", want: CategoryStandard},
		{label: "wrath", want: CategoryStandard},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCategory(tt.label))
		})
	}
}

func TestCategory_Valid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid(), c)
		assert.Equal(t, c, c.Normalize())
		assert.NotEmpty(t, c.Title())
	}

	assert.False(t, Category("gluttony").Valid())
	assert.Equal(t, CategoryStandard, Category("gluttony").Normalize())
	assert.Equal(t, CategoryStandard, Category("").Normalize())
}

func TestCategories_StandardIsLast(t *testing.T) {
	require.NotEmpty(t, Categories)
	assert.Equal(t, CategoryStandard, Categories[len(Categories)-1])
	assert.Len(t, Categories, 6)
}

func TestLedger_AppendAndClone(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(ConfessionRecord{Text: "Ich habe gelogen", Category: CategoryLies, Karma: 15})
	ledger.Append(ConfessionRecord{Text: "Pizza", Category: CategoryFood, Karma: 8})
	ledger.Append(ConfessionRecord{Text: "Noch eine Lüge", Category: CategoryLies, Karma: 15})

	assert.Equal(t, 38, ledger.KarmaTotal)
	assert.Equal(t, 2, ledger.Tally[CategoryLies])
	assert.Equal(t, 1, ledger.Tally[CategoryFood])
	require.Len(t, ledger.History, 3)
	assert.Equal(t, "Noch eine Lüge", ledger.History[2].Text)

	clone := ledger.Clone()
	clone.Append(ConfessionRecord{Text: "mehr", Category: CategoryEnvy, Karma: 10})
	clone.Tally[CategoryLies] = 99

	assert.Equal(t, 38, ledger.KarmaTotal)
	assert.Len(t, ledger.History, 3)
	assert.Equal(t, 2, ledger.Tally[CategoryLies])
}

func TestLedger_AppendOnZeroValue(t *testing.T) {
	var ledger Ledger
	ledger.Append(ConfessionRecord{Text: "x", Category: CategoryStandard, Karma: 7})

	assert.Equal(t, 7, ledger.KarmaTotal)
	assert.Equal(t, 1, ledger.Tally[CategoryStandard])
}
