package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCardValues(t *testing.T) {
	tests := []struct {
		rank  string
		value int
	}{
		{"2", 2},
		{"3", 3},
		{"4", 4},
		{"5", 5},
		{"6", 6},
		{"7", 7},
		{"8", 8},
		{"9", 9},
		{"10", 10},
		{"Jack", 11},
		{"Queen", 12},
		{"Ace", 14},
	}
	for _, tt := range tests {
		t.Run(tt.rank, func(t *testing.T) {
			card := NewCard(Hearts, tt.rank)
			assert.Equal(t, tt.value, card.Value)
			assert.Equal(t, Hearts, card.Suit)
			assert.Equal(t, tt.rank, card.Rank)
		})
	}
}

func TestRankValuesStrictlyIncrease(t *testing.T) {
	prev := 0
	for _, rank := range Ranks {
		card := NewCard(Spades, rank)
		require.Greater(t, card.Value, prev, "rank %s must outrank its predecessor", rank)
		prev = card.Value
	}
}

func TestNewCardRejectsKings(t *testing.T) {
	assert.Panics(t, func() { NewCard(Hearts, "King") })
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "Queen of Hearts", NewCard(Hearts, "Queen").String())
	assert.Equal(t, "10 of Spades", NewCard(Spades, "10").String())
}

func TestCardStructuralEquality(t *testing.T) {
	assert.Equal(t, NewCard(Clubs, "7"), NewCard(Clubs, "7"))
	assert.NotEqual(t, NewCard(Clubs, "7"), NewCard(Spades, "7"))
	assert.NotEqual(t, NewCard(Clubs, "7"), NewCard(Clubs, "8"))
}
