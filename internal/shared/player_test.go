package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndRemoveCard(t *testing.T) {
	player := NewPlayer("id-1", "Alice")
	queen := NewCard(Hearts, "Queen")
	seven := NewCard(Clubs, "7")

	player.AddCard(queen)
	player.AddCard(seven)
	require.Len(t, player.Hand, 2)

	assert.True(t, player.RemoveCard(queen))
	assert.Equal(t, []Card{seven}, player.Hand)

	assert.False(t, player.RemoveCard(queen), "a card leaves the hand exactly once")
	assert.Len(t, player.Hand, 1)
}

func TestRemoveCardMatchesStructurally(t *testing.T) {
	player := NewPlayer("id-1", "Alice")
	player.AddCard(NewCard(Spades, "3"))

	// An equal value built independently must match the held card.
	assert.True(t, player.RemoveCard(NewCard(Spades, "3")))
	assert.Empty(t, player.Hand)
}

func TestHasSuit(t *testing.T) {
	player := NewPlayer("id-1", "Bob")
	player.AddCard(NewCard(Hearts, "2"))
	player.AddCard(NewCard(Hearts, "9"))
	player.AddCard(NewCard(Clubs, "Jack"))

	assert.True(t, player.HasSuit(Hearts))
	assert.True(t, player.HasSuit(Clubs))
	assert.False(t, player.HasSuit(Spades))
	assert.False(t, player.HasSuit(Diamonds))
}

func TestCardsOfSuit(t *testing.T) {
	player := NewPlayer("id-1", "Bob")
	player.AddCard(NewCard(Hearts, "2"))
	player.AddCard(NewCard(Clubs, "Jack"))
	player.AddCard(NewCard(Hearts, "9"))

	hearts := player.CardsOfSuit(Hearts)
	assert.Equal(t, []Card{NewCard(Hearts, "2"), NewCard(Hearts, "9")}, hearts)
	assert.Empty(t, player.CardsOfSuit(Diamonds))
	assert.Len(t, player.Hand, 3, "filtering must not touch the hand")
}
