package shared

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeckHoldsAll48UniqueCards(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck.Cards, 48)

	seen := make(map[Card]bool)
	for _, card := range deck.Cards {
		assert.False(t, seen[card], "duplicate card %s", card)
		seen[card] = true
	}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			assert.True(t, seen[NewCard(suit, rank)], "deck is missing %s of %s", rank, suit)
		}
	}
}

func TestShufflePermutesWithoutLosingCards(t *testing.T) {
	deck := NewDeck()
	deck.Shuffle(rand.New(rand.NewPCG(1, 2)))

	require.Len(t, deck.Cards, 48)
	seen := make(map[Card]bool)
	for _, card := range deck.Cards {
		seen[card] = true
	}
	assert.Len(t, seen, 48)
}

func TestShuffleIsReproducibleForASeed(t *testing.T) {
	first := NewDeck()
	first.Shuffle(rand.New(rand.NewPCG(7, 7)))
	second := NewDeck()
	second.Shuffle(rand.New(rand.NewPCG(7, 7)))

	assert.Equal(t, first.Cards, second.Cards)
}

func TestDealRemovesFromTheEnd(t *testing.T) {
	deck := NewDeck()
	last := deck.Cards[47]
	secondToLast := deck.Cards[46]

	hand := deck.Deal(2)
	require.Len(t, hand, 2)
	assert.Equal(t, last, hand[0])
	assert.Equal(t, secondToLast, hand[1])
	assert.Len(t, deck.Cards, 46)
}

func TestDealWithTooFewCardsReturnsNil(t *testing.T) {
	deck := &Deck{Cards: []Card{NewCard(Hearts, "2")}}
	assert.Nil(t, deck.Deal(2))
	assert.Len(t, deck.Cards, 1, "a failed deal must not consume cards")
}

func TestDrawDepletesTheDeck(t *testing.T) {
	deck := &Deck{Cards: []Card{NewCard(Hearts, "2"), NewCard(Spades, "Ace")}}

	card, ok := deck.Draw()
	require.True(t, ok)
	assert.Equal(t, NewCard(Spades, "Ace"), card)

	card, ok = deck.Draw()
	require.True(t, ok)
	assert.Equal(t, NewCard(Hearts, "2"), card)

	_, ok = deck.Draw()
	assert.False(t, ok, "an empty deck has nothing to draw")
}
