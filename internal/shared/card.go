package shared

import (
	"fmt"
	"log"
)

// Suit represents the suit of a card (e.g., Hearts, Diamonds, Clubs, Spades).
type Suit string

const (
	Hearts   Suit = "Hearts"
	Diamonds Suit = "Diamonds"
	Clubs    Suit = "Clubs"
	Spades   Suit = "Spades"
)

// Suits lists the four suits in deck-building order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Ranks lists the twelve ranks in ascending strength order. Kings are not
// part of the deck.
var Ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "Ace"}

// Card represents a single card in a Tricksy Battle game.
type Card struct {
	Suit  Suit   // The suit of the card
	Rank  string // The rank of the card
	Value int    // The comparison value of the card (higher beats lower)
}

// Define card values for trick comparison. Values are strictly monotonic
// with rank; 13 is skipped where the King would sit.
var cardValues = map[string]int{
	"2":     2,
	"3":     3,
	"4":     4,
	"5":     5,
	"6":     6,
	"7":     7,
	"8":     8,
	"9":     9,
	"10":    10,
	"Jack":  11,
	"Queen": 12,
	"Ace":   14,
}

// NewCard builds a card of the given suit and rank with its derived value.
func NewCard(suit Suit, rank string) Card {
	value, ok := cardValues[rank]
	if !ok {
		log.Panicf("Invalid rank '%s' requested for card creation.", rank)
	}
	return Card{
		Suit:  suit,
		Rank:  rank,
		Value: value,
	}
}

// String returns the human-readable form, e.g. "Queen of Hearts".
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
