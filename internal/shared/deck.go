package shared

import (
	"log"
	"math/rand/v2"
)

// Deck represents an ordered collection of remaining cards.
type Deck struct {
	Cards []Card
}

// NewDeck creates the full 48-card Tricksy Battle deck (four suits, ranks
// 2 through 10 plus Jack, Queen and Ace) in deterministic order.
func NewDeck() *Deck {
	var cards []Card
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return &Deck{Cards: cards}
}

// Shuffle randomizes the order of cards in the deck using the provided
// random source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(d.Cards), func(i, j int) {
		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	})
	log.Println("Deck shuffled.")
}

// Deal removes and returns n cards from the end of the deck.
// Returns nil if the deck holds fewer than n cards.
func (d *Deck) Deal(n int) []Card {
	if len(d.Cards) < n {
		log.Printf("Error: Not enough cards in deck (%d) to deal %d.", len(d.Cards), n)
		return nil
	}

	hand := make([]Card, 0, n)
	for i := 0; i < n; i++ {
		card, _ := d.Draw()
		hand = append(hand, card)
	}
	return hand
}

// Draw removes and returns the last card of the deck. The second return
// value is false when the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(d.Cards) == 0 {
		return Card{}, false
	}
	card := d.Cards[len(d.Cards)-1]
	d.Cards = d.Cards[:len(d.Cards)-1]
	return card, true
}
