package shared

import "log"

// PlayedCard stores a card along with the index of the player who played it.
type PlayedCard struct {
	Card        Card
	PlayerIndex int
}

// Trick represents a single lead/follow exchange.
type Trick struct {
	Cards       []PlayedCard // Cards played in the current trick, lead first
	WinnerIndex int          // Index of the player who won the trick (-1 if not determined)
}

// NewTrick creates a new trick instance.
func NewTrick() *Trick {
	return &Trick{
		Cards:       []PlayedCard{},
		WinnerIndex: -1,
	}
}

// AddCard adds a card and the player's index to the trick.
func (t *Trick) AddCard(card Card, playerIndex int) {
	t.Cards = append(t.Cards, PlayedCard{Card: card, PlayerIndex: playerIndex})
}

// DetermineWinner determines the winner of the trick: the highest card of
// the led suit. An off-suit reply can never win, so when the follower broke
// suit the leader takes the trick regardless of values.
func (t *Trick) DetermineWinner(ledSuit Suit) int {
	if len(t.Cards) == 0 {
		log.Panicf("Error: Cannot determine winner of an empty trick.")
		return -1
	}

	highestValueInSuit := -1
	winnerIndex := -1

	for _, playedCard := range t.Cards {
		if playedCard.Card.Suit == ledSuit {
			if playedCard.Card.Value > highestValueInSuit {
				highestValueInSuit = playedCard.Card.Value
				winnerIndex = playedCard.PlayerIndex
			}
		}
	}

	// The lead card always matches the led suit, so a winner must exist.
	if winnerIndex == -1 {
		log.Panicf("Error: No card of led suit (%s) found in trick.", ledSuit)
	}

	t.WinnerIndex = winnerIndex
	return winnerIndex
}
