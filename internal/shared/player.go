package shared

// Player represents a player in a Tricksy Battle game.
type Player struct {
	ID   string // Unique identifier for the player
	Name string // Player's chosen name
	Hand []Card // Cards currently held by the player
}

// NewPlayer creates a new player with the given ID and name.
func NewPlayer(id string, name string) *Player {
	return &Player{
		ID:   id,
		Name: name,
		Hand: []Card{},
	}
}

// AddCard adds a card to the player's hand.
func (p *Player) AddCard(card Card) {
	p.Hand = append(p.Hand, card)
}

// RemoveCard removes a card from the player's hand.
func (p *Player) RemoveCard(card Card) bool {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return true
		}
	}
	return false
}

// HasSuit reports whether the player holds at least one card of the suit.
func (p *Player) HasSuit(suit Suit) bool {
	for _, card := range p.Hand {
		if card.Suit == suit {
			return true
		}
	}
	return false
}

// CardsOfSuit returns the cards in the player's hand matching the suit.
func (p *Player) CardsOfSuit(suit Suit) []Card {
	var matching []Card
	for _, card := range p.Hand {
		if card.Suit == suit {
			matching = append(matching, card)
		}
	}
	return matching
}
