package game

import (
	"log"
	"math/rand/v2"

	"github.com/hkoppala9275/tricksy-battle/internal/protocol"
	"github.com/hkoppala9275/tricksy-battle/internal/shared"

	"github.com/google/uuid"
)

// GameState represents the current state of the game.
type GameState string

const (
	Dealing  GameState = "Dealing"  // Cards are being dealt
	Playing  GameState = "Playing"  // Players are playing tricks
	GameOver GameState = "GameOver" // Round limit or early termination reached
)

const (
	maxRounds       = 16 // Hard cap on played rounds
	initialHandSize = 8  // Cards dealt to each player at setup
	redealHandSize  = 4  // Hand size that triggers a mid-game re-deal
	redealCards     = 4  // Cards dealt to each player on a re-deal
	maxRedeals      = 2  // Re-deals allowed per game
)

// CardSelector obtains one card choice from a player. Implementations present
// the candidates (indexed) and return exactly one element of the slice,
// re-prompting on invalid input for as long as it takes.
type CardSelector interface {
	ChooseCard(playerName string, candidates []shared.Card) shared.Card
}

// EventSender defines the function signature for delivering game events to
// the frontend. The console (or a test recorder) provides an implementation.
type EventSender func(message []byte)

// Game represents the main game state machine.
type Game struct {
	ID          string            `json:"id"`
	Players     [2]*shared.Player `json:"-"`
	Deck        *shared.Deck      `json:"-"`
	Scores      [2]int            `json:"scores"`
	LeaderIndex int               `json:"leader_index"`
	Round       int               `json:"round"`      // Completed rounds, 0..16
	DealsDone   int               `json:"deals_done"` // Mid-game re-deals performed, 0..2
	State       GameState         `json:"state"`
	rng         *rand.Rand
	selector    CardSelector
	sendEvent   EventSender
}

// NewGame initializes a new game instance for the two named players.
// Randomness (shuffling, initial leader) comes from the injected source.
func NewGame(name1, name2 string, rng *rand.Rand) *Game {
	if rng == nil {
		log.Panicf("NewGame requires a random source.")
	}
	players := [2]*shared.Player{
		shared.NewPlayer(uuid.NewString(), name1),
		shared.NewPlayer(uuid.NewString(), name2),
	}

	return &Game{
		ID:          uuid.NewString(),
		Players:     players,
		Deck:        shared.NewDeck(),
		LeaderIndex: -1,
		State:       Dealing,
		rng:         rng,
	}
}

// Run plays the game from setup to the final summary, pulling card choices
// from the selector and pushing events through the sender. It blocks until
// the game is over.
func (g *Game) Run(selector CardSelector, sender EventSender) {
	if g.State == GameOver {
		log.Printf("Game %s: Run called on a finished game.", g.ID)
		return
	}
	g.selector = selector
	g.sendEvent = sender

	g.start()
	g.loop()
	g.finish()
}

// start shuffles, deals the opening hands and picks the first leader.
func (g *Game) start() {
	log.Printf("Game %s: Starting game loop with players %s and %s.", g.ID, g.Players[0].Name, g.Players[1].Name)
	g.State = Dealing

	g.Deck.Shuffle(g.rng)
	for i, player := range g.Players {
		hand := g.Deck.Deal(initialHandSize)
		if hand == nil {
			log.Panicf("Game %s: Deck exhausted during the opening deal.", g.ID)
		}
		player.Hand = hand
		g.emit("deal_hand", protocol.DealHandPayload{PlayerIndex: i, Name: player.Name, Hand: hand})
	}

	g.LeaderIndex = g.rng.IntN(len(g.Players))

	playerInfos := make([]protocol.PlayerInfo, len(g.Players))
	for i, p := range g.Players {
		playerInfos[i] = protocol.PlayerInfo{ID: p.ID, Name: p.Name, Index: i}
	}
	g.emit("game_start", protocol.GameStartPayload{
		GameID:      g.ID,
		Players:     playerInfos,
		LeaderIndex: g.LeaderIndex,
	})

	g.State = Playing
}

// loop plays rounds until the cap or the early-termination score condition,
// which is only ever checked at a round boundary.
func (g *Game) loop() {
	for g.Round < maxRounds && !g.earlyTermination() {
		g.playRound()
	}
}

// earlyTermination reports whether one player has reached 9 tricks while the
// other holds at least 1.
func (g *Game) earlyTermination() bool {
	s1, s2 := g.Scores[0], g.Scores[1]
	return (s1 >= 9 && s2 >= 1) || (s2 >= 9 && s1 >= 1)
}

// playRound runs one lead/follow exchange: selection, trick resolution,
// scoring, leader rotation, the cosmetic deck reveal and the conditional
// re-deal.
func (g *Game) playRound() {
	g.emit("round_start", protocol.RoundStartPayload{Round: g.Round + 1})

	leaderIndex := g.LeaderIndex
	followerIndex := 1 - leaderIndex
	leader := g.Players[leaderIndex]
	follower := g.Players[followerIndex]

	// Leader plays from their whole hand.
	g.emit("lead_turn", protocol.LeadTurnPayload{PlayerIndex: leaderIndex, Name: leader.Name, Hand: leader.Hand})
	leadCard := g.chooseFrom(leader, leader.Hand)
	g.removeFromHand(leader, leadCard)

	trick := shared.NewTrick()
	trick.AddCard(leadCard, leaderIndex)
	g.emit("card_played", protocol.CardPlayedPayload{PlayerIndex: leaderIndex, Name: leader.Name, Card: leadCard, Led: true})

	// Follower must match the led suit when they can.
	candidates := g.legalFollows(follower, leadCard.Suit)
	g.emit("follow_turn", protocol.FollowTurnPayload{
		PlayerIndex: followerIndex,
		Name:        follower.Name,
		Suit:        leadCard.Suit,
		MustFollow:  follower.HasSuit(leadCard.Suit),
	})
	followCard := g.chooseFrom(follower, candidates)
	g.removeFromHand(follower, followCard)

	trick.AddCard(followCard, followerIndex)
	g.emit("card_played", protocol.CardPlayedPayload{PlayerIndex: followerIndex, Name: follower.Name, Card: followCard, Led: false})

	winnerIndex := trick.DetermineWinner(leadCard.Suit)
	g.Scores[winnerIndex]++
	g.LeaderIndex = winnerIndex
	log.Printf("Game %s: Trick won by player %d (%s). Score %d-%d.",
		g.ID, winnerIndex, g.Players[winnerIndex].Name, g.Scores[0], g.Scores[1])

	trickCards := make([]shared.Card, len(trick.Cards))
	for i, pc := range trick.Cards {
		trickCards[i] = pc.Card
	}
	g.emit("trick_end", protocol.TrickEndPayload{
		WinnerIndex: winnerIndex,
		WinnerName:  g.Players[winnerIndex].Name,
		Cards:       trickCards,
	})

	// Reveal one card from the deck each round. Purely cosmetic; skipped
	// when the deck has run out.
	if revealed, ok := g.Deck.Draw(); ok {
		g.emit("deck_reveal", protocol.DeckRevealPayload{Card: revealed})
	}

	if len(g.Players[0].Hand) == redealHandSize && len(g.Players[1].Hand) == redealHandSize && g.DealsDone < maxRedeals {
		g.redeal()
	}

	g.emit("score_update", protocol.ScorePayload{
		Player1: g.Players[0].Name,
		Score1:  g.Scores[0],
		Player2: g.Players[1].Name,
		Score2:  g.Scores[1],
	})

	g.Round++
}

// legalFollows returns the candidate set for a follower: cards of the led
// suit when the hand has any, otherwise the whole hand.
func (g *Game) legalFollows(player *shared.Player, ledSuit shared.Suit) []shared.Card {
	if player.HasSuit(ledSuit) {
		return player.CardsOfSuit(ledSuit)
	}
	return player.Hand
}

// chooseFrom asks the selector for a card until it returns a member of the
// candidate set. The game never proceeds with a card outside it.
func (g *Game) chooseFrom(player *shared.Player, candidates []shared.Card) shared.Card {
	if len(candidates) == 0 {
		log.Panicf("Game %s: No candidate cards for %s; the deal schedule should make this impossible.", g.ID, player.Name)
	}
	for {
		card := g.selector.ChooseCard(player.Name, candidates)
		for _, c := range candidates {
			if c == card {
				return card
			}
		}
		log.Printf("Game %s: Selector returned %s, which is not a legal choice for %s.", g.ID, card, player.Name)
		g.emit("error", protocol.ErrorPayload{Message: "Invalid selection; try again."})
	}
}

// removeFromHand takes a just-selected card out of the player's hand.
func (g *Game) removeFromHand(player *shared.Player, card shared.Card) {
	if !player.RemoveCard(card) {
		// The card came from the candidate set, so it must be in the hand.
		log.Panicf("Game %s: Card %s missing from %s's hand.", g.ID, card, player.Name)
	}
}

// redeal deals four more cards to each player from the deck.
func (g *Game) redeal() {
	g.DealsDone++
	log.Printf("Game %s: Re-deal %d of %d, %d cards to each player.", g.ID, g.DealsDone, maxRedeals, redealCards)
	g.emit("redeal", protocol.RedealPayload{CardsEach: redealCards, DealsDone: g.DealsDone})

	for i, player := range g.Players {
		cards := g.Deck.Deal(redealCards)
		if cards == nil {
			log.Panicf("Game %s: Deck exhausted during re-deal %d.", g.ID, g.DealsDone)
		}
		for _, card := range cards {
			player.AddCard(card)
		}
		g.emit("deal_hand", protocol.DealHandPayload{PlayerIndex: i, Name: player.Name, Hand: player.Hand})
	}
}

// finish marks the game over and emits the final summary.
func (g *Game) finish() {
	g.State = GameOver
	summary := g.Summary()
	g.emit("game_over", summary)
	log.Printf("Game %s: Over after %d rounds. Final score %d-%d.", g.ID, g.Round, g.Scores[0], g.Scores[1])
}

// Summary builds the final report for the current scores. A 16-0 sweep is a
// shot moon: the sweeping player wins and the result is reported as 17-0.
func (g *Game) Summary() protocol.GameOverPayload {
	summary := protocol.GameOverPayload{
		Player1:     g.Players[0].Name,
		Player2:     g.Players[1].Name,
		Score1:      g.Scores[0],
		Score2:      g.Scores[1],
		WinnerIndex: -1,
	}

	switch {
	case g.Scores[0] == maxRounds && g.Scores[1] == 0:
		summary.WinnerIndex = 0
		summary.ShotTheMoon = true
	case g.Scores[1] == maxRounds && g.Scores[0] == 0:
		summary.WinnerIndex = 1
		summary.ShotTheMoon = true
	case g.Scores[0] > g.Scores[1]:
		summary.WinnerIndex = 0
	case g.Scores[1] > g.Scores[0]:
		summary.WinnerIndex = 1
	default:
		summary.Tie = true
	}

	if summary.WinnerIndex != -1 {
		summary.WinnerName = g.Players[summary.WinnerIndex].Name
	}
	return summary
}

// emit marshals and sends one event. Events are best-effort; a nil sender
// (no frontend attached) drops them.
func (g *Game) emit(msgType string, payload interface{}) {
	if g.sendEvent == nil {
		return
	}
	message, err := protocol.NewMessage(msgType, payload)
	if err != nil {
		log.Printf("Game %s: Error creating %s event: %v", g.ID, msgType, err)
		return
	}
	g.sendEvent(message)
}
