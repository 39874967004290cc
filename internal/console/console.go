package console

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/hkoppala9275/tricksy-battle/internal/protocol"
	"github.com/hkoppala9275/tricksy-battle/internal/shared"

	"github.com/pterm/pterm"
)

// Console is the interactive terminal boundary: it collects card choices
// from the players and renders game events as text. It satisfies both the
// game's CardSelector and EventSender contracts.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// New creates a console reading selections from in and printing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Welcome prints the opening banner.
func (c *Console) Welcome() {
	fmt.Fprintf(c.out, "Welcome to Tricksy Battle!\n\n")
}

// PromptName reads a player name, falling back to the default when the
// entry is blank.
func (c *Console) PromptName(defaultName string) string {
	fmt.Fprintf(c.out, "Enter name for %s: ", defaultName)
	line, ok := c.readLine()
	if !ok {
		log.Panicf("Input stream closed while reading a player name.")
	}
	if name := strings.TrimSpace(line); name != "" {
		return name
	}
	return defaultName
}

// ChooseCard presents the candidates as a numbered list and reads a
// selection, re-prompting on non-numeric or out-of-range input for as long
// as it takes. The returned card is always one of the candidates.
func (c *Console) ChooseCard(playerName string, candidates []shared.Card) shared.Card {
	for {
		for i, card := range candidates {
			fmt.Fprintf(c.out, "    %d: %s\n", i+1, formatCard(card))
		}
		fmt.Fprintf(c.out, "%s, choose a card (1-%d): ", playerName, len(candidates))
		line, ok := c.readLine()
		if !ok {
			log.Panicf("Input stream closed while %s was choosing a card.", playerName)
		}
		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(candidates) {
			return candidates[n-1]
		}
		fmt.Fprintln(c.out, "Invalid selection; try again.")
	}
}

// HandleEvent renders one game event. It has the game.EventSender signature.
func (c *Console) HandleEvent(message []byte) {
	var msg protocol.Message
	if err := json.Unmarshal(message, &msg); err != nil {
		log.Printf("Console: dropping undecodable event: %v", err)
		return
	}

	switch msg.Type {
	case "game_start":
		var payload protocol.GameStartPayload
		if !decode(msg.Payload, &payload) {
			return
		}
		if payload.LeaderIndex < 0 || payload.LeaderIndex >= len(payload.Players) {
			log.Printf("Console: game_start with out-of-range leader index %d", payload.LeaderIndex)
			return
		}
		fmt.Fprintf(c.out, "\n%s will lead the first trick.\n\n", payload.Players[payload.LeaderIndex].Name)

	case "deal_hand":
		// Hands are shown when a player leads, not when cards are dealt.

	case "round_start":
		var payload protocol.RoundStartPayload
		if !decode(msg.Payload, &payload) {
			return
		}
		fmt.Fprintf(c.out, "--- Round %d ---\n", payload.Round)

	case "lead_turn":
		var payload protocol.LeadTurnPayload
		if !decode(msg.Payload, &payload) {
			return
		}
		fmt.Fprintf(c.out, "\n%s's hand: %s\n", payload.Name, formatCards(payload.Hand))

	case "follow_turn":
		var payload protocol.FollowTurnPayload
		if !decode(msg.Payload, &payload) {
			return
		}
		if payload.MustFollow {
			fmt.Fprintf(c.out, "%s, you must follow suit (%s):\n", payload.Name, payload.Suit)
		} else {
			fmt.Fprintf(c.out, "%s, you have no %s. Play any card: \n", payload.Name, payload.Suit)
		}

	case "card_played":
		var payload protocol.CardPlayedPayload
		if !decode(msg.Payload, &payload) {
			return
		}
		if payload.Led {
			fmt.Fprintf(c.out, "%s leads: %s\n", payload.Name, formatCard(payload.Card))
		} else {
			fmt.Fprintf(c.out, "%s plays: %s\n", payload.Name, formatCard(payload.Card))
		}

	case "trick_end":
		var payload protocol.TrickEndPayload
		if !decode(msg.Payload, &payload) {
			return
		}
		fmt.Fprintf(c.out, "%s wins the trick!\n\n", payload.WinnerName)

	case "deck_reveal":
		var payload protocol.DeckRevealPayload
		if !decode(msg.Payload, &payload) {
			return
		}
		fmt.Fprintf(c.out, "Revealed from deck: %s\n", formatCard(payload.Card))

	case "redeal":
		var payload protocol.RedealPayload
		if !decode(msg.Payload, &payload) {
			return
		}
		fmt.Fprintf(c.out, "\nDealing %d new cards to each player...\n\n", payload.CardsEach)

	case "score_update":
		var payload protocol.ScorePayload
		if !decode(msg.Payload, &payload) {
			return
		}
		fmt.Fprintf(c.out, "Score → %s: %d | %s: %d\n\n", payload.Player1, payload.Score1, payload.Player2, payload.Score2)

	case "game_over":
		var payload protocol.GameOverPayload
		if !decode(msg.Payload, &payload) {
			return
		}
		fmt.Fprintf(c.out, "=== GAME OVER ===\n")
		fmt.Fprintf(c.out, "Final Score → %s: %d | %s: %d\n", payload.Player1, payload.Score1, payload.Player2, payload.Score2)
		switch {
		case payload.ShotTheMoon:
			fmt.Fprintf(c.out, "%s shot the moon and wins 17-0!\n", payload.WinnerName)
		case payload.Tie:
			fmt.Fprintf(c.out, "It's a tie!\n")
		default:
			fmt.Fprintf(c.out, "%s wins!\n", payload.WinnerName)
		}

	case "error":
		var payload protocol.ErrorPayload
		if !decode(msg.Payload, &payload) {
			return
		}
		fmt.Fprintln(c.out, payload.Message)

	default:
		log.Printf("Console: unhandled event type '%s'", msg.Type)
	}
}

// readLine reads the next input line. Returns false when the stream is done.
func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

// decode unmarshals an event payload, logging and reporting failure.
func decode(raw json.RawMessage, v interface{}) bool {
	if err := json.Unmarshal(raw, v); err != nil {
		log.Printf("Console: bad event payload: %v", err)
		return false
	}
	return true
}

// formatCard renders a card name with its colored suit symbol.
func formatCard(card shared.Card) string {
	return card.String() + " " + suitSymbol(card.Suit)
}

// formatCards renders a comma-joined card list.
func formatCards(cards []shared.Card) string {
	parts := make([]string, len(cards))
	for i, card := range cards {
		parts[i] = formatCard(card)
	}
	return strings.Join(parts, ", ")
}

func suitSymbol(suit shared.Suit) string {
	switch suit {
	case shared.Hearts:
		return pterm.LightRed("♥")
	case shared.Diamonds:
		return pterm.LightRed("♦")
	case shared.Clubs:
		return pterm.Black("♣")
	case shared.Spades:
		return pterm.Black("♠")
	default:
		return "?"
	}
}
