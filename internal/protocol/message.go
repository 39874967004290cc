package protocol

import (
	"encoding/json"

	"github.com/hkoppala9275/tricksy-battle/internal/shared"
)

// Message represents a generic game event structure.
type Message struct {
	Type    string          `json:"type"`              // Type of the event (e.g., "round_start", "card_played")
	Payload json.RawMessage `json:"payload,omitempty"` // Raw JSON payload, allows flexible structures
}

type PlayerInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Index int    `json:"index"` // Player's seat in the game (0 or 1)
}

type GameStartPayload struct {
	GameID      string       `json:"game_id"`
	Players     []PlayerInfo `json:"players"`
	LeaderIndex int          `json:"leader_index"`
}

type DealHandPayload struct {
	PlayerIndex int           `json:"player_index"`
	Name        string        `json:"name"`
	Hand        []shared.Card `json:"hand"`
}

type RoundStartPayload struct {
	Round int `json:"round"`
}

type LeadTurnPayload struct {
	PlayerIndex int           `json:"player_index"`
	Name        string        `json:"name"`
	Hand        []shared.Card `json:"hand"`
}

type FollowTurnPayload struct {
	PlayerIndex int         `json:"player_index"`
	Name        string      `json:"name"`
	Suit        shared.Suit `json:"suit"`
	MustFollow  bool        `json:"must_follow"`
}

type CardPlayedPayload struct {
	PlayerIndex int         `json:"player_index"`
	Name        string      `json:"name"`
	Card        shared.Card `json:"card"`
	Led         bool        `json:"led"`
}

type TrickEndPayload struct {
	WinnerIndex int           `json:"winner_index"`
	WinnerName  string        `json:"winner_name"`
	Cards       []shared.Card `json:"cards"`
}

type DeckRevealPayload struct {
	Card shared.Card `json:"card"`
}

type RedealPayload struct {
	CardsEach int `json:"cards_each"`
	DealsDone int `json:"deals_done"`
}

type ScorePayload struct {
	Player1 string `json:"player1"`
	Score1  int    `json:"score1"`
	Player2 string `json:"player2"`
	Score2  int    `json:"score2"`
}

type GameOverPayload struct {
	Player1     string `json:"player1"`
	Player2     string `json:"player2"`
	Score1      int    `json:"score1"`
	Score2      int    `json:"score2"`
	WinnerIndex int    `json:"winner_index"` // -1 on a tie
	WinnerName  string `json:"winner_name,omitempty"`
	Tie         bool   `json:"tie"`
	ShotTheMoon bool   `json:"shot_the_moon"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// Helper function to create a JSON message
func NewMessage(msgType string, payload interface{}) ([]byte, error) {
	// Handle nil payload specifically
	if payload == nil {
		msg := Message{
			Type:    msgType,
			Payload: nil,
		}
		return json.Marshal(msg)
	}

	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	msg := Message{
		Type:    msgType,
		Payload: payloadBytes,
	}
	return json.Marshal(msg)
}
