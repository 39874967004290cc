package database

type GameResult struct {
	ID           string `json:"id"`
	CreatedAt    string `json:"created_at"`
	Player1      string `json:"player1"`
	Player2      string `json:"player2"`
	Player1Score int    `json:"player1_score"`
	Player2Score int    `json:"player2_score"`
	Rounds       int    `json:"rounds"`
	Winner       string `json:"winner"` // Winner's name; empty on a tie
}
