package main

import (
	"log"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/hkoppala9275/tricksy-battle/internal/console"
	"github.com/hkoppala9275/tricksy-battle/internal/database"
	"github.com/hkoppala9275/tricksy-battle/internal/game"
)

func main() {
	term := console.New(os.Stdin, os.Stdout)
	term.Welcome()

	name1 := term.PromptName("Player 1")
	name2 := term.PromptName("Player 2")

	seed := gameSeed()
	rng := rand.New(rand.NewPCG(seed, seed))

	g := game.NewGame(name1, name2, rng)
	g.Run(term, term.HandleEvent)

	saveResult(g)
}

// gameSeed returns the shuffle seed: TRICKSY_SEED when set to an unsigned
// integer, otherwise the current time.
func gameSeed() uint64 {
	if v := os.Getenv("TRICKSY_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			return seed
		}
		log.Printf("Ignoring invalid TRICKSY_SEED %q.", v)
	}
	return uint64(time.Now().UnixNano())
}

// saveResult records the finished game when a history database is configured
// through TRICKSY_DB_DSN. Without one the game leaves no state behind.
func saveResult(g *game.Game) {
	dsn := os.Getenv("TRICKSY_DB_DSN")
	if dsn == "" {
		return
	}
	driver := os.Getenv("TRICKSY_DB_DRIVER")
	if driver == "" {
		driver = "sqlite3"
	}

	db := database.New(driver, dsn)
	defer db.Close()

	summary := g.Summary()
	result := database.GameResult{
		ID:           g.ID,
		CreatedAt:    time.Now().Format(time.RFC3339),
		Player1:      summary.Player1,
		Player2:      summary.Player2,
		Player1Score: summary.Score1,
		Player2Score: summary.Score2,
		Rounds:       g.Round,
		Winner:       summary.WinnerName,
	}
	if err := db.Insert(result); err != nil {
		log.Printf("Failed to save result for game %s: %v", g.ID, err)
		return
	}
	log.Printf("Game %s: result saved to history.", g.ID)
}
