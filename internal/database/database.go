package database

import (
	"database/sql"
	"strconv"
	"strings"
	"sync"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/joho/godotenv/autoload"
	_ "github.com/mattn/go-sqlite3"
)

// Service stores finished game results.
type Service struct {
	db         *sql.DB
	m          *sync.Mutex
	driver     string
	table_name string
}

var (
	tableName  = "tricksy_battle"
	dbInstance *Service
)

// New opens the history database and creates the results table when absent.
// Supported drivers are "sqlite3" and "pgx".
func New(driver, dsn string) Service {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		panic(err)
	}

	sqlStmt := `
	create table if not exists tricksy_battle (
		id text not null primary key,
		created_at text,
		player1 text,
		player2 text,
		player1_score integer,
		player2_score integer,
		rounds integer,
		winner text
	);
	`
	_, err = db.Exec(sqlStmt)
	if err != nil {
		panic(err)
	}

	dbInstance = &Service{
		db:         db,
		m:          &sync.Mutex{},
		driver:     driver,
		table_name: tableName,
	}

	return *dbInstance
}

func (s *Service) Close() error {
	return s.db.Close()
}

func (s *Service) TableName() string {
	return s.table_name
}

// rebind rewrites ? placeholders to $1..$N for the pgx driver.
func (s *Service) rebind(query string) string {
	if s.driver != "pgx" {
		return query
	}
	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			sb.WriteByte('$')
			sb.WriteString(strconv.Itoa(n))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

func (s *Service) GetAll() ([]GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query("SELECT * FROM " + s.table_name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var result GameResult
		if err := rows.Scan(
			&result.ID,
			&result.CreatedAt,
			&result.Player1,
			&result.Player2,
			&result.Player1Score,
			&result.Player2Score,
			&result.Rounds,
			&result.Winner); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	return results, nil
}

func (s *Service) GetByID(id string) (GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	var result GameResult
	err := s.db.QueryRow(s.rebind("SELECT * FROM "+s.table_name+" WHERE id = ?"), id).Scan(
		&result.ID,
		&result.CreatedAt,
		&result.Player1,
		&result.Player2,
		&result.Player1Score,
		&result.Player2Score,
		&result.Rounds,
		&result.Winner)
	if err != nil {
		return GameResult{}, err
	}
	return result, nil
}

func (s *Service) Insert(result GameResult) error {
	s.m.Lock()
	defer s.m.Unlock()
	_, err := s.db.Exec(s.rebind("INSERT INTO "+s.table_name+
		" (id, created_at, player1, player2, player1_score, player2_score, rounds, winner) VALUES (?, ?, ?, ?, ?, ?, ?, ?)"),
		result.ID,
		result.CreatedAt,
		result.Player1,
		result.Player2,
		result.Player1Score,
		result.Player2Score,
		result.Rounds,
		result.Winner)

	if err != nil {
		return err
	}

	return nil
}

func (s *Service) GetByPlayer(player_name string) ([]GameResult, error) {
	s.m.Lock()
	defer s.m.Unlock()
	rows, err := s.db.Query(s.rebind("SELECT * FROM "+s.table_name+
		" WHERE player1 = ? OR player2 = ?"),
		player_name,
		player_name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []GameResult
	for rows.Next() {
		var result GameResult
		if err := rows.Scan(
			&result.ID,
			&result.CreatedAt,
			&result.Player1,
			&result.Player2,
			&result.Player1Score,
			&result.Player2Score,
			&result.Rounds,
			&result.Winner); err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	if len(results) == 0 {
		return nil, sql.ErrNoRows // No results found
	}

	return results, nil
}
