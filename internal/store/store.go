// Package store persists completed tournament runs in Postgres.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/keremaydin/basketball-sim/internal/tournament"
)

// Store wraps a Postgres connection and persists simulated tournaments.
type Store struct {
	DB *sql.DB
}

// NewStore opens a Postgres connection using the given connection string
// and verifies it early with a ping.
func NewStore(connStr string) (*Store, error) {
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	return &Store{DB: db}, nil
}

// Migrate creates the necessary tables if they do not exist.
func (s *Store) Migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS tournaments (
			id          UUID PRIMARY KEY,
			seed        BIGINT NOT NULL,
			champion    TEXT   NOT NULL,
			runner_up   TEXT   NOT NULL,
			third_place TEXT   NOT NULL,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
		);`,
		`CREATE TABLE IF NOT EXISTS standings (
			id            SERIAL PRIMARY KEY,
			tournament_id UUID NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
			group_label   TEXT NOT NULL,
			position      INT  NOT NULL,
			team          TEXT NOT NULL,
			wins          INT  NOT NULL,
			losses        INT  NOT NULL,
			points        INT  NOT NULL,
			scored        INT  NOT NULL,
			conceded      INT  NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS matches (
			id            SERIAL PRIMARY KEY,
			tournament_id UUID NOT NULL REFERENCES tournaments(id) ON DELETE CASCADE,
			stage         TEXT NOT NULL,
			group_label   TEXT,
			home_team     TEXT NOT NULL,
			away_team     TEXT NOT NULL,
			home_score    INT  NOT NULL,
			away_score    INT  NOT NULL
		);`,
	}
	for _, q := range queries {
		if _, err := s.DB.Exec(q); err != nil {
			return fmt.Errorf("migrating: %w", err)
		}
	}
	return nil
}

// SaveResult stores a completed run and everything it produced in one
// transaction, returning the new run's id.
func (s *Store) SaveResult(seed int64, res *tournament.Result) (uuid.UUID, error) {
	id := uuid.New()

	tx, err := s.DB.Begin()
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin SaveResult tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO tournaments (id, seed, champion, runner_up, third_place)
		 VALUES ($1, $2, $3, $4, $5)`,
		id, seed, res.Champion.Name, res.RunnerUp.Name, res.Third.Name,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting tournament %s: %w", id, err)
	}

	const standingQ = `
		INSERT INTO standings (tournament_id, group_label, position, team, wins, losses, points, scored, conceded)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	const matchQ = `
		INSERT INTO matches (tournament_id, stage, group_label, home_team, away_team, home_score, away_score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	for _, gr := range res.Groups {
		for pos, e := range gr.Table {
			if _, err := tx.Exec(standingQ,
				id, gr.Label, pos+1, e.Team.Name,
				e.Wins, e.Losses, e.Points, e.Scored, e.Conceded,
			); err != nil {
				return uuid.Nil, fmt.Errorf("inserting standing for %s: %w", e.Team.Name, err)
			}
		}
		for _, m := range gr.Matches {
			if _, err := tx.Exec(matchQ,
				id, tournament.GroupStage.String(), gr.Label,
				m.Home.Name, m.Away.Name, m.HomeScore, m.AwayScore,
			); err != nil {
				return uuid.Nil, fmt.Errorf("inserting group match: %w", err)
			}
		}
	}

	for _, m := range res.Knockout {
		if _, err := tx.Exec(matchQ,
			id, m.Stage.String(), nil,
			m.Home.Name, m.Away.Name, m.HomeScore, m.AwayScore,
		); err != nil {
			return uuid.Nil, fmt.Errorf("inserting knockout match: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit SaveResult tx: %w", err)
	}
	return id, nil
}

// SavedTournament is the header row of a persisted run.
type SavedTournament struct {
	ID         uuid.UUID `json:"id"`
	Seed       int64     `json:"seed"`
	Champion   string    `json:"champion"`
	RunnerUp   string    `json:"runnerUp"`
	ThirdPlace string    `json:"thirdPlace"`
}

// GetTournament fetches one persisted run by id.
func (s *Store) GetTournament(id uuid.UUID) (*SavedTournament, error) {
	t := &SavedTournament{}
	err := s.DB.QueryRow(
		`SELECT id, seed, champion, runner_up, third_place FROM tournaments WHERE id = $1`, id,
	).Scan(&t.ID, &t.Seed, &t.Champion, &t.RunnerUp, &t.ThirdPlace)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tournament %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying tournament %s: %w", id, err)
	}
	return t, nil
}

// StandingRow is one persisted standings line.
type StandingRow struct {
	Group    string `json:"group"`
	Position int    `json:"position"`
	Team     string `json:"team"`
	Wins     int    `json:"wins"`
	Losses   int    `json:"losses"`
	Points   int    `json:"points"`
	Scored   int    `json:"scored"`
	Conceded int    `json:"conceded"`
}

// GetStandings returns a run's group tables in table order.
func (s *Store) GetStandings(id uuid.UUID) ([]StandingRow, error) {
	rows, err := s.DB.Query(
		`SELECT group_label, position, team, wins, losses, points, scored, conceded
		 FROM standings
		 WHERE tournament_id = $1
		 ORDER BY group_label, position`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("querying standings for %s: %w", id, err)
	}
	defer rows.Close()

	var standings []StandingRow
	for rows.Next() {
		var r StandingRow
		if err := rows.Scan(&r.Group, &r.Position, &r.Team, &r.Wins, &r.Losses, &r.Points, &r.Scored, &r.Conceded); err != nil {
			return nil, fmt.Errorf("scanning standing row: %w", err)
		}
		standings = append(standings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating standings rows: %w", err)
	}
	return standings, nil
}
