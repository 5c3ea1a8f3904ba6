// Package storage keeps a journal of finished rounds in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// The database lives in memory and is gone when the process exits.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-tictactoe/internal/games/tictactoe"
)

// LocalSession is the session name used for rounds played in a local terminal.
const LocalSession = "local"

// Store manages the SQLite connection backing the round journal.
// It is safe for concurrent use.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// RoundEntry is one journaled round.
type RoundEntry struct {
	ID         string    `json:"id"`
	Session    string    `json:"session"`
	Mode       string    `json:"mode"`
	Difficulty string    `json:"difficulty"`
	Human      string    `json:"human"`
	Outcome    string    `json:"outcome"`
	Moves      int       `json:"moves"`
	PlayedAt   time.Time `json:"played_at"`
}

// Totals aggregates journaled outcomes.
type Totals struct {
	Rounds int `json:"rounds"`
	XWins  int `json:"x_wins"`
	OWins  int `json:"o_wins"`
	Ties   int `json:"ties"`
}

// Scoreboard converts the totals into the engine's scoreboard shape.
func (t Totals) Scoreboard() tictactoe.Scoreboard {
	return tictactoe.Scoreboard{X: t.XWins, O: t.OWins, Ties: t.Ties}
}

// Open creates an in-memory journal and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every pooled connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db, now: time.Now}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			session TEXT NOT NULL,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL,
			human TEXT NOT NULL,
			outcome TEXT NOT NULL,
			moves INTEGER NOT NULL,
			played_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_session ON rounds(session);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordRound journals a finished round for the given session.
// Returns the ID assigned to the round.
func (s *Store) RecordRound(session string, summary tictactoe.RoundSummary) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO rounds (id, session, mode, difficulty, human, outcome, moves, played_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		session,
		summary.Mode.String(),
		summary.Difficulty.String(),
		summary.Human.String(),
		summary.Outcome.String(),
		summary.Moves,
		s.now().UnixMilli(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot record round: %w", err)
	}
	return id, nil
}

// Totals returns outcome counts across every session.
func (s *Store) Totals() (Totals, error) {
	return s.totals("SELECT outcome, COUNT(*) FROM rounds GROUP BY outcome")
}

// SessionTotals returns outcome counts for a single session.
func (s *Store) SessionTotals(session string) (Totals, error) {
	return s.totals("SELECT outcome, COUNT(*) FROM rounds WHERE session = ? GROUP BY outcome", session)
}

func (s *Store) totals(query string, args ...any) (Totals, error) {
	var t Totals
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return t, fmt.Errorf("storage: cannot query totals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return t, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		switch outcome {
		case tictactoe.OutcomeX.String():
			t.XWins = n
		case tictactoe.OutcomeO.String():
			t.OWins = n
		case tictactoe.OutcomeTie.String():
			t.Ties = n
		}
		t.Rounds += n
	}

	if err := rows.Err(); err != nil {
		return t, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return t, nil
}

// RecentRounds retrieves the most recent rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session, mode, difficulty, human, outcome, moves, played_at
		 FROM rounds
		 ORDER BY seq DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	entries := []RoundEntry{}
	for rows.Next() {
		var e RoundEntry
		var playedAt int64
		if err := rows.Scan(&e.ID, &e.Session, &e.Mode, &e.Difficulty, &e.Human, &e.Outcome, &e.Moves, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.PlayedAt = time.UnixMilli(playedAt).UTC()
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Recorder journals every round finished by one session's controller.
type Recorder struct {
	store   *Store
	session string
	logger  *log.Logger
}

// Recorder returns a round observer that journals rounds under session.
// Journal failures are logged; they never interrupt the game.
func (s *Store) Recorder(session string, logger *log.Logger) *Recorder {
	return &Recorder{store: s, session: session, logger: logger}
}

// RoundFinished implements tictactoe.RoundObserver.
func (r *Recorder) RoundFinished(summary tictactoe.RoundSummary) {
	id, err := r.store.RecordRound(r.session, summary)
	if err != nil {
		if r.logger != nil {
			r.logger.Error("journal write failed", "session", r.session, "err", err)
		}
		return
	}
	if r.logger != nil {
		r.logger.Debug("round journaled", "id", id, "session", r.session, "outcome", summary.Outcome)
	}
}

// Session returns the session the recorder writes under.
func (r *Recorder) Session() string {
	return r.session
}
