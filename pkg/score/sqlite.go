package score

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS best_scores (
	mode TEXT PRIMARY KEY,
	score INTEGER NOT NULL
);
`

// SQLiteStore keeps best scores in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (Scores, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT mode, score FROM best_scores;`)
	if err != nil {
		return DefaultScores(), fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	scores := DefaultScores()
	for rows.Next() {
		var (
			mode  string
			score int
		)
		if err := rows.Scan(&mode, &score); err != nil {
			return DefaultScores(), fmt.Errorf("failed to scan score: %w", err)
		}
		scores[mode] = score
	}
	if err := rows.Err(); err != nil {
		return DefaultScores(), fmt.Errorf("failed to read scores: %w", err)
	}
	scores.clamp()

	return scores, nil
}

func (s *SQLiteStore) Save(ctx context.Context, scores Scores) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := `
	INSERT OR REPLACE INTO best_scores (mode, score)
	VALUES (?, ?);
	`
	for mode, score := range scores {
		if _, err := tx.ExecContext(ctx, q, mode, score); err != nil {
			return fmt.Errorf("failed to save score for %s: %w", mode, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
