package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jusunglee/kanafy/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Repository implements db.Repository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	isNew := false
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		isNew = true
	}

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}

	// An in-memory database exists per connection.
	if dbPath == ":memory:" {
		sqliteDB.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read performance
	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	if isNew {
		slog.Info("created new SQLite database", "path", dbPath)
	}

	return &Repository{db: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

// Pronunciation methods

func (r *Repository) UpsertPronunciations(ctx context.Context, args []db.UpsertPronunciationParams) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO pronunciations (word, phonemes, updated_at)
		VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))
		ON CONFLICT (word) DO UPDATE SET
			phonemes = excluded.phonemes,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing upsert: %w", err)
	}
	defer stmt.Close()

	var n int64
	for _, arg := range args {
		if len(arg.Phonemes) == 0 {
			return 0, fmt.Errorf("%s: %w", arg.Word, db.ErrEmptyPronunciation)
		}
		if _, err := stmt.ExecContext(ctx, arg.Word, strings.Join(arg.Phonemes, " ")); err != nil {
			return 0, fmt.Errorf("upserting %s: %w", arg.Word, err)
		}
		n++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return n, nil
}

func (r *Repository) GetPronunciation(ctx context.Context, word string) (db.Pronunciation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT word, phonemes, updated_at FROM pronunciations WHERE word = ?
	`, word)

	var p db.Pronunciation
	var phonemes, updatedAtStr string
	err := row.Scan(&p.Word, &phonemes, &updatedAtStr)
	if err == sql.ErrNoRows {
		return db.Pronunciation{}, db.ErrNoRows
	}
	if err != nil {
		return db.Pronunciation{}, err
	}
	p.Phonemes = strings.Fields(phonemes)
	p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return p, nil
}

func (r *Repository) ListPronunciations(ctx context.Context) ([]db.Pronunciation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT word, phonemes, updated_at FROM pronunciations ORDER BY word
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []db.Pronunciation
	for rows.Next() {
		var p db.Pronunciation
		var phonemes, updatedAtStr string
		if err := rows.Scan(&p.Word, &phonemes, &updatedAtStr); err != nil {
			return nil, err
		}
		p.Phonemes = strings.Fields(phonemes)
		p.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repository) CountPronunciations(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pronunciations`).Scan(&count)
	return count, err
}

func (r *Repository) DeletePronunciation(ctx context.Context, word string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM pronunciations WHERE word = ?`, word)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// Fallback miss methods

func (r *Repository) RecordMiss(ctx context.Context, word string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO fallback_misses (word) VALUES (?)
		ON CONFLICT (word) DO UPDATE SET
			hits = hits + 1,
			last_seen = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
	`, word)
	return err
}

func (r *Repository) ListMisses(ctx context.Context, limit int32) ([]db.FallbackMiss, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT word, hits, first_seen, last_seen
		FROM fallback_misses
		ORDER BY hits DESC, last_seen DESC, word
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []db.FallbackMiss
	for rows.Next() {
		var m db.FallbackMiss
		var firstSeenStr, lastSeenStr string
		if err := rows.Scan(&m.Word, &m.Hits, &firstSeenStr, &lastSeenStr); err != nil {
			return nil, err
		}
		m.FirstSeen, _ = time.Parse(time.RFC3339, firstSeenStr)
		m.LastSeen, _ = time.Parse(time.RFC3339, lastSeenStr)
		out = append(out, m)
	}
	return out, rows.Err()
}
