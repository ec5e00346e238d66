package postgres

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/kanafy/internal/db"
)

//go:embed schema.sql
var schemaSQL string

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
}

// New connects to PostgreSQL and makes sure the schema exists.
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	pool, err := db.NewPool(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

// PoolStats exposes connection pool statistics for metrics.
func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

func (r *Repository) UpsertPronunciations(ctx context.Context, args []db.UpsertPronunciationParams) (int64, error) {
	for _, arg := range args {
		if len(arg.Phonemes) == 0 {
			return 0, fmt.Errorf("%s: %w", arg.Word, db.ErrEmptyPronunciation)
		}
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, arg := range args {
		batch.Queue(`
			INSERT INTO pronunciations (word, phonemes, updated_at)
			VALUES ($1, $2, now())
			ON CONFLICT (word) DO UPDATE SET
				phonemes = EXCLUDED.phonemes,
				updated_at = EXCLUDED.updated_at
		`, arg.Word, strings.Join(arg.Phonemes, " "))
	}

	br := tx.SendBatch(ctx, batch)
	var n int64
	for _, arg := range args {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return 0, fmt.Errorf("upserting %s: %w", arg.Word, err)
		}
		n++
	}
	if err := br.Close(); err != nil {
		return 0, fmt.Errorf("closing batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("committing transaction: %w", err)
	}
	return n, nil
}

func (r *Repository) GetPronunciation(ctx context.Context, word string) (db.Pronunciation, error) {
	var p db.Pronunciation
	var phonemes string
	err := r.pool.QueryRow(ctx, `
		SELECT word, phonemes, updated_at FROM pronunciations WHERE word = $1
	`, word).Scan(&p.Word, &phonemes, &p.UpdatedAt)
	if err != nil {
		return db.Pronunciation{}, err
	}
	p.Phonemes = strings.Fields(phonemes)
	return p, nil
}

func (r *Repository) ListPronunciations(ctx context.Context) ([]db.Pronunciation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT word, phonemes, updated_at FROM pronunciations ORDER BY word
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []db.Pronunciation
	for rows.Next() {
		var p db.Pronunciation
		var phonemes string
		if err := rows.Scan(&p.Word, &phonemes, &p.UpdatedAt); err != nil {
			return nil, err
		}
		p.Phonemes = strings.Fields(phonemes)
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Repository) CountPronunciations(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM pronunciations`).Scan(&count)
	return count, err
}

func (r *Repository) DeletePronunciation(ctx context.Context, word string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM pronunciations WHERE word = $1`, word)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) RecordMiss(ctx context.Context, word string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO fallback_misses (word) VALUES ($1)
		ON CONFLICT (word) DO UPDATE SET
			hits = fallback_misses.hits + 1,
			last_seen = now()
	`, word)
	return err
}

func (r *Repository) ListMisses(ctx context.Context, limit int32) ([]db.FallbackMiss, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT word, hits, first_seen, last_seen
		FROM fallback_misses
		ORDER BY hits DESC, last_seen DESC, word
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []db.FallbackMiss
	for rows.Next() {
		var m db.FallbackMiss
		if err := rows.Scan(&m.Word, &m.Hits, &m.FirstSeen, &m.LastSeen); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
