// Package store connects the pronunciation dictionary to a database.
package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/jusunglee/kanafy/internal/db"
	"github.com/jusunglee/kanafy/internal/db/postgres"
	"github.com/jusunglee/kanafy/internal/db/sqlite"
	"github.com/jusunglee/kanafy/internal/lexicon"
	"github.com/jusunglee/kanafy/internal/phoneme"
	"github.com/samber/lo"
)

// DefaultBatchSize is the number of entries written per transaction by Import.
const DefaultBatchSize = 1000

// IsPostgres reports whether url points at a PostgreSQL server.
func IsPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}

// Open returns a PostgreSQL repository for postgres:// URLs and a SQLite
// repository for anything else (a file path, sqlite://path or :memory:).
func Open(ctx context.Context, url string) (db.Repository, error) {
	if IsPostgres(url) {
		repo, err := postgres.New(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("creating PostgreSQL connection: %w", err)
		}
		return repo, nil
	}
	repo, err := sqlite.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("creating SQLite connection: %w", err)
	}
	return repo, nil
}

// LoadDictionary reads every stored pronunciation into a Dictionary.
func LoadDictionary(ctx context.Context, repo db.Repository) (*lexicon.Dictionary, error) {
	rows, err := repo.ListPronunciations(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing pronunciations: %w", err)
	}
	d := lexicon.New()
	for _, row := range rows {
		if len(row.Phonemes) == 0 {
			return nil, fmt.Errorf("%s: %w", row.Word, db.ErrEmptyPronunciation)
		}
		d.Add(row.Word, lo.Map(row.Phonemes, func(s string, _ int) phoneme.Phoneme { return phoneme.Phoneme(s) }))
	}
	return d, nil
}

// Import upserts every entry of dict, batchSize entries per call. It
// returns the number of rows written.
func Import(ctx context.Context, repo db.Repository, dict *lexicon.Dictionary, batchSize int) (int64, error) {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	params := lo.Map(dict.Entries(), func(e lexicon.Entry, _ int) db.UpsertPronunciationParams {
		return db.UpsertPronunciationParams{
			Word:     e.Word,
			Phonemes: lo.Map(e.Phonemes, func(p phoneme.Phoneme, _ int) string { return string(p) }),
		}
	})

	var total int64
	for _, chunk := range lo.Chunk(params, batchSize) {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		n, err := repo.UpsertPronunciations(ctx, chunk)
		if err != nil {
			return total, fmt.Errorf("importing batch at %s: %w", chunk[0].Word, err)
		}
		total += n
	}
	return total, nil
}
