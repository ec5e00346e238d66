package db

import (
	"context"
	"time"
)

// Pronunciation is a stored dictionary entry. Phonemes are kept in
// dictionary order.
type Pronunciation struct {
	Word      string
	Phonemes  []string
	UpdatedAt time.Time
}

type UpsertPronunciationParams struct {
	Word     string
	Phonemes []string
}

// FallbackMiss is a word that had no dictionary entry and was converted by
// the generic fallback.
type FallbackMiss struct {
	Word      string
	Hits      int64
	FirstSeen time.Time
	LastSeen  time.Time
}

// Repository defines all database operations.
type Repository interface {
	// Pronunciations
	UpsertPronunciations(ctx context.Context, args []UpsertPronunciationParams) (int64, error)
	GetPronunciation(ctx context.Context, word string) (Pronunciation, error)
	ListPronunciations(ctx context.Context) ([]Pronunciation, error)
	CountPronunciations(ctx context.Context) (int64, error)
	DeletePronunciation(ctx context.Context, word string) (int64, error)

	// Fallback misses
	RecordMiss(ctx context.Context, word string) error
	ListMisses(ctx context.Context, limit int32) ([]FallbackMiss, error)

	Close() error
}
