package sqlite

import (
	"context"
	"errors"
	"testing"

	"github.com/jusunglee/kanafy/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestPronunciationCRUD(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	n, err := repo.UpsertPronunciations(ctx, []db.UpsertPronunciationParams{
		{Word: "HELLO", Phonemes: []string{"HH", "AH", "L", "OW"}},
		{Word: "CAT", Phonemes: []string{"K", "AE", "T"}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	p, err := repo.GetPronunciation(ctx, "HELLO")
	require.NoError(t, err)
	assert.Equal(t, []string{"HH", "AH", "L", "OW"}, p.Phonemes)
	assert.False(t, p.UpdatedAt.IsZero())

	count, err := repo.CountPronunciations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	all, err := repo.ListPronunciations(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "CAT", all[0].Word)
	assert.Equal(t, "HELLO", all[1].Word)

	// Upsert replaces
	_, err = repo.UpsertPronunciations(ctx, []db.UpsertPronunciationParams{
		{Word: "CAT", Phonemes: []string{"K", "AA", "T"}},
	})
	require.NoError(t, err)
	p, err = repo.GetPronunciation(ctx, "CAT")
	require.NoError(t, err)
	assert.Equal(t, []string{"K", "AA", "T"}, p.Phonemes)

	rows, err := repo.DeletePronunciation(ctx, "CAT")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	_, err = repo.GetPronunciation(ctx, "CAT")
	assert.True(t, db.IsNoRows(err))
}

func TestUpsertRejectsEmptyPronunciation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.UpsertPronunciations(ctx, []db.UpsertPronunciationParams{
		{Word: "CAT", Phonemes: []string{"K", "AE", "T"}},
		{Word: "EMPTY"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, db.ErrEmptyPronunciation))

	// the whole batch is rolled back
	count, err := repo.CountPronunciations(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestMisses(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.RecordMiss(ctx, "SUSHI"))
	require.NoError(t, repo.RecordMiss(ctx, "RAMEN"))
	require.NoError(t, repo.RecordMiss(ctx, "SUSHI"))

	misses, err := repo.ListMisses(ctx, 10)
	require.NoError(t, err)
	require.Len(t, misses, 2)
	assert.Equal(t, "SUSHI", misses[0].Word)
	assert.Equal(t, int64(2), misses[0].Hits)
	assert.Equal(t, "RAMEN", misses[1].Word)
	assert.Equal(t, int64(1), misses[1].Hits)

	limited, err := repo.ListMisses(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}
