package pronunciation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/jusunglee/kanafy/internal/lexicon"
	"github.com/jusunglee/kanafy/internal/phoneme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeFallback struct{}

func (fakeFallback) Katakana(word string) string {
	return "<" + word + ">"
}

type MockMissRecorder struct {
	mock.Mock
}

func (m *MockMissRecorder) RecordMiss(ctx context.Context, word string) error {
	return m.Called(ctx, word).Error(0)
}

func newTestPronouncer(t *testing.T, dict string, opts ...Option) *Pronouncer {
	t.Helper()
	d, err := lexicon.Load(strings.NewReader(dict))
	require.NoError(t, err)
	return New(d, phoneme.Default(), fakeFallback{}, opts...)
}

func TestKanaForDictionaryWord(t *testing.T) {
	p := newTestPronouncer(t, "HELLO HH AH L OW\n")

	for _, word := range []string{"HELLO", "hello", "Hello"} {
		kana, err := p.KanaFor(context.Background(), word)
		require.NoError(t, err)
		assert.Equal(t, "ハロー", kana, word)
	}
}

func TestLookupFallback(t *testing.T) {
	misses := &MockMissRecorder{}
	misses.On("RecordMiss", mock.Anything, "UNKNOWNWORD123").Return(nil).Once()
	p := newTestPronouncer(t, "HELLO HH AH L OW\n", WithMissRecorder(misses))

	r, err := p.Lookup(context.Background(), "unknownword123")
	require.NoError(t, err)
	assert.Equal(t, Result{Word: "unknownword123", Kana: "<unknownword123>", Source: SourceFallback}, r)
	misses.AssertExpectations(t)
}

func TestLookupFallbackIgnoresRecorderError(t *testing.T) {
	misses := &MockMissRecorder{}
	misses.On("RecordMiss", mock.Anything, "SUSHI").Return(errors.New("disk full"))
	p := newTestPronouncer(t, "HELLO HH AH L OW\n", WithMissRecorder(misses))

	kana, err := p.KanaFor(context.Background(), "sushi")
	require.NoError(t, err)
	assert.Equal(t, "<sushi>", kana)
	misses.AssertExpectations(t)
}

func TestLookupDictionaryResult(t *testing.T) {
	misses := &MockMissRecorder{}
	p := newTestPronouncer(t, "CAT K AE T\n", WithMissRecorder(misses))

	r, err := p.Lookup(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, "cat", r.Word)
	assert.Equal(t, "カト", r.Kana)
	assert.Equal(t, SourceDictionary, r.Source)
	assert.Equal(t, []phoneme.Phoneme{"K", "AE", "T"}, r.Phonemes)
	misses.AssertNotCalled(t, "RecordMiss", mock.Anything, mock.Anything)
}

func TestLookupUncoverable(t *testing.T) {
	p := newTestPronouncer(t, "ODD AE IY\n")

	_, err := p.KanaFor(context.Background(), "odd")
	require.Error(t, err)
	assert.True(t, errors.Is(err, phoneme.ErrUncoverable))

	var pairErr *phoneme.UncoverablePairError
	require.True(t, errors.As(err, &pairErr))
	assert.Equal(t, phoneme.Phoneme("AE"), pairErr.Current)
	assert.Equal(t, phoneme.Before("IY"), pairErr.Next)
	assert.Contains(t, err.Error(), "ODD")
}

func TestBatchPreservesOrder(t *testing.T) {
	p := newTestPronouncer(t, "HELLO HH AH L OW\nCAT K AE T\n")

	words := []string{"cat", "tokyo", "hello", "CAT"}
	for i := range 40 {
		words = append(words, fmt.Sprintf("w%d", i))
	}

	results, err := p.Batch(context.Background(), words, 4)
	require.NoError(t, err)
	require.Len(t, results, len(words))
	for i, r := range results {
		assert.Equal(t, words[i], r.Word)
	}
	assert.Equal(t, "カト", results[0].Kana)
	assert.Equal(t, "<tokyo>", results[1].Kana)
	assert.Equal(t, "ハロー", results[2].Kana)
	assert.Equal(t, SourceDictionary, results[3].Source)
}

func TestBatchStopsOnError(t *testing.T) {
	p := newTestPronouncer(t, "ODD AE IY\nCAT K AE T\n")

	results, err := p.Batch(context.Background(), []string{"cat", "odd", "cat"}, 0)
	require.Error(t, err)
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, phoneme.ErrUncoverable))
}

func TestBatchCancelled(t *testing.T) {
	p := newTestPronouncer(t, "CAT K AE T\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Batch(ctx, []string{"cat"}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBatchEmpty(t *testing.T) {
	p := newTestPronouncer(t, "CAT K AE T\n")

	results, err := p.Batch(context.Background(), nil, 4)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestCoverage(t *testing.T) {
	d, err := lexicon.Load(strings.NewReader(`CAT K AE T
HELLO HH AH L OW
ODD AE IY
ODDER AE IY QQ
STRANGE QQ
`))
	require.NoError(t, err)

	report := Coverage(d, phoneme.Default())
	assert.Equal(t, 5, report.Entries)
	assert.Equal(t, 2, report.Covered)
	assert.Equal(t, 3, report.Uncovered)
	assert.False(t, report.Complete())

	require.Len(t, report.Gaps, 2)
	assert.Equal(t, phoneme.Phoneme("AE"), report.Gaps[0].Current)
	assert.Equal(t, "IY", report.Gaps[0].Next)
	assert.Equal(t, phoneme.Before("IY"), report.Gaps[0].Context())
	assert.Equal(t, []string{"ODD", "ODDER"}, report.Gaps[0].Words)

	assert.Equal(t, phoneme.Phoneme("QQ"), report.Gaps[1].Current)
	assert.Equal(t, "", report.Gaps[1].Next)
	assert.True(t, report.Gaps[1].Context().IsIsolated())
	assert.Equal(t, []string{"ODDER", "STRANGE"}, report.Gaps[1].Words)
}

func TestCoverageComplete(t *testing.T) {
	d, err := lexicon.Load(strings.NewReader("CAT K AE T\nHELLO HH AH L OW\n"))
	require.NoError(t, err)

	report := Coverage(d, phoneme.Default())
	assert.True(t, report.Complete())
	assert.Equal(t, 2, report.Covered)
	assert.Empty(t, report.Gaps)
}
