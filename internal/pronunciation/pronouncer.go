// Package pronunciation turns English words into katakana: dictionary words
// go through the phoneme table, everything else through a generic
// fallback converter.
package pronunciation

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jusunglee/kanafy/internal/lexicon"
	"github.com/jusunglee/kanafy/internal/metrics"
	"github.com/jusunglee/kanafy/internal/phoneme"
)

type Source string

const (
	SourceDictionary Source = "dictionary"
	SourceFallback   Source = "fallback"
)

// Fallback renders a word in katakana without knowing its pronunciation.
type Fallback interface {
	Katakana(word string) string
}

// MissRecorder is told about every word that went to the fallback.
type MissRecorder interface {
	RecordMiss(ctx context.Context, word string) error
}

type Result struct {
	Word     string            `json:"word"`
	Kana     string            `json:"kana"`
	Source   Source            `json:"source"`
	Phonemes []phoneme.Phoneme `json:"phonemes,omitempty"`
}

// Pronouncer is safe for concurrent use; the dictionary and table are only
// ever read.
type Pronouncer struct {
	dict     *lexicon.Dictionary
	table    *phoneme.Table
	fallback Fallback
	misses   MissRecorder
	log      *slog.Logger
}

type Option func(*Pronouncer)

func WithMissRecorder(m MissRecorder) Option {
	return func(p *Pronouncer) { p.misses = m }
}

func WithLogger(log *slog.Logger) Option {
	return func(p *Pronouncer) { p.log = log }
}

func New(dict *lexicon.Dictionary, table *phoneme.Table, fallback Fallback, opts ...Option) *Pronouncer {
	p := &Pronouncer{
		dict:     dict,
		table:    table,
		fallback: fallback,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	metrics.DictionaryEntries.Set(float64(dict.Len()))
	return p
}

func (p *Pronouncer) Dictionary() *lexicon.Dictionary { return p.dict }

func (p *Pronouncer) Table() *phoneme.Table { return p.table }

// Lookup converts word. The dictionary key is the upper-cased word; a miss
// is handed to the fallback untouched.
func (p *Pronouncer) Lookup(ctx context.Context, word string) (Result, error) {
	key := strings.ToUpper(word)
	phonemes, ok := p.dict.Lookup(key)
	if !ok {
		metrics.WordsConverted.WithLabelValues(string(SourceFallback)).Inc()
		if p.misses != nil {
			if err := p.misses.RecordMiss(ctx, key); err != nil {
				p.log.WarnContext(ctx, "recording fallback miss", "word", key, "error", err)
			}
		}
		return Result{Word: word, Kana: p.fallback.Katakana(word), Source: SourceFallback}, nil
	}

	kana, err := p.table.Convert(phonemes)
	if err != nil {
		metrics.ConversionErrors.WithLabelValues("uncoverable").Inc()
		return Result{}, fmt.Errorf("converting %s: %w", key, err)
	}

	metrics.WordsConverted.WithLabelValues(string(SourceDictionary)).Inc()
	return Result{Word: word, Kana: kana, Source: SourceDictionary, Phonemes: phonemes}, nil
}

// KanaFor returns only the katakana for word.
func (p *Pronouncer) KanaFor(ctx context.Context, word string) (string, error) {
	r, err := p.Lookup(ctx, word)
	if err != nil {
		return "", err
	}
	return r.Kana, nil
}
