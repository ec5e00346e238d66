// Package lexicon loads English pronunciation dictionaries: one word per
// line followed by its phonemes, all separated by whitespace.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/jusunglee/kanafy/internal/phoneme"
)

// MalformedLineError reports a dictionary line that has no word or no
// phonemes.
type MalformedLineError struct {
	Line int
	Text string
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: malformed dictionary entry %q", e.Line, e.Text)
}

// Entry is a single pronunciation.
type Entry struct {
	Word     string
	Phonemes []phoneme.Phoneme
}

// Dictionary holds word-to-pronunciation mappings. It is not modified once
// loading has finished.
type Dictionary struct {
	entries map[string][]phoneme.Phoneme
}

// New creates an empty dictionary.
func New() *Dictionary {
	return &Dictionary{entries: make(map[string][]phoneme.Phoneme)}
}

// Add stores the pronunciation of word, replacing any earlier one.
func (d *Dictionary) Add(word string, phonemes []phoneme.Phoneme) {
	d.entries[word] = phonemes
}

// Load reads a dictionary. Any malformed line fails the whole load.
func Load(r io.Reader) (*Dictionary, error) {
	d := New()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			return nil, &MalformedLineError{Line: lineNum, Text: scanner.Text()}
		}

		phonemes := make([]phoneme.Phoneme, len(fields)-1)
		for i, f := range fields[1:] {
			phonemes[i] = phoneme.Phoneme(f)
		}
		d.Add(fields[0], phonemes)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}

	return d, nil
}

// LoadFile opens path and loads it.
func LoadFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()

	d, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Lookup returns the phonemes for word. The key must match exactly.
func (d *Dictionary) Lookup(word string) ([]phoneme.Phoneme, bool) {
	ps, ok := d.entries[word]
	return ps, ok
}

func (d *Dictionary) Len() int {
	return len(d.entries)
}

// Words returns all words, sorted.
func (d *Dictionary) Words() []string {
	return slices.Sorted(maps.Keys(d.entries))
}

// Entries returns every entry ordered by word.
func (d *Dictionary) Entries() []Entry {
	words := d.Words()
	out := make([]Entry, len(words))
	for i, w := range words {
		out[i] = Entry{Word: w, Phonemes: d.entries[w]}
	}
	return out
}

// Each calls fn for every entry in word order until fn returns false.
func (d *Dictionary) Each(fn func(word string, phonemes []phoneme.Phoneme) bool) {
	for _, w := range d.Words() {
		if !fn(w, d.entries[w]) {
			return
		}
	}
}
