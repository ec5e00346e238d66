// Package phoneme turns ARPABET-style phoneme sequences into katakana using a
// two-level digraph table and one symbol of lookahead.
package phoneme

import "strings"

// Phoneme is an ARPABET-style symbol such as "K", "AE" or "ZH". Symbols are
// opaque keys; nothing here checks them against the canonical set.
type Phoneme string

// Context is what follows a phoneme: either another phoneme or nothing at
// all. The zero value is Isolated.
type Context struct {
	next Phoneme
	set  bool
}

// Isolated is the context of a phoneme with nothing after it.
var Isolated = Context{}

// Before returns the context of a phoneme that is followed by p.
func Before(p Phoneme) Context {
	return Context{next: p, set: true}
}

// Phoneme returns the following phoneme and whether there is one.
func (c Context) Phoneme() (Phoneme, bool) {
	return c.next, c.set
}

func (c Context) IsIsolated() bool {
	return !c.set
}

func (c Context) String() string {
	if !c.set {
		return "(isolated)"
	}
	return string(c.next)
}

// vowels are the symbols a preceding consonant may be combined with.
var vowels = map[Phoneme]struct{}{
	"AA": {}, "AH": {}, "AE": {}, "AW": {}, "AY": {},
	"ER": {}, "IY": {}, "IH": {}, "UH": {}, "UW": {},
	"EH": {}, "EY": {}, "AO": {}, "OW": {}, "OY": {},
}

// IsVowel reports whether p belongs to the vowel set.
func IsVowel(p Phoneme) bool {
	_, ok := vowels[p]
	return ok
}

// Vowels returns the vowel set in canonical order.
func Vowels() []Phoneme {
	return []Phoneme{"AA", "AH", "AE", "AW", "AY", "ER", "IY", "IH", "UH", "UW", "EH", "EY", "AO", "OW", "OY"}
}

// Parse splits a whitespace separated string like "HH AH L OW" into phonemes.
func Parse(s string) []Phoneme {
	fields := strings.Fields(s)
	out := make([]Phoneme, len(fields))
	for i, f := range fields {
		out[i] = Phoneme(f)
	}
	return out
}

// Join is the inverse of Parse.
func Join(ps []Phoneme) string {
	ss := make([]string, len(ps))
	for i, p := range ps {
		ss[i] = string(p)
	}
	return strings.Join(ss, " ")
}
