package phoneme

import "strings"

// Step is a single table lookup made while converting a sequence.
type Step struct {
	Current Phoneme
	Next    Context
	Kana    string
}

// Lookups returns the (current, next) pairs the transducer resolves for
// ps, in order, without consulting any table.
//
// A phoneme followed by a vowel is held back and resolved together with
// that vowel; everything else is resolved in isolation. This applies to
// vowels too, so a vowel followed by another vowel is looked up as a
// vowel-vowel pair and the second vowel is not emitted separately.
func Lookups(ps []Phoneme) []Step {
	steps := make([]Step, 0, len(ps))
	var (
		pending    Phoneme
		hasPending bool
	)
	for i, p := range ps {
		if !hasPending && i+1 < len(ps) && IsVowel(ps[i+1]) {
			pending, hasPending = p, true
			continue
		}

		if hasPending {
			steps = append(steps, Step{Current: pending, Next: Before(p)})
			hasPending = false
		} else {
			steps = append(steps, Step{Current: p, Next: Isolated})
		}
	}
	return steps
}

// Steps resolves every lookup for ps against t. It stops at the first pair
// t cannot cover.
func (t *Table) Steps(ps []Phoneme) ([]Step, error) {
	steps := Lookups(ps)
	for i := range steps {
		kana, err := t.Lookup(steps[i].Current, steps[i].Next)
		if err != nil {
			return nil, err
		}
		steps[i].Kana = kana
	}
	return steps, nil
}

// Convert returns the katakana for ps. An empty sequence yields "".
func (t *Table) Convert(ps []Phoneme) (string, error) {
	steps, err := t.Steps(ps)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, s := range steps {
		b.WriteString(s.Kana)
	}
	return b.String(), nil
}

// Convert converts ps with the default table.
func Convert(ps []Phoneme) (string, error) {
	return Default().Convert(ps)
}
