package phoneme

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Rule holds the katakana for one leading phoneme: its isolated form and
// the forms it takes in front of specific followers.
type Rule struct {
	Alone string
	Next  map[Phoneme]string
}

// Table maps (phoneme, context) pairs to katakana fragments. A Table is
// never modified after construction and is safe for concurrent use.
type Table struct {
	rules map[Phoneme]map[Context]string
}

// NewTable builds a table from rules and validates it.
func NewTable(rules map[Phoneme]Rule) (*Table, error) {
	t := &Table{rules: make(map[Phoneme]map[Context]string, len(rules))}
	for p, r := range rules {
		t.put(p, r)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) put(p Phoneme, r Rule) {
	inner, ok := t.rules[p]
	if !ok {
		inner = make(map[Context]string, len(r.Next)+1)
		t.rules[p] = inner
	}
	if r.Alone != "" {
		inner[Isolated] = r.Alone
	}
	for next, kana := range r.Next {
		inner[Before(next)] = kana
	}
}

var defaultTable = sync.OnceValue(func() *Table {
	t, err := NewTable(defaultRules)
	if err != nil {
		panic(fmt.Sprintf("phoneme: default table is invalid: %v", err))
	}
	return t
})

// Default returns the built-in table.
func Default() *Table {
	return defaultTable()
}

// Lookup returns the fragment for current when followed by next.
func (t *Table) Lookup(current Phoneme, next Context) (string, error) {
	if kana, ok := t.rules[current][next]; ok {
		return kana, nil
	}
	return "", &UncoverablePairError{Current: current, Next: next}
}

// Has reports whether current has any rule at all.
func (t *Table) Has(current Phoneme) bool {
	_, ok := t.rules[current]
	return ok
}

// Len returns the number of leading phonemes.
func (t *Table) Len() int {
	return len(t.rules)
}

// Phonemes returns the leading phonemes, sorted.
func (t *Table) Phonemes() []Phoneme {
	return slices.Sorted(maps.Keys(t.rules))
}

// Rule returns a copy of the rule for p.
func (t *Table) Rule(p Phoneme) (Rule, bool) {
	inner, ok := t.rules[p]
	if !ok {
		return Rule{}, false
	}
	r := Rule{Next: make(map[Phoneme]string, len(inner))}
	for ctx, kana := range inner {
		if next, ok := ctx.Phoneme(); ok {
			r.Next[next] = kana
		} else {
			r.Alone = kana
		}
	}
	return r, true
}

// With returns a new table with overlay merged on top of t. Isolated forms
// in the overlay replace existing ones; follower entries are added or
// replaced one by one. t itself is left untouched.
func (t *Table) With(overlay map[Phoneme]Rule) (*Table, error) {
	out := &Table{rules: make(map[Phoneme]map[Context]string, len(t.rules)+len(overlay))}
	for p, inner := range t.rules {
		out.rules[p] = maps.Clone(inner)
	}
	for p, r := range overlay {
		out.put(p, r)
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// Validate checks that every leading phoneme has an isolated form and that
// no fragment is empty.
func (t *Table) Validate() error {
	var errs []error
	for _, p := range t.Phonemes() {
		inner := t.rules[p]
		if _, ok := inner[Isolated]; !ok {
			errs = append(errs, fmt.Errorf("phoneme %s: no isolated form", p))
		}
		for ctx, kana := range inner {
			if kana == "" {
				errs = append(errs, fmt.Errorf("phoneme %s before %s: empty fragment", p, ctx))
			}
		}
	}
	return errors.Join(errs...)
}
