package pronunciation

import (
	"cmp"
	"slices"

	"github.com/jusunglee/kanafy/internal/lexicon"
	"github.com/jusunglee/kanafy/internal/phoneme"
	"github.com/samber/lo"
)

// Gap is a (current, next) pair the table cannot resolve, with the
// dictionary words whose conversion needs it.
type Gap struct {
	Current phoneme.Phoneme `json:"current"`
	Next    string          `json:"next"`
	Words   []string        `json:"words"`

	context phoneme.Context
}

// Context returns the follower of the gap as a phoneme.Context.
func (g Gap) Context() phoneme.Context { return g.context }

type Report struct {
	Entries   int   `json:"entries"`
	Covered   int   `json:"covered"`
	Uncovered int   `json:"uncovered"`
	Gaps      []Gap `json:"gaps"`
}

func (r Report) Complete() bool { return len(r.Gaps) == 0 }

type gapKey struct {
	current phoneme.Phoneme
	next    phoneme.Context
}

// Coverage checks every dictionary entry against table and reports all the
// pairs that are missing, not just the first per word. Gaps are ordered by
// how many words need them, then by pair.
func Coverage(dict *lexicon.Dictionary, table *phoneme.Table) Report {
	report := Report{Entries: dict.Len()}
	words := make(map[gapKey][]string)

	for _, e := range dict.Entries() {
		missing := lo.Filter(phoneme.Lookups(e.Phonemes), func(s phoneme.Step, _ int) bool {
			_, err := table.Lookup(s.Current, s.Next)
			return err != nil
		})
		if len(missing) == 0 {
			report.Covered++
			continue
		}
		report.Uncovered++
		for _, s := range lo.UniqBy(missing, func(s phoneme.Step) gapKey { return gapKey{s.Current, s.Next} }) {
			k := gapKey{s.Current, s.Next}
			words[k] = append(words[k], e.Word)
		}
	}

	report.Gaps = lo.MapToSlice(words, func(k gapKey, ws []string) Gap {
		next := ""
		if p, ok := k.next.Phoneme(); ok {
			next = string(p)
		}
		return Gap{Current: k.current, Next: next, Words: ws, context: k.next}
	})
	slices.SortFunc(report.Gaps, func(a, b Gap) int {
		return cmp.Or(
			cmp.Compare(len(b.Words), len(a.Words)),
			cmp.Compare(a.Current, b.Current),
			cmp.Compare(a.Next, b.Next),
		)
	})
	return report
}
