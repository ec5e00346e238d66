package phoneme

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
)

// isolatedKey names the isolated form in rule files. Phonemes are upper
// case, so it cannot collide with a follower.
const isolatedKey = "isolated"

// LoadOverlay reads extra rules from YAML of the form
//
//	K:
//	  isolated: ク
//	  AE: カ
//
// The result is meant to be passed to Table.With.
func LoadOverlay(r io.Reader) (map[Phoneme]Rule, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading rules: %w", err)
	}

	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing rules: %w", err)
	}

	rules := make(map[Phoneme]Rule, len(raw))
	for lead, inner := range raw {
		if lead == "" {
			return nil, fmt.Errorf("parsing rules: empty phoneme key")
		}
		r := Rule{Next: make(map[Phoneme]string, len(inner))}
		for k, kana := range inner {
			if kana == "" {
				return nil, fmt.Errorf("parsing rules: %s before %s: empty fragment", lead, k)
			}
			if k == isolatedKey {
				r.Alone = kana
				continue
			}
			r.Next[Phoneme(k)] = kana
		}
		rules[Phoneme(lead)] = r
	}
	return rules, nil
}

// LoadTableFile returns the default table with the rules in path applied
// on top. An empty path returns Default().
func LoadTableFile(path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rules: %w", err)
	}
	defer f.Close()

	overlay, err := LoadOverlay(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t, err := Default().With(overlay)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// WriteRules writes t in the format LoadOverlay reads.
func WriteRules(w io.Writer, t *Table) error {
	out := make(map[string]map[string]string, t.Len())
	for _, p := range t.Phonemes() {
		r, _ := t.Rule(p)
		inner := make(map[string]string, len(r.Next)+1)
		inner[isolatedKey] = r.Alone
		for next, kana := range r.Next {
			inner[string(next)] = kana
		}
		out[string(p)] = inner
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	_, err = w.Write(data)
	return err
}
