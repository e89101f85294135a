// Package standards holds the read-only table of citation-standard profiles.
package standards

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Supported standard keys.
const (
	Harvard = "harvard"
	Oxford  = "oxford"
	MIT     = "mit"
)

// Profile describes how a report should be labelled for one standard.
// SectionOrder is informational; the renderer's section skeleton does not follow it.
type Profile struct {
	Key           string   `yaml:"-"`
	CitationStyle string   `yaml:"citation_style"`
	SectionOrder  []string `yaml:"section_order"`
	MinWordCount  int      `yaml:"min_word_count"`
	RigorLabel    string   `yaml:"rigor"`
}

// UnknownStandardError reports a key outside the supported set.
type UnknownStandardError struct {
	Key string
}

func (e *UnknownStandardError) Error() string {
	return fmt.Sprintf("unknown standard %q (use %s)", e.Key, strings.Join(Keys(), ", "))
}

//go:embed standards.yaml
var rawTable []byte

var table map[string]Profile

func init() {
	t, err := parse(rawTable)
	if err != nil {
		panic(fmt.Sprintf("standards: %v", err))
	}
	table = t
}

func parse(b []byte) (map[string]Profile, error) {
	var m map[string]Profile
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse table: %w", err)
	}
	for k, p := range m {
		if p.CitationStyle == "" || len(p.SectionOrder) == 0 {
			return nil, fmt.Errorf("incomplete profile %q", k)
		}
		p.Key = k
		m[k] = p
	}
	return m, nil
}

// Lookup returns the profile for key. Keys are matched case-insensitively.
func Lookup(key string) (Profile, error) {
	p, ok := table[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Profile{}, &UnknownStandardError{Key: key}
	}
	p.SectionOrder = append([]string(nil), p.SectionOrder...)
	return p, nil
}

// MustLookup is Lookup for keys the caller has already validated; it panics otherwise.
func MustLookup(key string) Profile {
	p, err := Lookup(key)
	if err != nil {
		panic(err)
	}
	return p
}

// Keys returns the supported keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// All returns every profile, ordered by key.
func All() []Profile {
	out := make([]Profile, 0, len(table))
	for _, k := range Keys() {
		out = append(out, MustLookup(k))
	}
	return out
}
