// Package lexicon provides the predefined pattern table checked before
// semantic search. Rules are ordered; the first pattern that matches the
// entire input wins.
package lexicon

import (
	"fmt"
	"regexp"
)

// Rule pairs a regular expression with a canned response. Patterns are
// authored in English and matched against lowercased, trimmed,
// post-translation text.
type Rule struct {
	Pattern  *regexp.Regexp
	Response string
}

// Table is an ordered sequence of rules.
type Table struct {
	rules []Rule
}

// New compiles the given pattern/response pairs into a table. Each pattern
// must match the whole input, so patterns are anchored at compile time.
func New(pairs [][2]string) (*Table, error) {
	rules := make([]Rule, 0, len(pairs))
	for _, p := range pairs {
		re, err := regexp.Compile(`^(?:` + p[0] + `)$`)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern %q: %w", p[0], err)
		}
		rules = append(rules, Rule{Pattern: re, Response: p[1]})
	}
	return &Table{rules: rules}, nil
}

// MustDefault returns the built-in table; the built-in patterns are static
// and known to compile.
func MustDefault() *Table {
	t, err := New(defaultRules)
	if err != nil {
		panic(err)
	}
	return t
}

// Match returns the response of the first rule whose pattern fully matches
// text, and whether any rule applied. Text is expected to be lowercased and
// trimmed by the caller.
func (t *Table) Match(text string) (string, bool) {
	for _, r := range t.rules {
		if r.Pattern.MatchString(text) {
			return r.Response, true
		}
	}
	return "", false
}

// Len returns the number of rules in the table.
func (t *Table) Len() int {
	return len(t.rules)
}
