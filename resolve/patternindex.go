package resolve

import (
	"sort"
	"strings"

	"github.com/coregx/ahocorasick"
)

// ruleLiteral pairs a rule index with the literal extractLiteral found in
// its pattern, if any, and whether that literal must be matched without
// regard to case.
type ruleLiteral struct {
	rule        int
	literal     string
	insensitive bool
	hasLiteral  bool
}

// patternIndex is a literal prefilter over one facet's rule set. It never
// produces false negatives: a rule whose literal could not be determined
// is always a candidate, and Candidates always includes it regardless of
// what the automata report. It narrows, it never excludes incorrectly.
type patternIndex struct {
	sensitive        *ahocorasick.Automaton
	sensitiveRules   map[string][]int
	insensitive      *ahocorasick.Automaton
	insensitiveRules map[string][]int
	always           []int
}

// newPatternIndex builds a patternIndex from one literal entry per rule, in
// rule-index order.
func newPatternIndex(literals []ruleLiteral) *patternIndex {
	idx := &patternIndex{
		sensitiveRules:   make(map[string][]int),
		insensitiveRules: make(map[string][]int),
	}

	sb := ahocorasick.NewBuilder()
	var haveSensitive bool
	ib := ahocorasick.NewBuilder()
	var haveInsensitive bool

	for _, lit := range literals {
		switch {
		case !lit.hasLiteral:
			idx.always = append(idx.always, lit.rule)
		case lit.insensitive:
			key := strings.ToLower(lit.literal)
			if len(idx.insensitiveRules[key]) == 0 {
				ib.AddPattern([]byte(key))
			}
			idx.insensitiveRules[key] = append(idx.insensitiveRules[key], lit.rule)
			haveInsensitive = true
		default:
			if len(idx.sensitiveRules[lit.literal]) == 0 {
				sb.AddPattern([]byte(lit.literal))
			}
			idx.sensitiveRules[lit.literal] = append(idx.sensitiveRules[lit.literal], lit.rule)
			haveSensitive = true
		}
	}

	if haveSensitive {
		if a, err := sb.Build(); err == nil {
			idx.sensitive = a
		} else {
			idx.degradeToAlways(idx.sensitiveRules)
			idx.sensitiveRules = nil
		}
	}
	if haveInsensitive {
		if a, err := ib.Build(); err == nil {
			idx.insensitive = a
		} else {
			idx.degradeToAlways(idx.insensitiveRules)
			idx.insensitiveRules = nil
		}
	}

	return idx
}

// degradeToAlways is the fail-open path for an automaton that failed to
// build: every rule it would have indexed becomes an unconditional
// candidate instead of being silently dropped.
func (idx *patternIndex) degradeToAlways(rules map[string][]int) {
	for _, rs := range rules {
		idx.always = append(idx.always, rs...)
	}
}

// Candidates returns the ascending, deduplicated set of rule indices worth
// trying against ua.
func (idx *patternIndex) Candidates(ua string) []int {
	seen := make(map[int]struct{})
	var out []int
	add := func(rules []int) {
		for _, r := range rules {
			if _, ok := seen[r]; !ok {
				seen[r] = struct{}{}
				out = append(out, r)
			}
		}
	}

	add(idx.always)

	if idx.sensitive != nil {
		scanLiterals(idx.sensitive, []byte(ua), func(lit string) {
			add(idx.sensitiveRules[lit])
		})
	}
	if idx.insensitive != nil {
		scanLiterals(idx.insensitive, []byte(strings.ToLower(ua)), func(lit string) {
			add(idx.insensitiveRules[lit])
		})
	}

	sort.Ints(out)
	return out
}

// scanLiterals walks every non-overlapping match the automaton reports in
// haystack, invoking fn with the matched literal text.
func scanLiterals(a *ahocorasick.Automaton, haystack []byte, fn func(string)) {
	pos := 0
	for pos <= len(haystack) {
		m := a.Find(haystack, pos)
		if m == nil {
			return
		}
		fn(string(haystack[m.Start:m.End]))
		if m.End <= pos {
			pos++
		} else {
			pos = m.End
		}
	}
}
