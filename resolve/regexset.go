package resolve

import (
	"github.com/uap-go/uaparser/core"
	"github.com/uap-go/uaparser/match"
)

// RegexSet is a resolver that narrows each facet's candidate matchers with
// a literal prefilter (see patternIndex) before trying any of them, then
// falls back to trying every candidate's real regex in ascending rule
// order — exactly the same "lowest index wins" priority as Basic, just
// over a shorter list. A prefilter disagreement (the automaton reports a
// candidate whose regex then fails to match) costs nothing but a wasted
// regexp call; it can never cause RegexSet to return something Basic
// wouldn't.
type RegexSet struct {
	rules *match.RuleSet

	userAgent *patternIndex
	os        *patternIndex
	device    *patternIndex
}

// NewRegexSet builds a RegexSet resolver over rules, extracting a literal
// prefilter for each facet. rules must not be mutated afterwards.
func NewRegexSet(rules *match.RuleSet) *RegexSet {
	uaLiterals := make([]ruleLiteral, len(rules.UserAgent))
	for i, m := range rules.UserAgent {
		lit, ok := extractLiteral(m.Pattern())
		uaLiterals[i] = ruleLiteral{rule: i, literal: lit, hasLiteral: ok}
	}

	osLiterals := make([]ruleLiteral, len(rules.OS))
	for i, m := range rules.OS {
		lit, ok := extractLiteral(m.Pattern())
		osLiterals[i] = ruleLiteral{rule: i, literal: lit, hasLiteral: ok}
	}

	deviceLiterals := make([]ruleLiteral, len(rules.Device))
	for i, m := range rules.Device {
		lit, ok := extractLiteral(m.Pattern())
		deviceLiterals[i] = ruleLiteral{rule: i, literal: lit, hasLiteral: ok, insensitive: m.CaseInsensitive()}
	}

	return &RegexSet{
		rules:     rules,
		userAgent: newPatternIndex(uaLiterals),
		os:        newPatternIndex(osLiterals),
		device:    newPatternIndex(deviceLiterals),
	}
}

// Resolve implements core.Resolver.
func (r *RegexSet) Resolve(ua string, requested core.Domain) core.PartialResult {
	result := core.PartialResult{Requested: requested, String: ua}

	if requested.Has(core.DomainUserAgent) {
		for _, i := range r.userAgent.Candidates(ua) {
			if v, ok := r.rules.UserAgent[i].Match(ua); ok {
				result.UserAgent = &v
				break
			}
		}
	}
	if requested.Has(core.DomainOS) {
		for _, i := range r.os.Candidates(ua) {
			if v, ok := r.rules.OS[i].Match(ua); ok {
				result.OS = &v
				break
			}
		}
	}
	if requested.Has(core.DomainDevice) {
		for _, i := range r.device.Candidates(ua) {
			if v, ok := r.rules.Device[i].Match(ua); ok {
				result.Device = &v
				break
			}
		}
	}
	return result
}
