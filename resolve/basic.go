package resolve

import (
	"github.com/uap-go/uaparser/core"
	"github.com/uap-go/uaparser/match"
)

// Basic is a resolver that tries each facet's matchers in order and returns
// the first match, exactly mirroring the uap-core reference semantics: rule
// order is match priority.
type Basic struct {
	rules *match.RuleSet
}

// NewBasic builds a Basic resolver over rules. rules must not be mutated
// afterwards; Basic never copies it.
func NewBasic(rules *match.RuleSet) *Basic {
	return &Basic{rules: rules}
}

// Resolve implements core.Resolver.
func (b *Basic) Resolve(ua string, requested core.Domain) core.PartialResult {
	result := core.PartialResult{Requested: requested, String: ua}

	if requested.Has(core.DomainUserAgent) {
		for _, m := range b.rules.UserAgent {
			if v, ok := m.Match(ua); ok {
				result.UserAgent = &v
				break
			}
		}
	}
	if requested.Has(core.DomainOS) {
		for _, m := range b.rules.OS {
			if v, ok := m.Match(ua); ok {
				result.OS = &v
				break
			}
		}
	}
	if requested.Has(core.DomainDevice) {
		for _, m := range b.rules.Device {
			if v, ok := m.Match(ua); ok {
				result.Device = &v
				break
			}
		}
	}
	return result
}
