package parser

import "github.com/uap-go/uaparser/core"

// Parser is a thin convenience wrapper around a core.Resolver: it picks the
// right core.Domain bitset for each single-facet method so callers never
// have to spell DomainUserAgent/DomainOS/DomainDevice by hand.
type Parser struct {
	resolver core.Resolver
}

// New wraps resolver in a Parser.
func New(resolver core.Resolver) *Parser {
	return &Parser{resolver: resolver}
}

// Parse resolves every facet and returns the complete, defaulted result.
func (p *Parser) Parse(ua string) core.DefaultedResult {
	return p.resolver.Resolve(ua, core.DomainAll).WithDefaults()
}

// ParseUserAgent resolves only the UserAgent facet, returning nil if no
// rule matched.
func (p *Parser) ParseUserAgent(ua string) *core.UserAgent {
	return p.resolver.Resolve(ua, core.DomainUserAgent).UserAgent
}

// ParseOS resolves only the OS facet, returning nil if no rule matched.
func (p *Parser) ParseOS(ua string) *core.OS {
	return p.resolver.Resolve(ua, core.DomainOS).OS
}

// ParseDevice resolves only the Device facet, returning nil if no rule
// matched.
func (p *Parser) ParseDevice(ua string) *core.Device {
	return p.resolver.Resolve(ua, core.DomainDevice).Device
}
