package core

// Domain is a set of requestable facets. It is a bitset so callers can union
// facets with |, test membership with Has, and a caller requesting nothing
// (Domain(0)) is a legal, if useless, request.
type Domain uint8

const (
	// DomainUserAgent selects the originating client (browser) facet.
	DomainUserAgent Domain = 1 << iota
	// DomainOS selects the operating system facet.
	DomainOS
	// DomainDevice selects the device facet.
	DomainDevice

	// DomainAll selects every facet.
	DomainAll = DomainUserAgent | DomainOS | DomainDevice
)

// domainOrder fixes the UserAgent, OS, Device iteration order used
// throughout the pipeline (matching spec order: user agent, os, device).
var domainOrder = [...]Domain{DomainUserAgent, DomainOS, DomainDevice}

// Union returns the set containing every facet in d or other.
func (d Domain) Union(other Domain) Domain {
	return d | other
}

// Has reports whether every facet in other is also in d.
func (d Domain) Has(other Domain) bool {
	return d&other == other
}

// Intersect returns the facets present in both d and other.
func (d Domain) Intersect(other Domain) Domain {
	return d & other
}

// Without returns d with every facet in other removed.
func (d Domain) Without(other Domain) Domain {
	return d &^ other
}

// Empty reports whether the set requests no facet at all.
func (d Domain) Empty() bool {
	return d == 0
}

// Iterate calls fn for each individual facet set in d, in UserAgent, OS,
// Device order.
func (d Domain) Iterate(fn func(Domain)) {
	for _, f := range domainOrder {
		if d.Has(f) {
			fn(f)
		}
	}
}

// String renders the set as a short, stable, comma-joined label list, e.g.
// "user_agent,device". An empty set renders as "none".
func (d Domain) String() string {
	if d.Empty() {
		return "none"
	}
	var out []byte
	d.Iterate(func(f Domain) {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, domainLabel(f)...)
	})
	return string(out)
}

func domainLabel(f Domain) string {
	switch f {
	case DomainUserAgent:
		return "user_agent"
	case DomainOS:
		return "os"
	case DomainDevice:
		return "device"
	default:
		return "unknown"
	}
}
