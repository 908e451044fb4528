// Package resolve provides core.Resolver implementations: Basic, a
// straightforward linear scan of each facet's matcher list; RegexSet, which
// narrows that scan with a literal prefilter before trying any regex; and
// Caching, a resolver decorator that wraps any Resolver with a cache.Cache
// and merges cached and freshly-resolved facets.
//
// All three are pure read-side: none of them owns or mutates a match.RuleSet,
// they only walk the slices it exposes.
package resolve
