package resolve

import (
	"log/slog"
	"sync/atomic"

	"github.com/uap-go/uaparser/cache"
	"github.com/uap-go/uaparser/core"
	"github.com/uap-go/uaparser/internal/logging"
)

// Stats is the hit/miss counter a Caching resolver updates when built with
// WithStats. It is the "hit counter in test double" spec.md's cache
// transparency property calls for — callers read it with Hits/Misses,
// never by reaching into Caching's internals.
type Stats struct {
	hits   atomic.Int64
	misses atomic.Int64
}

// Hits reports the number of Resolve calls fully served from the cache.
func (s *Stats) Hits() int64 { return s.hits.Load() }

// Misses reports the number of Resolve calls that needed at least one
// facet from the wrapped resolver.
func (s *Stats) Misses() int64 { return s.misses.Load() }

// CachingOption configures a Caching resolver at construction time.
type CachingOption func(*Caching)

// WithStats attaches a Stats counter to the Caching resolver, incrementing
// it on every Resolve call, and logs each cache event at Debug level
// through logger if logger is non-nil.
func WithStats(logger *slog.Logger) CachingOption {
	return func(c *Caching) {
		c.stats = &Stats{}
		c.logger = logger
	}
}

// Caching wraps a Resolver with a cache.Cache keyed by the raw user agent
// string. On each call it looks up what's cached, asks the wrapped
// Resolver for only the facets not already cached, merges the two partial
// results (cached facets always win, since a facet once resolved never
// changes for a given string), and writes the merged result back. The
// returned result is narrowed to the requested facets, even when the cache
// holds more.
//
// Caching never mutates a cached entry in place — results are immutable —
// it always re-sets the merged value under the same key.
type Caching struct {
	resolver core.Resolver
	cache    cache.Cache[string, core.PartialResult]
	stats    *Stats
	logger   *slog.Logger
}

// NewCaching wraps resolver with c, applying any CachingOption.
func NewCaching(resolver core.Resolver, c cache.Cache[string, core.PartialResult], opts ...CachingOption) *Caching {
	caching := &Caching{resolver: resolver, cache: c}
	for _, opt := range opts {
		opt(caching)
	}
	return caching
}

// Stats returns the attached Stats counter, or nil if the resolver was
// built without WithStats.
func (c *Caching) Stats() *Stats { return c.stats }

// Resolve implements core.Resolver.
func (c *Caching) Resolve(ua string, requested core.Domain) core.PartialResult {
	entry, hit := c.cache.Get(ua)
	if !hit {
		c.recordEvent(false)
		r := c.resolver.Resolve(ua, requested)
		c.cache.Put(ua, r)
		return r
	}

	if entry.Requested.Has(requested) {
		c.recordEvent(true)
	} else {
		c.recordEvent(false)
		missing := requested.Without(entry.Requested)
		fresh := c.resolver.Resolve(ua, missing)

		entry = core.PartialResult{
			Requested: entry.Requested.Union(fresh.Requested),
			String:    ua,
			UserAgent: firstNonNil(entry.UserAgent, fresh.UserAgent),
			OS:        firstNonNil(entry.OS, fresh.OS),
			Device:    firstNonNil(entry.Device, fresh.Device),
		}
		c.cache.Put(ua, entry)
	}

	// The cached entry may cover more facets than this call asked for;
	// narrow it to exactly the requested Domain.
	entry.Requested = requested
	if !requested.Has(core.DomainUserAgent) {
		entry.UserAgent = nil
	}
	if !requested.Has(core.DomainOS) {
		entry.OS = nil
	}
	if !requested.Has(core.DomainDevice) {
		entry.Device = nil
	}
	return entry
}

func (c *Caching) recordEvent(hit bool) {
	if c.stats == nil {
		return
	}
	if hit {
		c.stats.hits.Add(1)
	} else {
		c.stats.misses.Add(1)
	}
	if c.logger != nil {
		c.logger.Debug("cache lookup", logging.CacheEvent(hit), logging.Component("resolve.Caching"))
	}
}

func firstNonNil[T any](a, b *T) *T {
	if a != nil {
		return a
	}
	return b
}
