package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uap-go/uaparser/cache"
	"github.com/uap-go/uaparser/core"
	"github.com/uap-go/uaparser/resolve"
)

type countingResolver struct {
	calls []core.Domain
	r     core.Resolver
}

func (c *countingResolver) Resolve(ua string, requested core.Domain) core.PartialResult {
	c.calls = append(c.calls, requested)
	return c.r.Resolve(ua, requested)
}

func TestCaching_MissThenHit(t *testing.T) {
	inner := &countingResolver{r: resolve.NewBasic(buildTestRuleSet(t))}
	c := resolve.NewCaching(inner, cache.NewLRU[string, core.PartialResult](16))

	ua := "Mozilla/5.0 Firefox/89.0"
	first := c.Resolve(ua, core.DomainAll)
	second := c.Resolve(ua, core.DomainAll)

	assert.Equal(t, first, second)
	require.Len(t, inner.calls, 1, "second call must be served entirely from cache")
}

func TestCaching_FetchesOnlyMissingFacets(t *testing.T) {
	inner := &countingResolver{r: resolve.NewBasic(buildTestRuleSet(t))}
	c := resolve.NewCaching(inner, cache.NewLRU[string, core.PartialResult](16))

	ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Firefox/89.0"
	c.Resolve(ua, core.DomainUserAgent)
	c.Resolve(ua, core.DomainOS)

	require.Len(t, inner.calls, 2)
	assert.Equal(t, core.DomainUserAgent, inner.calls[0])
	assert.Equal(t, core.DomainOS, inner.calls[1], "the second call must only request the facet not already cached")

	final := c.Resolve(ua, core.DomainAll)
	require.Len(t, inner.calls, 3)
	assert.Equal(t, core.DomainDevice, inner.calls[2], "only the still-missing Device facet should be fetched")
	require.NotNil(t, final.UserAgent)
	require.NotNil(t, final.OS)
	assert.Equal(t, core.DomainAll, final.Requested)
}

func TestCaching_CachedFacetNeverOverwrittenByFresh(t *testing.T) {
	inner := &countingResolver{r: resolve.NewBasic(buildTestRuleSet(t))}
	c := resolve.NewCaching(inner, cache.NewLRU[string, core.PartialResult](16))

	ua := "Mozilla/5.0 Firefox/89.0"
	first := c.Resolve(ua, core.DomainUserAgent)
	require.NotNil(t, first.UserAgent)

	again := c.Resolve(ua, core.DomainAll)
	assert.Equal(t, first.UserAgent, again.UserAgent, "a facet already cached must be reused verbatim, not re-derived")
}

// cachePolicies lists every cache.Cache constructor Caching must remain
// transparent against, per the same capacity so the comparison is fair.
func cachePolicies(capacity int) map[string]cache.Cache[string, core.PartialResult] {
	return map[string]cache.Cache[string, core.PartialResult]{
		"LRU":    cache.NewLRU[string, core.PartialResult](capacity),
		"Sieve":  cache.NewSieve[string, core.PartialResult](capacity),
		"S3FIFO": cache.NewS3FIFO[string, core.PartialResult](capacity),
	}
}

// TestCaching_TransparentAcrossAllPolicies asserts that wrapping a resolver
// in Caching never changes what it returns, regardless of which cache.Cache
// implementation backs it -- a cache is an optimization, never a source of
// truth, so the policy choice must be invisible to the caller.
func TestCaching_TransparentAcrossAllPolicies(t *testing.T) {
	uas := []string{
		"Mozilla/5.0 Firefox/89.0",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Firefox/89.0",
		"",
		"SM-G960U",
	}

	for name, backing := range cachePolicies(16) {
		t.Run(name, func(t *testing.T) {
			rules := buildTestRuleSet(t)
			uncached := resolve.NewBasic(rules)
			cached := resolve.NewCaching(resolve.NewBasic(rules), backing)

			for _, ua := range uas {
				want := uncached.Resolve(ua, core.DomainAll)
				got := cached.Resolve(ua, core.DomainAll)
				assert.Equal(t, want, got, "first resolve for %q must match the uncached resolver", ua)

				// Second call should come back out of the cache and still agree.
				got = cached.Resolve(ua, core.DomainAll)
				assert.Equal(t, want, got, "cached resolve for %q must still match the uncached resolver", ua)
			}
		})
	}
}

// TestCaching_FetchesOnlyMissingFacetsAcrossAllPolicies re-runs the partial-
// hit behaviour from TestCaching_FetchesOnlyMissingFacets against every
// cache.Cache implementation, since the merge logic lives in Caching but
// its correctness depends on every backing cache returning exactly what it
// was given back on a hit.
func TestCaching_FetchesOnlyMissingFacetsAcrossAllPolicies(t *testing.T) {
	for name, backing := range cachePolicies(16) {
		t.Run(name, func(t *testing.T) {
			inner := &countingResolver{r: resolve.NewBasic(buildTestRuleSet(t))}
			c := resolve.NewCaching(inner, backing)

			ua := "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) Firefox/89.0"
			c.Resolve(ua, core.DomainUserAgent)
			c.Resolve(ua, core.DomainOS)

			require.Len(t, inner.calls, 2)
			assert.Equal(t, core.DomainUserAgent, inner.calls[0])
			assert.Equal(t, core.DomainOS, inner.calls[1], "the second call must only request the facet not already cached")

			final := c.Resolve(ua, core.DomainAll)
			require.Len(t, inner.calls, 3)
			assert.Equal(t, core.DomainDevice, inner.calls[2], "only the still-missing Device facet should be fetched")
			require.NotNil(t, final.UserAgent)
			require.NotNil(t, final.OS)
			assert.Equal(t, core.DomainAll, final.Requested)
		})
	}
}

func TestCaching_WithoutStatsOptionStatsIsNil(t *testing.T) {
	c := resolve.NewCaching(resolve.NewBasic(buildTestRuleSet(t)), cache.NewLRU[string, core.PartialResult](16))
	assert.Nil(t, c.Stats())
}

func TestCaching_WithStatsCountsHitsAndMisses(t *testing.T) {
	c := resolve.NewCaching(
		resolve.NewBasic(buildTestRuleSet(t)),
		cache.NewLRU[string, core.PartialResult](16),
		resolve.WithStats(nil),
	)
	require.NotNil(t, c.Stats())

	ua := "Mozilla/5.0 Firefox/89.0"
	c.Resolve(ua, core.DomainAll) // miss
	c.Resolve(ua, core.DomainAll) // hit
	c.Resolve(ua, core.DomainAll) // hit

	assert.Equal(t, int64(1), c.Stats().Misses())
	assert.Equal(t, int64(2), c.Stats().Hits())
}
