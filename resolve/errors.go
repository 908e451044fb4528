package resolve

// This package has no sentinel errors of its own: Basic and RegexSet never
// fail (a miss is just a nil facet, per core.PartialResult), and Caching's
// failure modes belong to whatever cache.Cache it wraps.
