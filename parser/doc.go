// Package parser provides the top-level convenience facade over a
// core.Resolver: Parser exposes whole-result and single-facet methods so
// callers don't need to juggle core.Domain bitsets for the common case, and
// Handle offers an atomically swappable Parser cell for callers who want a
// single hot-swappable instance without committing to a process-wide
// singleton with implicit lazy initialization.
package parser
