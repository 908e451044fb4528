// Package cache provides the bounded, replaceable-policy caches that back a
// caching resolver. All four implementations satisfy the same generic Cache
// interface and can be swapped freely: only their eviction behaviour under
// pressure differs.
//
//   - LRU: textbook least-recently-used, one doubly-linked list plus a map.
//   - Sieve: single-bit "visited" marking and a sweeping hand, avoiding the
//     promote-on-every-hit cost of LRU.
//   - S3FIFO: three queues (small/main/ghost) approximating LFU behaviour
//     with FIFO-only data structures.
//   - Local: a per-goroutine sharding wrapper around any of the above, for
//     callers that would rather pay memory for zero lock contention.
//
// All four are grounded on the same cache protocol: Get reports a hit and
// marks recency per policy, Put inserts or replaces and may evict, nothing
// here ever refuses an insert or reports capacity errors back to the caller
// — a cache is for speed, never a gate. The one exception is
// ErrCapacityExceeded, which every Put checks for as a post-condition and
// panics on: it never reaches a caller as a returned error because it can
// only fire from a bug in the eviction bookkeeping itself, not from
// anything a caller did.
package cache
