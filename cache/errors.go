package cache

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is the panic value mustNotExceedCapacity raises when
// an implementation's bookkeeping leaves more live entries resident than
// its configured capacity allows. It never surfaces through the Cache
// interface — Get and Put never return it — because by the time it fires
// the invariant is already broken: it signals a bug in the eviction
// algorithm itself, not something a caller could have avoided or can
// recover from.
var ErrCapacityExceeded = errors.New("cache: entry count exceeds capacity")

// mustNotExceedCapacity panics with ErrCapacityExceeded if n exceeds
// capacity. Each implementation calls this once, as a post-condition check
// at the end of Put after eviction should have restored the invariant.
func mustNotExceedCapacity(n, capacity int) {
	if n > capacity {
		panic(fmt.Errorf("%w: %d entries, capacity %d", ErrCapacityExceeded, n, capacity))
	}
}
