// Package logging is this module's structured-logging factory: a thin
// functional-options wrapper around log/slog, trimmed from the toolkit's
// pkg/logger down to what a parsing library actually needs — format and
// level selection plus a handful of named attribute constructors — since
// this module has no per-request context to thread request IDs through
// the way a service does.
//
// Internal because callers outside this module configure their own
// logging; this package only serves the non-fatal warnings loader can
// emit and the hit/miss instrumentation resolve.WithStats attaches to a
// resolve.Caching.
package logging
