package parser

import "sync/atomic"

// Handle is an atomically swappable Parser cell. It starts inert — Load
// returns nil until some caller Stores a Parser into it — and is meant for
// callers that want exactly one hot-swappable parser (e.g. to replace the
// active ruleset after a config reload) without a package-level singleton
// that initializes itself on first use.
//
// A Handle's zero value is ready to use.
type Handle struct {
	p atomic.Pointer[Parser]
}

// Store atomically replaces the held Parser.
func (h *Handle) Store(p *Parser) {
	h.p.Store(p)
}

// Load returns the currently held Parser, or nil if none has been Stored
// yet.
func (h *Handle) Load() *Parser {
	return h.p.Load()
}
