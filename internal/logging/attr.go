package logging

import "log/slog"

// Error records err under the key "error". Returns an empty Attr if err is
// nil so callers can pass it unconditionally.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records a subsystem name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// CacheEvent records a cache hit or miss under the key "cache_event".
func CacheEvent(hit bool) slog.Attr {
	if hit {
		return slog.String("cache_event", "hit")
	}
	return slog.String("cache_event", "miss")
}

// RuleIndex records a rule's position in its facet's matcher list under the
// key "rule_index".
func RuleIndex(i int) slog.Attr {
	return slog.Int("rule_index", i)
}
