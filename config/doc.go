// Package config loads the environment-driven settings that pick a
// resolver stack — cache policy, cache capacity, whether to use the
// literal-prefiltering regex set instead of the basic resolver — without the
// caller having to wire env parsing by hand.
//
// It is a trimmed adaptation of the toolkit's own pkg/config: the same
// github.com/caarlos0/env/v11 struct-tag parser and github.com/joho/godotenv
// fallback .env loading, narrowed to the one struct this module actually
// needs instead of a generic cached-by-type loader, since a parsing library
// has exactly one configuration shape to load, not an open set of them.
package config
