package config

import (
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/uap-go/uaparser/cache"
	"github.com/uap-go/uaparser/core"
	"github.com/uap-go/uaparser/match"
	"github.com/uap-go/uaparser/resolve"
)

// CachePolicy selects which cache.Cache implementation backs a
// resolve.Caching stack.
type CachePolicy string

const (
	PolicyLRU    CachePolicy = "lru"
	PolicySieve  CachePolicy = "sieve"
	PolicyS3FIFO CachePolicy = "s3fifo"
	PolicyNone   CachePolicy = "none"
)

// Config is the environment-driven shape of a resolver stack: which base
// resolver to use, whether to cache it, and with which policy and capacity.
type Config struct {
	// UseRegexSet selects resolve.RegexSet (literal-prefiltered) over
	// resolve.Basic (linear scan) as the uncached base resolver.
	UseRegexSet bool `env:"UAPARSER_USE_REGEX_SET" envDefault:"true"`

	// CachePolicy selects the cache.Cache implementation wrapping the base
	// resolver. PolicyNone disables caching entirely.
	CachePolicy CachePolicy `env:"UAPARSER_CACHE_POLICY" envDefault:"lru"`

	// CacheCapacity is the maximum live entry count for the chosen cache
	// policy. Ignored when CachePolicy is PolicyNone.
	CacheCapacity int `env:"UAPARSER_CACHE_CAPACITY" envDefault:"4096"`

	// CacheLocal wraps the chosen cache in cache.Local, giving each calling
	// goroutine its own shard instead of sharing one behind a mutex.
	CacheLocal bool `env:"UAPARSER_CACHE_LOCAL" envDefault:"false"`
}

var defaultEnvLoaded sync.Once

// Load parses a Config from the process environment, falling back to the
// default .env file in the current working directory if present. A missing
// .env file is not an error; an env value that fails to parse into its
// field's type is.
func Load() (*Config, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("config: parsing environment: %w", err)
	}
	return &cfg, nil
}

// NewResolverStack builds the core.Resolver described by cfg on top of
// rules: resolve.Basic or resolve.RegexSet as the base, optionally wrapped
// in resolve.Caching backed by the configured cache policy and capacity.
func (cfg *Config) NewResolverStack(rules *match.RuleSet) (core.Resolver, error) {
	var base core.Resolver
	if cfg.UseRegexSet {
		base = resolve.NewRegexSet(rules)
	} else {
		base = resolve.NewBasic(rules)
	}

	c, err := cfg.newCache()
	if err != nil {
		return nil, err
	}
	if c == nil {
		return base, nil
	}
	return resolve.NewCaching(base, c), nil
}

func (cfg *Config) newCache() (cache.Cache[string, core.PartialResult], error) {
	if cfg.CachePolicy == PolicyNone {
		return nil, nil
	}

	factory, err := cfg.cacheFactory()
	if err != nil {
		return nil, err
	}
	if cfg.CacheLocal {
		return cache.NewLocal(factory), nil
	}
	return factory(), nil
}

func (cfg *Config) cacheFactory() (func() cache.Cache[string, core.PartialResult], error) {
	switch cfg.CachePolicy {
	case PolicyLRU:
		return func() cache.Cache[string, core.PartialResult] {
			return cache.NewLRU[string, core.PartialResult](cfg.CacheCapacity)
		}, nil
	case PolicySieve:
		return func() cache.Cache[string, core.PartialResult] {
			return cache.NewSieve[string, core.PartialResult](cfg.CacheCapacity)
		}, nil
	case PolicyS3FIFO:
		return func() cache.Cache[string, core.PartialResult] {
			return cache.NewS3FIFO[string, core.PartialResult](cfg.CacheCapacity)
		}, nil
	default:
		return nil, fmt.Errorf("config: unknown cache policy %q", cfg.CachePolicy)
	}
}
