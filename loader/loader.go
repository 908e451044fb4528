package loader

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/uap-go/uaparser/internal/logging"
	"github.com/uap-go/uaparser/match"
)

// LoadOption configures a Load or LoadFile call.
type LoadOption func(*loadConfig)

type loadConfig struct {
	logger *slog.Logger
}

// WithLogger attaches a logger that Load uses to report each rejected
// record at Warn level, keyed by its facet and index, as it validates the
// document. This is in addition to, not instead of, the aggregate error
// Load returns — it lets a caller watching logs see which specific rules
// in a large corpus are failing without having to parse the joined error.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) { c.logger = logger }
}

// Load decodes a uap-core-shaped YAML rule document from r, validates and
// compiles every record, and returns the resulting RuleSet.
//
// Decoding failure (malformed YAML) is returned immediately. Once decoded,
// every record in every one of the three facets is attempted regardless of
// earlier failures, and all validation errors are joined into a single
// returned error via errors.Join — the ruleset either compiles completely
// or is refused completely, but the caller sees every bad record in one
// pass rather than fixing one YAML line at a time.
func Load(r io.Reader, opts ...LoadOption) (*match.RuleSet, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var doc document
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("loader: decoding yaml: %w", err)
	}

	var errs []error

	uas := make([]*match.UserAgentMatcher, 0, len(doc.UserAgentParsers))
	for i, rule := range doc.UserAgentParsers {
		m, err := match.NewUserAgentMatcher(match.UserAgentRecord{
			Regex:         rule.Regex,
			FamilyReplace: rule.FamilyReplacement,
			MajorReplace:  rule.V1Replacement,
			MinorReplace:  rule.V2Replacement,
			PatchReplace:  rule.V3Replacement,
		})
		if err != nil {
			cfg.reject("user_agent_parsers", i, err)
			errs = append(errs, fmt.Errorf("user_agent_parsers[%d]: %w", i, err))
			continue
		}
		uas = append(uas, m)
	}

	oses := make([]*match.OSMatcher, 0, len(doc.OSParsers))
	for i, rule := range doc.OSParsers {
		m, err := match.NewOSMatcher(match.OSRecord{
			Regex:             rule.Regex,
			FamilyReplace:     rule.OSReplacement,
			MajorReplace:      rule.OSV1Replacement,
			MinorReplace:      rule.OSV2Replacement,
			PatchReplace:      rule.OSV3Replacement,
			PatchMinorReplace: rule.OSV4Replacement,
		})
		if err != nil {
			cfg.reject("os_parsers", i, err)
			errs = append(errs, fmt.Errorf("os_parsers[%d]: %w", i, err))
			continue
		}
		oses = append(oses, m)
	}

	devices := make([]*match.DeviceMatcher, 0, len(doc.DeviceParsers))
	for i, rule := range doc.DeviceParsers {
		m, err := match.NewDeviceMatcher(match.DeviceRecord{
			Regex:         rule.Regex,
			RegexFlag:     rule.RegexFlag,
			FamilyReplace: rule.DeviceReplace,
			BrandReplace:  rule.BrandReplace,
			ModelReplace:  rule.ModelReplace,
		})
		if err != nil {
			cfg.reject("device_parsers", i, err)
			errs = append(errs, fmt.Errorf("device_parsers[%d]: %w", i, err))
			continue
		}
		devices = append(devices, m)
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &match.RuleSet{UserAgent: uas, OS: oses, Device: devices}, nil
}

// reject logs a single record's rejection, keyed by which facet list it
// came from and its position within it, if a logger was attached via
// WithLogger. A nil logger makes this a no-op.
func (c *loadConfig) reject(facet string, index int, err error) {
	if c.logger == nil {
		return
	}
	c.logger.Warn("rejected rule record",
		logging.Component("loader"),
		slog.String("facet", facet),
		logging.RuleIndex(index),
		logging.Error(err))
}

// LoadFile opens path and calls Load against its contents.
func LoadFile(path string, opts ...LoadOption) (*match.RuleSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: opening %s: %w", path, err)
	}
	defer f.Close()
	return Load(f, opts...)
}
