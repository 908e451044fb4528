package match

import (
	"fmt"
	"regexp"

	"github.com/uap-go/uaparser/core"
)

// DeviceRecord is the declarative rule shape a DeviceMatcher compiles from.
// RegexFlag recognises only "i" (case-insensitive matching); any other
// value is ignored, matching the source corpus.
type DeviceRecord struct {
	Regex         string
	RegexFlag     string
	FamilyReplace string
	BrandReplace  string
	ModelReplace  string
}

// DeviceMatcher is a compiled, callable Device rule: a regex, an optional
// case-insensitivity flag, and three substitutable fields. Default mapping
// is family=$1, model=$1 — brand has no fallback, it is nil unless a
// template supplies one. Case-insensitivity affects only pattern matching,
// never template substitution.
type DeviceMatcher struct {
	pattern     *regexp.Regexp
	source      string
	insensitive bool
	family      string
	brand       string
	model       string
}

// NewDeviceMatcher compiles rec into a DeviceMatcher.
func NewDeviceMatcher(rec DeviceRecord) (*DeviceMatcher, error) {
	if rec.Regex == "" {
		return nil, ErrMalformedRecord
	}
	pattern := rec.Regex
	if rec.RegexFlag == "i" {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidPattern, rec.Regex, err)
	}
	if n := maxBackref(rec.FamilyReplace, rec.BrandReplace, rec.ModelReplace); n > re.NumSubexp() {
		return nil, fmt.Errorf("%w: %q references $%d but has %d capture groups", ErrInvalidBackreference, rec.Regex, n, re.NumSubexp())
	}
	return &DeviceMatcher{
		pattern:     re,
		source:      rec.Regex,
		insensitive: rec.RegexFlag == "i",
		family:      rec.FamilyReplace,
		brand:       rec.BrandReplace,
		model:       rec.ModelReplace,
	}, nil
}

// Match applies the matcher to ua.
func (m *DeviceMatcher) Match(ua string) (core.Device, bool) {
	groups := m.pattern.FindStringSubmatch(ua)
	if groups == nil {
		return core.Device{}, false
	}
	return core.Device{
		Family: resolveFamily(m.family, 1, groups),
		Brand:  resolveField(m.brand, 0, groups),
		Model:  resolveField(m.model, 1, groups),
	}, true
}

// Pattern returns the source regex, without the injected (?i) prefix.
func (m *DeviceMatcher) Pattern() string { return m.source }

// Regexp returns the compiled pattern for direct reuse by a resolver.
func (m *DeviceMatcher) Regexp() *regexp.Regexp { return m.pattern }

// CaseInsensitive reports whether the matcher was compiled with the "i"
// regex flag.
func (m *DeviceMatcher) CaseInsensitive() bool { return m.insensitive }
