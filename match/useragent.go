package match

import (
	"fmt"
	"regexp"

	"github.com/uap-go/uaparser/core"
)

// UserAgentRecord is the declarative rule shape a UserAgentMatcher compiles
// from: a pattern plus four optional templates. An empty template means the
// field falls back to its capture group: FamilyReplace to group 1, and
// MajorReplace, MinorReplace, PatchReplace to groups 2, 3 and 4.
type UserAgentRecord struct {
	Regex         string
	FamilyReplace string
	MajorReplace  string
	MinorReplace  string
	PatchReplace  string
}

// UserAgentMatcher is a compiled, callable UserAgent rule: a regex plus its
// four version-field templates (family, major, minor, patch — patch_minor
// has no template slot, the rule corpus never supplies one, it is always
// group 5 verbatim).
type UserAgentMatcher struct {
	pattern *regexp.Regexp
	family  string
	major   string
	minor   string
	patch   string
}

// NewUserAgentMatcher compiles rec into a UserAgentMatcher, validating the
// pattern and every "$N" backreference against the compiled group count.
func NewUserAgentMatcher(rec UserAgentRecord) (*UserAgentMatcher, error) {
	if rec.Regex == "" {
		return nil, ErrMalformedRecord
	}
	re, err := regexp.Compile(rec.Regex)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidPattern, rec.Regex, err)
	}
	if n := maxBackref(rec.FamilyReplace, rec.MajorReplace, rec.MinorReplace, rec.PatchReplace); n > re.NumSubexp() {
		return nil, fmt.Errorf("%w: %q references $%d but has %d capture groups", ErrInvalidBackreference, rec.Regex, n, re.NumSubexp())
	}
	return &UserAgentMatcher{
		pattern: re,
		family:  rec.FamilyReplace,
		major:   rec.MajorReplace,
		minor:   rec.MinorReplace,
		patch:   rec.PatchReplace,
	}, nil
}

// Match applies the matcher to ua, returning the extracted UserAgent and
// true on a match, or the zero value and false otherwise.
func (m *UserAgentMatcher) Match(ua string) (core.UserAgent, bool) {
	groups := m.pattern.FindStringSubmatch(ua)
	if groups == nil {
		return core.UserAgent{}, false
	}
	return core.UserAgent{
		Family:     resolveFamily(m.family, 1, groups),
		Major:      resolveField(m.major, 2, groups),
		Minor:      resolveField(m.minor, 3, groups),
		Patch:      resolveField(m.patch, 4, groups),
		PatchMinor: resolveField("", 5, groups),
	}, true
}

// Pattern returns the source regex, mostly useful for the regex-set
// resolver's literal-prefilter construction and for debugging.
func (m *UserAgentMatcher) Pattern() string { return m.pattern.String() }

// Regexp returns the compiled pattern for direct reuse by a resolver.
func (m *UserAgentMatcher) Regexp() *regexp.Regexp { return m.pattern }
