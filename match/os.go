package match

import (
	"fmt"
	"regexp"

	"github.com/uap-go/uaparser/core"
)

// OSRecord is the declarative rule shape an OSMatcher compiles from.
type OSRecord struct {
	Regex             string
	FamilyReplace     string
	MajorReplace      string
	MinorReplace      string
	PatchReplace      string
	PatchMinorReplace string
}

// OSMatcher is a compiled, callable OS rule: a regex plus its five
// substitutable fields. Default mapping is family=$1, major=$2, minor=$3,
// patch=$4, patch_minor=$5 — unlike UserAgentMatcher, every field here
// accepts a template.
type OSMatcher struct {
	pattern    *regexp.Regexp
	family     string
	major      string
	minor      string
	patch      string
	patchMinor string
}

// NewOSMatcher compiles rec into an OSMatcher.
func NewOSMatcher(rec OSRecord) (*OSMatcher, error) {
	if rec.Regex == "" {
		return nil, ErrMalformedRecord
	}
	re, err := regexp.Compile(rec.Regex)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidPattern, rec.Regex, err)
	}
	templates := []string{rec.FamilyReplace, rec.MajorReplace, rec.MinorReplace, rec.PatchReplace, rec.PatchMinorReplace}
	if n := maxBackref(templates...); n > re.NumSubexp() {
		return nil, fmt.Errorf("%w: %q references $%d but has %d capture groups", ErrInvalidBackreference, rec.Regex, n, re.NumSubexp())
	}
	return &OSMatcher{
		pattern:    re,
		family:     rec.FamilyReplace,
		major:      rec.MajorReplace,
		minor:      rec.MinorReplace,
		patch:      rec.PatchReplace,
		patchMinor: rec.PatchMinorReplace,
	}, nil
}

// Match applies the matcher to ua.
func (m *OSMatcher) Match(ua string) (core.OS, bool) {
	groups := m.pattern.FindStringSubmatch(ua)
	if groups == nil {
		return core.OS{}, false
	}
	return core.OS{
		Family:     resolveFamily(m.family, 1, groups),
		Major:      resolveField(m.major, 2, groups),
		Minor:      resolveField(m.minor, 3, groups),
		Patch:      resolveField(m.patch, 4, groups),
		PatchMinor: resolveField(m.patchMinor, 5, groups),
	}, true
}

// Pattern returns the source regex.
func (m *OSMatcher) Pattern() string { return m.pattern.String() }

// Regexp returns the compiled pattern for direct reuse by a resolver.
func (m *OSMatcher) Regexp() *regexp.Regexp { return m.pattern }
