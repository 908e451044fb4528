package core

import (
	"fmt"
	"strings"
)

// PartialResult is the universal return shape of a Resolver: the facets the
// caller requested, whichever of them actually matched (nil means "asked
// but no rule matched"), and the original string. Requested disambiguates
// "not requested" from "requested but unmatched" for any facet left nil.
type PartialResult struct {
	Requested Domain
	UserAgent *UserAgent
	OS        *OS
	Device    *Device
	String    string
}

// Complete requires that every facet was requested (Requested == DomainAll)
// and returns the total Result shape. It is the fallible counterpart to
// WithDefaults for callers that want to assert full resolution rather than
// silently defaulting missing facets.
func (r PartialResult) Complete() (Result, error) {
	if r.Requested != DomainAll {
		return Result{}, fmt.Errorf("%w: requested=%s", ErrIncompleteRequest, r.Requested)
	}
	return Result{
		UserAgent: r.UserAgent,
		OS:        r.OS,
		Device:    r.Device,
		String:    r.String,
	}, nil
}

// WithDefaults substitutes the per-facet default sentinel (family "Other",
// no other fields) for any facet that is nil, regardless of whether it was
// requested. Unlike Complete, this never errors: a facet that was never
// requested defaults exactly like one that was requested and failed to
// match, since the caller has explicitly opted out of the distinction by
// calling WithDefaults.
func (r PartialResult) WithDefaults() DefaultedResult {
	ua := defaultUserAgent()
	if r.UserAgent != nil {
		ua = *r.UserAgent
	}
	os := defaultOS()
	if r.OS != nil {
		os = *r.OS
	}
	dev := defaultDevice()
	if r.Device != nil {
		dev = *r.Device
	}
	return DefaultedResult{
		UserAgent: ua,
		OS:        os,
		Device:    dev,
		String:    r.String,
	}
}

// Result is the complete parser result: for each facet, either a match was
// found and the value is non-nil, or it was not and the value is nil.
type Result struct {
	UserAgent *UserAgent
	OS        *OS
	Device    *Device
	String    string
}

// WithDefaults substitutes the per-facet default sentinel for any nil facet.
func (r Result) WithDefaults() DefaultedResult {
	return PartialResult{
		Requested: DomainAll,
		UserAgent: r.UserAgent,
		OS:        r.OS,
		Device:    r.Device,
		String:    r.String,
	}.WithDefaults()
}

// DefaultedResult is the variant of Result where every facet is guaranteed
// populated, with failed lookups replaced by the per-facet default.
type DefaultedResult struct {
	UserAgent UserAgent
	OS        OS
	Device    Device
	String    string
}

// ShortIdentifier composes a short, human-readable label for log lines and
// analytics keys, e.g. "Chrome/41.0 (Mac OS X; Mac)". Missing version or
// device fields are simply omitted from their segment.
func (r DefaultedResult) ShortIdentifier() string {
	browser := r.UserAgent.Family
	if v := versionString(r.UserAgent.Major, r.UserAgent.Minor, r.UserAgent.Patch); v != "" {
		browser = browser + "/" + v
	}
	var ctx []string
	if r.OS.Family != "" && r.OS.Family != OtherFamily {
		ctx = append(ctx, r.OS.Family)
	}
	if r.Device.Family != "" && r.Device.Family != OtherFamily {
		ctx = append(ctx, r.Device.Family)
	}
	if len(ctx) == 0 {
		return browser
	}
	return fmt.Sprintf("%s (%s)", browser, strings.Join(ctx, "; "))
}

func versionString(major, minor, patch *string) string {
	parts := make([]string, 0, 3)
	for _, p := range []*string{major, minor, patch} {
		if p == nil {
			break
		}
		parts = append(parts, *p)
	}
	return strings.Join(parts, ".")
}

// Resolver is the public resolver protocol: given a user agent string and a
// set of requested facets, return a PartialResult carrying at least those
// facets. Implementations must return the requested Domain unchanged in the
// result so callers can distinguish "not requested" from "requested but
// unmatched"; they may resolve and return more facets than requested if
// doing so is free.
type Resolver interface {
	Resolve(ua string, requested Domain) PartialResult
}
