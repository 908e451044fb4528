package core

// UserAgent is the client (browser) facet parsed from a user agent string.
// Family is populated whenever a user-agent matcher matches; the version
// components are set only when the matching rule supplies or the pattern
// captures them.
type UserAgent struct {
	Family     string
	Major      *string
	Minor      *string
	Patch      *string
	PatchMinor *string
}

// OS is the operating system facet parsed from a user agent string.
type OS struct {
	Family     string
	Major      *string
	Minor      *string
	Patch      *string
	PatchMinor *string
}

// Device is the device facet parsed from a user agent string.
type Device struct {
	Family string
	Brand  *string
	Model  *string
}

// defaultUserAgent is the per-facet sentinel used by WithDefaults.
func defaultUserAgent() UserAgent { return UserAgent{Family: OtherFamily} }

// defaultOS is the per-facet sentinel used by WithDefaults.
func defaultOS() OS { return OS{Family: OtherFamily} }

// defaultDevice is the per-facet sentinel used by WithDefaults.
func defaultDevice() Device { return Device{Family: OtherFamily} }

// OtherFamily is the family value substituted for any facet that had no
// matching rule, once a caller asks for WithDefaults.
const OtherFamily = "Other"
