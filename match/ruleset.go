package match

// RuleSet holds the three ordered matcher lists a resolver owns, one per
// facet. It is immutable once constructed (by NewRuleSet, or by loader.Load,
// which builds the struct directly): nothing in this module mutates the
// slices it holds afterwards, so a RuleSet is safe to share across
// goroutines without synchronisation.
type RuleSet struct {
	UserAgent []*UserAgentMatcher
	OS        []*OSMatcher
	Device    []*DeviceMatcher
}

// Records is the decoded-but-uncompiled rule input shape a loader produces:
// three ordered sequences of rule records, one per facet.
type Records struct {
	UserAgent []UserAgentRecord
	OS        []OSRecord
	Device    []DeviceRecord
}

// NewRuleSet compiles recs into a RuleSet. Order is preserved exactly: rule
// i's matcher ends up at index i of its facet's slice. The first rule record
// that fails to compile or validate aborts construction entirely — a
// ruleset is either fully valid or refused, never partially loaded.
func NewRuleSet(recs Records) (*RuleSet, error) {
	uas := make([]*UserAgentMatcher, 0, len(recs.UserAgent))
	for _, r := range recs.UserAgent {
		m, err := NewUserAgentMatcher(r)
		if err != nil {
			return nil, err
		}
		uas = append(uas, m)
	}

	oses := make([]*OSMatcher, 0, len(recs.OS))
	for _, r := range recs.OS {
		m, err := NewOSMatcher(r)
		if err != nil {
			return nil, err
		}
		oses = append(oses, m)
	}

	devices := make([]*DeviceMatcher, 0, len(recs.Device))
	for _, r := range recs.Device {
		m, err := NewDeviceMatcher(r)
		if err != nil {
			return nil, err
		}
		devices = append(devices, m)
	}

	return &RuleSet{UserAgent: uas, OS: oses, Device: devices}, nil
}
