// Package loader decodes uap-core-shaped YAML rule documents into a
// compiled match.RuleSet.
//
// The document shape is the one the upstream uap-core regex corpus and its
// language ports (including the Python project's loaders.py) all share:
// three top-level lists, user_agent_parsers, os_parsers and device_parsers,
// each a sequence of string-keyed maps. Load decodes, validates every
// record, and compiles in one step. Unlike match.NewRuleSet — which aborts
// on the first bad record, since a resolver never wants to run against a
// partially compiled ruleset — Load keeps validating every remaining
// record after a failure so the returned error names every offending
// record at once, which is what a human staring at a bad YAML file
// actually wants.
//
// The match/resolve/cache core has no import-time dependency on this
// package; loader is a concrete, swappable collaborator, not a foundation
// the rest of the module is built on.
//
// WithLogger attaches an optional *slog.Logger that reports each rejected
// record individually, by facet and index, as Load walks the document —
// useful for spotting which rules in a large corpus are failing without
// parsing the aggregate error by hand.
package loader
