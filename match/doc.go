// Package match compiles declarative rule records — a regex plus a handful
// of extraction templates — into callable matchers for one of the three
// facets (UserAgent, OS, Device). Each facet gets its own matcher type
// rather than a single generic one, because the default extraction rules
// genuinely differ: a Device's model defaults to the whole first capture
// group while its brand has no fallback at all, and flattening that into one
// shared struct would obscure the difference rather than simplify it.
//
// A RuleSet holds three ordered matcher lists, one per facet. Order is
// significant: resolve.Basic and resolve.RegexSet both apply the first
// matcher in a facet's list that matches, never evaluate ties, and never
// reorder rules from how they were compiled.
package match
