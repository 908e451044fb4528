// Package core defines the shared vocabulary of the uap-go parsing pipeline:
// the three extractable facets (UserAgent, OS, Device), the Domain set used
// to request a subset of them, the partial and complete result shapes a
// resolver produces, and the Resolver protocol every layer of the pipeline
// (matchers aside) implements.
//
// # Architecture
//
// core has no dependencies on the rest of the module. Every other package —
// match, cache, resolve, loader, parser — imports core and never the other
// way around, so core is safe to depend on from tests and from callers that
// only want the result types without pulling in a concrete resolver.
//
//	┌────────┐   Domain    ┌──────────┐
//	│ caller  │───────────▶│ Resolver │──▶ PartialResult
//	└────────┘             └──────────┘
//
// # Usage
//
//	res := someResolver.Resolve(r.UserAgent(), core.DomainAll)
//	complete, err := res.Complete()
//	if err != nil {
//		// requested was not core.DomainAll
//	}
//	defaulted := res.WithDefaults()
//	fmt.Println(defaulted.UserAgent.Family)
package core
