package core

import "errors"

var (
	// ErrIncompleteRequest is returned by PartialResult.Complete when the
	// result was not resolved for every facet (Requested != DomainAll).
	ErrIncompleteRequest = errors.New("core: cannot complete a result that did not request every facet")
)
