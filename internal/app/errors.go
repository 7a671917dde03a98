package app

import "errors"

// Stage-level error kinds. Handlers discriminate on these with errors.Is and
// map them onto the response envelope; nothing else crosses the request
// boundary unclassified.
var (
	ErrBadInput         = errors.New("bad input")
	ErrModelUnavailable = errors.New("emotion model unavailable")
	ErrUpstream         = errors.New("upstream service failure")
)
