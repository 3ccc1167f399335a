package domain

import "errors"

// ErrNoOpenExample is raised (via panic inside builder blocks, surfaced as an
// error by the driver) when a verb that needs an open example runs at the top
// level, outside any describe block.
var ErrNoOpenExample = errors.New("no open example: verb used outside a describe block")

// ErrUnknownVerb is returned when an assertion verb is not present in the
// registry.
var ErrUnknownVerb = errors.New("unknown assertion verb")
