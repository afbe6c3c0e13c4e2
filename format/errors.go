package format

import "errors"

// ErrMissingName reports that the declaration tree violated the producer's
// contract by omitting a required name (declaration, member or type
// parameter). Rendering of the affected declaration is aborted rather than
// emitting partial text.
var ErrMissingName = errors.New("missing required name in declaration tree")
