package netio

import "errors"

// ErrMalformedHeader indicates line 1 of an input file was not four
// comma-separated integers with non-negative R and C, or the file was
// empty (a negative weight is reported as ErrNegativeWeight). This
// aborts the whole parse: there is no recovering a routing session
// without knowing (R, C, bend_penalty, via_penalty).
var ErrMalformedHeader = errors.New("netio: malformed or missing header line")

// ErrNegativeWeight indicates the header's bend_penalty or via_penalty
// parsed as a negative integer.
var ErrNegativeWeight = errors.New("netio: header weight must be non-negative")
