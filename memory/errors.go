package memory

import "errors"

// ErrAxisCount is returned by the checked Query wrapper when the
// caller's (x, y, z) triple does not have exactly one nil member: the
// tagged choice of summation axis the triadic contract requires.
var ErrAxisCount = errors.New("memory: exactly one of x, y, z must be nil")
