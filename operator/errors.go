package operator

import "errors"

// ErrOrbitalRange signifies an orbital index outside [0, MaxOrbital) was
// supplied to New. This is a precondition violation (programmer error)
// and is never recovered from by the package.
var ErrOrbitalRange = errors.New("operator: orbital index out of range")
