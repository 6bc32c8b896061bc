package basis

import "errors"

// ErrParticleCount is the panic value when a fermionic basis is
// constructed with more particles than the 2*orbitals available modes
// can hold. This is a precondition violation (programmer error), not a
// recoverable condition.
var ErrParticleCount = errors.New("basis: particles exceeds 2*orbitals")
