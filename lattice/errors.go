package lattice

import "errors"

// ErrVertexID is the panic value when a lattice graph's vertex ID does
// not decode as a decimal orbital index, which indicates a topology
// builder was misused outside the default ID scheme.
var ErrVertexID = errors.New("lattice: vertex ID is not a decimal orbital index")
