package sparse

import "errors"

// ErrShape is the panic value when a matrix is constructed with a
// non-positive dimension.
var ErrShape = errors.New("sparse: dimension must be positive")

// ErrIndexRange is the panic value when At, Set, or Accumulate is called
// with an out-of-range index.
var ErrIndexRange = errors.New("sparse: index out of range")
