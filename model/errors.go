package model

import "errors"

// ErrSizeMismatch is the panic value when a caller-supplied matrix's
// dimensions do not equal the basis size. A size mismatch is a
// programmer error, not a recoverable condition.
var ErrSizeMismatch = errors.New("model: matrix dimensions do not match basis size")
