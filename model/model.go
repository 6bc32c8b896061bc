// Package model defines the Model capability and the parallel matrix
// assembly driver that applies a Model's Hamiltonian to a basis.
package model

import (
	"context"
	"runtime"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"

	"latticed/basis"
	"latticed/expr"
	"latticed/normalorder"
)

// Model exposes a single capability: producing the Hamiltonian as an
// Expression. Implementations are value-producers — Hamiltonian may be
// called repeatedly and must return an equal Expression every time.
type Model interface {
	Hamiltonian() expr.Expression
}

// SparseMatrix is the external boundary compute_matrix_elements writes
// into: its dimensions plus additive accumulation at (i, j).
// latticed/sparse.Matrix satisfies this; so would a caller's own sparse
// type.
type SparseMatrix interface {
	Dims() (rows, cols int)
	Accumulate(i, j int, v complex128)
}

// ComputeMatrixElements fills m with the matrix elements of model's
// Hamiltonian in the given basis: m[i, j] = <basis element i | H |
// basis element j>, where i indexes the basis ket a Hamiltonian term
// produces and j indexes the basis ket it was applied to.
//
// Basis elements are processed concurrently across a worker pool sized
// to GOMAXPROCS via golang.org/x/sync/errgroup; each worker computes one
// basis element's column independently and writes are serialized by m's
// own Accumulate (the matrix is the only shared mutable state, per the
// concurrency model this mirrors). ComputeMatrixElements panics if m's
// dimensions do not match basis.Size().
func ComputeMatrixElements(mdl Model, b basis.Basis, m SparseMatrix) error {
	rows, cols := m.Dims()
	if rows != b.Size() || cols != b.Size() {
		panic(ErrSizeMismatch)
	}
	hamiltonian := mdl.Hamiltonian()

	if glog.V(1) {
		glog.Infof("assembling %d x %d matrix with %d workers", rows, cols, runtime.GOMAXPROCS(0))
	}
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(runtime.GOMAXPROCS(0))
	for j := 0; j < b.Size(); j++ {
		g.Go(func() error {
			ket := b.Element(j)
			applied := normalorder.Order(hamiltonian.MulOperators(ket))
			for word, coeff := range applied.Terms() {
				if idx, ok := b.Index(word); ok {
					m.Accumulate(idx, j, coeff)
				}
			}
			return nil
		})
	}
	err := g.Wait()
	if glog.V(1) {
		glog.Infof("assembly finished")
	}
	return err
}
