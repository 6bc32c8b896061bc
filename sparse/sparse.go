// Package sparse implements the external SpMat boundary: a complex
// sparse matrix supporting random-access assignment and additive
// accumulation at (i, j), the minimal contract compute_matrix_elements
// needs from a caller-supplied matrix. It also offers a Dense
// conversion to *mat.CDense so a dense or sparse eigensolver collaborator
// outside this module can consume the assembled Hamiltonian.
package sparse

import (
	"sync"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

type key struct{ i, j int }

// Matrix is a map-backed complex sparse matrix. The zero value is not
// usable; construct with New.
//
// Matrix is the shared mutable state compute_matrix_elements's workers
// write into concurrently (spec.md §5: "shared writes to M are
// serialized by a mutex"); mu guards data the same way
// gonum.org/v1/gonum's own Concurrent finite-difference path guards its
// accumulated derivative (diff.go's FiniteDiffernce: a sync.Mutex taken
// around every write into the shared result, not a lock-free scheme).
type Matrix struct {
	rows, cols int
	mu         sync.Mutex
	data       map[key]complex128
}

// New returns an empty rows x cols sparse matrix. It panics if rows or
// cols is non-positive.
func New(rows, cols int) *Matrix {
	if rows <= 0 || cols <= 0 {
		panic(ErrShape)
	}
	return &Matrix{rows: rows, cols: cols, data: make(map[key]complex128)}
}

// Dims returns the matrix's row and column count.
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// At returns the element at (i, j), or 0 if it was never set.
func (m *Matrix) At(i, j int) complex128 {
	m.checkIndex(i, j)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key{i, j}]
}

// Set assigns the element at (i, j), replacing any previous value.
func (m *Matrix) Set(i, j int, v complex128) {
	m.checkIndex(i, j)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key{i, j}] = v
}

// Accumulate adds v to the element at (i, j), treating an absent entry
// as 0. This is the write compute_matrix_elements uses: repeated writes
// to the same (i, j) during assembly sum rather than overwrite. Safe to
// call concurrently from multiple goroutines writing distinct or
// overlapping (i, j) cells.
func (m *Matrix) Accumulate(i, j int, v complex128) {
	m.checkIndex(i, j)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key{i, j}] += v
}

// NNZ returns the number of explicitly stored entries, including any
// that have accumulated back to exactly zero.
func (m *Matrix) NNZ() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}

func (m *Matrix) checkIndex(i, j int) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(ErrIndexRange)
	}
}

// Dense materializes m as a *mat.CDense, the gonum dense complex matrix
// type, for handoff to an eigensolver collaborator.
func (m *Matrix) Dense() *mat.CDense {
	m.mu.Lock()
	defer m.mu.Unlock()
	dense := mat.NewCDense(m.rows, m.cols, nil)
	for k, v := range m.data {
		dense.Set(k.i, k.j, v)
	}
	return dense
}

// IsHermitian reports whether m equals its own conjugate transpose to
// within absTol or relTol, checked entrywise on the real and imaginary
// parts via gonum's floats/scalar tolerance comparison. Intended for
// tests, not for the hot assembly path.
func (m *Matrix) IsHermitian(absTol, relTol float64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, v := range m.data {
		conj := m.data[key{k.j, k.i}]
		if !scalar.EqualWithinAbsOrRel(real(v), real(conj), absTol, relTol) {
			return false
		}
		if !scalar.EqualWithinAbsOrRel(imag(v), -imag(conj), absTol, relTol) {
			return false
		}
	}
	return true
}
