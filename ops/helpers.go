// Package ops supplies canonical building-block operators and
// expressions for second-quantized Hamiltonians: one-body hopping,
// density, density-density interaction, and the spin-1/2 operators
// represented via fermionic spin-flips. These are pure factories; none
// of them normal-order their result, matching package term/package expr.
package ops

import (
	"latticed/expr"
	"latticed/operator"
	"latticed/term"
)

// OneBody returns coefficient * c†_{spin1,orbital1} c_{spin2,orbital2}
// for the given statistics.
func OneBody(stats operator.Statistics, coefficient complex128, spin1 operator.Spin, orbital1 int, spin2 operator.Spin, orbital2 int) term.Term {
	return term.New(coefficient, []operator.Operator{
		operator.Create(stats, spin1, orbital1),
		operator.Annihilate(stats, spin2, orbital2),
	})
}

// Density returns the number operator n_{spin,orbital} = c†_{spin,orbital} c_{spin,orbital}.
func Density(stats operator.Statistics, spin operator.Spin, orbital int) term.Term {
	return OneBody(stats, 1, spin, orbital, spin, orbital)
}

// Hopping returns one_body(spin,i,spin,j) + its adjoint, i.e. the
// Hermitian hopping term between orbitals i and j for a single spin
// species.
func Hopping(stats operator.Statistics, spin operator.Spin, i, j int) expr.Expression {
	hop := OneBody(stats, 1, spin, i, spin, j)
	return expr.New(hop, hop.Adjoint())
}

// DensityDensity returns n_{spin1,i} * n_{spin2,j} = c†c c†c, the
// density-density interaction term between two modes.
func DensityDensity(stats operator.Statistics, spin1 operator.Spin, i int, spin2 operator.Spin, j int) term.Term {
	return Density(stats, spin1, i).Product(Density(stats, spin2, j))
}

// SpinFlip returns c†_{up,orbital} c_{down,orbital}, represented via
// fermionic particle operators. This and the spin_x/y/z helpers below
// are faithful spin-1/2 operators only on the single-occupancy subspace
// of each orbital: callers must restrict the basis (no double
// occupancy, one particle per site) for the mapping to be physical.
func SpinFlip(orbital int) term.Term {
	return OneBody(operator.Fermion, 1, operator.Up, orbital, operator.Down, orbital)
}

// SpinX returns S_x(orbital) = 1/2 (spin_flip + spin_flip†).
func SpinX(orbital int) expr.Expression {
	flip := SpinFlip(orbital)
	return expr.New(flip.ProductScalar(0.5), flip.Adjoint().ProductScalar(0.5))
}

// SpinY returns S_y(orbital) = (i/2) (-spin_flip + spin_flip†).
func SpinY(orbital int) expr.Expression {
	flip := SpinFlip(orbital)
	half := complex(0, 0.5)
	return expr.New(flip.ProductScalar(-half), flip.Adjoint().ProductScalar(half))
}

// SpinZ returns S_z(orbital) = 1/2 (n_up - n_down).
func SpinZ(orbital int) expr.Expression {
	up := Density(operator.Fermion, operator.Up, orbital)
	down := Density(operator.Fermion, operator.Down, orbital)
	return expr.New(up.ProductScalar(0.5), down.ProductScalar(-0.5))
}
