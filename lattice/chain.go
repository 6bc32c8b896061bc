package lattice

import (
	"github.com/katalvlaran/lvlath/builder"

	"latticed/expr"
	"latticed/operator"
	"latticed/ops"
)

// HubbardChain is the single-band Hubbard model on a 1-D chain:
// H = -mu*sum_i,sigma n_{i,sigma} - t*sum_<ij>,sigma hopping(i,j) + U*sum_i n_{i,up} n_{i,down}
// built over a ring (periodic) or open chain topology supplied by
// github.com/katalvlaran/lvlath/builder.
type HubbardChain struct {
	Mu, T, U complex128
	Size     int
	Periodic bool
}

// Hamiltonian builds the chain's bond graph via builder.Cycle (periodic)
// or builder.Path (open), then sums the chemical potential, hopping, and
// Hubbard U terms over it.
func (m HubbardChain) Hamiltonian() expr.Expression {
	var cons builder.Constructor
	if m.Periodic {
		cons = builder.Cycle(m.Size)
	} else {
		cons = builder.Path(m.Size)
	}
	g, err := builder.BuildGraph(nil, nil, cons)
	if err != nil {
		panic(err)
	}

	result := expr.Expression{}
	for _, spin := range [...]operator.Spin{operator.Up, operator.Down} {
		for i := 0; i < m.Size; i++ {
			result.InsertExpression(expr.New(ops.Density(operator.Fermion, spin, i)).MulScalar(-m.Mu))
		}
	}
	for _, bond := range bonds(g) {
		for _, spin := range [...]operator.Spin{operator.Up, operator.Down} {
			result.InsertExpression(ops.Hopping(operator.Fermion, spin, bond[0], bond[1]).MulScalar(-m.T))
		}
	}
	for i := 0; i < m.Size; i++ {
		result.InsertExpression(expr.New(ops.DensityDensity(operator.Fermion, operator.Up, i, operator.Down, i)).MulScalar(m.U))
	}
	return result
}
