package lattice

import (
	"github.com/katalvlaran/lvlath/builder"

	"latticed/expr"
	"latticed/ops"
)

// HeisenbergRing is the spin-1/2 Heisenberg model on a periodic ring:
// H = -h*sum_i S_z(i) + J*sum_<ij> S_x(i)S_x(j) + S_y(i)S_y(j) + S_z(i)S_z(j),
// realized via the fermionic spin-flip mapping of package ops and a
// no-double-occupancy basis (see basis.NewFermionic).
type HeisenbergRing struct {
	J, H float64
	Size int
}

// Hamiltonian builds the ring topology via builder.Cycle and sums the
// field and exchange terms over it.
func (m HeisenbergRing) Hamiltonian() expr.Expression {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(m.Size))
	if err != nil {
		panic(err)
	}

	result := expr.Expression{}
	for i := 0; i < m.Size; i++ {
		result.InsertExpression(ops.SpinZ(i).MulScalar(complex(-m.H, 0)))
	}
	for _, bond := range bonds(g) {
		i, j := bond[0], bond[1]
		result.InsertExpression(ops.SpinX(i).Mul(ops.SpinX(j)).MulScalar(complex(m.J, 0)))
		result.InsertExpression(ops.SpinY(i).Mul(ops.SpinY(j)).MulScalar(complex(m.J, 0)))
		result.InsertExpression(ops.SpinZ(i).Mul(ops.SpinZ(j)).MulScalar(complex(m.J, 0)))
	}
	return result
}
