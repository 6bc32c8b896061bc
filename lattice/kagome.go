package lattice

import (
	"strconv"

	"github.com/katalvlaran/lvlath/core"

	"latticed/expr"
	"latticed/operator"
	"latticed/ops"
)

// kagomeUnitCellSites is the number of sites in the Kagome plaquette
// this model is built on: 6 inner-ring sites plus 6 outer sites
// connected by spokes and, when periodic, by outer-ring bonds.
const kagomeUnitCellSites = 12

// kagomeInnerBonds are the inner hexagonal ring's nearest-neighbor
// bonds, and kagomeSpokeBonds connect each inner site to its outer
// partner and its cyclic neighbor's outer partner.
var (
	kagomeInnerBonds = [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}}
	kagomeSpokeBonds = [][2]int{
		{0, 6}, {1, 7}, {2, 8}, {3, 9}, {4, 10}, {5, 11},
		{1, 6}, {2, 7}, {3, 8}, {4, 9}, {5, 10}, {0, 11},
	}
	kagomePeriodicBonds = [][2]int{{6, 10}, {7, 11}, {8, 6}, {9, 7}, {10, 8}, {11, 9}}
)

// HubbardKagome is the single-band Hubbard model on a 12-site Kagome
// plaquette, optionally closed with periodic boundary bonds on the
// outer ring.
type HubbardKagome struct {
	Mu, T, U complex128
	Periodic bool
}

// Hamiltonian builds the plaquette's bond graph as a
// github.com/katalvlaran/lvlath/core.Graph, generalizing the fixed bond
// list of a single hardcoded plaquette into a reusable topology any
// other model in this package could equally build from edges, then sums
// the chemical potential, hopping, and Hubbard U terms over it.
func (m HubbardKagome) Hamiltonian() expr.Expression {
	g := kagomeGraph(m.Periodic)

	result := expr.Expression{}
	for _, spin := range [...]operator.Spin{operator.Up, operator.Down} {
		for i := 0; i < kagomeUnitCellSites; i++ {
			result.InsertExpression(expr.New(ops.Density(operator.Fermion, spin, i)).MulScalar(-m.Mu))
		}
	}
	for _, bond := range bonds(g) {
		for _, spin := range [...]operator.Spin{operator.Up, operator.Down} {
			result.InsertExpression(ops.Hopping(operator.Fermion, spin, bond[0], bond[1]).MulScalar(-m.T))
		}
	}
	for i := 0; i < kagomeUnitCellSites; i++ {
		result.InsertExpression(expr.New(ops.DensityDensity(operator.Fermion, operator.Up, i, operator.Down, i)).MulScalar(m.U))
	}
	return result
}

func kagomeGraph(periodic bool) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < kagomeUnitCellSites; i++ {
		if err := g.AddVertex(strconv.Itoa(i)); err != nil {
			panic(err)
		}
	}

	all := append(append([][2]int{}, kagomeInnerBonds...), kagomeSpokeBonds...)
	if periodic {
		all = append(all, kagomePeriodicBonds...)
	}
	for _, bond := range all {
		if _, err := g.AddEdge(strconv.Itoa(bond[0]), strconv.Itoa(bond[1]), 0); err != nil {
			panic(err)
		}
	}
	return g
}
