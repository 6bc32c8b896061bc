// Package lattice supplies concrete Models (component G) for common
// lattice Hamiltonians: the Hubbard chain, the antiferromagnetic
// Heisenberg ring, and the Hubbard model on a Kagome lattice. Each
// builds its bond list from a github.com/katalvlaran/lvlath/core graph
// rather than a hand-rolled loop, so the same topology machinery the
// rest of the ecosystem uses for graph algorithms describes the lattice
// here too.
package lattice

import (
	"strconv"

	"github.com/katalvlaran/lvlath/core"
)

// bonds returns every edge of g as (orbital, orbital) pairs, decoding
// each endpoint's vertex ID (a decimal string under the default ID
// scheme) back into an orbital index.
func bonds(g *core.Graph) [][2]int {
	edges := g.Edges()
	out := make([][2]int, 0, len(edges))
	for _, e := range edges {
		out = append(out, [2]int{orbitalOf(e.From), orbitalOf(e.To)})
	}
	return out
}

func orbitalOf(id string) int {
	n, err := strconv.Atoi(id)
	if err != nil {
		panic(ErrVertexID)
	}
	return n
}
