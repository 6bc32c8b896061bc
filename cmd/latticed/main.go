// Command latticed assembles the Hamiltonian matrix for one of a small
// set of bundled lattice models and reports basis size and sparsity.
// Diagonalization is outside this module's scope (see sparse.Matrix.Dense
// for handoff to an external eigensolver); latticed only exercises
// symbolic assembly end to end.
package main

import (
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"latticed/basis"
	"latticed/lattice"
	"latticed/model"
	"latticed/sparse"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "latticed",
		Short: "Assemble Hamiltonian matrices for bundled lattice models",
	}
	rootCmd.AddCommand(
		hubbardChainCmd(),
		heisenbergRingCmd(),
		hubbardKagomeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		glog.Errorln(err)
		os.Exit(1)
	}
}

func hubbardChainCmd() *cobra.Command {
	var size, particles int
	var mu, t, u float64
	var periodic, allowDoubleOccupancy bool

	cmd := &cobra.Command{
		Use:   "hubbard-chain",
		Short: "Assemble the single-band Hubbard chain",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := lattice.HubbardChain{
				Mu: complex(mu, 0), T: complex(t, 0), U: complex(u, 0),
				Size: size, Periodic: periodic,
			}
			b := basis.NewFermionic(size, particles, allowDoubleOccupancy, nil)
			return assemble(m, b)
		},
	}
	cmd.Flags().IntVar(&size, "size", 4, "number of sites")
	cmd.Flags().IntVar(&particles, "particles", 4, "total particle number")
	cmd.Flags().Float64Var(&mu, "mu", 0, "chemical potential")
	cmd.Flags().Float64Var(&t, "t", 1, "hopping amplitude")
	cmd.Flags().Float64Var(&u, "u", 4, "Hubbard U")
	cmd.Flags().BoolVar(&periodic, "periodic", true, "use periodic boundary conditions")
	cmd.Flags().BoolVar(&allowDoubleOccupancy, "allow-double-occupancy", true, "allow two particles per site")
	return cmd
}

func heisenbergRingCmd() *cobra.Command {
	var size int
	var j, h float64

	cmd := &cobra.Command{
		Use:   "heisenberg-ring",
		Short: "Assemble the spin-1/2 Heisenberg ring",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := lattice.HeisenbergRing{J: j, H: h, Size: size}
			b := basis.NewFermionic(size, size, false, nil)
			return assemble(m, b)
		},
	}
	cmd.Flags().IntVar(&size, "size", 10, "number of sites")
	cmd.Flags().Float64Var(&j, "j", 1, "exchange coupling")
	cmd.Flags().Float64Var(&h, "h", 1e-4, "longitudinal field")
	return cmd
}

func hubbardKagomeCmd() *cobra.Command {
	var particles int
	var mu, t, u float64
	var periodic bool

	cmd := &cobra.Command{
		Use:   "hubbard-kagome",
		Short: "Assemble the Hubbard model on the 12-site Kagome plaquette",
		RunE: func(cmd *cobra.Command, args []string) error {
			m := lattice.HubbardKagome{
				Mu: complex(mu, 0), T: complex(t, 0), U: complex(u, 0),
				Periodic: periodic,
			}
			b := basis.NewFermionic(12, particles, true, nil)
			return assemble(m, b)
		},
	}
	cmd.Flags().IntVar(&particles, "particles", 12, "total particle number")
	cmd.Flags().Float64Var(&mu, "mu", 0, "chemical potential")
	cmd.Flags().Float64Var(&t, "t", 1, "hopping amplitude")
	cmd.Flags().Float64Var(&u, "u", 8, "Hubbard U")
	cmd.Flags().BoolVar(&periodic, "periodic", true, "close the outer ring")
	return cmd
}

func assemble(m model.Model, b basis.Basis) error {
	glog.Infof("basis size %d", b.Size())
	mat := sparse.New(b.Size(), b.Size())
	if err := model.ComputeMatrixElements(m, b, mat); err != nil {
		return err
	}
	fmt.Printf("basis size: %d\n", b.Size())
	fmt.Printf("nonzero entries: %d\n", mat.NNZ())
	return nil
}
