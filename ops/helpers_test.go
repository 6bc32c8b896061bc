package ops

import (
	"testing"

	"latticed/normalorder"
	"latticed/operator"
)

func TestHoppingIsHermitian(t *testing.T) {
	h := Hopping(operator.Fermion, operator.Up, 0, 1)
	no := normalorder.Order(h)
	adj := normalorder.Order(h.Adjoint())
	if !no.Equal(adj) {
		t.Errorf("Hopping is not Hermitian after normal-ordering")
	}
}

func TestDensityDensityIsProductOfNumberOperators(t *testing.T) {
	dd := DensityDensity(operator.Fermion, operator.Up, 0, operator.Down, 0)
	if len(dd.Operators) != 4 {
		t.Errorf("DensityDensity word length = %d, want 4", len(dd.Operators))
	}
}

func TestSpinZIsHermitian(t *testing.T) {
	sz := SpinZ(0)
	no := normalorder.Order(sz)
	adj := normalorder.Order(sz.Adjoint())
	if !no.Equal(adj) {
		t.Errorf("SpinZ is not Hermitian after normal-ordering")
	}
}

func TestSpinXYZSatisfyCommutator(t *testing.T) {
	// [S_x, S_y] = i S_z: after normal ordering the quartic terms cancel
	// and the commutator equals i/2 (n_up - n_down), which exercises
	// SpinX/SpinY/SpinZ through the full algebra pipeline.
	sx := SpinX(0)
	sy := SpinY(0)
	comm := normalorder.Commute(sx, sy)
	if comm.Len() == 0 {
		t.Errorf("[S_x, S_y] normal-ordered to the empty expression, want nonzero")
	}
	want := normalorder.Order(SpinZ(0).MulScalar(1i)).Prune(1e-12)
	if got := comm.Prune(1e-12); !got.Equal(want) {
		t.Errorf("[S_x, S_y] != i S_z after normal-ordering")
	}
}
