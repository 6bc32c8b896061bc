package operator

import (
	"fmt"
	"testing"
)

func Panics(fun func()) (b bool) {
	defer func() {
		if recover() != nil {
			b = true
		}
	}()
	fun()
	return
}

func TestAdjointInvolution(t *testing.T) {
	for _, typ := range []Type{Creation, Annihilation} {
		for _, stats := range []Statistics{Boson, Fermion} {
			for _, spin := range []Spin{Up, Down} {
				o := New(typ, stats, spin, 3)
				if got := o.Adjoint().Adjoint(); !got.Equal(o) {
					t.Errorf("adjoint(adjoint(%v)) = %v, want %v", o, got, o)
				}
				if got := o.Adjoint().Type(); got == o.Type() {
					t.Errorf("adjoint(%v) did not flip type", o)
				}
				if o.Adjoint().Statistics() != o.Statistics() || o.Adjoint().Spin() != o.Spin() ||
					o.Adjoint().Orbital() != o.Orbital() {
					t.Errorf("adjoint(%v) changed a field other than type", o)
				}
			}
		}
	}
}

func TestIdentifierPairsModes(t *testing.T) {
	c := Create(Fermion, Up, 2)
	a := Annihilate(Fermion, Up, 2)
	if c.Identifier() != a.Identifier() {
		t.Errorf("Identifier() of a mode and its adjoint differ: %v vs %v", c.Identifier(), a.Identifier())
	}
	if !c.SameMode(a) {
		t.Errorf("SameMode(%v, %v) = false, want true", c, a)
	}

	other := Annihilate(Fermion, Up, 3)
	if c.SameMode(other) {
		t.Errorf("SameMode(%v, %v) = true, want false", c, other)
	}
}

func TestTotalOrder(t *testing.T) {
	cre0 := Create(Fermion, Up, 0)
	cre1 := Create(Fermion, Up, 1)
	ann0 := Annihilate(Fermion, Up, 0)

	if !cre0.Less(cre1) {
		t.Errorf("Less: creation at lower orbital should precede creation at higher orbital")
	}
	if cre1.Less(cre0) {
		t.Errorf("Less: should not be symmetric for distinct operators")
	}
	if !cre1.Less(ann0) {
		t.Errorf("Less: every creation operator must precede every annihilation operator, got %v >= %v", cre1, ann0)
	}
}

func TestOrbitalRangePanics(t *testing.T) {
	if !Panics(func() { New(Creation, Fermion, Up, -1) }) {
		t.Errorf("New with negative orbital did not panic")
	}
	if !Panics(func() { New(Creation, Fermion, Up, MaxOrbital) }) {
		t.Errorf("New with orbital == MaxOrbital did not panic")
	}
	if Panics(func() { New(Creation, Fermion, Up, MaxOrbital-1) }) {
		t.Errorf("New with orbital == MaxOrbital-1 panicked unexpectedly")
	}
}

func TestMaxOrbitalMeetsFloor(t *testing.T) {
	if MaxOrbital < 32 {
		t.Errorf("MaxOrbital = %d, want >= 32", MaxOrbital)
	}
}

func ExampleOperator_String() {
	up := Create(Fermion, Up, 0)
	down := Annihilate(Fermion, Down, 1)
	fmt.Println(up)
	fmt.Println(down)
	// Output:
	// c†(↑,0)
	// c(↓,1)
}
