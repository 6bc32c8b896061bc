package expr

import (
	"fmt"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"latticed/operator"
	"latticed/term"
)

func c(orbital int) operator.Operator { return operator.Create(operator.Fermion, operator.Up, orbital) }
func a(orbital int) operator.Operator {
	return operator.Annihilate(operator.Fermion, operator.Up, orbital)
}

// readable renders an Expression into a map keyed by a human-readable
// rendition of each operator word, so cmp.Diff produces useful failure
// output instead of comparing opaque byte-string keys.
func readable(e Expression) map[string]complex128 {
	out := make(map[string]complex128, e.Len())
	for ops, coef := range e.Terms() {
		out[fmt.Sprint(ops)] = coef
	}
	return out
}

func TestInsertAccumulates(t *testing.T) {
	e := Expression{}
	e.Insert(term.New(2, []operator.Operator{c(0)}))
	e.Insert(term.New(3, []operator.Operator{c(0)}))

	got := readable(e)
	want := map[string]complex128{fmt.Sprint([]operator.Operator{c(0)}): 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Insert accumulation mismatch (-want +got):\n%s", diff)
	}
}

func TestAddIsCommutative(t *testing.T) {
	x := New(term.New(1, []operator.Operator{c(0)}))
	y := New(term.New(2, []operator.Operator{a(1)}))

	if !x.Add(y).Equal(y.Add(x)) {
		t.Errorf("Add is not commutative")
	}
}

func TestMulAssociative(t *testing.T) {
	x := New(term.New(1, []operator.Operator{c(0)}))
	y := New(term.New(2, []operator.Operator{c(1)}))
	z := New(term.New(3, []operator.Operator{a(2)}))

	lhs := x.Mul(y).Mul(z)
	rhs := x.Mul(y.Mul(z))
	if !lhs.Equal(rhs) {
		t.Errorf("Mul is not associative:\n%v\n%v", readable(lhs), readable(rhs))
	}
}

func TestAdjointInvolution(t *testing.T) {
	e := New(
		term.New(complex(1, 2), []operator.Operator{c(0), a(1)}),
		term.New(3, []operator.Operator{c(2)}),
	)
	if got := e.Adjoint().Adjoint(); !got.Equal(e) {
		t.Errorf("Adjoint(Adjoint(e)) != e:\n%v\n%v", readable(got), readable(e))
	}
}

func TestSubSelfPrunesToEmpty(t *testing.T) {
	e := New(
		term.New(complex(1, 2), []operator.Operator{c(0), a(1)}),
		term.New(3, []operator.Operator{c(2)}),
	)
	zero := e.Sub(e).Prune(1e-12)
	if zero.Len() != 0 {
		t.Errorf("e - e pruned to %d terms, want 0: %v", zero.Len(), readable(zero))
	}
}

func TestPruneRemovesNegligibleCoefficients(t *testing.T) {
	e := New(
		term.New(1e-20, []operator.Operator{c(0)}),
		term.New(1, []operator.Operator{c(1)}),
	)
	pruned := e.Prune(1e-12)
	if pruned.Len() != 1 {
		t.Errorf("Prune kept %d terms, want 1", pruned.Len())
	}
	if pruned.Coefficient([]operator.Operator{c(1)}) != 1 {
		t.Errorf("Prune discarded the surviving term")
	}
}

func TestEqualIgnoresInsertionOrder(t *testing.T) {
	first := New(
		term.New(1, []operator.Operator{c(0)}),
		term.New(2, []operator.Operator{c(1)}),
	)
	second := New(
		term.New(2, []operator.Operator{c(1)}),
		term.New(1, []operator.Operator{c(0)}),
	)
	if !first.Equal(second) {
		t.Errorf("Equal is order-sensitive to insertion, want order-independent")
	}
}

func sortedKeys(e Expression) []string {
	r := readable(e)
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func ExampleExpression_Mul() {
	x := New(term.New(1, []operator.Operator{c(0)}))
	y := New(term.New(1, []operator.Operator{a(0)}))
	product := x.Mul(y)
	fmt.Println(sortedKeys(product))
	// Output:
	// [[c†(↑,0) c(↑,0)]]
}
