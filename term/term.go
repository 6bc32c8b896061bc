// Package term implements Term, a single monomial in the operator
// algebra: a complex coefficient multiplying an ordered sequence of
// ladder operators. Term carries no simplification logic of its own —
// combining (anti)commutation relations into a canonical form is the
// normal-orderer's job (see package normalorder).
package term

import (
	"fmt"
	"strings"

	"latticed/operator"
)

// Term is a complex coefficient times an ordered word of operators. The
// zero value is the scalar term 0 (empty operator word, zero
// coefficient); callers should use New for anything but a placeholder.
//
// Term is a value type; all operations return a new Term rather than
// mutating the receiver.
type Term struct {
	Coefficient complex128
	Operators   []operator.Operator
}

// New constructs a Term from a coefficient and an operator word. The
// slice is copied so the caller may reuse or mutate their own slice
// afterwards.
func New(coefficient complex128, ops []operator.Operator) Term {
	return Term{Coefficient: coefficient, Operators: append([]operator.Operator(nil), ops...)}
}

// Scalar returns the scalar Term c (empty operator word).
func Scalar(c complex128) Term {
	return Term{Coefficient: c}
}

// Product concatenates the operator words of t and other (t's word
// first) and multiplies their coefficients.
func (t Term) Product(other Term) Term {
	ops := make([]operator.Operator, 0, len(t.Operators)+len(other.Operators))
	ops = append(ops, t.Operators...)
	ops = append(ops, other.Operators...)
	return Term{Coefficient: t.Coefficient * other.Coefficient, Operators: ops}
}

// ProductOperators appends ops to t's operator word, leaving the
// coefficient unchanged.
func (t Term) ProductOperators(ops []operator.Operator) Term {
	word := make([]operator.Operator, 0, len(t.Operators)+len(ops))
	word = append(word, t.Operators...)
	word = append(word, ops...)
	return Term{Coefficient: t.Coefficient, Operators: word}
}

// ProductScalar scales t's coefficient by c.
func (t Term) ProductScalar(c complex128) Term {
	return Term{Coefficient: t.Coefficient * c, Operators: t.Operators}
}

// Adjoint returns the Hermitian conjugate of t: the operator word is
// reversed and each operator is adjointed, and the coefficient is
// conjugated.
func (t Term) Adjoint() Term {
	n := len(t.Operators)
	adj := make([]operator.Operator, n)
	for i, op := range t.Operators {
		adj[n-1-i] = op.Adjoint()
	}
	return Term{Coefficient: complex(real(t.Coefficient), -imag(t.Coefficient)), Operators: adj}
}

// Negate returns -t.
func (t Term) Negate() Term {
	return Term{Coefficient: -t.Coefficient, Operators: t.Operators}
}

// Equal reports whether t and other have the same coefficient and
// operator word.
func (t Term) Equal(other Term) bool {
	if t.Coefficient != other.Coefficient || len(t.Operators) != len(other.Operators) {
		return false
	}
	for i, op := range t.Operators {
		if !op.Equal(other.Operators[i]) {
			return false
		}
	}
	return true
}

func (t Term) String() string {
	parts := make([]string, len(t.Operators))
	for i, op := range t.Operators {
		parts[i] = op.String()
	}
	return fmt.Sprintf("%v * [%s]", t.Coefficient, strings.Join(parts, " "))
}
