// Package normalorder rewrites arbitrary operator words into canonical
// normal form: all creation operators to the left of all annihilation
// operators, creations ascending by identifier, annihilations descending
// by identifier, with every (anti)commutation sign and contraction
// folded into the coefficient.
//
// The rewriter is a LIFO worklist of (word, phase) pairs that lives
// entirely on the stack of Order: nothing about a call to Order is
// retained afterwards, so the same Expression can be normal-ordered
// concurrently from multiple goroutines.
package normalorder

import (
	"latticed/expr"
	"latticed/operator"
	"latticed/term"
)

// workItem is a word awaiting sorting, together with the fermionic sign
// parity accumulated so far (even phase => +1, odd phase => -1).
type workItem struct {
	word  []operator.Operator
	phase int
}

// Order normal-orders every term of e and returns the resulting
// expression. Order is idempotent: Order(Order(e)) == Order(e).
func Order(e expr.Expression) expr.Expression {
	out := expr.Expression{}
	for word, coeff := range e.Terms() {
		orderWord(word, coeff, &out)
	}
	return out
}

// OrderTerm normal-orders a single Term.
func OrderTerm(t term.Term) expr.Expression {
	out := expr.Expression{}
	orderWord(t.Operators, t.Coefficient, &out)
	return out
}

func orderWord(word []operator.Operator, coeff complex128, out *expr.Expression) {
	stack := []workItem{{word: append([]operator.Operator(nil), word...), phase: 0}}
	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(item.word) < 2 {
			out.Insert(term.New(parity(coeff, item.phase), item.word))
			continue
		}

		sorted, phase, children, vanished := sortWord(item.word, item.phase)
		stack = append(stack, children...)
		if vanished {
			// Two fermionic operators of the same type on the same mode
			// (c†_i c†_i or c_i c_i) ended up adjacent: the rewritten word
			// squares a fermionic operator to zero by the exclusion
			// principle, so it is not emitted. Contractions queued from it
			// before that point are separate terms and are still processed.
			continue
		}
		out.Insert(term.New(parity(coeff, phase), sorted))
	}
}

// sortWord runs the insertion-sort driver over word: outer index i from
// 1 upward, inner index j bubbling the operator at i leftward,
// rewriting each adjacent pair per the canonical (anti)commutation
// rules. Every creation-annihilation contraction on a same-mode
// adjacency enqueues a shorter child word carrying the phase at the
// moment of contraction. vanished reports that the rewritten word brought
// two fermionic operators of equal type on the same mode next to each
// other, which makes that word zero; the children queued up to that point
// are returned all the same, since they are separate terms.
func sortWord(word []operator.Operator, phase int) (sorted []operator.Operator, newPhase int, children []workItem, vanished bool) {
	w := append([]operator.Operator(nil), word...)

	for i := 1; i < len(w); i++ {
		for j := i; j > 0; j-- {
			op1, op2 := w[j-1], w[j]

			switch {
			case op1.IsCreation() && op2.IsCreation() && op1.SameMode(op2) && op1.IsFermion():
				return nil, 0, children, true

			case op1.IsAnnihilation() && op2.IsAnnihilation() && op1.SameMode(op2) && op1.IsFermion():
				return nil, 0, children, true

			case op1.IsCreation() && op2.IsCreation() && op1.Identifier() > op2.Identifier():
				w[j-1], w[j] = op2, op1
				if op1.IsFermion() && op2.IsFermion() {
					phase++
				}

			case op1.IsAnnihilation() && op2.IsAnnihilation() && op1.Identifier() < op2.Identifier():
				w[j-1], w[j] = op2, op1
				if op1.IsFermion() && op2.IsFermion() {
					phase++
				}

			case op1.IsAnnihilation() && op2.IsCreation():
				if op1.SameMode(op2) {
					child := make([]operator.Operator, 0, len(w)-2)
					child = append(child, w[:j-1]...)
					child = append(child, w[j+1:]...)
					children = append(children, workItem{word: child, phase: phase})
				}
				w[j-1], w[j] = op2, op1
				if op1.IsFermion() && op2.IsFermion() {
					phase++
				}

			default:
				// Creation-then-annihilation: already in relative order.
			}
		}
	}

	return w, phase, children, false
}

func parity(coeff complex128, phase int) complex128 {
	if phase%2 == 0 {
		return coeff
	}
	return -coeff
}
