// Package expr implements Expression, a formal sum of Terms in which
// terms sharing the same operator word are combined. Expression performs
// no simplification via (anti)commutation relations — that rewriting is
// the job of package normalorder. Expression only implements the free
// monomial algebra: addition, scalar and term-wise multiplication,
// adjoint, and pruning of numerically negligible entries.
package expr

import (
	"iter"

	"gonum.org/v1/gonum/cmplxs"

	"latticed/operator"
	"latticed/term"
)

// entry is the value half of the operator-word -> coefficient mapping:
// it keeps the actual ordered operator slice alongside the accumulated
// coefficient so Terms can hand back the sequence, not just its key.
type entry struct {
	ops  []operator.Operator
	coef complex128
}

// Expression is a mapping from distinct operator word to accumulated
// complex coefficient. The zero value is the empty expression (the
// additive identity).
//
// The map is keyed on an exact byte encoding of the operator word (see
// wordKey), so two Terms collide in the map if and only if their
// operator words are equal — there is no hash-collision case to handle
// separately, unlike a narrower rolling-hash key.
type Expression struct {
	terms map[string]entry
}

// New builds an Expression from a list of terms, accumulating
// coefficients of terms that share an operator word.
func New(terms ...term.Term) Expression {
	e := Expression{}
	for _, t := range terms {
		e.Insert(t)
	}
	return e
}

func (e *Expression) ensure() {
	if e.terms == nil {
		e.terms = make(map[string]entry)
	}
}

// Insert accumulates t's coefficient into the entry for t's operator
// word, creating the entry if absent.
func (e *Expression) Insert(t term.Term) {
	e.ensure()
	key := wordKey(t.Operators)
	cur, ok := e.terms[key]
	if !ok {
		e.terms[key] = entry{ops: append([]operator.Operator(nil), t.Operators...), coef: t.Coefficient}
		return
	}
	cur.coef += t.Coefficient
	e.terms[key] = cur
}

// InsertExpression accumulates every term of other into e.
func (e *Expression) InsertExpression(other Expression) {
	for ops, c := range other.Terms() {
		e.Insert(term.New(c, ops))
	}
}

// InsertScalar accumulates a bare scalar (the empty operator word) into
// e, e.g. the "1" produced by a fermionic contraction.
func (e *Expression) InsertScalar(c complex128) {
	e.Insert(term.Scalar(c))
}

// Len returns the number of distinct operator words currently held,
// including any that have collapsed to a zero coefficient (see Prune).
func (e Expression) Len() int { return len(e.terms) }

// Terms returns an iterator over the expression's (operator word,
// coefficient) pairs, in unspecified order.
func (e Expression) Terms() iter.Seq2[[]operator.Operator, complex128] {
	return func(yield func([]operator.Operator, complex128) bool) {
		for _, v := range e.terms {
			if !yield(v.ops, v.coef) {
				return
			}
		}
	}
}

// Coefficient returns the accumulated coefficient for the given operator
// word, or 0 if the word is absent.
func (e Expression) Coefficient(ops []operator.Operator) complex128 {
	v, ok := e.terms[wordKey(ops)]
	if !ok {
		return 0
	}
	return v.coef
}

// Add returns e + other.
func (e Expression) Add(other Expression) Expression {
	result := e.clone()
	result.InsertExpression(other)
	return result
}

// AddTerm returns e + t.
func (e Expression) AddTerm(t term.Term) Expression {
	result := e.clone()
	result.Insert(t)
	return result
}

// AddScalar returns e + c (c interpreted as a scalar term).
func (e Expression) AddScalar(c complex128) Expression {
	result := e.clone()
	result.InsertScalar(c)
	return result
}

// Sub returns e - other.
func (e Expression) Sub(other Expression) Expression {
	return e.Add(other.Negate())
}

// Negate returns -e.
func (e Expression) Negate() Expression {
	result := Expression{terms: make(map[string]entry, len(e.terms))}
	for key, v := range e.terms {
		result.terms[key] = entry{ops: v.ops, coef: -v.coef}
	}
	return result
}

// MulScalar returns c*e.
func (e Expression) MulScalar(c complex128) Expression {
	result := Expression{terms: make(map[string]entry, len(e.terms))}
	for key, v := range e.terms {
		result.terms[key] = entry{ops: v.ops, coef: c * v.coef}
	}
	return result
}

// MulTerm returns e*t, i.e. every term of e right-multiplied by t.
func (e Expression) MulTerm(t term.Term) Expression {
	result := Expression{}
	for ops, c := range e.Terms() {
		result.Insert(term.New(c, ops).Product(t))
	}
	return result
}

// MulOperators right-multiplies every term of e by the operator word
// ops, leaving coefficients unchanged. This is the building block
// compute_matrix_elements uses to apply H to a basis ket: the ket is an
// all-creation operator word appended to the right of every term in H.
func (e Expression) MulOperators(ops []operator.Operator) Expression {
	result := Expression{}
	for wordOps, c := range e.Terms() {
		result.Insert(term.New(c, wordOps).ProductOperators(ops))
	}
	return result
}

// Mul returns e*other, the full distributive product over both sets of
// terms: O(|e|*|other|) term pairs, each an O(1) amortized map
// insertion.
func (e Expression) Mul(other Expression) Expression {
	result := Expression{}
	for opsA, cA := range e.Terms() {
		for opsB, cB := range other.Terms() {
			result.Insert(term.New(cA, opsA).Product(term.New(cB, opsB)))
		}
	}
	return result
}

// Adjoint returns the Hermitian conjugate of e: every term is
// individually adjointed (word reversed and each operator adjointed,
// coefficient conjugated) and the results are summed.
func (e Expression) Adjoint() Expression {
	result := Expression{}
	for ops, c := range e.Terms() {
		result.Insert(term.New(c, ops).Adjoint())
	}
	return result
}

// Prune removes every entry whose coefficient has magnitude below eps,
// returning a new Expression. Coefficients are gathered once and their
// magnitudes computed in bulk via cmplxs.Abs, mirroring how
// gonum.org/v1/gonum/cmplxs batches elementwise work over []complex128
// rather than looping cmplx.Abs by hand.
func (e Expression) Prune(eps float64) Expression {
	keys := make([]string, 0, len(e.terms))
	coefs := make([]complex128, 0, len(e.terms))
	for key, v := range e.terms {
		keys = append(keys, key)
		coefs = append(coefs, v.coef)
	}
	mags := make([]float64, len(coefs))
	cmplxs.Abs(mags, coefs)

	result := Expression{terms: make(map[string]entry, len(e.terms))}
	for i, key := range keys {
		if mags[i] < eps {
			continue
		}
		result.terms[key] = e.terms[key]
	}
	return result
}

// Equal reports whether e and other hold the same set of operator words
// with exactly equal coefficients.
func (e Expression) Equal(other Expression) bool {
	if len(e.terms) != len(other.terms) {
		return false
	}
	for key, v := range e.terms {
		ov, ok := other.terms[key]
		if !ok || ov.coef != v.coef {
			return false
		}
	}
	return true
}

func (e Expression) clone() Expression {
	result := Expression{terms: make(map[string]entry, len(e.terms))}
	for key, v := range e.terms {
		result.terms[key] = v
	}
	return result
}

// wordKey encodes an operator word as a string of its packed uint16
// values, two bytes each, big-endian. Two words compare equal as Go map
// keys if and only if their operator sequences are equal and in the same
// order, so map lookups already give the exact-sequence equality the
// spec requires without a secondary collision check.
func wordKey(ops []operator.Operator) string {
	buf := make([]byte, len(ops)*2)
	for i, op := range ops {
		raw := op.Raw()
		buf[2*i] = byte(raw >> 8)
		buf[2*i+1] = byte(raw)
	}
	return string(buf)
}
