package normalorder

import "latticed/expr"

// Commute returns the normal-ordered commutator [a, b] = a*b - b*a.
func Commute(a, b expr.Expression) expr.Expression {
	return Order(a.Mul(b).Sub(b.Mul(a)))
}

// Anticommute returns the normal-ordered anticommutator {a, b} = a*b + b*a.
func Anticommute(a, b expr.Expression) expr.Expression {
	return Order(a.Mul(b).Add(b.Mul(a)))
}
