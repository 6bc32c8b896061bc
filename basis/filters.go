package basis

import "latticed/operator"

// NoDoubleOccupancy rejects any element with two operators on the same
// orbital, regardless of spin. Equivalent to passing
// allowDoubleOccupancy=false to NewFermionic, provided as a standalone
// Filter so it composes with other predicates via And.
func NoDoubleOccupancy(word Element) bool {
	for i := 1; i < len(word); i++ {
		if word[i-1].Orbital() == word[i].Orbital() {
			return false
		}
	}
	return true
}

// SpinCount returns a Filter accepting only words with exactly up
// creation operators of Spin Up and down of Spin Down, i.e. a fixed
// particle-number-per-spin sector.
func SpinCount(up, down int) Filter {
	return func(word Element) bool {
		var countUp, countDown int
		for _, op := range word {
			if op.Spin() == operator.Up {
				countUp++
			} else {
				countDown++
			}
		}
		return countUp == up && countDown == down
	}
}

// TotalSz returns a Filter accepting only words whose net spin
// (count(Up) - count(Down)) equals twoSz, expressed in units of 1/2 (so
// twoSz=0 is the Sz=0 sector, twoSz=2 is Sz=+1, etc.)
func TotalSz(twoSz int) Filter {
	return func(word Element) bool {
		var net int
		for _, op := range word {
			if op.Spin() == operator.Up {
				net++
			} else {
				net--
			}
		}
		return net == twoSz
	}
}

// TranslationRepresentative returns a Filter accepting only words that
// are the lexicographically smallest member of their orbit under
// repeated application of translate, a permutation of orbital indices
// describing one lattice translation. This selects one representative
// Fock state per translation orbit; it is the standard building block
// for constructing symmetry-adapted (momentum-sector) bases, though the
// actual momentum eigenstate is the appropriate phased superposition
// over the orbit, not the representative alone.
func TranslationRepresentative(translate func(orbital int) int) Filter {
	return func(word Element) bool {
		if len(word) == 0 {
			return true
		}
		current := word
		for {
			next := translateWord(current, translate)
			if compareWords(next, word) < 0 {
				return false
			}
			if compareWords(next, word) == 0 {
				return true
			}
			current = next
		}
	}
}

func translateWord(word Element, translate func(int) int) Element {
	out := make(Element, len(word))
	for i, op := range word {
		out[i] = operator.Create(op.Statistics(), op.Spin(), translate(op.Orbital()))
	}
	sortOperatorsInPlace(out)
	return out
}

func sortOperatorsInPlace(ops []operator.Operator) {
	for i := 1; i < len(ops); i++ {
		for j := i; j > 0 && ops[j].Less(ops[j-1]); j-- {
			ops[j-1], ops[j] = ops[j], ops[j-1]
		}
	}
}

// And returns a Filter accepting a word only if every filter in fs
// accepts it. And with no arguments accepts everything.
func And(fs ...Filter) Filter {
	return func(word Element) bool {
		for _, f := range fs {
			if !f(word) {
				return false
			}
		}
		return true
	}
}
