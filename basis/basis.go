// Package basis builds and indexes the many-body Fock-state basis that
// the Hamiltonian is assembled against: a sorted list of distinct
// creation-operator words (basis kets), generated by depth-first
// enumeration and looked up by binary search.
package basis

import (
	"sort"
	"strings"

	"github.com/golang/glog"
	"gonum.org/v1/gonum/stat/combin"

	"latticed/operator"
)

// Element is a single basis ket: a creation-operator word in canonical
// (sorted, duplicate-free for fermions) order.
type Element []operator.Operator

// String renders e as its ket notation, e.g. "[c†(↑,0) c†(↓,1)]",
// joining each operator's own terse String(). This is an ordinary
// fmt.Stringer, not the out-of-scope ket pretty-printer spec.md §1
// excludes: it carries no formatting options and performs no layout
// beyond what Operator.String already produces.
func (e Element) String() string {
	parts := make([]string, len(e))
	for i, op := range e {
		parts[i] = op.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// Filter is a predicate over a candidate basis element. The zero Filter
// (nil) accepts everything.
type Filter func(Element) bool

// Basis is an immutable, sorted collection of basis elements supporting
// O(log n) membership and index lookup.
//
// A Basis is built either by NewFermionic (particle-number-conserving,
// optionally excluding double occupancy) or NewGeneric (a truncated
// bosonic Fock space of up to maxParticles total excitations). Both
// constructors accept an optional Filter applied at every accepted
// element.
type Basis struct {
	orbitals  int
	particles int
	elements  []Element
}

// Orbitals returns the number of single-particle orbitals the basis was
// built over.
func (b Basis) Orbitals() int { return b.orbitals }

// Particles returns the particle number the basis was built for
// (fermionic case) or the truncation depth (generic case).
func (b Basis) Particles() int { return b.particles }

// Size returns the number of basis elements.
func (b Basis) Size() int { return len(b.elements) }

// Element returns the i'th basis element in canonical order.
func (b Basis) Element(i int) Element { return b.elements[i] }

// Elements returns the full sorted list of basis elements. Callers must
// not mutate the returned slice or its contents.
func (b Basis) Elements() []Element { return b.elements }

// Contains reports whether word is a basis element.
func (b Basis) Contains(word Element) bool {
	_, ok := b.Index(word)
	return ok
}

// Index returns the position of word in the basis and true, or (0,
// false) if word is not a basis element. Index never panics: a lookup
// miss is reported through the boolean, matching contains()'s contract.
func (b Basis) Index(word Element) (int, bool) {
	i := sort.Search(len(b.elements), func(i int) bool {
		return compareWords(b.elements[i], word) >= 0
	})
	if i < len(b.elements) && compareWords(b.elements[i], word) == 0 {
		return i, true
	}
	return 0, false
}

// Equal reports whether two bases have the same orbitals, particles, and
// element set.
func (b Basis) Equal(other Basis) bool {
	if b.orbitals != other.orbitals || b.particles != other.particles || len(b.elements) != len(other.elements) {
		return false
	}
	for i, e := range b.elements {
		if compareWords(e, other.elements[i]) != 0 {
			return false
		}
	}
	return true
}

// NewFermionic builds the particle-number-conserving fermionic basis of
// orbitals orbitals and particles particles. If allowDoubleOccupancy is
// false, no two operators in an accepted word may share the same
// orbital (both spins occupied), which is the mapping used to realize a
// spin-1/2 subspace inside the fermionic Fock space (e.g. Heisenberg
// chains built atop a Hubbard basis). filter may be nil to accept every
// word of the right particle number.
func NewFermionic(orbitals, particles int, allowDoubleOccupancy bool, filter Filter) Basis {
	if particles > 2*orbitals {
		panic(ErrParticleCount)
	}
	b := Basis{orbitals: orbitals, particles: particles}
	b.elements = make([]Element, 0, combin.Binomial(2*orbitals, particles))

	var current []operator.Operator
	var generate func(firstOrbital, depth int)
	generate = func(firstOrbital, depth int) {
		if depth == particles {
			if filter == nil || filter(current) {
				word := make(Element, len(current))
				copy(word, current)
				b.elements = append(b.elements, word)
			}
			return
		}
		for orb := firstOrbital; orb < orbitals; orb++ {
			for _, spin := range [...]operator.Spin{operator.Up, operator.Down} {
				if !canExtendFermionic(current, orb, spin, allowDoubleOccupancy) {
					continue
				}
				current = append(current, operator.Create(operator.Fermion, spin, orb))
				generate(orb, depth+1)
				current = current[:len(current)-1]
			}
		}
	}
	generate(0, 0)

	sort.Slice(b.elements, func(i, j int) bool { return compareWords(b.elements[i], b.elements[j]) < 0 })
	if glog.V(1) {
		glog.Infof("fermionic basis: orbitals=%d particles=%d size=%d", orbitals, particles, len(b.elements))
	}
	if len(b.elements) == 0 {
		glog.Errorf("fermionic basis: filter rejected every generated element (orbitals=%d particles=%d)", orbitals, particles)
	}
	return b
}

// canExtendFermionic reports whether appending a creation operator of
// the given orbital and spin keeps current in canonical sorted order and
// respects the double-occupancy constraint.
func canExtendFermionic(current []operator.Operator, orb int, spin operator.Spin, allowDoubleOccupancy bool) bool {
	if len(current) == 0 {
		return true
	}
	last := current[len(current)-1]
	if last.Orbital() == orb {
		if spin <= last.Spin() {
			return false
		}
		if !allowDoubleOccupancy {
			return false
		}
		return true
	}
	return last.Orbital() < orb
}

// NewGeneric builds a truncated bosonic Fock-space basis over orbitals
// orbitals: every word of total occupation 0..maxParticles whose
// operators are weakly increasing by orbital (so repeated occupation of
// a single orbital is permitted, unlike the fermionic case), restricted
// by filter if non-nil. Every prefix depth, not only the leaves, is a
// candidate basis element, mirroring a Fock space truncated by total
// particle number rather than fixed at exactly maxParticles.
func NewGeneric(orbitals, maxParticles int, filter Filter) Basis {
	b := Basis{orbitals: orbitals, particles: maxParticles}

	var current []operator.Operator
	var generate func(firstOrbital, depth int)
	generate = func(firstOrbital, depth int) {
		if filter == nil || filter(current) {
			word := make(Element, len(current))
			copy(word, current)
			b.elements = append(b.elements, word)
		}
		if depth == maxParticles {
			return
		}
		for orb := firstOrbital; orb < orbitals; orb++ {
			if len(current) > 0 && current[len(current)-1].Orbital() > orb {
				continue
			}
			current = append(current, operator.Create(operator.Boson, operator.Up, orb))
			generate(orb, depth+1)
			current = current[:len(current)-1]
		}
	}
	generate(0, 0)

	sort.Slice(b.elements, func(i, j int) bool { return compareWords(b.elements[i], b.elements[j]) < 0 })
	if glog.V(1) {
		glog.Infof("generic basis: orbitals=%d maxParticles=%d size=%d", orbitals, maxParticles, len(b.elements))
	}
	if len(b.elements) == 0 {
		glog.Errorf("generic basis: filter rejected every generated element (orbitals=%d maxParticles=%d)", orbitals, maxParticles)
	}
	return b
}

// compareWords totally orders two basis elements: lexicographically by
// operator.Less, with a shorter word ordered before a longer one that
// shares its full prefix.
func compareWords(a, b Element) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i].Less(b[i]):
			return -1
		case b[i].Less(a[i]):
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}
