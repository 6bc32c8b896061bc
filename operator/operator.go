// Package operator defines the ladder operators (creation and
// annihilation) that make up the words of the second-quantized operator
// algebra used throughout latticed.
//
// An Operator is packed into a single uint16: the lowest bit carries the
// type (creation vs annihilation), the next two bits carry statistics and
// spin, and the remaining bits carry the orbital index. identifier is the
// packed value with the type bit masked out, so a creation operator and
// its adjoint annihilation operator on the same mode always share an
// identifier — this is the pairing key the normal-orderer contracts on.
package operator

import (
	"fmt"
)

// Type distinguishes a creation operator from an annihilation operator.
type Type uint8

const (
	Creation Type = iota
	Annihilation
)

func (t Type) String() string {
	if t == Creation {
		return "creation"
	}
	return "annihilation"
}

// Statistics distinguishes bosonic from fermionic modes.
type Statistics uint8

const (
	Boson Statistics = iota
	Fermion
)

func (s Statistics) String() string {
	if s == Boson {
		return "boson"
	}
	return "fermion"
}

// Spin is the two-valued spin label used by spin-1/2 and spinless (via a
// single branch) models.
type Spin uint8

const (
	Up Spin = iota
	Down
)

func (s Spin) String() string {
	if s == Up {
		return "up"
	}
	return "down"
}

const (
	typeBits = 1
	statBits = 1
	spinBits = 1

	typeShift = 0
	statShift = typeShift + typeBits
	spinShift = statShift + statBits
	orbShift  = spinShift + spinBits

	typeMask = uint16(1)<<typeBits - 1
	statMask = uint16(1)<<statBits - 1
	spinMask = uint16(1)<<spinBits - 1

	// MaxOrbital is the exclusive upper bound on orbital indices
	// representable by the packed encoding; it comfortably exceeds the
	// spec's floor of 32.
	MaxOrbital = 1 << (16 - orbShift)
)

// Operator is a single ladder operator: a creation or annihilation
// operator for a given statistics, spin, and orbital.
//
// Operator is a small value type; copy it freely.
type Operator struct {
	packed uint16
}

// New constructs an Operator from its four orthogonal attributes. It
// panics if orbital is outside [0, MaxOrbital).
func New(typ Type, stats Statistics, spin Spin, orbital int) Operator {
	if orbital < 0 || orbital >= MaxOrbital {
		panic(ErrOrbitalRange)
	}
	packed := uint16(typ)&typeMask<<typeShift |
		uint16(stats)&statMask<<statShift |
		uint16(spin)&spinMask<<spinShift |
		uint16(orbital)<<orbShift
	return Operator{packed: packed}
}

// Create constructs a creation operator c†_{spin,orbital}.
func Create(stats Statistics, spin Spin, orbital int) Operator {
	return New(Creation, stats, spin, orbital)
}

// Annihilate constructs an annihilation operator c_{spin,orbital}.
func Annihilate(stats Statistics, spin Spin, orbital int) Operator {
	return New(Annihilation, stats, spin, orbital)
}

// Type returns the operator's creation/annihilation type.
func (o Operator) Type() Type { return Type(o.packed >> typeShift & typeMask) }

// Statistics returns the operator's statistics.
func (o Operator) Statistics() Statistics { return Statistics(o.packed >> statShift & statMask) }

// Spin returns the operator's spin.
func (o Operator) Spin() Spin { return Spin(o.packed >> spinShift & spinMask) }

// Orbital returns the operator's orbital index.
func (o Operator) Orbital() int { return int(o.packed >> orbShift) }

// IsFermion reports whether o obeys fermionic statistics.
func (o Operator) IsFermion() bool { return o.Statistics() == Fermion }

// IsBoson reports whether o obeys bosonic statistics.
func (o Operator) IsBoson() bool { return o.Statistics() == Boson }

// IsCreation reports whether o is a creation operator.
func (o Operator) IsCreation() bool { return o.Type() == Creation }

// IsAnnihilation reports whether o is an annihilation operator.
func (o Operator) IsAnnihilation() bool { return o.Type() == Annihilation }

// Identifier is the packed encoding with the type bit masked out: two
// operators that act on the same mode (same statistics, spin, and
// orbital) share an identifier regardless of type.
func (o Operator) Identifier() uint16 { return o.packed &^ (typeMask << typeShift) }

// Raw returns the packed representation, primarily for use as a map/hash
// key component.
func (o Operator) Raw() uint16 { return o.packed }

// Adjoint returns the Hermitian conjugate of o, which flips only the
// type: creation becomes annihilation and vice versa.
func (o Operator) Adjoint() Operator {
	return Operator{packed: o.packed ^ typeMask<<typeShift}
}

// Equal reports whether o and other represent the same operator.
func (o Operator) Equal(other Operator) bool { return o.packed == other.packed }

// Less defines the total order required by the spec: every creation
// operator precedes every annihilation operator, and operators of the
// same type are ordered by ascending identifier.
func (o Operator) Less(other Operator) bool {
	if o.Type() != other.Type() {
		return o.Type() == Creation
	}
	return o.Identifier() < other.Identifier()
}

// SameMode reports whether o and other act on the same mode, i.e. share
// an identifier (equal statistics, spin, and orbital, regardless of
// type).
func (o Operator) SameMode(other Operator) bool { return o.Identifier() == other.Identifier() }

func (o Operator) String() string {
	glyph := "c"
	if o.IsBoson() {
		glyph = "b"
	}
	dagger := ""
	if o.IsCreation() {
		dagger = "†"
	}
	spin := "↑"
	if o.Spin() == Down {
		spin = "↓"
	}
	return fmt.Sprintf("%s%s(%s,%d)", glyph, dagger, spin, o.Orbital())
}
