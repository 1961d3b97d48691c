// value.go
//
// The solid value model: a number represented as a prefix of *known*
// digits, a *gap* of unknown magnitude, and a *terminal* describing the
// digits far beyond the prefix. Every value carries the computational
// barrier that limits its precision and a fixed-point confidence score.
//
// Values are immutable once constructed; every operation in this package
// produces a new value. The only mutable field is the reference count,
// which uses atomic ops so values can be shared read-only across
// goroutines.
//
// Public surface:
//   - Barrier / TerminalKind / Terminal: the closed kind enumerations.
//   - SolidValue: the value itself, plus constructors New, NewExact,
//     NewInfinity, NewUndefined, Naturals.
//   - Retain/Release for shared ownership at host boundaries.
//
// The arithmetic over these values lives in arith.go, the GGGX analysis
// pipeline that produces them in gggx.go.

package solid

import (
	"math"
	"strings"
	"sync/atomic"
)

// Barrier names the reason further precision is unattainable.
type Barrier uint8

const (
	BarrierExact Barrier = iota
	BarrierQuantum
	BarrierEnergy
	BarrierStorage
	BarrierTemporal
	BarrierComputational
	BarrierInfinity
	BarrierUndefined
)

// barrierChars is the wire/literal encoding agreed with the parser and
// the code generator: q,e,s,t,c,i,u,x.
var barrierChars = map[Barrier]byte{
	BarrierQuantum:       'q',
	BarrierEnergy:        'e',
	BarrierStorage:       's',
	BarrierTemporal:      't',
	BarrierComputational: 'c',
	BarrierInfinity:      'i',
	BarrierUndefined:     'u',
	BarrierExact:         'x',
}

func (b Barrier) Char() byte { return barrierChars[b] }

func (b Barrier) String() string {
	switch b {
	case BarrierExact:
		return "exact"
	case BarrierQuantum:
		return "quantum"
	case BarrierEnergy:
		return "energy"
	case BarrierStorage:
		return "storage"
	case BarrierTemporal:
		return "temporal"
	case BarrierComputational:
		return "computational"
	case BarrierInfinity:
		return "infinity"
	case BarrierUndefined:
		return "undefined"
	}
	return "unknown"
}

// ParseBarrierChar maps the single-character encoding back to a Barrier.
func ParseBarrierChar(c byte) (Barrier, bool) {
	switch c {
	case 'q':
		return BarrierQuantum, true
	case 'e':
		return BarrierEnergy, true
	case 's':
		return BarrierStorage, true
	case 't':
		return BarrierTemporal, true
	case 'c':
		return BarrierComputational, true
	case 'i':
		return BarrierInfinity, true
	case 'u':
		return BarrierUndefined, true
	case 'x':
		return BarrierExact, true
	}
	return BarrierExact, false
}

// barrierPriority orders barriers for combination. Undefined and
// Infinity absorb everything; among the finite barriers the order is
// Quantum > Energy > Temporal > Computational > Storage, with Exact at
// the bottom. Combination by max-priority is associative.
func barrierPriority(b Barrier) int {
	switch b {
	case BarrierUndefined:
		return 7
	case BarrierInfinity:
		return 6
	case BarrierQuantum:
		return 5
	case BarrierEnergy:
		return 4
	case BarrierTemporal:
		return 3
	case BarrierComputational:
		return 2
	case BarrierStorage:
		return 1
	}
	return 0
}

// CombineBarriers resolves the barrier of a value produced from two
// operands.
func CombineBarriers(a, b Barrier) Barrier {
	if barrierPriority(a) >= barrierPriority(b) {
		return a
	}
	return b
}

// TerminalKind tags the terminal variant.
type TerminalKind uint8

const (
	TermDigits TerminalKind = iota
	TermUndefined
	TermSuperposition
)

// MaxTerminalDigits bounds the digit form of a terminal. Longer inputs
// are cut to this length; the cut is part of the documented behavior of
// terminal concatenation, not an error.
const MaxTerminalDigits = 16

// Terminal describes a value's asymptotic tail: concrete digits, an
// explicit no-value marker, or a superposition ("could be any digit").
type Terminal struct {
	Kind   TerminalKind
	Digits string
}

// TerminalDigits builds a digit terminal, dropping any non-digit bytes
// and capping at MaxTerminalDigits.
func TerminalDigits(s string) Terminal {
	var b strings.Builder
	for i := 0; i < len(s) && b.Len() < MaxTerminalDigits; i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return Terminal{Kind: TermDigits, Digits: b.String()}
}

func TerminalUndefined() Terminal     { return Terminal{Kind: TermUndefined} }
func TerminalSuperposition() Terminal { return Terminal{Kind: TermSuperposition} }

func (t Terminal) String() string {
	switch t.Kind {
	case TermUndefined:
		return "∅"
	case TermSuperposition:
		return "{*}"
	}
	return t.Digits
}

// GapInfinite is the reserved gap-magnitude sentinel meaning the gap is
// unbounded. Used for true infinities and for results whose gap
// saturated during propagation.
const GapInfinite = math.MaxUint64

// Confidence bounds, fixed-point ×1000.
const (
	ConfidenceMax = 1000
	ConfidenceMin = 0
)

// UndefinedReason classifies why a value is logically undefined.
type UndefinedReason uint8

const (
	ReasonNone UndefinedReason = iota
	ReasonOperandUndefined
	ReasonDivisionByZero
	ReasonZeroPowZero
	ReasonNegativePowFraction
	ReasonZeroTimesInfinity
)

func (r UndefinedReason) String() string {
	switch r {
	case ReasonOperandUndefined:
		return "operand undefined"
	case ReasonDivisionByZero:
		return "division by zero"
	case ReasonZeroPowZero:
		return "zero to the power zero"
	case ReasonNegativePowFraction:
		return "negative base with non-integer exponent"
	case ReasonZeroTimesInfinity:
		return "zero times infinity"
	}
	return "none"
}

// UndefinedInfo travels inside an undefined value: the reason, free-text
// detail, and the operands that produced it. No side tables, no pointer
// correlation.
type UndefinedInfo struct {
	Reason UndefinedReason
	Detail string
	Left   *SolidValue
	Right  *SolidValue
}

// SolidValue is the composite representation produced by GGGX analysis
// and combined by the arithmetic algebra. All fields except the
// reference count are write-once at construction.
type SolidValue struct {
	// Known holds the determined leading digits, possibly with a
	// leading sign and one decimal point. Special renderings: "∞",
	// "-∞" for infinities, "ℕ" for the all-naturals result.
	Known string

	Barrier Barrier

	// GapMagnitude is 10^n for "10^n unknown digits follow";
	// GapInfinite means the gap is unbounded.
	GapMagnitude uint64

	// Confidence is fixed-point ×1000, always in [0, 1000].
	Confidence int

	Terminal Terminal

	// Undef is non-nil iff Barrier == BarrierUndefined.
	Undef *UndefinedInfo

	refs int64
}

// New constructs a value, normalizing the model invariants:
// confidence is clamped to [0,1000]; an Exact value has gap 0 and
// confidence 1000; an Infinity value has an unbounded gap.
func New(known string, barrier Barrier, gap uint64, confidence int, term Terminal) *SolidValue {
	if confidence < ConfidenceMin {
		confidence = ConfidenceMin
	}
	if confidence > ConfidenceMax {
		confidence = ConfidenceMax
	}
	switch barrier {
	case BarrierExact:
		gap = 0
		confidence = ConfidenceMax
	case BarrierInfinity:
		gap = GapInfinite
	}
	return &SolidValue{
		Known:        known,
		Barrier:      barrier,
		GapMagnitude: gap,
		Confidence:   confidence,
		Terminal:     term,
		refs:         1,
	}
}

// NewExact wraps a plain digit string (sign and one decimal point
// allowed) as a barrier-free value.
func NewExact(known string) *SolidValue {
	return New(known, BarrierExact, 0, ConfidenceMax, TerminalDigits(""))
}

// NewInfinity returns a signed infinity. Infinite values carry an
// unbounded gap and an undefined terminal unless the caller attaches
// one via NewInfinityWithTerminal.
func NewInfinity(negative bool) *SolidValue {
	known := "∞"
	if negative {
		known = "-∞"
	}
	return New(known, BarrierInfinity, GapInfinite, ConfidenceMax, TerminalUndefined())
}

// NewInfinityWithTerminal builds an infinity whose tail behavior is
// described by term; the ∞÷∞ procedure reads it.
func NewInfinityWithTerminal(negative bool, term Terminal) *SolidValue {
	v := NewInfinity(negative)
	v.Terminal = term
	return v
}

// NewUndefined builds the undefined value for a failed operation. The
// operands are retained so the caller can inspect what went wrong.
func NewUndefined(reason UndefinedReason, detail string, left, right *SolidValue) *SolidValue {
	if left != nil {
		left.Retain()
	}
	if right != nil {
		right.Retain()
	}
	v := New("⊥", BarrierUndefined, GapInfinite, ConfidenceMin, TerminalUndefined())
	v.Undef = &UndefinedInfo{Reason: reason, Detail: detail, Left: left, Right: right}
	return v
}

// Naturals is the distinguished ∞−∞ result: "all naturals", rendered
// with the ℕ symbol and a superposition terminal. It is deliberately
// not an undefined value.
func Naturals() *SolidValue {
	return New("ℕ", BarrierInfinity, GapInfinite, ConfidenceMax, TerminalSuperposition())
}

// Retain increments the shared-ownership count.
func (v *SolidValue) Retain() { atomic.AddInt64(&v.refs, 1) }

// Release decrements the count and reports whether this was the last
// reference. The Go GC reclaims storage; Release exists so hosts that
// mirror values into foreign allocations know when to free theirs.
func (v *SolidValue) Release() bool { return atomic.AddInt64(&v.refs, -1) == 0 }

// Refs reports the current shared-ownership count.
func (v *SolidValue) Refs() int64 { return atomic.LoadInt64(&v.refs) }

func (v *SolidValue) IsExact() bool     { return v.Barrier == BarrierExact }
func (v *SolidValue) IsUndefined() bool { return v.Barrier == BarrierUndefined }

func (v *SolidValue) IsInfinite() bool {
	return v.Barrier == BarrierInfinity && v.Known != "ℕ"
}

// IsNaturals reports the distinguished ∞−∞ result.
func (v *SolidValue) IsNaturals() bool {
	return v.Barrier == BarrierInfinity && v.Known == "ℕ"
}

// Negative reports the sign of the known prefix.
func (v *SolidValue) Negative() bool { return strings.HasPrefix(v.Known, "-") }

// IsZero reports whether the known digits denote exactly zero. Only
// meaningful for finite values.
func (v *SolidValue) IsZero() bool {
	d, ok := parseDec(v.Known)
	if !ok {
		return false
	}
	return d.isZero()
}

// MayBeZero reports whether the value could be zero once the gap is
// taken into account: its known prefix is zero but unknown digits
// follow. An exact zero is also "may be zero".
func (v *SolidValue) MayBeZero() bool {
	if v.IsInfinite() || v.IsNaturals() || v.IsUndefined() {
		return false
	}
	return v.IsZero()
}
