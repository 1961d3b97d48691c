// arith.go
//
// The arithmetic algebra over solid values. Two regimes:
//
//   - Exact × Exact: arbitrary-precision decimal arithmetic on the
//     known digit strings (digits.go). Division stays exact only when
//     the quotient is an exact integer; otherwise it falls through to
//     the gapped regime.
//
//   - Gapped: either operand carries a barrier. Known prefixes combine
//     with the same digit arithmetic; barrier, gap magnitude,
//     confidence and terminal each propagate by their own rule.
//
// Every entry point returns a value. Logically impossible operations
// come back as Undefined values (undefined.go), never as errors or
// panics; infinities route through the infinity algebra (infinity.go).

package solid

import (
	"math"
	"strconv"
)

// Op identifies an arithmetic operation for combination rules and
// undefined-form detection.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	}
	return "?"
}

func Add(a, b *SolidValue) *SolidValue      { return apply(a, b, OpAdd) }
func Subtract(a, b *SolidValue) *SolidValue { return apply(a, b, OpSub) }
func Multiply(a, b *SolidValue) *SolidValue { return apply(a, b, OpMul) }
func Divide(a, b *SolidValue) *SolidValue   { return apply(a, b, OpDiv) }
func Power(a, b *SolidValue) *SolidValue    { return apply(a, b, OpPow) }

func apply(a, b *SolidValue, op Op) *SolidValue {
	if u := wouldBeUndefined(a, b, op); u != nil {
		return u
	}
	if a.IsNaturals() || b.IsNaturals() {
		// ℕ absorbs: anything combined with "all naturals" stays there.
		return Naturals()
	}
	if a.IsInfinite() || b.IsInfinite() {
		return infinityOp(a, b, op)
	}
	if a.IsExact() && b.IsExact() {
		if v, ok := exactOp(a, b, op); ok {
			return v
		}
		// Inexact division (or fractional power) of exact operands
		// degrades to a gapped result.
	}
	return gappedOp(a, b, op)
}

// exactOp runs the barrier-free regime. ok is false when the result
// cannot be represented exactly (inexact quotient, fractional power).
func exactOp(a, b *SolidValue, op Op) (*SolidValue, bool) {
	da, oka := parseDec(a.Known)
	db, okb := parseDec(b.Known)
	if !oka || !okb {
		return nil, false
	}
	switch op {
	case OpAdd:
		return NewExact(decAdd(da, db).format()), true
	case OpSub:
		return NewExact(decSub(da, db).format()), true
	case OpMul:
		return NewExact(decMul(da, db).format()), true
	case OpDiv:
		q, ok := decDivExact(da, db)
		if !ok {
			return nil, false
		}
		return NewExact(q.format()), true
	case OpPow:
		q, ok := decPowInt(da, db)
		if !ok {
			return nil, false
		}
		return NewExact(q.format()), true
	}
	return nil, false
}

// maxExactExponent bounds repeated-multiplication powers; anything
// larger degrades to the gapped regime.
const maxExactExponent = 4096

// decPowInt computes a^b for a non-negative integer exponent b.
func decPowInt(a, b decNum) (decNum, bool) {
	if b.neg || b.scale != 0 {
		return decNum{}, false
	}
	exp, err := strconv.Atoi(b.digits)
	if err != nil || exp > maxExactExponent {
		return decNum{}, false
	}
	out := decNum{digits: "1"}
	for i := 0; i < exp; i++ {
		out = decMul(out, a)
	}
	return out, true
}

// gappedOp combines two values when at least one carries a barrier (or
// an exact operation could not stay exact).
func gappedOp(a, b *SolidValue, op Op) *SolidValue {
	known, cycle := combineKnown(a, b, op)

	barrier := CombineBarriers(a.Barrier, b.Barrier)
	if barrier == BarrierExact {
		// Exact operands that produced an inexact result: the cost of
		// refining the quotient is what limits further digits.
		barrier = BarrierComputational
	}

	gap := combineGap(a.GapMagnitude, b.GapMagnitude, op)
	confidence := combineConfidence(a.Confidence, b.Confidence, op)

	term := combineTerminals(a.Terminal, b.Terminal)
	if op == OpDiv && cycle != "" && term.Kind == TermDigits {
		// A detected repetend is a better tail description than
		// concatenated operand terminals.
		term = TerminalDigits(cycle)
	}

	return New(known, barrier, gap, confidence, term)
}

// approxQuotientDigits bounds the known digits produced by a gapped
// division.
const approxQuotientDigits = 15

// combineKnown merges the known prefixes with digit arithmetic. For
// division the repetend, when one shows up inside the window, is
// returned alongside.
func combineKnown(a, b *SolidValue, op Op) (known, cycle string) {
	da, oka := parseDec(a.Known)
	db, okb := parseDec(b.Known)
	if !oka || !okb {
		return "", ""
	}
	switch op {
	case OpAdd:
		return decAdd(da, db).format(), ""
	case OpSub:
		return decSub(da, db).format(), ""
	case OpMul:
		return decMul(da, db).format(), ""
	case OpDiv:
		q, cyc := decDivApprox(da, db, approxQuotientDigits)
		return q.format(), cyc
	case OpPow:
		fa, erra := strconv.ParseFloat(a.Known, 64)
		fb, errb := strconv.ParseFloat(b.Known, 64)
		if erra != nil || errb != nil {
			return "", ""
		}
		return trimFixed(strconv.FormatFloat(math.Pow(fa, fb), 'f', 12, 64)), ""
	}
	return "", ""
}

// combineGap propagates gap magnitudes: max for +/-, saturating product
// for ×, one decimal order wider for ÷. Powers reuse the × rule.
func combineGap(ga, gb uint64, op Op) uint64 {
	maxGap := ga
	if gb > maxGap {
		maxGap = gb
	}
	switch op {
	case OpAdd, OpSub:
		return maxGap
	case OpMul, OpPow:
		if ga == 0 {
			return gb
		}
		if gb == 0 {
			return ga
		}
		if ga == GapInfinite || gb == GapInfinite || ga > GapInfinite/gb {
			return GapInfinite
		}
		return ga * gb
	case OpDiv:
		return widenGapOrder(maxGap)
	}
	return maxGap
}

// widenGapOrder grows a gap by one decimal order, saturating.
func widenGapOrder(g uint64) uint64 {
	if g == 0 {
		return 10
	}
	if g > GapInfinite/10 {
		return GapInfinite
	}
	return g * 10
}

// combineConfidence applies the fixed-point rule table. Results are
// clamped to [0,1000] by construction.
func combineConfidence(ca, cb int, op Op) int {
	switch op {
	case OpAdd, OpSub:
		if ca < cb {
			return ca
		}
		return cb
	case OpMul, OpPow:
		return ca * cb / 1000
	case OpDiv:
		c := ca * cb / 1200
		if c < 100 {
			c = 100
		}
		return c
	}
	return 0
}

// combineTerminals merges tails: Superposition dominates Undefined
// dominates Digits. Digit tails concatenate, capped at
// MaxTerminalDigits; this is a documented simplification, not true
// modular terminal arithmetic.
func combineTerminals(a, b Terminal) Terminal {
	if a.Kind == TermSuperposition || b.Kind == TermSuperposition {
		return TerminalSuperposition()
	}
	if a.Kind == TermUndefined || b.Kind == TermUndefined {
		return TerminalUndefined()
	}
	return TerminalDigits(a.Digits + b.Digits)
}
