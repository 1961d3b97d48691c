// infinity.go
//
// The algebra of infinite operands. Most combinations collapse to a
// signed infinity; the two interesting cases are:
//
//   - ∞ − ∞ (same sign): NOT an indeterminate form here. It yields the
//     distinguished "all naturals" value ℕ — the design reading is that
//     subtracting two unbounded processes leaves every natural number
//     reachable.
//
//   - ∞ ÷ ∞: a dedicated procedure that compares the two infinities
//     through their terminal digits, dividing seeded quotient parts and
//     taking a modular product of the terminal parts under 10^5.

package solid

import (
	"fmt"
	"strconv"
)

// infinityOp handles any pair with at least one infinite operand.
// Undefined screening (0×∞ etc.) already happened in apply.
func infinityOp(a, b *SolidValue, op Op) *SolidValue {
	switch op {
	case OpAdd:
		if a.IsInfinite() && b.IsInfinite() {
			if a.Negative() != b.Negative() {
				return Naturals()
			}
			return NewInfinity(a.Negative())
		}
		if a.IsInfinite() {
			return NewInfinity(a.Negative())
		}
		return NewInfinity(b.Negative())

	case OpSub:
		if a.IsInfinite() && b.IsInfinite() {
			if a.Negative() == b.Negative() {
				return Naturals()
			}
			return NewInfinity(a.Negative())
		}
		if a.IsInfinite() {
			return NewInfinity(a.Negative())
		}
		return NewInfinity(!b.Negative())

	case OpMul:
		return NewInfinity(a.Negative() != b.Negative())

	case OpDiv:
		if a.IsInfinite() && b.IsInfinite() {
			return divideInfinities(a, b)
		}
		if a.IsInfinite() {
			return NewInfinity(a.Negative() != b.Negative())
		}
		// finite / ∞ collapses to zero exactly.
		return NewExact("0")

	case OpPow:
		return powInfinity(a, b)
	}
	return NewUndefined(ReasonOperandUndefined, "unhandled infinite combination", a, b)
}

func powInfinity(a, b *SolidValue) *SolidValue {
	if a.IsInfinite() {
		if b.IsZero() {
			return NewExact("1")
		}
		if b.Negative() {
			return NewExact("0")
		}
		return NewInfinity(false)
	}
	// finite ^ ∞: magnitude decides.
	base, err := strconv.ParseFloat(a.Known, 64)
	if err != nil {
		return NewUndefined(ReasonOperandUndefined, "unparseable base under infinite exponent", a, b)
	}
	mag := base
	if mag < 0 {
		mag = -mag
	}
	switch {
	case mag > 1 && !b.Negative():
		return NewInfinity(false)
	case mag > 1 && b.Negative():
		return NewExact("0")
	case mag < 1 && !b.Negative():
		return NewExact("0")
	case mag < 1 && b.Negative():
		return NewInfinity(false)
	}
	return NewExact("1")
}

const (
	// infQuotientSeed is the fixed large constant seeding the base
	// quotient of each infinite operand in ∞÷∞.
	infQuotientSeed = 1_000_000_007

	// terminalModulus is the modulus for the terminal product, 10^5.
	terminalModulus = 100_000

	// defaultTerminalPattern stands in when an infinite operand carries
	// no digit terminal.
	defaultTerminalPattern = "0123456789"
)

// terminalResidue reduces an operand's terminal digits to a residue in
// [1, terminalModulus) that is coprime with the modulus, so a modular
// inverse always exists.
func terminalResidue(v *SolidValue) int64 {
	digits := defaultTerminalPattern
	if v.Terminal.Kind == TermDigits && v.Terminal.Digits != "" {
		digits = v.Terminal.Digits
	}
	if len(digits) > 5 {
		digits = digits[len(digits)-5:]
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		n = 1
	}
	n %= terminalModulus
	if n <= 0 {
		n = 1
	}
	// 10^5 = 2^5·5^5: step past shared factors.
	for n%2 == 0 || n%5 == 0 {
		n++
	}
	return n
}

// egcd returns gcd(a,b) and Bézout coefficients x,y with ax+by = gcd.
func egcd(a, b int64) (g, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := egcd(b, a%b)
	return g, y1, x1 - (a/b)*y1
}

// modInverse computes a⁻¹ mod m via the extended Euclidean algorithm.
func modInverse(a, m int64) (int64, bool) {
	g, x, _ := egcd(a%m, m)
	if g != 1 && g != -1 {
		return 0, false
	}
	inv := x % m
	if inv < 0 {
		inv += m
	}
	return inv, true
}

// divideInfinities runs the ∞÷∞ procedure: each operand becomes a
// (quotient, remainder) pair seeded by infQuotientSeed and adjusted by
// its terminal digits; the base quotients divide and the terminal parts
// combine by modular product with the divisor's inverse.
func divideInfinities(a, b *SolidValue) *SolidValue {
	ra := terminalResidue(a)
	rb := terminalResidue(b)
	qa := int64(infQuotientSeed) + ra
	qb := int64(infQuotientSeed) + rb

	baseQuotient := qa / qb // qb > infQuotientSeed, never zero

	inv, ok := modInverse(rb, terminalModulus)
	if !ok {
		// terminalResidue guarantees coprimality; this is unreachable
		// but degrades gracefully rather than panicking.
		inv = 1
	}
	product := (ra % terminalModulus) * inv % terminalModulus

	negative := a.Negative() != b.Negative()
	known := fmt.Sprintf("%d.%05d", baseQuotient, product)
	if negative {
		known = "-" + known
	}

	barrier := BarrierComputational
	if a.Terminal.Kind == TermSuperposition || b.Terminal.Kind == TermSuperposition {
		// Superposed tails mark an infinity built under a quantum
		// barrier; the quotient inherits it.
		barrier = BarrierQuantum
	}

	const reducedConfidence = 300
	return New(known, barrier, uint64(terminalModulus), reducedConfidence,
		TerminalDigits(fmt.Sprintf("%05d", product)))
}
