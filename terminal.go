// terminal.go
//
// Terminal-digit extraction: given a raw value, its barrier and gap,
// derive the digits it settles into far beyond the known prefix. The
// method is chosen by structural tests on the value, in this order:
//
//	quantum-simulated    barrier is Quantum
//	modular              value is close to a simple rational p/q, q<=100
//	continued-fraction   value² is near an integer (algebraic number)
//	series-expansion     value matches a known transcendental constant
//	iterative            value in (0,1) under a Temporal barrier
//	modular              default
//
// Extraction is independent of the GUESS phase that consumes it.

package solid

import "math"

// ExtractionMethod names how a terminal was derived.
type ExtractionMethod uint8

const (
	ExtractModular ExtractionMethod = iota
	ExtractContinuedFraction
	ExtractSeries
	ExtractIterative
	ExtractQuantum
)

func (m ExtractionMethod) String() string {
	switch m {
	case ExtractModular:
		return "modular"
	case ExtractContinuedFraction:
		return "continued-fraction"
	case ExtractSeries:
		return "series-expansion"
	case ExtractIterative:
		return "iterative"
	case ExtractQuantum:
		return "quantum-simulated"
	}
	return "unknown"
}

// TerminalAnalysis is the result of one extraction.
type TerminalAnalysis struct {
	Method       ExtractionMethod
	Digits       string
	Stability    float64 // [0,1]: how settled the tail is
	SubPeriod    int
	HasSubPeriod bool
}

const (
	maxRationalDenominator = 100
	rationalTolerance      = 1e-9
	squareIntTolerance     = 1e-6
	maxCFTerms             = 50
	extractDigitCount      = 8
)

// nearRational finds the smallest denominator q <= 100 such that
// value is within tolerance of round(value*q)/q.
func nearRational(value float64) (p, q int64, ok bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, 0, false
	}
	for d := int64(1); d <= maxRationalDenominator; d++ {
		n := math.Round(value * float64(d))
		if math.Abs(value-n/float64(d)) < rationalTolerance {
			return int64(n), d, true
		}
	}
	return 0, 0, false
}

// ExtractTerminalDigits derives the terminal behavior of value under
// the given barrier and gap magnitude.
func ExtractTerminalDigits(value float64, barrier Barrier, gap uint64) TerminalAnalysis {
	if barrier == BarrierQuantum {
		return extractQuantum(value)
	}
	if _, _, ok := nearRational(value); ok {
		return extractModular(value)
	}
	if isNearSquareInteger(value) {
		return extractContinuedFraction(value)
	}
	if _, ok := DetectMathematicalConstant(value); ok {
		return extractSeries(value)
	}
	if value > 0 && value < 1 && barrier == BarrierTemporal {
		return extractIterative(value)
	}
	return extractModular(value)
}

func isNearSquareInteger(value float64) bool {
	sq := value * value
	return sq >= 1 && math.Abs(sq-math.Round(sq)) < squareIntTolerance
}

// extractQuantum simulates measurement of an unresolvable tail: the
// digits come from a deterministic mix of the value's bit pattern, so
// repeated extraction agrees, but stability is minimal.
func extractQuantum(value float64) TerminalAnalysis {
	state := math.Float64bits(value)
	buf := make([]byte, extractDigitCount)
	for i := range buf {
		// splitmix64 step
		state += 0x9e3779b97f4a7c15
		z := state
		z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
		z = (z ^ (z >> 27)) * 0x94d049bb133111eb
		z ^= z >> 31
		buf[i] = '0' + byte(z%10)
	}
	return TerminalAnalysis{Method: ExtractQuantum, Digits: string(buf), Stability: 0.1}
}

// extractModular expands the fractional part of the nearest simple
// rational by long division, capturing the repetend when the remainder
// cycles.
func extractModular(value float64) TerminalAnalysis {
	p, q, ok := nearRational(value)
	if !ok {
		// Fall back to the raw fractional digits.
		frac := math.Abs(value) - math.Floor(math.Abs(value))
		digits := make([]byte, 0, extractDigitCount)
		for i := 0; i < extractDigitCount; i++ {
			frac *= 10
			d := int(frac)
			frac -= float64(d)
			digits = append(digits, byte('0'+d))
		}
		return TerminalAnalysis{Method: ExtractModular, Digits: string(digits), Stability: 0.5}
	}
	if p < 0 {
		p = -p
	}
	rem := p % q
	digits := make([]byte, 0, MaxTerminalDigits)
	seen := map[int64]int{}
	period := 0
	for len(digits) < MaxTerminalDigits && rem != 0 {
		if at, found := seen[rem]; found {
			period = len(digits) - at
			break
		}
		seen[rem] = len(digits)
		rem *= 10
		digits = append(digits, byte('0'+rem/q))
		rem %= q
	}
	out := TerminalAnalysis{Method: ExtractModular, Digits: string(digits), Stability: 0.95}
	if period > 0 {
		out.SubPeriod = period
		out.HasSubPeriod = true
	}
	return out
}

// extractContinuedFraction expands value as a continued fraction,
// bounded to 50 terms. For quadratic irrationals the term sequence is
// eventually periodic, which the sub-period scan picks up.
func extractContinuedFraction(value float64) TerminalAnalysis {
	x := math.Abs(value)
	digits := make([]byte, 0, maxCFTerms)
	for i := 0; i < maxCFTerms && len(digits) < MaxTerminalDigits; i++ {
		a := math.Floor(x)
		digits = append(digits, byte('0'+int64(a)%10))
		frac := x - a
		if frac < 1e-12 {
			break
		}
		x = 1 / frac
	}
	out := TerminalAnalysis{Method: ExtractContinuedFraction, Digits: string(digits), Stability: 0.8}
	if m, ok := DetectRepeatingPattern(out.Digits); ok {
		out.SubPeriod = m.Period
		out.HasSubPeriod = true
	}
	return out
}

// extractSeries reads the continuation of a matched constant's stored
// expansion, past the double-precision digits the prefix already holds.
func extractSeries(value float64) TerminalAnalysis {
	c, ok := DetectMathematicalConstant(value)
	if !ok || len(c.Digits) < extractDigitCount {
		return extractModular(value)
	}
	start := len(c.Digits) - extractDigitCount
	return TerminalAnalysis{Method: ExtractSeries, Digits: c.Digits[start:], Stability: 0.7}
}

// extractIterative runs the value through a chaotic map; the digit
// stream is deterministic but maximally sensitive to the input, which
// is the point for temporally-barriered values in (0,1).
func extractIterative(value float64) TerminalAnalysis {
	x := value
	digits := make([]byte, 0, extractDigitCount)
	for i := 0; i < extractDigitCount; i++ {
		x = 3.9999 * x * (1 - x)
		d := int(x * 10)
		if d > 9 {
			d = 9
		}
		digits = append(digits, byte('0'+d))
	}
	return TerminalAnalysis{Method: ExtractIterative, Digits: string(digits), Stability: 0.3}
}

// Terminal converts the analysis into the value-model terminal.
func (ta TerminalAnalysis) Terminal() Terminal {
	if ta.Digits == "" {
		return TerminalUndefined()
	}
	return TerminalDigits(ta.Digits)
}
