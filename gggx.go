// gggx.go
//
// The GGGX analysis pipeline: five ordered phases that turn a raw
// numeric input and a desired precision into a SolidValue plus a
// human-readable rationale.
//
//	GO       characterize the input (significant digits, decimal
//	         string, pattern, constant match)
//	GET      build the synthetic cost model
//	GAP      derive achievable precision and confidence
//	GLIMPSE  infer the barrier and its magnitude, promote terminals
//	GUESS    construct the final SolidValue and the explanation
//
// Phases run strictly in order. A phase invoked before its prerequisite
// reports failure and leaves its completion flag unset; the pipeline
// halts with explanation "phase not completed" and the caller restarts
// from GO. There is no partial resume.
//
// The Analyzer is an explicit context object: it owns the tunables
// (extra constants) and allocates one fresh GGGXResult per Analyze
// call, so concurrent analyses never share state.

package solid

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Analyzer drives GGGX analyses. The zero value is usable; Constants
// extends the built-in table (built-ins keep priority).
type Analyzer struct {
	Constants []Constant
}

func NewAnalyzer() *Analyzer { return &Analyzer{} }

func (az *Analyzer) table() []Constant {
	if len(az.Constants) == 0 {
		return defaultConstants
	}
	out := make([]Constant, 0, len(defaultConstants)+len(az.Constants))
	out = append(out, defaultConstants...)
	out = append(out, az.Constants...)
	return out
}

// Analyze runs the full pipeline on a fresh result record. The returned
// result always carries an explanation; Value is nil only if a phase
// failed to run.
func (az *Analyzer) Analyze(value float64, precision int) *GGGXResult {
	r := NewResult(value, precision)
	phases := []func(*GGGXResult) bool{
		az.RunGo, az.RunGet, az.RunGap, az.RunGlimpse, az.RunGuess,
	}
	for _, run := range phases {
		if !run(r) {
			r.Explanation = "phase not completed"
			return r
		}
	}
	return r
}

// maxDecimalFraction caps the fixed decimal rendering of the input
// (double precision carries no more).
const maxDecimalFraction = 15

// RunGo characterizes the input. It is phase zero and always succeeds.
func (az *Analyzer) RunGo(r *GGGXResult) bool {
	v := r.Input
	switch {
	case math.IsNaN(v):
		r.SignificantDigits = 0
	case v == 0, math.IsInf(v, 0):
		r.SignificantDigits = 1
	case math.Abs(v) >= 1:
		r.SignificantDigits = int(math.Floor(math.Log10(math.Abs(v)))) + 1
	default:
		// |v| < 1: count digits after the decimal point.
		s := trimFixed(strconv.FormatFloat(math.Abs(v), 'f', maxDecimalFraction, 64))
		if dot := strings.IndexByte(s, '.'); dot >= 0 {
			r.SignificantDigits = len(s) - dot - 1
		} else {
			r.SignificantDigits = 1
		}
	}

	if !math.IsNaN(v) && !math.IsInf(v, 0) {
		r.DecimalString = trimFixed(strconv.FormatFloat(v, 'f', maxDecimalFraction, 64))
		digits := digitsOnly(r.DecimalString)
		if m, ok := DetectRepeatingPattern(digits); ok {
			r.Pattern, r.HasPattern = m, true
		}
		if c, ok := detectConstant(v, az.table()); ok {
			r.ConstantName, r.HasConstant = c.Name, true
		}
	}
	return r.markDone(PhaseGo)
}

// RunGet builds the cost model. Requires GO.
func (az *Analyzer) RunGet(r *GGGXResult) bool {
	if !r.ready(PhaseGet) {
		return false
	}
	t := &r.Trace
	t.Instructions = 10
	t.MemoryAccesses = 2
	t.Branches = 1

	v := r.Input
	_, q, isFraction := nearRational(v)
	isRoot := false
	if !isFraction && v > 0 {
		for base := 2.0; base <= 10; base++ {
			lg := math.Log(v) / math.Log(base)
			if math.Abs(lg-math.Round(lg)) < 1e-9 && math.Abs(lg) > 0.5 {
				isRoot = true
				break
			}
		}
	}

	switch {
	case isFraction:
		t.Instructions += uint64(q)
		t.MemoryAccesses += 2
		t.Complexity = 1
		t.ComplexityClass = "O(1)"
	case isRoot:
		t.Instructions += 50
		t.MemoryAccesses += 8
		t.QuantumSensitive = true
		t.Complexity = 10
		t.ComplexityClass = "O(log n)"
	case r.HasPattern:
		t.Instructions += uint64(r.Pattern.Period) * 5
		t.MemoryAccesses += uint64(r.Pattern.Period)
		t.Complexity = r.Pattern.Period
		t.ComplexityClass = fmt.Sprintf("O(%d)", r.Pattern.Period)
	default:
		sd := r.SignificantDigits
		if sd < 1 {
			sd = 1
		}
		t.Instructions += uint64(sd) * 8
		t.Complexity = sd * 8
		t.ComplexityClass = "O(significant_digits)"
	}

	if r.HasConstant {
		// Series expansion of a transcendental: expensive, and the far
		// digits behave like quantum measurements.
		t.Instructions += 200
		t.MemoryAccesses += 40
		t.Branches += 10
		t.QuantumOps += 5
	}

	t.Cycles = t.Instructions * 3
	t.Energy = float64(t.Cycles) * 1e-7
	return r.markDone(PhaseGet)
}

// RunGap derives achievable precision and confidence. Requires GET.
func (az *Analyzer) RunGap(r *GGGXResult) bool {
	if !r.ready(PhaseGap) {
		return false
	}
	t := &r.Trace

	// Double precision is the ceiling; heavy algorithms pull it down.
	precision := 15
	switch {
	case t.Complexity > 100:
		precision = 10
	case t.Complexity > 50:
		precision = 12
	}
	precision -= t.QuantumOps
	if precision < 5 {
		precision = 5
	}
	if r.HasPattern && r.Pattern.Period < 10 {
		// A short pattern lets us extrapolate past the raw digits.
		precision += 5
	}
	r.AchievablePrecision = precision
	r.GapStartPosition = precision

	conf := 0.99
	conf -= float64(t.Complexity) / 1000
	conf -= 0.05 * float64(t.QuantumOps)
	if r.HasPattern {
		conf += 0.02
	}
	if conf < 0.1 {
		conf = 0.1
	}
	if conf > 0.99 {
		conf = 0.99
	}
	r.PrecisionConfidence = conf
	return r.markDone(PhaseGap)
}

// RunGlimpse infers the barrier from the trace. Requires GAP.
func (az *Analyzer) RunGlimpse(r *GGGXResult) bool {
	if !r.ready(PhaseGlimpse) {
		return false
	}
	t := &r.Trace

	kind := BarrierComputational
	rationale := "default computational barrier"
	switch {
	case t.QuantumOps > 3:
		kind = BarrierQuantum
		rationale = fmt.Sprintf("%d quantum operations in trace", t.QuantumOps)
	case t.MemoryAccesses > 50:
		kind = BarrierStorage
		rationale = fmt.Sprintf("%d memory accesses exceed storage budget", t.MemoryAccesses)
	case t.Energy > 0.0005:
		kind = BarrierEnergy
		rationale = fmt.Sprintf("energy estimate %.2g J over budget", t.Energy)
	case t.Complexity > 1000:
		kind = BarrierTemporal
		rationale = fmt.Sprintf("complexity %d exceeds time budget", t.Complexity)
	}

	// Known constants have well-studied precision behavior; they
	// override the trace heuristics.
	switch r.ConstantName {
	case "pi":
		kind = BarrierQuantum
		rationale = "pi digits behave as quantum-random beyond the prefix"
	case "e":
		kind = BarrierTemporal
		rationale = "e requires unbounded series time beyond the prefix"
	}

	r.Detection = BarrierDetection{
		Kind:       kind,
		KindName:   kind.String(),
		Magnitude:  pow10Saturating(r.GapStartPosition),
		Confidence: r.PrecisionConfidence,
		Rationale:  rationale,
	}

	if r.HasPattern && r.Pattern.Period <= 10 {
		digits := digitsOnly(r.DecimalString)
		r.TerminalPattern = digits[r.Pattern.Start : r.Pattern.Start+r.Pattern.Period]
	}
	return r.markDone(PhaseGlimpse)
}

// RunGuess constructs the final value and explanation. Requires GLIMPSE.
func (az *Analyzer) RunGuess(r *GGGXResult) bool {
	if !r.ready(PhaseGuess) {
		return false
	}
	v := r.Input
	confidence := int(math.Round(r.PrecisionConfidence * 1000))

	switch {
	case math.IsNaN(v):
		r.Value = NewUndefined(ReasonOperandUndefined, "input is not a number", nil, nil)
	case math.IsInf(v, 0):
		r.Value = NewInfinity(v < 0)
	default:
		known := trimFixed(strconv.FormatFloat(v, 'f', clampFrac(r.AchievablePrecision), 64))
		term := TerminalSuperposition()
		switch {
		case r.TerminalPattern != "":
			term = TerminalDigits(r.TerminalPattern)
		case r.Detection.Kind == BarrierQuantum:
			term = TerminalSuperposition()
		default:
			term = ExtractTerminalDigits(v, r.Detection.Kind, r.Detection.Magnitude).Terminal()
		}
		r.Value = New(known, r.Detection.Kind, r.Detection.Magnitude, confidence, term)
	}

	r.Explanation = fmt.Sprintf(
		"value %v: %d significant digits; barrier %s (%s); gap starts at 10^%d; confidence %.1f%%",
		v, r.SignificantDigits, r.Detection.KindName, r.Detection.Rationale,
		r.GapStartPosition, r.PrecisionConfidence*100)
	return r.markDone(PhaseGuess)
}

func clampFrac(n int) int {
	if n < 0 {
		return 0
	}
	if n > maxDecimalFraction {
		return maxDecimalFraction
	}
	return n
}

// trimFixed drops trailing fractional zeros (and a bare point) from a
// fixed-format float string.
func trimFixed(s string) string {
	if !strings.ContainsRune(s, '.') {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

func digitsOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

// pow10Saturating returns 10^n, saturating to GapInfinite past the
// uint64 range.
func pow10Saturating(n int) uint64 {
	if n < 0 {
		return 0
	}
	if n >= 20 {
		return GapInfinite
	}
	out := uint64(1)
	for i := 0; i < n; i++ {
		if out > GapInfinite/10 {
			return GapInfinite
		}
		out *= 10
	}
	return out
}
