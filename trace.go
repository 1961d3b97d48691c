// trace.go
//
// Per-analysis records for the GGGX pipeline. One GGGXResult is
// allocated per Analyze call and mutated only by the phase functions,
// in order; results must never be shared between concurrent analyses.

package solid

import "github.com/google/uuid"

// ComputationalTrace is the synthetic cost model the GET phase builds.
// These are estimates from structural features of the input, not
// measurements.
type ComputationalTrace struct {
	Instructions     uint64  `json:"instructions" yaml:"instructions"`
	MemoryAccesses   uint64  `json:"memory_accesses" yaml:"memory_accesses"`
	Branches         uint64  `json:"branches" yaml:"branches"`
	Cycles           uint64  `json:"cycles" yaml:"cycles"`
	Energy           float64 `json:"energy" yaml:"energy"` // joule estimate
	QuantumOps       int     `json:"quantum_ops" yaml:"quantum_ops"`
	Complexity       int     `json:"complexity" yaml:"complexity"`
	ComplexityClass  string  `json:"complexity_class" yaml:"complexity_class"`
	QuantumSensitive bool    `json:"quantum_sensitive" yaml:"quantum_sensitive"`
}

// BarrierDetection is the GLIMPSE phase's verdict.
type BarrierDetection struct {
	Kind       Barrier `json:"-" yaml:"-"`
	KindName   string  `json:"kind" yaml:"kind"`
	Magnitude  uint64  `json:"magnitude" yaml:"magnitude"`
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Rationale  string  `json:"rationale" yaml:"rationale"`
}

// Phase indexes the five pipeline phases in execution order.
type Phase int

const (
	PhaseGo Phase = iota
	PhaseGet
	PhaseGap
	PhaseGlimpse
	PhaseGuess
	phaseCount
)

func (p Phase) String() string {
	switch p {
	case PhaseGo:
		return "GO"
	case PhaseGet:
		return "GET"
	case PhaseGap:
		return "GAP"
	case PhaseGlimpse:
		return "GLIMPSE"
	case PhaseGuess:
		return "GUESS"
	}
	return "?"
}

// GGGXResult is the working record of one analysis. Create with
// NewResult, run the phases in order, read Value and Explanation,
// discard. Reusing a result across analyses is a caller bug.
type GGGXResult struct {
	ID        uuid.UUID
	Input     float64
	Precision int

	// Completion flags, settable only in phase order.
	done [phaseCount]bool

	Trace     ComputationalTrace
	Detection BarrierDetection

	// Intermediate state carried between phases.
	SignificantDigits   int
	DecimalString       string
	Pattern             PatternMatch
	HasPattern          bool
	ConstantName        string
	HasConstant         bool
	AchievablePrecision int
	PrecisionConfidence float64
	GapStartPosition    int
	TerminalPattern     string

	Value       *SolidValue
	Explanation string
}

// NewResult allocates a fresh per-analysis record.
func NewResult(value float64, precision int) *GGGXResult {
	return &GGGXResult{ID: uuid.New(), Input: value, Precision: precision}
}

// PhaseDone reports a phase's completion flag.
func (r *GGGXResult) PhaseDone(p Phase) bool {
	return p >= 0 && p < phaseCount && r.done[p]
}

// markDone enforces phase ordering: a phase completes only if its
// predecessor already has.
func (r *GGGXResult) markDone(p Phase) bool {
	if p > PhaseGo && !r.done[p-1] {
		return false
	}
	r.done[p] = true
	return true
}

// ready reports whether phase p may run.
func (r *GGGXResult) ready(p Phase) bool {
	return p == PhaseGo || r.done[p-1]
}
