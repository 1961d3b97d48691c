package solid

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GGGX_AnalyzePi(t *testing.T) {
	az := NewAnalyzer()
	r := az.Analyze(3.14159265358979, 20)

	require.True(t, r.PhaseDone(PhaseGuess), "pipeline did not finish: %s", r.Explanation)
	assert.True(t, r.HasConstant)
	assert.Equal(t, "pi", r.ConstantName)
	assert.Equal(t, BarrierQuantum, r.Detection.Kind)
	assert.GreaterOrEqual(t, r.PrecisionConfidence, 0.1)
	assert.LessOrEqual(t, r.PrecisionConfidence, 0.99)

	require.NotNil(t, r.Value)
	assert.Equal(t, BarrierQuantum, r.Value.Barrier)
	assert.Equal(t, int(math.Round(r.PrecisionConfidence*1000)), r.Value.Confidence)
	// Quantum barrier with no short pattern: the tail is a superposition.
	assert.Equal(t, TermSuperposition, r.Value.Terminal.Kind)
	assert.NotEmpty(t, r.Explanation)
}

func Test_GGGX_PhaseOrderViolation(t *testing.T) {
	az := NewAnalyzer()
	r := NewResult(1.5, 10)

	require.False(t, az.RunGet(r), "GET must fail before GO")
	assert.False(t, r.PhaseDone(PhaseGet))
	require.False(t, az.RunGuess(r), "GUESS must fail before GLIMPSE")
	assert.False(t, r.PhaseDone(PhaseGuess))

	// Running in order from the same fresh result works.
	require.True(t, az.RunGo(r))
	require.True(t, az.RunGet(r))
	require.True(t, az.RunGap(r))
	require.True(t, az.RunGlimpse(r))
	require.True(t, az.RunGuess(r))
	assert.NotNil(t, r.Value)
}

func Test_GGGX_ShortcutInputs(t *testing.T) {
	az := NewAnalyzer()

	r := az.Analyze(0, 10)
	require.True(t, r.PhaseDone(PhaseGuess))
	assert.Equal(t, 1, r.SignificantDigits)

	r = az.Analyze(math.NaN(), 10)
	require.True(t, r.PhaseDone(PhaseGuess))
	assert.Equal(t, 0, r.SignificantDigits)
	require.NotNil(t, r.Value)
	assert.True(t, r.Value.IsUndefined())

	r = az.Analyze(math.Inf(1), 10)
	require.NotNil(t, r.Value)
	assert.True(t, r.Value.IsInfinite())
}

func Test_GGGX_SignificantDigits(t *testing.T) {
	az := NewAnalyzer()
	cases := []struct {
		in   float64
		want int
	}{
		{12345, 5},
		{1, 1},
		{0.25, 2},
		{-273.15, 3},
	}
	for _, c := range cases {
		r := NewResult(c.in, 10)
		require.True(t, az.RunGo(r))
		assert.Equal(t, c.want, r.SignificantDigits, "input %v", c.in)
	}
}

func Test_GGGX_PatternedValue(t *testing.T) {
	az := NewAnalyzer()
	r := az.Analyze(0.111111111, 10)
	require.True(t, r.PhaseDone(PhaseGuess))

	assert.True(t, r.HasPattern)
	assert.Equal(t, 1, r.Pattern.Period)
	// Short pattern: +5 achievable precision, then the gap exponent
	// pushes past the uint64 range and saturates.
	assert.Equal(t, 20, r.AchievablePrecision)
	assert.Equal(t, uint64(GapInfinite), r.Detection.Magnitude)
	// Period <= 10 promotes the pattern to the terminal.
	assert.Equal(t, "1", r.TerminalPattern)
	require.NotNil(t, r.Value)
	assert.Equal(t, "1", r.Value.Terminal.Digits)
}

func Test_GGGX_CostModel(t *testing.T) {
	az := NewAnalyzer()

	// Simple fraction: O(1).
	r := NewResult(0.25, 10)
	require.True(t, az.RunGo(r))
	require.True(t, az.RunGet(r))
	assert.Equal(t, "O(1)", r.Trace.ComplexityClass)
	assert.Equal(t, r.Trace.Instructions*3, r.Trace.Cycles)

	// 2^-8: algebraic root (integer log base 2), quantum-sensitive.
	// Not a simple fraction: the denominator exceeds 100.
	r = NewResult(0.00390625, 10)
	require.True(t, az.RunGo(r))
	require.True(t, az.RunGet(r))
	assert.Equal(t, "O(log n)", r.Trace.ComplexityClass)
	assert.True(t, r.Trace.QuantumSensitive)

	// Transcendental constant: series cost plus quantum ops.
	r = NewResult(math.Pi, 10)
	require.True(t, az.RunGo(r))
	require.True(t, az.RunGet(r))
	assert.Equal(t, 5, r.Trace.QuantumOps)
}

func Test_GGGX_ConfidenceClamping(t *testing.T) {
	az := NewAnalyzer()
	r := NewResult(0.111111111, 10)
	require.True(t, az.RunGo(r))
	require.True(t, az.RunGet(r))
	require.True(t, az.RunGap(r))
	// Pattern bonus would push past 0.99; the clamp holds.
	assert.LessOrEqual(t, r.PrecisionConfidence, 0.99)
	assert.GreaterOrEqual(t, r.PrecisionConfidence, 0.1)
}

func Test_GGGX_ConstantTableExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "constants.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"- name: answer\n  value: 42.123456789\n  digits: \"42123456789012345678\"\n"), 0o644))

	extra, err := LoadConstants(path)
	require.NoError(t, err)
	require.Len(t, extra, 1)

	az := &Analyzer{Constants: extra}
	r := az.Analyze(42.123456789, 10)
	require.True(t, r.PhaseDone(PhaseGuess))
	assert.Equal(t, "answer", r.ConstantName)
}

func Test_GGGX_FreshResultPerAnalysis(t *testing.T) {
	az := NewAnalyzer()
	a := az.Analyze(1.5, 10)
	b := az.Analyze(2.5, 10)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotSame(t, a, b)
}
