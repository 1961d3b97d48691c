package solid

import (
	"math"
	"testing"
)

func Test_Extract_QuantumBarrier_Deterministic(t *testing.T) {
	a := ExtractTerminalDigits(3.14, BarrierQuantum, 1000)
	b := ExtractTerminalDigits(3.14, BarrierQuantum, 1000)
	if a.Method != ExtractQuantum {
		t.Fatalf("method = %v", a.Method)
	}
	if len(a.Digits) != extractDigitCount || a.Digits != b.Digits {
		t.Fatalf("quantum extraction unstable: %q vs %q", a.Digits, b.Digits)
	}
	if a.Stability >= 0.5 {
		t.Fatalf("quantum stability = %v", a.Stability)
	}
}

func Test_Extract_Modular_SimpleRational(t *testing.T) {
	ta := ExtractTerminalDigits(0.142857142857, BarrierComputational, 1000)
	if ta.Method != ExtractModular {
		t.Fatalf("method = %v", ta.Method)
	}
	if ta.Digits != "142857" {
		t.Fatalf("1/7 repetend = %q", ta.Digits)
	}
	if !ta.HasSubPeriod || ta.SubPeriod != 6 {
		t.Fatalf("sub-period = %d (found %v)", ta.SubPeriod, ta.HasSubPeriod)
	}
}

func Test_Extract_ContinuedFraction_AlgebraicNumber(t *testing.T) {
	ta := ExtractTerminalDigits(math.Sqrt2, BarrierComputational, 1000)
	if ta.Method != ExtractContinuedFraction {
		t.Fatalf("method = %v", ta.Method)
	}
	// sqrt2 = [1; 2, 2, 2, ...]: eventually periodic with period 1.
	if !ta.HasSubPeriod || ta.SubPeriod != 1 {
		t.Fatalf("sub-period = %d (found %v), digits %q", ta.SubPeriod, ta.HasSubPeriod, ta.Digits)
	}
	if ta.Digits[0] != '1' || ta.Digits[1] != '2' {
		t.Fatalf("CF digits = %q", ta.Digits)
	}
}

func Test_Extract_Series_KnownTranscendental(t *testing.T) {
	ta := ExtractTerminalDigits(math.E, BarrierComputational, 1000)
	if ta.Method != ExtractSeries {
		t.Fatalf("method = %v", ta.Method)
	}
	want := defaultConstants[1].Digits[len(defaultConstants[1].Digits)-extractDigitCount:]
	if ta.Digits != want {
		t.Fatalf("series digits = %q, want %q", ta.Digits, want)
	}
}

func Test_Extract_Iterative_TemporalChaotic(t *testing.T) {
	ta := ExtractTerminalDigits(0.317311507, BarrierTemporal, 1000)
	if ta.Method != ExtractIterative {
		t.Fatalf("method = %v", ta.Method)
	}
	if len(ta.Digits) != extractDigitCount {
		t.Fatalf("iterative digits = %q", ta.Digits)
	}
}

func Test_Extract_DefaultsToModular(t *testing.T) {
	// Not rational (q<=100), square not near an integer, no constant,
	// not in (0,1): falls back to modular on raw fractional digits.
	ta := ExtractTerminalDigits(5.0317311507, BarrierComputational, 1000)
	if ta.Method != ExtractModular {
		t.Fatalf("method = %v", ta.Method)
	}
}

func Test_TerminalAnalysis_ToTerminal(t *testing.T) {
	if got := (TerminalAnalysis{Digits: "123"}).Terminal(); got.Kind != TermDigits || got.Digits != "123" {
		t.Fatalf("terminal = %+v", got)
	}
	if got := (TerminalAnalysis{}).Terminal(); got.Kind != TermUndefined {
		t.Fatalf("empty terminal = %+v", got)
	}
}
