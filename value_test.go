package solid

import "testing"

func Test_Value_New_NormalizesInvariants(t *testing.T) {
	v := New("1.5", BarrierQuantum, 100, 1500, TerminalDigits("12"))
	if v.Confidence != 1000 {
		t.Fatalf("confidence not clamped: %d", v.Confidence)
	}
	v = New("1.5", BarrierQuantum, 100, -5, TerminalDigits("12"))
	if v.Confidence != 0 {
		t.Fatalf("confidence not clamped low: %d", v.Confidence)
	}

	// Exact implies gap 0 and confidence 1000.
	v = New("42", BarrierExact, 999, 250, TerminalDigits(""))
	if v.GapMagnitude != 0 || v.Confidence != 1000 {
		t.Fatalf("exact invariant violated: gap=%d conf=%d", v.GapMagnitude, v.Confidence)
	}

	// Infinity implies an unbounded gap.
	if inf := NewInfinity(false); inf.GapMagnitude != GapInfinite {
		t.Fatalf("infinity gap = %d", inf.GapMagnitude)
	}
}

func Test_Value_BarrierChars_RoundTrip(t *testing.T) {
	all := []Barrier{
		BarrierQuantum, BarrierEnergy, BarrierStorage, BarrierTemporal,
		BarrierComputational, BarrierInfinity, BarrierUndefined, BarrierExact,
	}
	seen := map[byte]bool{}
	for _, b := range all {
		c := b.Char()
		if seen[c] {
			t.Fatalf("duplicate barrier char %q", c)
		}
		seen[c] = true
		got, ok := ParseBarrierChar(c)
		if !ok || got != b {
			t.Fatalf("ParseBarrierChar(%q) = %v ok=%v, want %v", c, got, ok, b)
		}
	}
	if _, ok := ParseBarrierChar('z'); ok {
		t.Fatal("unknown char accepted")
	}
}

func Test_Value_BarrierCombination_AbsorbingAndAssociative(t *testing.T) {
	finite := []Barrier{BarrierExact, BarrierStorage, BarrierComputational, BarrierTemporal, BarrierEnergy, BarrierQuantum}
	for _, x := range finite {
		if got := CombineBarriers(BarrierUndefined, x); got != BarrierUndefined {
			t.Fatalf("Undefined not absorbing over %v: %v", x, got)
		}
		if got := CombineBarriers(BarrierInfinity, x); got != BarrierInfinity {
			t.Fatalf("Infinity not absorbing over %v: %v", x, got)
		}
	}
	if CombineBarriers(BarrierExact, BarrierExact) != BarrierExact {
		t.Fatal("exact ∧ exact must stay exact")
	}
	if CombineBarriers(BarrierQuantum, BarrierStorage) != BarrierQuantum {
		t.Fatal("priority order broken")
	}
	// Associativity over every triple.
	all := append(finite, BarrierInfinity, BarrierUndefined)
	for _, a := range all {
		for _, b := range all {
			for _, c := range all {
				l := CombineBarriers(CombineBarriers(a, b), c)
				r := CombineBarriers(a, CombineBarriers(b, c))
				if l != r {
					t.Fatalf("combination not associative for (%v,%v,%v)", a, b, c)
				}
			}
		}
	}
}

func Test_Value_Display_Formats(t *testing.T) {
	if got := NewExact("42").Display(); got != "42" {
		t.Fatalf("exact display = %q", got)
	}

	v := New("3.14", BarrierQuantum, 10_000_000_000, 732, TerminalDigits("59"))
	if got := v.Display(); got != "3.14...(q:10^10|732/1000)...59" {
		t.Fatalf("gapped display = %q", got)
	}

	v = New("1.5", BarrierTemporal, GapInfinite, 500, TerminalUndefined())
	if got := v.Display(); got != "1.5...(t:∞|500/1000)...∅" {
		t.Fatalf("infinite-gap display = %q", got)
	}

	v = New("0.1", BarrierQuantum, 10, 990, TerminalSuperposition())
	if got := v.Display(); got != "0.1...(q:10^1|990/1000)...{*}" {
		t.Fatalf("superposition display = %q", got)
	}
}

func Test_Value_RefCounting(t *testing.T) {
	v := NewExact("1")
	if v.Refs() != 1 {
		t.Fatalf("fresh refcount = %d", v.Refs())
	}
	v.Retain()
	if v.Release() {
		t.Fatal("release reported last ref while one remains")
	}
	if !v.Release() {
		t.Fatal("final release not reported")
	}
}

func Test_Value_NaturalsIsNotUndefined(t *testing.T) {
	n := Naturals()
	if n.IsUndefined() {
		t.Fatal("ℕ must not be undefined")
	}
	if !n.IsNaturals() || n.IsInfinite() {
		t.Fatalf("ℕ classification wrong: naturals=%v infinite=%v", n.IsNaturals(), n.IsInfinite())
	}
	if n.Known != "ℕ" || n.Terminal.Kind != TermSuperposition {
		t.Fatalf("ℕ rendering wrong: %q / %v", n.Known, n.Terminal.Kind)
	}
}

func Test_Value_ZeroClassification(t *testing.T) {
	if !NewExact("0").IsZero() || !NewExact("0.000").IsZero() {
		t.Fatal("exact zero not recognized")
	}
	if NewExact("0.001").IsZero() {
		t.Fatal("nonzero recognized as zero")
	}
	gappedZero := New("0", BarrierComputational, 100, 500, TerminalDigits(""))
	if !gappedZero.MayBeZero() {
		t.Fatal("gapped zero prefix must be may-be-zero")
	}
	if NewInfinity(false).MayBeZero() {
		t.Fatal("infinity may-be-zero")
	}
}

func Test_Value_TerminalDigits_FiltersAndCaps(t *testing.T) {
	term := TerminalDigits("12ab34")
	if term.Digits != "1234" {
		t.Fatalf("filtered digits = %q", term.Digits)
	}
	long := TerminalDigits("123456789012345678901234")
	if len(long.Digits) != MaxTerminalDigits {
		t.Fatalf("cap not applied: %d digits", len(long.Digits))
	}
}
