// display.go
//
// The stable textual rendering used by debugging and tests:
//
//	<known>                                          exact values
//	<known>...(<b>:<gap>|<conf>/1000)...<terminal>   everything else
//
// where <b> is the single-character barrier code, <gap> is "∞" for the
// unbounded sentinel or "10^n" for a bounded gap, and the terminal
// renders as its digits, "∅" for undefined, or "{*}" for superposition.

package solid

import (
	"fmt"
	"strings"
)

// Display renders the stable textual format.
func (v *SolidValue) Display() string {
	if v.Barrier == BarrierExact {
		return v.Known
	}
	var b strings.Builder
	b.WriteString(v.Known)
	b.WriteString("...")
	fmt.Fprintf(&b, "(%c:%s|%d/1000)", v.Barrier.Char(), gapString(v.GapMagnitude), v.Confidence)
	b.WriteString("...")
	b.WriteString(v.Terminal.String())
	return b.String()
}

func (v *SolidValue) String() string { return v.Display() }

// gapString renders a gap magnitude as its decimal exponent.
func gapString(g uint64) string {
	if g == GapInfinite {
		return "∞"
	}
	exp := 0
	for g >= 10 {
		g /= 10
		exp++
	}
	return fmt.Sprintf("10^%d", exp)
}
