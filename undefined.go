// undefined.go
//
// Indeterminate-form detection and recovery. Undefined is a value, not
// an exception: every arithmetic entry point returns something, and
// callers pick a recovery strategy explicitly — nothing recovers on its
// own.

package solid

// wouldBeUndefined screens an operand pair before the algebra runs. A
// non-nil result is the Undefined value to return, carrying the reason,
// a free-text detail and references to both operands.
func wouldBeUndefined(a, b *SolidValue, op Op) *SolidValue {
	if a.IsUndefined() || b.IsUndefined() {
		return NewUndefined(ReasonOperandUndefined,
			"an undefined operand propagates through "+op.String(), a, b)
	}
	if op == OpDiv {
		switch {
		case b.IsExact() && b.IsZero():
			return NewUndefined(ReasonDivisionByZero, "division by zero", a, b)
		case b.MayBeZero():
			return NewUndefined(ReasonDivisionByZero,
				"divisor may be zero under uncertainty", a, b)
		}
	}
	if op == OpMul {
		if (a.IsZero() && b.IsInfinite()) || (b.IsZero() && a.IsInfinite()) {
			return NewUndefined(ReasonZeroTimesInfinity, "zero times infinity", a, b)
		}
	}
	if op == OpPow {
		if a.IsZero() && b.IsZero() {
			return NewUndefined(ReasonZeroPowZero, "zero to the power zero", a, b)
		}
		if a.Negative() && !a.IsInfinite() {
			if d, ok := parseDec(b.Known); ok && d.normalized().scale > 0 {
				return NewUndefined(ReasonNegativePowFraction,
					"negative base with non-integer exponent", a, b)
			}
		}
	}
	return nil
}

// RecoveryStrategy selects how a caller turns an undefined value back
// into something usable.
type RecoveryStrategy uint8

const (
	RecoverPropagate RecoveryStrategy = iota
	RecoverZero
	RecoverOne
	RecoverInfinity
	RecoverNaN
)

func (s RecoveryStrategy) String() string {
	switch s {
	case RecoverPropagate:
		return "propagate"
	case RecoverZero:
		return "zero"
	case RecoverOne:
		return "one"
	case RecoverInfinity:
		return "infinity"
	case RecoverNaN:
		return "nan"
	}
	return "?"
}

// Recover applies a caller-selected strategy to an undefined value.
// Values that are not undefined come back unchanged regardless of the
// strategy.
func (v *SolidValue) Recover(s RecoveryStrategy) *SolidValue {
	if !v.IsUndefined() {
		return v
	}
	switch s {
	case RecoverZero:
		return NewExact("0")
	case RecoverOne:
		return NewExact("1")
	case RecoverInfinity:
		return NewInfinity(false)
	case RecoverNaN:
		// A distinguished marker: still undefined, but flagged as the
		// deliberate substitute rather than an organic failure.
		reason := ReasonNone
		var left, right *SolidValue
		if v.Undef != nil {
			reason, left, right = v.Undef.Reason, v.Undef.Left, v.Undef.Right
		}
		nan := NewUndefined(reason, "recovered as NaN marker", left, right)
		nan.Known = "NaN"
		return nan
	}
	return v
}
