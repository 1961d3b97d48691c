// digits.go
//
// Exact decimal arithmetic over digit strings, the engine under the
// Exact×Exact regime of arith.go. A number is a sign, a magnitude digit
// string (most significant digit first) and a scale (digits after the
// decimal point). Magnitudes grow as needed; nothing here truncates.
//
// Addition and subtraction walk the digit strings with explicit
// carry/borrow. Multiplication regroups into base-10^9 limbs first so
// the schoolbook inner loop works on machine words instead of bytes.
// Division is classic long division with trial subtraction; it reports
// remainders so callers can distinguish exact from approximate results.

package solid

import "strings"

// decNum is a parsed known-digit string. digits holds the magnitude
// with no sign, no point, and no redundant leading zeros ("0" for
// zero); scale counts fractional digits.
type decNum struct {
	neg    bool
	digits string
	scale  int
}

func (d decNum) isZero() bool { return d.digits == "0" || d.digits == "" }

// parseDec parses an optional sign, digits, and at most one decimal
// point. Anything else (∞, ℕ, ⊥, empty) is rejected.
func parseDec(s string) (decNum, bool) {
	var d decNum
	if s == "" {
		return d, false
	}
	i := 0
	switch s[0] {
	case '-':
		d.neg = true
		i = 1
	case '+':
		i = 1
	}
	var mag strings.Builder
	seenPoint := false
	seenDigit := false
	for ; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			mag.WriteByte(c)
			seenDigit = true
			if seenPoint {
				d.scale++
			}
		case c == '.' && !seenPoint:
			seenPoint = true
		default:
			return decNum{}, false
		}
	}
	if !seenDigit {
		return decNum{}, false
	}
	d.digits = trimLeadingZeros(mag.String())
	if d.isZero() {
		d.neg = false
	}
	return d, true
}

// format renders the number back to a known-digit string.
func (d decNum) format() string {
	digits := d.digits
	if digits == "" {
		digits = "0"
	}
	var b strings.Builder
	if d.neg && !d.isZero() {
		b.WriteByte('-')
	}
	if d.scale == 0 {
		b.WriteString(digits)
		return b.String()
	}
	if len(digits) <= d.scale {
		b.WriteString("0.")
		for i := len(digits); i < d.scale; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
		return b.String()
	}
	b.WriteString(digits[:len(digits)-d.scale])
	b.WriteByte('.')
	b.WriteString(digits[len(digits)-d.scale:])
	return b.String()
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	if s == "" {
		return "0"
	}
	return s[i:]
}

// cmpMag compares two magnitudes: -1, 0, +1.
func cmpMag(a, b string) int {
	a, b = trimLeadingZeros(a), trimLeadingZeros(b)
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// addMag sums two magnitudes with carry propagation.
func addMag(a, b string) string {
	if len(a) < len(b) {
		a, b = b, a
	}
	out := make([]byte, len(a)+1)
	carry := byte(0)
	for i := 0; i < len(a); i++ {
		da := a[len(a)-1-i] - '0'
		db := byte(0)
		if i < len(b) {
			db = b[len(b)-1-i] - '0'
		}
		s := da + db + carry
		out[len(out)-1-i] = '0' + s%10
		carry = s / 10
	}
	out[0] = '0' + carry
	return trimLeadingZeros(string(out))
}

// subMag computes a-b with borrow propagation; requires a >= b.
func subMag(a, b string) string {
	out := make([]byte, len(a))
	borrow := byte(0)
	for i := 0; i < len(a); i++ {
		da := a[len(a)-1-i] - '0'
		db := byte(0)
		if i < len(b) {
			db = b[len(b)-1-i] - '0'
		}
		db += borrow
		if da < db {
			da += 10
			borrow = 1
		} else {
			borrow = 0
		}
		out[len(out)-1-i] = '0' + (da - db)
	}
	return trimLeadingZeros(string(out))
}

const limbBase = 1_000_000_000 // 10^9 per limb
const limbDigits = 9

// magToLimbs regroups a magnitude into little-endian base-10^9 limbs.
func magToLimbs(s string) []uint64 {
	s = trimLeadingZeros(s)
	n := (len(s) + limbDigits - 1) / limbDigits
	limbs := make([]uint64, n)
	end := len(s)
	for i := 0; i < n; i++ {
		start := end - limbDigits
		if start < 0 {
			start = 0
		}
		var limb uint64
		for j := start; j < end; j++ {
			limb = limb*10 + uint64(s[j]-'0')
		}
		limbs[i] = limb
		end = start
	}
	return limbs
}

func limbsToMag(limbs []uint64) string {
	n := len(limbs)
	for n > 1 && limbs[n-1] == 0 {
		n--
	}
	var b strings.Builder
	first := true
	for i := n - 1; i >= 0; i-- {
		limb := limbs[i]
		if first {
			b.WriteString(utoa(limb))
			first = false
			continue
		}
		// Inner limbs are zero-padded to full width.
		s := utoa(limb)
		for j := len(s); j < limbDigits; j++ {
			b.WriteByte('0')
		}
		b.WriteString(s)
	}
	return b.String()
}

func utoa(u uint64) string {
	if u == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = '0' + byte(u%10)
		u /= 10
	}
	return string(buf[i:])
}

// mulMag multiplies two magnitudes schoolbook-style over base-10^9
// limbs. A limb product fits in 60 bits, so uint64 accumulation with a
// running carry never overflows for the inline sizes we see.
func mulMag(a, b string) string {
	if cmpMag(a, "0") == 0 || cmpMag(b, "0") == 0 {
		return "0"
	}
	la, lb := magToLimbs(a), magToLimbs(b)
	out := make([]uint64, len(la)+len(lb))
	for i, x := range la {
		if x == 0 {
			continue
		}
		var carry uint64
		for j, y := range lb {
			cur := out[i+j] + x*y + carry
			out[i+j] = cur % limbBase
			carry = cur / limbBase
		}
		k := i + len(lb)
		for carry > 0 {
			cur := out[k] + carry
			out[k] = cur % limbBase
			carry = cur / limbBase
			k++
		}
	}
	return limbsToMag(out)
}

// divModMag long-divides a by b, returning quotient and remainder
// magnitudes. b must be nonzero.
func divModMag(a, b string) (q, r string) {
	a = trimLeadingZeros(a)
	b = trimLeadingZeros(b)
	if cmpMag(a, b) < 0 {
		return "0", a
	}
	var quo strings.Builder
	rem := ""
	for i := 0; i < len(a); i++ {
		rem = trimLeadingZeros(rem + string(a[i]))
		d := byte(0)
		for cmpMag(rem, b) >= 0 {
			rem = subMag(rem, b)
			d++
		}
		quo.WriteByte('0' + d)
	}
	return trimLeadingZeros(quo.String()), trimLeadingZeros(rem)
}

// shiftMag appends n zeros (multiply by 10^n).
func shiftMag(s string, n int) string {
	if cmpMag(s, "0") == 0 {
		return "0"
	}
	return s + strings.Repeat("0", n)
}

// align raises both numbers to a common scale.
func align(a, b decNum) (decNum, decNum) {
	for a.scale < b.scale {
		a.digits = shiftMag(a.digits, b.scale-a.scale)
		a.scale = b.scale
	}
	for b.scale < a.scale {
		b.digits = shiftMag(b.digits, a.scale-b.scale)
		b.scale = a.scale
	}
	return a, b
}

func (d decNum) normalized() decNum {
	d.digits = trimLeadingZeros(d.digits)
	// Drop trailing fractional zeros so "1.50"+"0.50" prints "2".
	for d.scale > 0 && len(d.digits) > 1 && d.digits[len(d.digits)-1] == '0' {
		d.digits = d.digits[:len(d.digits)-1]
		d.scale--
	}
	if d.scale > 0 && d.digits == "0" {
		d.scale = 0
	}
	if d.isZero() {
		d.neg = false
	}
	return d
}

func decAdd(a, b decNum) decNum {
	a, b = align(a, b)
	var out decNum
	out.scale = a.scale
	if a.neg == b.neg {
		out.neg = a.neg
		out.digits = addMag(a.digits, b.digits)
		return out.normalized()
	}
	switch cmpMag(a.digits, b.digits) {
	case 0:
		out.digits = "0"
	case 1:
		out.neg = a.neg
		out.digits = subMag(a.digits, b.digits)
	case -1:
		out.neg = b.neg
		out.digits = subMag(b.digits, a.digits)
	}
	return out.normalized()
}

func decSub(a, b decNum) decNum {
	b.neg = !b.neg
	return decAdd(a, b)
}

func decMul(a, b decNum) decNum {
	out := decNum{
		neg:    a.neg != b.neg,
		digits: mulMag(a.digits, b.digits),
		scale:  a.scale + b.scale,
	}
	return out.normalized()
}

// decDivExact divides a by b and succeeds only when the quotient is an
// exact integer. Inexact quotients are signaled, not errored; callers
// fall back to the gapped regime.
func decDivExact(a, b decNum) (decNum, bool) {
	if b.isZero() {
		return decNum{}, false
	}
	// a/b = (A·10^sb) / (B·10^sa) over integer magnitudes.
	na := shiftMag(a.digits, b.scale)
	nb := shiftMag(b.digits, a.scale)
	q, r := divModMag(na, nb)
	if cmpMag(r, "0") != 0 {
		return decNum{}, false
	}
	out := decNum{neg: a.neg != b.neg, digits: q}
	return out.normalized(), true
}

// decDivApprox produces the quotient to at most maxFrac fractional
// digits. If the expansion repeats within that window, cycle holds one
// period of the repetend.
func decDivApprox(a, b decNum, maxFrac int) (out decNum, cycle string) {
	if b.isZero() {
		return decNum{}, ""
	}
	na := shiftMag(a.digits, b.scale)
	nb := shiftMag(b.digits, a.scale)
	q, r := divModMag(na, nb)

	var frac strings.Builder
	seen := map[string]int{}
	for i := 0; i < maxFrac && cmpMag(r, "0") != 0; i++ {
		if at, ok := seen[r]; ok {
			cycle = frac.String()[at:]
			break
		}
		seen[r] = frac.Len()
		r = shiftMag(r, 1)
		d, rr := divModMag(r, nb)
		// d is a single digit here since r < nb*10.
		frac.WriteString(d)
		r = rr
	}
	out = decNum{neg: a.neg != b.neg, digits: q + frac.String(), scale: frac.Len()}
	return out.normalized(), cycle
}
