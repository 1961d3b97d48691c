// literal.go
//
// Construction from source-language literals. The upstream parser does
// not hand over strings: it supplies offsets into a shared string pool
// plus the already-resolved barrier character, gap, confidence and
// terminal coordinates. This file copies the referenced bytes out of
// the pool into a fresh SolidValue.

package solid

import (
	"errors"
	"fmt"
)

// ErrBadLiteral reports an out-of-range pool reference or an unknown
// kind character.
var ErrBadLiteral = errors.New("solid: invalid literal reference")

// LiteralRef is the parser's description of one solid-number literal.
// Offsets and lengths index the shared string pool.
type LiteralRef struct {
	KnownOffset     int
	KnownLen        int
	BarrierChar     byte
	GapMagnitude    uint64
	ConfidenceX1000 int
	TerminalOffset  int
	TerminalLen     int
	TerminalType    byte // 'd' digits, 'u' undefined, 's' superposition
}

// FromLiteral resolves a literal reference against its string pool.
func FromLiteral(pool string, ref LiteralRef) (*SolidValue, error) {
	known, err := poolSlice(pool, ref.KnownOffset, ref.KnownLen)
	if err != nil {
		return nil, fmt.Errorf("known digits: %w", err)
	}
	barrier, ok := ParseBarrierChar(ref.BarrierChar)
	if !ok {
		return nil, fmt.Errorf("%w: barrier char %q", ErrBadLiteral, ref.BarrierChar)
	}

	var term Terminal
	switch ref.TerminalType {
	case 'd':
		digits, err := poolSlice(pool, ref.TerminalOffset, ref.TerminalLen)
		if err != nil {
			return nil, fmt.Errorf("terminal digits: %w", err)
		}
		term = TerminalDigits(digits)
	case 'u':
		term = TerminalUndefined()
	case 's':
		term = TerminalSuperposition()
	default:
		return nil, fmt.Errorf("%w: terminal type %q", ErrBadLiteral, ref.TerminalType)
	}

	return New(known, barrier, ref.GapMagnitude, ref.ConfidenceX1000, term), nil
}

func poolSlice(pool string, off, n int) (string, error) {
	if off < 0 || n < 0 || off+n > len(pool) {
		return "", fmt.Errorf("%w: offset %d length %d against pool of %d",
			ErrBadLiteral, off, n, len(pool))
	}
	return pool[off : off+n], nil
}
