// codec.go
//
// The 64-byte fixed-layout interchange record consumed by the code
// generator:
//
//	offset  size  field
//	0       2     known length (little-endian)
//	2       2     terminal length
//	4       1     barrier char (q,e,s,t,c,i,u,x)
//	5       1     terminal-type code (0 digits, 1 undefined, 2 superposition)
//	6       2     confidence ×1000
//	8       8     gap magnitude
//	16      48    known digits, then terminal digits, zero-padded
//
// Serialization is lossless up to the 48-byte payload capacity; values
// whose digits do not fit produce ErrTruncated instead of being cut
// silently.

package solid

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// RecordSize is the fixed interchange record size.
const RecordSize = 64

const (
	recordHeaderSize = 16
	recordPayloadCap = RecordSize - recordHeaderSize
)

// ErrTruncated reports digits that do not fit the interchange record.
var ErrTruncated = errors.New("solid: digits exceed 64-byte record capacity")

// ErrBadRecord reports a malformed interchange record.
var ErrBadRecord = errors.New("solid: malformed 64-byte record")

func terminalTypeCode(k TerminalKind) byte { return byte(k) }

func terminalKindFromCode(c byte) (TerminalKind, bool) {
	switch c {
	case 0:
		return TermDigits, true
	case 1:
		return TermUndefined, true
	case 2:
		return TermSuperposition, true
	}
	return TermDigits, false
}

// MarshalRecord serializes the value into the 64-byte layout.
func (v *SolidValue) MarshalRecord() ([]byte, error) {
	known := []byte(v.Known)
	term := []byte(v.Terminal.Digits)
	if len(known)+len(term) > recordPayloadCap {
		return nil, fmt.Errorf("%w: %d known + %d terminal bytes", ErrTruncated, len(known), len(term))
	}
	buf := make([]byte, RecordSize)
	binary.LittleEndian.PutUint16(buf[0:2], uint16(len(known)))
	binary.LittleEndian.PutUint16(buf[2:4], uint16(len(term)))
	buf[4] = v.Barrier.Char()
	buf[5] = terminalTypeCode(v.Terminal.Kind)
	binary.LittleEndian.PutUint16(buf[6:8], uint16(v.Confidence))
	binary.LittleEndian.PutUint64(buf[8:16], v.GapMagnitude)
	copy(buf[recordHeaderSize:], known)
	copy(buf[recordHeaderSize+len(known):], term)
	return buf, nil
}

// UnmarshalRecord reconstructs a value from the 64-byte layout.
func UnmarshalRecord(buf []byte) (*SolidValue, error) {
	if len(buf) != RecordSize {
		return nil, fmt.Errorf("%w: length %d", ErrBadRecord, len(buf))
	}
	knownLen := int(binary.LittleEndian.Uint16(buf[0:2]))
	termLen := int(binary.LittleEndian.Uint16(buf[2:4]))
	if knownLen+termLen > recordPayloadCap {
		return nil, fmt.Errorf("%w: payload %d+%d", ErrBadRecord, knownLen, termLen)
	}
	barrier, ok := ParseBarrierChar(buf[4])
	if !ok {
		return nil, fmt.Errorf("%w: barrier char %q", ErrBadRecord, buf[4])
	}
	kind, ok := terminalKindFromCode(buf[5])
	if !ok {
		return nil, fmt.Errorf("%w: terminal code %d", ErrBadRecord, buf[5])
	}
	confidence := int(binary.LittleEndian.Uint16(buf[6:8]))
	gap := binary.LittleEndian.Uint64(buf[8:16])

	known := string(buf[recordHeaderSize : recordHeaderSize+knownLen])
	term := Terminal{Kind: kind}
	if kind == TermDigits {
		term.Digits = string(buf[recordHeaderSize+knownLen : recordHeaderSize+knownLen+termLen])
	}
	return New(known, barrier, gap, confidence, term), nil
}
