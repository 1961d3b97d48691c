package solid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Codec_RoundTrip_Gapped(t *testing.T) {
	v := New("3.14159", BarrierQuantum, 10_000_000_000, 732, TerminalDigits("59"))

	buf, err := v.MarshalRecord()
	require.NoError(t, err)
	require.Len(t, buf, RecordSize)

	got, err := UnmarshalRecord(buf)
	require.NoError(t, err)
	assert.Equal(t, v.Known, got.Known)
	assert.Equal(t, v.Barrier, got.Barrier)
	assert.Equal(t, v.GapMagnitude, got.GapMagnitude)
	assert.Equal(t, v.Confidence, got.Confidence)
	assert.Equal(t, v.Terminal, got.Terminal)
	assert.Equal(t, v.Display(), got.Display())
}

func Test_Codec_RoundTrip_AllTerminalKinds(t *testing.T) {
	for _, term := range []Terminal{
		TerminalDigits("1234567890123456"),
		TerminalUndefined(),
		TerminalSuperposition(),
	} {
		v := New("-0.5", BarrierTemporal, GapInfinite, 415, term)
		buf, err := v.MarshalRecord()
		require.NoError(t, err)
		got, err := UnmarshalRecord(buf)
		require.NoError(t, err)
		assert.Equal(t, term, got.Terminal)
	}
}

func Test_Codec_RoundTrip_Exact(t *testing.T) {
	v := NewExact("12345678901234567890")
	buf, err := v.MarshalRecord()
	require.NoError(t, err)
	got, err := UnmarshalRecord(buf)
	require.NoError(t, err)
	assert.True(t, got.IsExact())
	assert.Equal(t, v.Known, got.Known)
	assert.Equal(t, 1000, got.Confidence)
	assert.Zero(t, got.GapMagnitude)
}

func Test_Codec_Truncation_IsExplicit(t *testing.T) {
	v := NewExact(strings.Repeat("9", recordPayloadCap+1))
	_, err := v.MarshalRecord()
	require.ErrorIs(t, err, ErrTruncated)

	// Exactly at capacity still fits.
	v = NewExact(strings.Repeat("9", recordPayloadCap))
	_, err = v.MarshalRecord()
	require.NoError(t, err)
}

func Test_Codec_RejectsMalformedRecords(t *testing.T) {
	_, err := UnmarshalRecord(make([]byte, 10))
	require.ErrorIs(t, err, ErrBadRecord)

	v := New("1", BarrierEnergy, 100, 900, TerminalDigits("7"))
	buf, err := v.MarshalRecord()
	require.NoError(t, err)

	bad := append([]byte(nil), buf...)
	bad[4] = 'z' // unknown barrier char
	_, err = UnmarshalRecord(bad)
	require.ErrorIs(t, err, ErrBadRecord)

	bad = append([]byte(nil), buf...)
	bad[5] = 9 // unknown terminal code
	_, err = UnmarshalRecord(bad)
	require.ErrorIs(t, err, ErrBadRecord)

	bad = append([]byte(nil), buf...)
	bad[0] = 0xFF // known length past payload capacity
	bad[1] = 0x00
	_, err = UnmarshalRecord(bad)
	require.ErrorIs(t, err, ErrBadRecord)
}
