package output

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvoss/grand/errdefs"
	"github.com/pvoss/grand/rng"
)

func TestBinaryFormatterFloat64(t *testing.T) {
	vals := []float64{1.5, -2.25, math.Pi}
	p, err := BinaryFormatter{}.Format(rng.Samples{Values: vals})
	require.NoError(t, err)
	require.True(t, p.Binary)
	require.Len(t, p.Bytes, 8*len(vals))

	for i, want := range vals {
		bits := binary.LittleEndian.Uint64(p.Bytes[i*8:])
		assert.Equal(t, want, math.Float64frombits(bits))
	}
}

func TestBinaryFormatterByteOrder(t *testing.T) {
	s := rng.Samples{Values: []float64{1.0}}

	little, err := BinaryFormatter{Order: LittleEndian}.Format(s)
	require.NoError(t, err)
	big, err := BinaryFormatter{Order: BigEndian}.Format(s)
	require.NoError(t, err)
	native, err := BinaryFormatter{Order: NativeEndian}.Format(s)
	require.NoError(t, err)

	assert.NotEqual(t, little.Bytes, big.Bytes)
	assert.Equal(t, math.Float64bits(1.0), binary.BigEndian.Uint64(big.Bytes))
	assert.Equal(t, math.Float64bits(1.0), binary.NativeEndian.Uint64(native.Bytes))
}

func TestBinaryFormatterIntTypes(t *testing.T) {
	s := rng.Samples{Values: []float64{3, -7, 12}, Integer: true}

	p, err := BinaryFormatter{Type: Int16}.Format(s)
	require.NoError(t, err)
	require.Len(t, p.Bytes, 2*3)
	assert.Equal(t, int16(3), int16(binary.LittleEndian.Uint16(p.Bytes[0:])))
	assert.Equal(t, int16(-7), int16(binary.LittleEndian.Uint16(p.Bytes[2:])))

	p, err = BinaryFormatter{Type: Int64, Order: BigEndian}.Format(s)
	require.NoError(t, err)
	require.Len(t, p.Bytes, 8*3)
	assert.Equal(t, int64(-7), int64(binary.BigEndian.Uint64(p.Bytes[8:])))

	// The int64 lower bound is exactly representable and must pack.
	p, err = BinaryFormatter{Type: Int64}.Format(rng.Samples{Values: []float64{math.MinInt64}, Integer: true})
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<63, binary.LittleEndian.Uint64(p.Bytes))
}

func TestBinaryFormatterExactness(t *testing.T) {
	tests := []struct {
		name string
		s    rng.Samples
		typ  NumType
	}{
		{"fractional value as int32", rng.Samples{Values: []float64{1.5}}, Int32},
		{"int16 overflow", rng.Samples{Values: []float64{70000}, Integer: true}, Int16},
		{"int32 overflow", rng.Samples{Values: []float64{3e9}, Integer: true}, Int32},
		{"integer count lossy as float32", rng.Samples{Values: []float64{1 << 30, 1<<30 + 1}, Integer: true}, Float32},
		{"int64 overflow at 2^63", rng.Samples{Values: []float64{math.MaxInt64}, Integer: true}, Int64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BinaryFormatter{Type: tt.typ}.Format(tt.s)
			require.Error(t, err)
			assert.Equal(t, errdefs.KindOutput, errdefs.KindOf(err))
			assert.Contains(t, err.Error(), "cannot be represented exactly")
		})
	}
}

func TestBinaryFormatterFloat32Continuous(t *testing.T) {
	// Continuous samples may lose precision in float32; that is the
	// caller's tradeoff, not an error.
	p, err := BinaryFormatter{Type: Float32}.Format(rng.Samples{Values: []float64{math.Pi}})
	require.NoError(t, err)
	require.Len(t, p.Bytes, 4)
	got := math.Float32frombits(binary.LittleEndian.Uint32(p.Bytes))
	assert.Equal(t, float32(math.Pi), got)
}

func TestParseNumType(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want NumType
	}{
		{"float64", Float64},
		{"Float32", Float32},
		{"INT16", Int16},
		{"int32", Int32},
		{"int64", Int64},
	} {
		got, err := ParseNumType(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
	_, err := ParseNumType("uint8")
	require.Error(t, err)
	assert.Equal(t, errdefs.KindOutput, errdefs.KindOf(err))
}

func TestParseByteOrder(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want ByteOrder
	}{
		{"little", LittleEndian},
		{"BIG", BigEndian},
		{"native", NativeEndian},
	} {
		got, err := ParseByteOrder(tt.in)
		require.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
	_, err := ParseByteOrder("middle")
	assert.Error(t, err)
}
