package output

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/pvoss/grand/errdefs"
	"github.com/pvoss/grand/rng"
)

// NumType is the fixed-width numeric type used for binary packing.
type NumType uint8

const (
	Float64 NumType = iota + 1
	Float32
	Int16
	Int32
	Int64
)

func (t NumType) String() string {
	switch t {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Int64:
		return "int64"
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// Width reports the type's size in bytes.
func (t NumType) Width() int {
	switch t {
	case Float64, Int64:
		return 8
	case Float32, Int32:
		return 4
	case Int16:
		return 2
	}
	return 0
}

// ParseNumType resolves a numeric type name case-insensitively.
func ParseNumType(s string) (NumType, error) {
	switch strings.ToLower(s) {
	case "float64":
		return Float64, nil
	case "float32":
		return Float32, nil
	case "int16":
		return Int16, nil
	case "int32":
		return Int32, nil
	case "int64":
		return Int64, nil
	}
	return 0, errdefs.Outputf(
		"invalid binary type %q, must be one of: float32, float64, int16, int32, int64", s)
}

// ByteOrder selects the packing byte order.
type ByteOrder uint8

const (
	LittleEndian ByteOrder = iota + 1
	BigEndian
	NativeEndian
)

func (o ByteOrder) String() string {
	switch o {
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	case NativeEndian:
		return "native"
	}
	return fmt.Sprintf("unknown(%d)", uint8(o))
}

// ParseByteOrder resolves a byte order name case-insensitively.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch strings.ToLower(s) {
	case "little":
		return LittleEndian, nil
	case "big":
		return BigEndian, nil
	case "native":
		return NativeEndian, nil
	}
	return 0, errdefs.Outputf("invalid byte order %q, must be one of: little, big, native", s)
}

func (o ByteOrder) byteOrder() binary.ByteOrder {
	switch o {
	case BigEndian:
		return binary.BigEndian
	case NativeEndian:
		return binary.NativeEndian
	}
	return binary.LittleEndian
}

// BinaryFormatter packs each value as one fixed-width number in the
// configured byte order, with no header, length prefix, or trailer. The
// zero value packs little-endian float64. Values that cannot be
// represented exactly in the configured type fail instead of truncating.
type BinaryFormatter struct {
	Type  NumType
	Order ByteOrder
}

func (f BinaryFormatter) Format(s rng.Samples) (Payload, error) {
	typ := f.Type
	if typ == 0 {
		typ = Float64
	}
	order := f.Order
	if order == 0 {
		order = LittleEndian
	}
	bo := order.byteOrder()

	buf := make([]byte, 0, len(s.Values)*typ.Width())
	scratch := make([]byte, 8)
	for _, v := range s.Values {
		n, err := packValue(scratch, v, s.Integer, typ, bo)
		if err != nil {
			return Payload{}, err
		}
		buf = append(buf, scratch[:n]...)
	}
	return Payload{Bytes: buf, Binary: true, Ext: f.Extension()}, nil
}

func packValue(dst []byte, v float64, integer bool, typ NumType, bo binary.ByteOrder) (int, error) {
	switch typ {
	case Float64:
		bo.PutUint64(dst, math.Float64bits(v))
		return 8, nil
	case Float32:
		f32 := float32(v)
		if integer && float64(f32) != v {
			return 0, lossErr(v, typ)
		}
		bo.PutUint32(dst, math.Float32bits(f32))
		return 4, nil
	case Int16:
		i, err := intValue(v, typ, math.MinInt16, 1<<15)
		if err != nil {
			return 0, err
		}
		bo.PutUint16(dst, uint16(int16(i)))
		return 2, nil
	case Int32:
		i, err := intValue(v, typ, math.MinInt32, 1<<31)
		if err != nil {
			return 0, err
		}
		bo.PutUint32(dst, uint32(int32(i)))
		return 4, nil
	case Int64:
		i, err := intValue(v, typ, math.MinInt64, 1<<63)
		if err != nil {
			return 0, err
		}
		bo.PutUint64(dst, uint64(i))
		return 8, nil
	}
	panic("output: unknown binary numeric type")
}

// intValue rejects v unless it is integral and in [min, maxExcl). The
// upper bound is exclusive because float64(MaxInt64) rounds up to 2^63,
// which an inclusive check would let through into an overflowing
// conversion.
func intValue(v float64, typ NumType, min, maxExcl float64) (int64, error) {
	if v != math.Trunc(v) || math.IsNaN(v) || v < min || v >= maxExcl {
		return 0, lossErr(v, typ)
	}
	return int64(v), nil
}

func lossErr(v float64, typ NumType) error {
	return errdefs.Outputf("value %v cannot be represented exactly as %s", v, typ)
}

func (BinaryFormatter) Extension() string { return ".bin" }
