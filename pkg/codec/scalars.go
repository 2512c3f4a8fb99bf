package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

// ScalarDecoder converts the bytes of exactly one present column into a
// value of type T. Additional scalar types plug in through NewScalar
// without touching optional or product logic.
type ScalarDecoder[T any] struct {
	name    string
	convert func(b []byte) (T, error)
}

// NewScalar builds a scalar decoder from a byte conversion function. The
// name is used as the registry type tag and in error messages.
func NewScalar[T any](name string, convert func(b []byte) (T, error)) *ScalarDecoder[T] {
	return &ScalarDecoder[T]{name: name, convert: convert}
}

// Name returns the decoder's type tag.
func (d *ScalarDecoder[T]) Name() string { return d.name }

func (d *ScalarDecoder[T]) Arity() int { return 1 }

func (d *ScalarDecoder[T]) Kind() Kind { return KindPrimitive }

// Decode converts the single column into a T. The column must be present.
func (d *ScalarDecoder[T]) Decode(rd RowData) (T, error) {
	var zero T
	if len(rd.Columns) != 1 {
		return zero, &ArityError{Expected: 1, Got: len(rd.Columns)}
	}
	if rd.Columns[0] == nil {
		return zero, &NullValueError{}
	}
	return d.convert(rd.Columns[0])
}

func (d *ScalarDecoder[T]) DecodeAny(rd RowData) (any, error) {
	return d.Decode(rd)
}

// fixedWidth guards the documented fixed-width layouts.
func fixedWidth(name string, b []byte, want int) error {
	if len(b) != want {
		return fmt.Errorf("decode %s: want %d bytes, got %d", name, want, len(b))
	}
	return nil
}

// Int16 decodes a 2-byte big-endian two's-complement integer.
func Int16() *ScalarDecoder[int16] {
	return NewScalar("i16", func(b []byte) (int16, error) {
		if err := fixedWidth("i16", b, 2); err != nil {
			return 0, err
		}
		return int16(binary.BigEndian.Uint16(b)), nil
	})
}

// Int32 decodes a 4-byte big-endian two's-complement integer.
func Int32() *ScalarDecoder[int32] {
	return NewScalar("i32", func(b []byte) (int32, error) {
		if err := fixedWidth("i32", b, 4); err != nil {
			return 0, err
		}
		return int32(binary.BigEndian.Uint32(b)), nil
	})
}

// Int64 decodes an 8-byte big-endian two's-complement integer.
func Int64() *ScalarDecoder[int64] {
	return NewScalar("i64", func(b []byte) (int64, error) {
		if err := fixedWidth("i64", b, 8); err != nil {
			return 0, err
		}
		return int64(binary.BigEndian.Uint64(b)), nil
	})
}

// Float32 decodes a 4-byte big-endian IEEE-754 single-precision float.
func Float32() *ScalarDecoder[float32] {
	return NewScalar("f32", func(b []byte) (float32, error) {
		if err := fixedWidth("f32", b, 4); err != nil {
			return 0, err
		}
		return math.Float32frombits(binary.BigEndian.Uint32(b)), nil
	})
}

// Float64 decodes an 8-byte big-endian IEEE-754 double-precision float.
func Float64() *ScalarDecoder[float64] {
	return NewScalar("f64", func(b []byte) (float64, error) {
		if err := fixedWidth("f64", b, 8); err != nil {
			return 0, err
		}
		return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
	})
}

// Bool decodes a single byte: zero is false, anything else is true.
func Bool() *ScalarDecoder[bool] {
	return NewScalar("bool", func(b []byte) (bool, error) {
		if err := fixedWidth("bool", b, 1); err != nil {
			return false, err
		}
		return b[0] != 0, nil
	})
}

// String decodes the column bytes as UTF-8 text.
func String() *ScalarDecoder[string] {
	return NewScalar("string", func(b []byte) (string, error) {
		return string(b), nil
	})
}

// Bytes copies the column bytes verbatim.
func Bytes() *ScalarDecoder[[]byte] {
	return NewScalar("bytes", func(b []byte) ([]byte, error) {
		return append([]byte(nil), b...), nil
	})
}

// Decimal decodes an arbitrary-precision decimal laid out as a 4-byte
// big-endian scale followed by the big-endian two's-complement unscaled
// magnitude. The decoded value is magnitude * 10^-scale.
func Decimal() *ScalarDecoder[decimal.Decimal] {
	return NewScalar("decimal", func(b []byte) (decimal.Decimal, error) {
		if len(b) < 5 {
			return decimal.Decimal{}, fmt.Errorf("decode decimal: want at least 5 bytes, got %d", len(b))
		}
		scale := int32(binary.BigEndian.Uint32(b[:4]))
		return decimal.NewFromBigInt(twosComplement(b[4:]), -scale), nil
	})
}

// twosComplement interprets big-endian two's-complement bytes of any width.
func twosComplement(b []byte) *big.Int {
	v := new(big.Int).SetBytes(b)
	if b[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), uint(len(b))*8))
	}
	return v
}
