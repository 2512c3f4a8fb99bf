package codec

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct2_DecodesPositionally(t *testing.T) {
	d := Product2(Int32(), String())

	got, err := d.Decode(row(be32(42), []byte("alice")))
	require.NoError(t, err)
	assert.Equal(t, Tuple2[int32, string]{V1: 42, V2: "alice"}, got)
}

func TestProduct2_OptionalComponent(t *testing.T) {
	// RowData(rowKey="row1", columns=[0x0000002A, absent]) decoded as
	// (int32, optional int32) yields (42, no value).
	d := Product2(Int32(), Optional(Int32()))

	got, err := d.Decode(row(be32(42), nil))
	require.NoError(t, err)
	assert.Equal(t, int32(42), got.V1)
	assert.False(t, got.V2.Valid)
}

func TestProduct_RowKeyFallback(t *testing.T) {
	// With one column fewer than the arity, the row key becomes the first
	// logical field.
	d := Product3(String(), Int32(), Bool())

	tup, err := d.Decode(NewRowData([]byte("user:42"), be32(7), []byte{0x01}))
	require.NoError(t, err)
	assert.Equal(t, "user:42", tup.V1)
	assert.Equal(t, int32(7), tup.V2)
	assert.True(t, tup.V3)
}

func TestProduct_FullColumnsTakePrecedence(t *testing.T) {
	d := Product2(String(), String())

	tup, err := d.Decode(NewRowData([]byte("key"), []byte("a"), []byte("b")))
	require.NoError(t, err)
	assert.Equal(t, "a", tup.V1, "the row key must not displace a supplied column")
	assert.Equal(t, "b", tup.V2)
}

func TestProduct_ArityFailure(t *testing.T) {
	d := Product3(Int32(), Int32(), Int32())

	testCases := []struct {
		name string
		cols [][]byte
	}{
		{name: "no columns", cols: nil},
		{name: "one column", cols: [][]byte{be32(1)}},
		{name: "four columns", cols: [][]byte{be32(1), be32(2), be32(3), be32(4)}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := d.Decode(NewRowData([]byte("row1"), tc.cols...))
			var arity *ArityError
			require.ErrorAs(t, err, &arity)
			assert.Equal(t, 3, arity.Expected)
			assert.Equal(t, len(tc.cols), arity.Got)
		})
	}
}

func TestProduct_ComponentErrorCarriesPosition(t *testing.T) {
	d := Product2(Int32(), Int32())

	_, err := d.Decode(row(be32(1), nil))
	require.Error(t, err)
	var null *NullValueError
	assert.ErrorAs(t, err, &null)
	assert.Contains(t, err.Error(), "column 1")
}

func TestProduct_NestedTuple(t *testing.T) {
	// A nested product sees a singleton RowData, so it decodes through its
	// own row-key fallback.
	inner := Product2(String(), Int32())
	d := Product2(inner, Int64())

	tup, err := d.Decode(NewRowData([]byte("nested"), be32(1), be64(2)))
	require.NoError(t, err)
	assert.Equal(t, "nested", tup.V1.V1)
	assert.Equal(t, int32(1), tup.V1.V2)
	assert.Equal(t, int64(2), tup.V2)
}

func TestProduct10_AllComponents(t *testing.T) {
	d := Product10(
		Int16(), Int32(), Int64(), Float32(), Float64(),
		Bool(), String(), Bytes(), Optional(Int32()), Decimal(),
	)
	require.Equal(t, 10, d.Arity())

	tup, err := d.Decode(row(
		be16(1), be32(2), be64(3), bef32(4.5), bef64(6.5),
		[]byte{0x01}, []byte("seven"), []byte{0x08}, nil,
		beDecimal(1, []byte{0x64}),
	))
	require.NoError(t, err)
	assert.Equal(t, int16(1), tup.V1)
	assert.Equal(t, int32(2), tup.V2)
	assert.Equal(t, int64(3), tup.V3)
	assert.Equal(t, float32(4.5), tup.V4)
	assert.Equal(t, 6.5, tup.V5)
	assert.True(t, tup.V6)
	assert.Equal(t, "seven", tup.V7)
	assert.Equal(t, []byte{0x08}, tup.V8)
	assert.False(t, tup.V9.Valid)
	assert.Equal(t, "10", tup.V10.String())
}

func TestNewProduct_ArityBounds(t *testing.T) {
	var cfg *ConfigurationError

	_, err := NewProduct(Int32())
	require.ErrorAs(t, err, &cfg)

	parts := make([]RowDecoder, 11)
	for i := range parts {
		parts[i] = Int32()
	}
	_, err = NewProduct(parts...)
	require.ErrorAs(t, err, &cfg)

	d, err := NewProduct(Int32(), String())
	require.NoError(t, err)
	vs, err := d.Decode(row(be32(9), []byte("nine")))
	require.NoError(t, err)
	assert.Equal(t, []any{int32(9), "nine"}, vs)
}

func TestProduct_ConcurrentUse(t *testing.T) {
	// One decoder instance, many goroutines, independent rows.
	d := Product2(Int32(), Optional(String()))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(n int32) {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				tup, err := d.Decode(row(be32(n), []byte("x")))
				if err != nil || tup.V1 != n {
					t.Errorf("concurrent decode: got (%v, %v)", tup, err)
					return
				}
			}
		}(int32(i))
	}
	wg.Wait()
}
