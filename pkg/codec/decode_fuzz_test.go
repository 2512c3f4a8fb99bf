//go:build fuzz
// +build fuzz

package codec

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// FuzzScalarDecode feeds arbitrary column bytes through every built-in
// scalar decoder. Decoders may reject input but must never panic, and the
// i32 layout must round-trip whenever the width matches.
func FuzzScalarDecode(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0x00})
	f.Add([]byte{0x00, 0x00, 0x00, 0x2A})
	f.Add([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF})
	f.Add([]byte("plain text"))

	decoders := []RowDecoder{
		Int16(), Int32(), Int64(), Float32(), Float64(),
		Bool(), String(), Bytes(), Decimal(),
	}

	f.Fuzz(func(t *testing.T, col []byte) {
		rd := NewRowData([]byte("fuzz"), col)
		for _, d := range decoders {
			_, _ = d.DecodeAny(rd)
		}

		if len(col) == 4 {
			v, err := Int32().Decode(rd)
			if err != nil {
				t.Fatalf("4-byte i32 decode failed: %v", err)
			}
			var back [4]byte
			binary.BigEndian.PutUint32(back[:], uint32(v))
			if !bytes.Equal(back[:], col) {
				t.Fatalf("i32 round-trip mismatch: %x -> %d -> %x", col, v, back)
			}
		}
	})
}

// FuzzProductDecode decodes arbitrary two-column rows through a product
// decoder and checks that every outcome is a value or a typed error.
func FuzzProductDecode(f *testing.F) {
	f.Add([]byte("row"), []byte{0x00, 0x00, 0x00, 0x01}, []byte("x"))
	f.Add([]byte{}, []byte{}, []byte{})

	d := Product2(Optional(Int32()), String())

	f.Fuzz(func(t *testing.T, key, c1, c2 []byte) {
		_, _ = d.Decode(NewRowData(key, c1, c2))
		_, _ = d.Decode(NewRowData(key, c1))
		_, _ = d.Decode(NewRowData(key))
	})
}
