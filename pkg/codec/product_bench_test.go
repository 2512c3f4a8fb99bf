package codec

import "testing"

func BenchmarkInt64_Decode(b *testing.B) {
	d := Int64()
	rd := row(be64(1234567890))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Decode(rd); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProduct3_Decode(b *testing.B) {
	d := Product3(Int32(), Optional(String()), Float64())
	rd := row(be32(42), []byte("name"), bef64(3.5))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Decode(rd); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProduct3_RowKeyFallback(b *testing.B) {
	d := Product3(String(), Int32(), Float64())
	rd := NewRowData([]byte("user:42"), be32(7), bef64(3.5))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Decode(rd); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSchema_Decode(b *testing.B) {
	d, err := DefaultRegistry().Schema("i32,?string,f64")
	if err != nil {
		b.Fatal(err)
	}
	rd := row(be32(42), []byte("name"), bef64(3.5))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := d.Decode(rd); err != nil {
			b.Fatal(err)
		}
	}
}
