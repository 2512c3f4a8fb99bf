// Package codec decodes per-row, column-oriented raw bytes into
// strongly-typed values. It is the typed layer between a wide-column row
// scanner (see pkg/rows) and application code.
//
// # Decoders
//
// A Decoder[T] converts one RowData into a T or fails. Decoders come in
// three composable kinds:
//
//   - scalar decoders convert the bytes of exactly one present column into
//     a concrete value (integers, floats, bool, decimal, string, bytes)
//   - optional decoders wrap exactly one scalar decoder and map column
//     absence to a Null[T] value instead of an error
//   - product decoders compose 2 to 10 independently resolved sub-decoders
//     positionally into a tuple value
//
// # Binary layouts
//
// Scalar columns use fixed, big-endian layouts:
//
//	i16     2-byte two's-complement integer
//	i32     4-byte two's-complement integer
//	i64     8-byte two's-complement integer
//	f32     4-byte IEEE-754 bit pattern
//	f64     8-byte IEEE-754 bit pattern
//	bool    1 byte, zero = false, non-zero = true
//	decimal 4-byte scale, then two's-complement unscaled magnitude
//	string  raw UTF-8 bytes
//	bytes   raw bytes, copied
//
// # Arity and the row-key fallback
//
// Scalar and optional decoders require exactly one column. A product
// decoder of arity N accepts either N columns, or N-1 columns with the row
// key synthesized as the first logical field. Any other column count fails
// with an ArityError.
//
// # Composition
//
// The typed constructors are the compile-time resolution path:
//
//	d := codec.Product2(codec.Int32(), codec.Optional(codec.Int64()))
//	pair, err := d.Decode(row)
//
// Unsupported compositions do not exist in this API: an optional can only
// wrap a scalar, and tuples stop at arity 10. For schema-driven callers a
// Registry resolves decoders from type tags ("i32", "?string") at run time,
// failing with a ConfigurationError before any row is decoded. New scalar
// types register through NewScalar and RegisterScalar without touching the
// optional or product logic.
//
// # Error handling
//
// Decode failures are synchronous and final: ArityError for column-count
// mismatches, NullValueError for an absent column where a concrete value
// was required, and conversion errors for malformed bytes. There is no
// retry, default substitution, or partial result; skipping a row or
// aborting a batch is the caller's policy.
//
// # Thread safety
//
// Decoders are stateless. One decoder instance may decode independent rows
// from any number of goroutines without synchronization. RowData values are
// immutable and may be shared read-only, provided the producing scanner
// does not reuse their buffers mid-decode.
package codec
