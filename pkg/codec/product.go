package codec

import "fmt"

// Product decoder arity bounds.
const (
	MinArity = 2
	MaxArity = 10
)

// decodeColumns is the positional core shared by every product decoder:
// the arity check with its row-key fallback, partitioning of the row into
// singleton RowData values, and per-component decoding.
//
// A row with exactly one column fewer than the product's arity is decoded
// with the row key standing in as the first logical field, so the row
// identifier does not have to be stored as a column.
func decodeColumns(parts []RowDecoder, rd RowData) ([]any, error) {
	n := len(parts)
	cols := rd.Columns
	switch len(cols) {
	case n:
	case n - 1:
		withKey := make([][]byte, 0, n)
		withKey = append(withKey, rd.Key)
		withKey = append(withKey, cols...)
		cols = withKey
	default:
		return nil, &ArityError{Expected: n, Got: len(cols)}
	}

	out := make([]any, n)
	for i, part := range parts {
		v, err := part.DecodeAny(rd.single(cols[i]))
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

// tupleDecoder adapts the positional core to a concrete tuple type. The
// fixed-arity constructors below differ only in how they reassemble the
// decoded components.
type tupleDecoder[T any] struct {
	parts    []RowDecoder
	assemble func(vs []any) T
}

func (d *tupleDecoder[T]) Arity() int { return len(d.parts) }

func (d *tupleDecoder[T]) Kind() Kind { return KindProduct }

func (d *tupleDecoder[T]) Decode(rd RowData) (T, error) {
	vs, err := decodeColumns(d.parts, rd)
	if err != nil {
		var zero T
		return zero, err
	}
	return d.assemble(vs), nil
}

func (d *tupleDecoder[T]) DecodeAny(rd RowData) (any, error) {
	return d.Decode(rd)
}

// NewProduct composes a schema-driven product decoder from independently
// resolved component decoders, yielding the decoded components as a slice.
// Arity must lie in [MinArity, MaxArity].
func NewProduct(parts ...RowDecoder) (Decoder[[]any], error) {
	if len(parts) < MinArity || len(parts) > MaxArity {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("product arity must be between %d and %d, got %d", MinArity, MaxArity, len(parts)),
		}
	}
	ps := make([]RowDecoder, len(parts))
	copy(ps, parts)
	return &tupleDecoder[[]any]{
		parts:    ps,
		assemble: func(vs []any) []any { return vs },
	}, nil
}

// Fixed-arity tuple values. V1 is the first declared column (or the row key
// when the row-key fallback applies).

type Tuple2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

type Tuple3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

type Tuple4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

type Tuple5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

type Tuple6[T1, T2, T3, T4, T5, T6 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

type Tuple7[T1, T2, T3, T4, T5, T6, T7 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
}

type Tuple8[T1, T2, T3, T4, T5, T6, T7, T8 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
}

type Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
	V7 T7
	V8 T8
	V9 T9
}

type Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any] struct {
	V1  T1
	V2  T2
	V3  T3
	V4  T4
	V5  T5
	V6  T6
	V7  T7
	V8  T8
	V9  T9
	V10 T10
}

// Product2 composes two decoders into a Tuple2 decoder.
func Product2[T1, T2 any](d1 Decoder[T1], d2 Decoder[T2]) Decoder[Tuple2[T1, T2]] {
	return &tupleDecoder[Tuple2[T1, T2]]{
		parts: []RowDecoder{d1, d2},
		assemble: func(vs []any) Tuple2[T1, T2] {
			return Tuple2[T1, T2]{V1: vs[0].(T1), V2: vs[1].(T2)}
		},
	}
}

// Product3 composes three decoders into a Tuple3 decoder.
func Product3[T1, T2, T3 any](d1 Decoder[T1], d2 Decoder[T2], d3 Decoder[T3]) Decoder[Tuple3[T1, T2, T3]] {
	return &tupleDecoder[Tuple3[T1, T2, T3]]{
		parts: []RowDecoder{d1, d2, d3},
		assemble: func(vs []any) Tuple3[T1, T2, T3] {
			return Tuple3[T1, T2, T3]{V1: vs[0].(T1), V2: vs[1].(T2), V3: vs[2].(T3)}
		},
	}
}

// Product4 composes four decoders into a Tuple4 decoder.
func Product4[T1, T2, T3, T4 any](d1 Decoder[T1], d2 Decoder[T2], d3 Decoder[T3], d4 Decoder[T4]) Decoder[Tuple4[T1, T2, T3, T4]] {
	return &tupleDecoder[Tuple4[T1, T2, T3, T4]]{
		parts: []RowDecoder{d1, d2, d3, d4},
		assemble: func(vs []any) Tuple4[T1, T2, T3, T4] {
			return Tuple4[T1, T2, T3, T4]{V1: vs[0].(T1), V2: vs[1].(T2), V3: vs[2].(T3), V4: vs[3].(T4)}
		},
	}
}

// Product5 composes five decoders into a Tuple5 decoder.
func Product5[T1, T2, T3, T4, T5 any](d1 Decoder[T1], d2 Decoder[T2], d3 Decoder[T3], d4 Decoder[T4], d5 Decoder[T5]) Decoder[Tuple5[T1, T2, T3, T4, T5]] {
	return &tupleDecoder[Tuple5[T1, T2, T3, T4, T5]]{
		parts: []RowDecoder{d1, d2, d3, d4, d5},
		assemble: func(vs []any) Tuple5[T1, T2, T3, T4, T5] {
			return Tuple5[T1, T2, T3, T4, T5]{
				V1: vs[0].(T1), V2: vs[1].(T2), V3: vs[2].(T3), V4: vs[3].(T4), V5: vs[4].(T5),
			}
		},
	}
}

// Product6 composes six decoders into a Tuple6 decoder.
func Product6[T1, T2, T3, T4, T5, T6 any](d1 Decoder[T1], d2 Decoder[T2], d3 Decoder[T3], d4 Decoder[T4], d5 Decoder[T5], d6 Decoder[T6]) Decoder[Tuple6[T1, T2, T3, T4, T5, T6]] {
	return &tupleDecoder[Tuple6[T1, T2, T3, T4, T5, T6]]{
		parts: []RowDecoder{d1, d2, d3, d4, d5, d6},
		assemble: func(vs []any) Tuple6[T1, T2, T3, T4, T5, T6] {
			return Tuple6[T1, T2, T3, T4, T5, T6]{
				V1: vs[0].(T1), V2: vs[1].(T2), V3: vs[2].(T3),
				V4: vs[3].(T4), V5: vs[4].(T5), V6: vs[5].(T6),
			}
		},
	}
}

// Product7 composes seven decoders into a Tuple7 decoder.
func Product7[T1, T2, T3, T4, T5, T6, T7 any](d1 Decoder[T1], d2 Decoder[T2], d3 Decoder[T3], d4 Decoder[T4], d5 Decoder[T5], d6 Decoder[T6], d7 Decoder[T7]) Decoder[Tuple7[T1, T2, T3, T4, T5, T6, T7]] {
	return &tupleDecoder[Tuple7[T1, T2, T3, T4, T5, T6, T7]]{
		parts: []RowDecoder{d1, d2, d3, d4, d5, d6, d7},
		assemble: func(vs []any) Tuple7[T1, T2, T3, T4, T5, T6, T7] {
			return Tuple7[T1, T2, T3, T4, T5, T6, T7]{
				V1: vs[0].(T1), V2: vs[1].(T2), V3: vs[2].(T3), V4: vs[3].(T4),
				V5: vs[4].(T5), V6: vs[5].(T6), V7: vs[6].(T7),
			}
		},
	}
}

// Product8 composes eight decoders into a Tuple8 decoder.
func Product8[T1, T2, T3, T4, T5, T6, T7, T8 any](d1 Decoder[T1], d2 Decoder[T2], d3 Decoder[T3], d4 Decoder[T4], d5 Decoder[T5], d6 Decoder[T6], d7 Decoder[T7], d8 Decoder[T8]) Decoder[Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]] {
	return &tupleDecoder[Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]]{
		parts: []RowDecoder{d1, d2, d3, d4, d5, d6, d7, d8},
		assemble: func(vs []any) Tuple8[T1, T2, T3, T4, T5, T6, T7, T8] {
			return Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{
				V1: vs[0].(T1), V2: vs[1].(T2), V3: vs[2].(T3), V4: vs[3].(T4),
				V5: vs[4].(T5), V6: vs[5].(T6), V7: vs[6].(T7), V8: vs[7].(T8),
			}
		},
	}
}

// Product9 composes nine decoders into a Tuple9 decoder.
func Product9[T1, T2, T3, T4, T5, T6, T7, T8, T9 any](d1 Decoder[T1], d2 Decoder[T2], d3 Decoder[T3], d4 Decoder[T4], d5 Decoder[T5], d6 Decoder[T6], d7 Decoder[T7], d8 Decoder[T8], d9 Decoder[T9]) Decoder[Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]] {
	return &tupleDecoder[Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]]{
		parts: []RowDecoder{d1, d2, d3, d4, d5, d6, d7, d8, d9},
		assemble: func(vs []any) Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9] {
			return Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{
				V1: vs[0].(T1), V2: vs[1].(T2), V3: vs[2].(T3), V4: vs[3].(T4),
				V5: vs[4].(T5), V6: vs[5].(T6), V7: vs[6].(T7), V8: vs[7].(T8),
				V9: vs[8].(T9),
			}
		},
	}
}

// Product10 composes ten decoders into a Tuple10 decoder.
func Product10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10 any](d1 Decoder[T1], d2 Decoder[T2], d3 Decoder[T3], d4 Decoder[T4], d5 Decoder[T5], d6 Decoder[T6], d7 Decoder[T7], d8 Decoder[T8], d9 Decoder[T9], d10 Decoder[T10]) Decoder[Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]] {
	return &tupleDecoder[Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]]{
		parts: []RowDecoder{d1, d2, d3, d4, d5, d6, d7, d8, d9, d10},
		assemble: func(vs []any) Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10] {
			return Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{
				V1: vs[0].(T1), V2: vs[1].(T2), V3: vs[2].(T3), V4: vs[3].(T4),
				V5: vs[4].(T5), V6: vs[5].(T6), V7: vs[6].(T7), V8: vs[7].(T8),
				V9: vs[8].(T9), V10: vs[9].(T10),
			}
		},
	}
}
