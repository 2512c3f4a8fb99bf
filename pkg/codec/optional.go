package codec

import "fmt"

// Null carries the result of an optional decode. Valid reports whether the
// column held a value.
type Null[T any] struct {
	V     T
	Valid bool
}

// OptionalDecoder maps an absent or empty column to an invalid Null[T] and
// a present column to the wrapped scalar's decode.
type OptionalDecoder[T any] struct {
	inner *ScalarDecoder[T]
}

// Optional wraps a scalar decoder so that column absence decodes to a value
// instead of failing with a NullValueError. Only scalar decoders can be
// wrapped; wrapping an optional or product decoder is rejected by the
// signature at compile time.
func Optional[T any](inner *ScalarDecoder[T]) *OptionalDecoder[T] {
	return &OptionalDecoder[T]{inner: inner}
}

func (d *OptionalDecoder[T]) Arity() int { return 1 }

func (d *OptionalDecoder[T]) Kind() Kind { return KindOptional }

// Decode returns Null[T]{} when the single column is absent or empty, and
// the wrapped decode of the column bytes otherwise.
func (d *OptionalDecoder[T]) Decode(rd RowData) (Null[T], error) {
	if len(rd.Columns) != 1 {
		return Null[T]{}, &ArityError{Expected: 1, Got: len(rd.Columns)}
	}
	if len(rd.Columns[0]) == 0 {
		return Null[T]{}, nil
	}
	v, err := d.inner.Decode(rd)
	if err != nil {
		return Null[T]{}, err
	}
	return Null[T]{V: v, Valid: true}, nil
}

func (d *OptionalDecoder[T]) DecodeAny(rd RowData) (any, error) {
	return d.Decode(rd)
}

// optionalAny is the type-erased counterpart of OptionalDecoder used by
// schema-driven composition. It produces Null[any].
type optionalAny struct {
	inner RowDecoder
}

// OptionalAny wraps an already-erased decoder for dynamic composition. The
// wrapped decoder must be a primitive; anything else fails with a
// ConfigurationError at composition time, never during decode.
func OptionalAny(inner RowDecoder) (RowDecoder, error) {
	if inner.Kind() != KindPrimitive {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("optional can only wrap a primitive decoder, not a %s decoder", inner.Kind()),
		}
	}
	return &optionalAny{inner: inner}, nil
}

func (d *optionalAny) Arity() int { return 1 }

func (d *optionalAny) Kind() Kind { return KindOptional }

func (d *optionalAny) DecodeAny(rd RowData) (any, error) {
	if len(rd.Columns) != 1 {
		return nil, &ArityError{Expected: 1, Got: len(rd.Columns)}
	}
	if len(rd.Columns[0]) == 0 {
		return Null[any]{}, nil
	}
	v, err := d.inner.DecodeAny(rd)
	if err != nil {
		return nil, err
	}
	return Null[any]{V: v, Valid: true}, nil
}
