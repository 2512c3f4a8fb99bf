package codec

// Kind classifies a decoder's composition role. Dynamic composition uses it
// to reject invalid shapes, such as an optional wrapping anything but a
// primitive.
type Kind int

const (
	KindPrimitive Kind = iota
	KindOptional
	KindProduct
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindOptional:
		return "optional"
	case KindProduct:
		return "product"
	default:
		return "unknown"
	}
}

// RowDecoder is the type-erased surface shared by every decoder. Product
// decoders and the registry compose sub-decoders through it without knowing
// their output types.
type RowDecoder interface {
	// Arity is the number of columns the decoder consumes.
	Arity() int

	// Kind reports the decoder's composition role.
	Kind() Kind

	// DecodeAny decodes like Decode on the typed interface but returns the
	// result type-erased.
	DecodeAny(rd RowData) (any, error)
}

// Decoder converts one row's raw bytes into a value of type T or fails with
// an ArityError, NullValueError, or a conversion error. Decoders hold no
// mutable state: one instance may decode independent rows from any number
// of goroutines without synchronization.
type Decoder[T any] interface {
	RowDecoder

	Decode(rd RowData) (T, error)
}
