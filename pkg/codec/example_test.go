package codec_test

import (
	"fmt"
	"log"

	"github.com/ssargent/edda/pkg/codec"
)

// ExampleProduct2 decodes a two-column row into a typed pair.
func ExampleProduct2() {
	decoder := codec.Product2(codec.Int32(), codec.String())

	rd := codec.NewRowData([]byte("row1"),
		[]byte{0x00, 0x00, 0x00, 0x2A},
		[]byte("alice"),
	)

	pair, err := decoder.Decode(rd)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("id=%d name=%s\n", pair.V1, pair.V2)

	// Output:
	// id=42 name=alice
}

// ExampleOptional maps an absent column to a no-value result instead of an
// error.
func ExampleOptional() {
	decoder := codec.Product2(codec.Int32(), codec.Optional(codec.Int32()))

	rd := codec.NewRowData([]byte("row1"),
		[]byte{0x00, 0x00, 0x00, 0x2A},
		nil, // column absent from the row
	)

	pair, err := decoder.Decode(rd)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("first=%d second valid=%t\n", pair.V1, pair.V2.Valid)

	// Output:
	// first=42 second valid=false
}

// ExampleProduct3 shows the row-key fallback: with one column fewer than
// the arity, the row key serves as the first logical field.
func ExampleProduct3() {
	decoder := codec.Product3(codec.String(), codec.Int32(), codec.Bool())

	rd := codec.NewRowData([]byte("user:42"),
		[]byte{0x00, 0x00, 0x00, 0x07},
		[]byte{0x01},
	)

	tup, err := decoder.Decode(rd)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("key=%s count=%d active=%t\n", tup.V1, tup.V2, tup.V3)

	// Output:
	// key=user:42 count=7 active=true
}

// ExampleRegistry_Schema resolves a decoder from type tags at run time.
func ExampleRegistry_Schema() {
	decoder, err := codec.DefaultRegistry().Schema("i32,?string")
	if err != nil {
		log.Fatal(err)
	}

	rd := codec.NewRowData([]byte("row1"),
		[]byte{0x00, 0x00, 0x00, 0x2A},
		nil,
	)

	values, err := decoder.Decode(rd)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%d %v\n", values[0], values[1])

	// Output:
	// 42 {<nil> false}
}
