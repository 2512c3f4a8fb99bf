package codec

// RowData carries the raw bytes of a single row as read from a wide-column
// store: the row key plus the row's column values in the caller's declared
// order. A nil column marks a column that was absent from the row.
//
// RowData is immutable by convention: decoders never modify the key or the
// column slices, and the producing scanner must not reuse the underlying
// buffers while a decode call is in flight.
type RowData struct {
	Key     []byte   // Row key bytes
	Columns [][]byte // Column values in declared order, nil = absent
}

// NewRowData builds a RowData for a row key and its column values.
func NewRowData(key []byte, columns ...[]byte) RowData {
	return RowData{Key: key, Columns: columns}
}

// single returns a RowData carrying the same row key and exactly one column.
// Product decoders use it to hand each component its own slice of the row.
func (rd RowData) single(col []byte) RowData {
	return RowData{Key: rd.Key, Columns: [][]byte{col}}
}
