package rows

import (
	"bytes"

	"github.com/segmentio/ksuid"
)

// Cells are stored under rowKey 0x00 qualifier. The zero-byte separator
// keeps every cell of a row adjacent and rows ordered lexicographically by
// row key, which is why a row key must not contain a zero byte.
const keySeparator = 0x00

// cellKey builds the pebble key for one cell.
func cellKey(row []byte, qualifier string) []byte {
	k := make([]byte, 0, len(row)+1+len(qualifier))
	k = append(k, row...)
	k = append(k, keySeparator)
	k = append(k, qualifier...)
	return k
}

// splitCellKey returns the row key and qualifier of a stored cell key.
func splitCellKey(key []byte) (row []byte, qualifier string, ok bool) {
	i := bytes.IndexByte(key, keySeparator)
	if i < 0 {
		return nil, "", false
	}
	return key[:i], string(key[i+1:]), true
}

// validRowKey reports whether row can be used as a row key.
func validRowKey(row []byte) bool {
	return len(row) > 0 && bytes.IndexByte(row, keySeparator) < 0
}

// NewRowKey generates a unique, lexicographically sortable row key. KSUIDs
// are base62, so the separator byte can never appear in them.
func NewRowKey() []byte {
	return []byte(ksuid.New().String())
}
