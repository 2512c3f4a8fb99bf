package rows

import (
	"bytes"
	"time"

	"github.com/cockroachdb/pebble"

	"github.com/ssargent/edda/pkg/codec"
)

// RowIterator streams RowData values from a scan, grouping adjacent cells
// that share a row key. Cells whose qualifier is not in the requested set
// are skipped; requested qualifiers missing from a row stay nil.
//
// The usual loop:
//
//	it, err := store.Scan(nil, nil, qualifiers)
//	defer it.Close()
//	for it.Next() {
//		rd := it.Row()
//		...
//	}
//	if err := it.Err(); err != nil { ... }
type RowIterator struct {
	iter       *pebble.Iterator
	qualifiers map[string]int
	width      int
	row        codec.RowData
	err        error
	primed     bool
	started    time.Time
}

func newRowIterator(iter *pebble.Iterator, qualifiers []string) *RowIterator {
	byName := make(map[string]int, len(qualifiers))
	for i, q := range qualifiers {
		byName[q] = i
	}
	return &RowIterator{
		iter:       iter,
		qualifiers: byName,
		width:      len(qualifiers),
		started:    time.Now(),
	}
}

// Next advances to the next row, returning false when the scan is
// exhausted or has failed.
func (it *RowIterator) Next() bool {
	if it.err != nil {
		return false
	}
	if !it.primed {
		it.primed = true
		if !it.iter.First() {
			it.err = it.iter.Error()
			return false
		}
	}
	if !it.iter.Valid() {
		it.err = it.iter.Error()
		return false
	}

	current, _, ok := splitCellKey(it.iter.Key())
	if !ok {
		it.err = ErrInvalidRowKey
		return false
	}
	key := append([]byte(nil), current...)

	columns := make([][]byte, it.width)
	for it.iter.Valid() {
		row, qualifier, ok := splitCellKey(it.iter.Key())
		if !ok {
			it.err = ErrInvalidRowKey
			return false
		}
		if !bytes.Equal(row, key) {
			break
		}
		if i, wanted := it.qualifiers[qualifier]; wanted {
			columns[i] = append([]byte(nil), it.iter.Value()...)
			cellsReadTotal.Inc()
		}
		it.iter.Next()
	}

	it.row = codec.NewRowData(key, columns...)
	rowsScannedTotal.Inc()
	return true
}

// Row returns the row produced by the last successful Next call.
func (it *RowIterator) Row() codec.RowData {
	return it.row
}

// Err returns the first error the scan encountered, if any.
func (it *RowIterator) Err() error {
	return it.err
}

// Close releases the underlying iterator.
func (it *RowIterator) Close() error {
	scanDurationSeconds.Observe(time.Since(it.started).Seconds())
	return it.iter.Close()
}
