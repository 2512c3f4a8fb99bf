package rows

import (
	"errors"
	"fmt"
	"sync"

	"github.com/cockroachdb/pebble"

	"github.com/ssargent/edda/pkg/codec"
)

// Store is a pebble-backed wide-column cell store. Each cell is one pebble
// entry keyed by row key and column qualifier; reads assemble cells back
// into codec.RowData values in the caller's declared qualifier order, with
// absent cells as nil columns.
//
// The store holds only raw bytes. Turning column bytes into typed values is
// pkg/codec's job, and there is no typed write path.
type Store struct {
	config Config
	db     *pebble.DB
	mutex  sync.Mutex
	isOpen bool
}

// NewStore creates a store instance for the configured data directory.
func NewStore(config Config) *Store {
	return &Store{config: config}
}

// Open opens the underlying pebble database.
func (s *Store) Open() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.isOpen {
		return nil
	}
	db, err := pebble.Open(s.config.DataDir, &pebble.Options{})
	if err != nil {
		return fmt.Errorf("open row store: %w", err)
	}
	s.db = db
	s.isOpen = true
	return nil
}

// Close closes the store. Outstanding iterators must be closed first.
func (s *Store) Close() error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if !s.isOpen {
		return nil
	}
	s.isOpen = false
	return s.db.Close()
}

func (s *Store) handle() (*pebble.DB, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if !s.isOpen {
		return nil, ErrNotOpen
	}
	return s.db, nil
}

func (s *Store) writeOpts() *pebble.WriteOptions {
	if s.config.Sync {
		return pebble.Sync
	}
	return pebble.NoSync
}

// PutCell stores the raw bytes of one cell.
func (s *Store) PutCell(row []byte, qualifier string, value []byte) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	if !validRowKey(row) {
		return ErrInvalidRowKey
	}

	err = db.Set(cellKey(row, qualifier), value, s.writeOpts())
	cellWritesTotal.WithLabelValues(status(err)).Inc()
	if err != nil {
		return fmt.Errorf("put cell %s/%s: %w", row, qualifier, err)
	}
	return nil
}

// DeleteCell removes one cell. Deleting a missing cell is not an error.
func (s *Store) DeleteCell(row []byte, qualifier string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	if !validRowKey(row) {
		return ErrInvalidRowKey
	}
	return db.Delete(cellKey(row, qualifier), s.writeOpts())
}

// DeleteRow removes every cell of a row.
func (s *Store) DeleteRow(row []byte) error {
	db, err := s.handle()
	if err != nil {
		return err
	}
	if !validRowKey(row) {
		return ErrInvalidRowKey
	}

	// All cells of the row live in [row 0x00, row 0x01).
	start := cellKey(row, "")
	end := make([]byte, len(row)+1)
	copy(end, row)
	end[len(row)] = keySeparator + 1
	return db.DeleteRange(start, end, s.writeOpts())
}

// GetRow reads the named qualifiers of one row into a RowData. Cells that
// are missing become nil columns. A row with no cells at all yields
// ErrRowNotFound.
func (s *Store) GetRow(row []byte, qualifiers []string) (codec.RowData, error) {
	db, err := s.handle()
	if err != nil {
		return codec.RowData{}, err
	}
	if !validRowKey(row) {
		return codec.RowData{}, ErrInvalidRowKey
	}

	columns := make([][]byte, len(qualifiers))
	found := false
	for i, q := range qualifiers {
		val, closer, err := db.Get(cellKey(row, q))
		if errors.Is(err, pebble.ErrNotFound) {
			continue
		}
		if err != nil {
			rowGetsTotal.WithLabelValues(statusError).Inc()
			return codec.RowData{}, fmt.Errorf("get cell %s/%s: %w", row, q, err)
		}
		columns[i] = append([]byte(nil), val...)
		_ = closer.Close()
		cellsReadTotal.Inc()
		found = true
	}
	if !found {
		rowGetsTotal.WithLabelValues(statusError).Inc()
		return codec.RowData{}, ErrRowNotFound
	}

	rowGetsTotal.WithLabelValues(statusSuccess).Inc()
	key := append([]byte(nil), row...)
	return codec.NewRowData(key, columns...), nil
}

// Scan returns an iterator over the rows whose keys lie in [start, end),
// assembling the named qualifiers for each row. A nil start begins at the
// first row; a nil end scans to the end of the keyspace.
func (s *Store) Scan(start, end []byte, qualifiers []string) (*RowIterator, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	opts := &pebble.IterOptions{}
	if start != nil {
		opts.LowerBound = cellKey(start, "")
	}
	if end != nil {
		opts.UpperBound = cellKey(end, "")
	}
	iter, err := db.NewIter(opts)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	return newRowIterator(iter, qualifiers), nil
}
