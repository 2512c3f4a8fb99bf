package rows

// Config holds configuration for the row store.
type Config struct {
	DataDir string // Directory for pebble data files
	Sync    bool   // Fsync cell writes instead of leaving them buffered
}

// Errors
var (
	ErrRowNotFound   = &StoreError{"row not found"}
	ErrInvalidRowKey = &StoreError{"invalid row key"}
	ErrNotOpen       = &StoreError{"store is not open"}
)

// StoreError represents a row store error
type StoreError struct {
	Message string
}

func (e *StoreError) Error() string {
	return e.Message
}
