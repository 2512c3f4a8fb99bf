package codec

import "fmt"

// ArityError reports a mismatch between the number of columns a decoder
// consumes and the number of columns a RowData actually carries.
type ArityError struct {
	Expected int // columns the decoder consumes
	Got      int // columns supplied
}

func (e *ArityError) Error() string {
	if e.Expected >= 2 {
		return fmt.Sprintf("arity mismatch: decoder expects %d or %d columns, got %d",
			e.Expected, e.Expected-1, e.Got)
	}
	return fmt.Sprintf("arity mismatch: decoder expects 1 column, got %d", e.Got)
}

// NullValueError reports an absent column where a concrete (non-optional)
// value was required.
type NullValueError struct{}

func (e *NullValueError) Error() string {
	return "null value: column is absent but a concrete value was requested"
}

// ConfigurationError reports an invalid decoder composition or registry
// lookup. It always surfaces before any row is decoded.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "decoder configuration: " + e.Reason
}
