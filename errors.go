package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is matched by every error returned from checked access.
var ErrOutOfRange = errors.New("vector: index out of range")

// RangeError reports a checked access outside [0, Size).
type RangeError struct {
	Index int
	Size  int
}

// Error describes the index and the valid range.
func (e *RangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0:%d)", e.Index, e.Size)
}

// Unwrap returns ErrOutOfRange so errors.Is matches every RangeError.
func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}
