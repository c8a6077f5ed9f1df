package stdlib

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidStep     = errors.New("step must be non-zero")
	ErrUnsupportedType = errors.New("step type is not the signed counterpart of the element type")
	ErrOverflow        = errors.New("range does not fit its element type")
	ErrNotFinite       = errors.New("bounds and step must be finite")
)

// RangeError records the arguments of a range that could not be built.
type RangeError struct {
	Lower, Upper, Step string
	Inclusive          bool
	Err                error
}

func (e *RangeError) Error() string {
	op := "..."
	if e.Inclusive {
		op = ".."
	}
	return fmt.Sprintf("range %s%s%s step %s: %s", e.Lower, op, e.Upper, e.Step, e.Err)
}

func (e *RangeError) Unwrap() error { return e.Err }
