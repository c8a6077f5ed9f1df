package stdlib

import "github.com/redneckbeard/rangex/types"

// The constructors below pin the stride type for each element type, so a
// mismatched step is a compile error rather than ErrUnsupportedType.

func Int(lower, upper int, inclusive bool, step int) (*Range[int, int], error) {
	return NewRange(lower, upper, inclusive, step)
}

func Int8(lower, upper int8, inclusive bool, step int8) (*Range[int8, int8], error) {
	return NewRange(lower, upper, inclusive, step)
}

func Int16(lower, upper int16, inclusive bool, step int16) (*Range[int16, int16], error) {
	return NewRange(lower, upper, inclusive, step)
}

func Int32(lower, upper int32, inclusive bool, step int32) (*Range[int32, int32], error) {
	return NewRange(lower, upper, inclusive, step)
}

func Int64(lower, upper int64, inclusive bool, step int64) (*Range[int64, int64], error) {
	return NewRange(lower, upper, inclusive, step)
}

func Uint(lower, upper uint, inclusive bool, step int) (*Range[uint, int], error) {
	return NewRange(lower, upper, inclusive, step)
}

func Uint8(lower, upper uint8, inclusive bool, step int8) (*Range[uint8, int8], error) {
	return NewRange(lower, upper, inclusive, step)
}

func Uint16(lower, upper uint16, inclusive bool, step int16) (*Range[uint16, int16], error) {
	return NewRange(lower, upper, inclusive, step)
}

func Uint32(lower, upper uint32, inclusive bool, step int32) (*Range[uint32, int32], error) {
	return NewRange(lower, upper, inclusive, step)
}

func Uint64(lower, upper uint64, inclusive bool, step int64) (*Range[uint64, int64], error) {
	return NewRange(lower, upper, inclusive, step)
}

func Uintptr(lower, upper uintptr, inclusive bool, step int) (*Range[uintptr, int], error) {
	return NewRange(lower, upper, inclusive, step)
}

func Float32(lower, upper float32, inclusive bool, step float32) (*Range[float32, float32], error) {
	return NewRange(lower, upper, inclusive, step)
}

func Float64(lower, upper float64, inclusive bool, step float64) (*Range[float64, float64], error) {
	return NewRange(lower, upper, inclusive, step)
}

// Span is the exclusive, unit-step range over a signed or floating-point
// type, the common case of counting from lower up to upper.
func Span[T types.Step](lower, upper T) (*Range[T, T], error) {
	return NewRange(lower, upper, false, T(1))
}

// Must panics if err is non-nil. It is meant for ranges built from constants.
func Must[T types.Number, S types.Step](r *Range[T, S], err error) *Range[T, S] {
	if err != nil {
		panic(err)
	}
	return r
}
