package stdlib

import (
	"fmt"
	"iter"
	"math"
	"math/bits"
	"slices"

	"github.com/redneckbeard/rangex/types"
)

// Range is an immutable stepped sequence of T that starts at Lower and moves
// toward Upper by Step. Upper is emitted only when the range is inclusive and
// Upper lies exactly on a step boundary. Ranges are safe to share between
// goroutines; cursors are not.
type Range[T types.Number, S types.Step] struct {
	lower, upper T
	step         S
	inclusive    bool

	kind   types.Kind
	end    T
	count  int
	stride uint64
}

// NewRange builds a range and computes its normalized end. S must be the
// signed counterpart of T (T itself for signed and floating-point types); the
// per-kind constructors such as Uint8 enforce that at compile time.
//
// A step pointing away from upper, and lower == upper, both yield an empty
// range, including when inclusive is set.
func NewRange[T types.Number, S types.Step](lower, upper T, inclusive bool, step S) (*Range[T, S], error) {
	r := &Range[T, S]{
		lower:     lower,
		upper:     upper,
		step:      step,
		inclusive: inclusive,
		kind:      types.KindOf[T](),
	}
	if !types.StepMatches[T, S]() {
		return nil, r.fail(ErrUnsupportedType)
	}
	if r.kind.IsFloat() && !(finite(lower) && finite(upper) && finite(step)) {
		return nil, r.fail(ErrNotFinite)
	}
	if step == 0 {
		return nil, r.fail(ErrInvalidStep)
	}
	if (lower <= upper && step < 0) || (lower >= upper && step > 0) {
		r.end = lower
		return r, nil
	}
	var err error
	if r.kind.IsFloat() {
		err = r.normalizeFloat()
	} else {
		err = r.normalizeInt()
	}
	if err != nil {
		return nil, r.fail(err)
	}
	return r, nil
}

// normalizeInt works on magnitudes in uint64 so that spans wider than the
// signed element type (int8 -100..100) are still measured correctly. The end
// is then wrapped back into T.
func (r *Range[T, S]) normalizeInt() error {
	var span uint64
	if r.step > 0 {
		span = uint64(r.upper) - uint64(r.lower)
		r.stride = uint64(r.step)
	} else {
		span = uint64(r.lower) - uint64(r.upper)
		r.stride = -uint64(r.step)
	}
	steps, exact := DivInt(span, r.stride)
	if steps >= math.MaxInt {
		return ErrOverflow
	}
	count := steps
	if !exact || r.inclusive {
		count++
	}
	// Once wrapped, the end aliases an emitted value only when count reaches
	// the period of stride modulo 2^bits.
	if count >= period(r.stride, r.kind.Bits()) {
		return ErrOverflow
	}
	offset := count * r.stride
	r.count = int(count)
	if r.step > 0 {
		r.end = r.lower + T(offset)
	} else {
		r.end = r.lower - T(offset)
	}
	return nil
}

func (r *Range[T, S]) normalizeFloat() error {
	span := float64(r.upper) - float64(r.lower)
	steps, exact := divFloat(span, float64(r.step), tolerance(r.kind))
	count := steps
	if !exact || r.inclusive {
		count++
	}
	if count > maxExactCount(r.kind) {
		return ErrOverflow
	}
	r.count = int(count)
	r.end = r.at(r.count)
	// A step finer than the float spacing near either bound rounds
	// neighbouring positions onto one value.
	if r.count > 0 && r.at(r.count-1) == r.end {
		return ErrOverflow
	}
	if r.count > 1 && (r.at(1) == r.at(0) || r.at(r.count-1) == r.at(r.count-2)) {
		return ErrOverflow
	}
	return nil
}

// at is the k-th value of the range. Float cursors use it instead of
// accumulating step so that the k == count value is exactly the end.
func (r *Range[T, S]) at(k int) T {
	return r.lower + T(T(k)*T(r.step))
}

func (r *Range[T, S]) fail(err error) error {
	return &RangeError{
		Lower:     types.Format(r.kind, r.lower),
		Upper:     types.Format(r.kind, r.upper),
		Step:      types.Format(types.KindOf[S](), r.step),
		Inclusive: r.inclusive,
		Err:       err,
	}
}

func (r *Range[T, S]) Lower() T         { return r.lower }
func (r *Range[T, S]) Upper() T         { return r.upper }
func (r *Range[T, S]) Step() S          { return r.step }
func (r *Range[T, S]) Inclusive() bool  { return r.inclusive }
func (r *Range[T, S]) Kind() types.Kind { return r.kind }

// End is the normalized end: the first value past the range, which the cursor
// compares against to stop.
func (r *Range[T, S]) End() T { return r.end }

// Len is the number of values the range produces.
func (r *Range[T, S]) Len() int { return r.count }

func (r *Range[T, S]) First() (T, bool) {
	if r.count == 0 {
		return 0, false
	}
	return r.lower, true
}

func (r *Range[T, S]) Last() (T, bool) {
	if r.count == 0 {
		return 0, false
	}
	return r.at(r.count - 1), true
}

// Covers reports whether v is one of the values the range produces.
func (r *Range[T, S]) Covers(v T) bool {
	if r.count == 0 {
		return false
	}
	if r.kind.IsFloat() {
		k := math.Round((float64(v) - float64(r.lower)) / float64(r.step))
		if k < 0 || k >= float64(r.count) {
			return false
		}
		return r.at(int(k)) == v
	}
	var d uint64
	if r.step > 0 {
		if v < r.lower {
			return false
		}
		d = uint64(v) - uint64(r.lower)
	} else {
		if v > r.lower {
			return false
		}
		d = uint64(r.lower) - uint64(v)
	}
	return d%r.stride == 0 && d/r.stride < uint64(r.count)
}

// Cursor starts a new pass over the range.
func (r *Range[T, S]) Cursor() *Cursor[T, S] {
	return &Cursor[T, S]{r: r, current: r.lower}
}

// All yields each value in order. Every call starts from Lower.
func (r *Range[T, S]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for c := r.Cursor(); c.HasNext(); c.Advance() {
			if !yield(c.Value()) {
				return
			}
		}
	}
}

// Indexed yields (position, value) pairs; the position counts from zero
// regardless of the step's size.
func (r *Range[T, S]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for c := r.Cursor(); c.HasNext(); c.Advance() {
			if !yield(c.Pair()) {
				return
			}
		}
	}
}

func (r *Range[T, S]) Values() []T {
	return slices.Collect(r.All())
}

func (r *Range[T, S]) String() string {
	op := "..."
	if r.inclusive {
		op = ".."
	}
	s := types.Format(r.kind, r.lower) + op + types.Format(r.kind, r.upper)
	if r.step != 1 {
		s = fmt.Sprintf("%s step %s", s, types.Format(types.KindOf[S](), r.step))
	}
	return s
}

func finite[N types.Number](v N) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// period is the number of stride additions modulo 2^bitSize before a value
// repeats. stride is never zero.
func period(stride uint64, bitSize int) uint64 {
	shift := bitSize - bits.TrailingZeros64(stride)
	if shift >= 64 {
		return math.MaxUint64
	}
	return 1 << shift
}

func maxExactCount(k types.Kind) float64 {
	limit := float64(uint64(1) << 53)
	if k == types.Float32 {
		limit = 1 << 24
	}
	return math.Min(limit, math.MaxInt)
}
