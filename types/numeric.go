package types

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Number is any element type a range can be built over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Step is any type usable as a stride. Unsigned types are left out since a
// stride carries a direction.
type Step interface {
	constraints.Signed | constraints.Float
}

// Parse reads lit as a value of kind k and converts it to T. The literal must
// fit k's width even when T is wider.
func Parse[T Number](k Kind, lit string) (T, error) {
	switch {
	case k.IsFloat():
		f, err := strconv.ParseFloat(lit, k.Bits())
		if err != nil {
			return 0, fmt.Errorf("parsing %q as %s: %w", lit, k, err)
		}
		return T(f), nil
	case k.IsUnsigned():
		u, err := strconv.ParseUint(lit, 0, k.Bits())
		if err != nil {
			return 0, fmt.Errorf("parsing %q as %s: %w", lit, k, err)
		}
		return T(u), nil
	case k.IsSigned():
		i, err := strconv.ParseInt(lit, 0, k.Bits())
		if err != nil {
			return 0, fmt.Errorf("parsing %q as %s: %w", lit, k, err)
		}
		return T(i), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownKind, k)
}

// Format renders v the way a Go literal of kind k would be written. Floats use
// the shortest representation that reads back to the same value.
func Format[T Number](k Kind, v T) string {
	switch {
	case k.IsFloat():
		return strconv.FormatFloat(float64(v), 'g', -1, k.Bits())
	case k.IsUnsigned():
		return strconv.FormatUint(uint64(v), 10)
	}
	return strconv.FormatInt(int64(v), 10)
}
