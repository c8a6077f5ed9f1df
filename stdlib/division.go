package stdlib

import (
	"math"

	"github.com/redneckbeard/rangex/types"
	"golang.org/x/exp/constraints"
)

// Relative tolerances, in units of the divisor, within which a floating-point
// remainder still counts as zero. They are heuristics: a range spanning many
// orders of magnitude more than its step can still be misclassified.
const (
	Float32Tolerance = 1e-5
	Float64Tolerance = 1e-9
)

// DivInt returns the truncated quotient of num/den and whether the division
// leaves no remainder. den must not be zero.
func DivInt[T constraints.Integer](num, den T) (quot T, exact bool) {
	return num / den, num%den == 0
}

// divFloat returns floor(num/den) and whether the floored remainder lies
// within tol*|den| of zero. A remainder that falls just short of a whole den
// is treated as exact and rounds the quotient up.
func divFloat(num, den, tol float64) (float64, bool) {
	q := math.Floor(num / den)
	r := num - q*den
	slack := tol * math.Abs(den)
	switch {
	case math.Abs(r) < slack:
		return q, true
	case math.Abs(den-r) < slack:
		return q + 1, true
	}
	return q, false
}

func tolerance(k types.Kind) float64 {
	if k == types.Float32 {
		return Float32Tolerance
	}
	return Float64Tolerance
}
