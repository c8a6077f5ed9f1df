package stdlib

import (
	"iter"

	"github.com/redneckbeard/rangex/types"
)

// Fold combines every value of seq into acc, left to right.
func Fold[T, A any](seq iter.Seq[T], acc A, f func(A, T) A) A {
	for v := range seq {
		acc = f(acc, v)
	}
	return acc
}

// Sum adds the values of seq in T. Integer sums wrap like any other Go
// arithmetic; fold into a wider accumulator to avoid that.
func Sum[T types.Number](seq iter.Seq[T]) T {
	return Fold(seq, T(0), func(acc, v T) T { return acc + v })
}
