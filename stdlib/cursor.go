package stdlib

import "github.com/redneckbeard/rangex/types"

// Cursor walks a Range once. It always tracks the zero-based position of its
// value; callers that only want values ignore it.
type Cursor[T types.Number, S types.Step] struct {
	r       *Range[T, S]
	current T
	index   int
}

// HasNext reports whether the cursor still holds a value of the range. It
// compares against the normalized end by inequality, which is safe because the
// end is reached from Lower by whole steps.
func (c *Cursor[T, S]) HasNext() bool {
	return c.current != c.r.end
}

func (c *Cursor[T, S]) Advance() {
	c.index++
	if c.r.kind.IsFloat() {
		c.current = c.r.at(c.index)
		return
	}
	c.current += T(c.r.step)
}

func (c *Cursor[T, S]) Value() T   { return c.current }
func (c *Cursor[T, S]) Index() int { return c.index }

// Pair returns the position and the value together.
func (c *Cursor[T, S]) Pair() (int, T) {
	return c.index, c.current
}
