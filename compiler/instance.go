package compiler

import (
	"fmt"
	"iter"
	"strconv"

	"github.com/redneckbeard/rangex/parser"
	"github.com/redneckbeard/rangex/stdlib"
	"github.com/redneckbeard/rangex/types"
)

// Instance is a parsed range made concrete for one element kind. The kind is
// only known at run time, so values cross this interface as Go literals
// formatted for that kind.
type Instance interface {
	Kind() types.Kind
	StepKind() types.Kind
	Inclusive() bool
	Lower() string
	Upper() string
	Step() string
	// End is the normalized end the cursor stops at.
	End() string
	Len() int
	First() (string, bool)
	Last() (string, bool)
	// Lines yields what the compiled program prints: one value per line,
	// prefixed by its position when indexed is set.
	Lines(indexed bool) iter.Seq[string]
	// Sum adds the values in the widest type of the same family (int64,
	// uint64 or float64), so a uint8 range can sum past 255.
	Sum() string
	Covers(lit string) (bool, error)
	String() string
}

// Instantiate builds the range node describes. When the node carries no
// `as KIND` annotation and fallback is valid, fallback is used as the element
// kind; otherwise the kind is inferred from the literals.
func Instantiate(node *parser.RangeNode, fallback types.Kind) (Instance, error) {
	if node.Kind == types.Invalid && fallback.Valid() {
		annotated := *node
		annotated.Kind = fallback
		node = &annotated
	}
	kind, err := node.TargetType()
	if err != nil {
		return nil, err
	}
	switch kind {
	case types.Int:
		return build[int, int](kind, node)
	case types.Int8:
		return build[int8, int8](kind, node)
	case types.Int16:
		return build[int16, int16](kind, node)
	case types.Int32:
		return build[int32, int32](kind, node)
	case types.Int64:
		return build[int64, int64](kind, node)
	case types.Uint:
		return build[uint, int](kind, node)
	case types.Uint8:
		return build[uint8, int8](kind, node)
	case types.Uint16:
		return build[uint16, int16](kind, node)
	case types.Uint32:
		return build[uint32, int32](kind, node)
	case types.Uint64:
		return build[uint64, int64](kind, node)
	case types.Uintptr:
		return build[uintptr, int](kind, node)
	case types.Float32:
		return build[float32, float32](kind, node)
	case types.Float64:
		return build[float64, float64](kind, node)
	}
	return nil, fmt.Errorf("%w: %s", types.ErrUnknownKind, kind)
}

type instance[T types.Number, S types.Step] struct {
	r *stdlib.Range[T, S]
}

func build[T types.Number, S types.Step](kind types.Kind, node *parser.RangeNode) (Instance, error) {
	lower, err := types.Parse[T](kind, node.Lower.Literal)
	if err != nil {
		return nil, parser.NewParseError(node.Lower, "%s", err)
	}
	upper, err := types.Parse[T](kind, node.Upper.Literal)
	if err != nil {
		return nil, parser.NewParseError(node.Upper, "%s", err)
	}
	step, err := types.Parse[S](kind.Step(), node.StepLiteral())
	if err != nil {
		if node.Step != nil {
			return nil, parser.NewParseError(node.Step, "%s", err)
		}
		return nil, err
	}
	r, err := stdlib.NewRange(lower, upper, node.Inclusive, step)
	if err != nil {
		return nil, err
	}
	return &instance[T, S]{r: r}, nil
}

func (in *instance[T, S]) Kind() types.Kind     { return in.r.Kind() }
func (in *instance[T, S]) StepKind() types.Kind { return in.r.Kind().Step() }
func (in *instance[T, S]) Inclusive() bool      { return in.r.Inclusive() }
func (in *instance[T, S]) Lower() string        { return in.format(in.r.Lower()) }
func (in *instance[T, S]) Upper() string        { return in.format(in.r.Upper()) }
func (in *instance[T, S]) Step() string         { return types.Format(in.StepKind(), in.r.Step()) }
func (in *instance[T, S]) End() string          { return in.format(in.r.End()) }
func (in *instance[T, S]) Len() int             { return in.r.Len() }
func (in *instance[T, S]) String() string       { return in.r.String() + " as " + in.Kind().String() }

func (in *instance[T, S]) format(v T) string {
	return types.Format(in.r.Kind(), v)
}

func (in *instance[T, S]) First() (string, bool) {
	v, ok := in.r.First()
	return in.format(v), ok
}

func (in *instance[T, S]) Last() (string, bool) {
	v, ok := in.r.Last()
	return in.format(v), ok
}

func (in *instance[T, S]) Lines(indexed bool) iter.Seq[string] {
	return func(yield func(string) bool) {
		for i, v := range in.r.Indexed() {
			line := in.format(v)
			if indexed {
				line = strconv.Itoa(i) + " " + line
			}
			if !yield(line) {
				return
			}
		}
	}
}

func (in *instance[T, S]) Sum() string {
	kind := in.r.Kind()
	switch {
	case kind.IsFloat():
		sum := stdlib.Fold(in.r.All(), float64(0), func(acc float64, v T) float64 { return acc + float64(v) })
		return types.Format(types.Float64, sum)
	case kind.IsUnsigned():
		sum := stdlib.Fold(in.r.All(), uint64(0), func(acc uint64, v T) uint64 { return acc + uint64(v) })
		return types.Format(types.Uint64, sum)
	}
	sum := stdlib.Fold(in.r.All(), int64(0), func(acc int64, v T) int64 { return acc + int64(v) })
	return types.Format(types.Int64, sum)
}

func (in *instance[T, S]) Covers(lit string) (bool, error) {
	v, err := types.Parse[T](in.r.Kind(), lit)
	if err != nil {
		return false, err
	}
	return in.r.Covers(v), nil
}
