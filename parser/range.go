package parser

import (
	"fmt"

	"github.com/redneckbeard/rangex/types"
)

// RangeNode is a parsed range literal. Step is nil when the literal does not
// give one, and Kind is types.Invalid when it carries no `as` annotation.
type RangeNode struct {
	Lower, Upper *NumberNode
	Step         *NumberNode
	Inclusive    bool
	Kind         types.Kind
	col          int
}

func (n *RangeNode) String() string {
	rangeOp := "..."
	if n.Inclusive {
		rangeOp = ".."
	}
	s := fmt.Sprintf("(%s%s%s)", n.Lower, rangeOp, n.Upper)
	if n.Step != nil {
		s += " step " + n.Step.String()
	}
	if n.Kind != types.Invalid {
		s += " as " + n.Kind.String()
	}
	return s
}

func (n *RangeNode) Col() int { return n.col }

// StepLiteral is the step as written, or "1".
func (n *RangeNode) StepLiteral() string {
	if n.Step == nil {
		return "1"
	}
	return n.Step.Literal
}

func (n *RangeNode) numbers() []*NumberNode {
	nums := []*NumberNode{n.Lower, n.Upper}
	if n.Step != nil {
		nums = append(nums, n.Step)
	}
	return nums
}

// TargetType is the element kind the range should be built over: the
// annotated kind if there is one, float64 if any literal is a float, and int
// otherwise.
func (n *RangeNode) TargetType() (types.Kind, error) {
	if n.Kind != types.Invalid {
		if !n.Kind.IsFloat() {
			for _, num := range n.numbers() {
				if num.Float {
					return types.Invalid, NewParseError(num, "float literal %s in %s range", num, n.Kind)
				}
			}
		}
		return n.Kind, nil
	}
	for _, num := range n.numbers() {
		if num.Float {
			return types.Float64, nil
		}
	}
	return types.Int, nil
}
