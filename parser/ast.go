package parser

import (
	"fmt"
)

type Node interface {
	String() string
	Col() int
}

type ParseError struct {
	line, col int
	msg       string
}

func (p *ParseError) Error() string {
	if p.line > 0 {
		return fmt.Sprintf("line %d, col %d: %s", p.line, p.col, p.msg)
	}
	return fmt.Sprintf("col %d: %s", p.col, p.msg)
}

func (p *ParseError) Line() int { return p.line }

func NewParseError(node Node, fmtString string, args ...interface{}) *ParseError {
	return &ParseError{
		col: node.Col(),
		msg: fmt.Sprintf(fmtString, args...),
	}
}

// NumberNode is a numeric literal, sign included.
type NumberNode struct {
	Literal string
	Float   bool
	col     int
}

func (n *NumberNode) String() string { return n.Literal }
func (n *NumberNode) Col() int       { return n.col }
