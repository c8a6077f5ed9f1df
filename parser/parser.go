// package parser reads range literals written the Ruby way: `1..5` includes
// its upper bound and `1...5` excludes it. A literal may be wrapped in
// parentheses and followed by a step, either as `step N` (or `by N`) or as a
// `.step(N)` call, and by an `as KIND` annotation naming the Go element type:
//
//	(5..0).step(-1) as uint8
//	0...1 by 0.25
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/redneckbeard/rangex/types"
)

type Parser struct {
	tokens []Token
	pos    int
}

func (p *Parser) peek() Token { return p.tokens[p.pos] }

func (p *Parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) errorf(tok Token, fmtString string, args ...interface{}) *ParseError {
	return &ParseError{col: tok.Col, msg: fmt.Sprintf(fmtString, args...)}
}

func (p *Parser) expect(tokType int, what string) (Token, error) {
	tok := p.next()
	if tok.Type != tokType {
		return tok, p.errorf(tok, "expected %s but found %s", what, describe(tok))
	}
	return tok, nil
}

func describe(tok Token) string {
	if tok.Type == EOF {
		return "end of input"
	}
	return "'" + tok.Literal + "'"
}

func (p *Parser) parseNumber() (*NumberNode, error) {
	col := p.peek().Col
	sign := ""
	switch p.peek().Type {
	case MINUS:
		sign = "-"
		p.next()
	case PLUS:
		p.next()
	}
	tok := p.next()
	switch tok.Type {
	case INT, FLOAT:
		return &NumberNode{Literal: sign + tok.Literal, Float: tok.Type == FLOAT, col: col}, nil
	}
	return nil, p.errorf(tok, "expected a number but found %s", describe(tok))
}

// parseRange reads a bare range and its annotations, then closes any
// parentheses opened before it. Annotations may follow each closing paren.
func (p *Parser) parseRange() (*RangeNode, error) {
	var opens Stack[Token]
	for p.peek().Type == LPAREN {
		opens.Push(p.next())
	}
	lower, err := p.parseNumber()
	if err != nil {
		return nil, err
	}
	op := p.next()
	if op.Type != DOT2 && op.Type != DOT3 {
		return nil, p.errorf(op, "expected '..' or '...' but found %s", describe(op))
	}
	upper, err := p.parseNumber()
	if err != nil {
		return nil, err
	}
	node := &RangeNode{Lower: lower, Upper: upper, Inclusive: op.Type == DOT2, col: lower.col}
	if opens.Size() > 0 {
		node.col = opens.Peek().Col
	}
	if err := p.parseTail(node); err != nil {
		return nil, err
	}
	for opens.Size() > 0 {
		open := opens.Pop()
		if tok := p.next(); tok.Type != RPAREN {
			return nil, p.errorf(tok, "expected ')' to close '(' at col %d but found %s", open.Col, describe(tok))
		}
		if err := p.parseTail(node); err != nil {
			return nil, err
		}
	}
	return node, nil
}

// parseTail consumes any step and kind annotations that follow a range.
func (p *Parser) parseTail(node *RangeNode) error {
	for {
		switch tok := p.peek(); tok.Type {
		case DOT:
			p.next()
			if _, err := p.expect(STEP, "'step'"); err != nil {
				return err
			}
			if _, err := p.expect(LPAREN, "'('"); err != nil {
				return err
			}
			if err := p.setStep(node, tok); err != nil {
				return err
			}
			if _, err := p.expect(RPAREN, "')'"); err != nil {
				return err
			}
		case STEP:
			p.next()
			if err := p.setStep(node, tok); err != nil {
				return err
			}
		case AS:
			p.next()
			if node.Kind != types.Invalid {
				return p.errorf(tok, "element type given twice")
			}
			name, err := p.expect(IDENT, "a type name")
			if err != nil {
				return err
			}
			kind, err := types.Lookup(name.Literal)
			if err != nil {
				return p.errorf(name, "%s", err)
			}
			node.Kind = kind
		default:
			return nil
		}
	}
}

func (p *Parser) setStep(node *RangeNode, at Token) error {
	if node.Step != nil {
		return p.errorf(at, "step given twice")
	}
	step, err := p.parseNumber()
	if err != nil {
		return err
	}
	node.Step = step
	return nil
}

func ParseString(src string) (*RangeNode, error) {
	tokens, err := NewLexer(src).Tokenize()
	if err != nil {
		return nil, err
	}
	p := &Parser{tokens: tokens}
	if p.peek().Type == EOF {
		return nil, p.errorf(p.peek(), "empty range literal")
	}
	node, err := p.parseRange()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != EOF {
		return nil, p.errorf(tok, "unexpected %s after range", describe(tok))
	}
	if _, err := node.TargetType(); err != nil {
		return nil, err
	}
	return node, nil
}

// ParseLines parses one range literal per line, skipping blank lines and
// lines starting with '#'. Errors carry the line number.
func ParseLines(r io.Reader) ([]*RangeNode, error) {
	var nodes []*RangeNode
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		node, err := ParseString(line)
		if err != nil {
			var parseErr *ParseError
			if errors.As(err, &parseErr) {
				parseErr.line = lineNo
			}
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, scanner.Err()
}

// ParseFile parses the named file with ParseLines, reading stdin when
// filename is empty.
func ParseFile(filename string) ([]*RangeNode, error) {
	if filename == "" {
		return ParseLines(os.Stdin)
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseLines(f)
}
