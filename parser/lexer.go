package parser

import (
	"fmt"
	"unicode"
)

const (
	ILLEGAL = iota
	EOF
	INT
	FLOAT
	IDENT
	STEP
	AS
	DOT
	DOT2
	DOT3
	PLUS
	MINUS
	LPAREN
	RPAREN
)

var tokenNames = map[int]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",
	INT:     "INT",
	FLOAT:   "FLOAT",
	IDENT:   "IDENT",
	STEP:    "STEP",
	AS:      "AS",
	DOT:     "DOT",
	DOT2:    "DOT2",
	DOT3:    "DOT3",
	PLUS:    "PLUS",
	MINUS:   "MINUS",
	LPAREN:  "LPAREN",
	RPAREN:  "RPAREN",
}

var validPuncts = map[string]int{
	".":   DOT,
	"..":  DOT2,
	"...": DOT3,
	"+":   PLUS,
	"-":   MINUS,
	"(":   LPAREN,
	")":   RPAREN,
}

var keywords = map[string]int{
	"step": STEP,
	"by":   STEP,
	"as":   AS,
}

type Token struct {
	Type    int
	Literal string
	Col     int
}

func (t Token) String() string {
	return fmt.Sprintf("%s[%q]", tokenNames[t.Type], t.Literal)
}

// Lexer splits a range literal into tokens. Columns are 1-based rune offsets.
type Lexer struct {
	src    []rune
	pos    int
	start  int
	tokens []Token
}

func NewLexer(src string) *Lexer {
	return &Lexer{src: []rune(src)}
}

func (l *Lexer) peekAt(offset int) rune {
	if l.pos+offset >= len(l.src) {
		return 0
	}
	return l.src[l.pos+offset]
}

func (l *Lexer) Peek() rune { return l.peekAt(0) }

func (l *Lexer) Advance() rune {
	chr := l.Peek()
	l.pos++
	return chr
}

func (l *Lexer) Emit(t int) {
	l.tokens = append(l.tokens, Token{t, string(l.src[l.start:l.pos]), l.start + 1})
	l.start = l.pos
}

func (l *Lexer) Tokenize() ([]Token, error) {
	for l.pos < len(l.src) {
		var err error
		chr := l.Peek()
		switch {
		case unicode.IsSpace(chr):
			l.Advance()
			l.start = l.pos
		case unicode.IsDigit(chr):
			err = l.lexNumber()
		case unicode.IsLetter(chr) || chr == '_':
			l.lexWord()
		case unicode.IsPunct(chr) || unicode.IsSymbol(chr):
			err = l.lexPunct()
		default:
			err = l.errorf("unexpected character %q", chr)
		}
		if err != nil {
			return nil, err
		}
	}
	l.Emit(EOF)
	return l.tokens, nil
}

func (l *Lexer) acceptDigits() {
	for unicode.IsDigit(l.Peek()) || l.Peek() == '_' {
		l.Advance()
	}
}

func (l *Lexer) lexNumber() error {
	tok := INT
	if l.Peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		l.Advance()
		l.Advance()
		for unicode.Is(unicode.ASCII_Hex_Digit, l.Peek()) || l.Peek() == '_' {
			l.Advance()
		}
		l.Emit(INT)
		return nil
	}
	l.acceptDigits()
	// A dot only belongs to the number when a digit follows it; otherwise it
	// starts a range operator.
	if l.Peek() == '.' && unicode.IsDigit(l.peekAt(1)) {
		tok = FLOAT
		l.Advance()
		l.acceptDigits()
	}
	if chr := l.Peek(); chr == 'e' || chr == 'E' {
		tok = FLOAT
		l.Advance()
		if chr := l.Peek(); chr == '+' || chr == '-' {
			l.Advance()
		}
		if !unicode.IsDigit(l.Peek()) {
			return l.errorf("malformed exponent in %q", string(l.src[l.start:l.pos]))
		}
		l.acceptDigits()
	}
	if unicode.IsLetter(l.Peek()) {
		return l.errorf("unexpected %q after number", l.Peek())
	}
	l.Emit(tok)
	return nil
}

func (l *Lexer) lexWord() {
	for chr := l.Peek(); unicode.IsLetter(chr) || unicode.IsDigit(chr) || chr == '_'; chr = l.Peek() {
		l.Advance()
	}
	if kw, ok := keywords[string(l.src[l.start:l.pos])]; ok {
		l.Emit(kw)
		return
	}
	l.Emit(IDENT)
}

// lexPunct takes the longest punctuation run that names a token, so "..."
// wins over ".." and ".".
func (l *Lexer) lexPunct() error {
	for n := 3; n > 0; n-- {
		if l.pos+n > len(l.src) {
			continue
		}
		if tok, ok := validPuncts[string(l.src[l.pos:l.pos+n])]; ok {
			l.pos += n
			l.Emit(tok)
			return nil
		}
	}
	return l.errorf("unexpected character %q", l.Peek())
}

func (l *Lexer) errorf(format string, args ...interface{}) error {
	return &ParseError{col: l.pos + 1, msg: fmt.Sprintf(format, args...)}
}
