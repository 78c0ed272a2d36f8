package lexer

import (
	"unicode/utf8"

	"fortio.org/log"
	"grol.io/calc/diag"
	"grol.io/calc/token"
)

type Lexer struct {
	input []byte
	src   string // same as input, kept for diagnostics.
	pos   int
}

// New returns a lexer over the expression, which can't be empty.
func New(input string) (*Lexer, error) {
	if input == "" {
		return nil, diag.New(diag.EmptyInput, input, 0, 0, "expression cannot be empty")
	}
	return &Lexer{input: []byte(input), src: input}, nil
}

func (l *Lexer) Pos() int {
	return l.pos
}

// Source returns the text being lexed.
func (l *Lexer) Source() string {
	return l.src
}

// NextToken returns the next token, EOF forever once the input is exhausted.
func (l *Lexer) NextToken() (token.Token, error) {
	l.skipWhitespace()
	start := l.pos
	ch := l.peekChar()
	switch {
	case ch == 0 && l.pos >= len(l.input):
		return token.Token{Type: token.EOF, Offset: start}, nil
	case isDigit(ch) || (ch == '.' && isDigit(l.peekAt(1))):
		return l.readNumber()
	case isLetter(ch):
		return l.readSymbol(), nil
	}
	if t, ok := token.LookupOperator2(ch, l.peekAt(1)); ok {
		l.pos += 2
		return l.newToken(t, start), nil
	}
	if t, ok := token.LookupOperator1(ch); ok {
		l.pos++
		return l.newToken(t, start), nil
	}
	// Whole (possibly multi byte) character so the caret underlines it entirely.
	_, size := utf8.DecodeRune(l.input[l.pos:])
	l.pos += size
	return l.newToken(token.ILLEGAL, start), nil
}

func (l *Lexer) newToken(t token.Type, start int) token.Token {
	tok := token.Token{Type: t, Literal: l.src[start:l.pos], Offset: start}
	if log.LogDebug() {
		log.Debugf("token %s", tok.DebugString())
	}
	return tok
}

func isWhiteSpace(ch byte) bool {
	return ch == ' ' || (ch >= '\t' && ch <= '\r')
}

func (l *Lexer) skipWhitespace() {
	for isWhiteSpace(l.peekChar()) {
		l.pos++
	}
}

func (l *Lexer) peekChar() byte {
	return l.peekAt(0)
}

func (l *Lexer) peekAt(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) readSymbol() token.Token {
	start := l.pos
	for IsSymbolChar(l.peekChar()) {
		l.pos++
	}
	t := token.VARIABLE
	if l.peekChar() == '(' {
		t = token.FUNCTION
	}
	return l.newToken(t, start)
}

func (l *Lexer) readDigits() {
	for isDigit(l.peekChar()) {
		l.pos++
	}
}

// Reads digits [. [digits]] or . digits, then the optional exponent.
func (l *Lexer) readNumber() (token.Token, error) {
	start := l.pos
	l.readDigits()
	if l.peekChar() == '.' {
		l.pos++
		l.readDigits()
	}
	if l.peekChar() == '.' {
		// 4.2.0 or 4.. : swallow the rest of the malformed number for the error span.
		for isDigit(l.peekChar()) || l.peekChar() == '.' {
			l.pos++
		}
		return token.Token{}, diag.New(diag.InvalidNumber, l.src, start, l.pos-start,
			"invalid number: %q", l.src[start:l.pos])
	}
	if err := l.readExponent(); err != nil {
		return token.Token{}, err
	}
	return l.newToken(token.NUMBER, start), nil
}

// Folds e+3, E-10 or e7 into the number. Anything else after the e is left
// for the next token (e.g 2e is the number 2 followed by the constant e).
func (l *Lexer) readExponent() error {
	ch := l.peekChar()
	if ch != 'e' && ch != 'E' {
		return nil
	}
	next := 1
	if sign := l.peekAt(1); sign == '+' || sign == '-' {
		next = 2
	}
	if isDigit(l.peekAt(next)) {
		l.pos += next
		l.readDigits()
		return nil
	}
	if l.peekAt(next) == ' ' {
		end := l.pos + next
		for end < len(l.input) && l.input[end] == ' ' {
			end++
		}
		return diag.New(diag.ScientificNotationSpacing, l.src, l.pos, end-l.pos,
			"scientific notation cannot have a space inside the exponent")
	}
	return nil
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ch == '_'
}

// IsSymbolChar is true for the characters allowed after the first letter of a constant
// or function name: letters, digits, _ and the . of namespaces (Math.PI).
func IsSymbolChar(ch byte) bool {
	return isLetter(ch) || isDigit(ch) || ch == '.'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
