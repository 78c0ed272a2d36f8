package token

import (
	"strconv"

	"fortio.org/log"
)

type Type uint8

type Token struct {
	Type    Type
	Literal string
	Offset  int // byte offset in the source
}

const (
	ILLEGAL Type = iota
	EOF

	// Literals and symbols.
	NUMBER   // 1.5e+3
	VARIABLE // pi, Math.E
	FUNCTION // pow( -- a symbol immediately followed by '('

	// Operators.
	PLUS
	MINUS
	ASTERISK
	SLASH
	PERCENT
	CARET
	LSHIFT
	RSHIFT

	// Compound sign operators: binary operator applied to the negated (or unchanged) right operand.
	PLUSMINUS
	MINUSPLUS
	ASTERISKMINUS
	ASTERISKPLUS
	SLASHMINUS
	SLASHPLUS
	PERCENTMINUS
	PERCENTPLUS

	BANG // postfix factorial

	// Delimiters.
	LPAREN
	RPAREN
	COMMA
	LAST
)

var typeNames = [...]string{
	ILLEGAL:       "ILLEGAL",
	EOF:           "EOF",
	NUMBER:        "NUMBER",
	VARIABLE:      "VARIABLE",
	FUNCTION:      "FUNCTION",
	PLUS:          "PLUS",
	MINUS:         "MINUS",
	ASTERISK:      "ASTERISK",
	SLASH:         "SLASH",
	PERCENT:       "PERCENT",
	CARET:         "CARET",
	LSHIFT:        "LSHIFT",
	RSHIFT:        "RSHIFT",
	PLUSMINUS:     "PLUSMINUS",
	MINUSPLUS:     "MINUSPLUS",
	ASTERISKMINUS: "ASTERISKMINUS",
	ASTERISKPLUS:  "ASTERISKPLUS",
	SLASHMINUS:    "SLASHMINUS",
	SLASHPLUS:     "SLASHPLUS",
	PERCENTMINUS:  "PERCENTMINUS",
	PERCENTPLUS:   "PERCENTPLUS",
	BANG:          "BANG",
	LPAREN:        "LPAREN",
	RPAREN:        "RPAREN",
	COMMA:         "COMMA",
	LAST:          "LAST",
}

func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}

// Operator lexemes, 2 characters ones first so the lexer can do longest match.
var (
	char2Lexemes = map[[2]byte]Type{
		{'<', '<'}: LSHIFT,
		{'>', '>'}: RSHIFT,
		{'+', '-'}: PLUSMINUS,
		{'-', '+'}: MINUSPLUS,
		{'*', '-'}: ASTERISKMINUS,
		{'*', '+'}: ASTERISKPLUS,
		{'/', '-'}: SLASHMINUS,
		{'/', '+'}: SLASHPLUS,
		{'%', '-'}: PERCENTMINUS,
		{'%', '+'}: PERCENTPLUS,
	}
	char1Lexemes = map[byte]Type{
		'+': PLUS,
		'-': MINUS,
		'*': ASTERISK,
		'/': SLASH,
		'%': PERCENT,
		'^': CARET,
		'!': BANG,
		'(': LPAREN,
		')': RPAREN,
		',': COMMA,
	}
)

// LookupOperator2 returns the type of the 2 characters operator c1c2, if any.
func LookupOperator2(c1, c2 byte) (Type, bool) {
	t, ok := char2Lexemes[[2]byte{c1, c2}]
	if ok {
		log.Debugf("LookupOperator2(%c%c) found %s", c1, c2, t)
	}
	return t, ok
}

// LookupOperator1 returns the type of the single character operator or delimiter c, if any.
func LookupOperator1(c byte) (Type, bool) {
	t, ok := char1Lexemes[c]
	return t, ok
}

// IsBinaryOperator is true for every operator that takes a left and a right operand,
// compound sign operators included.
func (t Type) IsBinaryOperator() bool {
	return t >= PLUS && t <= PERCENTPLUS
}

// IsSign is true for the tokens that can prefix an operand: + and - and their
// +- / -+ combinations (which both negate).
func (t Type) IsSign() bool {
	return t == PLUS || t == MINUS || t == PLUSMINUS || t == MINUSPLUS
}

// Negates is true for sign tokens that flip the sign of the following operand.
func (t Type) Negates() bool {
	return t == MINUS || t == PLUSMINUS || t == MINUSPLUS
}

// End returns the offset just past the token.
func (t Token) End() int {
	return t.Offset + len(t.Literal)
}

func (t Token) String() string {
	return t.Literal
}

// DebugString returns TYPE:"literal"@offset.
func (t Token) DebugString() string {
	return t.Type.String() + ":" + strconv.Quote(t.Literal) + "@" + strconv.Itoa(t.Offset)
}
