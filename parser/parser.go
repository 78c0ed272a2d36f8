// Package parser turns the token stream of a lexer into a postfix rpn.Program using
// an iterative shunting-yard algorithm with explicit operator and argument count stacks.
package parser

import (
	"errors"
	"strconv"
	"strings"

	"fortio.org/log"
	"grol.io/calc/diag"
	"grol.io/calc/lexer"
	"grol.io/calc/object"
	"grol.io/calc/rpn"
	"grol.io/calc/token"
)

// DefaultMaxDepth is the default limit of nested parentheses.
const DefaultMaxDepth = 1000

type entryKind uint8

const (
	opEntry entryKind = iota
	negateEntry
	funcEntry
	parenEntry
)

// Pending entry of the operator stack.
type entry struct {
	kind entryKind
	op   *object.Operator // opEntry
	fn   object.Function  // funcEntry
	tok  token.Token
	call bool // parenEntry opening the arguments of a function call
}

type Parser struct {
	// MaxDepth is the maximum number of open parentheses, function calls included.
	MaxDepth int

	l   *lexer.Lexer
	src string

	peeked    bool
	peekToken token.Token
	prevToken token.Token // last non EOF token read, peeked one included.
	seenAny   bool

	ops           []entry
	args          []int
	out           rpn.Program
	depth         int
	expectOperand bool
	afterSign     bool
}

func New(l *lexer.Lexer) *Parser {
	return &Parser{MaxDepth: DefaultMaxDepth, l: l, src: l.Source()}
}

// Parse is New(l).Parse().
func Parse(l *lexer.Lexer) (rpn.Program, error) {
	return New(l).Parse()
}

// Parse consumes the whole token stream and returns the program, or the first error
// and no program.
func (p *Parser) Parse() (rpn.Program, error) {
	p.expectOperand = true
	for {
		tok, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == token.EOF {
			return p.end(tok)
		}
		if tok.Type == token.ILLEGAL {
			return nil, p.errorAt(diag.IllegalCharacter, tok, "illegal character %q", tok.Literal)
		}
		if p.expectOperand {
			err = p.operand(tok)
		} else {
			err = p.operator(tok)
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *Parser) nextToken() (token.Token, error) {
	if p.peeked {
		p.peeked = false
		return p.peekToken, nil
	}
	tok, err := p.l.NextToken()
	if err != nil {
		return tok, err
	}
	if log.LogDebug() {
		log.Debugf("parser got %s (expect operand: %v)", tok.DebugString(), p.expectOperand)
	}
	if tok.Type != token.EOF {
		p.prevToken = tok
		p.seenAny = true
	}
	return tok, nil
}

func (p *Parser) peek() (token.Token, error) {
	if p.peeked {
		return p.peekToken, nil
	}
	tok, err := p.nextToken()
	if err != nil {
		return tok, err
	}
	p.peekToken = tok
	p.peeked = true
	return tok, nil
}

func (p *Parser) errorAt(kind diag.Kind, tok token.Token, format string, args ...any) *diag.Error {
	return diag.New(kind, p.src, tok.Offset, len(tok.Literal), format, args...)
}

func (p *Parser) emit(instr rpn.Instruction) {
	p.out = append(p.out, instr)
}

func (p *Parser) push(e entry) {
	p.ops = append(p.ops, e)
}

func (p *Parser) top() *entry {
	if len(p.ops) == 0 {
		return nil
	}
	return &p.ops[len(p.ops)-1]
}

// Moves one pending operator or negate marker to the output.
func (p *Parser) popToOutput() {
	e := p.ops[len(p.ops)-1]
	p.ops = p.ops[:len(p.ops)-1]
	switch e.kind {
	case opEntry:
		p.emit(rpn.Instruction{Kind: rpn.OPERATOR, Operator: e.op, Offset: e.tok.Offset, Length: len(e.tok.Literal)})
	case negateEntry:
		p.emit(rpn.Instruction{Kind: rpn.NEGATE, Offset: e.tok.Offset, Length: len(e.tok.Literal)})
	case funcEntry, parenEntry:
		panic("bug: popping a marker to the output")
	}
}

// Pops operators to the output until the nearest paren marker (left on the stack),
// returns false if there is none.
func (p *Parser) popToParen() bool {
	for {
		e := p.top()
		if e == nil {
			return false
		}
		if e.kind == parenEntry {
			return true
		}
		p.popToOutput()
	}
}

// Token where an operand is expected.
func (p *Parser) operand(tok token.Token) error {
	switch tok.Type { //nolint:exhaustive // the rest is handled by default.
	case token.NUMBER:
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return p.errorAt(diag.InvalidNumber, tok, "invalid number %q", tok.Literal)
		}
		p.emit(rpn.Instruction{Kind: rpn.NUMBER, Value: v, Offset: tok.Offset, Length: len(tok.Literal)})
		p.operandDone()
	case token.VARIABLE:
		v, ok := object.LookupVariable(tok.Literal)
		if !ok {
			return p.unknownVariable(tok)
		}
		p.emit(rpn.Instruction{Kind: rpn.NUMBER, Value: v, Offset: tok.Offset, Length: len(tok.Literal)})
		p.operandDone()
	case token.FUNCTION:
		fn, ok := object.LookupFunction(tok.Literal)
		if !ok {
			return p.unknownFunction(tok)
		}
		fn.Offset = tok.Offset
		p.push(entry{kind: funcEntry, fn: fn, tok: tok})
		lparen, err := p.nextToken() // lexer only returns FUNCTION when followed by (.
		if err != nil {
			return err
		}
		if err = p.openParen(lparen, true); err != nil {
			return err
		}
		p.args = append(p.args, 1)
	case token.LPAREN:
		return p.openParen(tok, false)
	default:
		if tok.Type.IsSign() {
			if p.afterSign {
				return p.errorAt(diag.MissingOperand, tok, "missing operand before %q", tok.Literal)
			}
			p.afterSign = true
			if tok.Type.Negates() {
				p.push(entry{kind: negateEntry, tok: tok})
			}
			return nil
		}
		return p.errorAt(diag.MissingOperand, tok, "missing operand before %q", tok.Literal)
	}
	return nil
}

func (p *Parser) operandDone() {
	p.expectOperand = false
	p.afterSign = false
}

func (p *Parser) unknownVariable(tok token.Token) error {
	if _, isFunc := object.LookupFunction(tok.Literal); isFunc {
		return p.errorAt(diag.UnknownVariable, tok, "unknown variable %s, did you mean to call %s()?",
			tok.Literal, tok.Literal)
	}
	return p.errorAt(diag.UnknownVariable, tok, "unknown variable %s%s", tok.Literal,
		didYouMean(object.Suggest(tok.Literal, false), ""))
}

func (p *Parser) unknownFunction(tok token.Token) error {
	if _, isVar := object.LookupVariable(tok.Literal); isVar {
		return p.errorAt(diag.UnknownFunction, tok, "%s is a constant, not a function", tok.Literal)
	}
	return p.errorAt(diag.UnknownFunction, tok, "unknown function %s()%s", tok.Literal,
		didYouMean(object.Suggest(tok.Literal, true), "()"))
}

func didYouMean(suggestions []string, suffix string) string {
	if len(suggestions) == 0 {
		return ""
	}
	for i := range suggestions {
		suggestions[i] += suffix
	}
	return ", did you mean " + strings.Join(suggestions, " or ") + "?"
}

func (p *Parser) openParen(tok token.Token, call bool) error {
	if p.depth >= p.MaxDepth {
		return p.errorAt(diag.TooDeep, tok, "too many nested parentheses (max %d)", p.MaxDepth)
	}
	next, err := p.peek()
	if err != nil {
		return err
	}
	if next.Type == token.RPAREN {
		return diag.New(diag.EmptyParens, p.src, tok.Offset, next.End()-tok.Offset, "empty parentheses")
	}
	p.depth++
	p.push(entry{kind: parenEntry, tok: tok, call: call})
	p.afterSign = false
	return nil
}

// Token where a binary operator, a postfix operator, a closing paren, a comma or the end is expected.
func (p *Parser) operator(tok token.Token) error {
	switch tok.Type { //nolint:exhaustive // the rest is handled by default.
	case token.BANG:
		p.emit(rpn.Instruction{Kind: rpn.FACTORIAL, Offset: tok.Offset, Length: len(tok.Literal)})
	case token.COMMA:
		if !p.popToParen() || !p.top().call {
			return p.errorAt(diag.UnexpectedComma, tok, "unexpected comma outside of function arguments")
		}
		p.args[len(p.args)-1]++
		p.expectOperand = true
	case token.RPAREN:
		return p.closeParen(tok)
	default:
		if !tok.Type.IsBinaryOperator() {
			return p.errorAt(diag.MissingOperator, tok, "missing operator before %q", tok.Literal)
		}
		op, _ := object.LookupOperator(tok.Type)
		for {
			e := p.top()
			if e == nil {
				break
			}
			if e.kind != negateEntry && (e.kind != opEntry || e.op.Precedence < op.Precedence) {
				break
			}
			p.popToOutput()
		}
		p.push(entry{kind: opEntry, op: op, tok: tok})
		p.expectOperand = true
	}
	return nil
}

func (p *Parser) closeParen(tok token.Token) error {
	if !p.popToParen() {
		return p.errorAt(diag.UnmatchedCloseParen, tok, "unmatched closing parenthesis")
	}
	paren := p.ops[len(p.ops)-1]
	p.ops = p.ops[:len(p.ops)-1]
	p.depth--
	if !paren.call {
		return nil
	}
	fnEntry := p.ops[len(p.ops)-1]
	p.ops = p.ops[:len(p.ops)-1]
	received := p.args[len(p.args)-1]
	p.args = p.args[:len(p.args)-1]
	fn := fnEntry.fn
	fn.Length = tok.End() - fn.Offset
	if fn.Arity != 0 && fn.Arity != received {
		return diag.Arity(p.src, fn.Name, fn.Arity, received, fn.Offset, fn.Length)
	}
	fn.Arity = received
	p.emit(rpn.Instruction{Kind: rpn.FUNCTION, Function: fn, Offset: fn.Offset, Length: fn.Length})
	return nil
}

func (p *Parser) end(tok token.Token) (rpn.Program, error) {
	if !p.seenAny {
		return nil, diag.New(diag.EmptyInput, p.src, 0, 0, "expression cannot be empty")
	}
	if p.expectOperand {
		return nil, p.errorAt(diag.MissingOperand, p.prevToken, "missing operand after %q", p.prevToken.Literal)
	}
	for len(p.ops) > 0 {
		if e := p.top(); e.kind == parenEntry || e.kind == funcEntry {
			break
		}
		p.popToOutput()
	}
	if len(p.ops) > 0 {
		// Report the outermost one, the others may well be balanced by the missing ).
		for _, e := range p.ops {
			if e.kind == parenEntry {
				return nil, p.errorAt(diag.UnclosedParen, e.tok, "unclosed parenthesis")
			}
		}
	}
	log.LogVf("parsed %q into %d instructions (EOF@%d)", p.src, len(p.out), tok.Offset)
	return p.out, nil
}
