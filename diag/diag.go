// Package diag holds the structured errors produced while lexing, parsing and
// running an expression, and renders them as caret diagnostics:
//
//	pow() expects 2 arguments but received 5
//	pow(8,4,-2,5,4)
//	^~~~~~~~~~~~~~^
package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rivo/uniseg"
)

// Error categories, use errors.Is(err, diag.ErrArity) etc.
var (
	ErrLex       = errors.New("lexical error")
	ErrSyntax    = errors.New("syntax error")
	ErrArity     = errors.New("arity error")
	ErrInvariant = errors.New("evaluation invariant violated")
)

type Kind uint8

const (
	Unknown Kind = iota
	// Lexical.
	EmptyInput
	IllegalCharacter
	ScientificNotationSpacing
	InvalidNumber
	// Syntax.
	UnknownVariable
	UnknownFunction
	UnmatchedCloseParen
	UnclosedParen
	EmptyParens
	MissingOperator
	MissingOperand
	UnexpectedComma
	TooDeep
	// Arity.
	ArityMismatch
	// Evaluator invariants, a parser bug when they happen.
	OperandUnderflow
	StackImbalance
)

var kindNames = [...]string{
	Unknown:                   "Unknown",
	EmptyInput:                "EmptyInput",
	IllegalCharacter:          "IllegalCharacter",
	ScientificNotationSpacing: "ScientificNotationSpacing",
	InvalidNumber:             "InvalidNumber",
	UnknownVariable:           "UnknownVariable",
	UnknownFunction:           "UnknownFunction",
	UnmatchedCloseParen:       "UnmatchedCloseParen",
	UnclosedParen:             "UnclosedParen",
	EmptyParens:               "EmptyParens",
	MissingOperator:           "MissingOperator",
	MissingOperand:            "MissingOperand",
	UnexpectedComma:           "UnexpectedComma",
	TooDeep:                   "TooDeep",
	ArityMismatch:             "ArityMismatch",
	OperandUnderflow:          "OperandUnderflow",
	StackImbalance:            "StackImbalance",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// Category returns the sentinel error for the kind.
func (k Kind) Category() error {
	switch {
	case k >= EmptyInput && k <= InvalidNumber:
		return ErrLex
	case k >= UnknownVariable && k <= TooDeep:
		return ErrSyntax
	case k == ArityMismatch:
		return ErrArity
	default:
		return ErrInvariant
	}
}

// Error is the single error type of the pipeline. Offset and Length are in bytes
// within Src; a Length of 0 means there is no span to underline.
type Error struct {
	Kind   Kind
	Msg    string
	Src    string
	Offset int
	Length int
	// Only set for ArityMismatch.
	Function string
	Expected int
	Received int
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Kind.Category()
}

// New creates an error of the given kind spanning [offset, offset+length) of src.
func New(kind Kind, src string, offset, length int, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Src: src, Offset: offset, Length: length}
}

// Arity creates an ArityMismatch error for a call to fn spanning the call site.
func Arity(src, fn string, expected, received, offset, length int) *Error {
	return &Error{
		Kind:     ArityMismatch,
		Msg:      fmt.Sprintf("%s() expects %d arguments but received %d", fn, expected, received),
		Src:      src,
		Offset:   offset,
		Length:   length,
		Function: fn,
		Expected: expected,
		Received: received,
	}
}

// Is matches another *Error of the same Kind, so errors.Is(err, &diag.Error{Kind: diag.EmptyParens})
// works in addition to the category sentinels.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Render returns the message, the source line and a marker line underlining the span.
// Only the message when there is no span or no source.
func (e *Error) Render() string {
	if e.Length < 1 || e.Src == "" {
		return e.Msg
	}
	offset := min(max(e.Offset, 0), len(e.Src))
	// Multi line source: only the line holding the start of the span.
	start := strings.LastIndexByte(e.Src[:offset], '\n') + 1
	stop := len(e.Src)
	if idx := strings.IndexByte(e.Src[offset:], '\n'); idx >= 0 {
		stop = offset + idx
	}
	line := strings.TrimSuffix(e.Src[start:stop], "\r")
	end := min(offset+e.Length, start+len(line))
	var sb strings.Builder
	sb.WriteString(e.Msg)
	sb.WriteByte('\n')
	sb.WriteString(line)
	sb.WriteByte('\n')
	sb.WriteString(padding(e.Src[start:offset]))
	sb.WriteString(Marker(max(uniseg.StringWidth(e.Src[offset:max(end, offset)]), 1)))
	return sb.String()
}

// Render returns the caret rendering of err when it is a diag *Error (wrapped or not)
// and err.Error() otherwise.
func Render(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Render()
	}
	return err.Error()
}

// Marker is ^ for a width of 1, ^^ for 2 and ^~...~^ beyond.
func Marker(width int) string {
	switch {
	case width < 1:
		return ""
	case width == 1:
		return "^"
	case width == 2:
		return "^^"
	default:
		return "^" + strings.Repeat("~", width-2) + "^"
	}
}

// Blank equivalent of prefix in display width, tabs are kept so the marker stays aligned.
func padding(prefix string) string {
	var sb strings.Builder
	for {
		before, after, found := strings.Cut(prefix, "\t")
		sb.WriteString(strings.Repeat(" ", uniseg.StringWidth(before)))
		if !found {
			return sb.String()
		}
		sb.WriteByte('\t')
		prefix = after
	}
}
