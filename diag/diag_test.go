package diag_test

import (
	"errors"
	"fmt"
	"testing"

	"grol.io/calc/diag"
)

func TestMarker(t *testing.T) {
	tests := []struct {
		width    int
		expected string
	}{
		{0, ""},
		{1, "^"},
		{2, "^^"},
		{3, "^~^"},
		{6, "^~~~~^"},
	}
	for _, tt := range tests {
		if got := diag.Marker(tt.width); got != tt.expected {
			t.Errorf("Marker(%d) got=%q, want=%q", tt.width, got, tt.expected)
		}
	}
}

func TestRender(t *testing.T) {
	tests := []struct {
		err      *diag.Error
		expected string
	}{
		{
			diag.Arity("pow(8,4,-2,5,4)", "pow", 2, 5, 0, 15),
			"pow() expects 2 arguments but received 5\npow(8,4,-2,5,4)\n^~~~~~~~~~~~~~^",
		},
		{
			diag.New(diag.IllegalCharacter, "1 + $", 4, 1, "invalid character: '$'"),
			"invalid character: '$'\n1 + $\n    ^",
		},
		{
			diag.New(diag.EmptyParens, "last()", 4, 2, "empty parens"),
			"empty parens\nlast()\n    ^^",
		},
		{
			// Display width, not bytes: é is 2 bytes but 1 column, 世 is 3 bytes and 2 columns.
			diag.New(diag.IllegalCharacter, "é + 世", 5, 3, "invalid character: '世'"),
			"invalid character: '世'\né + 世\n    ^^",
		},
		{
			diag.New(diag.IllegalCharacter, "\t1 + $", 5, 1, "invalid character: '$'"),
			"invalid character: '$'\n\t1 + $\n\t    ^",
		},
		{
			// Past the end (missing operand at end of input).
			diag.New(diag.MissingOperand, "1 +", 3, 1, "missing operand"),
			"missing operand\n1 +\n   ^",
		},
		{
			// Multi line source: only the line of the error, caret relative to that line.
			diag.New(diag.IllegalCharacter, "1 +\n 2 $\n+ 3", 7, 1, "invalid character: '$'"),
			"invalid character: '$'\n 2 $\n   ^",
		},
		{
			diag.New(diag.IllegalCharacter, "1 $\r\n+ 2", 2, 1, "invalid character: '$'"),
			"invalid character: '$'\n1 $\n  ^",
		},
		{
			// Span running past its line is cut at the newline.
			diag.New(diag.UnclosedParen, "(1 +\n2", 0, 6, "unclosed parenthesis"),
			"unclosed parenthesis\n(1 +\n^~~^",
		},
		{
			diag.New(diag.EmptyInput, "", 0, 0, "expression cannot be empty"),
			"expression cannot be empty",
		},
	}
	for _, tt := range tests {
		if got := tt.err.Render(); got != tt.expected {
			t.Errorf("Render() got:\n%s\n---want---\n%s", got, tt.expected)
		}
	}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		kind     diag.Kind
		category error
	}{
		{diag.EmptyInput, diag.ErrLex},
		{diag.ScientificNotationSpacing, diag.ErrLex},
		{diag.InvalidNumber, diag.ErrLex},
		{diag.UnknownVariable, diag.ErrSyntax},
		{diag.UnclosedParen, diag.ErrSyntax},
		{diag.TooDeep, diag.ErrSyntax},
		{diag.ArityMismatch, diag.ErrArity},
		{diag.OperandUnderflow, diag.ErrInvariant},
		{diag.StackImbalance, diag.ErrInvariant},
	}
	for _, tt := range tests {
		err := fmt.Errorf("wrapped: %w", diag.New(tt.kind, "x", 0, 1, "msg"))
		if !errors.Is(err, tt.category) {
			t.Errorf("%v should be in category %v", tt.kind, tt.category)
		}
		if !errors.Is(err, &diag.Error{Kind: tt.kind}) {
			t.Errorf("%v should match its own kind", tt.kind)
		}
		if errors.Is(err, &diag.Error{Kind: diag.Unknown}) {
			t.Errorf("%v should not match another kind", tt.kind)
		}
		if diag.Render(err) != "msg\nx\n^" {
			t.Errorf("Render of wrapped error got=%q", diag.Render(err))
		}
	}
	plain := errors.New("plain")
	if diag.Render(plain) != "plain" {
		t.Errorf("Render(plain) got=%q", diag.Render(plain))
	}
}

func TestArityDetails(t *testing.T) {
	var err error = diag.Arity("pow(8)", "pow", 2, 1, 0, 6)
	var e *diag.Error
	if !errors.As(err, &e) {
		t.Fatalf("errors.As failed for %v", err)
	}
	if e.Expected != 2 || e.Received != 1 || e.Function != "pow" {
		t.Errorf("unexpected arity details: %+v", e)
	}
	if e.Kind.String() != "ArityMismatch" {
		t.Errorf("Kind.String() got=%q", e.Kind.String())
	}
}
