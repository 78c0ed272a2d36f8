// Regression tests for expressions that were once evaluated wrong, through the
// same path as the command line.
package bug_test

import (
	"testing"

	"grol.io/calc/repl"
)

func TestFactorial50(t *testing.T) {
	s := `
# above 2^53, no longer exact but still the nearest float64.
50!`
	expected := "3.0414093201713376e+64\n"
	if got, errs := repl.EvalString(s); got != expected || len(errs) > 0 {
		t.Errorf("EvalString() got %v\n---\n%s\n---want---\n%s\n---", errs, got, expected)
	}
}

func TestNegatedFactorialAndPower(t *testing.T) {
	// Negation applies to the result of ! but to the base of ^.
	s := "-5!\n-2 ^ 2\n-(2 ^ 2)\n2 ^ -2"
	expected := "-120\n4\n-4\n0.25\n"
	if got, errs := repl.EvalString(s); got != expected || len(errs) > 0 {
		t.Errorf("EvalString() got %v\n---\n%s\n---want---\n%s\n---", errs, got, expected)
	}
}

func TestExponentNotSwallowed(t *testing.T) {
	// e after a number without digits is the constant, so this needs an operator.
	s := "2e\n2*e\n2e3"
	expected := "missing operator before \"e\"\n2e\n ^\n5.43656365691809\n2000\n"
	got, errs := repl.EvalString(s)
	if got != expected || len(errs) != 1 {
		t.Errorf("EvalString() got %v\n---\n%s\n---want---\n%s\n---", errs, got, expected)
	}
}
