package repl_test

import (
	"errors"
	"os"
	"strings"
	"testing"

	"grol.io/calc/diag"
	"grol.io/calc/extensions"
	"grol.io/calc/repl"
)

func TestMain(m *testing.M) {
	if err := extensions.Init(nil); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestEvalString(t *testing.T) {
	s := `
1 + 2
# comment line
   # indented comment

2 ^ 3 ^ 2
Math.Pow(-average(2, 3, 5), 4) > 0
`
	// last line is an error (> isn't an operator).
	expected := "3\n64\nillegal character \">\"\nMath.Pow(-average(2, 3, 5), 4) > 0\n                               ^\n"
	got, errs := repl.EvalString(s)
	if got != expected {
		t.Errorf("EvalString() got %v\n---\n%s\n---want---\n%s\n---", errs, got, expected)
	}
	if len(errs) != 1 || !errors.Is(errs[0], diag.ErrLex) {
		t.Errorf("EvalString() errors %v", errs)
	}
}

func TestEvalStringErrors(t *testing.T) {
	s := "1 +\n42\npow(8)"
	expected := "missing operand after \"+\"\n1 +\n  ^\n42\n" +
		"pow() expects 2 arguments but received 1\npow(8)\n^~~~~^\n"
	got, errs := repl.EvalString(s)
	if got != expected {
		t.Errorf("EvalString() got\n---\n%s\n---want---\n%s\n---", got, expected)
	}
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %v", errs)
	}
	if !errors.Is(errs[0], diag.ErrSyntax) || !strings.HasPrefix(errs[0].Error(), "line 1: ") {
		t.Errorf("first error %v", errs[0])
	}
	var e *diag.Error
	if !errors.As(errs[1], &e) || e.Expected != 2 || e.Received != 1 || !strings.HasPrefix(errs[1].Error(), "line 3: ") {
		t.Errorf("second error %v", errs[1])
	}
}

func TestShowParse(t *testing.T) {
	tests := []struct {
		options  repl.Options
		expected string
	}{
		{repl.Options{ShowParse: true, ShowEval: true}, "== Parse ==> 1 2 3 * -\n== Eval  ==> -5\n"},
		{repl.Options{ShowParse: true}, "== Parse ==> 1 2 3 * -\n"},
		{repl.Options{}, ""},
		{repl.Options{ShowEval: true, MaxDepth: 1}, "-5\n"},
	}
	for _, tt := range tests {
		got, errs := repl.EvalStringWithOption(tt.options, "1 - 2 * 3")
		if got != tt.expected || len(errs) != 0 {
			t.Errorf("options %+v got %v %q, want %q", tt.options, errs, got, tt.expected)
		}
	}
	_, errs := repl.EvalStringWithOption(repl.Options{MaxDepth: 1}, "((1))")
	if len(errs) != 1 || !errors.Is(errs[0], &diag.Error{Kind: diag.TooDeep}) {
		t.Errorf("max depth 1 should fail on ((1)), got %v", errs)
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		input    float64
		expected string
	}{
		{42, "42"},
		{-0.5, "-0.5"},
		{1307674368000, "1.307674368e+12"},
		{2e-13, "2e-13"},
	}
	for _, tt := range tests {
		if got := repl.FormatResult(tt.input); got != tt.expected {
			t.Errorf("FormatResult(%v) got=%q, want=%q", tt.input, got, tt.expected)
		}
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		input    string
		contains string
	}{
		{"help pow", "pow/2: x^y\n"},
		{"help Math.Pow()", "pow/2: x^y\n"},
		{"help sum", "sum/n: sum of the arguments\n"},
		{"help Math.PI", "pi = 3.141592653589793\n"},
		{"help pie", "pie: unknown, did you mean pi or e?\n"},
		{"help zzz", "zzz: unknown\n"},
		{"info", "Functions: "},
		{"info", "Constants:  e pi tau\n"},
		{"help", "fusedmultiplyadd/3"},
	}
	for _, tt := range tests {
		var sb strings.Builder
		if !repl.Command(&sb, tt.input) {
			t.Errorf("%q should be a command", tt.input)
			continue
		}
		if !strings.Contains(sb.String(), tt.contains) {
			t.Errorf("%q got %q, want it to contain %q", tt.input, sb.String(), tt.contains)
		}
	}
	var sb strings.Builder
	if repl.Command(&sb, "1 + 1") || repl.Command(&sb, "help a b") || sb.Len() != 0 {
		t.Errorf("expressions aren't commands")
	}
}

func TestComplete(t *testing.T) {
	a := repl.NewCompletion()
	tests := []struct {
		line     string
		pos      int
		expected string
		newPos   int
		ok       bool
		listed   string
	}{
		{"1 + Math.sq", 11, "1 + Math.sqrt(", 14, true, ""},
		{"si", 2, "sin", 3, true, "One of: sin() single() singleordefault() sinh() \n"},
		{"Fused * 2", 5, "fusedmultiplyadd( * 2", 17, true, ""},
		{"ta", 2, "ta", 2, true, "One of: tan() tanh() tau \n"},
		{"zz", 2, "", 0, false, ""},
		{"1 + ", 4, "", 0, false, ""},
		{"he", 2, "help", 4, true, ""},
	}
	for _, tt := range tests {
		var sb strings.Builder
		line, pos, ok := a.Complete(&sb, tt.line, tt.pos)
		if line != tt.expected || pos != tt.newPos || ok != tt.ok {
			t.Errorf("Complete(%q, %d) got %q %d %v, want %q %d %v", tt.line, tt.pos, line, pos, ok,
				tt.expected, tt.newPos, tt.ok)
		}
		if sb.String() != tt.listed {
			t.Errorf("Complete(%q, %d) listed %q, want %q", tt.line, tt.pos, sb.String(), tt.listed)
		}
	}
}
