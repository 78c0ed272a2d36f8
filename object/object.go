package object

import (
	"fmt"
)

// Callable is the closed set of function shapes the evaluator knows how to call:
// Unary, Binary, Ternary and Variadic.
type Callable interface {
	// Arity is the number of operands the callable consumes, 0 for variadic.
	Arity() int
	callable()
}

type (
	Unary    func(x float64) float64
	Binary   func(x, y float64) float64
	Ternary  func(x, y, z float64) float64
	Variadic func(args []float64) float64
)

func (Unary) Arity() int    { return 1 }
func (Binary) Arity() int   { return 2 }
func (Ternary) Arity() int  { return 3 }
func (Variadic) Arity() int { return 0 }

func (Unary) callable()    {}
func (Binary) callable()   {}
func (Ternary) callable()  {}
func (Variadic) callable() {}

// Function is a named callable. In the registry Arity is the declared one (0 means
// variadic); in a parsed program it is the resolved number of arguments of that call
// and Offset/Length span the call site in the source.
type Function struct {
	Name     string
	Arity    int
	Callable Callable
	Help     string
	Offset   int
	Length   int
}

func (f Function) Variadic() bool {
	_, ok := f.Callable.(Variadic)
	return ok
}

func (f Function) String() string {
	return f.Name + "()"
}

// Inspect shows the function with its (resolved) arity, e.g. average/3.
func (f Function) Inspect() string {
	if f.Arity == 0 {
		return f.Name + "/n"
	}
	return fmt.Sprintf("%s/%d", f.Name, f.Arity)
}

// Operator is a binary operator. Higher Precedence binds tighter.
type Operator struct {
	Precedence int
	Literal    string
	Fn         func(left, right float64) float64
}

func (o *Operator) String() string {
	return o.Literal
}
