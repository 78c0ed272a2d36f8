// Package extensions maps go math functions and reducers to calc functions.
// Same mechanism can be used to map other go functions and further extend the set of builtins
// before the registries get frozen.
package extensions

import (
	"math"
	"sync"

	"grol.io/calc/object"
)

var (
	initOnce  sync.Once
	errInInit error
)

// Configure optional builtins.
type Config struct {
	ShortNames bool // Also register the short ln, ceil, trunc and avg aliases.
	// Extra is called after the builtins are registered and before the registries are frozen,
	// to add application specific functions or constants through object.CreateFunction/AddIdentifier.
	Extra func() error
}

// Init registers the builtin constants and functions then freezes the registries.
// It can be called multiple times and from multiple goroutines safely: only the first
// call's Config is used, subsequent calls return the same error (if any).
// If the passed [Config] pointer is nil, default values are used.
func Init(c *Config) error {
	initOnce.Do(func() {
		if c == nil {
			c = &Config{}
		}
		errInInit = initInternal(c)
		object.Freeze()
	})
	return errInInit
}

type namedUnary struct {
	fn   object.Unary
	name string
	help string
}

type namedBinary struct {
	fn   object.Binary
	name string
	help string
}

func initInternal(c *Config) error {
	for _, id := range []struct {
		name  string
		value float64
	}{
		{"pi", math.Pi},
		{"e", math.E},
		{"tau", 2 * math.Pi},
	} {
		if err := object.AddIdentifier(id.name, id.value); err != nil {
			return err
		}
	}
	for _, function := range reducers() {
		if err := object.CreateFunction(object.Function{
			Name: function.name, Callable: function.fn, Help: function.help,
		}); err != nil {
			return err
		}
	}
	unary := unaryFunctions()
	if c.ShortNames {
		unary = append(unary,
			namedUnary{math.Log, "ln", "natural logarithm (alias of log)"},
			namedUnary{math.Ceil, "ceil", "alias of ceiling"},
			namedUnary{math.Trunc, "trunc", "alias of truncate"},
		)
	}
	for _, function := range unary {
		if err := object.CreateFunction(object.Function{
			Name: function.name, Arity: 1, Callable: function.fn, Help: function.help,
		}); err != nil {
			return err
		}
	}
	for _, function := range binaryFunctions() {
		if err := object.CreateFunction(object.Function{
			Name: function.name, Arity: 2, Callable: function.fn, Help: function.help,
		}); err != nil {
			return err
		}
	}
	err := object.CreateFunction(object.Function{
		Name:     "fusedmultiplyadd",
		Arity:    3,
		Callable: object.Ternary(math.FMA),
		Help:     "x*y+z computed with only one rounding",
	})
	if err != nil {
		return err
	}
	if c.ShortNames {
		err = object.CreateFunction(object.Function{Name: "avg", Callable: object.Variadic(average), Help: "alias of average"})
		if err != nil {
			return err
		}
	}
	if c.Extra != nil {
		return c.Extra()
	}
	return nil
}

func unaryFunctions() []namedUnary {
	return []namedUnary{
		{math.Abs, "abs", "absolute value"},
		{math.Ceil, "ceiling", "smallest integer value >= x"},
		{math.Floor, "floor", "largest integer value <= x"},
		{math.Log, "log", "natural logarithm"},
		{math.RoundToEven, "round", "nearest integer, half to even"},
		{math.Trunc, "truncate", "integer part of x"},
		{math.Acos, "acos", "arccosine"},
		{math.Acosh, "acosh", "inverse hyperbolic cosine"},
		{math.Asin, "asin", "arcsine"},
		{math.Asinh, "asinh", "inverse hyperbolic sine"},
		{math.Atan, "atan", "arctangent"},
		{math.Atanh, "atanh", "inverse hyperbolic tangent"},
		{bitDecrement, "bitdecrement", "next smaller float64"},
		{bitIncrement, "bitincrement", "next larger float64"},
		{math.Cbrt, "cbrt", "cube root"},
		{math.Cos, "cos", "cosine"},
		{math.Cosh, "cosh", "hyperbolic cosine"},
		{math.Exp, "exp", "e^x"},
		{math.Log10, "log10", "decimal logarithm"},
		{math.Log2, "log2", "binary logarithm"},
		{math.Sin, "sin", "sine"},
		{math.Sinh, "sinh", "hyperbolic sine"},
		{math.Sqrt, "sqrt", "square root"},
		{math.Tan, "tan", "tangent"},
		{math.Tanh, "tanh", "hyperbolic tangent"},
	}
}

func binaryFunctions() []namedBinary {
	return []namedBinary{
		{math.Pow, "pow", "x^y"},
		{math.Atan2, "atan2", "arctangent of y/x using the signs of both"},
		{math.Copysign, "copysign", "magnitude of x with the sign of y"},
		{math.Remainder, "ieeeremainder", "IEEE 754 remainder of x/y"},
		{maxMagnitude, "maxmagnitude", "argument with the larger absolute value"},
		{minMagnitude, "minmagnitude", "argument with the smaller absolute value"},
		{math.Mod, "mod", "remainder of x/y with the sign of x"},
	}
}

func bitDecrement(x float64) float64 {
	return math.Nextafter(x, math.Inf(-1))
}

func bitIncrement(x float64) float64 {
	return math.Nextafter(x, math.Inf(1))
}

func maxMagnitude(x, y float64) float64 {
	ax, ay := math.Abs(x), math.Abs(y)
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.NaN()
	case ax > ay:
		return x
	case ax < ay:
		return y
	default:
		return math.Max(x, y)
	}
}

func minMagnitude(x, y float64) float64 {
	ax, ay := math.Abs(x), math.Abs(y)
	switch {
	case math.IsNaN(x) || math.IsNaN(y):
		return math.NaN()
	case ax < ay:
		return x
	case ax > ay:
		return y
	default:
		return math.Min(x, y)
	}
}
