package object

import (
	"math"

	"fortio.org/safecast"
	"grol.io/calc/token"
)

// Precedence levels, higher binds tighter.
const (
	SHIFT   = iota // << >>
	SUM            // + -
	PRODUCT        // * / %
	POWER          // ^
)

// Percentage is what % means: x % y is y percent of x. Use mod() for the remainder.
func Percentage(x, y float64) float64 {
	return x * (y / 100)
}

// Shift operands are truncated to int32 like in C, out of range (or NaN) operands give NaN.
func shift(left, right float64, fn func(l int32, n uint) int32) float64 {
	if !finite(left) || !finite(right) {
		return math.NaN()
	}
	l, err := safecast.Truncate[int32](left)
	if err != nil {
		return math.NaN()
	}
	r, err := safecast.Truncate[int32](right)
	if err != nil {
		return math.NaN()
	}
	return float64(fn(l, uint(r&31))) //nolint:gosec // masked to 0-31.
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func lshift(left, right float64) float64 {
	return shift(left, right, func(l int32, n uint) int32 { return l << n })
}

func rshift(left, right float64) float64 {
	return shift(left, right, func(l int32, n uint) int32 { return l >> n })
}

var operators = map[token.Type]*Operator{
	token.LSHIFT:        {SHIFT, "<<", lshift},
	token.RSHIFT:        {SHIFT, ">>", rshift},
	token.PLUS:          {SUM, "+", func(l, r float64) float64 { return l + r }},
	token.MINUS:         {SUM, "-", func(l, r float64) float64 { return l - r }},
	token.PLUSMINUS:     {SUM, "+-", func(l, r float64) float64 { return l + -r }},
	token.MINUSPLUS:     {SUM, "-+", func(l, r float64) float64 { return l - +r }},
	token.ASTERISK:      {PRODUCT, "*", func(l, r float64) float64 { return l * r }},
	token.ASTERISKMINUS: {PRODUCT, "*-", func(l, r float64) float64 { return l * -r }},
	token.ASTERISKPLUS:  {PRODUCT, "*+", func(l, r float64) float64 { return l * +r }},
	token.SLASH:         {PRODUCT, "/", func(l, r float64) float64 { return l / r }},
	token.SLASHMINUS:    {PRODUCT, "/-", func(l, r float64) float64 { return l / -r }},
	token.SLASHPLUS:     {PRODUCT, "/+", func(l, r float64) float64 { return l / +r }},
	token.PERCENT:       {PRODUCT, "%", Percentage},
	token.PERCENTMINUS:  {PRODUCT, "%-", func(l, r float64) float64 { return Percentage(l, -r) }},
	token.PERCENTPLUS:   {PRODUCT, "%+", func(l, r float64) float64 { return Percentage(l, +r) }},
	token.CARET:         {POWER, "^", math.Pow},
}

// LookupOperator returns the binary operator for the token type. The returned
// operator is shared and must not be modified.
func LookupOperator(t token.Type) (*Operator, bool) {
	op, ok := operators[t]
	return op, ok
}

// Factorial of the truncated x, NaN for negative or non finite values.
func Factorial(x float64) float64 {
	if !finite(x) {
		return math.NaN()
	}
	if x >= 171 {
		return math.Inf(1)
	}
	n, err := safecast.Truncate[int64](x)
	if err != nil || n < 0 {
		return math.NaN()
	}
	res := 1.
	for i := int64(2); i <= n; i++ {
		res *= float64(i)
	}
	return res
}
