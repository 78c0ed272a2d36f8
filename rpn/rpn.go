// Package rpn is the linear postfix (reverse polish notation) form of an expression,
// what the parser produces and the evaluator runs.
package rpn

import (
	"strconv"
	"strings"

	"grol.io/calc/object"
)

type Kind uint8

const (
	NUMBER Kind = iota
	NEGATE
	OPERATOR
	FUNCTION
	FACTORIAL
)

func (k Kind) String() string {
	switch k {
	case NUMBER:
		return "NUMBER"
	case NEGATE:
		return "NEGATE"
	case OPERATOR:
		return "OPERATOR"
	case FUNCTION:
		return "FUNCTION"
	case FACTORIAL:
		return "FACTORIAL"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Instruction is one step of a Program. Only the field matching Kind is set, Offset and
// Length are the span of the source it came from.
type Instruction struct {
	Kind     Kind
	Value    float64          // NUMBER
	Operator *object.Operator // OPERATOR
	Function object.Function  // FUNCTION, with the resolved arity.
	Offset   int
	Length   int
}

func (i Instruction) String() string {
	switch i.Kind {
	case NUMBER:
		return strconv.FormatFloat(i.Value, 'g', -1, 64)
	case NEGATE:
		return "neg"
	case OPERATOR:
		return i.Operator.String()
	case FUNCTION:
		return i.Function.Inspect()
	case FACTORIAL:
		return "!"
	default:
		return i.Kind.String()
	}
}

// Program is immutable once returned by the parser.
type Program []Instruction

// String is the space separated postfix form, e.g "1 2 3 * + pow/2".
func (p Program) String() string {
	var sb strings.Builder
	for i, instr := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(instr.String())
	}
	return sb.String()
}
