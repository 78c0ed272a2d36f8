// Package eval runs postfix programs on a stack machine and provides the
// Evaluate entry point (lex, parse and run an expression).
package eval

import (
	"fortio.org/log"
	"grol.io/calc/diag"
	"grol.io/calc/object"
	"grol.io/calc/rpn"
)

// Run executes the program and returns the single value left on the stack.
// Errors are only possible for programs the parser would never produce and are
// in the diag.ErrInvariant category.
func Run(program rpn.Program) (float64, error) {
	return run(program, "")
}

func run(program rpn.Program, src string) (float64, error) {
	s := make(stack, 0, len(program))
	for i, instr := range program {
		if log.LogDebug() {
			log.Debugf("run %d: %s stack %v", i, instr.String(), s)
		}
		need := operandsNeeded(instr)
		if need < 0 {
			return 0, diag.New(diag.OperandUnderflow, src, instr.Offset, instr.Length,
				"%s has no resolved arity", instr.String())
		}
		if len(s) < need {
			return 0, diag.New(diag.OperandUnderflow, src, instr.Offset, instr.Length,
				"operand stack underflow: %s needs %d operands, has %d", instr.String(), need, len(s))
		}
		switch instr.Kind {
		case rpn.NUMBER:
			s.push(instr.Value)
		case rpn.NEGATE:
			s.push(-s.pop())
		case rpn.FACTORIAL:
			s.push(object.Factorial(s.pop()))
		case rpn.OPERATOR:
			right := s.pop()
			left := s.pop()
			s.push(instr.Operator.Fn(left, right))
		case rpn.FUNCTION:
			s.push(call(instr.Function, &s))
		}
	}
	if len(s) != 1 {
		return 0, diag.New(diag.StackImbalance, src, 0, len(src),
			"evaluation ended with %d values on the stack instead of 1", len(s))
	}
	return s[0], nil
}

// Number of operands the instruction pops, -1 for a function that can't be called.
func operandsNeeded(instr rpn.Instruction) int {
	switch instr.Kind {
	case rpn.NEGATE, rpn.FACTORIAL:
		return 1
	case rpn.OPERATOR:
		return 2
	case rpn.FUNCTION:
		fn := instr.Function
		switch {
		case fn.Callable == nil:
			return -1
		case fn.Variadic():
			if fn.Arity < 1 {
				return -1
			}
			return fn.Arity
		default:
			return fn.Callable.Arity()
		}
	default:
		return 0
	}
}

// Operands were pushed left to right so they pop in reverse.
func call(fn object.Function, s *stack) float64 {
	switch c := fn.Callable.(type) {
	case object.Unary:
		return c(s.pop())
	case object.Binary:
		y := s.pop()
		x := s.pop()
		return c(x, y)
	case object.Ternary:
		z := s.pop()
		y := s.pop()
		x := s.pop()
		return c(x, y, z)
	case object.Variadic:
		// Copy: the reducer must not see (or keep) the stack's backing array.
		args := append([]float64(nil), s.popN(fn.Arity)...)
		return c(args)
	default:
		panic("bug: unexpected callable type for " + fn.Inspect())
	}
}
