package eval

// Operand stack of the evaluator.
type stack []float64

func (s *stack) push(v float64) {
	*s = append(*s, v)
}

func (s *stack) pop() float64 {
	old := *s
	v := old[len(old)-1]
	*s = old[:len(old)-1]
	return v
}

// popN removes the top n values and returns them in push order.
func (s *stack) popN(n int) []float64 {
	old := *s
	res := old[len(old)-n:]
	*s = old[:len(old)-n]
	return res
}
