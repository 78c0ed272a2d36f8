package extensions

import (
	"encoding/binary"
	"hash/fnv"
	"math"

	"grol.io/calc/object"
)

type namedVariadic struct {
	fn   object.Variadic
	name string
	help string
}

// reducers are the variadic builtins. The parser never lets a variadic function be called
// with zero arguments so they can all assume len(args) >= 1.
func reducers() []namedVariadic {
	return []namedVariadic{
		{sum, "sum", "sum of the arguments"},
		{average, "average", "arithmetic mean of the arguments"},
		{minimum, "min", "smallest argument"},
		{maximum, "max", "largest argument"},
		{first, "first", "first argument"},
		{last, "last", "last argument"},
		{count, "count", "number of arguments"},
		{count, "length", "number of arguments"},
		{single, "single", "the only argument, NaN if there is more than one"},
		{single, "singleordefault", "the only argument, NaN if there is more than one"},
		{first, "firstordefault", "first argument"},
		{last, "lastordefault", "last argument"},
		{hashCode, "gethashcode", "FNV-1a hash of the arguments"},
	}
}

func sum(args []float64) float64 {
	res := 0.
	for _, v := range args {
		res += v
	}
	return res
}

func average(args []float64) float64 {
	return sum(args) / float64(len(args))
}

func minimum(args []float64) float64 {
	res := args[0]
	for _, v := range args[1:] {
		res = math.Min(res, v)
	}
	return res
}

func maximum(args []float64) float64 {
	res := args[0]
	for _, v := range args[1:] {
		res = math.Max(res, v)
	}
	return res
}

func first(args []float64) float64 {
	return args[0]
}

func last(args []float64) float64 {
	return args[len(args)-1]
}

func count(args []float64) float64 {
	return float64(len(args))
}

func single(args []float64) float64 {
	if len(args) != 1 {
		return math.NaN()
	}
	return args[0]
}

// Deterministic so evaluating the same expression twice always gives the same result.
func hashCode(args []float64) float64 {
	h := fnv.New32a()
	var buf [8]byte
	for _, v := range args {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		_, _ = h.Write(buf[:])
	}
	return float64(int32(h.Sum32())) //nolint:gosec // wrap around is the point of a hash code.
}
