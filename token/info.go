package token

import "fortio.org/sets"

// Info enables introspection of known operators and delimiters.
type CalcInfo struct {
	// Operators is the set of binary, compound and postfix operator lexemes.
	Operators sets.Set[string]
	// Delimiters is the set of grouping and separator lexemes.
	Delimiters sets.Set[string]
}

var info = buildInfo()

func buildInfo() CalcInfo {
	res := CalcInfo{
		Operators:  sets.New[string](),
		Delimiters: sets.New[string](),
	}
	for k, t := range char2Lexemes {
		if t.IsBinaryOperator() {
			res.Operators.Add(string(k[:]))
		}
	}
	for k, t := range char1Lexemes {
		if t.IsBinaryOperator() || t == BANG {
			res.Operators.Add(string(k))
		} else {
			res.Delimiters.Add(string(k))
		}
	}
	return res
}

func Info() CalcInfo {
	return info
}
