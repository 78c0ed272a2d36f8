package repl

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/sets"
	"grol.io/calc/object"
	"grol.io/calc/token"
)

// Command handles the help and info commands of the interactive mode, returns false
// when line is not one of them (and thus an expression).
func Command(out io.Writer, line string) bool {
	fields := strings.Fields(line)
	switch {
	case len(fields) == 1 && fields[0] == "info":
		Info(out)
	case len(fields) == 1 && fields[0] == "help":
		Help(out)
	case len(fields) == 2 && fields[0] == "help":
		HelpFor(out, fields[1])
	default:
		return false
	}
	return true
}

// Info prints the known operators, constants and functions.
func Info(out io.Writer) {
	info := token.Info()
	fmt.Fprintln(out, "Operators: ", strings.Join(sets.Sort(info.Operators), " "))
	fmt.Fprintln(out, "Delimiters:", strings.Join(sets.Sort(info.Delimiters), " "))
	fmt.Fprintln(out, "Constants: ", strings.Join(sets.Sort(object.VariableNames()), " "))
	fmt.Fprintln(out, "Functions: ", strings.Join(sets.Sort(object.FunctionNames()), " "))
}

// Help prints every function with its arity and description.
func Help(out io.Writer) {
	fmt.Fprintln(out, "Names are case insensitive and can be prefixed by Math. or IEnumerable.")
	fmt.Fprintln(out, "x % y is y percent of x, use mod(x, y) for the remainder. 'help name' for one function.")
	for _, name := range sets.Sort(object.FunctionNames()) {
		fn, _ := object.LookupFunction(name)
		fmt.Fprintf(out, "  %-18s %s\n", fn.Inspect(), fn.Help)
	}
}

// HelpFor prints the help of one function or the value of one constant.
func HelpFor(out io.Writer, name string) {
	name = strings.TrimSuffix(name, "()")
	if fn, ok := object.LookupFunction(name); ok {
		fmt.Fprintf(out, "%s: %s\n", fn.Inspect(), fn.Help)
		return
	}
	if v, ok := object.LookupVariable(name); ok {
		fmt.Fprintf(out, "%s = %s\n", object.CleanSymbol(name), FormatResult(v))
		return
	}
	suggestions := append(object.Suggest(name, true), object.Suggest(name, false)...)
	if len(suggestions) == 0 {
		fmt.Fprintf(out, "%s: unknown\n", name)
		return
	}
	fmt.Fprintf(out, "%s: unknown, did you mean %s?\n", name, strings.Join(suggestions, " or "))
}
