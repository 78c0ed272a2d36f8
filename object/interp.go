package object

import (
	"errors"
	"strings"

	"fortio.org/log"
	"fortio.org/sets"
)

var (
	extraFunctions   map[string]Function
	extraIdentifiers map[string]float64
	initDone         bool
	frozen           bool
)

// ErrFrozen is returned when trying to add to the registries after Freeze.
var ErrFrozen = errors.New("registries are frozen")

// Namespaces that are accepted (and ignored) in front of symbols, e.g Math.PI or IEnumerable.Sum().
var Namespaces = []string{"math.", "ienumerable."}

// Init resets the table of functions and constants to empty.
// Optional, will be called on demand the first time through CreateFunction.
// Resetting is refused once the registries are frozen.
func Init() {
	if frozen {
		return
	}
	extraFunctions = make(map[string]Function)
	extraIdentifiers = make(map[string]float64)
	initDone = true
}

// CreateFunction adds a new function to the table of functions.
func CreateFunction(fn Function) error {
	if frozen {
		return ErrFrozen
	}
	if !initDone {
		Init()
	}
	if fn.Name == "" {
		return errors.New("empty function name")
	}
	if fn.Callable == nil {
		return errors.New(fn.Name + ": nil callable")
	}
	if fn.Arity != fn.Callable.Arity() {
		return errors.New(fn.Name + ": declared arity doesn't match the callable")
	}
	name := strings.ToLower(fn.Name)
	if _, ok := extraFunctions[name]; ok {
		return errors.New(fn.Name + ": already defined")
	}
	fn.Name = name
	extraFunctions[name] = fn
	return nil
}

// AddIdentifier adds a named constant, e.g "pi" -> 3.14159...
func AddIdentifier(name string, value float64) error {
	if frozen {
		return ErrFrozen
	}
	if !initDone {
		Init()
	}
	if name == "" {
		return errors.New("empty identifier name")
	}
	extraIdentifiers[strings.ToLower(name)] = value
	return nil
}

// Freeze makes the registries read only. From then on they can be shared by any number of
// goroutines without locking.
func Freeze() {
	if !initDone {
		Init()
	}
	frozen = true
	log.LogVf("Registries frozen with %d functions and %d constants", len(extraFunctions), len(extraIdentifiers))
}

func Frozen() bool {
	return frozen
}

// CleanSymbol lower cases the symbol and strips one optional namespace prefix.
func CleanSymbol(symbol string) string {
	s := strings.ToLower(symbol)
	for _, ns := range Namespaces {
		if rest, ok := strings.CutPrefix(s, ns); ok {
			return rest
		}
	}
	return s
}

// LookupFunction returns the registered function for the (uncleaned) symbol.
func LookupFunction(symbol string) (Function, bool) {
	fn, ok := extraFunctions[CleanSymbol(symbol)]
	return fn, ok
}

// LookupVariable returns the value of the constant named by the (uncleaned) symbol.
func LookupVariable(symbol string) (float64, bool) {
	v, ok := extraIdentifiers[CleanSymbol(symbol)]
	return v, ok
}

// FunctionNames returns the set of registered function names.
func FunctionNames() sets.Set[string] {
	res := sets.New[string]()
	for k := range extraFunctions {
		res.Add(k)
	}
	return res
}

// VariableNames returns the set of registered constant names.
func VariableNames() sets.Set[string] {
	res := sets.New[string]()
	for k := range extraIdentifiers {
		res.Add(k)
	}
	return res
}
