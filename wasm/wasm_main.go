//go:build wasm
// +build wasm

/*
Web assembly main for calc, exposing the evaluator (repl.EvalString) to JS
*/

package main

import (
	"runtime/debug"
	"strings"
	"syscall/js"

	"fortio.org/cli"
	"fortio.org/log"
	"fortio.org/version"
	"grol.io/calc/diag"
	"grol.io/calc/extensions"
	"grol.io/calc/repl"
)

var (
	// Parentheses nesting limit, expressions typed in a page don't need more.
	WasmMaxDepth = 200

	// Set a reasonably low memory limit for wasm. 64MiB.
	WasmMemLimit = int64(64 * 1024 * 1024)
)

// calc(expressions[, showParse]) returns {result: string, errors: [string]}.
func jsEval(_ js.Value, args []js.Value) any {
	if len(args) != 1 && len(args) != 2 {
		return "ERROR: number of arguments doesn't match should be string or string, bool for showing the parse"
	}
	input := args[0].String()
	opts := repl.EvalStringOptions()
	if len(args) == 2 {
		opts.ShowParse = args[1].Bool()
	}
	opts.MaxDepth = WasmMaxDepth
	res, errs := repl.EvalStringWithOption(opts, input)
	result := make(map[string]any)
	result["result"] = strings.TrimSuffix(res, "\n")
	// transfer errors to []any (!)
	anyErrs := make([]any, len(errs))
	for i, v := range errs {
		anyErrs[i] = diag.Render(v)
	}
	result["errors"] = anyErrs
	return result
}

func main() {
	cli.Main() // just to get version etc
	_, calcVersion, _ := version.FromBuildInfoPath("grol.io/calc")
	prev := debug.SetMemoryLimit(WasmMemLimit)
	log.Infof("Calc wasm main %s - prev memory limit %d now %d", calcVersion, prev, WasmMemLimit)
	done := make(chan struct{})
	global := js.Global()
	global.Set("calc", js.FuncOf(jsEval))
	global.Set("calcVersion", js.ValueOf(calcVersion))
	err := extensions.Init(&extensions.Config{ShortNames: true})
	if err != nil {
		log.Critf("Error initializing extensions: %v", err)
	}
	<-done
}
