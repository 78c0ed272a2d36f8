// Calc evaluates arithmetic expressions: one shot with -c, one per line from files
// or stdin, or interactively.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"fortio.org/cli"
	"fortio.org/duration"
	"fortio.org/log"
	"fortio.org/progressbar"
	"fortio.org/struct2env"
	"fortio.org/terminal"
	"grol.io/calc/diag"
	"grol.io/calc/eval"
	"grol.io/calc/extensions"
	"grol.io/calc/parser"
	"grol.io/calc/repl"
)

func main() {
	os.Exit(Main())
}

// Config is what can be set through CALC_ environment variables.
type Config struct {
	HistoryFile string
	MaxDepth    int
	ShortNames  bool
}

var config = Config{MaxDepth: parser.DefaultMaxDepth}

func EnvHelp(w io.Writer) {
	res, _ := struct2env.StructToEnvVars(config)
	str := struct2env.ToShellWithPrefix("CALC_", res, true)
	fmt.Fprintln(w, "# Calc environment variables:")
	fmt.Fprint(w, str)
}

var hookBefore, hookAfter func() int

func Main() int {
	commandFlag := flag.String("c", "", "expression(s) to evaluate instead of interactive mode")
	showParse := flag.Bool("parse", false, "show the postfix program")
	showEval := flag.Bool("eval", true, "show evaluation results")
	bench := duration.Flag("bench", 0, "evaluate the -c expression repeatedly for that `duration` (e.g 5s, 1m) and report the rate")
	const historyDefault = "~/.calc_history" // virtual/token filename, will be replaced by actual home dir if not changed.
	cli.EnvHelpFuncs = append(cli.EnvHelpFuncs, EnvHelp)
	defaultHistoryFile := historyDefault
	errs := struct2env.SetFromEnv("CALC_", &config)
	if len(errs) > 0 {
		log.Errf("Error setting config from env: %v", errs)
	}
	if config.HistoryFile != "" {
		defaultHistoryFile = config.HistoryFile
	}
	historyFile := flag.String("history", defaultHistoryFile, "history `file` to use")
	maxHistory := flag.Int("max-history", terminal.DefaultHistoryCapacity, "max history `size`, use 0 to disable.")
	maxDepth := flag.Int("max-depth", config.MaxDepth, "maximum nesting of parentheses")
	shortNames := flag.Bool("short-names", config.ShortNames, "also register the ln, ceil, trunc and avg aliases")
	cli.ArgsHelp = "files with one expression per line or `-` for stdin without prompt or no arguments for interactive mode..."
	cli.MaxArgs = -1
	cli.Main()
	histFile := *historyFile
	if histFile == historyDefault {
		homeDir, err := os.UserHomeDir()
		histFile = filepath.Join(homeDir, ".calc_history")
		if err != nil {
			log.Warnf("Couldn't get user home dir: %v", err)
			histFile = ""
		}
	}
	log.Infof("calc %s - welcome!", cli.LongVersion)
	options := repl.Options{
		ShowParse:   *showParse,
		ShowEval:    *showEval,
		HistoryFile: histFile,
		MaxHistory:  *maxHistory,
		MaxDepth:    *maxDepth,
	}
	if hookBefore != nil {
		ret := hookBefore()
		if ret != 0 {
			return ret
		}
	}
	err := extensions.Init(&extensions.Config{ShortNames: *shortNames})
	if err != nil {
		return log.FErrf("Error initializing extensions: %v", err)
	}
	ret := run(options, *commandFlag, *bench)
	if hookAfter != nil {
		if r := hookAfter(); r != 0 {
			return r
		}
	}
	return ret
}

// Returns the number of errors.
func run(options repl.Options, command string, bench time.Duration) int {
	if bench > 0 {
		if command == "" {
			return log.FErrf("-bench needs an expression to evaluate (-c)")
		}
		return runBench(options, command, bench)
	}
	if command != "" {
		res, errs := repl.EvalStringWithOption(options, command)
		fmt.Print(res)
		if len(errs) > 0 {
			log.Errf("Errors: %v", errs)
		}
		return len(errs)
	}
	if len(flag.Args()) == 0 {
		return repl.Interactive(options)
	}
	s := repl.NewState(options)
	numErrs := 0
	for _, file := range flag.Args() {
		numErrs += processOneFile(file, s, options)
	}
	log.Infof("All done, %d error(s)", numErrs)
	return numErrs
}

func processOneStream(s *eval.State, in io.Reader, options repl.Options) int {
	errs := repl.EvalAll(s, in, os.Stdout, options)
	if len(errs) > 0 {
		log.Errf("Errors: %v", errs)
	}
	return len(errs)
}

func processOneFile(file string, s *eval.State, options repl.Options) int {
	if file == "-" {
		log.Infof("Running on stdin")
		return processOneStream(s, os.Stdin, options)
	}
	f, err := os.Open(file)
	if err != nil {
		log.Errf("%v", err)
		return 1
	}
	defer f.Close()
	log.Infof("Running %s", file)
	return processOneStream(s, f, options)
}

const benchBatch = 1000

// Full lex, parse and run of the expression, repeated for the duration.
func runBench(options repl.Options, expression string, d time.Duration) int {
	s := repl.NewState(options)
	s.NoCache = true
	res, err := s.Evaluate(expression)
	if err != nil {
		fmt.Println(diag.Render(err))
		return 1
	}
	bar := progressbar.NewBar()
	start := time.Now()
	n := 0
	for {
		for range benchBatch {
			res, _ = s.Evaluate(expression)
		}
		n += benchBatch
		elapsed := time.Since(start)
		if elapsed >= d {
			break
		}
		bar.Progress(100. * float64(elapsed) / float64(d))
	}
	bar.End()
	elapsed := time.Since(start)
	log.S(log.Info, "Benchmark done", log.Str("expression", expression),
		log.Attr("evaluations", n), log.Str("elapsed", elapsed.String()),
		log.Attr("per_second", float64(n)/elapsed.Seconds()))
	if options.ShowEval {
		fmt.Println(repl.FormatResult(res))
	}
	return 0
}
