package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fortio.org/log"
	"fortio.org/terminal"
	"grol.io/calc/diag"
	"grol.io/calc/eval"
)

const PROMPT = "calc> "

type Options struct {
	ShowParse   bool
	ShowEval    bool
	Color       bool // Results in green, errors in red.
	HistoryFile string
	MaxHistory  int
	MaxDepth    int // Parser nesting limit, default when <= 0.
}

// EvalStringOptions returns the options used by EvalString.
func EvalStringOptions() Options {
	return Options{ShowEval: true}
}

// NewState returns an evaluator state configured from the options.
func NewState(options Options) *eval.State {
	s := eval.NewState()
	if options.MaxDepth > 0 {
		s.MaxDepth = options.MaxDepth
	}
	return s
}

// FormatResult is the shortest representation that parses back to the same value.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// EvalOne evaluates one expression, printing the result or the rendered diagnostic to out.
func EvalOne(s *eval.State, what string, out io.Writer, options Options) error {
	program, err := s.Parse(what)
	if err == nil && options.ShowParse {
		fmt.Fprint(out, "== Parse ==> ")
		fmt.Fprintln(out, program.String())
	}
	var res float64
	if err == nil {
		res, err = s.Run(program, what)
	}
	if err != nil {
		log.LogVf("error evaluating %q: %v", what, err)
		if options.Color {
			fmt.Fprint(out, log.Colors.Red)
		}
		fmt.Fprintln(out, diag.Render(err))
		if options.Color {
			fmt.Fprint(out, log.ANSIColors.Reset)
		}
		return err
	}
	if !options.ShowEval {
		return nil
	}
	if options.ShowParse {
		fmt.Fprint(out, "== Eval  ==> ")
	}
	if options.Color {
		fmt.Fprint(out, log.Colors.Green)
	}
	fmt.Fprintln(out, FormatResult(res))
	if options.Color {
		fmt.Fprint(out, log.ANSIColors.Reset)
	}
	return nil
}

// Lines that are blank or start with # are skipped.
func skipLine(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#")
}

// EvalAll evaluates each line of in as an expression and returns the errors.
func EvalAll(s *eval.State, in io.Reader, out io.Writer, options Options) []error {
	var errs []error
	scanner := bufio.NewScanner(in)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if skipLine(line) {
			continue
		}
		if err := EvalOne(s, line, out, options); err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", lineNum, err))
		}
	}
	if err := scanner.Err(); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// EvalString evaluates each line of what and returns the output and errors.
func EvalString(what string) (res string, errs []error) {
	return EvalStringWithOption(EvalStringOptions(), what)
}

func EvalStringWithOption(o Options, what string) (res string, errs []error) {
	out := &strings.Builder{}
	s := NewState(o)
	errs = EvalAll(s, strings.NewReader(what), out, o)
	return out.String(), errs
}

// Interactive runs the read-eval-print loop on the terminal until EOF (^D).
func Interactive(options Options) int {
	options.Color = true
	term, err := terminal.Open(context.Background())
	if err != nil {
		return log.FErrf("Error creating terminal: %v", err)
	}
	defer term.Close()
	term.SetPrompt(PROMPT)
	autoComplete := NewCompletion()
	term.SetAutoCompleteCallback(autoComplete.AutoComplete())
	term.NewHistory(options.MaxHistory)
	if options.HistoryFile != "" && options.MaxHistory > 0 {
		if err = term.SetHistoryFile(options.HistoryFile); err != nil {
			log.Warnf("Unable to use history file %q: %v", options.HistoryFile, err)
		}
	}
	s := NewState(options)
	fmt.Fprintln(term.Out, "Type an expression, 'help' or 'info'. ^D to exit.")
	for {
		line, err := term.ReadLine()
		if errors.Is(err, io.EOF) {
			log.Infof("Exit requested")
			return 0
		}
		if err != nil {
			return log.FErrf("Error reading line: %v", err)
		}
		if skipLine(line) {
			continue
		}
		if Command(term.Out, line) {
			continue
		}
		// Errors are shown by EvalOne, nothing else to do with them here.
		_ = EvalOne(s, line, term.Out, options)
	}
}
