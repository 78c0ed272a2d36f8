package eval

import (
	"fortio.org/log"
	"grol.io/calc/extensions"
	"grol.io/calc/lexer"
	"grol.io/calc/parser"
	"grol.io/calc/rpn"
)

// Exported part of the eval package.

type State struct {
	// Maximum nesting of parentheses, parser.DefaultMaxDepth when <= 0.
	MaxDepth int
	// Don't remember parsed programs (e.g. when every expression is different).
	NoCache bool
	cache   Cache
}

func NewState() *State {
	return &State{
		MaxDepth: parser.DefaultMaxDepth,
		cache:    NewCache(),
	}
}

// Evaluate lexes, parses and runs the expression. The built-in functions and constants
// are registered on first use (see extensions.Init to customize them). Safe for
// concurrent use.
func Evaluate(expression string) (float64, error) {
	program, err := parse(expression, parser.DefaultMaxDepth)
	if err != nil {
		return 0, err
	}
	return run(program, expression)
}

func parse(expression string, maxDepth int) (rpn.Program, error) {
	if err := extensions.Init(nil); err != nil {
		return nil, err
	}
	l, err := lexer.New(expression)
	if err != nil {
		return nil, err
	}
	p := parser.New(l)
	if maxDepth > 0 {
		p.MaxDepth = maxDepth
	}
	return p.Parse()
}

// Parse returns the (possibly cached) program for the expression. A State is not
// safe for concurrent use, use one per goroutine.
func (s *State) Parse(expression string) (rpn.Program, error) {
	if !s.NoCache {
		if program, ok := s.cache.Get(expression); ok {
			log.Debugf("cache hit for %q", expression)
			return program, nil
		}
	}
	program, err := parse(expression, s.MaxDepth)
	if err != nil {
		return nil, err
	}
	if !s.NoCache {
		s.cache.Set(expression, program)
	}
	return program, nil
}

func (s *State) Evaluate(expression string) (float64, error) {
	program, err := s.Parse(expression)
	if err != nil {
		return 0, err
	}
	return run(program, expression)
}

// Run executes a program previously returned by Parse for that expression, which is
// only used for the diagnostics.
func (s *State) Run(program rpn.Program, expression string) (float64, error) {
	return run(program, expression)
}

func (s *State) ResetCache() {
	s.cache = NewCache()
}

// CacheSize is the number of programs currently cached.
func (s *State) CacheSize() int {
	return len(s.cache)
}
