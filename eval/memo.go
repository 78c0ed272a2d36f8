package eval

import (
	"grol.io/calc/rpn"
)

// MaxCacheSize is the number of parsed programs a State keeps before starting over.
const MaxCacheSize = 4096

// Cache of parsed programs by expression. Programs are immutable so a cached one can
// be run any number of times.
type Cache map[string]rpn.Program

func NewCache() Cache {
	return make(Cache)
}

func (c Cache) Get(expression string) (rpn.Program, bool) {
	program, ok := c[expression]
	return program, ok
}

func (c Cache) Set(expression string, program rpn.Program) {
	if c == nil {
		return
	}
	if len(c) >= MaxCacheSize {
		clear(c)
	}
	c[expression] = program
}
