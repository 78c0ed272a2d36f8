package repl

import (
	"fmt"
	"io"
	"strings"

	"fortio.org/sets"
	"fortio.org/terminal"
	"grol.io/calc/lexer"
	"grol.io/calc/object"
	"grol.io/calc/trie"
)

type AutoComplete struct {
	Trie *trie.Trie
}

// NewCompletion returns a completion for the registered functions (with their opening
// paren), constants and the interactive commands.
func NewCompletion() *AutoComplete {
	t := trie.NewTrie()
	for _, name := range sets.Sort(object.FunctionNames()) {
		t.Insert(name + "(")
	}
	for _, name := range sets.Sort(object.VariableNames()) {
		t.Insert(name)
	}
	t.Insert("help")
	t.Insert("info")
	return &AutoComplete{t}
}

func (a *AutoComplete) AutoComplete() terminal.AutoCompleteCallback {
	return func(t *terminal.Terminal, line string, pos int, key rune) (newLine string, newPos int, ok bool) {
		if key != '\t' {
			return // only tab for now
		}
		return a.Complete(t.Out, line, pos)
	}
}

// Complete completes the symbol ending at pos, listing the candidates on out when
// there is more than one. The optional namespace prefix is kept as typed.
func (a *AutoComplete) Complete(out io.Writer, line string, pos int) (newLine string, newPos int, ok bool) {
	start := pos
	for start > 0 && lexer.IsSymbolChar(line[start-1]) {
		start--
	}
	word := strings.ToLower(line[start:pos])
	if word == "" {
		return
	}
	for _, ns := range object.Namespaces {
		if strings.HasPrefix(word, ns) {
			start += len(ns)
			word = word[len(ns):]
			break
		}
	}
	l, candidates := a.Trie.PrefixAll(word)
	if len(candidates) == 0 {
		return
	}
	if len(candidates) > 1 {
		fmt.Fprint(out, "One of: ")
		for _, c := range candidates {
			if strings.HasSuffix(c, "(") {
				fmt.Fprint(out, c, ") ")
			} else {
				fmt.Fprint(out, c, " ")
			}
		}
		fmt.Fprintln(out)
	}
	completion := candidates[0][:l]
	return line[:start] + completion + line[pos:], start + len(completion), true
}
