package trie_test

import (
	"slices"
	"testing"

	"grol.io/calc/trie"
)

func TestTrie_InsertAndContains(t *testing.T) {
	trie := trie.NewTrie()

	// Insert "ABC" and check containment
	trie.Insert("ABC")
	if !trie.Contains("ABC") {
		t.Error("Expected to find 'ABC', but it was not found.")
	}
	if trie.Contains("AB") {
		t.Error("Expected 'AB' to be not found, but it was found.")
	}
	if trie.Contains("ABCD") {
		t.Error("Expected 'ABCD' to be not found, but it was found.")
	}
	p := trie.Prefix("ABC")
	if !p.IsLeaf() {
		t.Errorf("Expected to find 'ABC' as the shared leaf node but it isn't: %+v", p)
	}
	trie.Insert("AB2")
	p2 := trie.Prefix("AB2")
	if p2 != p {
		t.Errorf("Expected 'ABC' and 'AB2' to share the same leaf node but they don't: %#v != %#v", p, p2)
	}
	if trie.Contains("AB") {
		t.Error("Expected 'AB' to be not found, but it was found after adding 'AB2'.")
	}
	// Insert "ABCD" and check both "ABC" and "ABCD"
	trie.Insert("ABCD")
	if !trie.Contains("ABC") {
		t.Error("Expected to find 'ABC', but it was not found after adding 'ABCD'.")
	}
	if !trie.Contains("ABCD") {
		t.Error("Expected to find 'ABCD', but it was not found.")
	}
	// Shorter word inserted after a longer one sharing its prefix.
	trie.Insert("AB")
	if !trie.Contains("AB") {
		t.Error("Expected to find 'AB' after inserting it.")
	}
	if !trie.Contains("ABCD") || !trie.Contains("AB2") {
		t.Error("Inserting 'AB' lost longer words.")
	}
}

func TestPrefixAll(t *testing.T) {
	tr := trie.NewTrie()
	for _, w := range []string{"sin", "sinh", "sqrt", "sum", "single", "singleordefault", "pi"} {
		tr.Insert(w)
	}
	tests := []struct {
		prefix   string
		common   int
		expected []string
	}{
		{"si", 3, []string{"sin", "single", "singleordefault", "sinh"}},
		{"sq", 4, []string{"sqrt"}},
		{"singleo", 15, []string{"singleordefault"}},
		{"s", 1, []string{"sin", "single", "singleordefault", "sinh", "sqrt", "sum"}},
		{"x", 0, nil},
		{"pi", 2, []string{"pi"}},
	}
	for _, tt := range tests {
		l, words := tr.PrefixAll(tt.prefix)
		if l != tt.common || !slices.Equal(words, tt.expected) {
			t.Errorf("PrefixAll(%q) got=%d %v, want=%d %v", tt.prefix, l, words, tt.common, tt.expected)
		}
	}
}
