// Trie implements a byte trie data structure, used for completion of
// function and constant names.
// It is fast as it uses arrays instead of maps.
package trie

type Trie struct {
	// Children of this node
	children [256]*Trie
	// This node itself is a valid end of a word in addition to possibly having children.
	valid bool
	leaf  bool // Not really needed outside of debugging but with struct alignment it doesn't cost anything extra.
}

// Save some memory by having a shared end marker for leaves.
// Only one having "leaf" set to true.
var endMarker = &Trie{valid: true, leaf: true}

func NewTrie() *Trie {
	return &Trie{}
}

func (t *Trie) Insert(word string) {
	l := len(word)
	for i := range l {
		char := word[i]
		last := i == l-1
		switch t.children[char] {
		case endMarker:
			if last {
				return // already there.
			}
			// Was a valid leaf before, now gets children.
			t.children[char] = &Trie{valid: true}
		case nil:
			if last {
				t.children[char] = endMarker // Shared for all leaves, saves memory.
				return
			}
			t.children[char] = &Trie{}
		default:
			if last {
				t.children[char].valid = true
			}
		}
		t = t.children[char]
	}
}

func (t *Trie) Contains(word string) bool {
	return t.Prefix(word).IsValid()
}

func (t *Trie) Prefix(word string) *Trie {
	for i := range len(word) {
		t = t.children[word[i]]
		if t == nil {
			return nil
		}
	}
	return t
}

func (t *Trie) IsLeaf() bool {
	return t != nil && t.leaf
}

func (t *Trie) IsValid() bool {
	return t != nil && t.valid
}

// PrefixAll returns all the words starting with prefix, in byte order, and the length
// of their longest common prefix (at least len(prefix) when there is a match).
func (t *Trie) PrefixAll(prefix string) (int, []string) {
	node := t.Prefix(prefix)
	if node == nil {
		return 0, nil
	}
	var words []string
	buf := []byte(prefix)
	node.walk(buf, &words)
	if len(words) == 0 {
		return 0, nil
	}
	common := len(prefix)
	// Words are sorted so the common prefix of all is the one of the first and last.
	first, last := words[0], words[len(words)-1]
	for common < len(first) && common < len(last) && first[common] == last[common] {
		common++
	}
	return common, words
}

func (t *Trie) walk(buf []byte, words *[]string) {
	if t.valid {
		*words = append(*words, string(buf))
	}
	for c, child := range t.children {
		if child != nil {
			child.walk(append(buf, byte(c)), words) //nolint:gosec // c is an index in [256].
		}
	}
}
