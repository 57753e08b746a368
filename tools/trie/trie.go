package trie

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Node is a single state of the trie. A node is accepting when the path
// from the root to it spells a complete word.
type Node struct {
	children  map[rune]*Node
	accepting bool
}

// Trie is a prefix tree over runes. It is built once and only read
// afterwards, so a single instance may be shared freely.
type Trie struct {
	root Node
}

// New creates a Trie holding the given words.
func New(words ...string) *Trie {
	t := &Trie{}
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// Insert adds word to the trie, marking its terminal node as accepting.
func (t *Trie) Insert(word string) {
	n := &t.root
	for _, r := range word {
		if n.children == nil {
			n.children = make(map[rune]*Node)
		}
		next, ok := n.children[r]
		if !ok {
			next = &Node{}
			n.children[r] = next
		}
		n = next
	}
	n.accepting = true
}

// Root returns the start state.
func (t *Trie) Root() *Node {
	return &t.root
}

// Exists reports whether word was inserted as a full word.
func (t *Trie) Exists(word string) bool {
	n := &t.root
	for _, r := range word {
		if n = n.Step(r); n == nil {
			return false
		}
	}
	return n.accepting
}

// Step returns the child reached by r, or nil if there is none.
func (n *Node) Step(r rune) *Node {
	if n == nil {
		return nil
	}
	return n.children[r]
}

// Accepting reports whether the node terminates a word.
func (n *Node) Accepting() bool {
	return n != nil && n.accepting
}

// Leaf reports whether no word continues past the node.
func (n *Node) Leaf() bool {
	return n == nil || len(n.children) == 0
}

// Longest returns the length of the longest word that is a prefix of
// runes, or 0 if none is. Descent stops at the first missing edge and the
// result falls back to the last accepting node passed on the way down.
func (t *Trie) Longest(runes []rune) int {
	n := &t.root
	last := 0
	for i, r := range runes {
		if n = n.Step(r); n == nil {
			break
		}
		if n.accepting {
			last = i + 1
		}
	}
	return last
}

// Words returns every word in the trie in lexical order.
func (t *Trie) Words() []string {
	var words []string
	var walk func(n *Node, prefix []rune)
	walk = func(n *Node, prefix []rune) {
		if n.accepting {
			words = append(words, string(prefix))
		}
		keys := maps.Keys(n.children)
		slices.Sort(keys)
		for _, r := range keys {
			walk(n.children[r], append(prefix, r))
		}
	}
	walk(&t.root, nil)
	slices.Sort(words)
	return words
}
