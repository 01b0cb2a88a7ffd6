package dictionary

import (
	"github.com/kjerosky/cryptogram/pkg/primitives"
)

// Trie stores a vocabulary of lowercase words and answers exact-membership
// and wildcard-pattern queries over it.
//
// Build the vocabulary with Insert before handing the Trie to readers: the
// load phase is single-threaded, and once it ends the Trie is read-only and
// safe to share across concurrent solves.
type Trie struct {
	root trieNode
	size int
}

// Each node is owned by exactly one parent, so the structure is a pure tree.
type trieNode struct {
	children [26]*trieNode
	terminal bool
}

func NewTrie() *Trie {
	return &Trie{}
}

// Insert adds word to the vocabulary. The word must already be filtered to
// lowercase letters a-z; that is the loader's job, not the Trie's.
// Inserting the same word twice is a no-op.
func (t *Trie) Insert(word string) {
	node := &t.root
	for i := 0; i < len(word); i++ {
		c := word[i] - 'a'
		if node.children[c] == nil {
			node.children[c] = &trieNode{}
		}
		node = node.children[c]
	}
	if !node.terminal {
		node.terminal = true
		t.size++
	}
}

// Contains reports whether word is in the vocabulary. Words containing
// characters outside a-z are never present, so they return false rather
// than an error.
func (t *Trie) Contains(word string) bool {
	node := &t.root
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return false
		}
		node = node.children[word[i]-'a']
		if node == nil {
			return false
		}
	}
	return node.terminal
}

// FindByPattern returns every stored word that matches pattern: a letter
// must match exactly, a wildcard matches any letter. Matches come back in
// lexicographic order because wildcard fan-out visits children a to z.
// A pattern that matches nothing yields an empty result, not an error.
func (t *Trie) FindByPattern(pattern primitives.Pattern) []string {
	var matches []string
	prefix := make([]byte, 0, len(pattern))
	t.root.collect(pattern, prefix, &matches)
	return matches
}

func (n *trieNode) collect(pattern primitives.Pattern, prefix []byte, matches *[]string) {
	if len(pattern) == 0 {
		if n.terminal {
			*matches = append(*matches, string(prefix))
		}
		return
	}

	c := pattern[0]
	if c == primitives.Wildcard {
		for i, child := range n.children {
			if child == nil {
				continue
			}
			child.collect(pattern[1:], append(prefix, 'a'+byte(i)), matches)
		}
		return
	}

	if c < 'a' || c > 'z' {
		return
	}
	child := n.children[c-'a']
	if child == nil {
		return
	}
	child.collect(pattern[1:], append(prefix, c), matches)
}

// Len returns the number of distinct words in the vocabulary.
func (t *Trie) Len() int {
	return t.size
}
