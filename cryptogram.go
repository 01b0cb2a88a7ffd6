package cryptogram

import (
	"slices"
	"strings"

	"github.com/kjerosky/cryptogram/pkg/primitives"
)

// cryptogram is one parsed solve request: the original text, its distinct
// words in the order the search will decide them, and the distinct letters
// those words contain.
type cryptogram struct {
	text    string
	words   []string
	symbols primitives.CharSet
}

func parseCryptogram(text string) cryptogram {
	seen := make(map[string]bool)
	var words []string
	for _, word := range strings.Fields(text) {
		if seen[word] {
			continue
		}
		seen[word] = true
		words = append(words, word)
	}

	// Shorter words have fewer undecided positions and therefore narrower
	// trie fan-out, so decide them first. The sort is stable: equal-length
	// words keep their order of first appearance.
	slices.SortStableFunc(words, func(a, b string) int {
		return len(a) - len(b)
	})

	var symbols primitives.CharSet
	for _, word := range words {
		symbols.AddString(word)
	}

	return cryptogram{
		text:    text,
		words:   words,
		symbols: symbols,
	}
}
