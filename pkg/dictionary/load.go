package dictionary

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// IsWord reports whether s can go into the vocabulary: one or more letters,
// all lowercase a-z.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// ReadWords reads a word list from r, one word per line. Lines are trimmed
// and lowercased; blank lines, '#' comments, and anything that is not a
// purely alphabetic word are dropped rather than reported as errors.
func ReadWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if strings.HasPrefix(word, "#") {
			continue
		}
		if !IsWord(word) {
			continue
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

// Load reads a word list from r and builds the Trie for it.
func Load(r io.Reader) (*Trie, error) {
	words, err := ReadWords(r)
	if err != nil {
		return nil, err
	}

	trie := NewTrie()
	for _, word := range words {
		trie.Insert(word)
	}
	return trie, nil
}

// LoadFile builds the Trie for the word list stored at path.
func LoadFile(path string) (*Trie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}
