package primitives

import "strings"

// Wildcard marks an unresolved position in a Pattern.
const Wildcard = '*'

// Pattern is a dictionary query template derived from a ciphertext word:
// positions the key already decides hold the decrypted letter, every other
// position holds Wildcard.
type Pattern string

// HasWildcard reports whether any position is still unresolved.
func (p Pattern) HasWildcard() bool {
	return strings.IndexByte(string(p), Wildcard) >= 0
}

// DerivePattern builds the Pattern for word under key. Pure function,
// O(len(word)).
func DerivePattern(word string, key Cipher) Pattern {
	out := []byte(word)
	for i := range out {
		if to, ok := key.Lookup(out[i]); ok {
			out[i] = to
		} else {
			out[i] = Wildcard
		}
	}
	return Pattern(out)
}
