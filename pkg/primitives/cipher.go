package primitives

import (
	"fmt"
	"strings"
)

// Cipher is a partial substitution key mapping ciphertext letters to the
// plaintext letters they decrypt to. The mapping is injective: two distinct
// ciphertext letters never share a plaintext letter.
//
// Cipher is a small value type. Extending a key with With returns a new
// value and leaves the receiver untouched, so sibling branches of a search
// never observe each other's tentative mappings. Two keys with the same
// mappings compare equal with == and hash identically as map keys. The zero
// value is the empty key.
type Cipher struct {
	to   [numChars]byte
	used CharSet
}

// Lookup returns the plaintext letter that from decrypts to, if the key
// decides it.
func (c Cipher) Lookup(from byte) (byte, bool) {
	if from < minChar || from > maxChar {
		return 0, false
	}
	to := c.to[from-minChar]
	return to, to != 0
}

// With returns a copy of the key extended by the mapping from -> to. The
// second result is false when the mapping cannot be added: either letter is
// outside 'a'..'z', from is already mapped to a different letter, or to is
// already taken by another ciphertext letter. Re-adding an existing mapping
// is accepted and returns an unchanged key.
func (c Cipher) With(from, to byte) (Cipher, bool) {
	if from < minChar || from > maxChar || to < minChar || to > maxChar {
		return c, false
	}
	if existing := c.to[from-minChar]; existing != 0 {
		return c, existing == to
	}
	if c.used.Contains(rune(to)) {
		return c, false
	}
	c.to[from-minChar] = to
	c.used.Add(rune(to))
	return c, true
}

// Len returns the number of decided letters.
func (c Cipher) Len() int {
	return c.used.Count()
}

// Complete reports whether the key decides as many letters as symbols
// contains.
func (c Cipher) Complete(symbols CharSet) bool {
	return c.Len() == symbols.Count()
}

// Decrypt maps every decided letter of text through the key. Undecided
// letters and non-letter characters, including spaces, pass through
// unchanged. Partial and complete keys decrypt identically.
func (c Cipher) Decrypt(text string) string {
	out := []byte(text)
	for i, ch := range out {
		if ch < minChar || ch > maxChar {
			continue
		}
		if to := c.to[ch-minChar]; to != 0 {
			out[i] = to
		}
	}
	return string(out)
}

// String renders the decided mappings in ciphertext-letter order, e.g.
// "e=t q=a".
func (c Cipher) String() string {
	var b strings.Builder
	for i, to := range c.to {
		if to == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%c=%c", minChar+rune(i), rune(to))
	}
	return b.String()
}
