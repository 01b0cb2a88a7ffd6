package primitives

import (
	"fmt"
	"math/bits"
	"strings"
)

// CharSet efficiently represents a set of letters using bit manipulation.
// It supports the 26 characters from 'a' to 'z', which fits in a uint32.
//
// CharSet is a small value type: copies are independent and two sets with
// the same members compare equal with ==. The zero value is the empty set.
type CharSet struct {
	bits  uint32
	count int
}

const (
	minChar  = 'a'
	maxChar  = 'z'
	numChars = maxChar - minChar + 1 // 26 characters
)

// Add adds a character to the set.
func (c *CharSet) Add(r rune) error {
	if r < minChar || r > maxChar {
		return fmt.Errorf("character %c is out of range", r)
	}

	bitPos := uint(r - minChar)
	if c.bits&(1<<bitPos) == 0 {
		c.bits |= 1 << bitPos
		c.count = bits.OnesCount32(c.bits)
	}
	return nil
}

// AddString adds every in-range character of s to the set. Characters
// outside 'a'..'z' are skipped.
func (c *CharSet) AddString(s string) {
	for _, r := range s {
		if r < minChar || r > maxChar {
			continue
		}
		c.bits |= 1 << uint(r-minChar)
	}
	c.count = bits.OnesCount32(c.bits)
}

// Contains checks if a character is in the set.
func (c CharSet) Contains(r rune) bool {
	if r < minChar || r > maxChar {
		return false
	}
	bitPos := uint(r - minChar)
	return c.bits&(1<<bitPos) != 0
}

// IsFull checks if the set is full.
func (c CharSet) IsFull() bool {
	return c.count == numChars
}

// Capacity returns the number of characters that can be added to the set.
func (c CharSet) Capacity() int {
	return numChars
}

// Count returns the number of characters in the set.
func (c CharSet) Count() int {
	return c.count
}

// String returns a string representation of the set.
func (c CharSet) String() string {
	if c.count == 0 {
		return fmt.Sprintf("{} (0/%d)", numChars)
	}

	var chars []string
	for i := range uint(numChars) {
		if c.bits&(1<<i) != 0 {
			chars = append(chars, fmt.Sprintf("'%c'", rune(minChar+i)))
		}
	}
	return fmt.Sprintf("{%s} (%d/%d)", strings.Join(chars, ", "), c.count, numChars)
}
