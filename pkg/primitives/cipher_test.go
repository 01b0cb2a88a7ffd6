package primitives

import (
	"testing"
)

func TestCipher_With(t *testing.T) {
	var key Cipher

	key, ok := key.With('x', 'c')
	if !ok {
		t.Fatal("With('x', 'c') was rejected")
	}

	if got, ok := key.Lookup('x'); !ok || got != 'c' {
		t.Errorf("Lookup('x') = %q, %v, want 'c', true", got, ok)
	}
	if _, ok := key.Lookup('y'); ok {
		t.Error("Lookup('y') = true, want false for an undecided letter")
	}
	if got := key.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestCipher_WithRejections(t *testing.T) {
	var base Cipher
	base, _ = base.With('x', 'c')

	tests := []struct {
		name string
		from byte
		to   byte
	}{
		{"value already taken", 'y', 'c'},
		{"letter already decided differently", 'x', 'd'},
		{"from out of range", '3', 'c'},
		{"to out of range", 'y', '3'},
		{"from uppercase", 'X', 'd'},
		{"to uppercase", 'y', 'D'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := base.With(tt.from, tt.to); ok {
				t.Errorf("With(%q, %q) was accepted", tt.from, tt.to)
			}
		})
	}
}

func TestCipher_WithSameMappingAgain(t *testing.T) {
	var key Cipher
	key, _ = key.With('x', 'c')

	again, ok := key.With('x', 'c')
	if !ok {
		t.Fatal("re-adding an existing mapping was rejected")
	}
	if again != key {
		t.Error("re-adding an existing mapping changed the key")
	}
}

func TestCipher_BranchesAreIndependent(t *testing.T) {
	var base Cipher
	base, _ = base.With('x', 'c')

	left, ok := base.With('y', 'a')
	if !ok {
		t.Fatal("With('y', 'a') was rejected")
	}
	right, ok := base.With('y', 'o')
	if !ok {
		t.Fatal("With('y', 'o') was rejected")
	}

	if got, _ := left.Lookup('y'); got != 'a' {
		t.Errorf("left Lookup('y') = %q, want 'a'", got)
	}
	if got, _ := right.Lookup('y'); got != 'o' {
		t.Errorf("right Lookup('y') = %q, want 'o'", got)
	}
	if got := base.Len(); got != 1 {
		t.Errorf("base Len() = %d, want 1 after branching", got)
	}
}

func TestCipher_StructuralEquality(t *testing.T) {
	var a, b Cipher
	a, _ = a.With('x', 'c')
	a, _ = a.With('y', 'a')
	b, _ = b.With('y', 'a')
	b, _ = b.With('x', 'c')

	if a != b {
		t.Error("keys with the same mappings should compare equal")
	}

	seen := map[Cipher]bool{a: true}
	if !seen[b] {
		t.Error("equal keys should collide as map keys")
	}

	c, _ := b.With('z', 't')
	if a == c {
		t.Error("keys with different mappings should not compare equal")
	}
}

func TestCipher_Complete(t *testing.T) {
	var symbols CharSet
	symbols.AddString("xyz")

	var key Cipher
	key, _ = key.With('x', 'c')
	key, _ = key.With('y', 'a')
	if key.Complete(symbols) {
		t.Error("Complete() = true for a partial key")
	}

	key, _ = key.With('z', 't')
	if !key.Complete(symbols) {
		t.Error("Complete() = false for a complete key")
	}
}

func TestCipher_Decrypt(t *testing.T) {
	var key Cipher
	key, _ = key.With('x', 'c')
	key, _ = key.With('y', 'a')
	key, _ = key.With('z', 't')

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"decides every letter", "xyz", "cat"},
		{"undecided letters pass through", "xyq", "caq"},
		{"spaces pass through", "xyz zyx", "cat tac"},
		{"non-letters pass through", "xyz, XYZ!", "cat, XYZ!"},
		{"empty text", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := key.Decrypt(tt.in); got != tt.want {
				t.Errorf("Decrypt(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCipher_String(t *testing.T) {
	var key Cipher
	if got := key.String(); got != "" {
		t.Errorf("String() = %q, want empty for the empty key", got)
	}

	key, _ = key.With('z', 'a')
	key, _ = key.With('x', 'c')
	if got, want := key.String(), "x=c z=a"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
