package primitives

import (
	"testing"
)

func TestPattern_HasWildcard(t *testing.T) {
	tests := []struct {
		pattern Pattern
		want    bool
	}{
		{"c*t", true},
		{"***", true},
		{"cat", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.pattern), func(t *testing.T) {
			if got := tt.pattern.HasWildcard(); got != tt.want {
				t.Errorf("HasWildcard(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestDerivePattern(t *testing.T) {
	var key Cipher
	key, _ = key.With('x', 'c')
	key, _ = key.With('z', 't')

	tests := []struct {
		name string
		word string
		want Pattern
	}{
		{"partially decided", "xyz", "c*t"},
		{"fully decided", "xz", "ct"},
		{"nothing decided", "qqq", "***"},
		{"repeated letters", "xxy", "cc*"},
		{"empty word", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DerivePattern(tt.word, key); got != tt.want {
				t.Errorf("DerivePattern(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestDerivePattern_EmptyKey(t *testing.T) {
	var key Cipher
	if got, want := DerivePattern("word", key), Pattern("****"); got != want {
		t.Errorf("DerivePattern(\"word\") = %q, want %q", got, want)
	}
}
