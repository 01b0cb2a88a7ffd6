package cryptogram

import (
	"context"
	"iter"
	"strings"

	"github.com/kjerosky/cryptogram/pkg/primitives"
)

// Dictionary is the vocabulary a Solver validates decryptions against. It is
// read, never written: implementations must be safe for concurrent readers.
// *dictionary.Trie satisfies it.
type Dictionary interface {
	Contains(word string) bool
	FindByPattern(pattern primitives.Pattern) []string
}

// Solution is one complete decryption of a cryptogram.
type Solution struct {
	// Plaintext is the original text decrypted with Key.
	Plaintext string
	// Key decides every distinct letter of the ciphertext. It is injective
	// and, unless the solver allows identity mappings, fixed-point free.
	Key primitives.Cipher
}

// Solver enumerates the substitution keys under which every word of a
// cryptogram decrypts to a dictionary word. One Solver may serve any number
// of concurrent Solve and Solutions calls.
type Solver struct {
	dict          Dictionary
	allowIdentity bool
}

type SolverParams struct {
	// AllowIdentity accepts keys that decrypt a letter to itself. Off by
	// default: classic cryptogram keys have no fixed points, and the
	// default enumeration matches that convention.
	AllowIdentity bool
}

func NewSolver(dict Dictionary, params SolverParams) *Solver {
	return &Solver{
		dict:          dict,
		allowIdentity: params.AllowIdentity,
	}
}

// Solutions streams every solution of the ciphertext in depth-first
// discovery order: words are decided shortest first, and candidate words
// fan out in dictionary (a to z) order, so the order is deterministic for a
// given dictionary. Each distinct key is yielded exactly once, as soon as
// it is found.
//
// The ciphertext is expected to be whitespace-delimited lowercase words.
// Other characters are not part of the contract: they pass through
// decryption unchanged, never join the letter set, and in practice a token
// carrying one can never validate, so it produces no solutions. Empty and
// all-whitespace input yield nothing.
//
// The search runs to exhaustion unless ctx is done; cancellation is checked
// between branch expansions, so a caller that wants a bounded search passes
// a context with a deadline. A caller that just wants the first few
// solutions can simply stop iterating.
func (s *Solver) Solutions(ctx context.Context, ciphertext string) iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		cg := parseCryptogram(ciphertext)
		if len(cg.words) == 0 {
			return
		}

		seenKeys := make(map[primitives.Cipher]bool)
		for sol := range s.expand(ctx, cg, cg.words, primitives.Cipher{}) {
			if seenKeys[sol.Key] {
				continue
			}
			seenKeys[sol.Key] = true
			if !yield(sol) {
				return
			}
		}
	}
}

// Solve runs Solutions to exhaustion and returns the decrypted texts in
// discovery order. No solutions is an empty result, not an error.
func (s *Solver) Solve(ctx context.Context, ciphertext string) []string {
	var texts []string
	for sol := range s.Solutions(ctx, ciphertext) {
		texts = append(texts, sol.Plaintext)
	}
	return texts
}

// expand grows key by one word decision and recurses, yielding the complete
// keys found beneath this branch.
func (s *Solver) expand(ctx context.Context, cg cryptogram, words []string, key primitives.Cipher) iter.Seq[Solution] {
	return func(yield func(Solution) bool) {
		if ctx.Err() != nil {
			return
		}

		if key.Complete(cg.symbols) {
			// A complete key can still be wrong: every word was matched
			// against the dictionary when it was decided, but only under
			// the mappings known at the time. Re-validate the whole text.
			plaintext := key.Decrypt(cg.text)
			for _, word := range strings.Fields(plaintext) {
				if !s.dict.Contains(word) {
					return
				}
			}
			yield(Solution{Plaintext: plaintext, Key: key})
			return
		}

		// Scan for the word that decides the next fan-out: the first one
		// with an undecided position. Words the key already fully decides
		// must be dictionary words; one that is not kills the whole branch,
		// not just the word.
		remaining := words
		fanout := ""
		var pattern primitives.Pattern
		for fanout == "" {
			if len(remaining) == 0 {
				// Every word is decided but some letter is not, so no
				// further decision can complete the key.
				return
			}
			word := remaining[0]
			remaining = remaining[1:]

			p := primitives.DerivePattern(word, key)
			if p.HasWildcard() {
				fanout, pattern = word, p
				break
			}
			if !s.dict.Contains(string(p)) {
				return
			}
		}

		for _, candidate := range s.dict.FindByPattern(pattern) {
			next, ok := s.extend(key, fanout, pattern, candidate)
			if !ok {
				continue
			}
			for sol := range s.expand(ctx, cg, remaining, next) {
				if !yield(sol) {
					return
				}
			}
		}
	}
}

// extend applies candidate to the undecided positions of word, growing key
// one mapping at a time so that later positions are checked against the
// mappings earlier positions just added, not only against the prior key.
func (s *Solver) extend(key primitives.Cipher, word string, pattern primitives.Pattern, candidate string) (primitives.Cipher, bool) {
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != primitives.Wildcard {
			continue
		}

		from, to := word[i], candidate[i]
		if from == to && !s.allowIdentity {
			return key, false
		}

		var ok bool
		if key, ok = key.With(from, to); !ok {
			return key, false
		}
	}
	return key, true
}
