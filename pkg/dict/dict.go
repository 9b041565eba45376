// Package dict stores the admissible words for a fill and answers
// wildcarded lookups against them.
package dict

import (
	"fmt"
	"sort"

	"github.com/Quuxplusone/xword/pkg/match"
)

// Word length bounds. Anything outside is not a crossword word.
const (
	MinWordLen = 3
	MaxWordLen = 15
)

// Dictionary is the word store the filler consumes: a stream of words of
// a given length, plus wildcarded lookup.
type Dictionary interface {
	// Each invokes visit with every stored word of length n, in a fixed
	// order.
	Each(n int, visit func(word string))
	// Match returns the stored words matching a pattern. '?' matches any
	// letter, '0' a vowel, '1' a consonant, '*' any run of letters; a
	// bare "*" returns every word.
	Match(pattern string) []string
}

// Set is an in-memory Dictionary with words bucketed by length. Buckets
// keep insertion order, which fixes the filler's enumeration order.
// Duplicate adds are collapsed, so dictionary streams that repeat a word
// (inflection markers on a shared root do this) are harmless.
type Set struct {
	byLength map[int][]string
	seen     map[string]bool
}

// NewSet returns an empty word set.
func NewSet() *Set {
	return &Set{
		byLength: make(map[int][]string),
		seen:     make(map[string]bool),
	}
}

// Add stores one word. Words outside the length bounds or containing
// anything but lowercase letters are rejected.
func (s *Set) Add(word string) error {
	if len(word) < MinWordLen || len(word) > MaxWordLen {
		return fmt.Errorf("word %q has length %d, want %d-%d", word, len(word), MinWordLen, MaxWordLen)
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'a' || word[i] > 'z' {
			return fmt.Errorf("word %q contains non-letter %q", word, word[i])
		}
	}
	if s.seen[word] {
		return nil
	}
	s.seen[word] = true
	s.byLength[len(word)] = append(s.byLength[len(word)], word)
	return nil
}

// Contains reports whether the set holds the word.
func (s *Set) Contains(word string) bool {
	return s.seen[word]
}

// Len returns the number of distinct stored words.
func (s *Set) Len() int {
	return len(s.seen)
}

// Lengths returns the word lengths present, ascending.
func (s *Set) Lengths() []int {
	lengths := make([]int, 0, len(s.byLength))
	for n := range s.byLength {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)
	return lengths
}

// Each invokes visit with every word of length n in insertion order.
func (s *Set) Each(n int, visit func(word string)) {
	for _, word := range s.byLength[n] {
		visit(word)
	}
}

// Match returns the stored words matching the pattern, shortest first,
// insertion order within a length.
func (s *Set) Match(pattern string) []string {
	var out []string
	for _, n := range s.Lengths() {
		for _, word := range s.byLength[n] {
			if PatternMatches(pattern, word) {
				out = append(out, word)
			}
		}
	}
	return out
}

// PatternMatches checks one word against a lookup pattern. Pattern
// characters: a letter matches itself, '?' any letter, '0' a vowel, '1'
// a consonant, '*' any (possibly empty) run of letters.
func PatternMatches(pattern, word string) bool {
	// Compare position by position; a '*' tries every split of the rest
	// of the word.
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			for i := 0; i <= len(word); i++ {
				if PatternMatches(pattern[1:], word[i:]) {
					return true
				}
			}
			return false
		case '?':
			if len(word) == 0 {
				return false
			}
		case '0':
			if len(word) == 0 || !match.IsVowel(word[0]) {
				return false
			}
		case '1':
			if len(word) == 0 || !match.IsConsonant(word[0]) {
				return false
			}
		default:
			if len(word) == 0 || pattern[0] != word[0] {
				return false
			}
		}
		pattern, word = pattern[1:], word[1:]
	}
	return len(word) == 0
}
