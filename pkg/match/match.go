// Package match decides whether letters fit crossword cell constraints
// and whether a candidate word fits an entire run.
package match

import "github.com/Quuxplusone/xword/pkg/grid"

// Fit is the result of matching a word character against a cell.
type Fit int

const (
	// NoFit means the characters are incompatible.
	NoFit Fit = iota
	// Loose means the characters are compatible but at least one side is
	// a wildcard, so the pairing introduces a choice.
	Loose
	// Exact means both sides are the same letter; nothing is left to
	// choose.
	Exact
)

// IsVowel reports whether ch is one of {a,e,i,o,u,y}. Treating y as a
// vowel is a fixed convention of the grid format.
func IsVowel(ch byte) bool {
	switch ch {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// IsConsonant reports whether ch is a lowercase letter outside the vowel
// set.
func IsConsonant(ch byte) bool {
	return ch >= 'a' && ch <= 'z' && !IsVowel(ch)
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch + 'a' - 'A'
	}
	return ch
}

// Cells matches a grid cell character against a word character. The
// relation is symmetric: either argument may be the wildcard side.
func Cells(a, b byte) Fit {
	a, b = lower(a), lower(b)
	if a == grid.Black || b == grid.Black {
		return NoFit
	}
	if a == grid.Open || b == grid.Open {
		return Loose
	}
	if a == grid.Vowel {
		if IsVowel(b) {
			return Loose
		}
		return NoFit
	}
	if b == grid.Vowel {
		if IsVowel(a) {
			return Loose
		}
		return NoFit
	}
	if a == grid.Consonant {
		if IsConsonant(b) {
			return Loose
		}
		return NoFit
	}
	if b == grid.Consonant {
		if IsConsonant(a) {
			return Loose
		}
		return NoFit
	}
	if a == b && a >= 'a' && a <= 'z' {
		return Exact
	}
	return NoFit
}

// Word checks whether word fits the run starting at (row, col) in the
// given direction: the run must be bounded by black squares or the grid
// edge on both ends, span exactly len(word) cells, and every cell must
// match the corresponding letter. The result is Exact only when every
// per-cell match is exact, meaning the grid already spells the word.
func Word(g *grid.Grid, row, col int, dir grid.Direction, word string) Fit {
	dr, dc := 0, 1
	if dir == grid.DOWN {
		dr, dc = 1, 0
	}

	n := len(word)
	if !g.IsBlack(row-dr, col-dc) || !g.IsBlack(row+dr*n, col+dc*n) {
		return NoFit
	}

	result := Exact
	for k := 0; k < n; k++ {
		r, c := row+dr*k, col+dc*k
		if r >= g.Height || c >= g.Width {
			return NoFit
		}
		switch Cells(g.At(r, c), word[k]) {
		case NoFit:
			return NoFit
		case Loose:
			result = Loose
		}
	}
	return result
}
