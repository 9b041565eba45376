package grid

import "strings"

// isComplete reports whether a run text is a finished word: every cell a
// letter, no open-cell markers left.
func isComplete(text string) bool {
	return !strings.ContainsAny(text, string([]byte{Open, Vowel, Consonant}))
}

// CompleteRuns returns the text of every run (length >= MinRunLen) whose
// cells are all fixed letters, in scan order.
func (g *Grid) CompleteRuns() []string {
	var words []string
	for _, run := range g.Runs(MinRunLen) {
		text := g.RunText(run)
		if isComplete(text) {
			words = append(words, text)
		}
	}
	return words
}

// HasDuplicateRuns reports whether two complete runs of the grid spell
// the same word. Incomplete runs never count as duplicates.
func (g *Grid) HasDuplicateRuns() bool {
	seen := make(map[string]bool)
	for _, word := range g.CompleteRuns() {
		if seen[word] {
			return true
		}
		seen[word] = true
	}
	return false
}
