package grid

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	edge      = "│"
	blackCell = "█"
)

// Fprint writes a boxed rendering of the grid. Black squares print as
// solid blocks, fixed letters in white, vowel and consonant cells in
// yellow, other open cells dimmed.
func (g *Grid) Fprint(w io.Writer) {
	bar := "┌" + strings.Repeat("───", g.Width) + "┐"
	bot := "└" + strings.Repeat("───", g.Width) + "┘"

	fmt.Fprintln(w, color.HiWhiteString(bar))
	for r := 0; r < g.Height; r++ {
		fmt.Fprint(w, color.HiWhiteString(edge))
		for c := 0; c < g.Width; c++ {
			fmt.Fprint(w, cellString(g.At(r, c)))
		}
		fmt.Fprintln(w, color.HiWhiteString(edge))
	}
	fmt.Fprintln(w, color.HiWhiteString(bot))
}

func cellString(ch byte) string {
	switch {
	case ch == Black:
		return color.HiBlackString(strings.Repeat(blackCell, 3))
	case ch >= 'a' && ch <= 'z':
		return color.HiWhiteString(" %c ", ch-'a'+'A')
	case ch == Vowel || ch == Consonant:
		return color.YellowString(" %c ", ch)
	default:
		return color.New(color.Faint).Sprint(" · ")
	}
}
