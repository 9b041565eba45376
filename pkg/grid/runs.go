package grid

// Run represents a maximal horizontal or vertical sequence of non-black
// cells. Sequences shorter than MinRunLen are still reported when the
// caller asks for them; only sequences of length >= MinRunLen are
// required to spell dictionary words.
type Run struct {
	Row       int
	Col       int
	Direction Direction
	Length    int
}

// CellAt returns the grid position of the k-th cell of the run.
func (run Run) CellAt(k int) (row, col int) {
	if run.Direction == ACROSS {
		return run.Row, run.Col + k
	}
	return run.Row + k, run.Col
}

// Runs scans the grid for maximal white sequences of at least minLen
// cells. Across sequences come first (top-to-bottom, left-to-right),
// then Down sequences, matching the order fills are enumerated in.
func (g *Grid) Runs(minLen int) []Run {
	var runs []Run

	// Across: a sequence starts where the cell to the left is black or
	// off-grid.
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.At(row, col) == Black || !g.IsBlack(row, col-1) {
				continue
			}
			length := 0
			for col+length < g.Width && g.At(row, col+length) != Black {
				length++
			}
			if length >= minLen {
				runs = append(runs, Run{Row: row, Col: col, Direction: ACROSS, Length: length})
			}
		}
	}

	// Down: a sequence starts where the cell above is black or off-grid.
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			if g.At(row, col) == Black || !g.IsBlack(row-1, col) {
				continue
			}
			length := 0
			for row+length < g.Height && g.At(row+length, col) != Black {
				length++
			}
			if length >= minLen {
				runs = append(runs, Run{Row: row, Col: col, Direction: DOWN, Length: length})
			}
		}
	}

	return runs
}

// RunText returns the cell characters of a run as a string. The result
// is a word only if the run is complete; otherwise it still contains
// open-cell markers.
func (g *Grid) RunText(run Run) string {
	text := make([]byte, run.Length)
	for k := 0; k < run.Length; k++ {
		r, c := run.CellAt(k)
		text[k] = g.At(r, c)
	}
	return string(text)
}

// SequenceThrough returns the maximal white sequence through (row, col)
// in the given direction. The cell itself must not be black.
func (g *Grid) SequenceThrough(row, col int, dir Direction) Run {
	if dir == ACROSS {
		start := col
		for !g.IsBlack(row, start-1) {
			start--
		}
		end := col
		for !g.IsBlack(row, end+1) {
			end++
		}
		return Run{Row: row, Col: start, Direction: ACROSS, Length: end - start + 1}
	}
	start := row
	for !g.IsBlack(start-1, col) {
		start--
	}
	end := row
	for !g.IsBlack(end+1, col) {
		end++
	}
	return Run{Row: start, Col: col, Direction: DOWN, Length: end - start + 1}
}
