package fill

import (
	"fmt"

	"github.com/Quuxplusone/xword/pkg/dict"
	"github.com/Quuxplusone/xword/pkg/grid"
	"github.com/Quuxplusone/xword/pkg/match"
	"github.com/Quuxplusone/xword/pkg/xcover"
)

// Exact-cover column layout. Each slice owns 54 columns: 26 letter
// column-pairs at 2m and 2m+1 for letters a..z, plus the orientation
// pair at 52 and 53. An Across row asserting letter i in a cell puts a 1
// in the left half of pair i and the right half of every other pair; a
// Down row mirrors that. The pairs therefore sum to exactly (1,1) only
// when the Across and Down rows through the cell agree on the letter,
// and the orientation pair forces exactly one row of each orientation
// through every slice.
const (
	sliceCols = 54
	acrossCol = 52
	downCol   = 53
)

type rowKind int

const (
	rowWord rowKind = iota
	rowFree
	rowBlack
	rowForced
)

// rowInfo records what a matrix row means so solutions can be decoded
// without walking column indices.
type rowInfo struct {
	kind rowKind
	run  grid.Run
	word string
}

// encoder builds the exact-cover matrix whose exact covers are exactly
// the valid fillings of the grid.
type encoder struct {
	g    *grid.Grid
	opts Options

	slice   []int // cell index -> slice index, -1 for cells with no columns
	nslices int

	m    *xcover.Matrix
	info []rowInfo
}

// newEncoder builds the slice table and the full matrix. A grid with no
// slices (in compressed mode, a grid with no open cells) yields a nil
// matrix; the caller handles that case directly.
func newEncoder(g *grid.Grid, d dict.Dictionary, opts Options) (*encoder, error) {
	e := &encoder{g: g, opts: opts}
	e.buildSliceTable()
	if e.nslices == 0 {
		return e, nil
	}

	m, err := xcover.New(e.nslices * sliceCols)
	if err != nil {
		return nil, err
	}
	e.m = m

	if err := e.addWordRows(d); err != nil {
		return nil, err
	}
	if err := e.addFreeRows(); err != nil {
		return nil, err
	}
	if e.opts.Naive {
		if err := e.addBlackRows(); err != nil {
			return nil, err
		}
		if err := e.addForcedRows(); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// buildSliceTable assigns each cell its slice index: every cell in naive
// mode, only the open cells otherwise.
func (e *encoder) buildSliceTable() {
	g := e.g
	e.slice = make([]int, g.Width*g.Height)
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			idx := g.Index(r, c)
			if e.opts.Naive || !g.IsFixed(r, c) {
				e.slice[idx] = e.nslices
				e.nslices++
			} else {
				e.slice[idx] = -1
			}
		}
	}
}

// cellColumns appends the 27 column indices a row contributes for
// asserting letter ch in the cell at (row, col), or nothing when the
// cell has no slice.
func (e *encoder) cellColumns(cols []int, row, col int, ch byte, dir grid.Direction) []int {
	s := e.slice[e.g.Index(row, col)]
	if s < 0 {
		return cols
	}
	base := s * sliceCols
	i := int(ch - 'a')
	for m := 0; m < 26; m++ {
		half := 0
		matching := m == i
		if (dir == grid.ACROSS) != matching {
			half = 1
		}
		cols = append(cols, base+2*m+half)
	}
	if dir == grid.ACROSS {
		cols = append(cols, base+acrossCol)
	} else {
		cols = append(cols, base+downCol)
	}
	return cols
}

// addRow inserts one matrix row and records its meaning. Rows that
// touch no slice are dropped.
func (e *encoder) addRow(cols []int, info rowInfo) error {
	if len(cols) == 0 {
		return nil
	}
	id, err := e.m.AddRow(cols)
	if err != nil {
		return fmt.Errorf("failed to add matrix row: %w", err)
	}
	if id != len(e.info) {
		return fmt.Errorf("matrix row id %d out of step with row table", id)
	}
	e.info = append(e.info, info)
	return nil
}

// placementColumns builds the full column set for playing word along a
// run.
func (e *encoder) placementColumns(run grid.Run, word string) []int {
	cols := make([]int, 0, run.Length*(sliceCols/2))
	for k := 0; k < run.Length; k++ {
		r, c := run.CellAt(k)
		cols = e.cellColumns(cols, r, c, word[k], run.Direction)
	}
	return cols
}

// addWordRows streams the dictionary past every run and emits a row per
// admissible placement. Words that exactly match a run are already
// placed and emit nothing; with duplicate rejection enabled they are
// purged from every other run as well.
func (e *encoder) addWordRows(d dict.Dictionary) error {
	placed := make(map[string]bool)
	if !e.opts.AllowDuplicates {
		for _, word := range e.g.CompleteRuns() {
			placed[word] = true
		}
	}

	for _, run := range e.g.Runs(grid.MinRunLen) {
		var addErr error
		d.Each(run.Length, func(word string) {
			if addErr != nil || placed[word] {
				return
			}
			if match.Word(e.g, run.Row, run.Col, run.Direction, word) != match.Loose {
				return
			}
			addErr = e.addRow(e.placementColumns(run, word), rowInfo{kind: rowWord, run: run, word: word})
		})
		if addErr != nil {
			return addErr
		}
	}
	return nil
}

// addFreeRows covers the cells of white sequences too short to be runs.
// Such sequences spell no dictionary word; instead every letter
// assignment consistent with the cell constraints gets its own row, in
// the sequence's orientation. A free row is only justified when each
// open cell of the sequence also lies on a real run crosswise —
// otherwise no word ever determines the cell and the slice stays
// uncoverable.
func (e *encoder) addFreeRows() error {
	for _, seq := range e.g.Runs(1) {
		if seq.Length >= grid.MinRunLen {
			continue
		}
		eligible := true
		for k := 0; k < seq.Length; k++ {
			r, c := seq.CellAt(k)
			if e.g.IsFixed(r, c) {
				continue
			}
			if e.g.SequenceThrough(r, c, perpendicular(seq.Direction)).Length < grid.MinRunLen {
				eligible = false
				break
			}
		}
		if !eligible {
			continue
		}
		if err := e.addFreeAssignments(seq, make([]byte, 0, seq.Length)); err != nil {
			return err
		}
	}
	return nil
}

// addFreeAssignments enumerates letter assignments for a short sequence
// in lexicographic order, one row each.
func (e *encoder) addFreeAssignments(seq grid.Run, letters []byte) error {
	if len(letters) == seq.Length {
		run := seq
		word := string(letters)
		return e.addRow(e.placementColumns(run, word), rowInfo{kind: rowFree, run: run, word: word})
	}
	r, c := seq.CellAt(len(letters))
	cell := e.g.At(r, c)
	for ch := byte('a'); ch <= 'z'; ch++ {
		if match.Cells(cell, ch) == match.NoFit {
			continue
		}
		if err := e.addFreeAssignments(seq, append(letters, ch)); err != nil {
			return err
		}
	}
	return nil
}

// addBlackRows emits, for every black cell, the single always-selected
// row holding a 1 in all 54 columns of its slice. Naive mode only.
func (e *encoder) addBlackRows() error {
	for r := 0; r < e.g.Height; r++ {
		for c := 0; c < e.g.Width; c++ {
			if e.g.At(r, c) != grid.Black {
				continue
			}
			base := e.slice[e.g.Index(r, c)] * sliceCols
			cols := make([]int, sliceCols)
			for i := range cols {
				cols[i] = base + i
			}
			info := rowInfo{kind: rowBlack, run: grid.Run{Row: r, Col: c, Direction: grid.ACROSS, Length: 1}}
			if err := e.addRow(cols, info); err != nil {
				return err
			}
		}
	}
	return nil
}

// addForcedRows plays each fully fixed run as if its text were a
// dictionary word, so pre-placed words cover their cells even when the
// dictionary does not contain them or duplicate purging removed them.
// Naive mode only; the compressed matrix has no columns for these cells.
func (e *encoder) addForcedRows() error {
	for _, run := range e.g.Runs(grid.MinRunLen) {
		text := e.g.RunText(run)
		if match.Word(e.g, run.Row, run.Col, run.Direction, text) != match.Exact {
			continue
		}
		if err := e.addRow(e.placementColumns(run, text), rowInfo{kind: rowForced, run: run, word: text}); err != nil {
			return err
		}
	}
	return nil
}

func perpendicular(dir grid.Direction) grid.Direction {
	if dir == grid.ACROSS {
		return grid.DOWN
	}
	return grid.ACROSS
}
