// Package fill fills crossword grids by reduction to exact cover.
//
// The encoder turns the grid and dictionary into a dancing-links matrix
// (package xcover) whose exact covers correspond one-to-one with the
// valid fillings; the decoder turns each cover back into a grid and
// applies the duplicate filter and emission policy.
package fill

import (
	"context"
	"errors"
	"fmt"

	"github.com/Quuxplusone/xword/pkg/dict"
	"github.com/Quuxplusone/xword/pkg/grid"
)

// ErrGridSize is returned for grids outside the supported dimensions.
var ErrGridSize = errors.New("grid dimensions out of range")

// Filler enumerates the fillings of grids against one dictionary.
type Filler struct {
	dict dict.Dictionary
	opts Options
}

// New returns a Filler with the given dictionary and flags.
func New(d dict.Dictionary, opts Options) *Filler {
	return &Filler{dict: d, opts: opts}
}

// Fill enumerates complete fillings of g and passes each to emit as a
// fresh grid, in a deterministic order fixed by the dictionary stream
// order and the flags. It returns the number of grids emitted.
//
// The input grid is never mutated. A grid that already contains two
// identical complete runs has no acceptable fillings unless duplicates
// are allowed. The context is checked only when a solution is about to
// be emitted: after a cancellation the search stops at the next such
// solution and ctx.Err() is returned alongside the count so far; a
// search that finds no further solution runs to the end and returns a
// nil error. An exhausted search with no solutions is not an error.
func (f *Filler) Fill(ctx context.Context, g *grid.Grid, emit func(*grid.Grid)) (int, error) {
	if g.Width < 1 || g.Height < 1 || g.Width > grid.MaxSize || g.Height > grid.MaxSize {
		return 0, fmt.Errorf("%w: %dx%d", ErrGridSize, g.Width, g.Height)
	}
	if !f.opts.AllowDuplicates && g.HasDuplicateRuns() {
		return 0, nil
	}

	enc, err := newEncoder(g, f.dict, f.opts)
	if err != nil {
		return 0, err
	}

	st := &decodeState{ctx: ctx, opts: f.opts, emit: emit}

	// A grid with no open cells is its own sole filling.
	if enc.m == nil {
		st.deliver(g.Clone())
		return st.printed, st.err
	}

	enc.m.Solve(func(rows []int) int {
		return enc.decode(st, rows)
	})
	return st.printed, st.err
}
