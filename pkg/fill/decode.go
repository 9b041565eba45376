package fill

import (
	"context"

	"github.com/Quuxplusone/xword/pkg/grid"
)

// bailout is the negative sentinel handed back to the solver when the
// search should stop: the solution quota is reached or the context was
// cancelled.
const bailout = -1

// decodeState threads the per-search counters through the solver
// callback. Nothing here is process-wide; two concurrent fills never
// share state.
type decodeState struct {
	ctx      context.Context
	opts     Options
	emit     func(*grid.Grid)
	accepted int
	printed  int
	err      error
}

// decode reconstructs a filled grid from one exact cover and applies
// the duplicate filter and the emit policy. Only Across rows carry
// letters into the working grid: every open cell lies on exactly one
// Across-orientation row of the cover, and the paired Down row agrees
// with it by construction. Black filler and Down rows are skipped.
func (e *encoder) decode(st *decodeState, rows []int) int {
	work := e.g.Clone()
	for _, id := range rows {
		info := e.info[id]
		if info.kind == rowBlack || info.run.Direction != grid.ACROSS {
			continue
		}
		for k := 0; k < info.run.Length; k++ {
			r, c := info.run.CellAt(k)
			work.Set(r, c, info.word[k])
		}
	}
	return st.deliver(work)
}

// deliver applies the duplicate filter and the every-Nth/max-solutions
// policy to one candidate grid.
func (st *decodeState) deliver(work *grid.Grid) int {
	if !st.opts.AllowDuplicates && work.HasDuplicateRuns() {
		return 0
	}
	st.accepted++
	if st.opts.EveryNth > 1 && st.accepted%st.opts.EveryNth != 0 {
		return 0
	}
	if st.ctx != nil {
		if err := st.ctx.Err(); err != nil {
			st.err = err
			return bailout
		}
	}
	st.emit(work)
	st.printed++
	if st.opts.MaxSolutions > 0 && st.printed >= st.opts.MaxSolutions {
		return bailout
	}
	return 1
}
