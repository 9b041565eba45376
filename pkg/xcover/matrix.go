// Package xcover solves the exact-cover problem with Knuth's Algorithm X
// over a dancing-links sparse matrix.
//
// The matrix is a toroidal doubly-linked structure: every 1 of the 0/1
// matrix is a node on a circular vertical list through its column and a
// circular horizontal list through its row, and the column headers hang
// off a circular header chain rooted at a sentinel. Unlinking a node
// keeps enough state in its own fields to relink it, which makes
// backtracking cheap.
//
// The structure is fundamentally cyclic, so nodes live in a single arena
// slice and every link is an index into it rather than a pointer. The
// whole matrix is one allocation block, freed by dropping the Matrix.
package xcover

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnRange is returned by AddRow for a column index outside the
	// matrix.
	ErrColumnRange = errors.New("column index out of range")
	// ErrEmptyRow is returned by AddRow for a row with no columns.
	ErrEmptyRow = errors.New("row has no columns")
)

// node is one cell of the arena. Index 0 is the root sentinel, indices
// 1..ncols are column headers, and entry nodes follow. For a header, x
// holds the live 1-count of the column; for an entry node it holds the
// row id.
type node struct {
	left, right int32
	up, down    int32
	col         int32
	x           int32
}

// Matrix is a dynamic sparse 0/1 matrix. Add rows with AddRow, then
// enumerate exact covers with Solve.
type Matrix struct {
	nodes []node
	ncols int
	rows  []int32 // first arena index of each row
	stack []int32 // chosen entry nodes during search
}

// New builds a matrix with n empty columns.
func New(n int) (*Matrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("matrix needs at least one column, got %d", n)
	}
	m := &Matrix{
		nodes: make([]node, n+1),
		ncols: n,
	}
	// Root and headers form the circular header chain; each header's
	// vertical list starts out pointing at itself.
	for i := 0; i <= n; i++ {
		m.nodes[i] = node{
			left:  int32((i + n) % (n + 1)),
			right: int32((i + 1) % (n + 1)),
			up:    int32(i),
			down:  int32(i),
			col:   int32(i),
		}
	}
	return m, nil
}

// Columns returns the number of columns the matrix was built with.
func (m *Matrix) Columns() int { return m.ncols }

// Rows returns the number of rows added so far.
func (m *Matrix) Rows() int { return len(m.rows) }

// Count returns the live 1-count of a column.
func (m *Matrix) Count(col int) int {
	return int(m.nodes[col+1].x)
}

// AddRow appends a row with 1s in the given columns and returns its row
// id. Nodes are inserted at the tail of each listed column, so a column's
// vertical order is row-insertion order. Column indices are zero-based
// and must be distinct.
func (m *Matrix) AddRow(cols []int) (int, error) {
	if len(cols) == 0 {
		return 0, ErrEmptyRow
	}
	for i, c := range cols {
		if c < 0 || c >= m.ncols {
			return 0, fmt.Errorf("%w: %d", ErrColumnRange, c)
		}
		for _, prev := range cols[:i] {
			if prev == c {
				return 0, fmt.Errorf("duplicate column %d in row", c)
			}
		}
	}

	row := int32(len(m.rows))
	first := int32(len(m.nodes))
	m.rows = append(m.rows, first)

	for i, c := range cols {
		header := int32(c + 1)
		idx := first + int32(i)
		m.nodes = append(m.nodes, node{
			left:  first + int32((i+len(cols)-1)%len(cols)),
			right: first + int32((i+1)%len(cols)),
			up:    m.nodes[header].up,
			down:  header,
			col:   header,
			x:     row,
		})
		m.nodes[m.nodes[header].up].down = idx
		m.nodes[header].up = idx
		m.nodes[header].x++
	}
	return int(row), nil
}

// RowColumns returns the zero-based column indices of a row, in the
// order they were given to AddRow.
func (m *Matrix) RowColumns(row int) []int {
	first := m.rows[row]
	cols := []int{int(m.nodes[first].col - 1)}
	for i := m.nodes[first].right; i != first; i = m.nodes[i].right {
		cols = append(cols, int(m.nodes[i].col-1))
	}
	return cols
}
