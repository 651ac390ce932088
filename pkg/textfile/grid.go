package textfile

import (
	"fmt"
	"strings"

	"github.com/Owmacohe/OMCHTools/pkg/math"
)

// Grid is a rectangular collection stored row-major.
type Grid[T any] struct {
	Rows  int
	Cols  int
	Cells []T
}

// NewGrid returns a zero-filled grid.
func NewGrid[T any](rows, cols int) *Grid[T] {
	return &Grid[T]{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]T, rows*cols),
	}
}

// At returns the cell at (row, col). It panics when out of range.
func (g *Grid[T]) At(row, col int) T {
	return g.Cells[g.index(row, col)]
}

// Set stores v at (row, col). It panics when out of range.
func (g *Grid[T]) Set(row, col int, v T) {
	g.Cells[g.index(row, col)] = v
}

// Row returns the cells of one row. The slice aliases the grid.
func (g *Grid[T]) Row(row int) []T {
	return g.Cells[row*g.Cols : (row+1)*g.Cols]
}

// Empty reports whether the grid has no cells.
func (g *Grid[T]) Empty() bool {
	return len(g.Cells) == 0
}

// Slices copies the grid into one slice per row.
func (g *Grid[T]) Slices() [][]T {
	out := make([][]T, g.Rows)
	for r := range out {
		out[r] = append([]T(nil), g.Row(r)...)
	}
	return out
}

func (g *Grid[T]) index(row, col int) int {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		panic(fmt.Sprintf("textfile: grid index (%d, %d) out of range %dx%d", row, col, g.Rows, g.Cols))
	}
	return row*g.Cols + col
}

// Equal reports whether two grids have the same shape and cells.
func Equal[T comparable](a, b *Grid[T]) bool {
	if a.Rows != b.Rows || a.Cols != b.Cols || len(a.Cells) != len(b.Cells) {
		return false
	}
	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			return false
		}
	}
	return true
}

// ParseGrid splits each row into string cells on delim.
// Cells are not trimmed.
func ParseGrid(text string, delim rune, opts ...Option) (*Grid[string], error) {
	return parseGrid(text, delim, parseString, opts)
}

// ParseIntGrid parses each delimited cell as a base-10 integer.
func ParseIntGrid(text string, delim rune, opts ...Option) (*Grid[int], error) {
	return parseGrid(text, delim, parseInt, opts)
}

// ParseFloatGrid parses each delimited cell as a floating-point value.
func ParseFloatGrid(text string, delim rune, opts ...Option) (*Grid[float32], error) {
	return parseGrid(text, delim, parseFloat, opts)
}

// ParseVector3Grid splits rows into cells on outer, then each cell into
// x, y and z on inner.
func ParseVector3Grid(text string, outer, inner rune, opts ...Option) (*Grid[math.Vec3], error) {
	if outer == inner {
		return nil, fmt.Errorf("%w: both are %q", ErrDelimiterConflict, outer)
	}
	if err := checkDelimiter(inner); err != nil {
		return nil, err
	}
	return parseGrid(text, outer, func(s string) (math.Vec3, error) {
		return parseVector3(s, inner)
	}, opts)
}

func parseGrid[T any](text string, delim rune, conv func(string) (T, error), opts []Option) (*Grid[T], error) {
	if err := checkDelimiter(delim); err != nil {
		return nil, err
	}

	o := newOptions(opts)
	rows := splitRows(text, o)
	if rows == nil {
		return &Grid[T]{Cells: []T{}}, nil
	}

	sep := string(delim)
	width := len(strings.Split(rows[0], sep))
	grid := NewGrid[T](len(rows), width)

	for r, row := range rows {
		cells := strings.Split(row, sep)
		if err := checkWidth(cells, width, r, row, o.ragged); err != nil {
			return nil, err
		}

		n := min(len(cells), width)
		for c := 0; c < n; c++ {
			v, err := conv(cells[c])
			if err != nil {
				return nil, &ParseError{Line: r + 1, Column: c + 1, Text: cells[c], Err: err}
			}
			grid.Cells[r*width+c] = v
		}
	}

	return grid, nil
}

// checkWidth applies the ragged policy to one row.
func checkWidth(cells []string, width, r int, row string, policy RaggedPolicy) error {
	got := len(cells)
	if got == width {
		return nil
	}

	switch policy {
	case RaggedPad:
		return nil
	case RaggedTruncate:
		if got > width {
			return nil
		}
	}

	return &ParseError{
		Line:   r + 1,
		Column: min(got, width) + 1,
		Text:   row,
		Err:    fmt.Errorf("%w: got %d cells, want %d", ErrRaggedRow, got, width),
	}
}
