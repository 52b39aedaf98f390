package core

import (
	"fmt"
	"strings"
)

// Footprint is the static cell pattern of a shape template.
// A cell is true where the template has a block. Footprints are
// immutable once built and shared across spawns.
type Footprint struct {
	Name  string
	cells [][]bool
}

// NewFootprint builds a footprint from a boolean matrix.
// The matrix must be non-empty, rectangular, and have at least one filled cell.
func NewFootprint(name string, cells [][]bool) (Footprint, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return Footprint{}, fmt.Errorf("%w: %s is empty", ErrInvalidFootprint, name)
	}

	width := len(cells[0])
	filled := 0
	copied := make([][]bool, len(cells))
	for r, row := range cells {
		if len(row) != width {
			return Footprint{}, fmt.Errorf("%w: %s row %d has %d cells, want %d",
				ErrInvalidFootprint, name, r, len(row), width)
		}
		copied[r] = make([]bool, width)
		copy(copied[r], row)
		for _, v := range row {
			if v {
				filled++
			}
		}
	}

	if filled == 0 {
		return Footprint{}, fmt.Errorf("%w: %s has no filled cells", ErrInvalidFootprint, name)
	}

	return Footprint{Name: name, cells: copied}, nil
}

// ParseFootprint builds a footprint from rows of '1'/'0' characters
// ('#'/'.' are accepted as well), e.g. []string{"111", "010"}.
func ParseFootprint(name string, rows []string) (Footprint, error) {
	cells := make([][]bool, len(rows))
	for r, row := range rows {
		row = strings.TrimSpace(row)
		cells[r] = make([]bool, 0, len(row))
		for _, ch := range row {
			switch ch {
			case '1', '#', 'X', 'x':
				cells[r] = append(cells[r], true)
			case '0', '.', '_':
				cells[r] = append(cells[r], false)
			default:
				return Footprint{}, fmt.Errorf("%w: %s has unexpected character %q",
					ErrInvalidFootprint, name, ch)
			}
		}
	}
	return NewFootprint(name, cells)
}

// MustFootprint is like ParseFootprint but panics on error.
// Intended for static tables.
func MustFootprint(name string, rows ...string) Footprint {
	fp, err := ParseFootprint(name, rows)
	if err != nil {
		panic(err)
	}
	return fp
}

// Rows returns the footprint height.
func (f Footprint) Rows() int {
	return len(f.cells)
}

// Cols returns the footprint width.
func (f Footprint) Cols() int {
	if len(f.cells) == 0 {
		return 0
	}
	return len(f.cells[0])
}

// Filled reports whether the relative cell (r, c) is part of the template.
func (f Footprint) Filled(r, c int) bool {
	if r < 0 || r >= f.Rows() || c < 0 || c >= f.Cols() {
		return false
	}
	return f.cells[r][c]
}

// Offsets returns the relative coordinates of all filled cells in row-major order.
func (f Footprint) Offsets() []Coord {
	var out []Coord
	for r := range f.cells {
		for c, v := range f.cells[r] {
			if v {
				out = append(out, C(r, c))
			}
		}
	}
	return out
}

// Count returns the number of filled cells.
func (f Footprint) Count() int {
	return len(f.Offsets())
}

// FitsBoard reports whether the footprint's bounding box fits an n×n board.
func (f Footprint) FitsBoard(n int) bool {
	return f.Rows() <= n && f.Cols() <= n
}

// Strings returns the footprint as '1'/'0' strings, the inverse of ParseFootprint.
func (f Footprint) Strings() []string {
	out := make([]string, f.Rows())
	for r := range f.cells {
		var sb strings.Builder
		for _, v := range f.cells[r] {
			if v {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		out[r] = sb.String()
	}
	return out
}

// Single is the 1×1 footprint. Placement search with it doubles as the
// "any empty cell left" check.
var Single = MustFootprint("SINGLE", "1")

// DefaultFootprints returns the standard piece table: the seven tetrominoes
// plus the single block.
func DefaultFootprints() []Footprint {
	return []Footprint{
		MustFootprint("O", "11", "11"),
		MustFootprint("I", "1", "1", "1", "1"),
		MustFootprint("T", "111", "010"),
		MustFootprint("L", "10", "10", "11"),
		MustFootprint("J", "01", "01", "11"),
		MustFootprint("S", "011", "110"),
		MustFootprint("Z", "110", "011"),
		Single,
	}
}
