package qrcode

// Grid is an immutable square matrix of QR modules. A true module is dark.
// The grid carries no quiet zone; renderers add the border themselves.
type Grid struct {
	size  int
	cells []bool
}

// NewGrid copies rows into a Grid. Rows must form a non-empty square.
func NewGrid(rows [][]bool) (Grid, error) {
	n := len(rows)
	if n == 0 {
		return Grid{}, ErrInvalidGrid
	}

	cells := make([]bool, 0, n*n)
	for _, row := range rows {
		if len(row) != n {
			return Grid{}, ErrInvalidGrid
		}
		cells = append(cells, row...)
	}

	return Grid{size: n, cells: cells}, nil
}

// Size returns the side length in modules.
func (g Grid) Size() int {
	return g.size
}

// At reports whether the module at column x, row y is dark.
// Coordinates outside the grid are light.
func (g Grid) At(x, y int) bool {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return false
	}
	return g.cells[y*g.size+x]
}

// Equal reports whether both grids have identical modules.
func (g Grid) Equal(other Grid) bool {
	if g.size != other.size {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
