package types

import "github.com/cbodonnell/blockblast/pkg/game/constants"

// Grid is a boolean occupancy view of the board. true means the cell is unavailable.
type Grid [constants.GridSize][constants.GridSize]bool

// Fits reports whether every cell of the piece, anchored at (row, col), lands
// inside the grid on a free cell. Footprints hanging over an edge never fit.
func (g *Grid) Fits(piece Piece, row, col int) bool {
	if len(piece.offsets) == 0 {
		return false
	}
	for _, o := range piece.offsets {
		r, c := row+o.Row, col+o.Col
		if !InBounds(r, c) {
			return false
		}
		if g[r][c] {
			return false
		}
	}
	return true
}

// AnyFit reports whether the piece fits at any anchor of the grid.
func (g *Grid) AnyFit(piece Piece) bool {
	for row := 0; row < constants.GridSize; row++ {
		for col := 0; col < constants.GridSize; col++ {
			if g.Fits(piece, row, col) {
				return true
			}
		}
	}
	return false
}

// FullLines returns every row and column whose cells are all set.
func (g *Grid) FullLines() Lines {
	lines := Lines{}
	for row := 0; row < constants.GridSize; row++ {
		full := true
		for col := 0; col < constants.GridSize; col++ {
			if !g[row][col] {
				full = false
				break
			}
		}
		if full {
			lines.Rows = append(lines.Rows, row)
		}
	}
	for col := 0; col < constants.GridSize; col++ {
		full := true
		for row := 0; row < constants.GridSize; row++ {
			if !g[row][col] {
				full = false
				break
			}
		}
		if full {
			lines.Cols = append(lines.Cols, col)
		}
	}
	return lines
}

// Free counts the unset cells.
func (g *Grid) Free() int {
	n := 0
	for row := range g {
		for col := range g[row] {
			if !g[row][col] {
				n++
			}
		}
	}
	return n
}

// InBounds reports whether (row, col) is a cell of the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < constants.GridSize && col >= 0 && col < constants.GridSize
}
