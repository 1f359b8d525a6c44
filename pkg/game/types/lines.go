package types

import "slices"

// Lines is a set of full rows and columns, each in ascending order.
type Lines struct {
	Rows []int
	Cols []int
}

// Count is the number of lines. A row and a column crossing at one cell count as two.
func (l Lines) Count() int {
	return len(l.Rows) + len(l.Cols)
}

func (l Lines) Empty() bool {
	return l.Count() == 0
}

func (l Lines) HasRow(row int) bool {
	return slices.Contains(l.Rows, row)
}

func (l Lines) HasCol(col int) bool {
	return slices.Contains(l.Cols, col)
}

// Covers reports whether the cell lies on any of the lines.
func (l Lines) Covers(row, col int) bool {
	return l.HasRow(row) || l.HasCol(col)
}

// Merge returns the union of both line sets.
func (l Lines) Merge(other Lines) Lines {
	return Lines{
		Rows: mergeSorted(l.Rows, other.Rows),
		Cols: mergeSorted(l.Cols, other.Cols),
	}
}

func mergeSorted(a, b []int) []int {
	out := slices.Concat(a, b)
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}
