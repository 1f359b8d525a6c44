package types

import (
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/blockblast/pkg/game/constants"
)

// ErrInvalidPlacement is returned when a piece is placed where it does not fit.
var ErrInvalidPlacement = errors.New("invalid placement")

// Clock returns the current time. Boards stamp clear animations with it.
type Clock func() time.Time

// ClearState describes the outcome of advancing the clear animation.
type ClearState int

const (
	// ClearIdle means no lines are being cleared.
	ClearIdle ClearState = iota
	// ClearAnimating means lines are still on their way out.
	ClearAnimating
	// ClearDone means the animating lines were just removed.
	ClearDone
)

func (s ClearState) String() string {
	switch s {
	case ClearIdle:
		return "idle"
	case ClearAnimating:
		return "animating"
	case ClearDone:
		return "done"
	}
	return "unknown"
}

// Cells is the tag view of a board. TagEmpty marks a free cell.
type Cells [constants.GridSize][constants.GridSize]Tag

// Board holds the cell state of the play field and the lines currently being cleared.
type Board struct {
	// cells is the only source of occupancy; a cell is occupied iff its tag is not TagEmpty.
	cells Cells
	// clearing holds the lines animating out, empty when idle.
	clearing Lines
	// clearStart is when the current clear animation began.
	clearStart time.Time
	// clearDuration is how long lines stay before they are removed.
	clearDuration time.Duration
	// clock stamps newly detected lines.
	clock Clock
}

// NewBoardOptions contains options for creating a new Board.
type NewBoardOptions struct {
	// Clock stamps clear animations. Defaults to time.Now.
	Clock Clock
	// ClearDuration is the clear animation length. Defaults to constants.ClearAnimationDuration.
	ClearDuration time.Duration
	// Cells is an optional starting layout.
	Cells *Cells
}

func NewBoard(opts NewBoardOptions) *Board {
	b := &Board{
		clock:         opts.Clock,
		clearDuration: opts.ClearDuration,
	}
	if b.clock == nil {
		b.clock = time.Now
	}
	if b.clearDuration <= 0 {
		b.clearDuration = constants.ClearAnimationDuration
	}
	if opts.Cells != nil {
		b.cells = *opts.Cells
	}
	return b
}

// Cell returns the tag of a cell, TagEmpty when free or out of bounds.
func (b *Board) Cell(row, col int) Tag {
	if !InBounds(row, col) {
		return TagEmpty
	}
	return b.cells[row][col]
}

// Occupied reports whether a cell holds a tag.
func (b *Board) Occupied(row, col int) bool {
	return b.Cell(row, col) != TagEmpty
}

// Cells returns a copy of the tag view.
func (b *Board) Cells() Cells {
	return b.cells
}

// Occupancy returns the raw occupancy view, including lines still animating out.
func (b *Board) Occupancy() Grid {
	var g Grid
	for row := range b.cells {
		for col := range b.cells[row] {
			g[row][col] = b.cells[row][col] != TagEmpty
		}
	}
	return g
}

// OccupancySnapshotExcludingAnimating returns the occupancy view with the
// clearing lines treated as empty, since they are about to be removed.
func (b *Board) OccupancySnapshotExcludingAnimating() Grid {
	g := b.Occupancy()
	for _, row := range b.clearing.Rows {
		for col := 0; col < constants.GridSize; col++ {
			g[row][col] = false
		}
	}
	for _, col := range b.clearing.Cols {
		for row := 0; row < constants.GridSize; row++ {
			g[row][col] = false
		}
	}
	return g
}

// blocked marks every occupied or clearing cell.
func (b *Board) blocked() Grid {
	g := b.Occupancy()
	for row := 0; row < constants.GridSize; row++ {
		for col := 0; col < constants.GridSize; col++ {
			if b.clearing.Covers(row, col) {
				g[row][col] = true
			}
		}
	}
	return g
}

// Fits reports whether the piece anchored at (row, col) lies fully inside the
// board on empty, non-clearing cells.
func (b *Board) Fits(piece Piece, row, col int) bool {
	g := b.blocked()
	return g.Fits(piece, row, col)
}

// Place writes the piece onto the board and detects the lines it completes.
// The board is left untouched when the piece does not fit.
func (b *Board) Place(piece Piece, row, col int) (Lines, error) {
	if !b.Fits(piece, row, col) {
		return Lines{}, fmt.Errorf("failed to place %s at (%d, %d): %w", piece, row, col, ErrInvalidPlacement)
	}
	for _, o := range piece.offsets {
		b.cells[row+o.Row][col+o.Col] = piece.Tag
	}
	return b.DetectLines(), nil
}

// DetectLines returns every full row and column. When any exist, they join the
// clearing set and the clear animation (re)starts at the current clock time.
func (b *Board) DetectLines() Lines {
	g := b.Occupancy()
	lines := g.FullLines()
	if lines.Empty() {
		return lines
	}
	b.clearing = b.clearing.Merge(lines)
	b.clearStart = b.clock()
	return lines
}

// PotentialLines returns the lines the piece would complete if placed at
// (row, col), without changing the board. Empty when the piece does not fit.
func (b *Board) PotentialLines(piece Piece, row, col int) Lines {
	if !b.Fits(piece, row, col) {
		return Lines{}
	}
	g := b.Occupancy()
	for _, o := range piece.offsets {
		g[row+o.Row][col+o.Col] = true
	}
	full := g.FullLines()
	// lines that were already complete are being cleared, not completed by this piece
	potential := Lines{}
	for _, r := range full.Rows {
		if !b.clearing.HasRow(r) {
			potential.Rows = append(potential.Rows, r)
		}
	}
	for _, c := range full.Cols {
		if !b.clearing.HasCol(c) {
			potential.Cols = append(potential.Cols, c)
		}
	}
	return potential
}

// Animating reports whether lines are being cleared.
func (b *Board) Animating() bool {
	return !b.clearing.Empty()
}

// Clearing returns the lines currently animating out.
func (b *Board) Clearing() Lines {
	return Lines{}.Merge(b.clearing)
}

// IsClearing reports whether a cell lies on a line that is animating out.
func (b *Board) IsClearing(row, col int) bool {
	return b.clearing.Covers(row, col)
}

// ClearProgress returns how far the clear animation is, from 0 to 1. It is 0 when idle.
func (b *Board) ClearProgress(now time.Time) float64 {
	if !b.Animating() {
		return 0
	}
	p := float64(now.Sub(b.clearStart)) / float64(b.clearDuration)
	return max(0, min(1, p))
}

// ClearDuration is the length of the clear animation.
func (b *Board) ClearDuration() time.Duration {
	return b.clearDuration
}

// AdvanceClearAnimation removes the clearing lines once the animation has run
// for its full duration, returning the number of rows plus columns removed.
// It is safe to call every frame.
func (b *Board) AdvanceClearAnimation(now time.Time) (int, ClearState) {
	if !b.Animating() {
		return 0, ClearIdle
	}
	if now.Sub(b.clearStart) < b.clearDuration {
		return 0, ClearAnimating
	}
	for _, row := range b.clearing.Rows {
		for col := 0; col < constants.GridSize; col++ {
			b.cells[row][col] = TagEmpty
		}
	}
	for _, col := range b.clearing.Cols {
		for row := 0; row < constants.GridSize; row++ {
			b.cells[row][col] = TagEmpty
		}
	}
	count := b.clearing.Count()
	b.clearing = Lines{}
	b.clearStart = time.Time{}
	return count, ClearDone
}
