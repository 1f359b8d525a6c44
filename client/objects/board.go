package objects

import (
	"image/color"

	"github.com/cbodonnell/blockblast/client/animations"
	"github.com/cbodonnell/blockblast/client/layout"
	"github.com/cbodonnell/blockblast/client/palette"
	"github.com/cbodonnell/blockblast/pkg/game/constants"
	"github.com/cbodonnell/blockblast/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ghostAlpha is the opacity of a piece previewed on the board.
const ghostAlpha = 0.4

// Ghost is a dragged piece snapped to a board anchor.
type Ghost struct {
	Piece types.Piece
	Row   int
	Col   int
}

// BoardObject draws the grid, the placed cells, lines animating out and the
// preview of a dragged piece.
type BoardObject struct {
	*BaseObject

	board   func() *types.Board
	palette *palette.Palette
	clock   types.Clock
	ghost   *Ghost
}

type NewBoardObjectOptions struct {
	// Board returns the board to draw. It changes when the session restarts.
	Board func() *types.Board
	// Palette colours the cells.
	Palette *palette.Palette
	// Clock drives the clear and preview animations.
	Clock types.Clock
	// ZIndex is the z-index of the board.
	ZIndex int
}

func NewBoardObject(id string, opts NewBoardObjectOptions) *BoardObject {
	return &BoardObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		board:      opts.Board,
		palette:    opts.Palette,
		clock:      opts.Clock,
	}
}

// SetGhost previews a piece at an anchor. A nil ghost, or one that does not
// fit, draws nothing.
func (o *BoardObject) SetGhost(ghost *Ghost) {
	o.ghost = ghost
}

func (o *BoardObject) Ghost() *Ghost {
	return o.ghost
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	board := o.board()
	now := o.clock()

	vector.DrawFilledRect(screen, layout.GridOffsetX, layout.GridOffsetY, layout.GridPixels, layout.GridPixels, palette.GridLine, false)

	progress := board.ClearProgress(now)
	clearing := board.Clearing()
	for row := 0; row < constants.GridSize; row++ {
		for col := 0; col < constants.GridSize; col++ {
			x, y := layout.CellOrigin(row, col)
			drawCell(screen, x, y, layout.CellSize, palette.EmptyCell)

			tag := board.Cell(row, col)
			if tag == types.TagEmpty {
				continue
			}
			if !board.IsClearing(row, col) {
				drawCell(screen, x, y, layout.CellSize, o.palette.Color(tag))
				continue
			}

			distance := animations.RippleDistance(row, col, clearing.HasRow(row), clearing.HasCol(col))
			gone := animations.CellClearProgress(progress, distance)
			size := layout.CellSize * (1 - gone)
			offset := (layout.CellSize - size) / 2
			drawCell(screen, x+offset, y+offset, size, o.palette.Faded(tag, 1-gone))
		}
	}

	o.drawGhost(screen, board, now.UnixMilli())
}

func (o *BoardObject) drawGhost(screen *ebiten.Image, board *types.Board, millis int64) {
	if o.ghost == nil || !board.Fits(o.ghost.Piece, o.ghost.Row, o.ghost.Col) {
		return
	}

	lines := board.PotentialLines(o.ghost.Piece, o.ghost.Row, o.ghost.Col)
	if !lines.Empty() {
		alpha := animations.PulseAlpha(millis)
		highlight := color.RGBA{R: alpha, G: alpha, B: alpha, A: alpha}
		for row := 0; row < constants.GridSize; row++ {
			for col := 0; col < constants.GridSize; col++ {
				if lines.Covers(row, col) {
					x, y := layout.CellOrigin(row, col)
					drawCell(screen, x, y, layout.CellSize, highlight)
				}
			}
		}
	}

	x, y := layout.CellOrigin(o.ghost.Row, o.ghost.Col)
	drawPiece(screen, o.ghost.Piece, x, y, layout.CellSize, o.palette.Faded(o.ghost.Piece.Tag, ghostAlpha))
}
