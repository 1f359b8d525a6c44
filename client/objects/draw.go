package objects

import (
	"image/color"

	"github.com/cbodonnell/blockblast/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// cellInset is the gap left around a filled cell so the grid shows through.
const cellInset = 2

func drawCell(screen *ebiten.Image, x, y, size float64, clr color.Color) {
	if size <= 2*cellInset {
		return
	}
	vector.DrawFilledRect(screen, float32(x+cellInset), float32(y+cellInset), float32(size-2*cellInset), float32(size-2*cellInset), clr, false)
}

func drawPiece(screen *ebiten.Image, piece types.Piece, x, y, cellSize float64, clr color.Color) {
	for _, o := range piece.Offsets() {
		drawCell(screen, x+float64(o.Col)*cellSize, y+float64(o.Row)*cellSize, cellSize, clr)
	}
}
