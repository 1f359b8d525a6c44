package objects

import (
	"github.com/cbodonnell/blockblast/client/layout"
	"github.com/cbodonnell/blockblast/client/palette"
	"github.com/cbodonnell/blockblast/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
)

// DragObject draws the piece being dragged at full board scale under the pointer.
type DragObject struct {
	*BaseObject

	palette *palette.Palette
	piece   *types.Piece
	// grabX and grabY are the pointer offset from the piece's top-left corner.
	grabX, grabY float64
	x, y         float64
}

func NewDragObject(id string, p *palette.Palette, zIndex int) *DragObject {
	return &DragObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		palette:    p,
	}
}

// Start picks up piece. (trayX, trayY) is the pointer offset from the piece's
// top-left corner in the tray; it is rescaled to board cells.
func (o *DragObject) Start(piece types.Piece, trayX, trayY float64) {
	scale := float64(layout.CellSize) / layout.TrayCellSize
	o.piece = &piece
	o.grabX = trayX * scale
	o.grabY = trayY * scale
}

// Move follows the pointer and returns the board anchor under the piece.
func (o *DragObject) Move(pointerX, pointerY float64) (row, col int) {
	o.x = pointerX - o.grabX
	o.y = pointerY - o.grabY
	return layout.SnapAnchor(o.x, o.y)
}

// Piece returns the dragged piece.
func (o *DragObject) Piece() (types.Piece, bool) {
	if o.piece == nil {
		return types.Piece{}, false
	}
	return *o.piece, true
}

// Stop drops the piece.
func (o *DragObject) Stop() {
	o.piece = nil
}

func (o *DragObject) Draw(screen *ebiten.Image) {
	if o.piece == nil {
		return
	}
	drawPiece(screen, *o.piece, o.x, o.y, layout.CellSize, o.palette.Color(o.piece.Tag))
}
