// Package layout maps between screen pixels and board cells.
package layout

import (
	"math"

	"github.com/cbodonnell/blockblast/pkg/game/constants"
)

const (
	// CellSize is the pixel size of a board cell.
	CellSize = 60
	// GridOffsetX is the distance of the board from the left edge of the screen.
	GridOffsetX = 50
	// GridOffsetY is the distance of the board from the top edge of the screen.
	GridOffsetY = 100
	// GridPixels is the pixel size of the whole board.
	GridPixels = constants.GridSize * CellSize

	// ScreenWidth leaves room for the tray on the right of the board.
	ScreenWidth = GridPixels + 400
	// ScreenHeight leaves room for the score above the board.
	ScreenHeight = GridPixels + 200

	// TrayCellSize is the pixel size of a cell for pieces resting in the tray.
	TrayCellSize = 36
	// TrayX is the left edge of the tray slots.
	TrayX = ScreenWidth - 320
	// TrayY is the top edge of the first tray slot.
	TrayY = 60
	// TraySlotSpacing is the vertical distance between tray slots.
	TraySlotSpacing = 200
)

// CellOrigin returns the top-left pixel of a board cell.
func CellOrigin(row, col int) (x, y float64) {
	return float64(GridOffsetX + col*CellSize), float64(GridOffsetY + row*CellSize)
}

// CellAt returns the board cell under a pixel.
func CellAt(x, y float64) (row, col int, ok bool) {
	col = int(math.Floor((x - GridOffsetX) / CellSize))
	row = int(math.Floor((y - GridOffsetY) / CellSize))
	if row < 0 || row >= constants.GridSize || col < 0 || col >= constants.GridSize {
		return 0, 0, false
	}
	return row, col, true
}

// SnapAnchor returns the board anchor nearest to a piece whose top-left
// corner is at (x, y). The anchor may lie outside the board.
func SnapAnchor(x, y float64) (row, col int) {
	col = int(math.Round((x - GridOffsetX) / CellSize))
	row = int(math.Round((y - GridOffsetY) / CellSize))
	return row, col
}

// TraySlotOrigin returns the top-left pixel of a tray slot.
func TraySlotOrigin(slot int) (x, y float64) {
	return TrayX, float64(TrayY + slot*TraySlotSpacing)
}

// InRect reports whether (px, py) lies in the rectangle at (x, y) of size (w, h).
func InRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
