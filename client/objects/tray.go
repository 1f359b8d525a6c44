package objects

import (
	"slices"

	"github.com/cbodonnell/blockblast/client/layout"
	"github.com/cbodonnell/blockblast/client/palette"
	"github.com/cbodonnell/blockblast/pkg/collisions"
	"github.com/cbodonnell/blockblast/pkg/game/constants"
	"github.com/cbodonnell/blockblast/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	// traySlotCells is the side of a tray slot in tray cells, enough for any piece.
	traySlotCells = 5
	// hitCellSize buckets the tray hit space.
	hitCellSize = layout.TrayCellSize / 2
	// trayWidth and trayHeight bound all the tray slots.
	trayWidth  = traySlotCells * layout.TrayCellSize
	trayHeight = (constants.TraySize-1)*layout.TraySlotSpacing + trayWidth
)

// TrayObject draws the offered pieces in fixed slots and resolves which one is
// under the pointer.
type TrayObject struct {
	*BaseObject

	palette *palette.Palette
	slots   [constants.TraySize]*types.Piece
	hidden  uint64
	hits    *collisions.HitSpace
}

type NewTrayObjectOptions struct {
	// Palette colours the pieces.
	Palette *palette.Palette
	// ZIndex is the z-index of the tray.
	ZIndex int
}

func NewTrayObject(id string, opts NewTrayObjectOptions) *TrayObject {
	return &TrayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		palette:    opts.Palette,
		hits:       collisions.NewHitSpace(layout.ScreenWidth, layout.ScreenHeight, hitCellSize),
	}
}

// SetPieces syncs the slots with the session tray. Pieces keep their slot
// while the tray only shrinks; a refilled tray is laid out in order.
func (o *TrayObject) SetPieces(tray []types.Piece) {
	if !o.holdsAll(tray) {
		o.slots = [constants.TraySize]*types.Piece{}
		for i := range tray {
			if i < constants.TraySize {
				o.slots[i] = &tray[i]
			}
		}
	} else {
		for i, p := range o.slots {
			if p != nil && !slices.ContainsFunc(tray, func(t types.Piece) bool { return t.ID == p.ID }) {
				o.slots[i] = nil
			}
		}
	}
	o.rebuildHits()
}

func (o *TrayObject) holdsAll(tray []types.Piece) bool {
	if len(tray) == 0 {
		return false
	}
	for _, t := range tray {
		if !slices.ContainsFunc(o.slots[:], func(p *types.Piece) bool { return p != nil && p.ID == t.ID }) {
			return false
		}
	}
	return true
}

func (o *TrayObject) rebuildHits() {
	o.hits.Clear()
	for slot, p := range o.slots {
		if p == nil {
			continue
		}
		x, y := layout.TraySlotOrigin(slot)
		for _, off := range p.Offsets() {
			o.hits.Add(slot, x+float64(off.Col*layout.TrayCellSize), y+float64(off.Row*layout.TrayCellSize), layout.TrayCellSize, layout.TrayCellSize)
		}
	}
}

// PieceAt returns the piece drawn under (x, y) and its slot.
func (o *TrayObject) PieceAt(x, y float64) (types.Piece, int, bool) {
	if !layout.InRect(x, y, layout.TrayX, layout.TrayY, trayWidth, trayHeight) {
		return types.Piece{}, 0, false
	}
	slot, ok := o.hits.At(x, y)
	if !ok || o.slots[slot] == nil {
		return types.Piece{}, 0, false
	}
	return *o.slots[slot], slot, true
}

// SetHidden hides the piece with the given ID while it is dragged. 0 shows all.
func (o *TrayObject) SetHidden(id uint64) {
	o.hidden = id
}

func (o *TrayObject) Draw(screen *ebiten.Image) {
	side := float32(trayWidth)
	for slot, p := range o.slots {
		x, y := layout.TraySlotOrigin(slot)
		vector.StrokeRect(screen, float32(x)-4, float32(y)-4, side+8, side+8, 2, palette.TrayBorder, false)
		if p == nil || p.ID == o.hidden {
			continue
		}
		drawPiece(screen, *p, x, y, layout.TrayCellSize, o.palette.Color(p.Tag))
	}
}
