package objects

import (
	"testing"

	"github.com/cbodonnell/blockblast/client/layout"
	"github.com/cbodonnell/blockblast/client/palette"
	"github.com/cbodonnell/blockblast/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObject struct {
	*BaseObject

	inits, updates, destroys int
	onUpdate                 func() error
}

func newCountingObject(id string, zIndex int) *countingObject {
	return &countingObject{BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex})}
}

func (o *countingObject) Init() error {
	o.inits++
	return nil
}

func (o *countingObject) Destroy() error {
	o.destroys++
	return nil
}

func (o *countingObject) Update() error {
	o.updates++
	if o.onUpdate != nil {
		return o.onUpdate()
	}
	return nil
}

func (o *countingObject) Draw(screen *ebiten.Image) {}

func ids(objs []GameObject) []string {
	out := make([]string, 0, len(objs))
	for _, o := range objs {
		out = append(out, o.GetID())
	}
	return out
}

func TestSortedZIndexObject_Order(t *testing.T) {
	root := NewSortedZIndexObject("root")
	require.NoError(t, root.AddChild("top", newCountingObject("top", 10)))
	require.NoError(t, root.AddChild("bottom", newCountingObject("bottom", 0)))
	require.NoError(t, root.AddChild("middle-a", newCountingObject("middle-a", 5)))
	require.NoError(t, root.AddChild("middle-b", newCountingObject("middle-b", 5)))

	assert.Equal(t, []string{"bottom", "middle-a", "middle-b", "top"}, ids(root.GetChildren()))

	require.NoError(t, root.RemoveChild("middle-a"))
	assert.Equal(t, []string{"bottom", "middle-b", "top"}, ids(root.GetChildren()))
	assert.Error(t, root.RemoveChild("middle-a"))
	assert.Error(t, root.AddChild("top", newCountingObject("top", 1)))
}

func TestTree_Lifecycle(t *testing.T) {
	root := NewSortedZIndexObject("root")
	child := newCountingObject("child", 0)
	grandchild := newCountingObject("grandchild", 0)
	require.NoError(t, child.AddChild("grandchild", grandchild))
	require.NoError(t, root.AddChild("child", child))
	assert.Equal(t, 1, child.inits)
	assert.Equal(t, 2, grandchild.inits, "the grandchild is initialized with each tree it joins")

	require.NoError(t, UpdateTree(root))
	assert.Equal(t, 1, child.updates)
	assert.Equal(t, 1, grandchild.updates)

	require.NoError(t, root.RemoveChild("child"))
	assert.Equal(t, 1, child.destroys)
	assert.Equal(t, 1, grandchild.destroys)
	assert.Nil(t, child.GetParent())
}

func TestTree_ChildRemovesItselfDuringUpdate(t *testing.T) {
	root := NewSortedZIndexObject("root")
	ephemeral := newCountingObject("ephemeral", 0)
	ephemeral.onUpdate = func() error {
		return ephemeral.RemoveFromParent()
	}
	after := newCountingObject("after", 1)
	require.NoError(t, root.AddChild("ephemeral", ephemeral))
	require.NoError(t, root.AddChild("after", after))

	require.NoError(t, UpdateTree(root))
	assert.Equal(t, []string{"after"}, ids(root.GetChildren()))
	assert.Equal(t, 1, after.updates, "siblings still update in the frame a child leaves")
}

func trayPiece(t *testing.T, id uint64, shape types.ShapeType) types.Piece {
	t.Helper()
	p, err := types.NewPiece(id, shape, 0, 1)
	require.NoError(t, err)
	return p
}

func TestTrayObject_PieceAt(t *testing.T) {
	tray := NewTrayObject("tray", NewTrayObjectOptions{Palette: palette.New()})
	pieces := []types.Piece{
		trayPiece(t, 1, types.ShapeSquare2),
		trayPiece(t, 2, types.ShapeT),
		trayPiece(t, 3, types.ShapeLine3),
	}
	tray.SetPieces(pieces)

	x, y := layout.TraySlotOrigin(1)
	p, slot, ok := tray.PieceAt(x+layout.TrayCellSize*1.5, y+1)
	require.True(t, ok)
	assert.Equal(t, uint64(2), p.ID)
	assert.Equal(t, 1, slot)

	// the T leaves its top corners empty
	_, _, ok = tray.PieceAt(x+1, y+1)
	assert.False(t, ok)

	// nothing is picked up outside the tray
	_, _, ok = tray.PieceAt(layout.GridOffsetX+1, layout.GridOffsetY+1)
	assert.False(t, ok)
	_, _, ok = tray.PieceAt(layout.TrayX-1, y+1)
	assert.False(t, ok)

	// placing the middle piece keeps the others in their slots
	tray.SetPieces([]types.Piece{pieces[0], pieces[2]})
	_, _, ok = tray.PieceAt(x+layout.TrayCellSize*1.5, y+1)
	assert.False(t, ok)
	x, y = layout.TraySlotOrigin(2)
	p, slot, ok = tray.PieceAt(x+1, y+1)
	require.True(t, ok)
	assert.Equal(t, uint64(3), p.ID)
	assert.Equal(t, 2, slot)

	// a refill is laid out from the first slot
	tray.SetPieces([]types.Piece{trayPiece(t, 4, types.ShapeLine5)})
	x, y = layout.TraySlotOrigin(0)
	p, slot, ok = tray.PieceAt(x+4*layout.TrayCellSize+1, y+1)
	require.True(t, ok)
	assert.Equal(t, uint64(4), p.ID)
	assert.Equal(t, 0, slot)
}

func TestScoreObject_CountsUpAndResets(t *testing.T) {
	score := NewScoreObject("score", func() (int, int) { return 30, 4 })
	for i := 0; i < 3; i++ {
		require.NoError(t, score.Update())
	}
	assert.Equal(t, 12, score.Displayed())

	score.Reset()
	assert.Zero(t, score.Displayed())
}

func TestMultiplierLabel(t *testing.T) {
	tests := []struct {
		multiplier int
		want       string
	}{
		{multiplier: 1, want: "x1"},
		{multiplier: 4, want: "x4"},
		{multiplier: 12, want: "x12"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, multiplierLabel(tt.multiplier))
		})
	}
}

func TestDragObject_Move(t *testing.T) {
	drag := NewDragObject("drag", palette.New(), 100)
	_, ok := drag.Piece()
	assert.False(t, ok)

	piece := trayPiece(t, 7, types.ShapeSquare2)
	// grabbed in the middle of the first tray cell
	drag.Start(piece, layout.TrayCellSize/2, layout.TrayCellSize/2)
	got, ok := drag.Piece()
	require.True(t, ok)
	assert.Equal(t, piece.ID, got.ID)

	x, y := layout.CellOrigin(2, 3)
	row, col := drag.Move(x+layout.CellSize/2+5, y+layout.CellSize/2-5)
	assert.Equal(t, 2, row)
	assert.Equal(t, 3, col)

	drag.Stop()
	_, ok = drag.Piece()
	assert.False(t, ok)
}
