package scenes

import (
	"testing"
	"time"

	"github.com/cbodonnell/blockblast/client/input"
	"github.com/cbodonnell/blockblast/client/layout"
	"github.com/cbodonnell/blockblast/pkg/game"
	"github.com/cbodonnell/blockblast/pkg/game/constants"
	"github.com/cbodonnell/blockblast/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time {
	return c.now
}

func cellsFrom(t *testing.T, rows ...string) *types.Cells {
	t.Helper()
	require.Len(t, rows, constants.GridSize)
	cells := &types.Cells{}
	for r, line := range rows {
		require.Len(t, line, constants.GridSize)
		for c, ch := range line {
			if ch == '#' {
				cells[r][c] = 4
			}
		}
	}
	return cells
}

func testTray(t *testing.T) []types.Piece {
	t.Helper()
	single, err := types.NewPieceFromOffsets(1, []types.Offset{{Row: 0, Col: 0}}, 2)
	require.NoError(t, err)
	line, err := types.NewPiece(2, types.ShapeLine5, 0, 3)
	require.NoError(t, err)
	square, err := types.NewPiece(3, types.ShapeSquare3, 0, 5)
	require.NoError(t, err)
	return []types.Piece{single, line, square}
}

func newTestGameScene(t *testing.T, cells *types.Cells, onGameOver func(int) error) (*GameScene, *testClock) {
	t.Helper()
	clock := &testClock{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	scene, err := NewGameScene(NewGameSceneOptions{
		Session: game.NewSessionOptions{
			Rand:  game.NewRand(1),
			Clock: clock.Now,
			Cells: cells,
			Tray:  testTray(t),
		},
		OnGameOver: onGameOver,
	})
	require.NoError(t, err)
	require.NoError(t, scene.Init())
	return scene, clock
}

// dragTo presses on the first cell of a tray slot and releases so that the
// piece's top-left cell lands on (row, col).
func dragTo(t *testing.T, scene *GameScene, slot, row, col int) {
	t.Helper()
	sx, sy := layout.TraySlotOrigin(slot)
	require.NoError(t, scene.handlePointer(input.PointerState{X: sx + 6, Y: sy + 6, JustPressed: true, Pressed: true}))

	// a tray offset of 6 is 10 at board scale
	x, y := layout.CellOrigin(row, col)
	require.NoError(t, scene.handlePointer(input.PointerState{X: x + 10, Y: y + 10, Pressed: true}))
	require.NoError(t, scene.handlePointer(input.PointerState{X: x + 10, Y: y + 10, JustReleased: true}))
}

func TestGameScene_DropCommitsAndClears(t *testing.T) {
	scene, clock := newTestGameScene(t, cellsFrom(t,
		"#######.",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
	), nil)

	dragTo(t, scene, 0, 0, 7)
	session := scene.Session()
	assert.Equal(t, 1, session.Score())
	assert.Len(t, session.CurrentTray(), 2)
	assert.True(t, session.Board().Animating())
	assert.Nil(t, scene.board.Ghost())

	require.NoError(t, scene.advance())
	assert.Equal(t, 1, session.Score(), "points land when the animation finishes")

	clock.now = clock.now.Add(constants.ClearAnimationDuration)
	require.NoError(t, scene.advance())
	assert.Equal(t, 21, session.Score())
	assert.Equal(t, 2, session.Multiplier())
	assert.NotNil(t, scene.GetRoot().GetChild("effect-1"))
}

func TestGameScene_InvalidDropReturnsPiece(t *testing.T) {
	scene, _ := newTestGameScene(t, nil, nil)

	// the 5-long line hangs over the right edge from column 4
	dragTo(t, scene, 1, 0, 4)
	session := scene.Session()
	assert.Len(t, session.CurrentTray(), 3)
	assert.Zero(t, session.Score())

	_, ok := scene.drag.Piece()
	assert.False(t, ok)
	sx, sy := layout.TraySlotOrigin(1)
	piece, slot, ok := scene.tray.PieceAt(sx+1, sy+1)
	require.True(t, ok)
	assert.Equal(t, uint64(2), piece.ID)
	assert.Equal(t, 1, slot)
}

func TestGameScene_GameOverHandsOverScore(t *testing.T) {
	var finalScore []int
	scene, _ := newTestGameScene(t, cellsFrom(t,
		".###.###",
		"########",
		"########",
		"########",
		".###.###",
		"########",
		"########",
		"########",
	), func(score int) error {
		finalScore = append(finalScore, score)
		return nil
	})

	dragTo(t, scene, 0, 0, 0)
	require.True(t, scene.Session().IsGameOver())

	require.NoError(t, scene.advance())
	require.NoError(t, scene.advance())
	assert.Equal(t, []int{1}, finalScore, "game over is reported once")

	// pointer input is ignored once the game is over
	dragTo(t, scene, 1, 4, 0)
	assert.Equal(t, 1, scene.Session().Score())
}

func TestGameScene_Restart(t *testing.T) {
	scene, _ := newTestGameScene(t, nil, nil)
	dragTo(t, scene, 0, 3, 3)
	require.NoError(t, scene.advance())
	require.Equal(t, 1, scene.score.Displayed())
	id := scene.Session().ID()

	require.NoError(t, scene.restart())
	assert.NotEqual(t, id, scene.Session().ID())
	assert.Zero(t, scene.Session().Score())
	assert.Zero(t, scene.score.Displayed(), "the counter starts over with the session")
	assert.Len(t, scene.Session().CurrentTray(), constants.TraySize)
}

func TestGameScene_DebugLines(t *testing.T) {
	scene, _ := newTestGameScene(t, nil, nil)
	lines := scene.DebugLines()
	require.Len(t, lines, 5)
	assert.Equal(t, "Pointer cell: none", lines[4])

	x, y := layout.CellOrigin(3, 5)
	require.NoError(t, scene.handlePointer(input.PointerState{X: x + 1, Y: y + 1}))
	assert.Equal(t, "Pointer cell: (3, 5)", scene.DebugLines()[4])

	sx, sy := layout.TraySlotOrigin(0)
	require.NoError(t, scene.handlePointer(input.PointerState{X: sx, Y: sy}))
	assert.Equal(t, "Pointer cell: none", scene.DebugLines()[4])
}
