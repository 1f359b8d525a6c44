package scenes

import (
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/blockblast/client/input"
	"github.com/cbodonnell/blockblast/client/layout"
	"github.com/cbodonnell/blockblast/client/objects"
	"github.com/cbodonnell/blockblast/client/palette"
	"github.com/cbodonnell/blockblast/client/ui"
	"github.com/cbodonnell/blockblast/pkg/game"
	"github.com/cbodonnell/blockblast/pkg/game/types"
	"github.com/cbodonnell/blockblast/pkg/log"
	"github.com/cbodonnell/blockblast/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// effectZIndex keeps score popups above the board.
	effectZIndex = 50
	// dragZIndex keeps the dragged piece above everything.
	dragZIndex = 100
	// clearEffectTTL is how long a clear's points stay on screen, in milliseconds.
	clearEffectTTL = 900
)

type GameScene struct {
	*BaseScene

	session    *game.Session
	events     *queue.InMemoryQueue[game.Event]
	clock      types.Clock
	palette    *palette.Palette
	onGameOver func(score int) error
	over       bool

	pointer input.Pointer
	// hover is the last pointer state, for the debug overlay.
	hover input.PointerState
	board   *objects.BoardObject
	tray    *objects.TrayObject
	score   *objects.ScoreObject
	drag    *objects.DragObject

	// effectSeq numbers text effects so their ids are unique.
	effectSeq int
}

type NewGameSceneOptions struct {
	// Session configures the session the scene plays.
	Session game.NewSessionOptions
	// Palette colours the pieces.
	Palette *palette.Palette
	// OnGameOver is called once with the final score when the game ends and
	// the last clear has finished animating.
	OnGameOver func(score int) error
}

var _ Scene = &GameScene{}

func NewGameScene(opts NewGameSceneOptions) (*GameScene, error) {
	events := queue.NewInMemoryQueue[game.Event]()
	sessionOpts := opts.Session
	sessionOpts.Events = events
	if sessionOpts.Clock == nil {
		sessionOpts.Clock = time.Now
	}
	session, err := game.NewSession(sessionOpts)
	if err != nil {
		return nil, &ui.ActionableError{Message: "Could not start a new game.", Err: err}
	}

	p := opts.Palette
	if p == nil {
		p = palette.New()
	}

	return &GameScene{
		BaseScene:  NewBaseScene(objects.NewSortedZIndexObject("game-root")),
		session:    session,
		events:     events,
		clock:      sessionOpts.Clock,
		palette:    p,
		onGameOver: opts.OnGameOver,
	}, nil
}

func (g *GameScene) Init() error {
	if err := g.BaseScene.Init(); err != nil {
		return fmt.Errorf("failed to initialize base scene: %w", err)
	}

	g.board = objects.NewBoardObject("board", objects.NewBoardObjectOptions{
		Board:   g.session.Board,
		Palette: g.palette,
		Clock:   g.clock,
	})
	g.tray = objects.NewTrayObject("tray", objects.NewTrayObjectOptions{
		Palette: g.palette,
	})
	g.score = objects.NewScoreObject("score", func() (int, int) {
		return g.session.Score(), g.session.Multiplier()
	})
	g.drag = objects.NewDragObject("drag", g.palette, dragZIndex)
	g.tray.SetPieces(g.session.CurrentTray())

	for _, child := range []objects.GameObject{g.board, g.tray, g.score, g.drag} {
		if err := g.GetRoot().AddChild(child.GetID(), child); err != nil {
			return fmt.Errorf("failed to add %s: %w", child.GetID(), err)
		}
	}
	return nil
}

// Session is the session being played.
func (g *GameScene) Session() *game.Session {
	return g.session
}

func (g *GameScene) Update() error {
	if input.IsRestartJustPressed() {
		if err := g.restart(); err != nil {
			return fmt.Errorf("failed to restart: %w", err)
		}
	}

	if err := g.handlePointer(g.pointer.Update()); err != nil {
		return fmt.Errorf("failed to handle pointer: %w", err)
	}

	return g.advance()
}

// advance runs the clear animation and the object tree for one frame, and
// hands over to the game over screen once nothing is left to animate.
func (g *GameScene) advance() error {
	g.session.Tick(g.clock())
	for _, e := range g.events.ReadAll() {
		switch e.Type {
		case game.EventTypeCleared:
			g.spawnClearEffect(e.Count, e.Points)
		case game.EventTypeGameOver:
			log.Debug("Session %s is out of moves, waiting for the board to settle", e.SessionID)
		}
	}

	if err := g.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %w", err)
	}

	// the last clear still scores after the game is decided
	if g.session.IsGameOver() && !g.session.Board().Animating() && !g.over {
		g.over = true
		g.cancelDrag()
		if g.onGameOver != nil {
			return g.onGameOver(g.session.Score())
		}
	}
	return nil
}

func (g *GameScene) restart() error {
	if err := g.session.Restart(); err != nil {
		return err
	}
	g.over = false
	g.cancelDrag()
	g.score.Reset()
	g.tray.SetPieces(g.session.CurrentTray())
	return nil
}

func (g *GameScene) handlePointer(state input.PointerState) error {
	g.hover = state
	if g.session.IsGameOver() {
		g.cancelDrag()
		return nil
	}

	switch {
	case state.JustPressed:
		piece, slot, ok := g.tray.PieceAt(state.X, state.Y)
		if !ok {
			return nil
		}
		x, y := layout.TraySlotOrigin(slot)
		g.drag.Start(piece, state.X-x, state.Y-y)
		g.tray.SetHidden(piece.ID)
		g.updateGhost(state)
	case state.Pressed:
		g.updateGhost(state)
	case state.JustReleased:
		return g.drop(state)
	}
	return nil
}

func (g *GameScene) updateGhost(state input.PointerState) {
	piece, ok := g.drag.Piece()
	if !ok {
		return
	}
	row, col := g.drag.Move(state.X, state.Y)
	g.board.SetGhost(&objects.Ghost{Piece: piece, Row: row, Col: col})
}

// drop commits the dragged piece where it was released. A piece that does not
// fit goes back to its tray slot.
func (g *GameScene) drop(state input.PointerState) error {
	piece, ok := g.drag.Piece()
	if !ok {
		return nil
	}
	row, col := g.drag.Move(state.X, state.Y)
	g.cancelDrag()

	if !g.session.Board().Fits(piece, row, col) {
		log.Debug("Returning %s to the tray, it does not fit at (%d, %d)", piece, row, col)
		return nil
	}

	if err := g.session.CommitPlacement(piece, row, col); err != nil {
		if errors.Is(err, game.ErrGameOver) || errors.Is(err, game.ErrPieceNotInTray) || errors.Is(err, types.ErrInvalidPlacement) {
			log.Warn("Rejected placement: %v", err)
			return nil
		}
		return err
	}
	g.tray.SetPieces(g.session.CurrentTray())
	return nil
}

func (g *GameScene) cancelDrag() {
	g.drag.Stop()
	g.tray.SetHidden(0)
	g.board.SetGhost(nil)
}

func (g *GameScene) spawnClearEffect(count, points int) {
	if points <= 0 {
		return
	}
	g.effectSeq++
	t := fmt.Sprintf("+%d", points)
	if count > 1 {
		t = fmt.Sprintf("%d lines +%d", count, points)
	}
	effect := objects.NewTextEffect(fmt.Sprintf("effect-%d", g.effectSeq), objects.NewTextEffectOptions{
		Text:   t,
		X:      layout.GridOffsetX + layout.GridPixels/2,
		Y:      layout.GridOffsetY + layout.GridPixels/2,
		Color:  palette.Multiplier,
		Scroll: true,
		TTL:    clearEffectTTL,
		ZIndex: effectZIndex,
	})
	if err := g.GetRoot().AddChild(effect.GetID(), effect); err != nil {
		log.Warn("Failed to add clear effect: %v", err)
	}
}

// DebugLines describes the session for the debug overlay.
func (g *GameScene) DebugLines() []string {
	cell := "none"
	if row, col, ok := layout.CellAt(g.hover.X, g.hover.Y); ok {
		cell = fmt.Sprintf("(%d, %d)", row, col)
	}
	return []string{
		fmt.Sprintf("Session: %s", g.session.ID()),
		fmt.Sprintf("Moves since clear: %d", g.session.MovesSinceClear()),
		fmt.Sprintf("Tray: %d", len(g.session.CurrentTray())),
		fmt.Sprintf("Clearing: %t", g.session.Board().Animating()),
		fmt.Sprintf("Pointer cell: %s", cell),
	}
}

func (g *GameScene) Draw(screen *ebiten.Image) {
	screen.Fill(palette.Background)
	g.BaseScene.Draw(screen)
}
