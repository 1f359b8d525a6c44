package game

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/cbodonnell/blockblast/pkg/game/constants"
	"github.com/cbodonnell/blockblast/pkg/game/types"
	"github.com/cbodonnell/blockblast/pkg/log"
	"github.com/cbodonnell/blockblast/pkg/queue"
	"github.com/google/uuid"
)

var (
	// ErrGameOver is returned when a placement is attempted after the game ended.
	ErrGameOver = errors.New("game over")
	// ErrPieceNotInTray is returned when the piece is not currently offered.
	ErrPieceNotInTray = errors.New("piece not in tray")
)

// Session holds a single play-through: the board, the tray of offered pieces
// and the score state.
type Session struct {
	// id identifies the session in logs. It changes on restart.
	id string
	// rng draws tray pieces.
	rng Rand
	// clock stamps clear animations.
	clock types.Clock
	// clearDuration is the clear animation length.
	clearDuration time.Duration
	// shapes is the set of shape types pieces are drawn from.
	shapes []types.ShapeType
	// tags is the palette pieces draw their tag from.
	tags []types.Tag
	// events receives state changes, when set.
	events queue.Queue[Event]

	board           *types.Board
	tray            []types.Piece
	nextPieceID     uint64
	score           int
	multiplier      int
	movesSinceClear int
	gameOver        bool
}

// NewSessionOptions contains options for creating a new Session.
type NewSessionOptions struct {
	// Rand draws tray pieces. Defaults to a source seeded from the current time.
	Rand Rand
	// Clock stamps clear animations. Defaults to time.Now.
	Clock types.Clock
	// ClearDuration is the clear animation length. Defaults to constants.ClearAnimationDuration.
	ClearDuration time.Duration
	// Shapes restricts the drawable shape types. Defaults to types.ShapeTypes().
	Shapes []types.ShapeType
	// Tags is the palette pieces draw from. Defaults to types.DefaultTags.
	Tags []types.Tag
	// Cells is an optional starting layout for the first board.
	Cells *types.Cells
	// Tray is an optional starting tray for the first board.
	Tray []types.Piece
	// Events receives an Event for every state change. Optional.
	Events queue.Queue[Event]
}

func NewSession(opts NewSessionOptions) (*Session, error) {
	s := &Session{
		rng:           opts.Rand,
		clock:         opts.Clock,
		clearDuration: opts.ClearDuration,
		events:        opts.Events,
	}
	if s.rng == nil {
		s.rng = NewRand(time.Now().UnixNano())
	}
	if s.clock == nil {
		s.clock = time.Now
	}

	shapes := opts.Shapes
	if len(shapes) == 0 {
		shapes = types.ShapeTypes()
	}
	for _, shape := range shapes {
		if _, err := types.ShapeOffsets(shape, 0); err != nil {
			return nil, fmt.Errorf("invalid shape set: %w", err)
		}
		if !slices.Contains(s.shapes, shape) {
			s.shapes = append(s.shapes, shape)
		}
	}

	s.tags = opts.Tags
	if len(s.tags) == 0 {
		s.tags = types.DefaultTags
	}
	if slices.Contains(s.tags, types.TagEmpty) {
		return nil, fmt.Errorf("invalid tag palette: contains the empty tag")
	}

	if len(opts.Tray) > constants.TraySize {
		return nil, fmt.Errorf("starting tray holds %d pieces, at most %d allowed", len(opts.Tray), constants.TraySize)
	}

	if err := s.reset(opts.Cells, opts.Tray); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}
	return s, nil
}

// Restart discards the board, tray and score and starts over.
func (s *Session) Restart() error {
	if err := s.reset(nil, nil); err != nil {
		return fmt.Errorf("failed to restart session: %w", err)
	}
	return nil
}

func (s *Session) reset(cells *types.Cells, tray []types.Piece) error {
	s.id = uuid.NewString()
	s.board = types.NewBoard(types.NewBoardOptions{
		Clock:         s.clock,
		ClearDuration: s.clearDuration,
		Cells:         cells,
	})
	s.score = 0
	s.multiplier = constants.StartingMultiplier
	s.movesSinceClear = 0
	s.gameOver = false
	s.nextPieceID = 0
	s.tray = nil
	log.Info("Session %s started", s.id)
	s.publish(Event{Type: EventTypeStarted})

	if len(tray) > 0 {
		s.tray = slices.Clone(tray)
		for _, p := range tray {
			s.nextPieceID = max(s.nextPieceID, p.ID)
		}
	} else if err := s.refillTray(); err != nil {
		return err
	}

	s.evaluate()
	return nil
}

// ID identifies the session.
func (s *Session) ID() string {
	return s.id
}

// Board returns the session's board. Callers may query it but must place
// pieces through CommitPlacement.
func (s *Session) Board() *types.Board {
	return s.board
}

// CurrentTray returns the pieces on offer, in tray order.
func (s *Session) CurrentTray() []types.Piece {
	return slices.Clone(s.tray)
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Multiplier() int {
	return s.multiplier
}

func (s *Session) MovesSinceClear() int {
	return s.movesSinceClear
}

func (s *Session) IsGameOver() bool {
	return s.gameOver
}

// CommitPlacement places a tray piece with its anchor at (row, col). Nothing
// changes when the game is over, the piece is not in the tray, or it does not
// fit.
func (s *Session) CommitPlacement(piece types.Piece, row, col int) error {
	if s.gameOver {
		return fmt.Errorf("failed to commit %s: %w", piece, ErrGameOver)
	}
	idx := s.trayIndex(piece.ID)
	if idx < 0 {
		return fmt.Errorf("failed to commit %s: %w", piece, ErrPieceNotInTray)
	}
	piece = s.tray[idx]

	lines, err := s.board.Place(piece, row, col)
	if err != nil {
		return fmt.Errorf("failed to commit placement: %w", err)
	}

	s.tray = slices.Delete(s.tray, idx, idx+1)
	s.score += piece.CellCount()
	log.Debug("Session %s placed %s at (%d, %d), score %d, lines %v/%v", s.id, piece, row, col, s.score, lines.Rows, lines.Cols)
	s.publish(Event{Type: EventTypePlaced, Piece: piece, Row: row, Col: col, Lines: lines})

	if len(s.tray) == 0 {
		if err := s.refillTray(); err != nil {
			return fmt.Errorf("failed to refill tray: %w", err)
		}
	}

	s.movesSinceClear++
	if s.movesSinceClear > constants.StreakMoves && s.multiplier != constants.StartingMultiplier {
		log.Debug("Session %s resetting multiplier after %d moves without a clear", s.id, s.movesSinceClear)
		s.multiplier = constants.StartingMultiplier
	}

	s.evaluate()
	return nil
}

// ApplyClearResult scores a completed clear of count lines and extends the streak.
func (s *Session) ApplyClearResult(count int) {
	if count <= 0 {
		return
	}
	if s.multiplier == constants.StartingMultiplier {
		s.multiplier = count + 1
	} else {
		s.multiplier += count
	}
	points := count * count * s.multiplier * constants.ClearPointsFactor
	s.score += points
	s.movesSinceClear = 0
	log.Debug("Session %s cleared %d lines, multiplier %d, score %d", s.id, count, s.multiplier, s.score)
	s.publish(Event{Type: EventTypeCleared, Count: count, Points: points})

	s.evaluate()
}

// Tick advances the board's clear animation and scores it once it completes.
// Call it once per frame.
func (s *Session) Tick(now time.Time) (int, types.ClearState) {
	count, state := s.board.AdvanceClearAnimation(now)
	if state == types.ClearDone {
		s.ApplyClearResult(count)
	}
	return count, state
}

// EvaluateGameOver reports whether no tray piece fits anywhere on view.
// An empty tray has no moves.
func (s *Session) EvaluateGameOver(view types.Grid) bool {
	for _, p := range s.tray {
		if view.AnyFit(p) {
			log.Trace("Session %s: %s still fits", s.id, p)
			return false
		}
	}
	return true
}

// evaluate recomputes game over against the board with clearing lines
// treated as already gone. Game over is final.
func (s *Session) evaluate() {
	if s.gameOver {
		return
	}
	if s.EvaluateGameOver(s.board.OccupancySnapshotExcludingAnimating()) {
		s.gameOver = true
		log.Info("Session %s game over with score %d", s.id, s.score)
		s.publish(Event{Type: EventTypeGameOver})
	}
}
