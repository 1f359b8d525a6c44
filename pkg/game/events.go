package game

import "github.com/cbodonnell/blockblast/pkg/game/types"

// EventType identifies what happened in a session.
type EventType int

const (
	// EventTypeStarted is published when a session starts or restarts.
	EventTypeStarted EventType = iota
	// EventTypePlaced is published after a piece is committed to the board.
	EventTypePlaced
	// EventTypeRefilled is published when the tray is refilled.
	EventTypeRefilled
	// EventTypeCleared is published when a clear is scored.
	EventTypeCleared
	// EventTypeGameOver is published once when no tray piece fits.
	EventTypeGameOver
)

func (t EventType) String() string {
	switch t {
	case EventTypeStarted:
		return "started"
	case EventTypePlaced:
		return "placed"
	case EventTypeRefilled:
		return "refilled"
	case EventTypeCleared:
		return "cleared"
	case EventTypeGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event describes a session state change. Score and Multiplier are the values
// after the change.
type Event struct {
	Type       EventType
	SessionID  string
	Score      int
	Multiplier int

	// Piece, Row, Col and Lines are set for EventTypePlaced.
	Piece types.Piece
	Row   int
	Col   int
	Lines types.Lines

	// Count and Points are set for EventTypeCleared.
	Count  int
	Points int
}

func (s *Session) publish(e Event) {
	if s.events == nil {
		return
	}
	e.SessionID = s.id
	e.Score = s.score
	e.Multiplier = s.multiplier
	s.events.Enqueue(e)
}
