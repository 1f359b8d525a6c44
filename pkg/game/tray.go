package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cbodonnell/blockblast/pkg/game/constants"
	"github.com/cbodonnell/blockblast/pkg/game/types"
	"github.com/cbodonnell/blockblast/pkg/log"
)

// refillTray draws a full tray. Shape types are not repeated within a refill
// until every type in the catalogue has been drawn once.
func (s *Session) refillTray() error {
	used := make(map[types.ShapeType]bool, constants.TraySize)
	tray := make([]types.Piece, 0, constants.TraySize)
	for len(tray) < constants.TraySize {
		available := make([]types.ShapeType, 0, len(s.shapes))
		for _, shape := range s.shapes {
			if !used[shape] {
				available = append(available, shape)
			}
		}
		if len(available) == 0 {
			available = s.shapes
		}

		shape := available[s.rng.IntN(len(available))]
		rotation := s.rng.IntN(constants.Rotations)
		tag := s.tags[s.rng.IntN(len(s.tags))]
		used[shape] = true

		s.nextPieceID++
		piece, err := types.NewPiece(s.nextPieceID, shape, rotation, tag)
		if err != nil {
			return fmt.Errorf("failed to draw tray piece: %w", err)
		}
		tray = append(tray, piece)
	}
	s.tray = tray
	log.Debug("Session %s refilled tray: %s", s.id, trayString(tray))
	s.publish(Event{Type: EventTypeRefilled})
	return nil
}

// trayIndex returns the tray position of the piece with the given ID, or -1.
func (s *Session) trayIndex(id uint64) int {
	return slices.IndexFunc(s.tray, func(p types.Piece) bool {
		return p.ID == id
	})
}

func trayString(tray []types.Piece) string {
	names := make([]string, 0, len(tray))
	for _, p := range tray {
		names = append(names, p.String())
	}
	return "[" + strings.Join(names, ", ") + "]"
}
