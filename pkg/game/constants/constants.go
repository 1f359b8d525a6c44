package constants

import "time"

const (
	// GridSize is the number of cells along each side of the board
	GridSize = 8
	// TraySize is the number of pieces offered after each refill
	TraySize = 3
	// Rotations is the number of quarter turns a piece can be drawn with
	Rotations = 4

	// ClearAnimationDuration is how long completed lines stay on the board before they are removed
	ClearAnimationDuration = time.Second

	// StreakMoves is how many placements without a clear are tolerated before the multiplier resets
	StreakMoves = 3
	// StartingMultiplier is the multiplier of a fresh session
	StartingMultiplier = 1
	// ClearPointsFactor scales the quadratic line clear bonus
	ClearPointsFactor = 10
)
