// Package animations holds the time curves used to animate the board and score.
package animations

import (
	"math"

	"github.com/cbodonnell/blockblast/pkg/game/constants"
)

const (
	// rippleDelay is the delay per cell of distance from the board centre,
	// as a fraction of the clear animation.
	rippleDelay = 0.1
	// rippleSpeed is how much faster than the whole animation a single cell shrinks.
	rippleSpeed = 2.5
	// pulsePeriodMillis is the period of the clear preview highlight.
	pulsePeriodMillis = 1000
)

// RippleDistance is how far a clearing cell is from the middle of its line.
// Cells on both a clearing row and column use the larger distance.
func RippleDistance(row, col int, onRow, onCol bool) int {
	center := constants.GridSize / 2
	d := 0
	if onRow {
		d = abs(col - center)
	}
	if onCol {
		d = max(d, abs(row-center))
	}
	return d
}

// CellClearProgress returns how far a clearing cell has vanished, from 0 to 1,
// given the progress of the whole clear animation.
func CellClearProgress(progress float64, distance int) float64 {
	delay := float64(distance) * rippleDelay
	return clamp((progress-delay)*rippleSpeed, 0, 1)
}

// PulseAlpha returns the highlight alpha for a clear preview at the given tick in milliseconds.
func PulseAlpha(millis int64) uint8 {
	phase := float64(millis%pulsePeriodMillis) / pulsePeriodMillis
	return uint8(50 + 100*math.Abs(math.Sin(phase*math.Pi)))
}

// ScoreCounter eases a displayed score towards the real one, faster while a
// multiplier streak is running.
type ScoreCounter struct {
	displayed int
}

// Update moves the displayed score one step towards target and returns it.
func (c *ScoreCounter) Update(target, multiplier int) int {
	if c.displayed >= target {
		c.displayed = target
		return c.displayed
	}
	diff := target - c.displayed
	step := max(1, min(max(1, multiplier), diff))
	c.displayed += step
	return c.displayed
}

// Displayed is the score to draw.
func (c *ScoreCounter) Displayed() int {
	return c.displayed
}

// Reset snaps the displayed score to 0.
func (c *ScoreCounter) Reset() {
	c.displayed = 0
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
