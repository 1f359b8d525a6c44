package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRippleDistance(t *testing.T) {
	assert.Equal(t, 4, RippleDistance(2, 0, true, false))
	assert.Equal(t, 0, RippleDistance(2, 4, true, false))
	assert.Equal(t, 3, RippleDistance(7, 4, false, true))
	assert.Equal(t, 4, RippleDistance(0, 3, true, true))
	assert.Equal(t, 0, RippleDistance(0, 0, false, false))
}

func TestCellClearProgress(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		distance int
		want     float64
	}{
		{name: "not started", progress: 0, distance: 0, want: 0},
		{name: "centre cell halfway", progress: 0.2, distance: 0, want: 0.5},
		{name: "edge cell still waiting", progress: 0.3, distance: 4, want: 0},
		{name: "edge cell done", progress: 1, distance: 4, want: 1},
		{name: "clamped", progress: 2, distance: 0, want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, CellClearProgress(tt.progress, tt.distance), 1e-9)
		})
	}
}

func TestPulseAlpha(t *testing.T) {
	assert.Equal(t, uint8(50), PulseAlpha(0))
	assert.Equal(t, uint8(150), PulseAlpha(500))
	assert.Equal(t, PulseAlpha(250), PulseAlpha(1250))
}

func TestScoreCounter(t *testing.T) {
	c := &ScoreCounter{}
	assert.Equal(t, 1, c.Update(5, 1))
	assert.Equal(t, 2, c.Update(5, 1))

	// a running streak speeds the counter up but never overshoots
	assert.Equal(t, 5, c.Update(5, 4))
	assert.Equal(t, 5, c.Update(5, 4))

	assert.Equal(t, 15, c.Update(100, 10))
	assert.Equal(t, 3, c.Update(3, 1), "a lower score after restart snaps down")

	c.Reset()
	assert.Zero(t, c.Displayed())
}
