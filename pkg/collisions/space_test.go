package collisions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitSpace_At(t *testing.T) {
	h := NewHitSpace(400, 300, 16)
	h.Add(0, 10, 10, 36, 36)
	h.Add(0, 46, 10, 36, 36)
	h.Add(2, 200, 200, 36, 72)

	tests := []struct {
		name      string
		x, y      float64
		wantOwner int
		wantOK    bool
	}{
		{name: "inside first box", x: 20, y: 20, wantOwner: 0, wantOK: true},
		{name: "inside second box of same owner", x: 60, y: 40, wantOwner: 0, wantOK: true},
		{name: "tall box", x: 210, y: 260, wantOwner: 2, wantOK: true},
		{name: "same space cell but outside the box", x: 5, y: 5, wantOK: false},
		{name: "empty area", x: 150, y: 150, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner, ok := h.At(tt.x, tt.y)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantOwner, owner)
			}
		})
	}
}

func TestHitSpace_Clear(t *testing.T) {
	h := NewHitSpace(400, 300, 16)
	h.Add(1, 0, 0, 50, 50)
	assert.Equal(t, 1, h.Len())

	h.Clear()
	assert.Zero(t, h.Len())
	_, ok := h.At(10, 10)
	assert.False(t, ok)

	// the probe is removed after each lookup
	h.Add(3, 0, 0, 50, 50)
	for i := 0; i < 3; i++ {
		owner, ok := h.At(10, 10)
		assert.True(t, ok)
		assert.Equal(t, 3, owner)
	}
	assert.Equal(t, 1, h.Len())
}
