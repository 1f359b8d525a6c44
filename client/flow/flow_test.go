package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameMode_String(t *testing.T) {
	assert.Equal(t, "Menu", GameModeMenu.String())
	assert.Equal(t, "Play", GameModePlay.String())
	assert.Equal(t, "Over", GameModeOver.String())
	assert.Equal(t, "Unknown", GameMode(42).String())
}
