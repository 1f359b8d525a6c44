package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsPositiveJustPressed returns a boolean value indicating whether the generic positive input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsPositiveJustPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return true
	}
	gamepadIDs := ebiten.AppendGamepadIDs(nil)
	for _, g := range gamepadIDs {
		if ebiten.IsStandardGamepadLayoutAvailable(g) {
			if inpututil.IsStandardGamepadButtonJustPressed(g, ebiten.StandardGamepadButtonRightBottom) {
				return true
			}
		} else if inpututil.IsGamepadButtonJustPressed(g, ebiten.GamepadButton0) {
			return true
		}
	}
	return false
}

// IsNegativeJustPressed returns a boolean value indicating whether the generic negative input is just pressed.
// This is used to handle both keyboard and touch inputs.
func IsNegativeJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// IsRestartJustPressed reports whether the restart key was just pressed.
func IsRestartJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// IsDebugJustPressed reports whether the debug overlay toggle was just pressed.
func IsDebugJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

// PointerState is the pointer as seen in one tick.
type PointerState struct {
	X, Y         float64
	JustPressed  bool
	Pressed      bool
	JustReleased bool
}

// Pointer merges the left mouse button and the first touch into a single
// pointer, so dragging works the same with both.
type Pointer struct {
	touchID  ebiten.TouchID
	touching bool
	touchIDs []ebiten.TouchID
}

// Update samples the pointer. Call it once per tick.
func (p *Pointer) Update() PointerState {
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			x, y := inpututil.TouchPositionInPreviousTick(p.touchID)
			return PointerState{X: float64(x), Y: float64(y), JustReleased: true}
		}
		x, y := ebiten.TouchPosition(p.touchID)
		return PointerState{X: float64(x), Y: float64(y), Pressed: true}
	}

	p.touchIDs = inpututil.AppendJustPressedTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		p.touchID = p.touchIDs[0]
		p.touching = true
		x, y := ebiten.TouchPosition(p.touchID)
		return PointerState{X: float64(x), Y: float64(y), JustPressed: true, Pressed: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:            float64(x),
		Y:            float64(y),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}
