// Package palette maps piece tags to the colours they are drawn in.
package palette

import (
	"image/color"

	"github.com/cbodonnell/blockblast/pkg/game/types"
)

var (
	Background = color.RGBA{R: 24, G: 26, B: 34, A: 255}
	GridLine   = color.RGBA{R: 70, G: 74, B: 90, A: 255}
	EmptyCell  = color.RGBA{R: 38, G: 41, B: 54, A: 255}
	TrayBorder = color.RGBA{R: 90, G: 94, B: 110, A: 255}
	Highlight  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Multiplier = color.RGBA{R: 255, G: 200, B: 60, A: 255}
	Text       = color.White
)

// Palette maps tags to colours.
type Palette struct {
	colors   map[types.Tag]color.RGBA
	fallback color.RGBA
}

// New returns the palette for types.DefaultTags.
func New() *Palette {
	return &Palette{
		colors: map[types.Tag]color.RGBA{
			1: {R: 230, G: 70, B: 70, A: 255},  // red
			2: {R: 80, G: 200, B: 100, A: 255}, // green
			3: {R: 70, G: 120, B: 230, A: 255}, // blue
			4: {R: 240, G: 210, B: 70, A: 255}, // yellow
			5: {R: 220, G: 80, B: 200, A: 255}, // magenta
			6: {R: 70, G: 210, B: 220, A: 255}, // cyan
			7: {R: 245, G: 150, B: 50, A: 255}, // orange
			8: {R: 150, G: 90, B: 220, A: 255}, // purple
		},
		fallback: color.RGBA{R: 200, G: 200, B: 200, A: 255},
	}
}

// Color returns the colour for tag. Unknown tags get a neutral grey and
// TagEmpty gets the empty cell colour.
func (p *Palette) Color(tag types.Tag) color.RGBA {
	if tag == types.TagEmpty {
		return EmptyCell
	}
	if c, ok := p.colors[tag]; ok {
		return c
	}
	return p.fallback
}

// Faded returns the colour for tag with its alpha scaled by f in [0, 1].
func (p *Palette) Faded(tag types.Tag, f float64) color.RGBA {
	c := p.Color(tag)
	f = max(0, min(1, f))
	// colours are premultiplied
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
