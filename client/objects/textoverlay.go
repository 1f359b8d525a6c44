package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/blockblast/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// TextOverlayObject draws a large title centred horizontally at a fixed height.
type TextOverlayObject struct {
	*BaseObject

	text string
	y    float64
}

func NewTextOverlayObject(id string, text string, y float64) GameObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, nil),
		text:       text,
		y:          y,
	}
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	t := strings.ToUpper(o.text)
	f := fonts.TTFLargeFont
	w, ascent := fonts.TextSize(f, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2-w/2, o.y+ascent)
	op.ColorScale.ScaleWithColor(color.White)
	text.DrawWithOptions(screen, t, f, op)
}
