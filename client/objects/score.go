package objects

import (
	"fmt"

	"github.com/cbodonnell/blockblast/client/animations"
	"github.com/cbodonnell/blockblast/client/fonts"
	"github.com/cbodonnell/blockblast/client/layout"
	"github.com/cbodonnell/blockblast/client/palette"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// ScoreObject draws the score counting up to the session score, and the
// current multiplier next to it.
type ScoreObject struct {
	*BaseObject

	score   func() (score, multiplier int)
	counter animations.ScoreCounter
}

func NewScoreObject(id string, score func() (int, int)) *ScoreObject {
	return &ScoreObject{
		BaseObject: NewBaseObject(id, nil),
		score:      score,
	}
}

func (o *ScoreObject) Update() error {
	score, multiplier := o.score()
	o.counter.Update(score, multiplier)
	return nil
}

// Reset starts the counter from 0 for a new session.
func (o *ScoreObject) Reset() {
	o.counter.Reset()
}

// Displayed is the score currently drawn.
func (o *ScoreObject) Displayed() int {
	return o.counter.Displayed()
}

func (o *ScoreObject) Draw(screen *ebiten.Image) {
	_, multiplier := o.score()

	t := fmt.Sprintf("Score: %d", o.Displayed())
	w, ascent := fonts.TextSize(fonts.TTFNormalFont, t)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(layout.GridOffsetX, layout.GridOffsetY/2+ascent/2)
	op.ColorScale.ScaleWithColor(palette.Text)
	text.DrawWithOptions(screen, t, fonts.TTFNormalFont, op)

	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(layout.GridOffsetX+w+20, layout.GridOffsetY/2+ascent/2)
	op.ColorScale.ScaleWithColor(palette.Multiplier)
	text.DrawWithOptions(screen, multiplierLabel(multiplier), fonts.TTFNormalFont, op)
}

// multiplierLabel is drawn next to the score at every multiplier, x1 included.
func multiplierLabel(multiplier int) string {
	return fmt.Sprintf("x%d", multiplier)
}
