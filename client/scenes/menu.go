package scenes

import (
	"errors"
	"image/color"

	"github.com/cbodonnell/blockblast/client/fonts"
	"github.com/cbodonnell/blockblast/client/input"
	"github.com/cbodonnell/blockblast/client/objects"
	"github.com/cbodonnell/blockblast/client/ui"
	"github.com/cbodonnell/blockblast/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// titleY is the height of scene titles.
const titleY = 120

var buttonTextColor = &widget.ButtonTextColor{
	Idle:     color.NRGBA{254, 255, 255, 255},
	Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
}

type MenuScene struct {
	*BaseScene

	onPlay  func() error
	ui      *ebitenui.UI
	playErr string
}

type MenuSceneOptions struct {
	// OnPlay is called when the play button is pressed.
	OnPlay func() error
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene: NewBaseScene(objects.NewTextOverlayObject("menu-title", "Block Blast", titleY)),
		onPlay:    opts.OnPlay,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func newRootContainer() *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    280,
				Left:   300,
				Right:  300,
				Bottom: 90,
			}))),
	)
}

func newButton(label string) *widget.Button {
	buttonImage := &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}

	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text(label, fonts.TTFNormalFont, buttonTextColor),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    10,
			Bottom: 10,
		}),
	)
}

func newText(label string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, fonts.TTFNormalFont, clr),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
}

func (s *MenuScene) renderUI() {
	rootContainer := newRootContainer()

	button := newButton("Play")
	rootContainer.AddChild(button)
	rootContainer.AddChild(newText("Drag pieces onto the board. R restarts.", color.NRGBA{R: 200, G: 200, B: 200, A: 255}))

	if s.playErr != "" {
		rootContainer.AddChild(newText(s.playErr, color.NRGBA{R: 255, G: 0, B: 0, A: 255}))
		s.playErr = ""
	}

	button.ClickedEvent.AddHandler(func(args interface{}) {
		s.play()
	})

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *MenuScene) play() {
	err := s.onPlay()
	if err == nil {
		return
	}
	log.Error("Failed to start game: %v", err)
	var actionableErr *ui.ActionableError
	if errors.As(err, &actionableErr) {
		s.playErr = actionableErr.Message
	} else {
		s.playErr = "Failed to start the game. Please try again."
	}
	s.renderUI()
}

func (s *MenuScene) Update() error {
	if input.IsPositiveJustPressed() {
		s.play()
		return nil
	}
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
