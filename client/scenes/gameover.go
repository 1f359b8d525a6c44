package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/blockblast/client/input"
	"github.com/cbodonnell/blockblast/client/objects"
	"github.com/cbodonnell/blockblast/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
)

type GameOverScene struct {
	*BaseScene

	score     int
	onRestart func() error
	onMenu    func() error
	ui        *ebitenui.UI
}

type GameOverSceneOptions struct {
	// Score is the final score of the session.
	Score int
	// OnRestart starts a new game.
	OnRestart func() error
	// OnMenu returns to the menu.
	OnMenu func() error
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(opts GameOverSceneOptions) (Scene, error) {
	return &GameOverScene{
		BaseScene: NewBaseScene(objects.NewTextOverlayObject("overlay-gameover", "Game Over!", titleY)),
		score:     opts.Score,
		onRestart: opts.OnRestart,
		onMenu:    opts.OnMenu,
	}, nil
}

func (s *GameOverScene) Init() error {
	rootContainer := newRootContainer()
	rootContainer.AddChild(newText(fmt.Sprintf("Score: %d", s.score), color.White))

	restart := newButton("Play Again")
	restart.ClickedEvent.AddHandler(func(args interface{}) {
		if err := s.onRestart(); err != nil {
			log.Error("Failed to restart game: %v", err)
		}
	})
	rootContainer.AddChild(restart)

	menu := newButton("Menu")
	menu.ClickedEvent.AddHandler(func(args interface{}) {
		if err := s.onMenu(); err != nil {
			log.Error("Failed to load menu: %v", err)
		}
	})
	rootContainer.AddChild(menu)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
	return s.BaseScene.Init()
}

func (s *GameOverScene) Update() error {
	if input.IsRestartJustPressed() || input.IsPositiveJustPressed() {
		return s.onRestart()
	}
	if input.IsNegativeJustPressed() {
		return s.onMenu()
	}
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
