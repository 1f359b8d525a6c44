package game

import (
	"fmt"
	"strings"

	"github.com/cbodonnell/blockblast/client/flow"
	"github.com/cbodonnell/blockblast/client/input"
	"github.com/cbodonnell/blockblast/client/layout"
	"github.com/cbodonnell/blockblast/client/palette"
	"github.com/cbodonnell/blockblast/client/scenes"
	gamesession "github.com/cbodonnell/blockblast/pkg/game"
	"github.com/cbodonnell/blockblast/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// sessionOptions configures every session started from the menu.
	sessionOptions gamesession.NewSessionOptions
	// palette colours the pieces.
	palette *palette.Palette
	// mode is the current game mode.
	mode flow.GameMode
	// scene is the current scene.
	scene scenes.Scene
}

type NewGameOptions struct {
	Debug   bool
	Session gamesession.NewSessionOptions
	Palette *palette.Palette
}

func NewGame(opts NewGameOptions) (*Game, error) {
	g := &Game{
		debug:          opts.Debug,
		sessionOptions: opts.Session,
		palette:        opts.Palette,
	}
	if g.palette == nil {
		g.palette = palette.New()
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

// Mode is the current game mode.
func (g *Game) Mode() flow.GameMode {
	return g.mode
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) setMode(mode flow.GameMode) {
	log.Debug("Game mode %s -> %s", g.mode, mode)
	g.mode = mode
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		OnPlay: g.loadGame,
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.setMode(flow.GameModeMenu)
	return nil
}

func (g *Game) loadGame() error {
	gameScene, err := scenes.NewGameScene(scenes.NewGameSceneOptions{
		Session:    g.sessionOptions,
		Palette:    g.palette,
		OnGameOver: g.loadGameOver,
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %w", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.setMode(flow.GameModePlay)
	return nil
}

func (g *Game) loadGameOver(score int) error {
	gameOver, err := scenes.NewGameOverScene(scenes.GameOverSceneOptions{
		Score:     score,
		OnRestart: g.loadGame,
		OnMenu:    g.loadMenu,
	})
	if err != nil {
		return fmt.Errorf("failed to create game over scene: %v", err)
	}
	if err := g.SetScene(gameOver); err != nil {
		return fmt.Errorf("failed to set game over scene: %v", err)
	}
	g.setMode(flow.GameModeOver)
	return nil
}

func (g *Game) Update() error {
	// Handle input
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	// Update the current scene
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleInput() error {
	if input.IsDebugJustPressed() {
		g.debug = !g.debug
	}

	switch g.mode {
	case flow.GameModePlay:
		if input.IsNegativeJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	lines := []string{
		fmt.Sprintf("FPS: %0.1f", ebiten.ActualFPS()),
		fmt.Sprintf("TPS: %0.1f", ebiten.ActualTPS()),
		fmt.Sprintf("Mode: %s", g.mode),
	}
	if d, ok := g.scene.(interface{ DebugLines() []string }); ok {
		lines = append(lines, d.DebugLines()...)
	}

	ebitenutil.DebugPrintAt(screen, debugText(lines), 0, layout.ScreenHeight-20*len(lines)-20)
}

// debugText indents each overlay line below a blank first line.
func debugText(lines []string) string {
	return "\n   " + strings.Join(lines, "\n   ")
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return layout.ScreenWidth, layout.ScreenHeight
}
