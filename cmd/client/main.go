package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cbodonnell/blockblast/client/game"
	"github.com/cbodonnell/blockblast/client/layout"
	"github.com/cbodonnell/blockblast/client/palette"
	"github.com/cbodonnell/blockblast/pkg/config"
	gamesession "github.com/cbodonnell/blockblast/pkg/game"
	"github.com/cbodonnell/blockblast/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	logLevel := flag.String("log-level", cfg.LogLevel, "Log level")
	seed := flag.Int64("seed", cfg.Seed, "Piece generation seed, 0 picks one")
	debug := flag.Bool("debug", cfg.Debug, "Show the debug overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	cfg.Seed = *seed
	resolvedSeed, err := cfg.ResolveSeed()
	if err != nil {
		panic(fmt.Sprintf("Failed to resolve seed: %v", err))
	}
	log.Info("Using seed %d", resolvedSeed)

	g, err := game.NewGame(game.NewGameOptions{
		Debug: *debug,
		Session: gamesession.NewSessionOptions{
			Rand:          gamesession.NewRand(resolvedSeed),
			ClearDuration: cfg.ClearDuration,
		},
		Palette: palette.New(),
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(int(layout.ScreenWidth*cfg.WindowScale), int(layout.ScreenHeight*cfg.WindowScale))
	ebiten.SetWindowTitle("Block Blast")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}
}
