package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/diagnostics"
)

func main() {
	configPath := flag.String("config", "", "optional settings file (yaml, json or toml)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	debug := flag.Bool("debug", false, "show the debug overlay")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		bootLogger := diagnostics.NewLogger(os.Stderr, "info")
		bootLogger.Fatal().Err(err).Msg("load settings")
	}
	if *levelName != "" {
		settings.Level = *levelName
	}
	if *debug {
		settings.Debug = true
	}
	logger := diagnostics.NewLogger(os.Stderr, settings.LogLevel)

	game, err := NewGame(settings, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("start game")
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(
		int(float64(settings.Window.Width)*settings.Window.Scale),
		int(float64(settings.Window.Height)*settings.Window.Scale),
	)
	ebiten.SetWindowTitle("platformer")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, errQuit) {
		logger.Error().Err(err).Msg("run game")
	}
}
