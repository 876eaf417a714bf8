package main

import (
	"flag"
	"os"

	"github.com/milk9111/platformer/config"
	"github.com/milk9111/platformer/diagnostics"
)

func main() {
	configPath := flag.String("config", "", "optional settings file (yaml, json or toml)")
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional)")
	scriptName := flag.String("script", "", "input script in prefabs/scripts")
	ticks := flag.Int("ticks", 0, "number of steps to run")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		bootLogger := diagnostics.NewLogger(os.Stderr, "info")
		bootLogger.Fatal().Err(err).Msg("load settings")
	}
	if *levelName != "" {
		settings.Level = *levelName
	}
	if *scriptName != "" {
		settings.Script = *scriptName
	}
	if *ticks > 0 {
		settings.Ticks = *ticks
	}
	logger := diagnostics.NewLogger(os.Stderr, settings.LogLevel)

	summary, err := Run(settings, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("simulate")
	}
	summary.Log(logger)
}
