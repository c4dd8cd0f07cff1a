package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/cubescroller/prefabs"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and overlay")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "cube.yaml", "level prefab in prefabs/")
	watch := flag.Bool("watch", false, "reload prefabs and scripts when they change on disk")
	scale := flag.Float64("scale", 1, "draw scale for the face view")
	flag.Parse()

	logger := newLogger(*debug)
	defer func() { _ = logger.Sync() }()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("cubescroller")

	game, err := NewGame(*levelName, *debug, *scale, logger)
	if err != nil {
		logger.Fatal("start", zap.String("level", *levelName), zap.Error(err))
	}
	defer game.Close()

	if *watch {
		if err := game.Watch(prefabs.Dir); err != nil {
			logger.Warn("prefab watch disabled", zap.Error(err))
		}
	}

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run", zap.Error(err))
	}
}

func newLogger(debug bool) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
