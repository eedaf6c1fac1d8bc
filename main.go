package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/padhop/levels"
	"github.com/milk9111/padhop/logging"
	"github.com/milk9111/padhop/sim"
	"go.uber.org/zap"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging and collider outlines")
	levelName := flag.String("level", levels.Default, "level name in levels/ (basename, .yaml optional)")
	watch := flag.Bool("watch", false, "reload the level when files in levels/ change")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	lvl, err := levels.Load(*levelName)
	if err != nil {
		logger.Fatal("load level", zap.String("level", *levelName), zap.Error(err))
	}

	simulation, err := sim.New(lvl, sim.WithLogger(logger))
	if err != nil {
		logger.Fatal("build simulation", zap.String("level", *levelName), zap.Error(err))
	}

	var watcher *levels.Watcher
	if *watch {
		watcher, err = levels.NewWatcher("levels")
		if err != nil {
			logger.Warn("level watcher disabled", zap.Error(err))
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetTPS(lvl.Physics.TickRate)
	ebiten.SetWindowSize(lvl.Window.Width, lvl.Window.Height)
	ebiten.SetWindowTitle("padhop")

	game := NewGame(simulation, *levelName, watcher, logger, *debug)
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal("run game", zap.Error(err))
	}
}
