package main

import (
	"errors"
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/mutant/common"
	"github.com/milk9111/mutant/logger"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and logging")
	watch := flag.Bool("watch", false, "hot reload prefabs from ./prefabs")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "arena", "level name in levels/ (basename, .json optional)")
	flag.Parse()

	logger.Init()
	if *debug {
		logger.SetDebug(true)
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("mutant")
	ebiten.SetTPS(common.TickRate)

	game, err := NewGame(*levelName, *debug, *watch)
	if err != nil {
		logger.Log.WithError(err).Fatal("start game")
	}
	logger.Log.WithField("level", *levelName).Info("game started")

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Log.WithError(err).Fatal("run game")
	}
	logger.Log.Info("game stopped")
}
