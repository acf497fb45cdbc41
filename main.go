package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/platformer/logging"
)

const windowScale = 4

func main() {
	debug := flag.Bool("debug", false, "enable debug overlay and debug logging")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	levelName := flag.String("level", "tower", "level name in levels/ (basename, .json optional)")
	logFile := flag.String("log", "", "also write logs to this rolling file")
	flag.Parse()

	if err := logging.Init(logging.Config{FilePath: *logFile, Debug: *debug}); err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(windowScale*baseWidth, windowScale*baseHeight)
	ebiten.SetWindowTitle("platformer")

	game, err := NewGame(*levelName, *debug)
	if err != nil {
		logging.L().Fatalw("start game", "error", err)
	}
	defer game.Close()

	if err := ebiten.RunGame(game); err != nil {
		logging.L().Errorw("run game", "error", err)
	}
}
