package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dasher/common"
	"github.com/milk9111/dasher/levels"
	"github.com/milk9111/dasher/logging"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	levelName := flag.String("level", levels.Default, "level name in levels/ (basename, .json optional)")
	watch := flag.Bool("watch", false, "reload prefabs/ and levels/ when they change on disk")
	logFile := flag.String("log", "", "write logs to a rotating file instead of stderr")
	flag.Parse()

	if err := logging.Init(*logFile, *debug); err != nil {
		log.Fatal(err)
	}
	defer logging.Sync()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth/2, common.BaseHeight/2)
	ebiten.SetWindowTitle("dasher")
	ebiten.SetTPS(common.TPS)

	game, err := NewGame(*levelName, *debug, *watch)
	if err != nil {
		logging.Log.Fatalf("start: %v", err)
	}

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil {
		logging.Log.Fatalf("run: %v", err)
	}
}
