//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"lifecanvas/internal/app"
	"lifecanvas/internal/config"
	"lifecanvas/internal/session"
	"lifecanvas/internal/throttle"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetPrefix("life: ")
	cfg, err := config.FromArgs("life", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	sess := session.New(cfg.SessionOptions())
	if cfg.Autostart {
		sess.Start()
	}
	game := app.New(sess, throttle.New(cfg.Throttle()))
	rows, cols := cfg.Dimensions()
	log.Printf("grid %dx%d, cell %dpx, speed %v, population %s", rows, cols, cfg.CellSize, cfg.Speed(), sess.Mode())

	w, h := game.WindowSize()
	ebiten.SetWindowTitle("life")
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
