package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"lifecanvas/internal/config"
	"lifecanvas/internal/session"
	"lifecanvas/internal/term"
	"lifecanvas/internal/throttle"
)

func main() {
	log.SetPrefix("life-term: ")
	cfg, err := config.FromArgs("life-term", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("failed to init screen: %v", err)
	}

	w, h := screen.Size()
	rows, cols := term.GridSize(w, h)
	opts := cfg.SessionOptions()
	opts.Rows, opts.Cols, opts.CellSize = rows, cols, 1
	sess := session.New(opts)
	if cfg.Autostart {
		sess.Start()
	}

	var msgs []string
	fe := term.New(screen, sess, throttle.New(cfg.Throttle()))
	fe.SetLogger(func(format string, args ...any) {
		// The screen owns the terminal until Fini.
		msgs = append(msgs, fmt.Sprintf(format, args...))
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = fe.Run(ctx)
	screen.Fini()
	for _, m := range msgs {
		log.Print(m)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Printf("exited at generation %d, population %d", sess.Generation(), sess.Population())
}
