package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/absorb/internal/audio"
	"github.com/iburimskiy/absorb/internal/config"
	"github.com/iburimskiy/absorb/internal/game"
	"github.com/iburimskiy/absorb/internal/term"
)

func main() {
	opts, err := config.ParseFlags("absorb-term", os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	logFile, err := config.SetupLogging(opts.Debug, opts.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "absorb-term: %v\n", err)
		os.Exit(1)
	}
}

func run(opts config.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before the stack trace hits stderr
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nabsorb-term crashed: %v\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	var sink game.EventSink
	if !opts.Mute {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			log.Printf("audio initialization failed: %v (continuing without sound)", err)
		} else {
			defer player.Close()
			sink = player
		}
	}

	w, h := term.WorldSize(screen)
	g := game.New(w, h, opts.Seed, sink)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := term.New(screen, g).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
