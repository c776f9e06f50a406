package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/absorb/internal/audio"
	"github.com/iburimskiy/absorb/internal/config"
	"github.com/iburimskiy/absorb/internal/desktop"
	"github.com/iburimskiy/absorb/internal/game"
)

func main() {
	opts, err := config.ParseFlags("absorb", os.Args[1:], os.Stderr)
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

	var (
		sink  game.EventSink
		meter desktop.Meter
	)
	if !opts.Mute {
		player := audio.NewPlayer()
		if err := player.Init(); err != nil {
			fmt.Printf("Audio initialization failed: %v (continuing without sound)\n", err)
		} else {
			defer player.Close()
			sink, meter = player, player
		}
	}

	g := game.New(float64(opts.Width), float64(opts.Height), opts.Seed, sink)
	app := desktop.New(g, opts.Width, opts.Height, opts.Seed, meter)

	ebiten.SetWindowSize(opts.Width, opts.Height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.FPS)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		desktop.ShowError(err)
		fmt.Fprintf(os.Stderr, "absorb: %v\n", err)
		os.Exit(1)
	}
}
