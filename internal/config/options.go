package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// Options are the process-level settings shared by both front ends.
type Options struct {
	Width   int
	Height  int
	Seed    int64
	Mute    bool
	Debug   bool
	LogFile string
}

var ErrBadSize = errors.New("width and height must be positive")

// ParseFlags parses args (without the program name) into Options.
// A zero seed is replaced by the current time.
func ParseFlags(name string, args []string, stderr io.Writer) (Options, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o Options
	fs.IntVar(&o.Width, "width", WindowWidth, "viewport width in pixels")
	fs.IntVar(&o.Height, "height", WindowHeight, "viewport height in pixels")
	fs.Int64Var(&o.Seed, "seed", 0, "random seed (0 picks one from the clock)")
	fs.BoolVar(&o.Mute, "mute", false, "disable sound effects")
	fs.BoolVar(&o.Debug, "debug", false, "write a debug log")
	fs.StringVar(&o.LogFile, "log", filepath.Join("logs", "absorb.log"), "debug log path")

	if err := fs.Parse(args); err != nil {
		return Options{}, err
	}
	if o.Width <= 0 || o.Height <= 0 {
		return Options{}, fmt.Errorf("%w: got %dx%d", ErrBadSize, o.Width, o.Height)
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o, nil
}

// SetupLogging routes the standard logger to path when debug is set and
// discards it otherwise. The returned file, if any, must be closed by the caller.
func SetupLogging(debug bool, path string) (*os.File, error) {
	if !debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil, fmt.Errorf("open log file: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	return f, nil
}
