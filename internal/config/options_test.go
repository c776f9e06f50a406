package config

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlagsDefaults(t *testing.T) {
	o, err := ParseFlags("absorb", nil, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if o.Width != WindowWidth || o.Height != WindowHeight {
		t.Fatalf("size = %dx%d, want %dx%d", o.Width, o.Height, WindowWidth, WindowHeight)
	}
	if o.Seed == 0 {
		t.Fatalf("expected seed to be filled from the clock")
	}
	if o.Mute || o.Debug {
		t.Fatalf("expected mute and debug off by default")
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	o, err := ParseFlags("absorb", []string{"-width", "320", "-height", "200", "-seed", "7", "-mute"}, io.Discard)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if o.Width != 320 || o.Height != 200 || o.Seed != 7 || !o.Mute {
		t.Fatalf("unexpected options %+v", o)
	}
}

func TestParseFlagsRejectsBadSize(t *testing.T) {
	_, err := ParseFlags("absorb", []string{"-width", "0"}, io.Discard)
	if !errors.Is(err, ErrBadSize) {
		t.Fatalf("err = %v, want ErrBadSize", err)
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	if _, err := ParseFlags("absorb", []string{"-nope"}, io.Discard); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestSetupLoggingDisabled(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	f, err := SetupLogging(false, "")
	if err != nil || f != nil {
		t.Fatalf("SetupLogging(false) = %v, %v; want nil, nil", f, err)
	}
	if log.Writer() != io.Discard {
		t.Fatalf("expected log output to be io.Discard")
	}
}

func TestSetupLoggingEnabled(t *testing.T) {
	defer log.SetOutput(os.Stderr)

	path := filepath.Join(t.TempDir(), "logs", "absorb.log")
	f, err := SetupLogging(true, path)
	if err != nil {
		t.Fatalf("SetupLogging: %v", err)
	}
	defer f.Close()

	log.Println("hello")
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat log: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("expected log file to contain content")
	}
}

func TestDefaultTuningMatchesConstants(t *testing.T) {
	tu := DefaultTuning()
	if tu.PopSize != PopSize {
		t.Fatalf("PopSize = %v, want %v", tu.PopSize, PopSize)
	}
	if tu.AbsorbSpeed <= 0 || tu.ThrustSpeed <= 0 || tu.PlayerRadius <= 0 {
		t.Fatalf("tuning must start positive: %+v", tu)
	}
}
