package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/l1jgo/arena/internal/config"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.log")
	log, err := newLogger(config.LoggingConfig{Level: "debug", Format: "console", File: path})
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	log.Debug("level started")
	_ = log.Sync()

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(raw)
	if !strings.Contains(out, "DEBUG") || !strings.Contains(out, "level started") {
		t.Fatalf("log file = %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Fatal("colour codes written to the log file")
	}
}

func TestNewLoggerBadLevelFallsBackToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.log")
	log, err := newLogger(config.LoggingConfig{Level: "loud", Format: "json", File: path})
	if err != nil {
		t.Fatalf("newLogger: %v", err)
	}
	log.Debug("hidden")
	log.Info("shown")
	_ = log.Sync()

	raw, _ := os.ReadFile(path)
	if strings.Contains(string(raw), "hidden") || !strings.Contains(string(raw), "shown") {
		t.Fatalf("log file = %q", raw)
	}
}

func TestPumpEventsStopsWhenLoopExits(t *testing.T) {
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer sim.Fini()

	out := make(chan tcell.Event) // nobody reads: the game loop has returned
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		pumpEvents(sim, out, done)
		close(finished)
	}()

	if err := sim.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	close(done)

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("event pump blocked after the loop exited")
	}
}
