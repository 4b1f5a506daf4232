package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/l1jgo/arena/internal/config"
	"github.com/l1jgo/arena/internal/core/clock"
	"github.com/l1jgo/arena/internal/data"
	"github.com/l1jgo/arena/internal/frontend/audio"
	"github.com/l1jgo/arena/internal/frontend/term"
	"github.com/l1jgo/arena/internal/game"
	"github.com/l1jgo/arena/internal/host"
	"github.com/l1jgo/arena/internal/scripting"
	"github.com/l1jgo/arena/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner() {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m               ARENA  v0.1.0               \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m        first-person arena shooter         \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printWarn(msg string) {
	fmt.Printf("  \033[33m!\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main game logic ───────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/arena.toml"
	if p := os.Getenv("ARENA_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner()

	// 3. Load level data
	printSection("data")

	levels, err := data.LoadLevelTable(cfg.Levels.Path)
	if err != nil {
		return fmt.Errorf("load level table: %w", err)
	}
	printStat("levels", levels.Count())

	var watcher *data.Watcher
	if cfg.Levels.Watch {
		watcher, err = data.NewWatcher(cfg.Levels.Path)
		if err != nil {
			return fmt.Errorf("watch level table: %w", err)
		}
		defer watcher.Close()
		printOK("level table hot reload on")
	}

	// 4. Hostile decisions: Lua when scripted, the range rule otherwise
	rangeRule := world.RangeDecider{
		AttackRange: cfg.Hostile.AttackRange,
		ChaseRange:  cfg.Hostile.ChaseRange,
	}
	var decider world.StateDecider = rangeRule
	if cfg.Scripting.Enabled {
		engine, err := scripting.NewEngine(cfg.Scripting.Dir, log)
		if err != nil {
			return fmt.Errorf("lua engine: %w", err)
		}
		defer engine.Close()
		if engine.HasFunction("hostile_state") {
			decider = engine.HostileDecider(rangeRule)
			printOK("lua hostile script loaded")
		} else {
			printWarn("hostile_state not defined, using the range rule")
		}
	}

	// 5. Terminal
	printReady(fmt.Sprintf("game loop starting (tick: %s)", cfg.Sim.TickRate))
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	if cfg.Input.Mouse {
		screen.EnableMouse(tcell.MouseButtonEvents)
	}
	screen.HideCursor()

	clk := clock.Monotonic{}
	view := term.NewScreen(screen, clk)
	rig := host.NewRig(world.Vec3{})
	input := term.NewInput(rig, clk, cfg.Input)

	// 6. Simulation
	g, err := game.New(game.Options{
		Config:   cfg,
		Log:      log,
		Clock:    clk,
		Levels:   levels,
		Decider:  decider,
		Scene:    view,
		HUD:      view,
		Controls: rig,
	})
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	// 7. Audio is optional; a box without a sound device runs silent
	if cfg.Audio.Enabled {
		player, err := audio.Open(cfg.Audio, log)
		if err != nil {
			log.Warn("audio unavailable", zap.Error(err))
		} else {
			defer player.Close()
			player.Subscribe(g.Bus())
		}
	}

	g.Restart()

	// 8. Event pump and signals
	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(screen, eventChan, done)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Sim.TickRate)
	defer ticker.Stop()

	var reloadCh <-chan string
	var watchErrCh <-chan error
	if watcher != nil {
		reloadCh = watcher.Events
		watchErrCh = watcher.Errors
	}

	log.Info("game loop started",
		zap.Duration("tick", cfg.Sim.TickRate),
		zap.Int("levels", levels.Count()),
	)

	for {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			switch input.Handle(ev) {
			case term.ActionFire:
				g.Fire()
			case term.ActionReload:
				g.Reload()
			case term.ActionRestart:
				g.Restart()
			case term.ActionQuit:
				log.Info("quit requested", zap.String("run", g.State().RunID))
				return nil
			}

		case <-ticker.C:
			input.Update()
			g.Step()
			view.Draw(term.View{
				Player: rig.Position(),
				Yaw:    rig.Yaw(),
				Locked: rig.Locked(),
			})

		case path := <-reloadCh:
			tbl, err := data.LoadLevelTable(path)
			if err != nil {
				log.Warn("level table reload rejected", zap.String("path", path), zap.Error(err))
				continue
			}
			g.SetLevels(tbl)

		case err := <-watchErrCh:
			log.Warn("level table watcher", zap.Error(err))

		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			return nil
		}
	}
}

// pumpEvents forwards terminal events until the screen is finalized or
// done closes.
func pumpEvents(screen tcell.Screen, out chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case out <- ev:
		case <-done:
			return
		}
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		if cfg.File != "" {
			zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		}
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	// the terminal belongs to the game once the screen is up
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}
