// Package game assembles the simulation: shared deps, the phase-ordered
// system runner and the frame timer. The host drives it by calling Step
// once per frame from a single goroutine.
package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/l1jgo/arena/internal/config"
	"github.com/l1jgo/arena/internal/core/clock"
	"github.com/l1jgo/arena/internal/core/ecs"
	"github.com/l1jgo/arena/internal/core/event"
	"github.com/l1jgo/arena/internal/core/sched"
	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/data"
	"github.com/l1jgo/arena/internal/host"
	"github.com/l1jgo/arena/internal/system"
	"github.com/l1jgo/arena/internal/world"
	"go.uber.org/zap"
)

// Options configures a Game. Config, Levels, Scene, HUD and Controls are
// required.
type Options struct {
	Config   *config.Config
	Log      *zap.Logger
	Clock    clock.Clock        // defaults to clock.Monotonic
	Levels   *data.LevelTable
	Decider  world.StateDecider // defaults to the configured range rule
	Rng      *rand.Rand         // defaults to a source seeded from Sim.Seed or the clock
	Scene    host.Scene
	HUD      host.HUD
	Controls host.Controls
}

// Game is the simulation core. Not safe for concurrent use.
type Game struct {
	deps   *host.Deps
	runner *coresys.Runner
	timer  *clock.FrameTimer

	weapon   *system.WeaponSystem
	director *system.DirectorSystem
	hud      *system.HUDSystem

	// simulated time; only advances while a tick runs
	epoch   time.Time
	elapsed time.Duration
	paused  bool
}

func New(opts Options) (*Game, error) {
	if opts.Config == nil {
		return nil, errors.New("game: config is required")
	}
	if opts.Levels == nil || opts.Levels.Count() == 0 {
		return nil, errors.New("game: level table is required")
	}
	if opts.Scene == nil || opts.HUD == nil || opts.Controls == nil {
		return nil, errors.New("game: scene, hud and controls are required")
	}
	cfg := opts.Config

	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	clk := opts.Clock
	if clk == nil {
		clk = clock.Monotonic{}
	}
	rng := opts.Rng
	if rng == nil {
		seed := cfg.Sim.Seed
		if seed == 0 {
			seed = clk.Now().UnixNano()
		}
		rng = rand.New(rand.NewSource(seed))
	}
	decider := opts.Decider
	if decider == nil {
		decider = world.RangeDecider{
			AttackRange: cfg.Hostile.AttackRange,
			ChaseRange:  cfg.Hostile.ChaseRange,
		}
	}

	deps := &host.Deps{
		Config:   cfg,
		Log:      log,
		Clock:    clk,
		Entities: ecs.NewWorld(),
		Bus:      event.NewBus(),
		Tasks:    sched.NewQueue(),
		Levels:   opts.Levels,
		Decider:  decider,
		Rng:      rng,
		Scene:    opts.Scene,
		HUD:      opts.HUD,
		Controls: opts.Controls,
	}
	deps.State = world.NewState(deps.Loadout())
	deps.Entities.OnDestroy(opts.Scene.Remove)

	g := &Game{
		deps:     deps,
		runner:   coresys.NewRunner(),
		timer:    clock.NewFrameTimer(cfg.Sim.MaxDelta),
		weapon:   system.NewWeaponSystem(deps),
		director: system.NewDirectorSystem(deps),
		hud:      system.NewHUDSystem(deps),
		epoch:    clk.Now(),
	}
	deps.State.Now = g.epoch

	g.runner.Register(g.weapon)
	g.runner.Register(system.NewEventDispatchSystem(deps.Bus))
	g.runner.Register(system.NewMovementSystem(deps))
	g.runner.Register(system.NewHostileAISystem(deps))
	g.runner.Register(system.NewCombatSystem(deps))
	g.runner.Register(g.director)
	g.runner.Register(system.NewEffectSystem(deps))
	g.runner.Register(system.NewSceneSyncSystem(deps))
	g.runner.Register(g.hud)
	g.runner.Register(system.NewCleanupSystem(deps))

	return g, nil
}

// Step runs one frame. While the controls are not locked the simulation
// is frozen: nothing runs and simulated time does not advance. It reports
// whether a tick ran.
func (g *Game) Step() bool {
	now := g.deps.Clock.Now()
	if !g.deps.Controls.Locked() {
		if !g.paused {
			g.paused = true
			g.timer.Reset()
		}
		return false
	}
	g.paused = false

	dt := g.timer.Next(now)
	g.elapsed += dt
	g.deps.State.Now = g.epoch.Add(g.elapsed)
	g.runner.Tick(dt)
	return true
}

// Fire queues a trigger pull for the next tick. Ignored unless the run is
// live and the controls are locked.
func (g *Game) Fire() {
	if g.accepting() {
		g.weapon.QueueFire()
	}
}

// Reload queues a reload for the next tick, with the same gating as Fire.
func (g *Game) Reload() {
	if g.accepting() {
		g.weapon.QueueReload()
	}
}

func (g *Game) accepting() bool {
	return g.deps.State.Running() && g.deps.Controls.Locked()
}

// Restart begins a new run: full stats, zero score and level 0. Entities
// of the previous run leave the scene immediately.
func (g *Game) Restart() {
	ws := g.deps.State
	ws.Reset(g.deps.Loadout())
	g.weapon.Drop()
	g.deps.Bus.Drop()
	g.deps.Tasks.Clear()
	g.director.SetupLevel(0)
	g.deps.Entities.FlushDestroyQueue()
	// the readout is current even while paused before the first tick
	g.hud.Invalidate()
	g.hud.Update(0)
	g.timer.Reset()
	g.deps.Log.Info("run started",
		zap.String("run", ws.RunID),
		zap.Int("levels", g.deps.Levels.Count()),
	)
}

// SetLevels swaps the level table. The current level keeps running; the
// new table is used from the next level setup on.
func (g *Game) SetLevels(t *data.LevelTable) {
	if t == nil || t.Count() == 0 {
		return
	}
	g.deps.Levels = t
	g.deps.Log.Info("level table replaced", zap.Int("levels", t.Count()))
}

// State exposes the simulation record for read-only use by frontends.
func (g *Game) State() *world.State { return g.deps.State }

// Bus exposes the presentation event bus for subscribers (audio, logs).
func (g *Game) Bus() *event.Bus { return g.deps.Bus }

// Now is the current simulated time.
func (g *Game) Now() time.Time { return g.deps.State.Now }
