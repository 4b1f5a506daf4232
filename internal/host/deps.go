package host

import (
	"math/rand"

	"github.com/l1jgo/arena/internal/config"
	"github.com/l1jgo/arena/internal/core/clock"
	"github.com/l1jgo/arena/internal/core/ecs"
	"github.com/l1jgo/arena/internal/core/event"
	"github.com/l1jgo/arena/internal/core/sched"
	"github.com/l1jgo/arena/internal/data"
	"github.com/l1jgo/arena/internal/world"
	"go.uber.org/zap"
)

// Deps holds shared dependencies injected into all simulation systems.
type Deps struct {
	Config   *config.Config
	Log      *zap.Logger
	Clock    clock.Clock
	Entities *ecs.World
	State    *world.State
	Bus      *event.Bus
	Tasks    *sched.Queue
	Levels   *data.LevelTable
	Decider  world.StateDecider
	Rng      *rand.Rand

	Scene    Scene
	HUD      HUD
	Controls Controls
}

// Kinetics returns the player integration constants from config.
func (d *Deps) Kinetics() world.Kinetics {
	p := d.Config.Player
	return world.Kinetics{
		EyeHeight:    p.EyeHeight,
		Damping:      p.Damping,
		Gravity:      p.Gravity,
		Acceleration: p.Acceleration,
		JumpImpulse:  p.JumpImpulse,
	}
}

// HostileTuning returns spawn-time hostile stats from config.
func (d *Deps) HostileTuning() world.HostileTuning {
	h := d.Config.Hostile
	return world.HostileTuning{
		Health:         h.Health,
		SpeedMin:       h.SpeedMin,
		SpeedMax:       h.SpeedMax,
		AttackCooldown: h.AttackCooldown,
	}
}

// Loadout returns the player's starting stats from config.
func (d *Deps) Loadout() world.Loadout {
	return world.Loadout{
		MaxHealth: d.Config.Player.MaxHealth,
		MaxAmmo:   d.Config.Player.MaxAmmo,
	}
}
