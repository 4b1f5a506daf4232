package system

import (
	"math"
	"time"

	"github.com/l1jgo/arena/internal/core/event"
	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/host"
	"github.com/l1jgo/arena/internal/world"
	"go.uber.org/zap"
)

const (
	muzzleFlashTime = 50 * time.Millisecond
	recoilKick      = 0.1
	recoilRecovery  = 5.0 // per second
)

type weaponCmd uint8

const (
	cmdFire weaponCmd = iota + 1
	cmdReload
)

// WeaponSystem applies queued trigger and reload commands, completes
// reloads and settles recoil. Phase 0 (Input).
//
// Commands are queued from the frontend between ticks and applied here so
// ammo and the projectile list are only written inside a tick.
type WeaponSystem struct {
	deps     *host.Deps
	commands []weaponCmd
}

func NewWeaponSystem(deps *host.Deps) *WeaponSystem {
	return &WeaponSystem{deps: deps}
}

func (s *WeaponSystem) Phase() coresys.Phase { return coresys.PhaseInput }

// QueueFire requests a shot on the next tick.
func (s *WeaponSystem) QueueFire() { s.commands = append(s.commands, cmdFire) }

// QueueReload requests a reload on the next tick.
func (s *WeaponSystem) QueueReload() { s.commands = append(s.commands, cmdReload) }

// Drop discards queued commands, used on restart.
func (s *WeaponSystem) Drop() { s.commands = s.commands[:0] }

func (s *WeaponSystem) Update(dt time.Duration) {
	ws := s.deps.State
	p := &ws.Player

	if p.Recoil > 0 {
		p.Recoil = math.Max(0, p.Recoil-dt.Seconds()*recoilRecovery)
	}

	if !ws.Running() || !s.deps.Controls.Locked() {
		s.commands = s.commands[:0]
		return
	}

	s.finishReload()

	for _, c := range s.commands {
		switch c {
		case cmdFire:
			s.fire()
		case cmdReload:
			s.startReload()
		}
	}
	s.commands = s.commands[:0]
}

func (s *WeaponSystem) finishReload() {
	p := &s.deps.State.Player
	if !p.Reloading {
		return
	}
	if s.deps.State.Now.Sub(p.ReloadStarted) < s.deps.Config.Player.ReloadDuration {
		return
	}
	p.Reloading = false
	p.Ammo = p.MaxAmmo
	event.Emit(s.deps.Bus, event.ReloadFinished{Ammo: p.Ammo})
}

func (s *WeaponSystem) fire() {
	ws := s.deps.State
	p := &ws.Player
	if !p.CanFire() {
		event.Emit(s.deps.Bus, event.DryFire{})
		return
	}

	facing := s.deps.Controls.Facing().Normalize()
	origin := s.deps.Controls.Position().Add(facing.Scale(s.deps.Config.Player.MuzzleOffset))

	id := s.deps.Entities.CreateEntity()
	proj := world.NewProjectile(id, origin, facing, s.deps.Config.Player.ProjectileSpeed)
	ws.Projectiles = append(ws.Projectiles, proj)
	s.deps.Scene.Spawn(id, host.Entity{Kind: host.KindProjectile, Position: origin})

	p.Ammo--
	p.Recoil = recoilKick

	scene := s.deps.Scene
	scene.Effect(0, host.Effect{Kind: host.EffectMuzzleFlash})
	s.deps.Tasks.At(ws.Now.Add(muzzleFlashTime), func() {
		scene.Effect(0, host.Effect{Kind: host.EffectMuzzleHide})
	})

	event.Emit(s.deps.Bus, event.ShotFired{
		Projectile: id,
		Origin:     origin,
		Direction:  proj.Direction,
		AmmoLeft:   p.Ammo,
	})
}

func (s *WeaponSystem) startReload() {
	p := &s.deps.State.Player
	if !p.CanReload() {
		return
	}
	p.Reloading = true
	p.ReloadStarted = s.deps.State.Now
	s.deps.Log.Debug("reload started", zap.Int("ammo", p.Ammo))
	event.Emit(s.deps.Bus, event.ReloadStarted{})
}
