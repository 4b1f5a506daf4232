package system

import (
	"time"

	"github.com/l1jgo/arena/internal/core/event"
	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/host"
	"github.com/l1jgo/arena/internal/world"
	"go.uber.org/zap"
)

const damageFlashTime = 100 * time.Millisecond

// CombatSystem advances projectiles and resolves projectile × hostile hits.
// Phase 4 (Combat).
//
// Removal is mark-and-compact: a hit spends the projectile and, on a kill,
// marks the hostile; both slices are compacted once the scan is done, so no
// entry is skipped or visited twice.
type CombatSystem struct {
	deps *host.Deps
}

func NewCombatSystem(deps *host.Deps) *CombatSystem {
	return &CombatSystem{deps: deps}
}

func (s *CombatSystem) Phase() coresys.Phase { return coresys.PhaseCombat }

func (s *CombatSystem) Update(dt time.Duration) {
	ws := s.deps.State
	if !ws.Running() {
		return
	}
	secs := dt.Seconds()
	maxRange := s.deps.Config.Combat.MaxRange

	for _, pr := range ws.Projectiles {
		if pr.Spent() {
			continue
		}
		pr.Advance(secs)
		if s.resolve(pr) {
			continue
		}
		if pr.Position.Dist(ws.Player.Position) > maxRange {
			s.spend(pr)
		}
	}

	ws.CompactProjectiles()
	ws.CompactHostiles()
}

// resolve tests pr against every live hostile in insertion order. The first
// hostile within the hit radius takes the damage; the projectile is spent.
func (s *CombatSystem) resolve(pr *world.Projectile) bool {
	ws := s.deps.State
	cc := s.deps.Config.Combat

	for _, h := range ws.Hostiles {
		if h.Removed() {
			continue
		}
		if pr.Position.Dist(h.Position) >= cc.HitRadius {
			continue
		}

		killed := h.TakeDamage(cc.ProjectileDamage)
		s.spend(pr)
		event.Emit(s.deps.Bus, event.HostileHit{Hostile: h.ID, Health: h.Health})

		if killed {
			s.kill(h)
		} else {
			s.flash(h)
		}
		return true
	}
	return false
}

func (s *CombatSystem) kill(h *world.Hostile) {
	ws := s.deps.State
	p := &ws.Player

	ws.RemoveHostile(h)
	s.deps.Entities.MarkForDestruction(h.ID)

	p.Score += s.deps.Config.Combat.KillScore
	p.Kills++
	ws.KillsPending++

	s.deps.Log.Debug("hostile killed",
		zap.Stringer("hostile", h.ID),
		zap.Int("score", p.Score),
		zap.Int("remaining", ws.LiveHostiles()),
	)
	event.Emit(s.deps.Bus, event.HostileKilled{Hostile: h.ID, Score: p.Score})
}

// flash tints a surviving hostile red, then darkens it by its wear.
func (s *CombatSystem) flash(h *world.Hostile) {
	scene := s.deps.Scene
	scene.Effect(h.ID, host.Effect{Kind: host.EffectDamageFlash})
	s.deps.Tasks.At(s.deps.State.Now.Add(damageFlashTime), func() {
		if h.Removed() {
			return
		}
		scene.Effect(h.ID, host.Effect{Kind: host.EffectDamageFade, Amount: h.Wear()})
	})
}

func (s *CombatSystem) spend(pr *world.Projectile) {
	pr.Spend()
	s.deps.Entities.MarkForDestruction(pr.ID)
}
