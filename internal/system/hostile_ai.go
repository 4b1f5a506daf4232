package system

import (
	"time"

	"github.com/l1jgo/arena/internal/core/event"
	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/host"
	"github.com/l1jgo/arena/internal/world"
	"go.uber.org/zap"
)

const attackPoseTime = 200 * time.Millisecond

// HostileAISystem steps every hostile's state machine and applies melee
// damage to the player. Phase 3 (Agents).
//
// The state decision comes from deps.Decider (the Lua rule when scripting
// is enabled); movement, facing and the cooldown gate stay in Go.
type HostileAISystem struct {
	deps *host.Deps
}

func NewHostileAISystem(deps *host.Deps) *HostileAISystem {
	return &HostileAISystem{deps: deps}
}

func (s *HostileAISystem) Phase() coresys.Phase { return coresys.PhaseAgents }

func (s *HostileAISystem) Update(dt time.Duration) {
	ws := s.deps.State
	if !ws.Running() {
		return
	}
	secs := dt.Seconds()
	target := ws.Player.Position

	for _, h := range ws.Hostiles {
		if h.Removed() {
			continue
		}
		if !h.Step(secs, ws.Now, target, s.deps.Decider) {
			continue
		}
		s.scheduleRest(h)
		if s.strike(h) {
			return
		}
	}
}

// strike applies one attack to the player and reports whether it ended
// the run.
func (s *HostileAISystem) strike(h *world.Hostile) bool {
	ws := s.deps.State
	p := &ws.Player
	dead := p.Hurt(s.deps.Config.Hostile.AttackDamage)
	event.Emit(s.deps.Bus, event.PlayerHurt{Health: p.Health})
	if !dead {
		return false
	}

	ws.Status = world.StatusGameOver
	s.deps.Log.Info("player killed",
		zap.String("run", ws.RunID),
		zap.Stringer("by", h.ID),
		zap.Int("level", ws.Level),
		zap.Int("score", p.Score),
	)
	s.deps.HUD.ShowGameOver(p.Score)
	event.Emit(s.deps.Bus, event.RunEnded{
		RunID: ws.RunID,
		Score: p.Score,
		Level: ws.Level,
	})
	return true
}

// scheduleRest returns the attacking arm to rest once the wind-up has
// been shown.
func (s *HostileAISystem) scheduleRest(h *world.Hostile) {
	s.deps.Tasks.At(s.deps.State.Now.Add(attackPoseTime), func() {
		if h.Removed() || h.State != world.HostileAttack {
			return
		}
		h.Pose = world.Pose{}
	})
}
