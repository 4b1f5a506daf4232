package system

import (
	"time"

	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/host"
)

// HUDSystem sends the HUD readout when it changed since the last send.
// Phase 7 (Output).
type HUDSystem struct {
	deps *host.Deps
	last host.HUDState
	sent bool
}

func NewHUDSystem(deps *host.Deps) *HUDSystem {
	return &HUDSystem{deps: deps}
}

func (s *HUDSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *HUDSystem) Update(_ time.Duration) {
	p := &s.deps.State.Player
	cur := host.HUDState{
		Health:    p.Health,
		Ammo:      p.Ammo,
		MaxAmmo:   p.MaxAmmo,
		Score:     p.Score,
		Reloading: p.Reloading,
		Level:     s.deps.State.Level + 1,
	}
	if s.sent && cur == s.last {
		return
	}
	s.deps.HUD.UpdateHUD(cur)
	s.last = cur
	s.sent = true
}

// Invalidate forces the next Update to send.
func (s *HUDSystem) Invalidate() { s.sent = false }
