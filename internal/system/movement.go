package system

import (
	"time"

	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/host"
)

// MovementSystem integrates the player's kinetic model against the
// controller. Phase 2 (Movement).
type MovementSystem struct {
	deps *host.Deps
}

func NewMovementSystem(deps *host.Deps) *MovementSystem {
	return &MovementSystem{deps: deps}
}

func (s *MovementSystem) Phase() coresys.Phase { return coresys.PhaseMovement }

func (s *MovementSystem) Update(dt time.Duration) {
	ws := s.deps.State
	if !ws.Running() {
		return
	}
	ctl := s.deps.Controls
	ws.Player.Integrate(dt.Seconds(), ctl.Intent(), s.deps.Kinetics(), ctl)
}
