package system

import (
	"time"

	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/host"
)

// EffectSystem runs cosmetic tasks that have come due on the virtual
// clock. Phase 6 (Effects).
type EffectSystem struct {
	deps *host.Deps
}

func NewEffectSystem(deps *host.Deps) *EffectSystem {
	return &EffectSystem{deps: deps}
}

func (s *EffectSystem) Phase() coresys.Phase { return coresys.PhaseEffects }

func (s *EffectSystem) Update(_ time.Duration) {
	s.deps.Tasks.RunDue(s.deps.State.Now)
}
