package system

import (
	"time"

	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/host"
)

// CleanupSystem closes a tick: queued scene handles are released (the
// entity world's destroy hook removes them from the scene) and the tick
// counter advances. Phase 8 (Cleanup).
type CleanupSystem struct {
	deps *host.Deps
}

func NewCleanupSystem(deps *host.Deps) *CleanupSystem {
	return &CleanupSystem{deps: deps}
}

func (s *CleanupSystem) Phase() coresys.Phase { return coresys.PhaseCleanup }

func (s *CleanupSystem) Update(_ time.Duration) {
	if s.deps.Entities.Pending() > 0 {
		s.deps.Entities.FlushDestroyQueue()
	}
	s.deps.State.Tick++
}
