package system

import (
	"time"

	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/host"
)

// SceneSyncSystem pushes hostile and projectile transforms to the scene.
// Obstacles are static and only sent at spawn. Phase 7 (Output).
type SceneSyncSystem struct {
	deps *host.Deps
}

func NewSceneSyncSystem(deps *host.Deps) *SceneSyncSystem {
	return &SceneSyncSystem{deps: deps}
}

func (s *SceneSyncSystem) Phase() coresys.Phase { return coresys.PhaseOutput }

func (s *SceneSyncSystem) Update(_ time.Duration) {
	ws := s.deps.State
	scene := s.deps.Scene
	for _, h := range ws.Hostiles {
		if h.Removed() {
			continue
		}
		scene.Place(h.ID, host.Transform{Position: h.Position, Yaw: h.Yaw, Pose: h.Pose})
	}
	for _, pr := range ws.Projectiles {
		if pr.Spent() {
			continue
		}
		scene.Place(pr.ID, host.Transform{Position: pr.Position})
	}
}
