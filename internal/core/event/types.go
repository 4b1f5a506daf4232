package event

import (
	"github.com/l1jgo/arena/internal/core/ecs"
	"github.com/l1jgo/arena/internal/world"
)

// Presentation events. Emitted by systems during tick N, delivered to
// subscribers (audio cues, debug log) in tick N+1. Nothing that affects
// authoritative state may subscribe.

type ShotFired struct {
	Projectile ecs.EntityID
	Origin     world.Vec3
	Direction  world.Vec3
	AmmoLeft   int
}

// DryFire is a trigger pull with an empty magazine or mid-reload.
type DryFire struct{}

type ReloadStarted struct{}

type ReloadFinished struct {
	Ammo int
}

type HostileHit struct {
	Hostile ecs.EntityID
	Health  int
}

type HostileKilled struct {
	Hostile ecs.EntityID
	Score   int
}

type PlayerHurt struct {
	Health int
}

type LevelStarted struct {
	Level    int
	Name     string
	Hostiles int
}

type RunEnded struct {
	RunID   string
	Victory bool
	Score   int
	Level   int
}
