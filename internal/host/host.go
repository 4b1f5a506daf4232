// Package host declares the collaborators the simulation is embedded in:
// the scene graph it spawns entity handles into, the controller it reads
// intent from and moves the player through, and the HUD it notifies.
package host

import (
	"github.com/l1jgo/arena/internal/core/ecs"
	"github.com/l1jgo/arena/internal/data"
	"github.com/l1jgo/arena/internal/world"
)

//go:generate go tool mockgen -destination=./mocks/host_mock.go -package=mocks . Scene,HUD

// Kind identifies what an entity handle stands for in the scene.
type Kind uint8

const (
	KindHostile Kind = iota + 1
	KindProjectile
	KindObstacle
	KindWall
)

func (k Kind) String() string {
	switch k {
	case KindHostile:
		return "hostile"
	case KindProjectile:
		return "projectile"
	case KindObstacle:
		return "obstacle"
	case KindWall:
		return "wall"
	}
	return "unknown"
}

// Entity is the spawn description of a scene node.
type Entity struct {
	Kind     Kind
	Position world.Vec3
	Size     world.Vec3 // obstacles and walls
	Color    uint32     // obstacles and walls
	Look     uint32     // hostiles: appearance seed
}

// Transform is the per-frame placement of a live node.
type Transform struct {
	Position world.Vec3
	Yaw      float64
	Pose     world.Pose
}

// EffectKind is a cosmetic cue on a node or on the weapon.
type EffectKind uint8

const (
	EffectMuzzleFlash EffectKind = iota + 1
	EffectMuzzleHide
	EffectDamageFlash // node flashes red
	EffectDamageFade  // node settles to a wear-darkened colour; Amount = wear
)

// Effect is a fire-and-forget presentation cue.
type Effect struct {
	Kind   EffectKind
	Amount float64
}

// Scene is the render/scene-graph collaborator. All calls are
// fire-and-forget; the simulation never reads anything back.
type Scene interface {
	Spawn(id ecs.EntityID, e Entity)
	Place(id ecs.EntityID, t Transform)
	Remove(id ecs.EntityID)
	SetAmbiance(a data.Ambiance, arenaSize float64)
	// Effect applies a cosmetic cue. id is zero for weapon effects.
	Effect(id ecs.EntityID, fx Effect)
}

// HUDState is the numeric HUD readout.
type HUDState struct {
	Health    int
	Ammo      int
	MaxAmmo   int
	Score     int
	Reloading bool
	Level     int
}

// HUD is the UI collaborator.
type HUD interface {
	UpdateHUD(s HUDState)
	ShowLevelBanner(level int)
	ShowGameOver(finalScore int)
	ShowVictory(finalScore int)
}

// Controls is the input collaborator. Intent and Locked are read once per
// tick. MoveRight/MoveForward are the only write path for horizontal
// position, so strafe and heading stay camera-relative.
type Controls interface {
	world.Mover
	Intent() world.Intent
	Locked() bool
	// Facing is the unit look direction, used as the firing direction.
	Facing() world.Vec3
}
