package world

import (
	"math"
	"math/rand"
	"time"

	"github.com/l1jgo/arena/internal/core/ecs"
)

// HostileState is the behaviour a hostile runs this tick.
type HostileState uint8

const (
	HostileIdle HostileState = iota
	HostileChase
	HostileAttack
)

func (s HostileState) String() string {
	switch s {
	case HostileIdle:
		return "idle"
	case HostileChase:
		return "chase"
	case HostileAttack:
		return "attack"
	}
	return "unknown"
}

// ParseHostileState maps a state name back to its value.
func ParseHostileState(name string) (HostileState, bool) {
	switch name {
	case "idle":
		return HostileIdle, true
	case "chase":
		return HostileChase, true
	case "attack":
		return HostileAttack, true
	}
	return HostileIdle, false
}

// StateDecider picks a hostile's state from its distance to the player.
// Implementations must be pure functions of distance.
type StateDecider interface {
	Decide(distance float64) HostileState
}

// RangeDecider is the built-in rule: attack below AttackRange, chase below
// ChaseRange, idle otherwise. Both comparisons are strict.
type RangeDecider struct {
	AttackRange float64
	ChaseRange  float64
}

func (r RangeDecider) Decide(d float64) HostileState {
	switch {
	case d < r.AttackRange:
		return HostileAttack
	case d < r.ChaseRange:
		return HostileChase
	default:
		return HostileIdle
	}
}

// HostileTuning holds spawn-time stats shared by every hostile.
type HostileTuning struct {
	Health         int
	SpeedMin       float64
	SpeedMax       float64
	AttackCooldown time.Duration
}

// Pose is the cosmetic arm rotation the renderer draws. It never feeds back
// into simulation state.
type Pose struct {
	LeftArm  float64
	RightArm float64
}

// Hostile is a scripted enemy. Accessed only from the simulation goroutine.
type Hostile struct {
	ID       ecs.EntityID
	Position Vec3
	Yaw      float64

	Health    int
	MaxHealth int
	Speed     float64 // fixed at spawn

	State          HostileState
	LastAttack     time.Time
	AttackCooldown time.Duration

	AnimClock float64
	Look      uint32 // appearance seed for the renderer
	Pose      Pose

	removed bool
}

// NewHostile spawns a hostile at pos with a speed drawn once from the tuning
// range.
func NewHostile(id ecs.EntityID, pos Vec3, t HostileTuning, rng *rand.Rand) *Hostile {
	return &Hostile{
		ID:             id,
		Position:       pos,
		Health:         t.Health,
		MaxHealth:      t.Health,
		Speed:          t.SpeedMin + rng.Float64()*(t.SpeedMax-t.SpeedMin),
		AttackCooldown: t.AttackCooldown,
		AnimClock:      rng.Float64() * 10,
		Look:           rng.Uint32(),
	}
}

// Step runs one tick of the state machine against the player position.
// It reports whether the hostile committed an attack this tick; applying
// the damage is the caller's job.
func (h *Hostile) Step(dt float64, now time.Time, player Vec3, decide StateDecider) bool {
	h.AnimClock += dt
	h.State = decide.Decide(h.Position.Dist(player))

	switch h.State {
	case HostileChase:
		h.face(player)
		step := player.Sub(h.Position).Horizontal().Normalize()
		h.Position = h.Position.Add(step.Scale(h.Speed * dt))
		h.Pose.LeftArm = math.Sin(h.AnimClock*5) * 0.5
		h.Pose.RightArm = -math.Sin(h.AnimClock*5) * 0.5

	case HostileAttack:
		h.face(player)
		if now.Sub(h.LastAttack) > h.AttackCooldown {
			h.LastAttack = now
			h.Pose.RightArm = -math.Pi / 2
			return true
		}

	case HostileIdle:
		h.Pose.LeftArm = math.Sin(h.AnimClock*0.5) * 0.1
		h.Pose.RightArm = math.Sin(h.AnimClock*0.5+0.5) * 0.1
	}
	return false
}

func (h *Hostile) face(target Vec3) {
	h.Yaw = h.Position.YawTo(target)
}

// TakeDamage subtracts amount and reports whether the hostile is now dead.
// Health may go negative; the resolver removes the hostile in the same pass.
func (h *Hostile) TakeDamage(amount int) bool {
	h.Health -= amount
	return h.Health <= 0
}

// Wear returns 0 for an unhurt hostile up to 1 at zero health. The renderer
// darkens the model by it once the hit flash fades.
func (h *Hostile) Wear() float64 {
	if h.MaxHealth <= 0 {
		return 0
	}
	w := 1 - float64(h.Health)/float64(h.MaxHealth)
	return math.Max(0, math.Min(1, w))
}

func (h *Hostile) markRemoved()  { h.removed = true }
func (h *Hostile) Removed() bool { return h.removed }
