package world

import "github.com/l1jgo/arena/internal/core/ecs"

// Projectile is a point moving in a straight line with no drag.
type Projectile struct {
	ID        ecs.EntityID
	Position  Vec3
	Direction Vec3 // unit length
	Speed     float64

	spent bool
}

// NewProjectile builds a projectile at origin travelling along dir. dir is
// normalized here so callers can pass a raw facing.
func NewProjectile(id ecs.EntityID, origin, dir Vec3, speed float64) *Projectile {
	return &Projectile{
		ID:        id,
		Position:  origin,
		Direction: dir.Normalize(),
		Speed:     speed,
	}
}

// Advance moves the projectile by direction*speed*dt.
func (p *Projectile) Advance(dt float64) {
	p.Position = p.Position.Add(p.Direction.Scale(p.Speed * dt))
}

// Spend marks the projectile for removal at the end of the current pass.
func (p *Projectile) Spend()      { p.spent = true }
func (p *Projectile) Spent() bool { return p.spent }
