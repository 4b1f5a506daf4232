package world

import "github.com/l1jgo/arena/internal/core/ecs"

// Obstacle is a static box in the arena. Boundary walls are obstacles too.
type Obstacle struct {
	ID       ecs.EntityID
	Center   Vec3
	Size     Vec3
	Color    uint32
	Boundary bool
}

// Contains reports whether p lies inside the box footprint on the XZ plane.
func (o *Obstacle) Contains(p Vec3) bool {
	hx, hz := o.Size.X/2, o.Size.Z/2
	return p.X >= o.Center.X-hx && p.X <= o.Center.X+hx &&
		p.Z >= o.Center.Z-hz && p.Z <= o.Center.Z+hz
}
