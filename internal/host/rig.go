package host

import (
	"math"

	"github.com/l1jgo/arena/internal/world"
)

const maxPitch = math.Pi/2 - 0.01

// Rig is a first-person camera controller. Yaw 0 looks down +Z; yaw grows
// toward +X. Moves are relative to yaw only, so looking up or down never
// changes walking speed.
//
// A frontend owns the rig: it feeds key state through SetIntent, mouse or
// key turning through Turn/Look, and pointer capture through SetLocked.
type Rig struct {
	pos    world.Vec3
	yaw    float64
	pitch  float64
	locked bool
	intent world.Intent
}

func NewRig(pos world.Vec3) *Rig {
	return &Rig{pos: pos}
}

func (r *Rig) Intent() world.Intent      { return r.intent }
func (r *Rig) SetIntent(in world.Intent) { r.intent = in }
func (r *Rig) Locked() bool              { return r.locked }
func (r *Rig) SetLocked(v bool)          { r.locked = v }
func (r *Rig) Position() world.Vec3      { return r.pos }
func (r *Rig) SetPosition(p world.Vec3)  { r.pos = p }
func (r *Rig) Yaw() float64              { return r.yaw }
func (r *Rig) Pitch() float64            { return r.pitch }

// Turn rotates the heading by d radians, wrapping into (-π, π].
func (r *Rig) Turn(d float64) {
	r.yaw = math.Remainder(r.yaw+d, 2*math.Pi)
}

// Look tilts the view by d radians, clamped short of straight up or down.
func (r *Rig) Look(d float64) {
	r.pitch = math.Max(-maxPitch, math.Min(maxPitch, r.pitch+d))
}

// Face sets heading and tilt directly.
func (r *Rig) Face(yaw, pitch float64) {
	r.yaw = 0
	r.Turn(yaw)
	r.pitch = 0
	r.Look(pitch)
}

// Facing is the unit view direction including pitch.
func (r *Rig) Facing() world.Vec3 {
	cp := math.Cos(r.pitch)
	return world.Vec3{
		X: math.Sin(r.yaw) * cp,
		Y: math.Sin(r.pitch),
		Z: math.Cos(r.yaw) * cp,
	}
}

// Forward is the horizontal unit heading.
func (r *Rig) Forward() world.Vec3 {
	return world.Vec3{X: math.Sin(r.yaw), Z: math.Cos(r.yaw)}
}

// Right is the horizontal unit vector a quarter turn clockwise of Forward.
func (r *Rig) Right() world.Vec3 {
	return world.Vec3{X: math.Cos(r.yaw), Z: -math.Sin(r.yaw)}
}

func (r *Rig) MoveForward(d float64) {
	r.pos = r.pos.Add(r.Forward().Scale(d))
}

func (r *Rig) MoveRight(d float64) {
	r.pos = r.pos.Add(r.Right().Scale(d))
}
