package world

import "time"

// Kinetics holds the player integration constants.
type Kinetics struct {
	EyeHeight    float64 // floor clamp height of the camera
	Damping      float64 // horizontal velocity decay per second
	Gravity      float64 // units/s², applied every frame
	Acceleration float64 // horizontal acceleration from intent
	JumpImpulse  float64 // vertical velocity added on jump
}

// Mover is the motion-constrained controller the player moves through.
// Horizontal translation is only ever applied via MoveRight/MoveForward so
// the controller's heading stays authoritative.
type Mover interface {
	MoveRight(d float64)
	MoveForward(d float64)
	Position() Vec3
	SetPosition(p Vec3)
}

// Player is the kinetic record plus the combat stats shown on the HUD.
// Accessed only from the simulation goroutine.
type Player struct {
	Position Vec3
	Velocity Vec3 // X = strafe, Z = forward, Y = vertical
	Grounded bool

	Health    int
	MaxHealth int
	Ammo      int
	MaxAmmo   int

	Reloading     bool
	ReloadStarted time.Time
	Recoil        float64 // cosmetic kick, decays to 0

	Score int
	Kills int
}

// Integrate advances the player by dt seconds. dt is expected to be small;
// the caller clamps it.
func (p *Player) Integrate(dt float64, in Intent, k Kinetics, m Mover) {
	p.Velocity.X -= p.Velocity.X * k.Damping * dt
	p.Velocity.Z -= p.Velocity.Z * k.Damping * dt

	if in.Jump && p.Grounded {
		p.Velocity.Y += k.JumpImpulse
		p.Grounded = false
	}
	p.Velocity.Y -= k.Gravity * dt

	dir := in.Direction()
	if in.Forward || in.Backward {
		p.Velocity.Z += dir.Z * k.Acceleration * dt
	}
	if in.Left || in.Right {
		p.Velocity.X += dir.X * k.Acceleration * dt
	}

	m.MoveRight(p.Velocity.X * dt)
	m.MoveForward(p.Velocity.Z * dt)

	pos := m.Position()
	pos.Y += p.Velocity.Y * dt
	if pos.Y < k.EyeHeight {
		p.Velocity.Y = 0
		pos.Y = k.EyeHeight
		p.Grounded = true
	}
	m.SetPosition(pos)
	p.Position = pos
}

// Hurt subtracts damage from health, clamping at 0. It reports whether the
// player is now dead.
func (p *Player) Hurt(amount int) bool {
	p.Health -= amount
	if p.Health <= 0 {
		p.Health = 0
		return true
	}
	return false
}

// Heal adds health, clamping at MaxHealth.
func (p *Player) Heal(amount int) {
	p.Health += amount
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// CanFire reports whether a shot may be taken right now.
func (p *Player) CanFire() bool {
	return p.Ammo > 0 && !p.Reloading
}

// CanReload reports whether a reload may start right now.
func (p *Player) CanReload() bool {
	return !p.Reloading && p.Ammo < p.MaxAmmo
}

// Halt zeroes all velocity, used when the player is placed at a spawn.
func (p *Player) Halt() {
	p.Velocity = Vec3{}
	p.Grounded = false
}
