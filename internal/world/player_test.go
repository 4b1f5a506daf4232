package world

import (
	"math"
	"testing"
)

var stockKinetics = Kinetics{
	EyeHeight:    1.6,
	Damping:      10,
	Gravity:      980,
	Acceleration: 400,
	JumpImpulse:  350,
}

// axisMover moves along fixed axes: right is +X, forward is +Z.
type axisMover struct {
	pos          Vec3
	right, fwd   float64
	rightCalls   int
	forwardCalls int
}

func (m *axisMover) MoveRight(d float64)   { m.pos.X += d; m.right += d; m.rightCalls++ }
func (m *axisMover) MoveForward(d float64) { m.pos.Z += d; m.fwd += d; m.forwardCalls++ }
func (m *axisMover) Position() Vec3        { return m.pos }
func (m *axisMover) SetPosition(p Vec3)    { m.pos = p }

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestIntegrateFloorClamp(t *testing.T) {
	m := &axisMover{pos: V(0, 1.6, 0)}
	var p Player

	p.Integrate(0.016, Intent{}, stockKinetics, m)

	if !p.Grounded {
		t.Error("not grounded after touching the floor")
	}
	if p.Velocity.Y != 0 {
		t.Errorf("vy = %v, want 0", p.Velocity.Y)
	}
	if m.pos.Y != 1.6 || p.Position.Y != 1.6 {
		t.Errorf("y = %v (record %v), want 1.6", m.pos.Y, p.Position.Y)
	}
}

func TestIntegrateJumpOnlyWhenGrounded(t *testing.T) {
	m := &axisMover{pos: V(0, 1.6, 0)}
	p := Player{Grounded: true}
	dt := 0.01

	p.Integrate(dt, Intent{Jump: true}, stockKinetics, m)

	wantVY := 350 - 980*dt
	if !near(p.Velocity.Y, wantVY) {
		t.Fatalf("vy = %v, want %v", p.Velocity.Y, wantVY)
	}
	if !near(m.pos.Y, 1.6+wantVY*dt) {
		t.Fatalf("y = %v, want %v", m.pos.Y, 1.6+wantVY*dt)
	}
	if p.Grounded {
		t.Fatal("still grounded mid-jump")
	}

	// airborne: holding jump must not add another impulse
	vy := p.Velocity.Y
	p.Integrate(dt, Intent{Jump: true}, stockKinetics, m)
	if !near(p.Velocity.Y, vy-980*dt) {
		t.Errorf("vy = %v, want %v (no double jump)", p.Velocity.Y, vy-980*dt)
	}
}

func TestIntegrateAcceleration(t *testing.T) {
	m := &axisMover{pos: V(0, 1.6, 0)}
	var p Player
	dt := 0.1

	p.Integrate(dt, Intent{Forward: true}, stockKinetics, m)

	if !near(p.Velocity.Z, 40) {
		t.Fatalf("vz = %v, want 40", p.Velocity.Z)
	}
	if !near(m.fwd, 4) || m.right != 0 {
		t.Errorf("moved forward %v right %v, want 4 and 0", m.fwd, m.right)
	}
	if m.rightCalls != 1 || m.forwardCalls != 1 {
		t.Errorf("mover calls right=%d forward=%d, want 1 each", m.rightCalls, m.forwardCalls)
	}
}

func TestIntegrateDiagonalIsNormalized(t *testing.T) {
	m := &axisMover{pos: V(0, 1.6, 0)}
	var p Player

	p.Integrate(0.1, Intent{Forward: true, Right: true}, stockKinetics, m)

	want := 40 / math.Sqrt2
	if !near(p.Velocity.Z, want) || !near(p.Velocity.X, want) {
		t.Errorf("velocity = %+v, want %v on both axes", p.Velocity, want)
	}
}

func TestIntegrateOpposedKeysCancel(t *testing.T) {
	m := &axisMover{pos: V(0, 1.6, 0)}
	var p Player

	p.Integrate(0.1, Intent{Left: true, Right: true}, stockKinetics, m)

	if p.Velocity.X != 0 {
		t.Errorf("vx = %v, want 0", p.Velocity.X)
	}
}

func TestIntegrateDamping(t *testing.T) {
	m := &axisMover{pos: V(0, 1.6, 0)}
	p := Player{Velocity: V(10, 0, -10)}

	p.Integrate(0.01, Intent{}, stockKinetics, m)

	if !near(p.Velocity.X, 9) || !near(p.Velocity.Z, -9) {
		t.Fatalf("velocity = %+v, want (9, _, -9)", p.Velocity)
	}
	if !near(m.right, 0.09) || !near(m.fwd, -0.09) {
		t.Errorf("moved right %v forward %v, want 0.09 and -0.09", m.right, m.fwd)
	}
}

func TestPlayerStatClamps(t *testing.T) {
	p := Player{Health: 15, MaxHealth: 100, Ammo: 0, MaxAmmo: 30}

	if p.Hurt(10) {
		t.Fatal("dead at 5 health")
	}
	if !p.Hurt(10) || p.Health != 0 {
		t.Fatalf("health = %d after overkill, want 0 and dead", p.Health)
	}

	p.Health = 80
	p.Heal(50)
	if p.Health != 100 {
		t.Errorf("health = %d after heal, want 100", p.Health)
	}

	if p.CanFire() {
		t.Error("can fire with an empty magazine")
	}
	if !p.CanReload() {
		t.Error("cannot reload an empty magazine")
	}
	p.Ammo = 30
	if p.CanReload() {
		t.Error("can reload a full magazine")
	}
	p.Ammo = 10
	p.Reloading = true
	if p.CanFire() || p.CanReload() {
		t.Error("fire or reload allowed mid-reload")
	}
}
