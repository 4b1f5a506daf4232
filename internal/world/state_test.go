package world

import (
	"math"
	"testing"
)

func TestProjectileAdvanceIsExact(t *testing.T) {
	origin := V(1, 1.6, -2)
	p := NewProjectile(1, origin, V(3, 0, 4), 20)
	const n, dt = 25, 0.016

	for i := 0; i < n; i++ {
		p.Advance(dt)
	}

	want := origin.Add(V(0.6, 0, 0.8).Scale(20 * n * dt))
	if p.Position.Dist(want) > 1e-9 {
		t.Errorf("position = %+v, want %+v", p.Position, want)
	}
	if math.Abs(p.Direction.Len()-1) > 1e-12 {
		t.Errorf("direction not unit: %+v", p.Direction)
	}
}

func TestCompactPreservesOrder(t *testing.T) {
	s := NewState(Loadout{MaxHealth: 100, MaxAmmo: 30})
	for i := 1; i <= 5; i++ {
		s.Hostiles = append(s.Hostiles, &Hostile{ID: 0, Health: i})
		s.Projectiles = append(s.Projectiles, NewProjectile(0, Vec3{}, V(0, 0, 1), 1))
	}
	s.RemoveHostile(s.Hostiles[1])
	s.RemoveHostile(s.Hostiles[3])
	s.Projectiles[0].Spend()
	s.Projectiles[4].Spend()

	if got := s.LiveHostiles(); got != 3 {
		t.Fatalf("LiveHostiles = %d before compaction, want 3", got)
	}
	s.CompactHostiles()
	s.CompactProjectiles()

	var order []int
	for _, h := range s.Hostiles {
		order = append(order, h.Health)
	}
	if len(order) != 3 || order[0] != 1 || order[1] != 3 || order[2] != 5 {
		t.Errorf("hostile order after compaction = %v, want [1 3 5]", order)
	}
	if len(s.Projectiles) != 3 {
		t.Errorf("projectiles = %d, want 3", len(s.Projectiles))
	}
}

func TestStateReset(t *testing.T) {
	s := NewState(Loadout{MaxHealth: 100, MaxAmmo: 30})
	first := s.RunID
	s.Status = StatusGameOver
	s.Level = 2
	s.Player.Health = 0
	s.Player.Score = 700
	s.Player.Ammo = 3

	s.Reset(Loadout{MaxHealth: 100, MaxAmmo: 30})

	if s.RunID == "" || s.RunID == first {
		t.Errorf("run id not renewed: %q", s.RunID)
	}
	if !s.Running() || s.Level != 0 {
		t.Errorf("status %s level %d, want running level 0", s.Status, s.Level)
	}
	p := s.Player
	if p.Health != 100 || p.Ammo != 30 || p.Score != 0 {
		t.Errorf("player = %+v, want full stats and zero score", p)
	}
}

func TestIntentDirection(t *testing.T) {
	if d := (Intent{}).Direction(); !d.IsZero() {
		t.Errorf("idle direction = %+v, want zero", d)
	}
	d := Intent{Backward: true, Left: true}.Direction()
	if math.Abs(d.Len()-1) > 1e-12 || d.X >= 0 || d.Z >= 0 {
		t.Errorf("back-left direction = %+v", d)
	}
}
