package world

import (
	"time"

	"github.com/google/uuid"
)

// Status is the run-level state. GameOver and Victory are terminal until a
// restart.
type Status uint8

const (
	StatusRunning Status = iota
	StatusGameOver
	StatusVictory
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game_over"
	case StatusVictory:
		return "victory"
	}
	return "unknown"
}

// Loadout is the player's starting and maximum stats.
type Loadout struct {
	MaxHealth int
	MaxAmmo   int
}

// State is the simulation's shared record. It is owned by the game loop
// goroutine; each field has a single writer per tick:
//
//	Player.Health        HostileAISystem (damage), DirectorSystem (level bonus)
//	Player.Ammo/Reload*  WeaponSystem, DirectorSystem (level refill)
//	Player.Score/Kills   CombatSystem
//	Player kinetics      MovementSystem, DirectorSystem (spawn reset)
//	Hostiles/Projectiles CombatSystem (removal), DirectorSystem (teardown/spawn),
//	                     WeaponSystem (projectile spawn)
//	Status/Level         DirectorSystem, HostileAISystem (game over)
type State struct {
	RunID  string
	Status Status
	Level  int
	Tick   uint64
	Now    time.Time // frame-coherent clock reading for the current tick

	Player      Player
	Hostiles    []*Hostile
	Projectiles []*Projectile
	Obstacles   []*Obstacle

	// set by the resolver when a hostile dies this tick, cleared by the
	// director once it has checked for level completion
	KillsPending int
}

func NewState(l Loadout) *State {
	s := &State{}
	s.Reset(l)
	return s
}

// Reset starts a fresh run: full health and ammo, zero score, level 0 and a
// new run ID. Entity lists are left to the director's teardown.
func (s *State) Reset(l Loadout) {
	s.RunID = uuid.NewString()
	s.Status = StatusRunning
	s.Level = 0
	s.KillsPending = 0
	s.Player = Player{
		Health:    l.MaxHealth,
		MaxHealth: l.MaxHealth,
		Ammo:      l.MaxAmmo,
		MaxAmmo:   l.MaxAmmo,
	}
}

func (s *State) Running() bool { return s.Status == StatusRunning }

// RemoveHostile marks h for removal; it stays in the slice until
// CompactHostiles so an in-flight scan keeps its indices.
func (s *State) RemoveHostile(h *Hostile) { h.markRemoved() }

// CompactHostiles drops removed hostiles, preserving insertion order.
func (s *State) CompactHostiles() {
	s.Hostiles = compact(s.Hostiles, (*Hostile).Removed)
}

// CompactProjectiles drops spent projectiles, preserving insertion order.
func (s *State) CompactProjectiles() {
	s.Projectiles = compact(s.Projectiles, (*Projectile).Spent)
}

// LiveHostiles counts hostiles that are not marked for removal.
func (s *State) LiveHostiles() int {
	n := 0
	for _, h := range s.Hostiles {
		if !h.Removed() {
			n++
		}
	}
	return n
}

// compact filters xs in place, keeping entries for which gone is false.
func compact[T any](xs []T, gone func(T) bool) []T {
	out := xs[:0]
	for _, x := range xs {
		if !gone(x) {
			out = append(out, x)
		}
	}
	var zero T
	for i := len(out); i < len(xs); i++ {
		xs[i] = zero
	}
	return out
}
