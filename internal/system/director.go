package system

import (
	"math"
	"time"

	"github.com/l1jgo/arena/internal/core/event"
	coresys "github.com/l1jgo/arena/internal/core/system"
	"github.com/l1jgo/arena/internal/data"
	"github.com/l1jgo/arena/internal/host"
	"github.com/l1jgo/arena/internal/world"
	"go.uber.org/zap"
)

const (
	wallHeight    = 10.0
	wallThickness = 1.0
	spawnAttempts = 64
)

// DirectorSystem owns level sequencing: teardown, spawn, advance and
// victory. Phase 5 (PostUpdate).
//
// The completion check runs once per tick when the resolver reported a
// kill. The outcome only depends on the live hostile count after the
// combat pass, so several kills in one tick still resolve the level once.
type DirectorSystem struct {
	deps *host.Deps
}

func NewDirectorSystem(deps *host.Deps) *DirectorSystem {
	return &DirectorSystem{deps: deps}
}

func (s *DirectorSystem) Phase() coresys.Phase { return coresys.PhasePostUpdate }

func (s *DirectorSystem) Update(_ time.Duration) {
	ws := s.deps.State
	if !ws.Running() {
		ws.KillsPending = 0
		return
	}
	if ws.KillsPending == 0 && len(ws.Hostiles) > 0 {
		return
	}
	ws.KillsPending = 0
	s.CheckLevelComplete()
}

// CheckLevelComplete advances or ends the run if no hostile is left. It
// reports whether the level was resolved.
func (s *DirectorSystem) CheckLevelComplete() bool {
	ws := s.deps.State
	if !ws.Running() || ws.LiveHostiles() > 0 {
		return false
	}
	p := &ws.Player

	if s.deps.Levels.IsLast(ws.Level) {
		ws.Status = world.StatusVictory
		s.deps.Log.Info("run won",
			zap.String("run", ws.RunID),
			zap.Int("score", p.Score),
			zap.Int("kills", p.Kills),
		)
		s.deps.HUD.ShowVictory(p.Score)
		event.Emit(s.deps.Bus, event.RunEnded{
			RunID:   ws.RunID,
			Victory: true,
			Score:   p.Score,
			Level:   ws.Level,
		})
		return true
	}

	p.Ammo = p.MaxAmmo
	p.Reloading = false
	p.Heal(s.deps.Config.Player.LevelHealthBonus)
	s.SetupLevel(ws.Level + 1)
	return true
}

// SetupLevel tears down the current level and builds level index. An index
// outside the level table is logged and ignored.
func (s *DirectorSystem) SetupLevel(index int) bool {
	lvl, ok := s.deps.Levels.Get(index)
	if !ok {
		s.deps.Log.Error("level not found",
			zap.Int("level", index),
			zap.Int("count", s.deps.Levels.Count()),
		)
		return false
	}
	ws := s.deps.State

	s.teardown()
	ws.Level = index
	ws.KillsPending = 0

	s.deps.Scene.SetAmbiance(lvl.Ambiance, lvl.ArenaSize)
	s.buildWalls(lvl)
	s.buildObstacles(lvl)
	s.spawnHostiles(lvl)
	s.placePlayer(lvl)

	s.deps.Log.Info("level started",
		zap.String("run", ws.RunID),
		zap.Int("level", index),
		zap.String("name", lvl.Name),
		zap.Int("hostiles", len(ws.Hostiles)),
	)
	s.deps.HUD.ShowLevelBanner(index + 1)
	event.Emit(s.deps.Bus, event.LevelStarted{
		Level:    index,
		Name:     lvl.Name,
		Hostiles: len(ws.Hostiles),
	})
	return true
}

// teardown queues every level entity for removal. Handles are released at
// the next destroy-queue flush.
func (s *DirectorSystem) teardown() {
	ws := s.deps.State
	ent := s.deps.Entities

	for _, h := range ws.Hostiles {
		ws.RemoveHostile(h)
		ent.MarkForDestruction(h.ID)
	}
	for _, pr := range ws.Projectiles {
		pr.Spend()
		ent.MarkForDestruction(pr.ID)
	}
	for _, o := range ws.Obstacles {
		ent.MarkForDestruction(o.ID)
	}
	ws.CompactHostiles()
	ws.CompactProjectiles()
	ws.Obstacles = ws.Obstacles[:0]
}

func (s *DirectorSystem) buildWalls(lvl *data.LevelConfig) {
	h := lvl.HalfExtent()
	size := lvl.ArenaSize
	y := wallHeight / 2
	walls := []struct {
		center world.Vec3
		size   world.Vec3
	}{
		{world.V(0, y, -h), world.V(size, wallHeight, wallThickness)},
		{world.V(0, y, h), world.V(size, wallHeight, wallThickness)},
		{world.V(-h, y, 0), world.V(wallThickness, wallHeight, size)},
		{world.V(h, y, 0), world.V(wallThickness, wallHeight, size)},
	}
	for _, w := range walls {
		s.addObstacle(&world.Obstacle{
			Center:   w.center,
			Size:     w.size,
			Color:    uint32(lvl.Ambiance.WallColor),
			Boundary: true,
		})
	}
}

func (s *DirectorSystem) buildObstacles(lvl *data.LevelConfig) {
	for _, o := range lvl.Obstacles {
		s.addObstacle(&world.Obstacle{
			Center: world.V(o.X, o.Height/2, o.Z),
			Size:   world.V(o.Width, o.Height, o.Depth),
			Color:  uint32(o.Color),
		})
	}
}

func (s *DirectorSystem) addObstacle(o *world.Obstacle) {
	o.ID = s.deps.Entities.CreateEntity()
	s.deps.State.Obstacles = append(s.deps.State.Obstacles, o)
	kind := host.KindObstacle
	if o.Boundary {
		kind = host.KindWall
	}
	s.deps.Scene.Spawn(o.ID, host.Entity{
		Kind:     kind,
		Position: o.Center,
		Size:     o.Size,
		Color:    o.Color,
	})
}

func (s *DirectorSystem) spawnHostiles(lvl *data.LevelConfig) {
	ws := s.deps.State
	tuning := s.deps.HostileTuning()
	y := s.deps.Config.Hostile.Height

	for i := 0; i < lvl.HostileCount; i++ {
		x, z := s.spawnPoint(lvl)
		id := s.deps.Entities.CreateEntity()
		h := world.NewHostile(id, world.V(x, y, z), tuning, s.deps.Rng)
		ws.Hostiles = append(ws.Hostiles, h)
		s.deps.Scene.Spawn(id, host.Entity{
			Kind:     host.KindHostile,
			Position: h.Position,
			Look:     h.Look,
		})
	}
}

// spawnPoint samples a floor position inside the arena minus the wall
// margin, rejecting candidates within the exclusion square around the
// player spawn. After spawnAttempts rejections the last candidate is used.
func (s *DirectorSystem) spawnPoint(lvl *data.LevelConfig) (x, z float64) {
	lc := s.deps.Config.Levels
	extent := math.Max(0, lvl.HalfExtent()-lc.WallMargin)
	excl := lc.SpawnExclusion

	for range spawnAttempts {
		x = (s.deps.Rng.Float64()*2 - 1) * extent
		z = (s.deps.Rng.Float64()*2 - 1) * extent
		if math.Abs(x-lvl.Spawn.X) >= excl || math.Abs(z-lvl.Spawn.Z) >= excl {
			return x, z
		}
	}
	s.deps.Log.Warn("spawn exclusion not satisfiable, placing hostile anyway",
		zap.String("level", lvl.Name),
		zap.Float64("extent", extent),
		zap.Float64("exclusion", excl),
	)
	return x, z
}

func (s *DirectorSystem) placePlayer(lvl *data.LevelConfig) {
	p := &s.deps.State.Player
	pos := world.V(lvl.Spawn.X, s.deps.Config.Player.EyeHeight, lvl.Spawn.Z)
	s.deps.Controls.SetPosition(pos)
	p.Position = pos
	p.Halt()
}
