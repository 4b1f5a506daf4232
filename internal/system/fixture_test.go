package system

import (
	"math/rand"
	"testing"
	"time"

	"github.com/l1jgo/arena/internal/config"
	"github.com/l1jgo/arena/internal/core/ecs"
	"github.com/l1jgo/arena/internal/core/event"
	"github.com/l1jgo/arena/internal/core/sched"
	"github.com/l1jgo/arena/internal/data"
	"github.com/l1jgo/arena/internal/host"
	"github.com/l1jgo/arena/internal/host/mocks"
	"github.com/l1jgo/arena/internal/world"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
)

// fixture wires deps around gomock scene/HUD doubles. Scene calls are
// accepted in any number and recorded; HUD expectations are set per test.
type fixture struct {
	deps  *host.Deps
	scene *mocks.MockScene
	hud   *mocks.MockHUD
	rig   *host.Rig

	spawned map[ecs.EntityID]host.Entity
	placed  map[ecs.EntityID]host.Transform
	removed []ecs.EntityID
	effects []host.Effect
}

func arenaLevel(name string, hostiles int) data.LevelConfig {
	return data.LevelConfig{
		Name:         name,
		ArenaSize:    100,
		HostileCount: hostiles,
		Ambiance:     data.Ambiance{WallColor: 0x8888ff},
		Obstacles: []data.ObstacleSpec{
			{X: -20, Z: -15, Width: 10, Height: 5, Depth: 10, Color: 0x88aaff},
		},
	}
}

func newFixture(t *testing.T, levels ...data.LevelConfig) *fixture {
	t.Helper()
	if len(levels) == 0 {
		levels = []data.LevelConfig{arenaLevel("one", 4)}
	}
	tbl, err := data.NewLevelTable(levels...)
	if err != nil {
		t.Fatalf("NewLevelTable: %v", err)
	}

	ctrl := gomock.NewController(t)
	f := &fixture{
		scene:   mocks.NewMockScene(ctrl),
		hud:     mocks.NewMockHUD(ctrl),
		rig:     host.NewRig(world.V(0, 1.6, 0)),
		spawned: make(map[ecs.EntityID]host.Entity),
		placed:  make(map[ecs.EntityID]host.Transform),
	}
	f.rig.SetLocked(true)

	f.scene.EXPECT().Spawn(gomock.Any(), gomock.Any()).Do(func(id ecs.EntityID, e host.Entity) {
		f.spawned[id] = e
	}).AnyTimes()
	f.scene.EXPECT().Remove(gomock.Any()).Do(func(id ecs.EntityID) {
		f.removed = append(f.removed, id)
	}).AnyTimes()
	f.scene.EXPECT().Effect(gomock.Any(), gomock.Any()).Do(func(_ ecs.EntityID, fx host.Effect) {
		f.effects = append(f.effects, fx)
	}).AnyTimes()
	f.scene.EXPECT().Place(gomock.Any(), gomock.Any()).Do(func(id ecs.EntityID, tr host.Transform) {
		f.placed[id] = tr
	}).AnyTimes()
	f.scene.EXPECT().SetAmbiance(gomock.Any(), gomock.Any()).AnyTimes()

	cfg := config.Default()
	f.deps = &host.Deps{
		Config:   cfg,
		Log:      zaptest.NewLogger(t),
		Entities: ecs.NewWorld(),
		Bus:      event.NewBus(),
		Tasks:    sched.NewQueue(),
		Levels:   tbl,
		Decider:  world.RangeDecider{AttackRange: cfg.Hostile.AttackRange, ChaseRange: cfg.Hostile.ChaseRange},
		Rng:      rand.New(rand.NewSource(3)),
		Scene:    f.scene,
		HUD:      f.hud,
		Controls: f.rig,
	}
	f.deps.State = world.NewState(f.deps.Loadout())
	f.deps.State.Now = time.Unix(1_000, 0)
	f.deps.Entities.OnDestroy(f.scene.Remove)
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.deps.State.Now = f.deps.State.Now.Add(d)
}

// addHostile places a hostile directly, bypassing the director.
func (f *fixture) addHostile(pos world.Vec3) *world.Hostile {
	id := f.deps.Entities.CreateEntity()
	h := world.NewHostile(id, pos, f.deps.HostileTuning(), f.deps.Rng)
	f.deps.State.Hostiles = append(f.deps.State.Hostiles, h)
	return h
}

// addProjectile places a stationary-direction projectile at pos.
func (f *fixture) addProjectile(pos world.Vec3) *world.Projectile {
	id := f.deps.Entities.CreateEntity()
	p := world.NewProjectile(id, pos, world.V(0, 0, 1), f.deps.Config.Player.ProjectileSpeed)
	f.deps.State.Projectiles = append(f.deps.State.Projectiles, p)
	return p
}

func (f *fixture) flush() { f.deps.Entities.FlushDestroyQueue() }

func (f *fixture) countEffects(kind host.EffectKind) int {
	n := 0
	for _, fx := range f.effects {
		if fx.Kind == kind {
			n++
		}
	}
	return n
}
