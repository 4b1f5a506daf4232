package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/l1jgo/arena/internal/world"
	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for game logic hooks.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads every script under the core and
// ai subdirectories of scriptsDir. Missing directories are skipped.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	for _, sub := range []string{"core", "ai"} {
		if err := e.loadDir(filepath.Join(scriptsDir, sub)); err != nil {
			vm.Close()
			return nil, fmt.Errorf("load %s scripts: %w", sub, err)
		}
	}
	return e, nil
}

// LoadString runs a chunk of Lua source, defining whatever globals it sets.
func (e *Engine) LoadString(src string) error {
	return e.vm.DoString(src)
}

func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// HasFunction reports whether a global Lua function is defined.
func (e *Engine) HasFunction(name string) bool {
	_, ok := e.vm.GetGlobal(name).(*lua.LFunction)
	return ok
}

// HostileDecider routes hostile state selection through the Lua function
// hostile_state(ctx), where ctx carries distance, attack_range and
// chase_range. Any failure or unknown result falls back to the Go rule.
type HostileDecider struct {
	engine   *Engine
	fallback world.RangeDecider
	ctx      *lua.LTable
	failures int
}

// HostileDecider builds a decider bound to this engine.
func (e *Engine) HostileDecider(fallback world.RangeDecider) *HostileDecider {
	ctx := e.vm.NewTable()
	ctx.RawSetString("attack_range", lua.LNumber(fallback.AttackRange))
	ctx.RawSetString("chase_range", lua.LNumber(fallback.ChaseRange))
	return &HostileDecider{engine: e, fallback: fallback, ctx: ctx}
}

func (d *HostileDecider) Decide(distance float64) world.HostileState {
	vm := d.engine.vm
	fn := vm.GetGlobal("hostile_state")
	if fn == lua.LNil {
		return d.fail(distance, "lua function hostile_state not found", nil)
	}

	d.ctx.RawSetString("distance", lua.LNumber(distance))
	if err := vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, d.ctx); err != nil {
		return d.fail(distance, "lua hostile_state error", err)
	}

	result := vm.Get(-1)
	vm.Pop(1)

	state, ok := world.ParseHostileState(lua.LVAsString(result))
	if !ok {
		return d.fail(distance, "lua hostile_state returned unknown state", nil)
	}
	return state
}

// Failures returns how many decisions fell back to the Go rule.
func (d *HostileDecider) Failures() int { return d.failures }

func (d *HostileDecider) fail(distance float64, msg string, err error) world.HostileState {
	d.failures++
	// first failure is enough to diagnose; the rest would flood the log at frame rate
	if d.failures == 1 {
		d.engine.log.Error(msg, zap.Error(err), zap.Float64("distance", distance))
	}
	return d.fallback.Decide(distance)
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}
