package scripting

import (
	"path/filepath"
	"testing"

	"github.com/l1jgo/arena/internal/world"
	"go.uber.org/zap/zaptest"
)

var stockRanges = world.RangeDecider{AttackRange: 2, ChaseRange: 20}

func TestShippedHostileScriptMatchesGoRule(t *testing.T) {
	e, err := NewEngine(filepath.Join("..", "..", "scripts"), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer e.Close()
	if !e.HasFunction("hostile_state") {
		t.Fatal("hostile_state not defined")
	}

	d := e.HostileDecider(stockRanges)
	for _, dist := range []float64{0, 1.9, 2.0, 7.5, 19.9, 20.0, 20.1, 300} {
		if got, want := d.Decide(dist), stockRanges.Decide(dist); got != want {
			t.Errorf("Decide(%v) = %s, Go rule says %s", dist, got, want)
		}
	}
	if d.Failures() != 0 {
		t.Errorf("Failures = %d", d.Failures())
	}
}

func TestDeciderFallsBack(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing", ""},
		{"runtime error", `function hostile_state(ctx) error("boom") end`},
		{"unknown state", `function hostile_state(ctx) return "flee" end`},
		{"not a function", `hostile_state = 3`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEngine(t.TempDir(), zaptest.NewLogger(t))
			if err != nil {
				t.Fatalf("NewEngine: %v", err)
			}
			defer e.Close()
			if err := e.LoadString(tt.src); err != nil {
				t.Fatalf("LoadString: %v", err)
			}

			d := e.HostileDecider(stockRanges)
			if got := d.Decide(1.0); got != world.HostileAttack {
				t.Errorf("Decide(1.0) = %s, want fallback attack", got)
			}
			if got := d.Decide(25); got != world.HostileIdle {
				t.Errorf("Decide(25) = %s, want fallback idle", got)
			}
			if d.Failures() != 2 {
				t.Errorf("Failures = %d, want 2", d.Failures())
			}
		})
	}
}

func TestScriptOverridesRule(t *testing.T) {
	e, err := NewEngine(t.TempDir(), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	defer e.Close()
	// a passive variant: never attacks
	if err := e.LoadString(`function hostile_state(ctx)
  if ctx.distance < ctx.chase_range then return "chase" end
  return "idle"
end`); err != nil {
		t.Fatal(err)
	}
	d := e.HostileDecider(stockRanges)
	if got := d.Decide(1); got != world.HostileChase {
		t.Errorf("Decide(1) = %s, want chase", got)
	}
}

func TestNewEngineReportsBrokenScript(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, filepath.Join(dir, "ai", "broken.lua"), "function (")
	if _, err := NewEngine(dir, zaptest.NewLogger(t)); err == nil {
		t.Fatal("NewEngine accepted a script with a syntax error")
	}
}
