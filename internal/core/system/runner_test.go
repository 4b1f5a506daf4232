package system

import (
	"testing"
	"time"
)

type recorder struct {
	name  string
	phase Phase
	log   *[]string
}

func (r recorder) Phase() Phase           { return r.phase }
func (r recorder) Update(_ time.Duration) { *r.log = append(*r.log, r.name) }

func TestRunnerPhaseOrder(t *testing.T) {
	var log []string
	r := NewRunner()
	r.Register(recorder{"cleanup", PhaseCleanup, &log})
	r.Register(recorder{"combat", PhaseCombat, &log})
	r.Register(recorder{"scene", PhaseOutput, &log})
	r.Register(recorder{"movement", PhaseMovement, &log})
	r.Register(recorder{"hud", PhaseOutput, &log})
	r.Register(recorder{"agents", PhaseAgents, &log})
	r.Register(nil)

	r.Tick(16 * time.Millisecond)

	want := []string{"movement", "agents", "combat", "scene", "hud", "cleanup"}
	if len(log) != len(want) {
		t.Fatalf("ran %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("ran %v, want %v", log, want)
		}
	}
	if n := len(r.Systems()); n != 6 {
		t.Errorf("Systems() = %d entries, want 6", n)
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseCombat.String() != "combat" || Phase(99).String() != "unknown" {
		t.Errorf("got %q and %q", PhaseCombat, Phase(99))
	}
}
