package system

import "time"

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseInput      Phase = iota // 0: weapon commands, reload completion
	PhasePreUpdate               // 1: deliver last tick's events
	PhaseMovement                // 2: player kinetic integration
	PhaseAgents                  // 3: hostile state machines
	PhaseCombat                  // 4: projectile advance + hit resolution
	PhasePostUpdate              // 5: level completion
	PhaseEffects                 // 6: due cosmetic tasks
	PhaseOutput                  // 7: scene sync + HUD
	PhaseCleanup                 // 8: destroy queued entities
)

var phaseNames = [...]string{
	"input", "pre_update", "movement", "agents", "combat",
	"post_update", "effects", "output", "cleanup",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return "unknown"
	}
	return phaseNames[p]
}

// System is the interface every simulation system implements.
type System interface {
	Phase() Phase
	Update(dt time.Duration)
}
