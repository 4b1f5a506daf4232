package term

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/l1jgo/arena/internal/config"
	"github.com/l1jgo/arena/internal/core/clock"
	"github.com/l1jgo/arena/internal/host"
	"github.com/l1jgo/arena/internal/world"
)

// Action is a one-shot command decoded from an input event.
type Action uint8

const (
	ActionNone Action = iota
	ActionFire
	ActionReload
	ActionRestart
	ActionQuit
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionFire:
		return "fire"
	case ActionReload:
		return "reload"
	case ActionRestart:
		return "restart"
	case ActionQuit:
		return "quit"
	}
	return "unknown"
}

type dir uint8

const (
	dirForward dir = iota
	dirBackward
	dirLeft
	dirRight
	numDirs
)

var opposite = [numDirs]dir{
	dirForward:  dirBackward,
	dirBackward: dirForward,
	dirLeft:     dirRight,
	dirRight:    dirLeft,
}

// Input turns tcell events into rig state. Terminals only report presses
// and auto-repeats, so a direction stays held until Hold passes without a
// repeat or the opposite direction is pressed. Jump latches for exactly one
// Update.
type Input struct {
	rig   *host.Rig
	clock clock.Clock
	cfg   config.InputConfig

	held   [numDirs]time.Time // zero = released
	jump   bool
	button bool // Button1 was down on the last mouse event
}

func NewInput(rig *host.Rig, clk clock.Clock, cfg config.InputConfig) *Input {
	return &Input{rig: rig, clock: clk, cfg: cfg}
}

// Handle applies one event and returns the command it carries, if any.
func (in *Input) Handle(ev tcell.Event) Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return in.key(ev)
	case *tcell.EventMouse:
		if in.cfg.Mouse {
			return in.mouse(ev)
		}
	}
	return ActionNone
}

func (in *Input) key(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return ActionQuit
	case tcell.KeyEscape:
		in.pause()
		return ActionNone
	case tcell.KeyEnter:
		if !in.rig.Locked() {
			in.rig.SetLocked(true)
			return ActionNone
		}
		return ActionFire
	case tcell.KeyUp:
		in.press(dirForward)
	case tcell.KeyDown:
		in.press(dirBackward)
	case tcell.KeyLeft:
		in.turn(-1)
	case tcell.KeyRight:
		in.turn(1)
	case tcell.KeyPgUp:
		in.look(1)
	case tcell.KeyPgDn:
		in.look(-1)
	case tcell.KeyHome:
		if in.rig.Locked() {
			in.rig.Face(in.rig.Yaw(), 0)
		}
	case tcell.KeyRune:
		return in.char(ev.Rune())
	}
	return ActionNone
}

func (in *Input) char(r rune) Action {
	switch unicode.ToLower(r) {
	case 'w':
		in.press(dirForward)
	case 's':
		in.press(dirBackward)
	case 'a':
		in.press(dirLeft)
	case 'd':
		in.press(dirRight)
	case 'q':
		in.turn(-1)
	case 'e':
		in.turn(1)
	case ' ':
		if in.rig.Locked() {
			in.jump = true
		}
	case 'f':
		return ActionFire
	case 'r':
		return ActionReload
	case 'n':
		return ActionRestart
	case 'p':
		if in.rig.Locked() {
			in.pause()
		} else {
			in.rig.SetLocked(true)
		}
	}
	return ActionNone
}

// mouse fires on the Button1 down edge, or takes the lock if paused.
func (in *Input) mouse(ev *tcell.EventMouse) Action {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !in.button
	in.button = down
	if !pressed {
		return ActionNone
	}
	if !in.rig.Locked() {
		in.rig.SetLocked(true)
		return ActionNone
	}
	return ActionFire
}

func (in *Input) press(d dir) {
	if !in.rig.Locked() {
		return
	}
	in.held[d] = in.clock.Now()
	in.held[opposite[d]] = time.Time{}
}

func (in *Input) turn(sign float64) {
	if in.rig.Locked() {
		in.rig.Turn(sign * in.cfg.TurnStep)
	}
}

// look tilts the aim, which is also the firing direction.
func (in *Input) look(sign float64) {
	if in.rig.Locked() {
		in.rig.Look(sign * in.cfg.TurnStep)
	}
}

func (in *Input) pause() {
	in.rig.SetLocked(false)
	in.held = [numDirs]time.Time{}
	in.jump = false
	in.rig.SetIntent(world.Intent{})
}

// Update expires stale holds and publishes the intent to the rig. Call it
// once per frame before the simulation steps.
func (in *Input) Update() {
	now := in.clock.Now()
	var active [numDirs]bool
	for d, t := range in.held {
		if t.IsZero() {
			continue
		}
		if now.Sub(t) > in.cfg.Hold {
			in.held[d] = time.Time{}
			continue
		}
		active[d] = true
	}
	in.rig.SetIntent(world.Intent{
		Forward:  active[dirForward],
		Backward: active[dirBackward],
		Left:     active[dirLeft],
		Right:    active[dirRight],
		Jump:     in.jump,
	})
	in.jump = false
}
