// Package audio plays short synthesized cues for simulation events.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/l1jgo/arena/internal/config"
	"github.com/l1jgo/arena/internal/core/event"
)

const sampleRate = beep.SampleRate(44100)

// note is one step of a cue; freq 0 is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var (
	cueShot     = []note{{880, 40 * time.Millisecond}}
	cueDry      = []note{{220, 30 * time.Millisecond}}
	cueReload   = []note{{440, 50 * time.Millisecond}, {330, 50 * time.Millisecond}}
	cueReloaded = []note{{330, 50 * time.Millisecond}, {660, 50 * time.Millisecond}}
	cueHit      = []note{{520, 30 * time.Millisecond}}
	cueKill     = []note{{660, 60 * time.Millisecond}, {990, 60 * time.Millisecond}}
	cueHurt     = []note{{150, 120 * time.Millisecond}}
	cueLevel    = []note{{523.25, 100 * time.Millisecond}, {659.25, 100 * time.Millisecond}, {783.99, 150 * time.Millisecond}}
	cueVictory  = []note{{523.25, 120 * time.Millisecond}, {659.25, 120 * time.Millisecond}, {783.99, 120 * time.Millisecond}, {1046.5, 300 * time.Millisecond}}
	cueDefeat   = []note{{392, 200 * time.Millisecond}, {0, 50 * time.Millisecond}, {311.13, 200 * time.Millisecond}, {0, 50 * time.Millisecond}, {261.63, 400 * time.Millisecond}}
)

// Player turns bus events into sound. It never blocks the game loop: cues
// are handed to the sink, which mixes them on its own goroutine.
type Player struct {
	rate   beep.SampleRate
	volume float64
	sink   func(...beep.Streamer)
	close  func()
	log    *zap.Logger
}

// Open starts the speaker. A machine without an audio device fails here;
// callers log the error and run silent.
func Open(cfg config.AudioConfig, log *zap.Logger) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	p := New(sampleRate, cfg.Volume, speaker.Play, log)
	p.close = speaker.Close
	return p, nil
}

// New builds a player on an arbitrary sink.
func New(rate beep.SampleRate, volume float64, sink func(...beep.Streamer), log *zap.Logger) *Player {
	if log == nil {
		log = zap.NewNop()
	}
	return &Player{rate: rate, volume: volume, sink: sink, log: log}
}

// Subscribe registers the cue handlers on the bus.
func (p *Player) Subscribe(b *event.Bus) {
	event.Subscribe(b, func(event.ShotFired) { p.play(cueShot) })
	event.Subscribe(b, func(event.DryFire) { p.play(cueDry) })
	event.Subscribe(b, func(event.ReloadStarted) { p.play(cueReload) })
	event.Subscribe(b, func(event.ReloadFinished) { p.play(cueReloaded) })
	event.Subscribe(b, func(event.HostileHit) { p.play(cueHit) })
	event.Subscribe(b, func(event.HostileKilled) { p.play(cueKill) })
	event.Subscribe(b, func(event.PlayerHurt) { p.play(cueHurt) })
	event.Subscribe(b, func(event.LevelStarted) { p.play(cueLevel) })
	event.Subscribe(b, func(e event.RunEnded) {
		if e.Victory {
			p.play(cueVictory)
		} else {
			p.play(cueDefeat)
		}
	})
}

func (p *Player) play(notes []note) {
	if p.volume <= 0 {
		return
	}
	s, err := p.render(notes)
	if err != nil {
		p.log.Debug("audio cue dropped", zap.Error(err))
		return
	}
	p.sink(s)
}

func (p *Player) render(notes []note) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		samples := p.rate.N(n.dur)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(samples))
			continue
		}
		tone, err := generators.SineTone(p.rate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(samples, tone))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(p.volume),
	}, nil
}

// Close stops the speaker if Open started it.
func (p *Player) Close() {
	if p.close != nil {
		p.close()
		p.close = nil
	}
}
