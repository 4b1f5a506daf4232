// Package term is the terminal frontend: a heading-up top-down view of the
// arena drawn with tcell, the HUD line, and a key/mouse controller that
// drives a host.Rig.
package term

import (
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/l1jgo/arena/internal/core/clock"
	"github.com/l1jgo/arena/internal/core/ecs"
	"github.com/l1jgo/arena/internal/data"
	"github.com/l1jgo/arena/internal/host"
	"github.com/l1jgo/arena/internal/world"
)

const (
	bannerTime = 2 * time.Second
	// world units per cell; terminal cells are about twice as tall as wide
	unitsPerCol = 1.0
	unitsPerRow = 2.0
	// how far a flashed muzzle is drawn ahead of the player glyph
	muzzleRows = 1
)

var (
	colorHUD     = tcell.NewRGBColor(230, 230, 230)
	colorHUDBg   = tcell.NewRGBColor(20, 20, 28)
	colorWarn    = tcell.NewRGBColor(255, 90, 90)
	colorPlayer  = tcell.NewRGBColor(120, 220, 255)
	colorBullet  = tcell.NewRGBColor(255, 230, 80)
	colorMuzzle  = tcell.NewRGBColor(255, 200, 60)
	colorFlash   = tcell.NewRGBColor(255, 0, 0)
	colorBanner  = tcell.NewRGBColor(255, 255, 255)
	colorOverlay = tcell.NewRGBColor(0, 0, 0)
)

type endScreen uint8

const (
	endNone endScreen = iota
	endGameOver
	endVictory
)

// node is the frontend's copy of a scene handle.
type node struct {
	kind  host.Kind
	pos   world.Vec3
	size  world.Vec3
	color uint32
	look  uint32
	yaw   float64
	pose  world.Pose
	flash bool
	wear  float64
}

// View is what the renderer needs from the controller each frame.
type View struct {
	Player world.Vec3
	Yaw    float64
	Locked bool
}

// Screen implements host.Scene and host.HUD on a tcell screen. Calls
// arrive from the game loop goroutine only.
type Screen struct {
	screen  tcell.Screen
	clock   clock.Clock
	printer *message.Printer

	nodes    map[ecs.EntityID]*node
	ambiance data.Ambiance
	arena    float64
	muzzle   bool

	hud         host.HUDState
	banner      int
	bannerUntil time.Time
	end         endScreen
	finalScore  int
}

func NewScreen(screen tcell.Screen, clk clock.Clock) *Screen {
	return &Screen{
		screen:  screen,
		clock:   clk,
		printer: message.NewPrinter(language.English),
		nodes:   make(map[ecs.EntityID]*node),
	}
}

var (
	_ host.Scene = (*Screen)(nil)
	_ host.HUD   = (*Screen)(nil)
)

func (s *Screen) Spawn(id ecs.EntityID, e host.Entity) {
	s.nodes[id] = &node{
		kind:  e.Kind,
		pos:   e.Position,
		size:  e.Size,
		color: e.Color,
		look:  e.Look,
	}
}

func (s *Screen) Place(id ecs.EntityID, t host.Transform) {
	n, ok := s.nodes[id]
	if !ok {
		return
	}
	n.pos = t.Position
	n.yaw = t.Yaw
	n.pose = t.Pose
}

func (s *Screen) Remove(id ecs.EntityID) { delete(s.nodes, id) }

func (s *Screen) SetAmbiance(a data.Ambiance, arenaSize float64) {
	s.ambiance = a
	s.arena = arenaSize
}

func (s *Screen) Effect(id ecs.EntityID, fx host.Effect) {
	switch fx.Kind {
	case host.EffectMuzzleFlash:
		s.muzzle = true
	case host.EffectMuzzleHide:
		s.muzzle = false
	case host.EffectDamageFlash, host.EffectDamageFade:
		n, ok := s.nodes[id]
		if !ok {
			return
		}
		n.flash = fx.Kind == host.EffectDamageFlash
		if !n.flash {
			n.wear = fx.Amount
		}
	}
}

func (s *Screen) UpdateHUD(st host.HUDState) { s.hud = st }

func (s *Screen) ShowLevelBanner(level int) {
	s.end = endNone
	s.banner = level
	s.bannerUntil = s.clock.Now().Add(bannerTime)
}

func (s *Screen) ShowGameOver(finalScore int) {
	s.end = endGameOver
	s.finalScore = finalScore
}

func (s *Screen) ShowVictory(finalScore int) {
	s.end = endVictory
	s.finalScore = finalScore
}

// Nodes reports how many scene handles are live.
func (s *Screen) Nodes() int { return len(s.nodes) }

// Draw renders one frame.
func (s *Screen) Draw(v View) {
	s.screen.Clear()
	w, h := s.screen.Size()
	if w <= 0 || h <= 1 {
		s.screen.Show()
		return
	}
	mapRows := h - 1
	cx, cy := w/2, mapRows/2
	sin, cos := math.Sincos(v.Yaw)

	s.drawFloor(v.Player, sin, cos, w, mapRows, cx, cy)

	project := func(p world.Vec3) (int, int, bool) {
		rel := p.Sub(v.Player)
		sx := rel.X*cos - rel.Z*sin
		sy := rel.X*sin + rel.Z*cos
		if s.ambiance.Fog > 0 && math.Hypot(sx, sy) > s.ambiance.Fog {
			return 0, 0, false
		}
		col := cx + int(math.Round(sx/unitsPerCol))
		row := cy - int(math.Round(sy/unitsPerRow))
		return col, row, col >= 0 && col < w && row >= 0 && row < mapRows
	}

	for _, n := range s.nodes {
		switch n.kind {
		case host.KindHostile:
			if col, row, ok := project(n.pos); ok {
				s.setGlyph(col, row, hostileGlyph(n), s.hostileStyle(n))
			}
		case host.KindProjectile:
			if col, row, ok := project(n.pos); ok {
				s.setGlyph(col, row, '*', tcell.StyleDefault.Foreground(colorBullet).Bold(true))
			}
		}
	}

	s.setGlyph(cx, cy, '^', tcell.StyleDefault.Foreground(colorPlayer).Bold(true))
	if s.muzzle && cy-muzzleRows >= 0 {
		s.setGlyph(cx, cy-muzzleRows, '!', tcell.StyleDefault.Foreground(colorMuzzle).Bold(true))
	}

	s.drawHUD(w, h-1)
	s.drawOverlay(v, w, mapRows)
	s.screen.Show()
}

// drawFloor paints every map cell: fog beyond the fog distance, wall or
// obstacle colour where a box covers the cell, floor otherwise.
func (s *Screen) drawFloor(player world.Vec3, sin, cos float64, w, rows, cx, cy int) {
	var boxes []world.Obstacle
	for _, n := range s.nodes {
		if n.kind == host.KindWall || n.kind == host.KindObstacle {
			boxes = append(boxes, world.Obstacle{Center: n.pos, Size: n.size, Color: n.color})
		}
	}
	floor := rgb(s.ambiance.FloorColor)
	fog := rgb(s.ambiance.FogColor)
	// past the boundary walls there is only fog
	outside := s.arena/2 + 1

	for row := 0; row < rows; row++ {
		for col := 0; col < w; col++ {
			sx := float64(col-cx) * unitsPerCol
			sy := float64(cy-row) * unitsPerRow
			if s.ambiance.Fog > 0 && math.Hypot(sx, sy) > s.ambiance.Fog {
				s.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(fog))
				continue
			}
			p := world.Vec3{
				X: player.X + sx*cos + sy*sin,
				Z: player.Z - sx*sin + sy*cos,
			}
			if s.arena > 0 && (math.Abs(p.X) > outside || math.Abs(p.Z) > outside) {
				s.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(fog))
				continue
			}
			bg := floor
			ch := ' '
			for i := range boxes {
				if boxes[i].Contains(p) {
					bg = rgb(data.Color(boxes[i].Color))
					ch = '#'
					break
				}
			}
			s.screen.SetContent(col, row, ch, nil, tcell.StyleDefault.Background(bg).Foreground(shade(bg, 0.6)))
		}
	}
}

func (s *Screen) drawHUD(w, row int) {
	st := tcell.StyleDefault.Foreground(colorHUD).Background(colorHUDBg)
	for col := 0; col < w; col++ {
		s.screen.SetContent(col, row, ' ', nil, st)
	}
	line := s.printer.Sprintf(" HP %d  AMMO %d/%d  SCORE %d  LEVEL %d",
		s.hud.Health, s.hud.Ammo, s.hud.MaxAmmo, s.hud.Score, s.hud.Level)
	s.text(0, row, line, st)
	if s.hud.Reloading {
		s.text(len(line)+2, row, "RELOADING", st.Foreground(colorWarn).Bold(true))
	}
}

func (s *Screen) drawOverlay(v View, w, rows int) {
	mid := rows / 2
	switch s.end {
	case endGameOver:
		s.centered(w, mid-1, " GAME OVER ", tcell.StyleDefault.Foreground(colorWarn).Background(colorOverlay).Bold(true))
		s.centered(w, mid+1, s.printer.Sprintf(" final score %d   [n] restart   [ctrl-c] quit ", s.finalScore),
			tcell.StyleDefault.Foreground(colorBanner).Background(colorOverlay))
		return
	case endVictory:
		s.centered(w, mid-1, " VICTORY ", tcell.StyleDefault.Foreground(colorBullet).Background(colorOverlay).Bold(true))
		s.centered(w, mid+1, s.printer.Sprintf(" final score %d   [n] play again   [ctrl-c] quit ", s.finalScore),
			tcell.StyleDefault.Foreground(colorBanner).Background(colorOverlay))
		return
	}
	if !v.Locked {
		st := tcell.StyleDefault.Foreground(colorBanner).Background(colorOverlay)
		s.centered(w, mid-2, " PAUSED - click or press Enter to play ", st.Bold(true))
		s.centered(w, mid, " w/s forward/back  a/d strafe  q/e turn  pgup/pgdn look  space jump ", st)
		s.centered(w, mid+1, " f or click fire  r reload  esc pause  n restart ", st)
		return
	}
	if s.banner > 0 && s.clock.Now().Before(s.bannerUntil) {
		s.centered(w, mid-3, s.printer.Sprintf(" LEVEL %d ", s.banner),
			tcell.StyleDefault.Foreground(colorBanner).Background(colorOverlay).Bold(true))
	}
}

func (s *Screen) hostileStyle(n *node) tcell.Style {
	if n.flash {
		return tcell.StyleDefault.Foreground(colorFlash).Bold(true)
	}
	r, g, b := lookRGB(n.look)
	c := tcell.NewRGBColor(r, g, b)
	return tcell.StyleDefault.Foreground(shade(c, 1-0.6*n.wear)).Bold(true)
}

// hostileGlyph draws a striking hostile (right arm thrown forward) apart
// from a walking or idle one.
func hostileGlyph(n *node) rune {
	if n.pose.RightArm <= -1 {
		return '&'
	}
	return 'M'
}

// setGlyph draws ch over whatever background the floor pass left.
func (s *Screen) setGlyph(col, row int, ch rune, st tcell.Style) {
	_, _, prev, _ := s.screen.GetContent(col, row)
	_, bg, _ := prev.Decompose()
	s.screen.SetContent(col, row, ch, nil, st.Background(bg))
}

func (s *Screen) text(col, row int, str string, st tcell.Style) {
	for _, r := range str {
		s.screen.SetContent(col, row, r, nil, st)
		col++
	}
}

func (s *Screen) centered(w, row int, str string, st tcell.Style) {
	if row < 0 {
		return
	}
	n := len([]rune(str))
	if n > w {
		str = strings.TrimSpace(str)
		n = len([]rune(str))
	}
	s.text(max(0, (w-n)/2), row, str, st)
}

// lookRGB turns an appearance seed into a bright body colour.
func lookRGB(look uint32) (int32, int32, int32) {
	r := int32(look>>16&0x7f) + 96
	g := int32(look>>8&0x7f) + 96
	b := int32(look&0x7f) + 96
	return r, g, b
}

func rgb(c data.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func shade(c tcell.Color, f float64) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(float64(r)*f), int32(float64(g)*f), int32(float64(b)*f))
}
