package data

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is a 24-bit RGB value written as "#rrggbb" (or "0xrrggbb") in YAML.
type Color uint32

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: color must be a scalar", node.Line)
	}
	s := strings.TrimSpace(node.Value)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || v > 0xffffff {
		return fmt.Errorf("line %d: bad color %q", node.Line, node.Value)
	}
	*c = Color(v)
	return nil
}

func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c))
}

// Ambiance is the look of a level handed to the scene collaborator.
type Ambiance struct {
	Fog        float64 `yaml:"fog"` // fog far distance
	FogColor   Color   `yaml:"fog_color"`
	LightColor Color   `yaml:"light_color"`
	FloorColor Color   `yaml:"floor_color"`
	WallColor  Color   `yaml:"wall_color"`
}

// ObstacleSpec is one static box. Position is the box centre on the floor
// plane; the box stands on the floor.
type ObstacleSpec struct {
	X      float64 `yaml:"x"`
	Z      float64 `yaml:"z"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Depth  float64 `yaml:"depth"`
	Color  Color   `yaml:"color"`
}

// Point2 is a floor-plane position.
type Point2 struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

// LevelConfig holds one level, loaded from level_list.yaml. Values are not
// mutated after load.
type LevelConfig struct {
	Name         string         `yaml:"name"`
	ArenaSize    float64        `yaml:"arena_size"` // side of the square arena
	HostileCount int            `yaml:"hostile_count"`
	Spawn        Point2         `yaml:"spawn"`
	Ambiance     Ambiance       `yaml:"ambiance"`
	Obstacles    []ObstacleSpec `yaml:"obstacles"`
}

// HalfExtent is the distance from the arena centre to a boundary wall.
func (l *LevelConfig) HalfExtent() float64 { return l.ArenaSize / 2 }

type levelListFile struct {
	Levels []LevelConfig `yaml:"levels"`
}

// LevelTable is the ordered level sequence, indexed by level number.
type LevelTable struct {
	levels []LevelConfig
}

// LoadLevelTable loads the level sequence from YAML.
func LoadLevelTable(path string) (*LevelTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level list %s: %w", path, err)
	}
	return ParseLevelTable(raw)
}

// ParseLevelTable decodes and validates a level list document.
func ParseLevelTable(raw []byte) (*LevelTable, error) {
	var file levelListFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse level list: %w", err)
	}
	if len(file.Levels) == 0 {
		return nil, errors.New("level list is empty")
	}
	for i := range file.Levels {
		if err := file.Levels[i].validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
	}
	return &LevelTable{levels: file.Levels}, nil
}

// NewLevelTable builds a table from already-decoded levels.
func NewLevelTable(levels ...LevelConfig) (*LevelTable, error) {
	if len(levels) == 0 {
		return nil, errors.New("level list is empty")
	}
	for i := range levels {
		if err := levels[i].validate(); err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
	}
	return &LevelTable{levels: append([]LevelConfig(nil), levels...)}, nil
}

func (l *LevelConfig) validate() error {
	if l.ArenaSize <= 0 {
		return fmt.Errorf("arena_size %v must be positive", l.ArenaSize)
	}
	if l.HostileCount < 0 {
		return fmt.Errorf("hostile_count %d must not be negative", l.HostileCount)
	}
	h := l.HalfExtent()
	if l.Spawn.X < -h || l.Spawn.X > h || l.Spawn.Z < -h || l.Spawn.Z > h {
		return fmt.Errorf("spawn (%v,%v) outside arena", l.Spawn.X, l.Spawn.Z)
	}
	for i, o := range l.Obstacles {
		if o.Width <= 0 || o.Height <= 0 || o.Depth <= 0 {
			return fmt.Errorf("obstacle %d: size must be positive", i)
		}
	}
	return nil
}

// Get returns the level at index.
func (t *LevelTable) Get(index int) (*LevelConfig, bool) {
	if index < 0 || index >= len(t.levels) {
		return nil, false
	}
	return &t.levels[index], true
}

func (t *LevelTable) Count() int { return len(t.levels) }

// IsLast reports whether index is the final configured level. An index
// past the end counts as last, so a reload that shortens the table ends
// the run instead of stalling it.
func (t *LevelTable) IsLast(index int) bool { return index >= len(t.levels)-1 }
