package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Sim       SimConfig       `toml:"sim"`
	Player    PlayerConfig    `toml:"player"`
	Hostile   HostileConfig   `toml:"hostile"`
	Combat    CombatConfig    `toml:"combat"`
	Levels    LevelsConfig    `toml:"levels"`
	Scripting ScriptingConfig `toml:"scripting"`
	Input     InputConfig     `toml:"input"`
	Logging   LoggingConfig   `toml:"logging"`
	Audio     AudioConfig     `toml:"audio"`
}

type SimConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	MaxDelta time.Duration `toml:"max_delta"` // frame delta clamp
	Seed     int64         `toml:"seed"`      // 0 = seed from the clock
}

type PlayerConfig struct {
	EyeHeight        float64       `toml:"eye_height"`
	Damping          float64       `toml:"damping"`
	Gravity          float64       `toml:"gravity"`
	Acceleration     float64       `toml:"acceleration"`
	JumpImpulse      float64       `toml:"jump_impulse"`
	MaxHealth        int           `toml:"max_health"`
	MaxAmmo          int           `toml:"max_ammo"`
	ReloadDuration   time.Duration `toml:"reload_duration"`
	ProjectileSpeed  float64       `toml:"projectile_speed"`
	MuzzleOffset     float64       `toml:"muzzle_offset"`
	LevelHealthBonus int           `toml:"level_health_bonus"`
}

type HostileConfig struct {
	Health         int           `toml:"health"`
	SpeedMin       float64       `toml:"speed_min"`
	SpeedMax       float64       `toml:"speed_max"`
	AttackRange    float64       `toml:"attack_range"`
	ChaseRange     float64       `toml:"chase_range"`
	AttackCooldown time.Duration `toml:"attack_cooldown"`
	AttackDamage   int           `toml:"attack_damage"`
	Height         float64       `toml:"height"` // y of a spawned hostile's origin
}

type CombatConfig struct {
	HitRadius        float64 `toml:"hit_radius"`
	ProjectileDamage int     `toml:"projectile_damage"`
	KillScore        int     `toml:"kill_score"`
	MaxRange         float64 `toml:"max_range"` // from the player
}

type LevelsConfig struct {
	Path           string  `toml:"path"`
	Watch          bool    `toml:"watch"`
	WallMargin     float64 `toml:"wall_margin"`
	SpawnExclusion float64 `toml:"spawn_exclusion"`
}

type ScriptingConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// InputConfig tunes the terminal controller. Terminals report key presses
// and repeats but no releases, so a key counts as held for Hold after its
// last report.
type InputConfig struct {
	Hold     time.Duration `toml:"hold"`
	TurnStep float64       `toml:"turn_step"` // radians per turn key report
	Mouse    bool          `toml:"mouse"`     // click to fire / resume
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0..1
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Sim.TickRate <= 0 {
		errs = append(errs, errors.New("sim.tick_rate must be positive"))
	}
	if c.Sim.MaxDelta < 0 {
		errs = append(errs, errors.New("sim.max_delta must not be negative"))
	}
	if c.Player.MaxHealth <= 0 || c.Player.MaxAmmo <= 0 {
		errs = append(errs, errors.New("player.max_health and player.max_ammo must be positive"))
	}
	if c.Hostile.SpeedMax < c.Hostile.SpeedMin {
		errs = append(errs, errors.New("hostile.speed_max below hostile.speed_min"))
	}
	if c.Hostile.AttackRange > c.Hostile.ChaseRange {
		errs = append(errs, errors.New("hostile.attack_range beyond hostile.chase_range"))
	}
	if c.Combat.HitRadius <= 0 || c.Combat.MaxRange <= 0 {
		errs = append(errs, errors.New("combat.hit_radius and combat.max_range must be positive"))
	}
	if c.Input.Hold <= 0 {
		errs = append(errs, errors.New("input.hold must be positive"))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, errors.New("audio.volume must be within [0, 1]"))
	}
	if c.Levels.Path == "" {
		errs = append(errs, errors.New("levels.path is required"))
	}
	return errors.Join(errs...)
}

// Default returns the stock tuning of the arena.
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			TickRate: 16 * time.Millisecond,
			MaxDelta: 100 * time.Millisecond,
		},
		Player: PlayerConfig{
			EyeHeight:        1.6,
			Damping:          10.0,
			Gravity:          9.8 * 100.0,
			Acceleration:     400.0,
			JumpImpulse:      350.0,
			MaxHealth:        100,
			MaxAmmo:          30,
			ReloadDuration:   2 * time.Second,
			ProjectileSpeed:  20,
			MuzzleOffset:     0.8,
			LevelHealthBonus: 50,
		},
		Hostile: HostileConfig{
			Health:         100,
			SpeedMin:       2,
			SpeedMax:       4,
			AttackRange:    2,
			ChaseRange:     20,
			AttackCooldown: time.Second,
			AttackDamage:   10,
			Height:         1,
		},
		Combat: CombatConfig{
			HitRadius:        1.5,
			ProjectileDamage: 50,
			KillScore:        100,
			MaxRange:         100,
		},
		Levels: LevelsConfig{
			Path:           "data/yaml/level_list.yaml",
			WallMargin:     5,
			SpawnExclusion: 10,
		},
		Scripting: ScriptingConfig{
			Enabled: true,
			Dir:     "scripts",
		},
		Input: InputConfig{
			Hold:     250 * time.Millisecond,
			TurnStep: 0.08,
			Mouse:    true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "arena.log",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.4,
		},
	}
}
