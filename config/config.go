package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/yohamta/donburi/ecs"
	"gopkg.in/yaml.v3"
)

// Default is the only ECS layer the host uses.
const Default ecs.LayerID = 0

// EnvPath names the environment variable consulted when Load gets no path.
const EnvPath = "SLIPSTEP_CONFIG"

var ErrInvalid = errors.New("config: invalid value")

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	MaxDeltaTime float64 `yaml:"max_delta_time"` // seconds; longer frames are cut
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	SpeedX         float64 `yaml:"speed_x"`
	SpeedY         float64 `yaml:"speed_y"`
	ClampDirection bool    `yaml:"clamp_direction"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`
}

// SurfaceConfig contains defaults for surfaces whose level data leaves them unset.
// IceMultiplier applies to the built-in level and to TMX rects flagged "ice"
// without a speedMultiplier.
type SurfaceConfig struct {
	IceMultiplier float64 `yaml:"ice_multiplier"`
}

// LevelConfig contains level loading and collision space values
type LevelConfig struct {
	Path     string  `yaml:"path"` // TMX file; empty uses the built-in box
	CellSize int     `yaml:"cell_size"`
	SpawnX   float64 `yaml:"spawn_x"`
	SpawnY   float64 `yaml:"spawn_y"`
}

// ServerConfig contains host loop values
type ServerConfig struct {
	TickRate    int    `yaml:"tick_rate"`
	MetricsAddr string `yaml:"metrics_addr"` // empty disables the endpoint
	LogLevel    string `yaml:"log_level"`
}

type Config struct {
	Physics PhysicsConfig `yaml:"physics"`
	Player  PlayerConfig  `yaml:"player"`
	Surface SurfaceConfig `yaml:"surface"`
	Level   LevelConfig   `yaml:"level"`
	Server  ServerConfig  `yaml:"server"`
}

var C *Config

func init() {
	C = Defaults()
}

// Defaults returns a fresh copy of the built-in configuration.
func Defaults() *Config {
	return &Config{
		Physics: PhysicsConfig{
			Gravity:      9.8,
			JumpImpulse:  -300.0,
			MaxDeltaTime: 1.0,
		},
		Player: PlayerConfig{
			SpeedX:          100.0,
			SpeedY:          100.0,
			ClampDirection:  true,
			CollisionWidth:  16,
			CollisionHeight: 40,
		},
		Surface: SurfaceConfig{
			IceMultiplier: 1.5,
		},
		Level: LevelConfig{
			CellSize: 16,
			SpawnX:   40,
			SpawnY:   40,
		},
		Server: ServerConfig{
			TickRate: 60,
			LogLevel: "info",
		},
	}
}

// Load overlays a YAML file on the defaults. An empty path falls back to
// $SLIPSTEP_CONFIG, and to plain defaults when that is unset too.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		path = os.Getenv(EnvPath)
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the motion core and host cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Physics.MaxDeltaTime < 0:
		return fmt.Errorf("%w: physics.max_delta_time %v < 0", ErrInvalid, c.Physics.MaxDeltaTime)
	case c.Player.SpeedX < 0 || c.Player.SpeedY < 0:
		return fmt.Errorf("%w: player speed must not be negative", ErrInvalid)
	case c.Player.CollisionWidth <= 0 || c.Player.CollisionHeight <= 0:
		return fmt.Errorf("%w: player collision box must have an extent", ErrInvalid)
	case c.Surface.IceMultiplier < 0:
		return fmt.Errorf("%w: surface.ice_multiplier %v < 0", ErrInvalid, c.Surface.IceMultiplier)
	case c.Level.CellSize <= 0:
		return fmt.Errorf("%w: level.cell_size must be positive", ErrInvalid)
	case c.Server.TickRate <= 0:
		return fmt.Errorf("%w: server.tick_rate must be positive", ErrInvalid)
	}
	return nil
}
