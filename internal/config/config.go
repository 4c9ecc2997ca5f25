// Package config provides YAML/TOML-based runner configuration loading,
// normalization, and validation.
package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RunnerConfig contains all configuration for Javi Run.
// It is loaded once at startup and read-only afterwards.
type RunnerConfig struct {
	Theme    Theme    `yaml:"theme" toml:"theme"`
	Sprites  Sprites  `yaml:"sprites" toml:"sprites"`
	Gameplay Gameplay `yaml:"gameplay" toml:"gameplay"`
	Player   Player   `yaml:"player" toml:"player"`
	Viewport Viewport `yaml:"viewport" toml:"viewport"`
	Clock    Clock    `yaml:"clock" toml:"clock"`
	Debug    Debug    `yaml:"debug" toml:"debug"`
}

// Theme holds display colors as hex strings. Opaque to the simulation.
type Theme struct {
	Primary    string `yaml:"primary" toml:"primary"`
	Accent     string `yaml:"accent" toml:"accent"`
	Background string `yaml:"background" toml:"background"`
}

// Sprites holds image paths. Empty or unreadable paths fall back to shapes.
type Sprites struct {
	Character  string `yaml:"character" toml:"character"`
	Obstacle   string `yaml:"obstacle" toml:"obstacle"`
	Background string `yaml:"background" toml:"background"`
}

// Gameplay defines physics and spawning parameters.
type Gameplay struct {
	Gravity       float64   `yaml:"gravity" toml:"gravity"`             // px/s^2
	JumpVelocity  float64   `yaml:"jump_velocity" toml:"jump_velocity"` // px/s, negative = up
	GroundOffset  float64   `yaml:"ground_offset" toml:"ground_offset"` // px above the viewport bottom
	Speed         float64   `yaml:"speed" toml:"speed"`                 // scroll speed px/s
	SpawnInterval Range     `yaml:"spawn_interval" toml:"spawn_interval"`
	ObstacleSize  Range     `yaml:"obstacle_size" toml:"obstacle_size"`
	SpawnRoll     SpawnRoll `yaml:"spawn_roll" toml:"spawn_roll"`
}

// Player defines the player box.
type Player struct {
	X           float64 `yaml:"x" toml:"x"`
	Width       float64 `yaml:"width" toml:"width"`
	Height      float64 `yaml:"height" toml:"height"`
	HitboxInset float64 `yaml:"hitbox_inset" toml:"hitbox_inset"`
}

// Viewport defines the logical drawing surface.
type Viewport struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	SpawnMargin   float64 `yaml:"spawn_margin" toml:"spawn_margin"`
	DespawnMargin float64 `yaml:"despawn_margin" toml:"despawn_margin"`
}

// Clock defines host loop timing.
type Clock struct {
	MaxStep float64 `yaml:"max_step" toml:"max_step"` // seconds
}

// Debug holds developer toggles.
type Debug struct {
	ShowHitboxes bool `yaml:"show_hitboxes" toml:"show_hitboxes"`
}

// GroundY returns the absolute vertical coordinate of the ground line.
func (c RunnerConfig) GroundY() float64 {
	return c.Viewport.Height - c.Gameplay.GroundOffset
}

// SpawnRoll selects when a new spawn threshold is drawn.
type SpawnRoll string

const (
	// SpawnRollPerSpawn draws one threshold after each spawn.
	SpawnRollPerSpawn SpawnRoll = "per_spawn"
	// SpawnRollPerFrame draws a fresh threshold on every update.
	SpawnRollPerFrame SpawnRoll = "per_frame"
)

// Valid reports whether r is a known policy.
func (r SpawnRoll) Valid() bool {
	return r == SpawnRollPerSpawn || r == SpawnRollPerFrame
}

// Range is an inclusive [Min, Max] interval.
// Documents may write it as a two-element list or as a {min, max} mapping.
type Range struct {
	Min float64 `yaml:"min" toml:"min"`
	Max float64 `yaml:"max" toml:"max"`
}

// Lerp returns Min + t*(Max-Min).
func (r Range) Lerp(t float64) float64 {
	return r.Min + t*(r.Max-r.Min)
}

// UnmarshalYAML accepts both `[0.9, 1.5]` and `{min: 0.9, max: 1.5}`.
func (r *Range) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var pair []float64
		if err := value.Decode(&pair); err != nil {
			return err
		}
		if len(pair) != 2 {
			return fmt.Errorf("line %d: range needs exactly 2 values, got %d", value.Line, len(pair))
		}
		r.Min, r.Max = pair[0], pair[1]
		return nil
	case yaml.MappingNode:
		type plain Range
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*r = Range(p)
		return nil
	default:
		return fmt.Errorf("line %d: range must be a list or a mapping", value.Line)
	}
}

// MarshalYAML writes the compact list form.
func (r Range) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []float64{r.Min, r.Max} {
		var n yaml.Node
		if err := n.Encode(v); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &n)
	}
	return node, nil
}

// UnmarshalTOML accepts both `[0.9, 1.5]` and `{ min = 0.9, max = 1.5 }`.
func (r *Range) UnmarshalTOML(data any) error {
	switch v := data.(type) {
	case []any:
		if len(v) != 2 {
			return fmt.Errorf("range needs exactly 2 values, got %d", len(v))
		}
		lo, err := tomlNumber(v[0])
		if err != nil {
			return err
		}
		hi, err := tomlNumber(v[1])
		if err != nil {
			return err
		}
		r.Min, r.Max = lo, hi
		return nil
	case map[string]any:
		if raw, ok := v["min"]; ok {
			n, err := tomlNumber(raw)
			if err != nil {
				return err
			}
			r.Min = n
		}
		if raw, ok := v["max"]; ok {
			n, err := tomlNumber(raw)
			if err != nil {
				return err
			}
			r.Max = n
		}
		return nil
	default:
		return fmt.Errorf("range must be an array or a table, got %T", data)
	}
}

// MarshalTOML writes the compact array form.
func (r Range) MarshalTOML() ([]byte, error) {
	return fmt.Appendf(nil, "[%v, %v]", r.Min, r.Max), nil
}

func tomlNumber(v any) (float64, error) {
	switch n := v.(type) {
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	default:
		return 0, fmt.Errorf("range value must be a number, got %T", v)
	}
}
