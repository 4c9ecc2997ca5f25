package config

import (
	"errors"
	"fmt"
	"math"
	"regexp"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// rule is one constraint on a RunnerConfig. Rules run in order, so later
// rules may rely on fields repaired by earlier ones.
type rule struct {
	field string
	msg   string
	bad   func(c *RunnerConfig) bool
	fix   func(c *RunnerConfig, d RunnerConfig)
}

var rules = []rule{
	{"viewport.width", "must be positive",
		func(c *RunnerConfig) bool { return !pos(c.Viewport.Width) },
		func(c *RunnerConfig, d RunnerConfig) { c.Viewport.Width = d.Viewport.Width }},
	{"viewport.height", "must be positive",
		func(c *RunnerConfig) bool { return !pos(c.Viewport.Height) },
		func(c *RunnerConfig, d RunnerConfig) { c.Viewport.Height = d.Viewport.Height }},
	{"viewport.spawn_margin", "must not be negative",
		func(c *RunnerConfig) bool { return !nonNeg(c.Viewport.SpawnMargin) },
		func(c *RunnerConfig, d RunnerConfig) { c.Viewport.SpawnMargin = d.Viewport.SpawnMargin }},
	{"viewport.despawn_margin", "must not be negative",
		func(c *RunnerConfig) bool { return !nonNeg(c.Viewport.DespawnMargin) },
		func(c *RunnerConfig, d RunnerConfig) { c.Viewport.DespawnMargin = d.Viewport.DespawnMargin }},

	{"gameplay.gravity", "must be positive",
		func(c *RunnerConfig) bool { return !pos(c.Gameplay.Gravity) },
		func(c *RunnerConfig, d RunnerConfig) { c.Gameplay.Gravity = d.Gameplay.Gravity }},
	{"gameplay.jump_velocity", "must be negative (upward)",
		func(c *RunnerConfig) bool { return !pos(-c.Gameplay.JumpVelocity) },
		func(c *RunnerConfig, d RunnerConfig) { c.Gameplay.JumpVelocity = d.Gameplay.JumpVelocity }},
	{"gameplay.speed", "must be positive",
		func(c *RunnerConfig) bool { return !pos(c.Gameplay.Speed) },
		func(c *RunnerConfig, d RunnerConfig) { c.Gameplay.Speed = d.Gameplay.Speed }},
	{"gameplay.ground_offset", "must lie within the viewport",
		func(c *RunnerConfig) bool {
			return !nonNeg(c.Gameplay.GroundOffset) || c.Gameplay.GroundOffset >= c.Viewport.Height
		},
		func(c *RunnerConfig, d RunnerConfig) {
			c.Gameplay.GroundOffset = min(d.Gameplay.GroundOffset, c.Viewport.Height/2)
		}},
	{"gameplay.spawn_interval", "bounds must be positive",
		func(c *RunnerConfig) bool { return !positive(c.Gameplay.SpawnInterval) },
		func(c *RunnerConfig, d RunnerConfig) { c.Gameplay.SpawnInterval = d.Gameplay.SpawnInterval }},
	{"gameplay.spawn_interval", "min must not exceed max",
		func(c *RunnerConfig) bool { return c.Gameplay.SpawnInterval.Min > c.Gameplay.SpawnInterval.Max },
		func(c *RunnerConfig, _ RunnerConfig) { swap(&c.Gameplay.SpawnInterval) }},
	{"gameplay.spawn_interval", "must not be zero-width",
		func(c *RunnerConfig) bool { return c.Gameplay.SpawnInterval.Min == c.Gameplay.SpawnInterval.Max },
		func(c *RunnerConfig, d RunnerConfig) { c.Gameplay.SpawnInterval = d.Gameplay.SpawnInterval }},
	{"gameplay.obstacle_size", "bounds must be positive",
		func(c *RunnerConfig) bool { return !positive(c.Gameplay.ObstacleSize) },
		func(c *RunnerConfig, d RunnerConfig) { c.Gameplay.ObstacleSize = d.Gameplay.ObstacleSize }},
	{"gameplay.obstacle_size", "min must not exceed max",
		func(c *RunnerConfig) bool { return c.Gameplay.ObstacleSize.Min > c.Gameplay.ObstacleSize.Max },
		func(c *RunnerConfig, _ RunnerConfig) { swap(&c.Gameplay.ObstacleSize) }},
	{"gameplay.obstacle_size", "must not be zero-width",
		func(c *RunnerConfig) bool { return c.Gameplay.ObstacleSize.Min == c.Gameplay.ObstacleSize.Max },
		func(c *RunnerConfig, d RunnerConfig) { c.Gameplay.ObstacleSize = d.Gameplay.ObstacleSize }},
	{"gameplay.spawn_roll", "must be per_spawn or per_frame",
		func(c *RunnerConfig) bool { return !c.Gameplay.SpawnRoll.Valid() },
		func(c *RunnerConfig, d RunnerConfig) { c.Gameplay.SpawnRoll = d.Gameplay.SpawnRoll }},

	{"player.x", "must lie within the viewport",
		func(c *RunnerConfig) bool { return !nonNeg(c.Player.X) || c.Player.X >= c.Viewport.Width },
		func(c *RunnerConfig, d RunnerConfig) { c.Player.X = min(d.Player.X, c.Viewport.Width/4) }},
	{"player.width", "must be positive",
		func(c *RunnerConfig) bool { return !pos(c.Player.Width) },
		func(c *RunnerConfig, d RunnerConfig) { c.Player.Width = d.Player.Width }},
	{"player.height", "must be positive",
		func(c *RunnerConfig) bool { return !pos(c.Player.Height) },
		func(c *RunnerConfig, d RunnerConfig) { c.Player.Height = d.Player.Height }},
	{"player.hitbox_inset", "must leave a non-empty hitbox",
		func(c *RunnerConfig) bool {
			return !nonNeg(c.Player.HitboxInset) || 2*c.Player.HitboxInset >= min(c.Player.Width, c.Player.Height)
		},
		func(c *RunnerConfig, _ RunnerConfig) { c.Player.HitboxInset = 0 }},

	{"clock.max_step", "must be positive",
		func(c *RunnerConfig) bool { return !pos(c.Clock.MaxStep) },
		func(c *RunnerConfig, d RunnerConfig) { c.Clock.MaxStep = d.Clock.MaxStep }},

	{"theme.primary", "must be a hex color",
		func(c *RunnerConfig) bool { return !hexColor.MatchString(c.Theme.Primary) },
		func(c *RunnerConfig, d RunnerConfig) { c.Theme.Primary = d.Theme.Primary }},
	{"theme.accent", "must be a hex color",
		func(c *RunnerConfig) bool { return !hexColor.MatchString(c.Theme.Accent) },
		func(c *RunnerConfig, d RunnerConfig) { c.Theme.Accent = d.Theme.Accent }},
	{"theme.background", "must be a hex color",
		func(c *RunnerConfig) bool { return !hexColor.MatchString(c.Theme.Background) },
		func(c *RunnerConfig, d RunnerConfig) { c.Theme.Background = d.Theme.Background }},
}

// Validate reports every constraint the config violates.
// Returns nil when the config can be handed to the simulation as is.
func (c RunnerConfig) Validate() error {
	var errs []error
	for _, r := range rules {
		if r.bad(&c) {
			errs = append(errs, fmt.Errorf("config: %s %s", r.field, r.msg))
		}
	}
	return errors.Join(errs...)
}

// Normalize repairs invalid fields in place, using defaults for values that
// cannot be salvaged and swapping inverted ranges. It returns one message
// per repair so callers can log them.
func (c *RunnerConfig) Normalize() []string {
	d := DefaultRunnerConfig()
	var fixes []string
	for _, r := range rules {
		if !r.bad(c) {
			continue
		}
		r.fix(c, d)
		fixes = append(fixes, fmt.Sprintf("%s %s; repaired", r.field, r.msg))
	}
	return fixes
}

func positive(r Range) bool {
	return pos(r.Min) && pos(r.Max)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// pos and nonNeg reject NaN and ±Inf along with out-of-range values.
func pos(x float64) bool    { return finite(x) && x > 0 }
func nonNeg(x float64) bool { return finite(x) && x >= 0 }

func swap(r *Range) {
	r.Min, r.Max = r.Max, r.Min
}
