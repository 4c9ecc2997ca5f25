package runner

import (
	"math"

	"github.com/vovakirdan/javi-run/internal/config"
	"github.com/vovakirdan/javi-run/internal/core"
)

// Autopilot decides when to jump. It is used by the headless simulator
// and by demo hosts.
type Autopilot struct {
	gravity      float64
	jumpVelocity float64
	speed        float64
}

// NewAutopilot creates an autopilot tuned to the given physics.
func NewAutopilot(cfg config.RunnerConfig) Autopilot {
	return Autopilot{
		gravity:      cfg.Gameplay.Gravity,
		jumpVelocity: cfg.Gameplay.JumpVelocity,
		speed:        cfg.Gameplay.Speed,
	}
}

// Airtime returns the seconds between takeoff and landing.
func (a Autopilot) Airtime() float64 {
	if a.gravity <= 0 {
		return 0
	}
	return 2 * math.Abs(a.jumpVelocity) / a.gravity
}

// ShouldJump reports whether to jump now so that the nearest obstacle
// ahead passes under the middle of the arc.
func (a Autopilot) ShouldJump(v View) bool {
	if v.Phase != PhaseRunning || !v.Player.OnGround {
		return false
	}
	hitbox := v.PlayerHitbox()
	for _, o := range v.Obstacles {
		if o.Passed || o.Right() < hitbox.X {
			continue
		}
		// Horizontal distance covered in the air, less what has to be
		// cleared, split evenly before and after the obstacle.
		span := o.W + hitbox.W
		lead := math.Max(0, (a.speed*a.Airtime()-span)/2)
		return o.X-hitbox.Right() <= lead
	}
	return false
}

// Input returns the intents the autopilot would send for v.
func (a Autopilot) Input(v View) core.InputFrame {
	var in core.InputFrame
	if v.Phase == PhaseRunning && a.ShouldJump(v) {
		in.Set(core.ActionJump)
	}
	return in
}
