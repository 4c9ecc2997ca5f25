package runner

import (
	"fmt"
	"math"

	"github.com/vovakirdan/javi-run/internal/config"
	"github.com/vovakirdan/javi-run/internal/core"
)

// Overlay and HUD texts.
const (
	Title         = "Javi Run"
	Tagline       = "Blue & White endless runner"
	StartHint     = "Press Space / Tap to Start"
	PausedTitle   = "PAUSED"
	ResumeHint    = "Press P to resume"
	GameOverTitle = "Game Over"
	RestartHint   = "Press Space / Tap to Restart"
)

// Decorative fallback background: stripes every StripeSpacing px, each
// StripeWidth px wide, scrolling at StripeSpeed px/s.
const (
	StripeSpacing = 140.0
	StripeWidth   = 48.0
	StripeSpeed   = 30.0
	// ParallaxFactor scales the scroll speed for the background sprite.
	ParallaxFactor = 0.25
)

// View is an immutable snapshot of a game for renderers.
type View struct {
	Phase     Phase
	Score     int
	HighScore int

	Player    Player
	Obstacles []Obstacle
	Elapsed   float64

	ViewportWidth  float64
	ViewportHeight float64
	GroundY        float64
	Speed          float64
	HitboxInset    float64

	ShowHitboxes bool
	Theme        config.Theme
	Sprites      config.Sprites
}

// PlayerHitbox returns the inset collision box of the player.
func (v View) PlayerHitbox() core.Rect {
	return v.Player.Hitbox(v.HitboxInset)
}

// ScoreText returns the HUD score line.
func (v View) ScoreText() string {
	return fmt.Sprintf("Score: %d", v.Score)
}

// BestText returns the HUD high score line.
func (v View) BestText() string {
	return fmt.Sprintf("Best: %d", v.HighScore)
}

// Overlay returns the title and hint for the current phase, or empty
// strings while running.
func (v View) Overlay() (title, hint string) {
	switch v.Phase {
	case PhaseSplash:
		return Title, StartHint
	case PhasePaused:
		return PausedTitle, ResumeHint
	case PhaseGameOver:
		return GameOverTitle, RestartHint
	default:
		return "", ""
	}
}

// StripeOffset returns how far the fallback stripes have scrolled.
func (v View) StripeOffset() float64 {
	return math.Mod(v.Elapsed*StripeSpeed, StripeSpacing)
}

// ParallaxOffset returns how far a background tile of the given width
// has scrolled.
func (v View) ParallaxOffset(tileW float64) float64 {
	if tileW <= 0 {
		return 0
	}
	return math.Mod(v.Elapsed*v.Speed*ParallaxFactor, tileW)
}
