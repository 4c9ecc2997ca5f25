// Package runner implements Javi Run: a side-scrolling runner where the
// player jumps over ground obstacles until the first collision.
//
// The package is pure simulation. Hosts own the frame loop: they turn
// timestamps into clamped steps (core.Clock), collect intents into a
// core.InputFrame, call Game.Step, then draw a View.
package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/javi-run/internal/config"
	"github.com/vovakirdan/javi-run/internal/core"
)

// Rand is the random source used for spawn timing and obstacle sizes.
// *rand.Rand satisfies it; tests inject scripted sequences.
type Rand interface {
	Float64() float64
}

// NewRand returns the default seeded source.
func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}

// Player is the jumping character. X is fixed for the whole run.
type Player struct {
	X, Y     float64
	W, H     float64
	VY       float64 // vertical velocity, positive is down
	OnGround bool
	Alive    bool
}

// Rect returns the full sprite box.
func (p Player) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// Hitbox returns the collision box, shrunk by inset on every side.
func (p Player) Hitbox(inset float64) core.Rect {
	return p.Rect().Inset(inset)
}

// Obstacle is a square block resting on the ground.
type Obstacle struct {
	X, Y   float64
	W, H   float64
	Passed bool // scored; flips at most once
}

// Rect returns the collision box.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Right returns the trailing edge.
func (o Obstacle) Right() float64 {
	return o.X + o.W
}

// Events reports what happened during one World.Update.
type Events struct {
	Spawned  int  // obstacles created
	Passed   int  // obstacles whose trailing edge crossed the player
	Collided bool // the player hit an obstacle and died
}

// World owns the player and the obstacle collection.
type World struct {
	cfg       config.RunnerConfig
	rng       Rand
	player    Player
	obstacles []Obstacle

	elapsed    float64 // seconds simulated since reset
	spawnTimer float64 // seconds since the last spawn
	nextSpawn  float64 // spawn threshold for spawnTimer

	viewportW float64
	groundY   float64
}

// NewWorld creates a world for the given (normalized) config.
func NewWorld(cfg config.RunnerConfig, rng Rand) *World {
	w := &World{
		cfg:       cfg,
		rng:       rng,
		obstacles: make([]Obstacle, 0, 8),
		viewportW: cfg.Viewport.Width,
		groundY:   cfg.GroundY(),
	}
	w.Reset()
	return w
}

// Reset clears obstacles and timers and puts a live player on the ground.
func (w *World) Reset() {
	w.obstacles = w.obstacles[:0]
	w.elapsed = 0
	w.spawnTimer = 0
	w.player = Player{
		X:        w.cfg.Player.X,
		W:        w.cfg.Player.Width,
		H:        w.cfg.Player.Height,
		Y:        w.groundY - w.cfg.Player.Height,
		OnGround: true,
		Alive:    true,
	}
	w.nextSpawn = w.rollSpawn()
}

// Update advances the world by dt seconds. jump is the primary-action
// intent for this tick; it only takes effect when the player is grounded.
// A dead player is not simulated.
func (w *World) Update(dt float64, jump bool) Events {
	var ev Events
	if !w.player.Alive {
		return ev
	}
	if dt < 0 {
		dt = 0
	}

	w.elapsed += dt
	w.spawnTimer += dt

	// Spawn
	if dt > 0 {
		if w.cfg.Gameplay.SpawnRoll == config.SpawnRollPerFrame {
			w.nextSpawn = w.rollSpawn()
		}
		if w.spawnTimer >= w.nextSpawn {
			w.spawn()
			ev.Spawned++
			w.spawnTimer = 0
			w.nextSpawn = w.rollSpawn()
		}
	}

	// Scroll, score, retire
	dx := w.cfg.Gameplay.Speed * dt
	kept := w.obstacles[:0]
	for _, o := range w.obstacles {
		o.X -= dx
		if !o.Passed && o.Right() < w.player.X {
			o.Passed = true
			ev.Passed++
		}
		if o.Right() < -w.cfg.Viewport.DespawnMargin {
			continue
		}
		kept = append(kept, o)
	}
	w.obstacles = kept

	// Semi-implicit Euler with the ground as a hard floor. A zero step
	// leaves a fresh takeoff alone.
	p := &w.player
	if dt > 0 {
		p.VY += w.cfg.Gameplay.Gravity * dt
		p.Y += p.VY * dt
		if p.Y+p.H >= w.groundY {
			p.Y = w.groundY - p.H
			p.VY = 0
			p.OnGround = true
		} else {
			p.OnGround = false
		}
	}

	// No double jump, no buffering
	if jump && p.OnGround {
		p.VY = w.cfg.Gameplay.JumpVelocity
		p.OnGround = false
	}

	// First overlap in insertion order ends the run
	hitbox := p.Hitbox(w.cfg.Player.HitboxInset)
	for _, o := range w.obstacles {
		if hitbox.Intersects(o.Rect()) {
			p.Alive = false
			ev.Collided = true
			break
		}
	}

	return ev
}

// SetViewport changes the logical surface size. Grounded entities stay on
// the (moved) ground line.
func (w *World) SetViewport(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	w.viewportW = width
	w.groundY = height - w.cfg.Gameplay.GroundOffset
	if w.player.OnGround || w.player.Y+w.player.H > w.groundY {
		w.player.Y = w.groundY - w.player.H
		w.player.VY = 0
		w.player.OnGround = true
	}
	for i := range w.obstacles {
		w.obstacles[i].Y = w.groundY - w.obstacles[i].H
	}
}

// Player returns a copy of the player.
func (w *World) Player() Player {
	return w.player
}

// Obstacles returns a copy of the obstacle collection in insertion order.
func (w *World) Obstacles() []Obstacle {
	out := make([]Obstacle, len(w.obstacles))
	copy(out, w.obstacles)
	return out
}

// Elapsed returns the seconds simulated since the last reset.
func (w *World) Elapsed() float64 {
	return w.elapsed
}

// GroundY returns the current ground line.
func (w *World) GroundY() float64 {
	return w.groundY
}

// ViewportWidth returns the current logical width.
func (w *World) ViewportWidth() float64 {
	return w.viewportW
}

func (w *World) rollSpawn() float64 {
	return w.cfg.Gameplay.SpawnInterval.Lerp(w.rng.Float64())
}

func (w *World) spawn() {
	size := math.Round(w.cfg.Gameplay.ObstacleSize.Lerp(w.rng.Float64()))
	w.obstacles = append(w.obstacles, Obstacle{
		X: w.viewportW + w.cfg.Viewport.SpawnMargin,
		Y: w.groundY - size,
		W: size,
		H: size,
	})
}
