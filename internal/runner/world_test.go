package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/javi-run/internal/config"
)

func TestWorldReset(t *testing.T) {
	cfg := quietConfig()
	w := NewWorld(cfg, &seqRand{vals: []float64{0.5}})
	w.obstacles = append(w.obstacles, Obstacle{X: 10, W: 10, H: 10})
	w.player.Alive = false
	w.Update(0.1, false)

	w.Reset()

	p := w.Player()
	if len(w.Obstacles()) != 0 {
		t.Errorf("Reset should clear obstacles, got %d", len(w.Obstacles()))
	}
	if p.Y != cfg.GroundY()-cfg.Player.Height {
		t.Errorf("player y = %v, want %v", p.Y, cfg.GroundY()-cfg.Player.Height)
	}
	if !p.OnGround || !p.Alive || p.VY != 0 {
		t.Errorf("player not reset: %+v", p)
	}
	if w.Elapsed() != 0 || w.spawnTimer != 0 {
		t.Errorf("timers not reset: elapsed=%v spawnTimer=%v", w.Elapsed(), w.spawnTimer)
	}
}

// Jump on tick 1 with dt=1.0 lands on tick 2 and stays grounded after.
func TestWorldJumpArcLandsOnce(t *testing.T) {
	cfg := quietConfig()
	cfg.Gameplay.Gravity = 1800
	cfg.Gameplay.JumpVelocity = -700
	cfg.Gameplay.Speed = 420
	w := NewWorld(cfg, &seqRand{vals: []float64{0}})
	if w.GroundY() != 440 {
		t.Fatalf("groundY = %v, want 440", w.GroundY())
	}
	rest := w.GroundY() - cfg.Player.Height

	landings := 0
	wasGrounded := w.Player().OnGround
	for tick := 1; tick <= 5; tick++ {
		w.Update(1.0, tick == 1)
		p := w.Player()
		if p.OnGround && !wasGrounded {
			landings++
			if p.Y != rest {
				t.Errorf("tick %d: landed at y=%v, want %v", tick, p.Y, rest)
			}
		}
		wasGrounded = p.OnGround
	}

	if landings != 1 {
		t.Errorf("landings = %d, want exactly 1", landings)
	}
	if p := w.Player(); !p.OnGround || p.Y != rest {
		t.Errorf("player should rest on ground, got %+v", p)
	}
}

func TestWorldJumpArcAtFrameRate(t *testing.T) {
	cfg := quietConfig()
	cfg.Gameplay.Gravity = 1800
	cfg.Gameplay.JumpVelocity = -700
	w := NewWorld(cfg, &seqRand{vals: []float64{0}})
	rest := w.GroundY() - cfg.Player.Height
	const dt = 1.0 / 60

	peak := rest
	landings, airborne := 0, 0
	wasGrounded := true
	for tick := 1; tick <= 120; tick++ {
		w.Update(dt, tick == 1)
		p := w.Player()
		if p.Y > rest {
			t.Fatalf("tick %d: y=%v is below the ground rest %v", tick, p.Y, rest)
		}
		peak = math.Min(peak, p.Y)
		if !p.OnGround {
			airborne++
		}
		if p.OnGround && !wasGrounded {
			landings++
			if p.Y != rest {
				t.Errorf("tick %d: landed at y=%v, want %v", tick, p.Y, rest)
			}
		}
		wasGrounded = p.OnGround
	}

	// v^2/2g is about 136px; the discrete step peaks a little lower.
	if rise := rest - peak; rise < 120 || rise > 140 {
		t.Errorf("jump rose %vpx, want 120-140", rise)
	}
	if airborne < 40 || airborne > 50 {
		t.Errorf("airborne for %d ticks, want 40-50", airborne)
	}
	if landings != 1 {
		t.Errorf("landings = %d, want exactly 1", landings)
	}
	if p := w.Player(); !p.OnGround || p.Y != rest {
		t.Errorf("player should rest on ground, got %+v", p)
	}
}

func TestWorldScoresPassedObstacleOnce(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.X = 100
	cfg.Gameplay.Speed = 420
	w := NewWorld(cfg, &seqRand{vals: []float64{0}})
	// Floating above the player so it never collides.
	w.obstacles = append(w.obstacles, Obstacle{X: 1000, Y: 0, W: 60, H: 10})

	passed := 0
	for i := 0; i < 80; i++ {
		ev := w.Update(1.0/30.0, false)
		passed += ev.Passed
	}

	if passed != 1 {
		t.Fatalf("passed events = %d, want 1", passed)
	}
	obs := w.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("obstacle retired too early: %d left", len(obs))
	}
	if !obs[0].Passed {
		t.Error("obstacle should be marked passed")
	}

	for i := 0; i < 100; i++ {
		if ev := w.Update(1.0/30.0, false); ev.Passed != 0 {
			t.Fatalf("obstacle scored twice at step %d", i)
		}
	}
	if len(w.Obstacles()) != 0 {
		t.Errorf("obstacle should be retired, got %d", len(w.Obstacles()))
	}
}

func TestWorldPassedUsesStrictComparison(t *testing.T) {
	cfg := quietConfig()
	cfg.Player.X = 120
	cfg.Gameplay.Speed = 400
	w := NewWorld(cfg, &seqRand{vals: []float64{0}})
	w.obstacles = append(w.obstacles, Obstacle{X: 160, Y: 0, W: 60, H: 10})

	// Right edge lands exactly on the player's x.
	if ev := w.Update(0.25, false); ev.Passed != 0 {
		t.Fatal("obstacle with x+w == player.x must not be passed")
	}
	if ev := w.Update(0.25, false); ev.Passed != 1 {
		t.Fatal("obstacle with x+w < player.x must be passed")
	}
}

func TestWorldScoresBeforeRetiring(t *testing.T) {
	cfg := quietConfig()
	w := NewWorld(cfg, &seqRand{vals: []float64{0}})
	w.obstacles = append(w.obstacles, Obstacle{X: 200, Y: 0, W: 60, H: 10})

	// One huge step carries it past the player and the despawn margin.
	ev := w.Update(10, false)
	if ev.Passed != 1 {
		t.Errorf("passed = %d, want 1", ev.Passed)
	}
	if len(w.Obstacles()) != 0 {
		t.Errorf("obstacle should be retired in the same step")
	}
}

func TestWorldGroundInvariant(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	w := NewWorld(cfg, NewRand(7))
	steps := []float64{0, 1.0 / 60, 1.0 / 30, 0.005, 0.2, 1.0, 1.0 / 144}

	for i := 0; i < 2000 && w.Player().Alive; i++ {
		w.Update(steps[i%len(steps)], i%7 == 0)
		p := w.Player()
		if p.Y+p.H > w.GroundY() {
			t.Fatalf("step %d: player below ground: y=%v h=%v ground=%v", i, p.Y, p.H, w.GroundY())
		}
	}
}

func TestWorldJumpIgnoredWhileAirborne(t *testing.T) {
	cfg := quietConfig()
	a := NewWorld(cfg, &seqRand{vals: []float64{0}})
	b := NewWorld(cfg, &seqRand{vals: []float64{0}})

	a.Update(0, true)
	b.Update(0, true)
	if a.Player().OnGround {
		t.Fatal("jump from ground should take off")
	}

	for i := 0; i < 10; i++ {
		a.Update(1.0/60, true)
		b.Update(1.0/60, false)
		if a.Player() != b.Player() {
			t.Fatalf("step %d: airborne jump changed state: %+v vs %+v", i, a.Player(), b.Player())
		}
	}
}

func TestWorldEulerSplitStep(t *testing.T) {
	cfg := quietConfig()
	g := cfg.Gameplay.Gravity

	airborne := func() *World {
		w := NewWorld(cfg, &seqRand{vals: []float64{0}})
		w.Update(0, true)
		return w
	}

	tests := []struct {
		name string
		a, b float64
	}{
		{"halves", 0.05, 0.05},
		{"uneven", 0.01, 0.09},
		{"zero first", 0, 0.1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			whole := airborne()
			split := airborne()
			whole.Update(tc.a+tc.b, false)
			split.Update(tc.a, false)
			split.Update(tc.b, false)

			pw, ps := whole.Player(), split.Player()
			if math.Abs(pw.VY-ps.VY) > 1e-9 {
				t.Errorf("velocity differs: %v vs %v", pw.VY, ps.VY)
			}
			// Semi-implicit Euler differs by exactly g*a*b between the two.
			if diff := pw.Y - ps.Y; math.Abs(diff-g*tc.a*tc.b) > 1e-9 {
				t.Errorf("position difference = %v, want %v", diff, g*tc.a*tc.b)
			}
		})
	}

	t.Run("ground clamp", func(t *testing.T) {
		whole := airborne()
		split := airborne()
		whole.Update(2, false)
		split.Update(1.3, false)
		split.Update(0.7, false)
		if whole.Player().Y != split.Player().Y {
			t.Errorf("clamped positions differ: %v vs %v", whole.Player().Y, split.Player().Y)
		}
		if whole.Player().Y != whole.GroundY()-cfg.Player.Height {
			t.Errorf("player should be clamped to the ground")
		}
	})
}

func TestWorldCollision(t *testing.T) {
	cfg := quietConfig()
	ground := cfg.GroundY()
	// Default hitbox: x 126..170, y 382..434.
	tests := []struct {
		name string
		obs  Obstacle
		want bool
	}{
		{"overlapping", Obstacle{X: 150, Y: ground - 50, W: 50, H: 50}, true},
		{"touching hitbox right edge", Obstacle{X: 170, Y: ground - 50, W: 50, H: 50}, false},
		{"inside inset margin only", Obstacle{X: 171, Y: ground - 50, W: 50, H: 50}, false},
		{"just inside", Obstacle{X: 169.5, Y: ground - 50, W: 50, H: 50}, true},
		{"touching hitbox top edge", Obstacle{X: 140, Y: 300, W: 20, H: 82}, false},
		{"disjoint", Obstacle{X: 600, Y: ground - 50, W: 50, H: 50}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := NewWorld(cfg, &seqRand{vals: []float64{0}})
			w.obstacles = append(w.obstacles, tc.obs)
			ev := w.Update(0, false)
			if ev.Collided != tc.want {
				t.Errorf("Collided = %v, want %v", ev.Collided, tc.want)
			}
			if w.Player().Alive == tc.want {
				t.Errorf("Alive = %v, want %v", w.Player().Alive, !tc.want)
			}
		})
	}
}

func TestWorldDeadIsNoOp(t *testing.T) {
	cfg := quietConfig()
	w := NewWorld(cfg, &seqRand{vals: []float64{0}})
	w.obstacles = append(w.obstacles, Obstacle{X: 130, Y: cfg.GroundY() - 50, W: 50, H: 50})
	w.Update(0, false)

	before := w.Obstacles()
	p := w.Player()
	w.Update(1, true)
	if w.Player() != p || w.Obstacles()[0] != before[0] {
		t.Error("dead world should not change")
	}
}

func TestWorldSpawn(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	// First value rolls the threshold, second the size.
	w := NewWorld(cfg, &seqRand{vals: []float64{0, 1}})

	// Threshold 0.9 s.
	if ev := w.Update(0.5, false); ev.Spawned != 0 {
		t.Fatal("spawned before threshold")
	}
	ev := w.Update(0.5, false)
	if ev.Spawned != 1 {
		t.Fatalf("Spawned = %d, want 1", ev.Spawned)
	}
	obs := w.Obstacles()
	if len(obs) != 1 {
		t.Fatalf("obstacles = %d, want 1", len(obs))
	}
	o := obs[0]
	if o.W != 96 || o.H != 96 {
		t.Errorf("size = %vx%v, want 96x96", o.W, o.H)
	}
	if o.Y+o.H != w.GroundY() {
		t.Errorf("obstacle should rest on the ground, bottom=%v", o.Y+o.H)
	}
	wantX := cfg.Viewport.Width + cfg.Viewport.SpawnMargin - cfg.Gameplay.Speed*0.5
	if math.Abs(o.X-wantX) > 1e-9 {
		t.Errorf("x = %v, want %v (spawned then scrolled)", o.X, wantX)
	}
	if w.spawnTimer != 0 {
		t.Errorf("spawn timer should restart, got %v", w.spawnTimer)
	}
}

func TestWorldSpawnRollPolicy(t *testing.T) {
	tests := []struct {
		name  string
		roll  config.SpawnRoll
		draws int
	}{
		// reset roll, then nothing until a spawn
		{"per spawn", config.SpawnRollPerSpawn, 1},
		// reset roll, then one roll per update
		{"per frame", config.SpawnRollPerFrame, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.DefaultRunnerConfig()
			cfg.Gameplay.SpawnRoll = tc.roll
			rng := &seqRand{vals: []float64{1}}
			w := NewWorld(cfg, rng)
			for i := 0; i < 3; i++ {
				w.Update(0.1, false)
			}
			if rng.i != tc.draws {
				t.Errorf("draws = %d, want %d", rng.i, tc.draws)
			}
		})
	}
}

func TestWorldSetViewport(t *testing.T) {
	cfg := quietConfig()
	w := NewWorld(cfg, &seqRand{vals: []float64{0}})
	w.obstacles = append(w.obstacles, Obstacle{X: 500, Y: cfg.GroundY() - 50, W: 50, H: 50})

	w.SetViewport(1280, 720)

	wantGround := 720 - cfg.Gameplay.GroundOffset
	if w.GroundY() != wantGround {
		t.Errorf("groundY = %v, want %v", w.GroundY(), wantGround)
	}
	if p := w.Player(); p.Y+p.H != wantGround || !p.OnGround {
		t.Errorf("player should be re-grounded, got %+v", p)
	}
	if o := w.Obstacles()[0]; o.X != 500 || o.Y+o.H != wantGround {
		t.Errorf("obstacle should keep x and rest on the new ground, got %+v", o)
	}

	w.SetViewport(0, 100)
	if w.ViewportWidth() != 1280 {
		t.Error("invalid viewport should be ignored")
	}
}
