package runner

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/javi-run/internal/config"
	"github.com/vovakirdan/javi-run/internal/core"
)

func newTestGame(cfg config.RunnerConfig, store HighScoreStore) *Game {
	return New(cfg, core.DefaultConfig(),
		WithRand(&seqRand{vals: []float64{0.25, 0.5, 0.75}}),
		WithHighScoreStore(store))
}

func press(actions ...core.Action) core.InputFrame {
	return core.NewInputFrame(actions...)
}

func TestGameStartsInSplash(t *testing.T) {
	g := newTestGame(quietConfig(), nil)
	if g.Phase() != PhaseSplash {
		t.Fatalf("phase = %v, want splash", g.Phase())
	}

	// Splash does not simulate.
	before := g.Snapshot()
	g.Step(1, press())
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Error("splash should not simulate")
	}
}

func TestGameTransitions(t *testing.T) {
	tests := []struct {
		name   string
		from   Phase
		action core.Action
		want   Phase
	}{
		{"splash primary starts", PhaseSplash, core.ActionJump, PhaseRunning},
		{"splash pause ignored", PhaseSplash, core.ActionPause, PhaseSplash},
		{"splash restart starts", PhaseSplash, core.ActionRestart, PhaseRunning},
		{"running pause", PhaseRunning, core.ActionPause, PhasePaused},
		{"running restart", PhaseRunning, core.ActionRestart, PhaseRunning},
		{"paused pause resumes", PhasePaused, core.ActionPause, PhaseRunning},
		{"paused primary ignored", PhasePaused, core.ActionJump, PhasePaused},
		{"paused restart", PhasePaused, core.ActionRestart, PhaseRunning},
		{"game over primary restarts", PhaseGameOver, core.ActionJump, PhaseRunning},
		{"game over pause ignored", PhaseGameOver, core.ActionPause, PhaseGameOver},
		{"game over restart", PhaseGameOver, core.ActionRestart, PhaseRunning},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(quietConfig(), nil)
			driveTo(t, g, tc.from)

			res := g.Step(0, press(tc.action))
			if res.Phase != tc.want || g.Phase() != tc.want {
				t.Errorf("phase = %v, want %v", g.Phase(), tc.want)
			}
		})
	}
}

// driveTo moves a fresh game into phase p.
func driveTo(t *testing.T, g *Game, p Phase) {
	t.Helper()
	switch p {
	case PhaseSplash:
		return
	case PhaseRunning:
		g.Step(0, press(core.ActionJump))
	case PhasePaused:
		g.Step(0, press(core.ActionJump))
		g.Step(0, press(core.ActionPause))
	case PhaseGameOver:
		g.Step(0, press(core.ActionJump))
		crash(g)
		g.Step(0, press())
	}
	if g.Phase() != p {
		t.Fatalf("could not reach %v, at %v", p, g.Phase())
	}
}

// crash places an obstacle on top of the player.
func crash(g *Game) {
	p := g.world.Player()
	g.world.obstacles = append(g.world.obstacles, Obstacle{X: p.X, Y: p.Y, W: p.W, H: p.H})
}

func TestGamePrimaryStartsWithoutJumping(t *testing.T) {
	g := newTestGame(quietConfig(), nil)

	res := g.Step(1.0/60, press(core.ActionJump))
	if !res.Started {
		t.Error("Started should be set")
	}
	if p := g.world.Player(); !p.OnGround || p.VY != 0 {
		t.Errorf("starting should not jump, player = %+v", p)
	}

	g.Step(1.0/60, press(core.ActionJump))
	if g.world.Player().OnGround {
		t.Error("primary while running should jump")
	}
}

func TestGameRestartAndPrimaryInOneFrame(t *testing.T) {
	g := newTestGame(quietConfig(), nil)
	driveTo(t, g, PhaseRunning)

	g.Step(1.0/60, press(core.ActionRestart, core.ActionJump))
	if !g.world.Player().OnGround {
		t.Error("a restart frame should not also jump")
	}
}

func TestGamePauseWithRestartInOneFrame(t *testing.T) {
	tests := []struct {
		name string
		from Phase
		want Phase
	}{
		{"from splash", PhaseSplash, PhaseRunning},
		{"from game over", PhaseGameOver, PhaseRunning},
		{"from running", PhaseRunning, PhasePaused},
		{"from paused", PhasePaused, PhaseRunning},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(quietConfig(), nil)
			driveTo(t, g, tc.from)

			res := g.Step(0, press(core.ActionRestart, core.ActionPause))
			if !res.Started {
				t.Error("restart should start a run")
			}
			if g.Phase() != tc.want {
				t.Errorf("phase = %v, want %v", g.Phase(), tc.want)
			}
		})
	}

	g := newTestGame(quietConfig(), nil)
	g.Step(0, press(core.ActionJump, core.ActionPause))
	if g.Phase() != PhaseRunning {
		t.Errorf("start and pause from splash: phase = %v, want running", g.Phase())
	}
}

func TestGameCollisionEndsRun(t *testing.T) {
	g := newTestGame(quietConfig(), nil)
	driveTo(t, g, PhaseRunning)
	crash(g)

	res := g.Step(1.0/60, press())
	if !res.Ended || res.Phase != PhaseGameOver {
		t.Fatalf("collision should end the run: %+v", res)
	}
	if g.world.Player().Alive {
		t.Error("player should be dead")
	}

	// Updates are no-ops until a restart or primary action.
	frozen := g.Snapshot()
	for _, dt := range []float64{1.0 / 60, 0.5, 3} {
		if res := g.Step(dt, press(core.ActionPause)); res.Ended || res.Started {
			t.Errorf("unexpected transition: %+v", res)
		}
		if !reflect.DeepEqual(frozen, g.Snapshot()) {
			t.Fatalf("state changed after game over (dt=%v)", dt)
		}
	}

	res = g.Step(1.0/60, press(core.ActionJump))
	if !res.Started || g.Phase() != PhaseRunning {
		t.Fatalf("primary should restart: %+v", res)
	}
	p := g.world.Player()
	if !p.Alive || !p.OnGround || g.Score() != 0 || len(g.world.Obstacles()) != 0 {
		t.Errorf("restart did not reset: player=%+v score=%d obstacles=%d",
			p, g.Score(), len(g.world.Obstacles()))
	}
}

func TestGamePauseFreezesAndResumes(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	paused := newTestGame(cfg, nil)
	straight := newTestGame(cfg, nil)

	warmup := func(g *Game) {
		g.Step(0, press(core.ActionJump))
		for i := 0; i < 30; i++ {
			in := press()
			if i == 5 {
				in.Set(core.ActionJump)
			}
			g.Step(1.0/60, in)
		}
	}
	warmup(paused)
	warmup(straight)

	paused.Step(0, press(core.ActionPause))
	frozen := paused.Snapshot()
	for _, dt := range []float64{0, 1.0 / 60, 0.5, 10} {
		paused.Step(dt, press(core.ActionJump))
		if !reflect.DeepEqual(frozen, paused.Snapshot()) {
			t.Fatalf("paused state changed with dt=%v", dt)
		}
	}

	paused.Step(1.0/60, press(core.ActionPause))
	straight.Step(1.0/60, press())
	if paused.Phase() != PhaseRunning {
		t.Fatalf("phase = %v, want running", paused.Phase())
	}
	if !reflect.DeepEqual(paused.Snapshot(), straight.Snapshot()) {
		t.Errorf("resume should continue from the frozen state:\n got %+v\nwant %+v",
			paused.Snapshot(), straight.Snapshot())
	}
}

func TestGameHitboxToggle(t *testing.T) {
	cfg := quietConfig()
	cfg.Debug.ShowHitboxes = true
	g := newTestGame(cfg, nil)
	if !g.ShowHitboxes() {
		t.Fatal("config default should apply")
	}

	g.Step(0, press(core.ActionToggleHitboxes))
	if g.ShowHitboxes() || g.Phase() != PhaseSplash {
		t.Error("toggle should flip the flag without changing phase")
	}
	g.SetShowHitboxes(true)
	if !g.Snapshot().ShowHitboxes {
		t.Error("SetShowHitboxes should show in snapshot")
	}
}

func TestGameScoresAndPersistsHighScore(t *testing.T) {
	store := &fakeStore{high: 1}
	g := newTestGame(quietConfig(), store)
	if g.HighScore() != 1 {
		t.Fatalf("high score = %d, want 1 from store", g.HighScore())
	}
	driveTo(t, g, PhaseRunning)

	for i := 0; i < 3; i++ {
		g.world.obstacles = append(g.world.obstacles, Obstacle{X: 50, Y: 0, W: 10, H: 10})
		g.Step(1.0/60, press())
	}

	if g.Score() != 3 || g.HighScore() != 3 {
		t.Errorf("score=%d high=%d, want 3 and 3", g.Score(), g.HighScore())
	}
	if want := []int{2, 3}; !reflect.DeepEqual(store.saves, want) {
		t.Errorf("saves = %v, want %v", store.saves, want)
	}
}

func TestGameResize(t *testing.T) {
	g := newTestGame(quietConfig(), nil)
	g.Resize(1280, 720)
	v := g.Snapshot()
	if v.ViewportWidth != 1280 || v.ViewportHeight != 720 {
		t.Errorf("viewport = %vx%v, want 1280x720", v.ViewportWidth, v.ViewportHeight)
	}
	if v.Player.Y+v.Player.H != v.GroundY {
		t.Error("player should stay on the ground")
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	rt := core.DefaultConfig()
	rt.Seed = 12345

	run := func() SimResult {
		g := New(cfg, rt)
		return Simulate(g, NewAutopilot(cfg), 1.0/60, 30)
	}

	a, b := run(), run()
	if a != b {
		t.Errorf("same seed gave different runs: %+v vs %+v", a, b)
	}
}
