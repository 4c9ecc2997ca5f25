package runner

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/javi-run/internal/config"
	"github.com/vovakirdan/javi-run/internal/core"
)

// Visual characters for terminal rendering
const (
	PlayerBody   = '█'
	PlayerEye    = '◆'
	ObstacleChar = '▓'
	GroundChar   = '═'
	StripeChar   = '░'
)

// StepResult describes the outcome of one Game.Step.
type StepResult struct {
	Phase     Phase
	Score     int
	HighScore int
	Events    Events
	Started   bool // a new run began this step
	Ended     bool // the run ended this step
}

// Option configures a Game.
type Option func(*options)

type options struct {
	rng    Rand
	store  HighScoreStore
	logger *log.Logger
}

// WithRand replaces the seeded default random source.
func WithRand(r Rand) Option {
	return func(o *options) { o.rng = r }
}

// WithHighScoreStore sets where the high score is loaded from and saved to.
func WithHighScoreStore(s HighScoreStore) Option {
	return func(o *options) { o.store = s }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Game is the runner state machine. It owns the world and the scoreboard
// and is driven by one Step per host frame.
type Game struct {
	cfg          config.RunnerConfig
	world        *World
	score        *Scoreboard
	phase        Phase
	showHitboxes bool
	logger       *log.Logger
}

// New creates a game in the Splash phase. cfg is expected to be normalized.
// A zero runtime seed picks one from the current time.
func New(cfg config.RunnerConfig, runtime core.RuntimeConfig, opts ...Option) *Game {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	if o.rng == nil {
		seed := runtime.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		o.rng = NewRand(seed)
	}

	return &Game{
		cfg:          cfg,
		world:        NewWorld(cfg, o.rng),
		score:        NewScoreboard(o.store, o.logger),
		phase:        PhaseSplash,
		showHitboxes: cfg.Debug.ShowHitboxes,
		logger:       o.logger,
	}
}

// Step applies the intents collected since the previous frame, then
// advances the simulation by dt seconds if a run is active.
//
// Intents are applied in order: restart, primary action, pause, hitbox
// toggle. The primary action starts a run from Splash or Game Over and
// jumps while Running; it never does both in one step. Pause only acts when
// the step began Running or Paused.
func (g *Game) Step(dt float64, in core.InputFrame) StepResult {
	var res StepResult
	jump := false
	before := g.phase

	if in.Has(core.ActionRestart) {
		g.start()
		res.Started = true
	}

	if in.Has(core.ActionJump) {
		switch g.phase {
		case PhaseSplash, PhaseGameOver:
			g.start()
			res.Started = true
		case PhaseRunning:
			jump = !res.Started
		}
	}

	if in.Has(core.ActionPause) {
		switch before {
		case PhaseRunning:
			g.setPhase(PhasePaused)
		case PhasePaused:
			g.setPhase(PhaseRunning)
		}
	}

	if in.Has(core.ActionToggleHitboxes) {
		g.showHitboxes = !g.showHitboxes
	}

	if g.phase == PhaseRunning {
		res.Events = g.world.Update(dt, jump)
		for i := 0; i < res.Events.Passed; i++ {
			g.score.Passed()
		}
		if res.Events.Collided {
			g.setPhase(PhaseGameOver)
			res.Ended = true
			g.logger.Info("run over", "score", g.score.Score(), "best", g.score.HighScore(),
				"elapsed", g.world.Elapsed())
		}
	}

	res.Phase = g.phase
	res.Score = g.score.Score()
	res.HighScore = g.score.HighScore()
	return res
}

// start resets the world and score and enters Running.
func (g *Game) start() {
	g.world.Reset()
	g.score.Reset()
	g.setPhase(PhaseRunning)
}

func (g *Game) setPhase(p Phase) {
	if g.phase == p {
		return
	}
	g.logger.Debug("phase", "from", g.phase, "to", p)
	g.phase = p
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the current run score.
func (g *Game) Score() int {
	return g.score.Score()
}

// HighScore returns the best score.
func (g *Game) HighScore() int {
	return g.score.HighScore()
}

// Elapsed returns the seconds simulated in the current run.
func (g *Game) Elapsed() float64 {
	return g.world.Elapsed()
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.RunnerConfig {
	return g.cfg
}

// ShowHitboxes reports whether the debug overlay is on.
func (g *Game) ShowHitboxes() bool {
	return g.showHitboxes
}

// SetShowHitboxes turns the debug overlay on or off.
func (g *Game) SetShowHitboxes(on bool) {
	g.showHitboxes = on
}

// Resize changes the logical viewport. Entities keep their logical
// coordinates; the ground line follows the new height.
func (g *Game) Resize(width, height float64) {
	g.world.SetViewport(width, height)
}

// Snapshot returns a read-only copy of everything a renderer needs.
func (g *Game) Snapshot() View {
	return View{
		Phase:          g.phase,
		Score:          g.score.Score(),
		HighScore:      g.score.HighScore(),
		Player:         g.world.Player(),
		Obstacles:      g.world.Obstacles(),
		Elapsed:        g.world.Elapsed(),
		ViewportWidth:  g.world.ViewportWidth(),
		ViewportHeight: g.world.GroundY() + g.cfg.Gameplay.GroundOffset,
		GroundY:        g.world.GroundY(),
		Speed:          g.cfg.Gameplay.Speed,
		HitboxInset:    g.cfg.Player.HitboxInset,
		ShowHitboxes:   g.showHitboxes,
		Theme:          g.cfg.Theme,
		Sprites:        g.cfg.Sprites,
	}
}

// Render draws the current state to a terminal screen.
func (g *Game) Render(dst *core.Screen) {
	Render(g.Snapshot(), dst)
}
