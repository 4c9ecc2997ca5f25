// Package window provides the Ebiten host for Javi Run: a resizable window
// with sprites, touch and pointer input, and on-screen controls.
package window

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/javi-run/internal/core"
	"github.com/vovakirdan/javi-run/internal/platform/controls"
	"github.com/vovakirdan/javi-run/internal/runner"
	"github.com/vovakirdan/javi-run/internal/storage"
)

// WindowTitle is shown in the title bar.
const WindowTitle = "Javi Run"

// Options holds the optional collaborators of a Host.
type Options struct {
	// Runs records finished runs. Nil disables run history.
	Runs storage.RunStore
	// Logger receives warnings. Nil discards them.
	Logger *log.Logger
	// Scale multiplies the logical viewport for the initial window size.
	Scale float64
}

// Host implements ebiten.Game around a runner.Game.
type Host struct {
	game    *runner.Game
	clock   *core.Clock
	bar     controls.Bar
	colors  Colors
	sprites *SpriteSet
	fonts   *fonts
	opts    Options

	frame    core.InputFrame
	touches  []ebiten.TouchID
	width    int // logical
	height   int // logical
	runSaved bool
}

// New creates a host. Sprites start loading immediately.
func New(game *runner.Game, opts Options) *Host {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Scale <= 0 {
		opts.Scale = 1
	}

	cfg := game.Config()
	h := &Host{
		game:    game,
		clock:   core.NewClock(cfg.Clock.MaxStep),
		colors:  NewColors(cfg.Theme),
		sprites: LoadSprites(cfg.Sprites, opts.Logger),
		opts:    opts,
		frame:   core.NewInputFrame(),
	}
	h.resize(int(cfg.Viewport.Width), int(cfg.Viewport.Height))

	f, err := loadFonts()
	if err != nil {
		opts.Logger.Warn("font unavailable, using debug text", "err", err)
	}
	h.fonts = f
	return h
}

// Update collects input and advances the game by one clamped step.
func (h *Host) Update() error {
	collectKeys(inpututil.IsKeyJustPressed, &h.frame)
	if h.frame.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	var presses []Point
	h.touches = inpututil.AppendJustPressedTouchIDs(h.touches[:0])
	for _, id := range h.touches {
		x, y := ebiten.TouchPosition(id)
		presses = append(presses, Point{X: float64(x), Y: float64(y)})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		presses = append(presses, Point{X: float64(x), Y: float64(y)})
	}

	h.step(h.clock.Tick(time.Now()), presses)
	return nil
}

// step applies presses and the collected keys, then advances the game.
// The checkbox sets the overlay state directly; keys send a toggle intent.
func (h *Host) step(dt float64, presses []Point) runner.StepResult {
	for _, p := range presses {
		a := h.bar.Press(p.X, p.Y)
		if a == core.ActionToggleHitboxes {
			h.game.SetShowHitboxes(!h.game.ShowHitboxes())
			continue
		}
		h.frame.Set(a)
	}

	res := h.game.Step(dt, h.frame)
	h.frame.Clear()

	if res.Started {
		h.runSaved = false
	}
	if res.Ended && !h.runSaved {
		h.recordRun(res.Score)
		h.runSaved = true
	}
	return res
}

// recordRun stores a finished run. Best-effort: play continues regardless.
func (h *Host) recordRun(score int) {
	if h.opts.Runs == nil {
		return
	}
	duration := time.Duration(h.game.Elapsed() * float64(time.Second))
	if _, err := h.opts.Runs.SaveRun(score, duration); err != nil {
		h.opts.Logger.Warn("could not record run", "score", score, "err", err)
	}
}

// Layout keeps the logical height fixed and derives the logical width from
// the window aspect ratio.
func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return h.width, h.height
	}
	logicalH := int(h.game.Config().Viewport.Height)
	logicalW := int(math.Round(float64(logicalH) * float64(outsideWidth) / float64(outsideHeight)))
	h.resize(logicalW, logicalH)
	return h.width, h.height
}

func (h *Host) resize(w, height int) {
	if w == h.width && height == h.height {
		return
	}
	h.width, h.height = w, height
	h.game.Resize(float64(w), float64(height))
	h.bar = controls.Layout(float64(w))
}

// Run opens the window and blocks until it is closed.
func Run(game *runner.Game, opts Options) error {
	h := New(game, opts)

	cfg := game.Config()
	ebiten.SetWindowSize(
		int(cfg.Viewport.Width*h.opts.Scale),
		int(cfg.Viewport.Height*h.opts.Scale),
	)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(h)
}
