package window

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/javi-run/internal/config"
	"github.com/vovakirdan/javi-run/internal/core"
	"github.com/vovakirdan/javi-run/internal/runner"
	"github.com/vovakirdan/javi-run/internal/storage"
)

func newTestHost(t *testing.T, cfg config.RunnerConfig, runs storage.RunStore) *Host {
	t.Helper()
	cfg.Sprites = config.Sprites{}
	g := runner.New(cfg, core.RuntimeConfig{Seed: 3})
	return New(g, Options{Runs: runs})
}

func TestCollectKeys(t *testing.T) {
	pressed := map[ebiten.Key]bool{ebiten.KeySpace: true, ebiten.KeyH: true}
	frame := core.NewInputFrame()

	collectKeys(func(k ebiten.Key) bool { return pressed[k] }, &frame)

	if !frame.Has(core.ActionJump) || !frame.Has(core.ActionToggleHitboxes) {
		t.Errorf("frame = %v, want jump and hitboxes", frame.Actions)
	}
	if frame.Has(core.ActionPause) {
		t.Error("pause was not pressed")
	}
}

func TestLayoutKeepsLogicalHeight(t *testing.T) {
	h := newTestHost(t, config.DefaultRunnerConfig(), nil)

	tests := []struct {
		name         string
		outW, outH   int
		wantW, wantH int
	}{
		{"16:9", 1920, 1080, 960, 540},
		{"4:3", 800, 600, 720, 540},
		{"ultrawide", 2100, 900, 1260, 540},
		{"minimized", 0, 0, 1260, 540},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, hgt := h.Layout(tt.outW, tt.outH)
			if w != tt.wantW || hgt != tt.wantH {
				t.Errorf("Layout = %dx%d, want %dx%d", w, hgt, tt.wantW, tt.wantH)
			}
			if got := h.game.Snapshot().ViewportWidth; got != float64(tt.wantW) {
				t.Errorf("game viewport width = %v, want %v", got, tt.wantW)
			}
		})
	}
}

func TestStepPressOnControls(t *testing.T) {
	h := newTestHost(t, config.DefaultRunnerConfig(), nil)
	cs := h.bar.Controls()
	center := func(i int) Point {
		b := cs[i].Bounds
		x, y := b.X+b.W/2, b.Y+b.H/2
		return Point{X: x, Y: y}
	}

	// A tap on the playfield starts the run.
	if res := h.step(0, []Point{{X: 300, Y: 300}}); res.Phase != runner.PhaseRunning {
		t.Fatalf("phase after tap = %v, want running", res.Phase)
	}

	// Pause control.
	if res := h.step(0, []Point{center(1)}); res.Phase != runner.PhasePaused {
		t.Fatalf("phase after pause control = %v, want paused", res.Phase)
	}

	// Hitboxes checkbox.
	h.step(0, []Point{center(3)})
	if !h.game.ShowHitboxes() {
		t.Error("checkbox should enable hitboxes")
	}
	if res := h.step(0, []Point{center(3)}); res.Phase != runner.PhasePaused {
		t.Errorf("checkbox should not change phase, got %v", res.Phase)
	}
	if h.game.ShowHitboxes() {
		t.Error("second checkbox press should disable hitboxes")
	}
	h.step(0, []Point{center(3)})

	// Restart control.
	if res := h.step(0, []Point{center(2)}); res.Phase != runner.PhaseRunning || !res.Started {
		t.Errorf("restart control = %+v, want a new running run", res)
	}
}

func TestStepRecordsRunOnce(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Gameplay.SpawnInterval = config.Range{Min: 0.1, Max: 0.15}
	runs := storage.NewMemory()
	h := newTestHost(t, cfg, runs)

	h.step(0, []Point{{X: 300, Y: 300}})
	for i := 0; i < 600 && h.game.Phase() != runner.PhaseGameOver; i++ {
		h.step(1.0/32, nil)
	}
	if h.game.Phase() != runner.PhaseGameOver {
		t.Fatal("an idle player should crash")
	}
	for i := 0; i < 5; i++ {
		h.step(1.0/32, nil)
	}

	top, err := runs.TopRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 1 {
		t.Errorf("recorded %d runs, want 1", len(top))
	}
}

func TestNewColors(t *testing.T) {
	c := NewColors(config.Theme{Primary: "#000", Accent: "bogus", Background: "#ffffff"})

	if c.Primary != (color.RGBA{A: 0xff}) {
		t.Errorf("primary = %v, want black", c.Primary)
	}
	if c.Accent != (color.RGBA{R: 0x19, G: 0x76, B: 0xd2, A: 0xff}) {
		t.Errorf("accent = %v, want fallback #1976d2", c.Accent)
	}
	if c.Stripe == c.Canvas {
		t.Error("stripes should be tinted towards primary")
	}
}

func TestLoadSprites(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "char.png")

	f, err := os.Create(good)
	if err != nil {
		t.Fatal(err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 4, 6))
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	bad := filepath.Join(dir, "obstacle.png")
	if err := os.WriteFile(bad, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	s := LoadSprites(config.Sprites{
		Character: good,
		Obstacle:  bad,
	}, nil)
	s.Wait()

	if d := s.Decoded(SpriteCharacter); d == nil || d.Bounds().Dx() != 4 {
		t.Errorf("character not decoded: %v", d)
	}
	if s.Decoded(SpriteObstacle) != nil || s.Err(SpriteObstacle) == nil {
		t.Error("malformed obstacle should fail")
	}
	if s.Decoded(SpriteBackground) != nil || s.Err(SpriteBackground) != nil {
		t.Error("empty background path should be skipped")
	}
}

func TestLoadSpritesMissingFile(t *testing.T) {
	s := LoadSprites(config.Sprites{Background: filepath.Join(t.TempDir(), "missing.png")}, nil)
	s.Wait()
	if s.Err(SpriteBackground) == nil {
		t.Error("missing file should report an error")
	}
}
