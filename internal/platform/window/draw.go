package window

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/javi-run/internal/core"
	"github.com/vovakirdan/javi-run/internal/platform/controls"
	"github.com/vovakirdan/javi-run/internal/runner"
)

// Font sizes in logical pixels.
const (
	hudSize   = 18
	titleSize = 36
	hintSize  = 14
	labelSize = 13
)

type fonts struct {
	hud, title, hint, label *text.GoTextFace
}

func loadFonts() (*fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	face := func(size float64) *text.GoTextFace {
		return &text.GoTextFace{Source: src, Size: size}
	}
	return &fonts{
		hud:   face(hudSize),
		title: face(titleSize),
		hint:  face(hintSize),
		label: face(labelSize),
	}, nil
}

// Draw renders the current snapshot. It never changes game state.
func (h *Host) Draw(screen *ebiten.Image) {
	v := h.game.Snapshot()

	h.drawBackground(screen, v)

	// Ground line
	gy := float32(v.GroundY + 2)
	vector.StrokeLine(screen, 0, gy, float32(v.ViewportWidth), gy, 4, h.colors.Accent, true)

	for _, o := range v.Obstacles {
		h.drawBox(screen, SpriteObstacle, o.Rect(), h.colors.Primary)
	}

	h.drawBox(screen, SpriteCharacter, v.Player.Rect(), h.colors.Primary)
	if h.sprites.Image(SpriteCharacter) == nil {
		p := v.Player
		vector.DrawFilledCircle(screen, float32(p.X+p.W*0.65), float32(p.Y+p.H*0.35), 4, h.colors.Eye, true)
	}

	if v.ShowHitboxes {
		strokeRect(screen, v.PlayerHitbox(), h.colors.Hitbox)
		for _, o := range v.Obstacles {
			strokeRect(screen, o.Rect(), h.colors.Hitbox)
		}
	}

	h.drawHUD(screen, v)
	h.drawControls(screen, v)
}

// drawBackground tiles the background sprite with parallax, or draws the
// scrolling stripes.
func (h *Host) drawBackground(screen *ebiten.Image, v runner.View) {
	screen.Fill(h.colors.Background)

	if bg := h.sprites.Image(SpriteBackground); bg != nil {
		b := bg.Bounds()
		scale := max(v.ViewportHeight/float64(b.Dy()), v.ViewportWidth/float64(b.Dx()))
		tileW := float64(b.Dx()) * scale
		for x := -v.ParallaxOffset(tileW) - tileW; x < v.ViewportWidth+tileW; x += tileW {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(x, 0)
			screen.DrawImage(bg, op)
		}
		return
	}

	vector.DrawFilledRect(screen, 0, 0, float32(v.ViewportWidth), float32(v.ViewportHeight), h.colors.Canvas, false)
	for x := -v.StripeOffset(); x < v.ViewportWidth; x += runner.StripeSpacing {
		vector.DrawFilledRect(screen, float32(x), 0, runner.StripeWidth, float32(v.ViewportHeight), h.colors.Stripe, false)
	}
}

// drawBox draws a sprite stretched to r, or the solid fallback.
func (h *Host) drawBox(screen *ebiten.Image, sprite Sprite, r core.Rect, fallback color.Color) {
	img := h.sprites.Image(sprite)
	if img == nil {
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fallback, true)
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	screen.DrawImage(img, op)
}

func strokeRect(screen *ebiten.Image, r core.Rect, c color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
}

// drawHUD draws the score lines and the phase overlay.
func (h *Host) drawHUD(screen *ebiten.Image, v runner.View) {
	h.drawText(screen, v.ScoreText(), 18, 10, h.fontHUD(), h.colors.Primary)
	h.drawText(screen, v.BestText(), 18, 34, h.fontHUD(), h.colors.Primary)

	title, hint := v.Overlay()
	if title == "" {
		return
	}

	cx, cy := v.ViewportWidth/2, v.ViewportHeight/2
	if v.Phase == runner.PhaseSplash {
		vector.DrawFilledRect(screen, float32(cx-220), float32(cy-120), 440, 240, h.colors.Panel, true)
		h.printCentered(screen, title, cx, cy-60, h.fontTitle(), h.colors.Primary)
		h.printCentered(screen, runner.Tagline, cx, cy-8, h.fontHint(), h.colors.Primary)
		h.printCentered(screen, hint, cx, cy+30, h.fontHint(), h.colors.Primary)
		return
	}

	h.printCentered(screen, title, cx, cy-40, h.fontTitle(), h.colors.Overlay)
	h.printCentered(screen, hint, cx, cy+8, h.fontHint(), h.colors.Overlay)
}

// drawControls draws the toolbar. The checkbox mirrors the overlay state.
func (h *Host) drawControls(screen *ebiten.Image, v runner.View) {
	for _, c := range h.bar.Controls() {
		b := c.Bounds
		labelColor := h.colors.Eye
		if c.Kind == controls.KindCheckbox {
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), h.colors.Background, true)
			vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, h.colors.Accent, true)
			box := c.CheckboxBox()
			if v.ShowHitboxes {
				vector.DrawFilledRect(screen, float32(box.X), float32(box.Y), float32(box.W), float32(box.H), h.colors.Accent, true)
			}
			strokeRect(screen, box, h.colors.Accent)
			labelColor = h.colors.Primary
		} else {
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), h.colors.Accent, true)
		}
		x, y := c.LabelPos()
		h.drawText(screen, c.Label, x, y, h.fontLabel(), labelColor)
	}
}

func (h *Host) fontHUD() *text.GoTextFace {
	if h.fonts == nil {
		return nil
	}
	return h.fonts.hud
}

func (h *Host) fontTitle() *text.GoTextFace {
	if h.fonts == nil {
		return nil
	}
	return h.fonts.title
}

func (h *Host) fontHint() *text.GoTextFace {
	if h.fonts == nil {
		return nil
	}
	return h.fonts.hint
}

func (h *Host) fontLabel() *text.GoTextFace {
	if h.fonts == nil {
		return nil
	}
	return h.fonts.label
}

// drawText draws s with its top-left at (x, y). Without a font it falls back
// to the debug printer.
func (h *Host) drawText(screen *ebiten.Image, s string, x, y float64, face *text.GoTextFace, c color.Color) {
	if face == nil {
		ebitenutil.DebugPrintAt(screen, s, int(x), int(y))
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

// printCentered draws s horizontally centered on cx.
func (h *Host) printCentered(screen *ebiten.Image, s string, cx, y float64, face *text.GoTextFace, c color.Color) {
	w := float64(len(s)) * controls.CharWidth
	if face != nil {
		w, _ = text.Measure(s, face, 0)
	}
	h.drawText(screen, s, cx-w/2, y, face, c)
}
