package runner

import (
	"math"

	"github.com/vovakirdan/javi-run/internal/core"
)

// cellMapper converts logical coordinates to terminal cells.
type cellMapper struct {
	sx, sy float64
}

func newCellMapper(v View, dst *core.Screen) cellMapper {
	m := cellMapper{sx: 1, sy: 1}
	if v.ViewportWidth > 0 {
		m.sx = float64(dst.Width()) / v.ViewportWidth
	}
	if v.ViewportHeight > 0 {
		m.sy = float64(dst.Height()) / v.ViewportHeight
	}
	return m
}

func (m cellMapper) x(lx float64) int { return int(math.Floor(lx * m.sx)) }
func (m cellMapper) y(ly float64) int { return int(math.Floor(ly * m.sy)) }

// rect maps a logical box to cells. Non-empty boxes cover at least one cell.
func (m cellMapper) rect(r core.Rect) (x, y, w, h int) {
	x, y = m.x(r.X), m.y(r.Y)
	w = int(math.Ceil(r.Right()*m.sx)) - x
	h = int(math.Ceil(r.Bottom()*m.sy)) - y
	if r.W > 0 {
		w = core.Max(w, 1)
	}
	if r.H > 0 {
		h = core.Max(h, 1)
	}
	return x, y, w, h
}

// Render draws v to dst. It only reads the snapshot.
func Render(v View, dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	m := newCellMapper(v, dst)

	drawStripes(v, m, dst)

	groundRow := m.y(v.GroundY)
	dst.DrawHLine(0, groundRow, dst.Width(), GroundChar, core.ColorAccent)

	for _, o := range v.Obstacles {
		x, y, w, h := m.rect(o.Rect())
		dst.DrawRect(x, y, w, h, ObstacleChar, core.ColorPrimary)
	}

	drawPlayer(v, m, dst)

	if v.ShowHitboxes {
		drawOutline(dst, m, v.PlayerHitbox())
		for _, o := range v.Obstacles {
			drawOutline(dst, m, o.Rect())
		}
	}

	// HUD
	dst.DrawTextColored(2, 0, v.ScoreText(), core.ColorPrimary)
	if dst.Height() > 1 {
		dst.DrawTextColored(2, 1, v.BestText(), core.ColorPrimary)
	}

	if title, hint := v.Overlay(); title != "" {
		subtitle := ""
		if v.Phase == PhaseSplash {
			subtitle = Tagline
		}
		drawCenteredMessage(dst, title, subtitle, hint)
	}
}

// drawStripes renders the scrolling decorative background above the ground.
func drawStripes(v View, m cellMapper, dst *core.Screen) {
	top := m.y(v.GroundY * 0.1)
	bottom := m.y(v.GroundY)
	offset := v.StripeOffset()
	for lx := -offset; lx < v.ViewportWidth; lx += StripeSpacing {
		x0 := m.x(lx)
		x1 := core.Max(m.x(lx+StripeWidth), x0+1)
		for y := top; y < bottom; y++ {
			for x := x0; x < x1; x++ {
				dst.SetColored(x, y, StripeChar, core.ColorDim)
			}
		}
	}
}

// drawPlayer renders the player box with an eye at the upper right.
func drawPlayer(v View, m cellMapper, dst *core.Screen) {
	x, y, w, h := m.rect(v.Player.Rect())
	dst.DrawRect(x, y, w, h, PlayerBody, core.ColorPrimary)
	eyeX := m.x(v.Player.X + v.Player.W*0.65)
	eyeY := m.y(v.Player.Y + v.Player.H*0.35)
	dst.SetColored(eyeX, eyeY, PlayerEye, core.ColorWhite)
}

// drawOutline draws a hitbox outline; boxes too small for a frame get
// corner marks.
func drawOutline(dst *core.Screen, m cellMapper, r core.Rect) {
	x, y, w, h := m.rect(r)
	if w >= 2 && h >= 2 {
		dst.DrawBox(x, y, w, h, core.ColorHitbox)
		return
	}
	dst.SetColored(x, y, '+', core.ColorHitbox)
	dst.SetColored(x+w-1, y+h-1, '+', core.ColorHitbox)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle, hint string) {
	lines := []string{title}
	if subtitle != "" {
		lines = append(lines, subtitle)
	}
	lines = append(lines, "", hint)

	boxW := 0
	for _, l := range lines {
		boxW = core.Max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorAccent)

	for i, l := range lines {
		c := core.ColorPrimary
		if i > 0 {
			c = core.ColorAccent
		}
		lx := boxX + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(lx, boxY+1+i, l, c)
	}
}
