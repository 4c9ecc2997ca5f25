package window

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/javi-run/internal/config"
)

// Fallback theme colors.
const (
	defaultPrimary    = "#0d47a1"
	defaultAccent     = "#1976d2"
	defaultBackground = "#ffffff"
	stripeCanvas      = "#eaf2ff"
)

// stripeAlpha is the opacity of the decorative stripes over the canvas.
const stripeAlpha = 0.08

// Colors holds the resolved theme for one window.
type Colors struct {
	Primary    color.RGBA
	Accent     color.RGBA
	Background color.RGBA
	Canvas     color.RGBA // fallback background behind the stripes
	Stripe     color.RGBA
	Hitbox     color.RGBA
	Eye        color.RGBA
	Panel      color.RGBA
	Overlay    color.RGBA // overlay text
}

// NewColors resolves theme hex strings, falling back per slot.
func NewColors(theme config.Theme) Colors {
	primary := parseHex(theme.Primary, defaultPrimary)
	canvas := parseHex(stripeCanvas, stripeCanvas)

	return Colors{
		Primary:    rgba(primary, 0xff),
		Accent:     rgba(parseHex(theme.Accent, defaultAccent), 0xff),
		Background: rgba(parseHex(theme.Background, defaultBackground), 0xff),
		Canvas:     rgba(canvas, 0xff),
		Stripe:     rgba(canvas.BlendRgb(primary, stripeAlpha), 0xff),
		Hitbox:     color.RGBA{R: 0xff, A: 0xff},
		Eye:        color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Panel:      color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe6},
		Overlay:    color.RGBA{A: 0xb3},
	}
}

func parseHex(s, fallback string) colorful.Color {
	if len(s) == 4 && s[0] == '#' {
		s = string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
	}
	if c, err := colorful.Hex(s); err == nil {
		return c
	}
	c, _ := colorful.Hex(fallback)
	return c
}

func rgba(c colorful.Color, a uint8) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: a}
}
