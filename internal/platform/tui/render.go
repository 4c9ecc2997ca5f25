package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/javi-run/internal/config"
	"github.com/vovakirdan/javi-run/internal/core"
)

// Fallback colors when a theme value does not parse.
const (
	defaultPrimary    = "#0d47a1"
	defaultAccent     = "#1976d2"
	defaultBackground = "#ffffff"
	hitboxColor       = "#e53935"
)

// stripeTint is how far the decorative stripes lean from primary towards
// the background.
const stripeTint = 0.85

// Palette maps core.Color to lipgloss styles for one theme.
type Palette struct {
	styles map[core.Color]lipgloss.Style
}

// NewPalette resolves the theme slots. Every style paints the theme
// background so the frame matches the configured look on any terminal.
func NewPalette(theme config.Theme) Palette {
	primary := parseHex(theme.Primary, defaultPrimary)
	accent := parseHex(theme.Accent, defaultAccent)
	bg := parseHex(theme.Background, defaultBackground)
	dim := primary.BlendRgb(bg, stripeTint).Clamped()

	base := lipgloss.NewStyle().Background(lipgloss.Color(bg.Hex()))
	fg := func(c colorful.Color) lipgloss.Style {
		return base.Foreground(lipgloss.Color(c.Hex()))
	}

	return Palette{styles: map[core.Color]lipgloss.Style{
		core.ColorDefault:    fg(primary),
		core.ColorPrimary:    fg(primary),
		core.ColorAccent:     fg(accent),
		core.ColorBackground: fg(bg),
		core.ColorHitbox:     fg(parseHex(hitboxColor, hitboxColor)),
		core.ColorDim:        fg(dim),
		core.ColorRed:        base.Foreground(lipgloss.Color("1")),
		core.ColorWhite:      base.Foreground(lipgloss.Color("15")).Bold(true),
		core.ColorGray:       base.Foreground(lipgloss.Color("245")),
	}}
}

// Style returns the style for c, falling back to the default slot.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if s, ok := p.styles[c]; ok {
		return s
	}
	return p.styles[core.ColorDefault]
}

func parseHex(s, fallback string) colorful.Color {
	if c, err := colorful.Hex(expandHex(s)); err == nil {
		return c
	}
	c, _ := colorful.Hex(fallback)
	return c
}

// expandHex turns #rgb into #rrggbb.
func expandHex(s string) string {
	if len(s) != 4 || s[0] != '#' {
		return s
	}
	return string([]byte{'#', s[1], s[1], s[2], s[2], s[3], s[3]})
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
