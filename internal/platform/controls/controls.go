// Package controls lays out the on-screen buttons of the windowed host and
// resolves pointer presses to intents. Coordinates are logical pixels, so
// the layout is independent of the window scale.
package controls

import (
	"github.com/vovakirdan/javi-run/internal/core"
)

// Layout constants in logical pixels.
const (
	ButtonHeight  = 36.0
	ButtonGap     = 8.0
	ToolbarMargin = 12.0
	CharWidth     = 7.0 // approximate label glyph width
	LabelPadding  = 12.0
	CheckboxSize  = 14.0
)

// Kind distinguishes push buttons from the checkbox.
type Kind int

const (
	KindButton Kind = iota
	KindCheckbox
)

// Control is one clickable element of the toolbar.
type Control struct {
	Label  string
	Action core.Action
	Kind   Kind
	Bounds core.Rect
}

// slot describes a control before layout.
type slot struct {
	label  string
	action core.Action
	kind   Kind
}

var toolbar = []slot{
	{"Start / Jump", core.ActionJump, KindButton},
	{"Pause", core.ActionPause, KindButton},
	{"Restart", core.ActionRestart, KindButton},
	{"Hitboxes", core.ActionToggleHitboxes, KindCheckbox},
}

// Bar is the laid out toolbar.
type Bar struct {
	controls []Control
}

// Layout places the toolbar right-aligned along the top edge of a viewport
// of the given logical width.
func Layout(viewportW float64) Bar {
	widths := make([]float64, len(toolbar))
	total := 0.0
	for i, s := range toolbar {
		widths[i] = labelWidth(s)
		total += widths[i]
	}
	total += ButtonGap * float64(len(toolbar)-1)

	x := viewportW - ToolbarMargin - total
	if x < ToolbarMargin {
		x = ToolbarMargin
	}

	b := Bar{controls: make([]Control, len(toolbar))}
	for i, s := range toolbar {
		b.controls[i] = Control{
			Label:  s.label,
			Action: s.action,
			Kind:   s.kind,
			Bounds: core.NewRect(x, ToolbarMargin, widths[i], ButtonHeight),
		}
		x += widths[i] + ButtonGap
	}
	return b
}

func labelWidth(s slot) float64 {
	w := float64(len(s.label))*CharWidth + 2*LabelPadding
	if s.kind == KindCheckbox {
		w += CheckboxSize + ButtonGap
	}
	return w
}

// Controls returns the laid out controls in toolbar order.
func (b Bar) Controls() []Control {
	out := make([]Control, len(b.controls))
	copy(out, b.controls)
	return out
}

// HitTest returns the action of the control under (x, y).
func (b Bar) HitTest(x, y float64) (core.Action, bool) {
	for _, c := range b.controls {
		if c.Bounds.Contains(x, y) {
			return c.Action, true
		}
	}
	return core.ActionNone, false
}

// Press resolves a pointer press. A press on a control triggers that
// control; a press anywhere else on the playfield is a tap, which is the
// primary action.
func (b Bar) Press(x, y float64) core.Action {
	if a, ok := b.HitTest(x, y); ok {
		return a
	}
	return core.ActionJump
}

// CheckboxBox returns the square drawn inside a checkbox control.
func (c Control) CheckboxBox() core.Rect {
	return core.NewRect(
		c.Bounds.X+LabelPadding/2,
		c.Bounds.Y+(c.Bounds.H-CheckboxSize)/2,
		CheckboxSize, CheckboxSize,
	)
}

// LabelPos returns the top-left of the control label text.
func (c Control) LabelPos() (float64, float64) {
	x := c.Bounds.X + LabelPadding
	if c.Kind == KindCheckbox {
		x = c.CheckboxBox().Right() + ButtonGap
	}
	// Labels are about 16px tall.
	return x, c.Bounds.Y + (c.Bounds.H-16)/2
}
