package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/javi-run/internal/core"
)

// keyActions maps keyboard keys to intents.
var keyActions = []struct {
	key    ebiten.Key
	action core.Action
}{
	{ebiten.KeySpace, core.ActionJump},
	{ebiten.KeyArrowUp, core.ActionJump},
	{ebiten.KeyW, core.ActionJump},
	{ebiten.KeyP, core.ActionPause},
	{ebiten.KeyEscape, core.ActionPause},
	{ebiten.KeyR, core.ActionRestart},
	{ebiten.KeyH, core.ActionToggleHitboxes},
	{ebiten.KeyQ, core.ActionQuit},
}

// collectKeys records the intents of every key justPressed reports.
func collectKeys(justPressed func(ebiten.Key) bool, frame *core.InputFrame) {
	for _, ka := range keyActions {
		if justPressed(ka.key) {
			frame.Set(ka.action)
		}
	}
}

// Point is a pointer press in logical coordinates.
type Point struct {
	X, Y float64
}
