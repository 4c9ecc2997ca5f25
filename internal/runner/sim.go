package runner

import (
	"github.com/vovakirdan/javi-run/internal/core"
)

// SimResult summarizes a headless run.
type SimResult struct {
	Score     int
	HighScore int
	Elapsed   float64 // simulated seconds
	Steps     int
	Spawned   int
	Jumps     int
	Crashed   bool
}

// Simulate starts a run and drives it with the autopilot at a fixed step
// until the player crashes or maxSeconds of simulated time pass.
func Simulate(g *Game, pilot Autopilot, dt, maxSeconds float64) SimResult {
	var res SimResult
	if dt <= 0 {
		dt = core.DefaultMaxStep
	}

	g.Step(0, core.NewInputFrame(core.ActionRestart))
	for g.Phase() == PhaseRunning && g.Elapsed() < maxSeconds {
		in := pilot.Input(g.Snapshot())
		if in.Has(core.ActionJump) {
			res.Jumps++
		}
		step := g.Step(dt, in)
		res.Steps++
		res.Spawned += step.Events.Spawned
		if step.Ended {
			res.Crashed = true
		}
	}

	res.Score = g.Score()
	res.HighScore = g.HighScore()
	res.Elapsed = g.Elapsed()
	return res
}
