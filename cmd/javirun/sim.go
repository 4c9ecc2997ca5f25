package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/javi-run/internal/core"
	"github.com/vovakirdan/javi-run/internal/runner"
	"github.com/vovakirdan/javi-run/internal/storage"
)

var (
	flagSimSeconds float64
	flagSimRuns    int
	flagSimSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot game",
	Long: `Simulate runs without a display. An autopilot jumps when the next
obstacle is within reach. Steps are fixed at 1/--fps seconds, so the same
--seed always produces the same result.

Nothing is persisted unless --save is given.

Examples:
  javirun sim --seed 42
  javirun sim --seed 42 --seconds 300 --runs 5
  javirun sim --save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().Float64Var(&flagSimSeconds, "seconds", 60, "Maximum simulated seconds per run")
	simCmd.Flags().IntVar(&flagSimRuns, "runs", 1, "Number of runs")
	simCmd.Flags().BoolVar(&flagSimSave, "save", false, "Record high score and runs in the store")
}

func runSim(_ *cobra.Command, _ []string) {
	s := newSetup()
	defer s.closer.Close()

	fps := flagFPS
	if fps <= 0 {
		fps = 60
	}
	dt := 1.0 / float64(fps)

	seed := flagSeed
	if seed == 0 {
		seed = 1
	}

	var store storage.Backend = storage.NewMemory()
	if flagSimSave {
		var err error
		store, err = openStore(storage.Kind(flagStore), storage.KindSQLite)
		if err != nil {
			s.closer.Close()
			fail("opening scores store: %v", err)
		}
	}
	defer store.Close()
	runs := runStore(store)

	rt := core.DefaultConfig()
	rt.TickRate, rt.Seed = fps, seed
	game := runner.New(s.cfg, rt,
		runner.WithLogger(s.logger),
		runner.WithHighScoreStore(store),
	)
	pilot := runner.NewAutopilot(s.cfg)

	fmt.Printf("  %-4s  %-8s  %-8s  %-8s  %-8s  %s\n", "Run", "Score", "Time", "Spawned", "Jumps", "Result")
	for i := 1; i <= flagSimRuns; i++ {
		res := runner.Simulate(game, pilot, dt, flagSimSeconds)
		outcome := "survived"
		if res.Crashed {
			outcome = "crashed"
		}
		fmt.Printf("  %-4d  %-8d  %-8s  %-8d  %-8d  %s\n",
			i, res.Score, fmt.Sprintf("%.1fs", res.Elapsed), res.Spawned, res.Jumps, outcome)

		if flagSimSave && runs != nil && res.Crashed {
			if _, err := runs.SaveRun(res.Score, secondsToDuration(res.Elapsed)); err != nil {
				s.logger.Warn("could not record run", "err", err)
			}
		}
	}
	fmt.Printf("\nBest: %d (seed %d)\n", game.HighScore(), seed)
}
