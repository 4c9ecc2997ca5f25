package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/javi-run/internal/core"
	"github.com/vovakirdan/javi-run/internal/platform/window"
	"github.com/vovakirdan/javi-run/internal/runner"
	"github.com/vovakirdan/javi-run/internal/storage"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Javi Run in a resizable window with sprites and on-screen controls.

Sprites are read from the paths under "sprites" in the config; missing
images fall back to themed shapes. The high score is kept in the
platform save-data directory unless --store says otherwise.

Controls:
  Space/Up/W, tap, click   - Start / Jump
  P/Esc, Pause button      - Pause
  R, Restart button        - Restart
  H, Hitboxes checkbox     - Toggle hitboxes
  Q                        - Quit

Examples:
  javirun window
  javirun window --scale 1.5
  javirun window --store sqlite`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window scale relative to the logical viewport")
}

func runWindow(_ *cobra.Command, _ []string) {
	s := newSetup()
	defer s.closer.Close()

	opts := []runner.Option{runner.WithLogger(s.logger)}
	winOpts := window.Options{Logger: s.logger, Scale: flagScale}

	store, err := openStore(storage.Kind(flagStore), storage.KindSaveData)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores store: %v\n", err)
		s.logger.Warn("playing without persistence", "err", err)
		store = nil
	}
	if store != nil {
		opts = append(opts, runner.WithHighScoreStore(store))
		winOpts.Runs = runStore(store)
	}

	rt := core.DefaultConfig()
	rt.TickRate, rt.Seed = flagFPS, flagSeed
	game := runner.New(s.cfg, rt, opts...)
	runErr := window.Run(game, winOpts)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		s.closer.Close()
		fail("running window: %v", runErr)
	}
}
