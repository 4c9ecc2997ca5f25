package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/javi-run/internal/core"
	"github.com/vovakirdan/javi-run/internal/platform/tui"
	"github.com/vovakirdan/javi-run/internal/runner"
	"github.com/vovakirdan/javi-run/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Javi Run in the terminal.

Controls:
  Space/Up/W   - Start / Jump (also left click)
  P/Esc        - Pause
  R            - Restart
  H            - Toggle hitboxes
  Ctrl+S       - Save a screenshot to ~/.javirun/screenshots
  Q/Ctrl+C     - Quit

Examples:
  javirun play
  javirun play --seed 42
  javirun play --config ./runner.toml
  javirun play --store memory`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	s := newSetup()
	defer s.closer.Close()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := []runner.Option{runner.WithLogger(s.logger)}
	modelOpts := tui.ModelOptions{Logger: s.logger}

	// Open score storage
	store, err := openStore(storage.Kind(flagStore), storage.KindSQLite)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores store: %v\n", err)
		s.logger.Warn("playing without persistence", "err", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		opts = append(opts, runner.WithHighScoreStore(store))
		modelOpts.Runs = runStore(store)
	}

	game := runner.New(s.cfg, cfg, opts...)
	runErr := tui.Run(game, cfg, modelOpts)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		s.closer.Close()
		fail("running game: %v", runErr)
	}
}
