package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/javi-run/internal/platform/tui"
	"github.com/vovakirdan/javi-run/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Javi Run SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a menu: Play, High Scores,
Quit. All users share the same high score and run history.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.javirun/host_key

Examples:
  javirun serve                           # Listen on :23234 with auto-generated key
  javirun serve --ssh :2222               # Listen on port 2222
  javirun serve --host-key ./my_host_key  # Use specific host key
  javirun serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	s := newSetup()
	defer s.closer.Close()

	store, err := openStore(storage.Kind(flagStore), storage.KindSQLite)
	if err != nil {
		s.closer.Close()
		fail("opening scores store: %v", err)
	}
	defer store.Close()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.TickRate = flagFPS

	server, err := tui.NewSSHServer(cfg, s.cfg, store, s.logger)
	if err != nil {
		store.Close()
		s.closer.Close()
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting Javi Run SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		store.Close()
		s.closer.Close()
		fail("server: %v", err)
	}
}
