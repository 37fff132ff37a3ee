package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/sacrifice-runner/internal/config"
	"github.com/vovakirdan/sacrifice-runner/internal/games/sacrifice"
	"github.com/vovakirdan/sacrifice-runner/internal/platform/tui"
	"github.com/vovakirdan/sacrifice-runner/internal/registry"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own run. Scores are stored per-server
(all users share the same leaderboard, Tab shows it).

The listen address defaults to $SACRIFICE_SSH_ADDR, then :23234.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.sacrifice/host_key

Examples:
  sacrifice serve                           # Listen on :23234
  sacrifice serve --ssh :2222               # Listen on port 2222
  sacrifice serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	if cfg.Address == "" {
		cfg.Address = config.GetEnv("SACRIFICE_SSH_ADDR", ":23234")
	}
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.GameID = sacrifice.ID
	cfg.NewGame = func() registry.Game {
		return sacrifice.NewWithConfig(gameConfig)
	}
	cfg.TickRate = flagFPS
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("sacrifice-ssh"))
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	return server.ListenAndServe()
}
