package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/sacrifice-runner/internal/config"
	"github.com/vovakirdan/sacrifice-runner/internal/games/sacrifice"
	"github.com/vovakirdan/sacrifice-runner/internal/platform/web"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Serve the browser version",
	Long: `Start an HTTP server with a canvas page. Each browser tab opens a
websocket and gets its own run; frames are streamed as JSON.

The listen address defaults to $SACRIFICE_WEB_ADDR, then :8080.

Examples:
  sacrifice web
  sacrifice web --addr 127.0.0.1:9000`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", "", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	cfg := web.DefaultServerConfig()
	cfg.Address = flagWebAddr
	if cfg.Address == "" {
		cfg.Address = config.GetEnv("SACRIFICE_WEB_ADDR", ":8080")
	}
	cfg.DBPath = flagDBPath
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	cfg.NewGame = func() *sacrifice.Game {
		return sacrifice.NewWithConfig(gameConfig)
	}

	server := web.NewServer(cfg, logger.WithPrefix("sacrifice-web"))
	return server.ListenAndServe()
}
