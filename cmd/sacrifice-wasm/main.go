// sacrifice-wasm runs Sacrifice Runner with ebiten: in a desktop window when
// built natively, or on a browser canvas when built with
//
//	GOOS=js GOARCH=wasm go build -o sacrifice.wasm ./cmd/sacrifice-wasm
//
// Controls: Space/Up/W/click/tap to jump, P to pause, R to restart,
// Esc to quit (desktop).
package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sacrifice-runner/internal/config"
	"github.com/vovakirdan/sacrifice-runner/internal/core"
	"github.com/vovakirdan/sacrifice-runner/internal/games/sacrifice"
	"github.com/vovakirdan/sacrifice-runner/internal/platform/pixel"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "sacrifice-pixel"})

	// No file system in the browser; the embedded defaults apply there
	cfg, err := config.Load("")
	if err != nil {
		logger.Warn("invalid config, using defaults", "error", err)
		cfg = config.DefaultSacrificeConfig()
	}

	runtime := core.DefaultConfig()
	runtime.Seed = time.Now().UnixNano()

	if err := pixel.Run(sacrifice.NewWithConfig(cfg), runtime); err != nil {
		logger.Error("game exited", "error", err)
		os.Exit(1)
	}
}
