package tui

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sacrifice-runner/internal/registry"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "missing"
	cfg.DBPath = filepath.Join(t.TempDir(), "scores.db")

	if _, err := NewSSHServer(cfg, quietLogger()); err == nil {
		t.Fatal("expected an error for an unregistered game")
	}
}

func TestNewSSHServerHostKeyFailureOpensNoStore(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	dbPath := filepath.Join(dir, "scores.db")

	cfg := DefaultSSHServerConfig()
	cfg.HostKeyPath = filepath.Join(blocker, "host_key") // parent is a file
	cfg.DBPath = dbPath
	cfg.NewGame = func() registry.Game { return &stubGame{dieAfter: -1} }

	if _, err := NewSSHServer(cfg, quietLogger()); err == nil {
		t.Fatal("expected host key directory error")
	}
	if _, err := os.Stat(dbPath); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("database should not be opened before the host key is ready, stat err = %v", err)
	}
}

func TestSSHServerNewGame(t *testing.T) {
	custom := &SSHServer{config: SSHServerConfig{
		GameID:  "missing",
		NewGame: func() registry.Game { return &stubGame{dieAfter: -1} },
	}}
	g, err := custom.newGame()
	if err != nil || g.ID() != "stub" {
		t.Errorf("newGame() = %v, %v; expected the configured factory", g, err)
	}

	fallback := &SSHServer{config: SSHServerConfig{GameID: "missing"}}
	if _, err := fallback.newGame(); err == nil {
		t.Error("registry fallback should fail for an unknown game")
	}
}

func TestPrepareHostKeyPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "host_key")

	got, err := prepareHostKeyPath(path)
	if err != nil {
		t.Fatalf("prepareHostKeyPath: %v", err)
	}
	if got != path {
		t.Errorf("path = %q, expected %q", got, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Error("key directory should be created")
	}
}
