package web

import (
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/sacrifice-runner/internal/config"
	"github.com/vovakirdan/sacrifice-runner/internal/core"
	"github.com/vovakirdan/sacrifice-runner/internal/games/sacrifice"
	"github.com/vovakirdan/sacrifice-runner/internal/storage"
)

type testFrame struct {
	Frame     int  `json:"frame"`
	Score     int  `json:"score"`
	Health    int  `json:"health"`
	JumpChain int  `json:"jumpChain"`
	GameOver  bool `json:"gameOver"`
}

type testMessage struct {
	Type  string     `json:"type"`
	Frame *testFrame `json:"frame"`
	Score int        `json:"score"`
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func startServer(t *testing.T, cfg HandlerConfig) *websocket.Conn {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = quietLogger()
	}
	srv := httptest.NewServer(NewHandler(cfg))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			resp.Body.Close()
		}
		t.Fatalf("failed to open websocket connection: %v", err)
	}
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
		if resp != nil {
			resp.Body.Close()
		}
	})
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) testMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg testMessage
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("failed to read message: %v", err)
	}
	return msg
}

// readUntil reads messages until match returns true or the limit is hit.
func readUntil(t *testing.T, conn *websocket.Conn, limit int, match func(testMessage) bool) testMessage {
	t.Helper()
	for i := 0; i < limit; i++ {
		msg := readMessage(t, conn)
		if match(msg) {
			return msg
		}
	}
	t.Fatalf("no matching message within %d messages", limit)
	return testMessage{}
}

func fixedGame(cfg config.SacrificeConfig) func() *sacrifice.Game {
	return func() *sacrifice.Game {
		return sacrifice.NewWithConfig(cfg)
	}
}

func TestHandlerStreamsFrames(t *testing.T) {
	conn := startServer(t, HandlerConfig{
		TickRate: 240,
		Seed:     1,
		NewGame:  fixedGame(config.DefaultSacrificeConfig()),
	})

	first := readMessage(t, conn)
	if first.Type != TypeFrame || first.Frame == nil {
		t.Fatalf("first message = %+v, expected a frame", first)
	}
	if first.Frame.Frame != 0 || first.Frame.Health != 150 {
		t.Errorf("initial frame = %+v", first.Frame)
	}

	next := readMessage(t, conn)
	if next.Frame == nil || next.Frame.Frame <= first.Frame.Frame {
		t.Errorf("frames should advance, got %+v after %+v", next.Frame, first.Frame)
	}
}

func TestHandlerAppliesJump(t *testing.T) {
	conn := startServer(t, HandlerConfig{
		TickRate: 240,
		Seed:     1,
		NewGame:  fixedGame(config.DefaultSacrificeConfig()),
	})
	readMessage(t, conn)

	if err := conn.WriteJSON(clientMessage{Action: "jump"}); err != nil {
		t.Fatalf("failed to send jump: %v", err)
	}

	readUntil(t, conn, 200, func(m testMessage) bool {
		return m.Frame != nil && m.Frame.JumpChain == 1
	})
}

func TestHandlerIgnoresMalformedMessages(t *testing.T) {
	conn := startServer(t, HandlerConfig{
		TickRate: 240,
		Seed:     1,
		NewGame:  fixedGame(config.DefaultSacrificeConfig()),
	})
	readMessage(t, conn)

	conn.WriteMessage(websocket.TextMessage, []byte("{not json"))
	conn.WriteJSON(clientMessage{Action: "fly"})

	// Still streaming
	msg := readMessage(t, conn)
	if msg.Type != TypeFrame {
		t.Errorf("expected frames to continue, got %+v", msg)
	}
}

func TestHandlerGameOverSavesRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Every jump is a sacrifice that exceeds the health pool
	cfg := config.DefaultSacrificeConfig()
	cfg.Health.Start = 5
	cfg.Sacrifice.Every = 1

	conn := startServer(t, HandlerConfig{
		TickRate: 240,
		Seed:     1,
		Store:    store,
		NewGame:  fixedGame(cfg),
	})

	readUntil(t, conn, 500, func(m testMessage) bool {
		return m.Frame != nil && m.Frame.Score >= 3
	})
	if err := conn.WriteJSON(clientMessage{Action: "jump"}); err != nil {
		t.Fatalf("failed to send jump: %v", err)
	}

	over := readUntil(t, conn, 500, func(m testMessage) bool {
		return m.Type == TypeGameOver
	})
	if over.Score < 3 {
		t.Errorf("game over score = %d, expected at least 3", over.Score)
	}

	after := readMessage(t, conn)
	if after.Frame == nil || !after.Frame.GameOver || after.Frame.Health != 0 {
		t.Errorf("frame after game over = %+v", after.Frame)
	}

	runs, err := store.RecentRuns(sacrifice.ID, 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != over.Score || runs[0].Sacrifices != 1 {
		t.Errorf("saved runs = %+v", runs)
	}

	// Restart brings a fresh session
	conn.WriteJSON(clientMessage{Action: "restart"})
	readUntil(t, conn, 500, func(m testMessage) bool {
		return m.Frame != nil && !m.Frame.GameOver && m.Frame.Health == 5
	})
}

func TestInboxDrain(t *testing.T) {
	in := newInbox()
	in.push(core.ActionJump)
	in.push(core.ActionJump)
	in.push(core.ActionPause)

	frame := in.drain()
	if frame.Count(core.ActionJump) != 2 || !frame.Has(core.ActionPause) {
		t.Errorf("drained frame = %+v", frame.Actions)
	}
	if next := in.drain(); len(next.Actions) != 0 {
		t.Errorf("second drain should be empty, got %+v", next.Actions)
	}
}

func TestActionFor(t *testing.T) {
	tests := map[string]core.Action{
		"jump":    core.ActionJump,
		"pause":   core.ActionPause,
		"restart": core.ActionRestart,
		"":        core.ActionNone,
		"quit":    core.ActionNone,
	}
	for name, want := range tests {
		if got := actionFor(name); got != want {
			t.Errorf("actionFor(%q) = %v, expected %v", name, got, want)
		}
	}
}

func TestServerRoutes(t *testing.T) {
	srv := &Server{config: ServerConfig{TickRate: 60}, logger: quietLogger()}
	ts := httptest.NewServer(srv.Routes())
	defer ts.Close()

	tests := []struct {
		path   string
		status int
		body   string
	}{
		{"/", http.StatusOK, "<canvas"},
		{"/healthz", http.StatusOK, "ok"},
		{"/missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		resp, err := http.Get(ts.URL + tt.path)
		if err != nil {
			t.Fatalf("GET %s: %v", tt.path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != tt.status {
			t.Errorf("GET %s status = %d, expected %d", tt.path, resp.StatusCode, tt.status)
		}
		if !strings.Contains(string(body), tt.body) {
			t.Errorf("GET %s body missing %q", tt.path, tt.body)
		}
	}
}
