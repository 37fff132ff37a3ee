package web

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/sacrifice-runner/internal/core"
	"github.com/vovakirdan/sacrifice-runner/internal/games/sacrifice"
	"github.com/vovakirdan/sacrifice-runner/internal/storage"
)

const (
	defaultTickRate = 60
	writeWait       = 2 * time.Second
)

// HandlerConfig configures the websocket handler.
type HandlerConfig struct {
	Logger   *log.Logger
	Store    *storage.Store // Optional; finished runs are saved when set
	TickRate int
	Seed     int64 // 0 seeds every session from the clock

	// NewGame creates the game for a connection. Defaults to sacrifice.New.
	NewGame func() *sacrifice.Game
}

// Handler upgrades requests and runs one game session per connection.
type Handler struct {
	cfg      HandlerConfig
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewHandler creates a websocket handler.
func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "sacrifice-web"})
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}
	if cfg.NewGame == nil {
		cfg.NewGame = sacrifice.New
	}

	return &Handler{
		cfg:    cfg,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

// ServeHTTP handles one browser connection until it closes.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	defer conn.Close()

	remote := r.RemoteAddr
	h.logger.Info("session started", "remote", remote)
	defer h.logger.Info("session ended", "remote", remote)

	game := h.cfg.NewGame()
	game.Reset(h.runtimeConfig())

	in := newInbox()
	done := make(chan struct{})
	go h.readLoop(conn, in, done, remote)

	ticker := time.NewTicker(time.Second / time.Duration(h.cfg.TickRate))
	defer ticker.Stop()

	// First frame before the first tick so the canvas has something to draw
	if err := h.writeFrame(conn, game); err != nil {
		return
	}

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}

		frame := in.drain()
		if frame.Has(core.ActionRestart) && game.State().GameOver {
			game.Reset(h.runtimeConfig())
		} else {
			res := game.Step(frame)
			if ev, ok := res.GameOverEvent(); ok {
				h.saveRun(game, ev.Score, remote)
				if err := h.write(conn, serverMessage{Type: TypeGameOver, Score: ev.Score}); err != nil {
					return
				}
			}
		}

		if err := h.writeFrame(conn, game); err != nil {
			return
		}
	}
}

// readLoop only decodes messages into the inbox; the tick loop in
// ServeHTTP is the single owner of the game.
func (h *Handler) readLoop(conn *websocket.Conn, in *inbox, done chan<- struct{}, remote string) {
	defer close(done)
	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logger.Debug("discarding malformed message", "remote", remote, "error", err)
			continue
		}
		if a := actionFor(msg.Action); a != core.ActionNone {
			in.push(a)
		}
	}
}

func (h *Handler) runtimeConfig() core.RuntimeConfig {
	seed := h.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{TickRate: h.cfg.TickRate, Seed: seed}
}

func (h *Handler) writeFrame(conn *websocket.Conn, game *sacrifice.Game) error {
	snap := game.Snapshot()
	return h.write(conn, serverMessage{Type: TypeFrame, Frame: &snap})
}

func (h *Handler) write(conn *websocket.Conn, msg serverMessage) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(msg)
}

func (h *Handler) saveRun(game *sacrifice.Game, score int, remote string) {
	if h.cfg.Store == nil || score <= 0 {
		return
	}
	run := storage.NewRunRecord(game.ID(), score, game.RunStats())
	if _, err := h.cfg.Store.SaveRun(run); err != nil {
		h.logger.Error("cannot save run", "remote", remote, "error", err)
		return
	}
	h.logger.Info("run saved", "remote", remote, "score", score, "frames", run.Frames)
}
