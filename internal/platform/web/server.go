package web

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sacrifice-runner/internal/games/sacrifice"
	"github.com/vovakirdan/sacrifice-runner/internal/storage"
)

//go:embed index.html
var indexPage []byte

// ServerConfig holds configuration for the web server.
type ServerConfig struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// DBPath is the path to the scores database.
	DBPath string

	// TickRate is the simulation rate of each session.
	TickRate int

	// Seed fixes every session's world; 0 uses the clock.
	Seed int64

	// NewGame creates the game of each connection. Defaults to sacrifice.New.
	NewGame func() *sacrifice.Game
}

// DefaultServerConfig returns a config with sensible defaults.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Address:  ":8080",
		DBPath:   "~/.sacrifice/scores.db",
		TickRate: defaultTickRate,
	}
}

// Server serves the canvas page and the game websocket.
type Server struct {
	config ServerConfig
	http   *http.Server
	store  *storage.Store
	logger *log.Logger
}

// NewServer creates a web server. A missing database only disables saving.
func NewServer(cfg ServerConfig, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "sacrifice-web",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}

	srv := &Server{
		config: cfg,
		store:  store,
		logger: logger,
	}
	srv.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return srv
}

// Routes returns the server's HTTP handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(indexPage)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	mux.Handle("/ws", NewHandler(HandlerConfig{
		Logger:   s.logger,
		Store:    s.store,
		TickRate: s.config.TickRate,
		Seed:     s.config.Seed,
		NewGame:  s.config.NewGame,
	}))
	return mux
}

// ListenAndServe starts the web server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting web server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.Shutdown()
		return fmt.Errorf("web: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.http.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}
