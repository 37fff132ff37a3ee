package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/sacrifice-runner/internal/core"
	"github.com/vovakirdan/sacrifice-runner/internal/registry"
	"github.com/vovakirdan/sacrifice-runner/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model that drives one game session in a terminal.
// Tab swaps the game for the high score table; ticks are not stepped while
// the table is shown.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	store         *storage.Store
	logger        *log.Logger
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	inputFrame    core.InputFrame
	gameState     core.GameState
	scoreboard    *ScoreboardModel
	screenshotDir string
	quitting      bool
	errs          []error // Best-effort failures (saves, screenshots)
}

// Option configures a Model.
type Option func(*Model)

// WithLogger logs best-effort failures as they happen.
func WithLogger(l *log.Logger) Option {
	return func(m *Model) {
		m.logger = l
	}
}

// WithScreenshotDir overrides the screenshot directory
// (default ~/.sacrifice/screenshots).
func WithScreenshotDir(dir string) Option {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...Option) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = defaultTickRate
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		inputFrame: core.NewInputFrame(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// playfieldHeight leaves the last terminal row for the help bar.
func playfieldHeight(h int) int {
	return core.Max(1, h-1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scoreboard != nil {
			return m.updateScoreboard(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.report("screenshot failed", err)
		} else if m.logger != nil {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Scores):
		sb := newEmbeddedScoreboard(m.store, m.game.ID(), m.game.Title(), m.config.ScreenW, m.config.ScreenH)
		m.scoreboard = &sb
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// updateScoreboard forwards keys to the high score table until it is closed.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
	default:
		m.scoreboard = &sb
	}
	return m, cmd
}

// handleResize processes window resize events. The game scales its world
// to the screen, so the session keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.help.Width = msg.Width

	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		// Reset seed for new game
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if ev, ok := result.GameOverEvent(); ok {
		m.saveRun(ev.Score)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished session. Empty runs are not recorded.
func (m *Model) saveRun(score int) {
	if m.store == nil || score <= 0 {
		return
	}

	var st core.RunStats
	if r, ok := m.game.(registry.StatsReporter); ok {
		st = r.RunStats()
	}
	run := storage.NewRunRecord(m.game.ID(), score, st)

	if _, err := m.store.SaveRun(run); err != nil {
		m.report("cannot save run", err)
		return
	}
	if m.logger != nil {
		m.logger.Info("run saved", "game", run.GameID, "score", score, "frames", run.Frames)
	}
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.screenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: cannot resolve home directory: %w", err)
		}
		dir = filepath.Join(home, ".sacrifice", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

func (m *Model) report(msg string, err error) {
	m.errs = append(m.errs, err)
	if m.logger != nil {
		m.logger.Error(msg, "error", err)
	}
}

// Errors returns the best-effort failures collected during the session.
func (m Model) Errors() []error {
	return m.errs
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model. Failures the
// session survived are logged once the terminal is restored.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	if fm, ok := final.(Model); ok && logger != nil {
		for _, e := range fm.Errors() {
			logger.Warn("session error", "error", e)
		}
	}
	return nil
}
