// Package sacrifice implements Sacrifice Runner, a side-scrolling survival
// game. A square avatar runs through an endless stream of obstacles,
// platforms and healing orbs; it may jump at any time, but every third
// jump in a row costs health.
package sacrifice

import (
	"math/rand"

	"github.com/vovakirdan/sacrifice-runner/internal/config"
	"github.com/vovakirdan/sacrifice-runner/internal/core"
	"github.com/vovakirdan/sacrifice-runner/internal/registry"
)

// ID is the registry and score-table identifier of the game.
const ID = "sacrifice"

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game adapts a Sim to the platform's registry.Game interface: it maps
// input frames to commands and adds pausing.
type Game struct {
	sim     *Sim
	cfg     config.SacrificeConfig
	runtime core.RuntimeConfig
	loaded  bool  // cfg is final; set by NewWithConfig or the first Reset
	cfgErr  error // Why the defaults were used instead of a config file
	paused  bool
}

// New creates a new Sacrifice Runner game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that ignores config files.
func NewWithConfig(cfg config.SacrificeConfig) *Game {
	return &Game{cfg: cfg, loaded: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Sacrifice Runner"
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.loaded {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultSacrificeConfig()
			g.cfgErr = err
		}
		g.cfg = cfg
		g.loaded = true
	}

	rng := rand.New(rand.NewSource(runtime.Seed))
	if g.sim == nil {
		g.sim = NewSim(g.cfg, rng)
	} else {
		g.sim.Reset(rng)
	}
	g.paused = false
}

// ConfigErr reports why the game fell back to the default constants on its
// first Reset, or nil when the configuration loaded. Hosts that load the
// configuration themselves should use NewWithConfig instead.
func (g *Game) ConfigErr() error {
	return g.cfgErr
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) && !g.sim.GameOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	for i := 0; i < in.Count(core.ActionJump); i++ {
		g.sim.Enqueue(CommandJump)
	}

	events := g.sim.Step()
	return core.StepResult{State: g.State(), Events: events}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.sim.FloorScore(),
		Health:    g.sim.Health(),
		MaxHealth: g.sim.MaxHealth(),
		GameOver:  g.sim.GameOver(),
		Paused:    g.paused,
	}
}

// Snapshot returns the current frame for pixel and network renderers.
func (g *Game) Snapshot() Snapshot {
	snap := g.sim.Snapshot()
	snap.Paused = g.paused
	return snap
}

// Stats returns the counters of the current session.
func (g *Game) Stats() Stats {
	return g.sim.Stats()
}

// Frames returns the number of ticks the current session has survived.
func (g *Game) Frames() int {
	return g.sim.Frame()
}

// RunStats summarises the current session for the score store.
func (g *Game) RunStats() core.RunStats {
	st := g.sim.Stats()
	return core.RunStats{
		Frames:      g.sim.Frame(),
		Jumps:       st.Jumps,
		Sacrifices:  st.Sacrifices,
		DamageTaken: st.ObstacleDamage + st.SacrificeDamage,
		Healed:      st.Healed,
	}
}

var _ registry.StatsReporter = (*Game)(nil)

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
