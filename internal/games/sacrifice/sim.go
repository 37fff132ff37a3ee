package sacrifice

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/sacrifice-runner/internal/config"
	"github.com/vovakirdan/sacrifice-runner/internal/core"
)

// Stats are per-session counters reported when a run ends.
type Stats struct {
	Jumps           int
	Sacrifices      int // Jumps that cost health
	SacrificeDamage int
	ObstacleHits    int
	ObstacleDamage  int
	OrbsCollected   int
	Healed          int // Health actually restored, after clamping
	Bursts          int // World-generation bursts
}

// Sim is one game session: the player, the scrolling world and the global
// counters. It is the only mutator of that state and is not safe for
// concurrent use; hosts feed it input through Enqueue between ticks.
type Sim struct {
	cfg        config.SacrificeConfig
	difficulty *config.DifficultyManager
	gen        *Generator

	player Player
	world  World

	frame     int
	score     float64
	speed     float64
	health    int
	maxHealth int
	jumpChain int
	gameOver  bool

	queue []Command
	stats Stats
}

// NewSim creates a session drawing world layouts from rng.
func NewSim(cfg config.SacrificeConfig, rng Rand) *Sim {
	s := &Sim{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty, cfg.Sacrifice),
	}
	s.Reset(rng)
	return s
}

// NewSeededSim creates a session with a math/rand source seeded by seed.
func NewSeededSim(cfg config.SacrificeConfig, seed int64) *Sim {
	return NewSim(cfg, rand.New(rand.NewSource(seed)))
}

// Reset starts a new session in place: every collection and counter is
// reinitialised and generation continues from rng.
func (s *Sim) Reset(rng Rand) {
	s.gen = NewGenerator(s.cfg.Spawn, s.cfg.World.Width, rng)
	s.player = NewPlayer(s.cfg.Player)
	s.world.Clear()
	s.frame = 0
	s.score = 0
	s.speed = s.difficulty.Speed(0)
	s.health = s.cfg.Health.Start
	s.maxHealth = s.cfg.Health.Max
	s.jumpChain = 0
	s.gameOver = false
	s.queue = s.queue[:0]
	s.stats = Stats{}
}

// Step advances the session by one tick and returns what happened.
// Queued commands are applied first; once the session is over Step only
// discards input.
func (s *Sim) Step() []core.Event {
	if s.gameOver {
		s.queue = s.queue[:0]
		return nil
	}
	s.drainCommands()

	wasGrounded := s.player.Grounded
	s.player.Integrate(s.world.Platforms, s.cfg.World.FloorY)
	if s.player.Grounded && !wasGrounded {
		s.jumpChain = 0
	}

	s.world.Scroll(s.speed)
	s.world.Cull()
	s.resolveObstacles()
	s.resolveOrbs()

	if s.health <= 0 {
		s.health = 0
		s.gameOver = true
		return []core.Event{{Kind: core.EventGameOver, Score: s.FloorScore()}}
	}

	if s.frame%s.difficulty.SpawnInterval(s.score) == 0 {
		s.gen.Spawn(&s.world, s.speed)
		s.stats.Bursts++
	}

	s.speed = s.difficulty.Speed(s.score)
	s.frame++
	s.score += 0.5
	return nil
}

// resolveObstacles applies and removes every obstacle touching the player.
// Iterates back to front so removal does not skip entries.
func (s *Sim) resolveObstacles() {
	box := s.player.Rect()
	for i := len(s.world.Obstacles) - 1; i >= 0; i-- {
		o := s.world.Obstacles[i]
		if !box.Overlaps(o.Rect()) {
			continue
		}
		s.health -= o.Damage
		s.stats.ObstacleHits++
		s.stats.ObstacleDamage += o.Damage
		s.world.Obstacles = append(s.world.Obstacles[:i], s.world.Obstacles[i+1:]...)
	}
}

// resolveOrbs applies and removes every orb touching the player.
func (s *Sim) resolveOrbs() {
	box := s.player.Rect()
	for i := len(s.world.Orbs) - 1; i >= 0; i-- {
		o := s.world.Orbs[i]
		if !o.Circle().HitsRect(box) {
			continue
		}
		before := s.health
		s.health = min(s.maxHealth, s.health+o.Heal)
		if s.health > before {
			s.stats.Healed += s.health - before
		}
		s.stats.OrbsCollected++
		s.world.Orbs = append(s.world.Orbs[:i], s.world.Orbs[i+1:]...)
	}
}

// Player returns a copy of the player.
func (s *Sim) Player() Player { return s.player }

// Obstacles returns the live obstacles. Callers must not modify the slice.
func (s *Sim) Obstacles() []Obstacle { return s.world.Obstacles }

// Platforms returns the live platforms. Callers must not modify the slice.
func (s *Sim) Platforms() []Platform { return s.world.Platforms }

// Orbs returns the live orbs. Callers must not modify the slice.
func (s *Sim) Orbs() []Orb { return s.world.Orbs }

// Score returns the exact score (half a point per frame survived).
func (s *Sim) Score() float64 { return s.score }

// FloorScore returns the score as shown to players.
func (s *Sim) FloorScore() int { return int(math.Floor(s.score)) }

// Health returns the current health.
func (s *Sim) Health() int { return s.health }

// MaxHealth returns the health ceiling.
func (s *Sim) MaxHealth() int { return s.maxHealth }

// Speed returns the current scroll speed.
func (s *Sim) Speed() float64 { return s.speed }

// Frame returns the number of ticks survived.
func (s *Sim) Frame() int { return s.frame }

// JumpChain returns the number of jumps since the last landing.
func (s *Sim) JumpChain() int { return s.jumpChain }

// GameOver reports whether health ran out.
func (s *Sim) GameOver() bool { return s.gameOver }

// Stats returns the session counters.
func (s *Sim) Stats() Stats { return s.stats }

// Config returns the configuration the session runs with.
func (s *Sim) Config() config.SacrificeConfig { return s.cfg }
