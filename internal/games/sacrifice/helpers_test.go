package sacrifice

import (
	"math/rand"

	"github.com/vovakirdan/sacrifice-runner/internal/config"
)

// scriptedRand replays fixed values; once a script runs out it returns
// 0 from Intn and 0.99 from Float64 (no hazard, no orb).
type scriptedRand struct {
	ints   []int
	floats []float64
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	if v >= n {
		panic("scriptedRand: value out of range")
	}
	return v
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

// quietConfig spawns nothing, so tests control every entity.
func quietConfig() config.SacrificeConfig {
	cfg := config.DefaultSacrificeConfig()
	cfg.Spawn.Floor.MinCount, cfg.Spawn.Floor.MaxCount = 0, 0
	cfg.Spawn.Ceiling.MinCount, cfg.Spawn.Ceiling.MaxCount = 0, 0
	cfg.Spawn.Platforms.MinCount, cfg.Spawn.Platforms.MaxCount = 0, 0
	return cfg
}

func newQuietSim() *Sim {
	return NewSim(quietConfig(), rand.New(rand.NewSource(1)))
}

// restOnFloor puts the player on the floor, grounded and still.
func restOnFloor(s *Sim) {
	s.player.Y = s.cfg.World.FloorY - s.player.Size
	s.player.VelocityY = 0
	s.player.Grounded = true
}
